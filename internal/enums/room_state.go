package enums

type RoomState string

const (
	ROOM_STATE_ACTIVE   RoomState = "ACTIVE"
	ROOM_STATE_ONE_LEFT RoomState = "ONE_LEFT"
	ROOM_STATE_CLOSED   RoomState = "CLOSED"
)

func (rs RoomState) IsValid() bool {
	switch rs {
	case ROOM_STATE_ACTIVE, ROOM_STATE_ONE_LEFT, ROOM_STATE_CLOSED:
		return true
	}
	return false
}

// RoomStateOf maps the leave cardinality of a room to its lifecycle state.
func RoomStateOf(leftCount int) RoomState {
	switch leftCount {
	case 0:
		return ROOM_STATE_ACTIVE
	case 1:
		return ROOM_STATE_ONE_LEFT
	default:
		return ROOM_STATE_CLOSED
	}
}
