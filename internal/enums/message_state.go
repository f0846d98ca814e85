package enums

type MessageState string

const (
	MESSAGE_STATE_VISIBLE        MessageState = "VISIBLE"
	MESSAGE_STATE_HIDDEN_FOR_ONE MessageState = "HIDDEN_FOR_ONE"
	MESSAGE_STATE_PURGED         MessageState = "PURGED"
)

func (ms MessageState) IsValid() bool {
	switch ms {
	case MESSAGE_STATE_VISIBLE, MESSAGE_STATE_HIDDEN_FOR_ONE, MESSAGE_STATE_PURGED:
		return true
	}
	return false
}

// MessageStateOf maps the leave cardinality of a message to its lifecycle
// state. A message whose both participants have left never survives as a row,
// so PURGED is only ever observed transiently inside the leave transaction.
func MessageStateOf(leftCount int) MessageState {
	switch leftCount {
	case 0:
		return MESSAGE_STATE_VISIBLE
	case 1:
		return MESSAGE_STATE_HIDDEN_FOR_ONE
	default:
		return MESSAGE_STATE_PURGED
	}
}
