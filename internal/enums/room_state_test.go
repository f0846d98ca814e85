package enums

import "testing"

func TestRoomStateOf(t *testing.T) {
	tests := []struct {
		name      string
		leftCount int
		expected  RoomState
	}{
		{name: "no leaves", leftCount: 0, expected: ROOM_STATE_ACTIVE},
		{name: "one leave", leftCount: 1, expected: ROOM_STATE_ONE_LEFT},
		{name: "both left", leftCount: 2, expected: ROOM_STATE_CLOSED},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RoomStateOf(tt.leftCount)
			if got != tt.expected {
				t.Errorf("RoomStateOf(%d) = %v, want %v", tt.leftCount, got, tt.expected)
			}
			if !got.IsValid() {
				t.Errorf("RoomStateOf(%d) returned an invalid state", tt.leftCount)
			}
		})
	}
}

func TestMessageStateOf(t *testing.T) {
	tests := []struct {
		name      string
		leftCount int
		expected  MessageState
	}{
		{name: "visible", leftCount: 0, expected: MESSAGE_STATE_VISIBLE},
		{name: "hidden for one", leftCount: 1, expected: MESSAGE_STATE_HIDDEN_FOR_ONE},
		{name: "purged", leftCount: 2, expected: MESSAGE_STATE_PURGED},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MessageStateOf(tt.leftCount)
			if got != tt.expected {
				t.Errorf("MessageStateOf(%d) = %v, want %v", tt.leftCount, got, tt.expected)
			}
		})
	}
}

func TestRoomState_IsValid(t *testing.T) {
	if RoomState("unknown").IsValid() {
		t.Errorf("expected an unknown room state to be invalid")
	}
	if MessageState("").IsValid() {
		t.Errorf("expected an empty message state to be invalid")
	}
}
