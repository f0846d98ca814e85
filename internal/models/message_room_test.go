package models

import "testing"

func TestPairKeyFor_OrderIndependent(t *testing.T) {
	if PairKeyFor(3, 7) != PairKeyFor(7, 3) {
		t.Errorf("expected the pair key to be order independent")
	}
	if PairKeyFor(3, 7) != "3:7" {
		t.Errorf("expected the smaller id first, got %s", PairKeyFor(3, 7))
	}
}

func TestMessageRoom_Participants(t *testing.T) {
	room := MessageRoom{FirstUserID: 1, SecondUserID: 2}

	if !room.HasParticipant(1) || !room.HasParticipant(2) {
		t.Errorf("expected both slots to count as participants")
	}
	if room.HasParticipant(3) {
		t.Errorf("expected an outsider to not be a participant")
	}
	if room.OtherParticipant(1) != 2 || room.OtherParticipant(2) != 1 {
		t.Errorf("expected OtherParticipant to return the opposite slot")
	}
}

func TestMessageRoom_HasLeft(t *testing.T) {
	room := MessageRoom{
		FirstUserID:  1,
		SecondUserID: 2,
		LeftBy:       []MessageRoomLeave{{UserID: 1}},
	}
	if !room.HasLeft(1) {
		t.Errorf("expected user 1 to be marked as left")
	}
	if room.HasLeft(2) {
		t.Errorf("expected user 2 to not be marked as left")
	}
}

func TestMessage_HiddenFor(t *testing.T) {
	message := Message{LeftBy: []MessageLeave{{UserID: 2}}}
	if !message.HiddenFor(2) {
		t.Errorf("expected the message to be hidden for user 2")
	}
	if message.HiddenFor(1) {
		t.Errorf("expected the message to stay visible for user 1")
	}
}
