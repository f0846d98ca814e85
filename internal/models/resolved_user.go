package models

// ResolvedUser is what the user directory hands to the chat subsystem: the
// user record plus both directions of the block relation, as explicit sets.
type ResolvedUser struct {
	User        *User  `json:"user"`
	BlockedByMe []uint `json:"blocked_by_me"`
	BlockingMe  []uint `json:"blocking_me"`
}

// HasBlocked reports whether the resolved user has blocked userID.
func (ru *ResolvedUser) HasBlocked(userID uint) bool {
	for _, id := range ru.BlockedByMe {
		if id == userID {
			return true
		}
	}
	return false
}

// IsBlockedBy reports whether userID has blocked the resolved user.
func (ru *ResolvedUser) IsBlockedBy(userID uint) bool {
	for _, id := range ru.BlockingMe {
		if id == userID {
			return true
		}
	}
	return false
}
