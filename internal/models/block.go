package models

import (
	"time"
)

// Block is an asymmetric edge: Blocker has blocked Blocked. The chat
// subsystem only reads these edges for gating, it never mutates them.
// Unblocking removes the row, so there is no soft delete here.
type Block struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	BlockerID uint      `gorm:"not null;uniqueIndex:idx_block_pair" json:"blocker_id"`
	BlockedID uint      `gorm:"not null;uniqueIndex:idx_block_pair" json:"blocked_id"`
	Blocker   User      `gorm:"foreignKey:BlockerID" json:"-"`
	Blocked   User      `gorm:"foreignKey:BlockedID" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}
