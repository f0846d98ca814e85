package models

import (
	"gorm.io/gorm"
)

// User represents a user in the application
type User struct {
	gorm.Model
	FirstName    string `gorm:"not null" json:"first_name"`
	LastName     string `gorm:"not null" json:"last_name"`
	Email        string `gorm:"unique;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
	Password     string `gorm:"-" json:"password"`
}

func (user *User) ToUserResponse() *UserResponse {
	// A conversation partner may have closed their account; their side of the
	// room keeps a tombstoned profile instead of failing the whole load.
	if user.DeletedAt.Valid {
		return &UserResponse{
			ID:      user.ID,
			Deleted: true,
		}
	}
	return &UserResponse{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	}
}

func (user *User) ToProfileResponse() *ProfileResponse {
	return &ProfileResponse{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	}
}
