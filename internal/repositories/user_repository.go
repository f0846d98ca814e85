package repositories

import (
	"errors"

	"gorm.io/gorm"

	"privateChat/internal/errs"
	"privateChat/internal/models"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

func (ur *UserRepository) FindUser(userID uint) (*models.User, error) {
	var user models.User
	if err := ur.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// FindUserIncludingDeleted loads the user even after account closure, so a
// conversation partner resolves to a tombstoned profile instead of an error.
func (ur *UserRepository) FindUserIncludingDeleted(userID uint) (*models.User, error) {
	var user models.User
	if err := ur.db.Unscoped().First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// GetBlockedUserIDs returns the ids the user has blocked (blockedByMe).
func (ur *UserRepository) GetBlockedUserIDs(userID uint) ([]uint, error) {
	var ids []uint
	err := ur.db.Model(&models.Block{}).
		Where("blocker_id = ?", userID).
		Pluck("blocked_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// GetBlockingUserIDs returns the ids of users blocking the user (blockingMe).
func (ur *UserRepository) GetBlockingUserIDs(userID uint) ([]uint, error) {
	var ids []uint
	err := ur.db.Model(&models.Block{}).
		Where("blocked_id = ?", userID).
		Pluck("blocker_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (ur *UserRepository) CreateBlock(blockerID, blockedID uint) error {
	var count int64
	ur.db.Model(&models.Block{}).
		Where("blocker_id = ? AND blocked_id = ?", blockerID, blockedID).
		Count(&count)
	if count > 0 {
		return errs.ErrAlreadyBlocked
	}
	return ur.db.Create(&models.Block{
		BlockerID: blockerID,
		BlockedID: blockedID,
	}).Error
}

func (ur *UserRepository) DeleteBlock(blockerID, blockedID uint) error {
	result := ur.db.
		Where("blocker_id = ? AND blocked_id = ?", blockerID, blockedID).
		Delete(&models.Block{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.ErrBlockNotFound
	}
	return nil
}

func (ur *UserRepository) GetBlockedUsers(userID uint) ([]models.User, error) {
	var users []models.User
	err := ur.db.
		Where("id IN (SELECT blocked_id FROM blocks WHERE blocker_id = ?)", userID).
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}
