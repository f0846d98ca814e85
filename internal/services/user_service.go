package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"privateChat/configs"
	"privateChat/internal/errs"
	"privateChat/internal/models"
	"privateChat/internal/repositories"
)

// UserService is the user directory: user lookup plus both directions of the
// block relation. The block sets are cached in redis with a short TTL since
// every message send resolves them twice.
type UserService struct {
	userRepo *repositories.UserRepository
	redis    *redis.Client
	ctx      context.Context
	config   *configs.Config
}

type blockSets struct {
	BlockedByMe []uint `json:"blocked_by_me"`
	BlockingMe  []uint `json:"blocking_me"`
}

func NewUserService(
	userRepo *repositories.UserRepository,
	redis *redis.Client,
	ctx context.Context,
	config *configs.Config,
) *UserService {
	return &UserService{
		userRepo: userRepo,
		redis:    redis,
		ctx:      ctx,
		config:   config,
	}
}

// ResolveUser returns the user record with its block sets. Soft-deleted
// users resolve to a tombstoned record rather than an error, since a
// conversation partner may have closed their account.
func (us *UserService) ResolveUser(userID uint) (*models.ResolvedUser, error) {
	user, err := us.userRepo.FindUserIncludingDeleted(userID)
	if err != nil {
		return nil, err
	}

	sets, err := us.getBlockSets(userID)
	if err != nil {
		return nil, err
	}

	return &models.ResolvedUser{
		User:        user,
		BlockedByMe: sets.BlockedByMe,
		BlockingMe:  sets.BlockingMe,
	}, nil
}

func (us *UserService) getBlockSets(userID uint) (*blockSets, error) {
	key := blockSetsCacheKey(userID)

	if us.redis != nil {
		cached, err := us.redis.Get(us.ctx, key).Result()
		if err == nil {
			var sets blockSets
			if err := json.Unmarshal([]byte(cached), &sets); err == nil {
				return &sets, nil
			}
		} else if err != redis.Nil {
			log.Printf("Block set cache read failed for user %d: %v", userID, err)
		}
	}

	blockedByMe, err := us.userRepo.GetBlockedUserIDs(userID)
	if err != nil {
		return nil, err
	}
	blockingMe, err := us.userRepo.GetBlockingUserIDs(userID)
	if err != nil {
		return nil, err
	}
	sets := &blockSets{BlockedByMe: blockedByMe, BlockingMe: blockingMe}

	if us.redis != nil {
		payload, err := json.Marshal(sets)
		if err == nil {
			ttl := time.Duration(us.config.Viper.GetInt("cache.block_list_ttl")) * time.Second
			if err := us.redis.Set(us.ctx, key, payload, ttl).Err(); err != nil {
				log.Printf("Block set cache write failed for user %d: %v", userID, err)
			}
		}
	}

	return sets, nil
}

func (us *UserService) invalidateBlockSets(userIDs ...uint) {
	if us.redis == nil {
		return
	}
	keys := make([]string, 0, len(userIDs))
	for _, userID := range userIDs {
		keys = append(keys, blockSetsCacheKey(userID))
	}
	if err := us.redis.Del(us.ctx, keys...).Err(); err != nil {
		log.Printf("Block set cache invalidation failed: %v", err)
	}
}

func blockSetsCacheKey(userID uint) string {
	return fmt.Sprintf("block_sets:%d", userID)
}

func (us *UserService) BlockUser(blockerID, blockedID uint) []error {
	if blockerID == blockedID {
		return []error{errs.ErrSelfBlocking}
	}
	if _, err := us.userRepo.FindUser(blockedID); err != nil {
		return []error{err}
	}
	if err := us.userRepo.CreateBlock(blockerID, blockedID); err != nil {
		return []error{err}
	}
	us.invalidateBlockSets(blockerID, blockedID)
	return nil
}

func (us *UserService) UnblockUser(blockerID, blockedID uint) []error {
	if err := us.userRepo.DeleteBlock(blockerID, blockedID); err != nil {
		return []error{err}
	}
	us.invalidateBlockSets(blockerID, blockedID)
	return nil
}

// GetProfile returns the authenticated user's own profile, email included.
func (us *UserService) GetProfile(userID uint) (*models.ProfileResponse, []error) {
	user, err := us.userRepo.FindUser(userID)
	if err != nil {
		return nil, []error{err}
	}
	return user.ToProfileResponse(), nil
}

func (us *UserService) GetBlockedUsers(userID uint) ([]*models.UserResponse, []error) {
	users, err := us.userRepo.GetBlockedUsers(userID)
	if err != nil {
		return nil, []error{err}
	}
	responses := []*models.UserResponse{}
	for i := range users {
		responses = append(responses, users[i].ToUserResponse())
	}
	return responses, nil
}
