package services

import (
	"errors"
	"testing"

	"privateChat/internal/errs"
)

func TestResolveUser_BlockSets(t *testing.T) {
	env := newTestEnv(t)
	alice := env.createUser(t, "alice@example.com")
	bob := env.createUser(t, "bob@example.com")

	if blockErrs := env.userService.BlockUser(alice.ID, bob.ID); len(blockErrs) > 0 {
		t.Fatalf("BlockUser failed: %v", blockErrs)
	}

	resolvedAlice, err := env.userService.ResolveUser(alice.ID)
	if err != nil {
		t.Fatalf("ResolveUser failed: %v", err)
	}
	if !resolvedAlice.HasBlocked(bob.ID) {
		t.Errorf("expected alice's blockedByMe to contain bob")
	}
	if resolvedAlice.IsBlockedBy(bob.ID) {
		t.Errorf("expected alice's blockingMe to be empty")
	}

	resolvedBob, _ := env.userService.ResolveUser(bob.ID)
	if !resolvedBob.IsBlockedBy(alice.ID) {
		t.Errorf("expected bob's blockingMe to contain alice")
	}
	if resolvedBob.HasBlocked(alice.ID) {
		t.Errorf("expected bob's blockedByMe to be empty")
	}
}

func TestResolveUser_TombstonesDeletedAccounts(t *testing.T) {
	env := newTestEnv(t)
	alice := env.createUser(t, "alice@example.com")

	if err := env.db.Delete(alice).Error; err != nil {
		t.Fatalf("failed to soft-delete user: %v", err)
	}

	resolved, err := env.userService.ResolveUser(alice.ID)
	if err != nil {
		t.Fatalf("expected a tombstoned profile, got error: %v", err)
	}
	response := resolved.User.ToUserResponse()
	if !response.Deleted {
		t.Errorf("expected the tombstone flag to be set")
	}
	if response.FirstName != "" {
		t.Errorf("expected personal fields to be blanked, got %q", response.FirstName)
	}
}

func TestGetProfile(t *testing.T) {
	env := newTestEnv(t)
	alice := env.createUser(t, "alice@example.com")

	profile, profileErrs := env.userService.GetProfile(alice.ID)
	if len(profileErrs) > 0 {
		t.Fatalf("GetProfile failed: %v", profileErrs)
	}
	if profile.ID != alice.ID || profile.Email != alice.Email {
		t.Errorf("expected the own profile to carry the email, got %+v", profile)
	}
	if profile.FirstName != alice.FirstName || profile.LastName != alice.LastName {
		t.Errorf("expected the profile names to match, got %+v", profile)
	}

	if _, profileErrs := env.userService.GetProfile(9999); len(profileErrs) == 0 || !errors.Is(profileErrs[0], errs.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", profileErrs)
	}
}

func TestBlockUser_Rules(t *testing.T) {
	env := newTestEnv(t)
	alice := env.createUser(t, "alice@example.com")
	bob := env.createUser(t, "bob@example.com")

	if blockErrs := env.userService.BlockUser(alice.ID, alice.ID); len(blockErrs) == 0 || !errors.Is(blockErrs[0], errs.ErrSelfBlocking) {
		t.Errorf("expected ErrSelfBlocking, got %v", blockErrs)
	}

	if blockErrs := env.userService.BlockUser(alice.ID, 9999); len(blockErrs) == 0 || !errors.Is(blockErrs[0], errs.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", blockErrs)
	}

	if blockErrs := env.userService.BlockUser(alice.ID, bob.ID); len(blockErrs) > 0 {
		t.Fatalf("BlockUser failed: %v", blockErrs)
	}
	if blockErrs := env.userService.BlockUser(alice.ID, bob.ID); len(blockErrs) == 0 || !errors.Is(blockErrs[0], errs.ErrAlreadyBlocked) {
		t.Errorf("expected ErrAlreadyBlocked, got %v", blockErrs)
	}

	blocked, listErrs := env.userService.GetBlockedUsers(alice.ID)
	if len(listErrs) > 0 {
		t.Fatalf("GetBlockedUsers failed: %v", listErrs)
	}
	if len(blocked) != 1 || blocked[0].ID != bob.ID {
		t.Errorf("expected bob in alice's block list")
	}

	if unblockErrs := env.userService.UnblockUser(alice.ID, bob.ID); len(unblockErrs) > 0 {
		t.Fatalf("UnblockUser failed: %v", unblockErrs)
	}
	if unblockErrs := env.userService.UnblockUser(alice.ID, bob.ID); len(unblockErrs) == 0 || !errors.Is(unblockErrs[0], errs.ErrBlockNotFound) {
		t.Errorf("expected ErrBlockNotFound, got %v", unblockErrs)
	}
}
