package services

import (
	"context"
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"privateChat/configs"
	"privateChat/internal/models"
	"privateChat/internal/repositories"
	"privateChat/internal/servers/database"
)

type testEnv struct {
	db          *gorm.DB
	chatService *ChatService
	userService *UserService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	userRepo := repositories.NewUserRepository(db)
	// nil redis client: the user service falls back to the repository
	userService := NewUserService(userRepo, nil, context.Background(), configs.GetConfig())
	chatRepo := repositories.NewChatRepository(db)
	chatService := NewChatService(chatRepo, userService)

	return &testEnv{
		db:          db,
		chatService: chatService,
		userService: userService,
	}
}

func (env *testEnv) createUser(t *testing.T, email string) *models.User {
	t.Helper()
	user := &models.User{
		FirstName:    "Test",
		LastName:     "User",
		Email:        email,
		PasswordHash: "x",
	}
	if err := env.db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user %s: %v", email, err)
	}
	return user
}
