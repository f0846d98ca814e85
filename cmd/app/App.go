package app

import (
	"context"
	"sync"

	"github.com/redis/go-redis/v9"

	"privateChat/configs"
	"privateChat/internal/handlers"
	"privateChat/internal/repositories"
	"privateChat/internal/servers/cache"
	"privateChat/internal/servers/database"
	"privateChat/internal/servers/http"
	"privateChat/internal/services"
)

var (
	app  *App
	once sync.Once
)

type App struct {
	redis   *redis.Client
	ctx     context.Context
	configs *configs.Config
}

func GetApp() *App {
	once.Do(func() {
		app = &App{}
	})
	return app
}

func (app *App) LetsGo() {
	app.ctx = context.Background()
	app.configs = configs.GetConfig()
	app.redis = cache.GetRedis(app.configs)

	db := database.GetDB(app.configs)
	authRepo := repositories.NewAuthenticationRepository(db)
	authService := services.NewAuthenticationService(authRepo, app.configs)
	userRepo := repositories.NewUserRepository(db)
	userService := services.NewUserService(userRepo, app.redis, app.ctx, app.configs)
	chatRepo := repositories.NewChatRepository(db)
	chatService := services.NewChatService(chatRepo, userService)

	restHandler := handlers.NewRestHandler(
		authService,
		chatService,
		userService,
	)

	http.NewHttpServer(app.ctx, app.configs, restHandler).Run()
}
