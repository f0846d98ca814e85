package http

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"privateChat/configs"
	"privateChat/internal/handlers"
)

var (
	httpServer *HttpServer
	once       sync.Once
)

type HttpServer struct {
	ctx     context.Context
	config  *configs.Config
	router  *gin.Engine
	handler *handlers.RestHandler
}

func NewHttpServer(ctx context.Context, config *configs.Config, handler *handlers.RestHandler) *HttpServer {
	once.Do(func() {
		httpServer = &HttpServer{
			ctx:     ctx,
			config:  config,
			handler: handler,
		}
	})
	return httpServer
}

func (hs *HttpServer) Run() {
	hs.initializeGin()
	hs.setupRestfulRoutes()

	server := hs.startServer()

	// Wait for interrupt signal to gracefully shut down the server
	hs.waitForShutdown(server)
}

func (hs *HttpServer) initializeGin() {
	hs.router = gin.Default()
	hs.router.Use(hs.handler.RequestIDMiddleware())
}

func (hs *HttpServer) setupRestfulRoutes() {
	hs.router.POST("/login", hs.handler.Login)
	hs.router.POST("/register", hs.handler.Register)
	hs.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	authenticated := hs.router.Group("/", hs.handler.MustAuthenticateMiddleware())
	authenticated.GET("/profile", hs.handler.GetProfile)

	chat := authenticated.Group("/chat")
	chat.POST("/messages", hs.handler.SendMessage)
	chat.GET("/rooms", hs.handler.GetRooms)
	chat.GET("/rooms/:id", hs.handler.GetRoom)
	chat.DELETE("/rooms/:id", hs.handler.LeaveRoom)

	users := authenticated.Group("/users")
	users.GET("", hs.handler.GetAllUsersWithPagination)
	users.GET("/blocked", hs.handler.GetBlockedUsers)
	users.GET("/:id", hs.handler.GetSingleUser)
	users.POST("/:id/block", hs.handler.BlockUser)
	users.DELETE("/:id/block", hs.handler.UnblockUser)
}

func (hs *HttpServer) startServer() *http.Server {
	addr := fmt.Sprintf(":%d", hs.config.Viper.GetInt("server.port"))
	server := &http.Server{
		Addr:    addr,
		Handler: hs.router,
	}

	go func() {
		log.Println("HTTP server started on", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	return server
}

func (hs *HttpServer) waitForShutdown(server *http.Server) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	if err := server.Shutdown(hs.ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}
