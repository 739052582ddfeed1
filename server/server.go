package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"agrodashboard/internal/api/routes"
	"agrodashboard/internal/config"
	"agrodashboard/internal/container"
	"agrodashboard/server/middleware"
)

// Config алиас конфигурации для cmd
type Config = config.Config

// LoadConfig алиас загрузки конфигурации
var LoadConfig = config.LoadConfig

// Server HTTP сервер дашборда
type Server struct {
	config     *Config
	container  *container.Container
	httpServer *http.Server

	handlerOnce    sync.Once
	httpHandler    http.Handler
	handlerInitErr error
}

// NewServer создает сервер поверх инициализированного контейнера
func NewServer(cfg *Config, c *container.Container) (*Server, error) {
	if cfg == nil || c == nil {
		return nil, fmt.Errorf("config and container are required")
	}
	if !c.IsInitialized() {
		return nil, fmt.Errorf("container is not initialized")
	}
	return &Server{config: cfg, container: c}, nil
}

// Handler возвращает http.Handler с middleware и маршрутами
func (s *Server) Handler() (http.Handler, error) {
	s.handlerOnce.Do(func() {
		s.httpHandler, s.handlerInitErr = s.buildHTTPHandler()
	})
	return s.httpHandler, s.handlerInitErr
}

func (s *Server) buildHTTPHandler() (http.Handler, error) {
	if s.container.DashboardHandler == nil {
		return nil, fmt.Errorf("dashboard handler is not initialized")
	}

	// GIN_MODE переопределяет режим; по умолчанию release
	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(middleware.GinRequestIDMiddleware())
	router.Use(middleware.GinCORSMiddleware())
	router.Use(middleware.GinGzipMiddleware())
	router.Use(middleware.GinLoggerMiddleware())
	router.Use(middleware.GinRecoveryMiddleware())

	routes.RegisterSwaggerRoutes(router, fmt.Sprintf("localhost:%s", s.config.Port))

	api := router.Group("/api")
	api.Use(middleware.GinRateLimitMiddleware(s.config.RateLimitPerSec, s.config.RateLimitBurst))
	routes.RegisterDashboardRoutes(api, s.container.DashboardHandler)

	return router, nil
}

// ServeHTTP реализует http.Handler для тестов
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	handler, err := s.Handler()
	if err != nil {
		http.Error(w, "server is not initialized", http.StatusInternalServerError)
		return
	}
	handler.ServeHTTP(w, r)
}

// Start запускает HTTP сервер; возвращает nil после Shutdown
func (s *Server) Start() error {
	handler, err := s.Handler()
	if err != nil {
		return err
	}

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%s", s.config.Port),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 2 * time.Minute, // выгрузка XLSX
		IdleTimeout:  120 * time.Second,
	}

	log.Printf("Starting HTTP server on %s...", s.httpServer.Addr)
	log.Printf("API доступно по адресу: http://localhost%s/api", s.httpServer.Addr)

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start HTTP server on %s: %w", s.httpServer.Addr, err)
	}
	return nil
}

// Shutdown останавливает HTTP сервер gracefully
func (s *Server) Shutdown(ctx context.Context) error {
	log.Println("Initiating graceful shutdown...")

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			return fmt.Errorf("ошибка остановки сервера: %w", err)
		}
	}

	if err := s.container.Shutdown(ctx); err != nil {
		return fmt.Errorf("ошибка остановки контейнера: %w", err)
	}

	log.Println("Graceful shutdown completed")
	return nil
}
