// Package server собирает HTTP API движка поиска магазинов поверх Gin.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"storefinder/classification"
	"storefinder/dataset"
	"storefinder/discovery"
	"storefinder/docs"
	"storefinder/internal/config"
	"storefinder/server/middleware"
)

// Version версия API сервера
const Version = "1.0.0"

// Server HTTP сервер движка поиска магазинов
type Server struct {
	facade   *discovery.Facade
	products *classification.Classifier
	detector *classification.Classifier
	local    *dataset.Dataset
	config   *config.Config
	logger   *slog.Logger

	httpServer *http.Server
}

// New создает новый сервер
func New(facade *discovery.Facade, local *dataset.Dataset, cfg *config.Config) *Server {
	return &Server{
		facade:   facade,
		products: classification.NewProductClassifier(),
		detector: classification.NewBrandDetector(),
		local:    local,
		config:   cfg,
		logger:   slog.Default().With("component", "server"),
	}
}

// Handler строит http.Handler со всеми middleware и маршрутами
func (s *Server) Handler() http.Handler {
	// Режим Gin: release по умолчанию, переопределяется через GIN_MODE
	if ginMode := os.Getenv("GIN_MODE"); ginMode == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.CORS())
	router.Use(middleware.Gzip())
	router.Use(middleware.Logger(s.logger))
	router.Use(middleware.Recovery(s.logger))

	registerSwaggerRoutes(router)

	router.GET("/health", s.HandleHealth)

	api := router.Group("/api")
	{
		api.GET("/suggest", s.HandleSuggest)
		api.GET("/resolve/:id", s.HandleResolve)
		api.POST("/classify/product", s.HandleClassifyProduct)
		api.POST("/classify/store", s.HandleClassifyStore)
		api.POST("/hours/normalize", s.HandleNormalizeHours)
		api.GET("/distance", s.HandleDistance)
	}

	return router
}

// registerSwaggerRoutes регистрирует Swagger UI
func registerSwaggerRoutes(router *gin.Engine) {
	docs.SwaggerInfo.BasePath = "/"
	docs.SwaggerInfo.Schemes = []string{"http", "https"}

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))
}

// Start запускает HTTP сервер
func (s *Server) Start() error {
	s.httpServer = &http.Server{
		Addr:              ":" + s.config.Port,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	s.logger.Info("server starting", "port", s.config.Port)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// Shutdown останавливает HTTP сервер gracefully
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}

	s.logger.Info("initiating graceful shutdown")
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}
	s.logger.Info("graceful shutdown completed")
	return nil
}
