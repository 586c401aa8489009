package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/soluciones-it/billing-service/internal/api"
	"github.com/soluciones-it/billing-service/internal/config"
	"github.com/soluciones-it/billing-service/internal/database"
	"github.com/soluciones-it/billing-service/internal/services"
)

func main() {
	// Cargar configuración
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	// Configurar logging
	logger := setupLogger(cfg)
	logger.Info("Starting billing service...")

	// Configurar modo de Gin
	if cfg.IsDevelopment() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Conectar a la base de datos
	db, err := database.Connect(cfg)
	if err != nil {
		logger.Fatalf("Error connecting to database: %v", err)
	}
	db.LogStats(logger)
	defer func() {
		if err := db.Close(); err != nil {
			logger.Errorf("Error closing connection pool: %v", err)
		}
	}()

	// Conectar a Redis (opcional, solo para rate limiting del login)
	redis, err := database.ConnectRedis(cfg)
	if err != nil {
		logger.Warnf("Error connecting to Redis, login rate limiting disabled: %v", err)
		redis = nil
	} else {
		defer redis.Close()
	}

	// Inicializar servicios
	authService := services.NewAuthService(cfg, logger)
	clientService := services.NewClientService(db, logger)
	paymentService := services.NewPaymentService(db, logger)

	// Inicializar API
	apiHandler := api.NewAPI(authService, clientService, paymentService, db, redis, logger)

	// Configurar router
	router := api.SetupRouter(apiHandler, redis, cfg, logger)

	// Crear servidor HTTP
	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Canal para señales de terminación
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Iniciar servidor en goroutine
	go func() {
		logger.Infof("Server starting on %s:%s", cfg.Server.Host, cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Error starting server: %v", err)
		}
	}()

	// Esperar señal de terminación
	<-quit
	logger.Info("Shutting down server...")

	// Contexto con timeout para shutdown graceful
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Shutdown graceful del servidor
	if err := server.Shutdown(ctx); err != nil {
		logger.Errorf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server exited")
}

// setupLogger configura el logger según la configuración
func setupLogger(cfg *config.Config) *logrus.Logger {
	logger := logrus.New()

	// Configurar nivel de log
	level, err := logrus.ParseLevel(cfg.Logging.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	// Configurar formato
	if cfg.Logging.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return logger
}
