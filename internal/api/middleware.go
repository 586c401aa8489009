package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/soluciones-it/billing-service/internal/config"
	"github.com/soluciones-it/billing-service/internal/models"
)

// AttemptCounter cuenta intentos de login por clave con una ventana de
// expiración. database.Redis lo implementa.
type AttemptCounter interface {
	Incr(key string) (int64, error)
	Expire(key string, ttl time.Duration) error
}

// RequestID asigna un identificador único a cada request y lo expone en
// la cabecera X-Request-ID
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}

// CORS retorna middleware de CORS para desarrollo
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Content-Length, Accept-Encoding, Authorization, X-Request-ID")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

// LoginRateLimiter limita los intentos de login por IP usando un contador
// en Redis. Si Redis no está disponible el limitador se desactiva.
func LoginRateLimiter(counter AttemptCounter, cfg *config.Config, logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if counter == nil {
			c.Next()
			return
		}

		key := fmt.Sprintf("login_attempts:%s", c.ClientIP())

		attempts, err := counter.Incr(key)
		if err != nil {
			logger.WithError(err).Warn("Error counting login attempts")
			c.Next()
			return
		}

		// La primera petición de la ventana fija el TTL
		if attempts == 1 {
			if err := counter.Expire(key, cfg.RateLimit.Window); err != nil {
				logger.WithError(err).Warn("Error setting rate limit window")
			}
		}

		if attempts > int64(cfg.RateLimit.LoginAttempts) {
			logger.WithFields(logrus.Fields{
				"ip":       c.ClientIP(),
				"attempts": attempts,
			}).Warn("Login rate limit exceeded")
			c.JSON(http.StatusTooManyRequests, models.NewRateLimitedError("Too many login attempts"))
			c.Abort()
			return
		}

		c.Next()
	}
}
