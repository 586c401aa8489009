package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config representa la configuración del servicio
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	JWT       JWTConfig
	Auth      AuthConfig
	RateLimit RateLimitConfig
	Logging   LoggingConfig
}

// ServerConfig representa la configuración del servidor HTTP
type ServerConfig struct {
	Port string
	Host string
	Env  string
}

// DatabaseConfig representa la configuración de la base de datos
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// RedisConfig representa la configuración de Redis
type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// JWTConfig representa la configuración de JWT
type JWTConfig struct {
	Secret string
	Expiry time.Duration
}

// AuthConfig representa las credenciales de la cuenta administradora
type AuthConfig struct {
	Username string
	Password string
}

// RateLimitConfig representa la configuración de rate limiting del login
type RateLimitConfig struct {
	LoginAttempts int
	Window        time.Duration
}

// LoggingConfig representa la configuración de logging
type LoggingConfig struct {
	Level  string
	Format string
}

// Load carga la configuración desde variables de entorno
func Load() (*Config, error) {
	// Cargar archivo .env si existe
	if err := godotenv.Load(); err != nil {
		// No es crítico si no existe el archivo .env
	}

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "7500"),
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Env:  getEnv("SERVER_ENV", "development"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("PGHOST", "localhost"),
			Port:     getEnv("PGPORT", "5432"),
			User:     getEnv("PGUSER", "postgres"),
			Password: getEnv("PGPASSWORD", "postgres"),
			Name:     getEnv("PGDATABASE", "billing"),
			SSLMode:  getEnv("DB_SSLMODE", "require"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		JWT: JWTConfig{
			Secret: getEnv("JWT_SECRET", ""),
			Expiry: getEnvAsDuration("JWT_EXPIRY", 24*time.Hour),
		},
		Auth: AuthConfig{
			Username: getEnv("ADMIN_USERNAME", ""),
			Password: getEnv("ADMIN_PASSWORD", ""),
		},
		RateLimit: RateLimitConfig{
			LoginAttempts: getEnvAsInt("RATE_LIMIT_LOGIN_ATTEMPTS", 10),
			Window:        getEnvAsDuration("RATE_LIMIT_WINDOW", time.Minute),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}

	return config, nil
}

// getEnv obtiene una variable de entorno o retorna un valor por defecto
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt obtiene una variable de entorno como entero
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsDuration obtiene una variable de entorno como duración
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// IsDevelopment retorna true si el entorno es de desarrollo
func (c *Config) IsDevelopment() bool {
	return c.Server.Env == "development"
}

// IsProduction retorna true si el entorno es de producción
func (c *Config) IsProduction() bool {
	return c.Server.Env == "production"
}

// GetDSN retorna la cadena de conexión a la base de datos
func (c *Config) GetDSN() string {
	return "host=" + c.Database.Host +
		" port=" + c.Database.Port +
		" user=" + c.Database.User +
		" password=" + c.Database.Password +
		" dbname=" + c.Database.Name +
		" sslmode=" + c.Database.SSLMode
}

// GetRedisAddr retorna la dirección de Redis
func (c *Config) GetRedisAddr() string {
	return c.Redis.Host + ":" + c.Redis.Port
}
