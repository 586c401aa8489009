package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"github.com/soluciones-it/billing-service/internal/config"
)

// DB representa la conexión a la base de datos
type DB struct {
	*sql.DB
}

// Connect establece la conexión a PostgreSQL
func Connect(cfg *config.Config) (*DB, error) {
	dsn := cfg.GetDSN()

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	// Pool acotado: máximo 10 conexiones abiertas, 1 inactiva mínima.
	// La petición que excede el límite espera una conexión libre.
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(10 * time.Minute)
	db.SetConnMaxIdleTime(5 * time.Minute)

	// Verificar conexión
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("error pinging database: %w", err)
	}

	return &DB{db}, nil
}

// Close cierra el pool de conexiones
func (db *DB) Close() error {
	return db.DB.Close()
}

// HealthCheck verifica la salud de la base de datos
func (db *DB) HealthCheck() error {
	if err := db.Ping(); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	rows, err := db.QueryContext(ctx, "SELECT 1")
	if err != nil {
		return fmt.Errorf("database query test failed: %w", err)
	}
	rows.Close()

	return nil
}

// GetStats retorna estadísticas del pool de conexiones
func (db *DB) GetStats() map[string]interface{} {
	stats := make(map[string]interface{})

	stats["max_open_connections"] = db.Stats().MaxOpenConnections
	stats["open_connections"] = db.Stats().OpenConnections
	stats["in_use"] = db.Stats().InUse
	stats["idle"] = db.Stats().Idle
	stats["wait_count"] = db.Stats().WaitCount
	stats["wait_duration"] = db.Stats().WaitDuration

	return stats
}

// QueryWithTimeout ejecuta una query de lectura con timeout. El cancel
// retornado debe diferirse después de consumir las filas, para que el
// timeout cubra también la iteración.
func (db *DB) QueryWithTimeout(query string, args ...interface{}) (*sql.Rows, context.CancelFunc, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		cancel()
		return nil, nil, err
	}

	return rows, cancel, nil
}

// WithTransaction ejecuta una función dentro de una transacción. Toda
// escritura pasa por aquí para que el commit sea explícito y el rollback
// devuelva siempre la conexión al pool.
func (db *DB) WithTransaction(fn func(*sql.Tx) error) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("error beginning transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("error rolling back transaction: %w, original error: %w", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error committing transaction: %w", err)
	}

	return nil
}

// LogStats registra las estadísticas del pool
func (db *DB) LogStats(logger *logrus.Logger) {
	stats := db.GetStats()
	logger.WithFields(logrus.Fields(stats)).Info("Database pool statistics")
}
