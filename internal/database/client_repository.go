package database

import (
	"database/sql"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/soluciones-it/billing-service/internal/models"
)

// ClientRepository maneja las operaciones de base de datos para Client
type ClientRepository struct {
	db     *DB
	logger *logrus.Logger
}

// NewClientRepository crea una nueva instancia del repositorio
func NewClientRepository(db *DB, logger *logrus.Logger) *ClientRepository {
	return &ClientRepository{
		db:     db,
		logger: logger,
	}
}

// List obtiene todos los clientes
func (r *ClientRepository) List() ([]models.Client, error) {
	query := `
		SELECT id, name, identification, phone, direction, description,
			   iptv, amount, paid, gigabytes
		FROM clients
		ORDER BY id
	`

	rows, cancel, err := r.db.QueryWithTimeout(query)
	if err != nil {
		return nil, fmt.Errorf("error querying clients: %w", err)
	}
	defer cancel()
	defer rows.Close()

	clients := []models.Client{}
	for rows.Next() {
		var client models.Client
		err := rows.Scan(
			&client.ID, &client.Name, &client.Identification, &client.Phone,
			&client.Direction, &client.Description, &client.IPTV,
			&client.Amount, &client.Paid, &client.Gigabytes,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning client: %w", err)
		}
		clients = append(clients, client)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating clients: %w", err)
	}

	return clients, nil
}

// Insert crea un nuevo cliente mediante el procedimiento almacenado
func (r *ClientRepository) Insert(req *models.InsertClientRequest) error {
	return r.db.WithTransaction(func(tx *sql.Tx) error {
		_, err := tx.Exec(
			"SELECT insert_client($1,$2,$3,$4,$5,$6,$7,$8,$9);",
			req.Name, req.Identification, req.Phone, req.Direction,
			req.Description, req.IPTV, req.Amount, req.Paid, req.Gigabytes,
		)
		if err != nil {
			return fmt.Errorf("error inserting client: %w", err)
		}
		return nil
	})
}

// Update actualiza un cliente mediante el procedimiento almacenado. No se
// verifica la existencia del id; la base de datos decide.
func (r *ClientRepository) Update(req *models.UpdateClientRequest) error {
	return r.db.WithTransaction(func(tx *sql.Tx) error {
		_, err := tx.Exec(
			"SELECT update_client($1,$2,$3,$4,$5,$6,$7,$8,$9,$10);",
			req.ID, req.Name, req.Identification, req.Phone, req.Direction,
			req.Description, req.IPTV, req.Amount, req.Paid, req.Gigabytes,
		)
		if err != nil {
			return fmt.Errorf("error updating client: %w", err)
		}
		return nil
	})
}

// Delete elimina un cliente mediante el procedimiento almacenado
func (r *ClientRepository) Delete(id *int) error {
	return r.db.WithTransaction(func(tx *sql.Tx) error {
		_, err := tx.Exec("SELECT delete_client($1);", id)
		if err != nil {
			return fmt.Errorf("error deleting client: %w", err)
		}
		return nil
	})
}

// UpdatePaidStatus actualiza el estado de pago de un cliente
func (r *ClientRepository) UpdatePaidStatus(id *int, paid *bool) error {
	return r.db.WithTransaction(func(tx *sql.Tx) error {
		_, err := tx.Exec("UPDATE clients SET paid = $1 WHERE id = $2;", paid, id)
		if err != nil {
			return fmt.Errorf("error updating paid status: %w", err)
		}
		return nil
	})
}

// ResetPaids marca todos los clientes como no pagados
func (r *ClientRepository) ResetPaids() error {
	return r.db.WithTransaction(func(tx *sql.Tx) error {
		_, err := tx.Exec("UPDATE clients SET paid = FALSE;")
		if err != nil {
			return fmt.Errorf("error resetting paid status: %w", err)
		}
		return nil
	})
}
