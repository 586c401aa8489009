package database

import (
	"database/sql"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/soluciones-it/billing-service/internal/models"
)

// PaymentRepository maneja las operaciones de base de datos para Paid
type PaymentRepository struct {
	db     *DB
	logger *logrus.Logger
}

// NewPaymentRepository crea una nueva instancia del repositorio
func NewPaymentRepository(db *DB, logger *logrus.Logger) *PaymentRepository {
	return &PaymentRepository{
		db:     db,
		logger: logger,
	}
}

// List obtiene todos los registros de pago
func (r *PaymentRepository) List() ([]models.Paid, error) {
	query := `
		SELECT id, name, identification, phone, amount, date_payment, type
		FROM paids
		ORDER BY id
	`

	rows, cancel, err := r.db.QueryWithTimeout(query)
	if err != nil {
		return nil, fmt.Errorf("error querying paids: %w", err)
	}
	defer cancel()
	defer rows.Close()

	paids := []models.Paid{}
	for rows.Next() {
		var paid models.Paid
		err := rows.Scan(
			&paid.ID, &paid.Name, &paid.Identification, &paid.Phone,
			&paid.Amount, &paid.DatePayment, &paid.Type,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning paid: %w", err)
		}
		paids = append(paids, paid)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating paids: %w", err)
	}

	return paids, nil
}

// Insert registra un pago mediante el procedimiento almacenado. El
// procedimiento copia nombre, identificación y teléfono del cliente.
func (r *PaymentRepository) Insert(req *models.InsertPaymentRequest) error {
	return r.db.WithTransaction(func(tx *sql.Tx) error {
		_, err := tx.Exec(
			"SELECT insert_payment($1,$2,$3);",
			req.IDClient, req.Date, req.Type,
		)
		if err != nil {
			return fmt.Errorf("error inserting payment: %w", err)
		}
		return nil
	})
}

// CleanAll elimina todos los registros de pago
func (r *PaymentRepository) CleanAll() error {
	return r.db.WithTransaction(func(tx *sql.Tx) error {
		_, err := tx.Exec("SELECT delete_all_payments();")
		if err != nil {
			return fmt.Errorf("error cleaning payments: %w", err)
		}
		return nil
	})
}
