package models

import "time"

// Paid representa un registro de pago de un cliente. La base de datos
// copia los datos de contacto del cliente al insertar; nunca se actualiza.
type Paid struct {
	ID             int        `json:"id" db:"id"`
	Name           *string    `json:"name" db:"name"`
	Identification *string    `json:"identification" db:"identification"`
	Phone          *string    `json:"phone" db:"phone"`
	Amount         *float64   `json:"amount" db:"amount"`
	DatePayment    *time.Time `json:"date_payment" db:"date_payment"`
	Type           *string    `json:"type" db:"type"`
}

// InsertPaymentRequest representa el request para registrar un pago.
// El tipo es una cadena abierta ('Sinpe movil', 'Efectivo').
type InsertPaymentRequest struct {
	IDClient *int    `json:"id_client"`
	Date     *string `json:"date"`
	Type     *string `json:"type"`
}

// PaidListResponse representa la respuesta del listado de pagos
type PaidListResponse struct {
	Data []Paid `json:"data"`
}
