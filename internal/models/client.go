package models

// Client representa un cliente del servicio de facturación. Los campos
// distintos del id son anulables en la base de datos, por eso punteros.
type Client struct {
	ID             int      `json:"id" db:"id"`
	Name           *string  `json:"name" db:"name"`
	Identification *string  `json:"identification" db:"identification"`
	Phone          *string  `json:"phone" db:"phone"`
	Direction      *string  `json:"direction" db:"direction"`
	Description    *string  `json:"description" db:"description"`
	IPTV           *bool    `json:"iptv" db:"iptv"`
	Amount         *float64 `json:"amount" db:"amount"`
	Paid           *bool    `json:"paid" db:"paid"`
	Gigabytes      *float64 `json:"gigabytes" db:"gigabytes"`
}

// InsertClientRequest representa el request para crear un cliente.
// Los campos ausentes se pasan como NULL a la base de datos.
type InsertClientRequest struct {
	Name           *string  `json:"name"`
	Identification *string  `json:"identification"`
	Phone          *string  `json:"phone"`
	Direction      *string  `json:"direction"`
	Description    *string  `json:"description"`
	IPTV           *bool    `json:"iptv"`
	Amount         *float64 `json:"amount"`
	Paid           *bool    `json:"paid"`
	Gigabytes      *float64 `json:"gigabytes"`
}

// UpdateClientRequest representa el request para actualizar un cliente
type UpdateClientRequest struct {
	ID             *int     `json:"id"`
	Name           *string  `json:"name"`
	Identification *string  `json:"identification"`
	Phone          *string  `json:"phone"`
	Direction      *string  `json:"direction"`
	Description    *string  `json:"description"`
	IPTV           *bool    `json:"iptv"`
	Amount         *float64 `json:"amount"`
	Paid           *bool    `json:"paid"`
	Gigabytes      *float64 `json:"gigabytes"`
}

// DeleteClientRequest representa el request para eliminar un cliente
type DeleteClientRequest struct {
	ID *int `json:"id"`
}

// UpdatePaidStatusRequest representa el request para marcar el estado de
// pago de un cliente
type UpdatePaidStatusRequest struct {
	ID   *int  `json:"id"`
	Paid *bool `json:"paid"`
}

// ClientListResponse representa la respuesta del listado de clientes
type ClientListResponse struct {
	Data []Client `json:"data"`
}

// MessageResponse representa una respuesta de confirmación
type MessageResponse struct {
	Message string `json:"Message"`
}
