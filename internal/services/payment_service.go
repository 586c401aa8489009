package services

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/soluciones-it/billing-service/internal/database"
	"github.com/soluciones-it/billing-service/internal/models"
)

// PaymentService maneja la lógica de negocio para los registros de pago
type PaymentService struct {
	paymentRepo *database.PaymentRepository
	logger      *logrus.Logger
}

// NewPaymentService crea una nueva instancia del servicio
func NewPaymentService(db *database.DB, logger *logrus.Logger) *PaymentService {
	return &PaymentService{
		paymentRepo: database.NewPaymentRepository(db, logger),
		logger:      logger,
	}
}

// List obtiene todos los registros de pago
func (s *PaymentService) List() ([]models.Paid, error) {
	paids, err := s.paymentRepo.List()
	if err != nil {
		return nil, fmt.Errorf("error listing paids: %w", err)
	}

	return paids, nil
}

// Insert registra un pago de un cliente
func (s *PaymentService) Insert(req *models.InsertPaymentRequest) error {
	if err := s.paymentRepo.Insert(req); err != nil {
		return fmt.Errorf("error inserting payment: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"client_id": derefInt(req.IDClient),
		"type":      derefString(req.Type),
	}).Info("Payment inserted successfully")

	return nil
}

// CleanAll elimina todos los registros de pago
func (s *PaymentService) CleanAll() error {
	if err := s.paymentRepo.CleanAll(); err != nil {
		return fmt.Errorf("error cleaning payments: %w", err)
	}

	s.logger.Info("All payments cleaned")

	return nil
}
