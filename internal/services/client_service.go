package services

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/soluciones-it/billing-service/internal/database"
	"github.com/soluciones-it/billing-service/internal/models"
)

// ClientService maneja la lógica de negocio para Client
type ClientService struct {
	clientRepo *database.ClientRepository
	logger     *logrus.Logger
}

// NewClientService crea una nueva instancia del servicio
func NewClientService(db *database.DB, logger *logrus.Logger) *ClientService {
	return &ClientService{
		clientRepo: database.NewClientRepository(db, logger),
		logger:     logger,
	}
}

// List obtiene todos los clientes
func (s *ClientService) List() ([]models.Client, error) {
	clients, err := s.clientRepo.List()
	if err != nil {
		return nil, fmt.Errorf("error listing clients: %w", err)
	}

	return clients, nil
}

// Insert crea un nuevo cliente
func (s *ClientService) Insert(req *models.InsertClientRequest) error {
	if err := s.clientRepo.Insert(req); err != nil {
		return fmt.Errorf("error inserting client: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"name": derefString(req.Name),
	}).Info("Client inserted successfully")

	return nil
}

// Update actualiza un cliente existente
func (s *ClientService) Update(req *models.UpdateClientRequest) error {
	if err := s.clientRepo.Update(req); err != nil {
		return fmt.Errorf("error updating client: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"client_id": derefInt(req.ID),
	}).Info("Client updated successfully")

	return nil
}

// Delete elimina un cliente
func (s *ClientService) Delete(req *models.DeleteClientRequest) error {
	if err := s.clientRepo.Delete(req.ID); err != nil {
		return fmt.Errorf("error deleting client: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"client_id": derefInt(req.ID),
	}).Info("Client deleted successfully")

	return nil
}

// UpdatePaidStatus actualiza el estado de pago de un cliente
func (s *ClientService) UpdatePaidStatus(req *models.UpdatePaidStatusRequest) error {
	if err := s.clientRepo.UpdatePaidStatus(req.ID, req.Paid); err != nil {
		return fmt.Errorf("error updating paid status: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"client_id": derefInt(req.ID),
	}).Info("Paid status updated successfully")

	return nil
}

// ResetPaids marca todos los clientes como no pagados
func (s *ClientService) ResetPaids() error {
	if err := s.clientRepo.ResetPaids(); err != nil {
		return fmt.Errorf("error resetting paid status: %w", err)
	}

	s.logger.Info("Paid status reset for all clients")

	return nil
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefInt(i *int) int {
	if i == nil {
		return 0
	}
	return *i
}
