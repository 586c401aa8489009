package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/soluciones-it/billing-service/internal/database"
	"github.com/soluciones-it/billing-service/internal/models"
	"github.com/soluciones-it/billing-service/internal/services"
)

// API maneja todos los endpoints de la API
type API struct {
	authService    *services.AuthService
	clientService  *services.ClientService
	paymentService *services.PaymentService
	db             *database.DB
	redis          *database.Redis
	logger         *logrus.Logger
}

// NewAPI crea una nueva instancia de la API
func NewAPI(
	authService *services.AuthService,
	clientService *services.ClientService,
	paymentService *services.PaymentService,
	db *database.DB,
	redis *database.Redis,
	logger *logrus.Logger,
) *API {
	return &API{
		authService:    authService,
		clientService:  clientService,
		paymentService: paymentService,
		db:             db,
		redis:          redis,
		logger:         logger,
	}
}

// Home responde el mensaje de bienvenida
func (api *API) Home(c *gin.Context) {
	c.JSON(http.StatusOK, models.MessageResponse{
		Message: "Welcome to Soluciones-IT API",
	})
}

// Health responde el estado del servicio verificando sus dependencias
func (api *API) Health(c *gin.Context) {
	status := http.StatusOK
	dbStatus := "ok"
	if err := api.db.HealthCheck(); err != nil {
		api.logger.WithError(err).Error("Database health check failed")
		dbStatus = "unavailable"
		status = http.StatusServiceUnavailable
	}

	response := gin.H{
		"status":    dbStatus,
		"timestamp": time.Now().UTC(),
		"service":   "billing-service",
		"database":  dbStatus,
		"pool":      api.db.GetStats(),
	}

	if api.redis != nil {
		if err := api.redis.HealthCheck(); err != nil {
			api.logger.WithError(err).Warn("Redis health check failed")
			response["redis"] = "unavailable"
		} else {
			response["redis"] = "ok"
		}
	}

	c.JSON(status, response)
}

// Login verifica las credenciales y retorna un token de acceso
func (api *API) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.logger.WithError(err).Error("Error binding login request")
		c.JSON(http.StatusBadRequest, models.NewValidationError("Invalid request format"))
		return
	}

	token, err := api.authService.Authenticate(req.Username, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
		return
	}

	c.JSON(http.StatusOK, models.LoginResponse{AccessToken: token})
}

// GetClients retorna todos los clientes
func (api *API) GetClients(c *gin.Context) {
	clients, err := api.clientService.List()
	if err != nil {
		api.logger.WithError(err).Error("Error listing clients")
		c.JSON(http.StatusInternalServerError, models.NewInternalError("Error retrieving clients"))
		return
	}

	c.JSON(http.StatusOK, models.ClientListResponse{Data: clients})
}

// GetPaids retorna todos los registros de pago
func (api *API) GetPaids(c *gin.Context) {
	paids, err := api.paymentService.List()
	if err != nil {
		api.logger.WithError(err).Error("Error listing paids")
		c.JSON(http.StatusInternalServerError, models.NewInternalError("Error retrieving paids"))
		return
	}

	c.JSON(http.StatusOK, models.PaidListResponse{Data: paids})
}

// InsertClient crea un nuevo cliente
func (api *API) InsertClient(c *gin.Context) {
	var req models.InsertClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.logger.WithError(err).Error("Error binding insert client request")
		c.JSON(http.StatusBadRequest, models.NewValidationError("Invalid request format"))
		return
	}

	if err := api.clientService.Insert(&req); err != nil {
		api.logger.WithError(err).Error("Error inserting client")
		c.JSON(http.StatusInternalServerError, models.NewInternalError("Error inserting client"))
		return
	}

	c.JSON(http.StatusOK, models.MessageResponse{Message: "Client inserted successfully"})
}

// UpdateClient actualiza un cliente existente
func (api *API) UpdateClient(c *gin.Context) {
	var req models.UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.logger.WithError(err).Error("Error binding update client request")
		c.JSON(http.StatusBadRequest, models.NewValidationError("Invalid request format"))
		return
	}

	if err := api.clientService.Update(&req); err != nil {
		api.logger.WithError(err).Error("Error updating client")
		c.JSON(http.StatusInternalServerError, models.NewInternalError("Error updating client"))
		return
	}

	c.JSON(http.StatusOK, models.MessageResponse{Message: "Client updated successfully"})
}

// DeleteClient elimina un cliente
func (api *API) DeleteClient(c *gin.Context) {
	var req models.DeleteClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.logger.WithError(err).Error("Error binding delete client request")
		c.JSON(http.StatusBadRequest, models.NewValidationError("Invalid request format"))
		return
	}

	if err := api.clientService.Delete(&req); err != nil {
		api.logger.WithError(err).Error("Error deleting client")
		c.JSON(http.StatusInternalServerError, models.NewInternalError("Error deleting client"))
		return
	}

	c.JSON(http.StatusOK, models.MessageResponse{Message: "Client deleted successfully"})
}

// InsertPayment registra un pago de un cliente
func (api *API) InsertPayment(c *gin.Context) {
	var req models.InsertPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.logger.WithError(err).Error("Error binding insert payment request")
		c.JSON(http.StatusBadRequest, models.NewValidationError("Invalid request format"))
		return
	}

	if err := api.paymentService.Insert(&req); err != nil {
		api.logger.WithError(err).Error("Error inserting payment")
		c.JSON(http.StatusInternalServerError, models.NewInternalError("Error inserting payment"))
		return
	}

	c.JSON(http.StatusOK, models.MessageResponse{Message: "Payment inserted successfully"})
}

// CleanPayments elimina todos los registros de pago
func (api *API) CleanPayments(c *gin.Context) {
	if err := api.paymentService.CleanAll(); err != nil {
		api.logger.WithError(err).Error("Error cleaning payments")
		c.JSON(http.StatusInternalServerError, models.NewInternalError("Error cleaning payments"))
		return
	}

	c.JSON(http.StatusOK, models.MessageResponse{Message: "Clean payments successfully"})
}

// ResetPaids marca todos los clientes como no pagados
func (api *API) ResetPaids(c *gin.Context) {
	if err := api.clientService.ResetPaids(); err != nil {
		api.logger.WithError(err).Error("Error resetting paid status")
		c.JSON(http.StatusInternalServerError, models.NewInternalError("Error resetting paid status"))
		return
	}

	c.JSON(http.StatusOK, models.MessageResponse{Message: "Paids status updated successfully"})
}

// UpdatePaidStatus actualiza el estado de pago de un cliente
func (api *API) UpdatePaidStatus(c *gin.Context) {
	var req models.UpdatePaidStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.logger.WithError(err).Error("Error binding update paid status request")
		c.JSON(http.StatusBadRequest, models.NewValidationError("Invalid request format"))
		return
	}

	if err := api.clientService.UpdatePaidStatus(&req); err != nil {
		api.logger.WithError(err).Error("Error updating paid status")
		c.JSON(http.StatusInternalServerError, models.NewInternalError("Error updating paid status"))
		return
	}

	c.JSON(http.StatusOK, models.MessageResponse{Message: "Paid status updated successfully"})
}

// AuthMiddleware retorna middleware que exige un token Bearer válido.
// El subject se guarda en el contexto; cualquier token válido desbloquea
// todas las operaciones.
func (api *API) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, models.NewUnauthorizedError("Missing authorization token"))
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, models.NewUnauthorizedError("Invalid authorization header format"))
			c.Abort()
			return
		}

		subject, err := api.authService.VerifyToken(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, models.NewUnauthorizedError("Invalid or expired token"))
			c.Abort()
			return
		}

		c.Set("username", subject)
		c.Next()
	}
}
