package api

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/soluciones-it/billing-service/internal/config"
	"github.com/soluciones-it/billing-service/internal/database"
)

// SetupRouter configura el router principal
func SetupRouter(apiHandler *API, rdb *database.Redis, cfg *config.Config, logger *logrus.Logger) *gin.Engine {
	router := gin.New()

	// Middleware global
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(RequestID())

	// Middleware de CORS para desarrollo
	if cfg.IsDevelopment() {
		router.Use(CORS())
	}

	// Endpoints públicos
	router.GET("/", apiHandler.Home)
	router.GET("/health", apiHandler.Health)

	// Un *Redis nil dentro de la interfaz no sería nil; solo se asigna
	// cuando la conexión existe
	var counter AttemptCounter
	if rdb != nil {
		counter = rdb
	}
	router.POST("/login", LoginRateLimiter(counter, cfg, logger), apiHandler.Login)

	// Endpoints protegidos
	protected := router.Group("")
	protected.Use(apiHandler.AuthMiddleware())
	{
		protected.GET("/clients", apiHandler.GetClients)
		protected.GET("/paids", apiHandler.GetPaids)
		protected.POST("/insert_client", apiHandler.InsertClient)
		protected.POST("/update_client", apiHandler.UpdateClient)
		protected.DELETE("/delete_client", apiHandler.DeleteClient)
		protected.POST("/insert_payment", apiHandler.InsertPayment)
		protected.GET("/clean_payments", apiHandler.CleanPayments)
		protected.GET("/reset_paids", apiHandler.ResetPaids)
		protected.POST("/update_paid_status", apiHandler.UpdatePaidStatus)
	}

	return router
}
