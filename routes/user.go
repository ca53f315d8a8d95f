package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/rakibwebdev23/Bistro-Restaurant-Server/config"
	paymentControllers "github.com/rakibwebdev23/Bistro-Restaurant-Server/controllers/payment"
	userControllers "github.com/rakibwebdev23/Bistro-Restaurant-Server/controllers/user"
	"github.com/rakibwebdev23/Bistro-Restaurant-Server/database"
	"github.com/rakibwebdev23/Bistro-Restaurant-Server/middleware"
)

// SetupUserRoutes registers routes that need a valid token but no
// particular role. The self-scoped ones compare the path email against
// the token's email themselves.
func SetupUserRoutes(r *gin.Engine, store *database.Store, cfg *config.Config) {
	authed := r.Group("/", middleware.ValidateToken(cfg.JWTSecret))
	{
		authed.GET("/users/admin/:email", userControllers.CheckAdmin(store))
		authed.POST("/create-payment-intent", paymentControllers.CreatePaymentIntent())
		authed.GET("/payments/:email", paymentControllers.GetPayments(store))
	}
}
