package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/rakibwebdev23/Bistro-Restaurant-Server/auth"
	"github.com/rakibwebdev23/Bistro-Restaurant-Server/config"
	cartControllers "github.com/rakibwebdev23/Bistro-Restaurant-Server/controllers/cart"
	menuControllers "github.com/rakibwebdev23/Bistro-Restaurant-Server/controllers/menu"
	paymentControllers "github.com/rakibwebdev23/Bistro-Restaurant-Server/controllers/payment"
	reviewControllers "github.com/rakibwebdev23/Bistro-Restaurant-Server/controllers/review"
	statsControllers "github.com/rakibwebdev23/Bistro-Restaurant-Server/controllers/stats"
	userControllers "github.com/rakibwebdev23/Bistro-Restaurant-Server/controllers/user"
	"github.com/rakibwebdev23/Bistro-Restaurant-Server/database"
)

// SetupPublicRoutes registers everything reachable without a token.
func SetupPublicRoutes(r *gin.Engine, store *database.Store, cfg *config.Config) {
	r.POST("/jwt", auth.CreateToken(cfg.JWTSecret))
	r.POST("/users", userControllers.CreateUser(store))

	r.GET("/menu", menuControllers.GetMenu(store))
	r.GET("/reviews", reviewControllers.GetReviews(store))

	// cart access is scoped by email only, no token by design
	r.GET("/carts", cartControllers.GetCartEntries(store))
	r.POST("/carts", cartControllers.AddCartEntry(store))
	r.DELETE("/carts/:id", cartControllers.DeleteCartEntry(store))

	r.POST("/payments", paymentControllers.CreatePayment(store))
	r.GET("/order-stats", statsControllers.OrderStats(store))
}
