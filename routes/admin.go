package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/rakibwebdev23/Bistro-Restaurant-Server/config"
	menuControllers "github.com/rakibwebdev23/Bistro-Restaurant-Server/controllers/menu"
	statsControllers "github.com/rakibwebdev23/Bistro-Restaurant-Server/controllers/stats"
	userControllers "github.com/rakibwebdev23/Bistro-Restaurant-Server/controllers/user"
	"github.com/rakibwebdev23/Bistro-Restaurant-Server/database"
	"github.com/rakibwebdev23/Bistro-Restaurant-Server/middleware"
)

// SetupAdminRoutes registers routes gated by token verification plus the
// stored-role check, in that order.
func SetupAdminRoutes(r *gin.Engine, store *database.Store, cfg *config.Config) {
	admin := r.Group("/",
		middleware.ValidateToken(cfg.JWTSecret),
		middleware.RequireAdmin(store.UserRole),
	)
	{
		admin.GET("/users", userControllers.GetAllUsers(store))
		admin.PATCH("/users/admin/:id", userControllers.MakeAdmin(store))
		admin.DELETE("/users/:id", userControllers.DeleteUser(store))

		admin.GET("/menu/:id", menuControllers.GetMenuItem(store))
		admin.POST("/menu", menuControllers.CreateMenuItem(store))
		admin.PATCH("/menu/:id", menuControllers.UpdateMenuItem(store))
		admin.DELETE("/menu/:id", menuControllers.DeleteMenuItem(store))

		admin.GET("/admin-stats", statsControllers.AdminStats(store))
	}
}
