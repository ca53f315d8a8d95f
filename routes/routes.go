package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rakibwebdev23/Bistro-Restaurant-Server/config"
	"github.com/rakibwebdev23/Bistro-Restaurant-Server/database"
)

// SetupRoutes wires the three guard levels: public, authenticated, and
// admin. Every route composes the same two middleware primitives, so a
// route's protection is visible right where it is registered.
func SetupRoutes(r *gin.Engine, store *database.Store, cfg *config.Config) {
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Bistro restaurant server is running")
	})

	SetupPublicRoutes(r, store, cfg)
	SetupUserRoutes(r, store, cfg)
	SetupAdminRoutes(r, store, cfg)
}
