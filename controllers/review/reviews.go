package reviewControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/rakibwebdev23/Bistro-Restaurant-Server/database"
	"github.com/rakibwebdev23/Bistro-Restaurant-Server/models"
)

// GET /reviews
func GetReviews(store *database.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		cursor, err := store.Reviews.Find(c.Request.Context(), bson.M{})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reviews"})
			return
		}

		var reviews []models.Review
		if err := cursor.All(c.Request.Context(), &reviews); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reviews"})
			return
		}

		c.JSON(http.StatusOK, reviews)
	}
}
