package cartControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/rakibwebdev23/Bistro-Restaurant-Server/database"
	"github.com/rakibwebdev23/Bistro-Restaurant-Server/models"
)

// Cart routes are deliberately unauthenticated: entries are scoped purely
// by the email carried in the query/payload, so a caller only ever sees
// the entries for the email it asks about.

// GET /carts?email=
func GetCartEntries(store *database.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.Query("email")

		cursor, err := store.Carts.Find(c.Request.Context(), bson.M{"email": email})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		var entries []models.CartEntry
		if err := cursor.All(c.Request.Context(), &entries); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		c.JSON(http.StatusOK, entries)
	}
}

// POST /carts
func AddCartEntry(store *database.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var entry models.CartEntry
		if err := c.ShouldBindJSON(&entry); err != nil || entry.Email == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cart entry"})
			return
		}
		if entry.Quantity <= 0 {
			entry.Quantity = 1
		}

		result, err := store.Carts.InsertOne(c.Request.Context(), entry)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"insertedId": result.InsertedID})
	}
}

// DELETE /carts/:id
func DeleteCartEntry(store *database.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cart entry id"})
			return
		}

		result, err := store.Carts.DeleteOne(c.Request.Context(), bson.M{"_id": id})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete cart entry"})
			return
		}

		c.JSON(http.StatusOK, result)
	}
}
