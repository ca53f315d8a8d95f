package menuControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/rakibwebdev23/Bistro-Restaurant-Server/database"
	"github.com/rakibwebdev23/Bistro-Restaurant-Server/models"
)

type UpdateMenuItemInput struct {
	Name     *string  `json:"name"`
	Category *string  `json:"category"`
	Price    *float64 `json:"price"`
	Recipe   *string  `json:"recipe"`
	Image    *string  `json:"image"`
}

// GET /menu
func GetMenu(store *database.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		cursor, err := store.Menu.Find(c.Request.Context(), bson.M{})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch menu"})
			return
		}

		var items []models.MenuItem
		if err := cursor.All(c.Request.Context(), &items); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch menu"})
			return
		}

		c.JSON(http.StatusOK, items)
	}
}

// GET /menu/:id (admin, backs the edit form)
func GetMenuItem(store *database.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid menu item id"})
			return
		}

		var item models.MenuItem
		err = store.Menu.FindOne(c.Request.Context(), bson.M{"_id": id}).Decode(&item)
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch menu item"})
			return
		}

		c.JSON(http.StatusOK, item)
	}
}

// POST /menu (admin)
func CreateMenuItem(store *database.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var item models.MenuItem
		if err := c.ShouldBindJSON(&item); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid menu item: " + err.Error()})
			return
		}

		result, err := store.Menu.InsertOne(c.Request.Context(), item)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create menu item"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"insertedId": result.InsertedID})
	}
}

// PATCH /menu/:id (admin)
//
// Partial replace of the whitelisted fields only; anything else in the
// payload is ignored. A missing id yields a zero-matched result.
func UpdateMenuItem(store *database.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid menu item id"})
			return
		}

		var input UpdateMenuItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		set := bson.M{}
		if input.Name != nil {
			set["name"] = *input.Name
		}
		if input.Category != nil {
			set["category"] = *input.Category
		}
		if input.Price != nil {
			set["price"] = *input.Price
		}
		if input.Recipe != nil {
			set["recipe"] = *input.Recipe
		}
		if input.Image != nil {
			set["image"] = *input.Image
		}
		if len(set) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No updatable fields in payload"})
			return
		}

		result, err := store.Menu.UpdateOne(c.Request.Context(), bson.M{"_id": id}, bson.M{"$set": set})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update menu item"})
			return
		}

		c.JSON(http.StatusOK, result)
	}
}

// DELETE /menu/:id (admin)
func DeleteMenuItem(store *database.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid menu item id"})
			return
		}

		result, err := store.Menu.DeleteOne(c.Request.Context(), bson.M{"_id": id})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete menu item"})
			return
		}

		c.JSON(http.StatusOK, result)
	}
}
