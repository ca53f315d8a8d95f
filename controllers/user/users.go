package userControllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/rakibwebdev23/Bistro-Restaurant-Server/database"
	"github.com/rakibwebdev23/Bistro-Restaurant-Server/middleware"
	"github.com/rakibwebdev23/Bistro-Restaurant-Server/models"
)

// GET /users (admin)
func GetAllUsers(store *database.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		cursor, err := store.Users.Find(c.Request.Context(), bson.M{})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
			return
		}

		var users []models.User
		if err := cursor.All(c.Request.Context(), &users); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
			return
		}

		c.JSON(http.StatusOK, users)
	}
}

// GET /users/admin/:email (authenticated, self only)
func CheckAdmin(store *database.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.Param("email")
		if email != middleware.AuthenticatedEmail(c) {
			c.JSON(http.StatusForbidden, gin.H{"error": "forbidden access"})
			return
		}

		role, err := store.UserRole(c.Request.Context(), email)
		if err != nil {
			// unknown user is simply "not an admin", not an error
			c.JSON(http.StatusOK, gin.H{"admin": false})
			return
		}

		c.JSON(http.StatusOK, gin.H{"admin": role == models.RoleAdmin})
	}
}

// POST /users
//
// Idempotent create: sign-in posts the profile on every visit, so an
// existing email answers with a sentinel instead of a duplicate insert.
func CreateUser(store *database.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var user models.User
		if err := c.ShouldBindJSON(&user); err != nil || user.Email == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user payload"})
			return
		}

		err := store.Users.FindOne(c.Request.Context(), bson.M{"email": user.Email}).Err()
		if err == nil {
			c.JSON(http.StatusOK, gin.H{"message": "User Already Exist", "insertedId": nil})
			return
		}
		if err != mongo.ErrNoDocuments {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
			return
		}

		if user.Role == "" {
			user.Role = models.RoleDefault
		}
		if _, parseErr := models.ParseRole(string(user.Role)); parseErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid role"})
			return
		}
		user.CreatedAt = time.Now()

		result, err := store.Users.InsertOne(c.Request.Context(), user)
		if err != nil {
			logrus.WithError(err).Error("user insert failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"insertedId": result.InsertedID})
	}
}

// PATCH /users/admin/:id (admin)
//
// Promotion is the only mutation users support. A missing id yields a
// zero-matched result, not an error.
func MakeAdmin(store *database.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
			return
		}

		update := bson.M{"$set": bson.M{"role": models.RoleAdmin}}
		result, err := store.Users.UpdateOne(c.Request.Context(), bson.M{"_id": id}, update)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
			return
		}

		c.JSON(http.StatusOK, result)
	}
}

// DELETE /users/:id (admin)
func DeleteUser(store *database.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
			return
		}

		result, err := store.Users.DeleteOne(c.Request.Context(), bson.M{"_id": id})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
			return
		}

		c.JSON(http.StatusOK, result)
	}
}
