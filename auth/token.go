package auth

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const tokenTTL = time.Hour

// IssueToken signs the identity payload into an HS256 token that expires
// after one hour.
func IssueToken(email string, secret []byte) (string, error) {
	claims := jwt.MapClaims{
		"email": email,
		"exp":   time.Now().Add(tokenTTL).Unix(),
		"iat":   time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// POST /jwt
func CreateToken(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		var identity struct {
			Email string `json:"email" binding:"required,email"`
		}
		if err := c.ShouldBindJSON(&identity); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid identity payload: " + err.Error()})
			return
		}

		token, err := IssueToken(identity.Email, secret)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"token": token})
	}
}
