package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/rakibwebdev23/Bistro-Restaurant-Server/models"
)

// EmailKey is where ValidateToken stores the authenticated caller's email
// in the gin context.
const EmailKey = "email"

// RoleLookup resolves the stored role for an authenticated email.
// database.Store.UserRole satisfies it; tests stub it.
type RoleLookup func(ctx context.Context, email string) (models.Role, error)

// ValidateToken is the authentication stage: it requires a
// "Bearer <token>" Authorization header, verifies signature and expiry,
// and attaches the decoded email for downstream handlers.
func ValidateToken(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, err := extractBearerToken(c.GetHeader("Authorization"))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized access"})
			return
		}

		token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("invalid token signing method")
			}
			return secret, nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized access"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized access"})
			return
		}
		email, _ := claims["email"].(string)
		if email == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized access"})
			return
		}

		c.Set(EmailKey, email)
		c.Next()
	}
}

// RequireAdmin is the authorization stage. It must be composed after
// ValidateToken: it reads the authenticated email and checks the stored
// role against the users collection.
func RequireAdmin(lookup RoleLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := AuthenticatedEmail(c)
		if email == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized access"})
			return
		}

		role, err := lookup(c.Request.Context(), email)
		if err != nil || role != models.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden access"})
			return
		}

		c.Next()
	}
}

// AuthenticatedEmail returns the email ValidateToken attached, or "" when
// the request never passed authentication.
func AuthenticatedEmail(c *gin.Context) string {
	email, _ := c.Get(EmailKey)
	s, _ := email.(string)
	return s
}

func extractBearerToken(header string) (string, error) {
	if header == "" {
		return "", errors.New("authorization header missing")
	}
	parts := strings.Split(header, " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", errors.New("invalid authorization format")
	}
	return parts[1], nil
}
