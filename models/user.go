package models

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role is the closed set of roles a user can hold.
type Role string

const (
	RoleDefault Role = "default"
	RoleAdmin   Role = "admin"
)

var ErrInvalidRole = errors.New("invalid role")

// ParseRole validates a raw role string at the boundary. An empty string
// maps to RoleDefault so documents created before roles existed still load.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleDefault, Role(""):
		return RoleDefault, nil
	default:
		return "", ErrInvalidRole
	}
}

type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name      string             `bson:"name,omitempty" json:"name,omitempty"`
	Email     string             `bson:"email" json:"email"`
	Role      Role               `bson:"role,omitempty" json:"role,omitempty"`
	CreatedAt time.Time          `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
}
