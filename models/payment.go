package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment records a completed checkout. It is written once and never
// mutated. CartItemIDs lists the cart entries purged by the same checkout;
// MenuItemIDs feeds the per-category order rollup.
type Payment struct {
	ID            primitive.ObjectID   `bson:"_id,omitempty" json:"_id,omitempty"`
	Email         string               `bson:"email" json:"email"`
	Price         float64              `bson:"price" json:"price"`
	TransactionID string               `bson:"transactionId" json:"transactionId"`
	Date          time.Time            `bson:"date,omitempty" json:"date,omitempty"`
	CartItemIDs   []primitive.ObjectID `bson:"cartItemIds" json:"cartItemIds"`
	MenuItemIDs   []primitive.ObjectID `bson:"menuItemIds" json:"menuItemIds"`
	Status        string               `bson:"status,omitempty" json:"status,omitempty"`
}
