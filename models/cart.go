package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// CartEntry is a pending, unpurchased line item. Name, image and price are
// snapshots taken when the item was added, so later menu edits don't change
// what the customer saw.
type CartEntry struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email      string             `bson:"email" json:"email"`
	MenuItemID primitive.ObjectID `bson:"menuId" json:"menuId"`
	Name       string             `bson:"name" json:"name"`
	Image      string             `bson:"image,omitempty" json:"image,omitempty"`
	Price      float64            `bson:"price" json:"price"`
	Quantity   int                `bson:"quantity,omitempty" json:"quantity,omitempty"`
}
