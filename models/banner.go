package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Banner is a storefront carousel entry managed by admins.
type Banner struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Image     string             `bson:"image" json:"image"`
	Title     string             `bson:"title" json:"title"`
	Link      string             `bson:"link" json:"link"`
	IsActive  bool               `bson:"isActive" json:"isActive"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}
