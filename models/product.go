package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product represents a catalog item.
type Product struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	User          primitive.ObjectID `bson:"user" json:"user"`
	Name          string             `bson:"name" json:"name"`
	Image         string             `bson:"image" json:"image"`
	Description   string             `bson:"description" json:"description"`
	Brand         string             `bson:"brand" json:"brand"`
	Category      string             `bson:"category" json:"category"`
	Price         float64            `bson:"price" json:"price"`
	OriginalPrice float64            `bson:"originalPrice,omitempty" json:"originalPrice,omitempty"`
	CountInStock  int                `bson:"countInStock" json:"countInStock"`
	Ingredients   string             `bson:"ingredients,omitempty" json:"ingredients,omitempty"`
	Benefits      string             `bson:"benefits,omitempty" json:"benefits,omitempty"`
	HowToUse      string             `bson:"howToUse,omitempty" json:"howToUse,omitempty"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}
