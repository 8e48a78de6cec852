package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Config is a flat key/value setting record. Keys are unique.
type Config struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Key       string             `bson:"key" json:"key"`
	Value     string             `bson:"value" json:"value"`
	CreatedAt time.Time          `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt time.Time          `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}
