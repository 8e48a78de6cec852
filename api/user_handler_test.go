package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestEmailTakenFilter(t *testing.T) {
	t.Parallel()

	selfID := primitive.NewObjectID()
	filter := emailTakenFilter("a@x.com", selfID)

	assert.Equal(t, "a@x.com", filter["email"])
	assert.Equal(t, bson.M{"$ne": selfID}, filter["_id"],
		"the account being updated must be excluded, everyone else matches")
}
