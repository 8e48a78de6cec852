package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/thecosmeticshop/backend/models"
	"github.com/thecosmeticshop/backend/utils"
)

// UpdateConfigRequest carries the new value for a setting.
type UpdateConfigRequest struct {
	Value string `json:"value"`
}

// wellKnownConfigDefault returns the documented default for keys that must
// not 404 when unset.
func wellKnownConfigDefault(key string) (models.Config, bool) {
	switch key {
	case "deliveryEmail":
		return models.Config{Key: key, Value: ""}, true
	}
	return models.Config{}, false
}

// GetConfigHandler reads one setting. Unset well-known keys get their default;
// unset unknown keys 404. Admin only.
func (a *API) GetConfigHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Get Config API]")

	key := r.PathValue("key")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var cfg models.Config
	err := a.DB.Collection(ConfigsCollection).FindOne(ctx, bson.M{"key": key}).Decode(&cfg)
	if err != nil {
		if err != mongo.ErrNoDocuments {
			a.serverError(w, &logMessageBuilder, "Failed to fetch config")
			return
		}
		if def, ok := wellKnownConfigDefault(key); ok {
			utils.RespondJSON(w, http.StatusOK, def)
			return
		}
		utils.RespondError(w, &logMessageBuilder, "Config not found", http.StatusNotFound)
		return
	}

	utils.RespondJSON(w, http.StatusOK, cfg)
}

// UpdateConfigHandler upserts a setting: 201 when the key is created, 200 when
// an existing value is overwritten. Admin only.
func (a *API) UpdateConfigHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Update Config API]")

	key := r.PathValue("key")

	var req UpdateConfigRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, &logMessageBuilder, "Invalid request body", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	collection := a.DB.Collection(ConfigsCollection)
	now := time.Now()

	var existing models.Config
	err := collection.FindOne(ctx, bson.M{"key": key}).Decode(&existing)
	if err == nil {
		existing.Value = req.Value
		existing.UpdatedAt = now
		set := bson.M{"value": existing.Value, "updatedAt": existing.UpdatedAt}
		if _, err := collection.UpdateOne(ctx, bson.M{"_id": existing.ID}, bson.M{"$set": set}); err != nil {
			a.serverError(w, &logMessageBuilder, "Failed to update config")
			return
		}
		utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Config %s updated", key))
		utils.RespondJSON(w, http.StatusOK, existing)
		return
	}
	if err != mongo.ErrNoDocuments {
		a.serverError(w, &logMessageBuilder, "Failed to fetch config")
		return
	}

	cfg := models.Config{
		Key:       key,
		Value:     req.Value,
		CreatedAt: now,
		UpdatedAt: now,
	}
	res, err := collection.InsertOne(ctx, cfg)
	if err != nil {
		a.serverError(w, &logMessageBuilder, "Failed to create config")
		return
	}
	cfg.ID = res.InsertedID.(primitive.ObjectID)

	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Config %s created", key))
	utils.RespondJSON(w, http.StatusCreated, cfg)
}
