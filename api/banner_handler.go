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

// UpdateBannerRequest carries the full replacement content for a banner.
type UpdateBannerRequest struct {
	Image    string `json:"image"`
	Title    string `json:"title"`
	Link     string `json:"link"`
	IsActive bool   `json:"isActive"`
}

// ListBannersHandler returns the active banners. Public.
func (a *API) ListBannersHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	cursor, err := a.DB.Collection(BannersCollection).Find(ctx, bson.M{"isActive": true})
	if err != nil {
		a.serverError(w, nil, "Failed to fetch banners")
		return
	}
	defer cursor.Close(ctx)

	var banners []models.Banner
	if err := cursor.All(ctx, &banners); err != nil {
		a.serverError(w, nil, "Failed to decode banners")
		return
	}
	if banners == nil {
		banners = []models.Banner{}
	}

	utils.RespondJSON(w, http.StatusOK, banners)
}

// CreateBannerHandler inserts a placeholder banner; callers follow up with an
// update to fill in real content. Admin only.
func (a *API) CreateBannerHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Create Banner API]")

	now := time.Now()
	banner := models.Banner{
		Image:     "/images/sample-banner.jpg",
		Title:     "New Banner",
		Link:      "/",
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	res, err := a.DB.Collection(BannersCollection).InsertOne(ctx, banner)
	if err != nil {
		a.serverError(w, &logMessageBuilder, "Failed to create banner")
		return
	}
	banner.ID = res.InsertedID.(primitive.ObjectID)

	utils.AddToLogMessage(&logMessageBuilder, "Banner created")
	utils.RespondJSON(w, http.StatusCreated, banner)
}

// UpdateBannerHandler replaces a banner's content. Admin only.
func (a *API) UpdateBannerHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Update Banner API]")

	objID, err := primitive.ObjectIDFromHex(r.PathValue("id"))
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, "Banner not found", http.StatusNotFound)
		return
	}

	var req UpdateBannerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, &logMessageBuilder, "Invalid request body", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	collection := a.DB.Collection(BannersCollection)

	var banner models.Banner
	err = collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&banner)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			utils.RespondError(w, &logMessageBuilder, "Banner not found", http.StatusNotFound)
		} else {
			a.serverError(w, &logMessageBuilder, "Failed to fetch banner")
		}
		return
	}

	banner.Image = req.Image
	banner.Title = req.Title
	banner.Link = req.Link
	banner.IsActive = req.IsActive
	banner.UpdatedAt = time.Now()

	set := bson.M{
		"image":     banner.Image,
		"title":     banner.Title,
		"link":      banner.Link,
		"isActive":  banner.IsActive,
		"updatedAt": banner.UpdatedAt,
	}
	if _, err := collection.UpdateOne(ctx, bson.M{"_id": banner.ID}, bson.M{"$set": set}); err != nil {
		a.serverError(w, &logMessageBuilder, "Failed to update banner")
		return
	}

	utils.AddToLogMessage(&logMessageBuilder, "Banner updated")
	utils.RespondJSON(w, http.StatusOK, banner)
}

// DeleteBannerHandler removes a banner. Admin only.
func (a *API) DeleteBannerHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Delete Banner API]")

	objID, err := primitive.ObjectIDFromHex(r.PathValue("id"))
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, "Banner not found", http.StatusNotFound)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	res, err := a.DB.Collection(BannersCollection).DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		a.serverError(w, &logMessageBuilder, "Failed to delete banner")
		return
	}
	if res.DeletedCount == 0 {
		utils.RespondError(w, &logMessageBuilder, "Banner not found", http.StatusNotFound)
		return
	}

	utils.AddToLogMessage(&logMessageBuilder, "Banner removed")
	utils.RespondJSON(w, http.StatusOK, map[string]string{"message": "Banner removed"})
}
