package api

import (
	"context"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/thecosmeticshop/backend/models"
	"github.com/thecosmeticshop/backend/utils"
)

// ListProductsHandler returns the catalog. Public.
func (a *API) ListProductsHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	cursor, err := a.DB.Collection(ProductsCollection).Find(ctx, bson.M{})
	if err != nil {
		a.serverError(w, nil, "Failed to fetch products")
		return
	}
	defer cursor.Close(ctx)

	var products []models.Product
	if err := cursor.All(ctx, &products); err != nil {
		a.serverError(w, nil, "Failed to decode products")
		return
	}
	if products == nil {
		products = []models.Product{}
	}

	utils.RespondJSON(w, http.StatusOK, products)
}

// GetProductHandler returns one product. Public.
func (a *API) GetProductHandler(w http.ResponseWriter, r *http.Request) {
	objID, err := primitive.ObjectIDFromHex(r.PathValue("id"))
	if err != nil {
		utils.RespondError(w, nil, "Product not found", http.StatusNotFound)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var product models.Product
	err = a.DB.Collection(ProductsCollection).FindOne(ctx, bson.M{"_id": objID}).Decode(&product)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			utils.RespondError(w, nil, "Product not found", http.StatusNotFound)
		} else {
			a.serverError(w, nil, "Failed to fetch product")
		}
		return
	}

	utils.RespondJSON(w, http.StatusOK, product)
}
