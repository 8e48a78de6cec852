// Command seed wipes the store and loads the sample admin account, catalog
// and banner.
package main

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/thecosmeticshop/backend/config"
	"github.com/thecosmeticshop/backend/models"
	"github.com/thecosmeticshop/backend/utils"
)

func main() {
	cfg := config.Load()

	db, err := utils.ConnectMongo(cfg.Mongo.URI, cfg.Mongo.DBName)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	for _, name := range []string{"orders", "products", "users", "banners"} {
		if _, err := db.Collection(name).DeleteMany(ctx, bson.M{}); err != nil {
			log.Fatalf("Failed to clear %s: %v", name, err)
		}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash admin password: %v", err)
	}

	now := time.Now()
	admin := models.User{
		Name:       "Admin User",
		Email:      "admin@example.com",
		Password:   string(hashed),
		IsAdmin:    true,
		IsVerified: true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	res, err := db.Collection("users").InsertOne(ctx, admin)
	if err != nil {
		log.Fatalf("Failed to create admin user: %v", err)
	}
	adminID := res.InsertedID.(primitive.ObjectID)

	products := []interface{}{
		models.Product{
			User:          adminID,
			Name:          "Luxury Lipstick",
			Image:         "https://images.unsplash.com/photo-1586495777744-4413f21062fa?auto=format&fit=crop&q=80&w=300&h=300",
			Description:   "Long-lasting matte lipstick in vibrant red.",
			Brand:         "Luxe",
			Category:      "Lips",
			Price:         24.99,
			OriginalPrice: 29.99,
			CountInStock:  20,
			Ingredients:   "Castor Oil, Beeswax, Vitamin E, Red 7 Lake, Shea Butter",
			Benefits:      "Long-lasting wear, Hydrating formula, Vibrant color pay-off",
			HowToUse:      "Apply directly to lips from the bullet or use a lip brush for more precision.",
			CreatedAt:     now,
			UpdatedAt:     now,
		},
		models.Product{
			User:          adminID,
			Name:          "Hydrating Face Cream",
			Image:         "https://images.unsplash.com/photo-1620916566398-39f1143ab7be?auto=format&fit=crop&q=80&w=300&h=300",
			Description:   "Deeply moisturizing cream for all skin types.",
			Brand:         "Glow",
			Category:      "Face",
			Price:         45.00,
			OriginalPrice: 55.00,
			CountInStock:  15,
			Ingredients:   "Water, Hyaluronic Acid, Aloe Vera Extract, Jojoba Oil",
			Benefits:      "Deep hydration, Soothes irritated skin, Lightweight texture",
			HowToUse:      "After cleansing, apply a small amount to face and neck. Massage gently until absorbed.",
			CreatedAt:     now,
			UpdatedAt:     now,
		},
		models.Product{
			User:         adminID,
			Name:         "Volume Mascara",
			Image:        "https://images.unsplash.com/photo-1631214524020-7e18db9a8f92?auto=format&fit=crop&q=80&w=300&h=300",
			Description:  "Dramatic volume for your lashes.",
			Brand:        "Luxe",
			Category:     "Eyes",
			Price:        18.50,
			CountInStock: 50,
			CreatedAt:    now,
			UpdatedAt:    now,
		},
	}

	if _, err := db.Collection("products").InsertMany(ctx, products); err != nil {
		log.Fatalf("Failed to seed products: %v", err)
	}

	banner := models.Banner{
		Image:     "https://images.unsplash.com/photo-1487412947132-23c53f7158dc?auto=format&fit=crop&q=80&w=1200&h=400",
		Title:     "Summer Collection",
		Link:      "/products",
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := db.Collection("banners").InsertOne(ctx, banner); err != nil {
		log.Fatalf("Failed to seed banner: %v", err)
	}

	log.Println("Data Imported!")
}
