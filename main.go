package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/thecosmeticshop/backend/api"
	"github.com/thecosmeticshop/backend/config"
	"github.com/thecosmeticshop/backend/utils"
)

func main() {
	cfg := config.Load()

	db, err := utils.ConnectMongo(cfg.Mongo.URI, cfg.Mongo.DBName)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	uploader, err := utils.NewUploader(context.Background(), cfg.Upload)
	if err != nil {
		log.Fatalf("Failed to initialize S3 uploader: %v", err)
	}

	notify := utils.NewNotifications(utils.NewMailer(cfg.Email))
	tokens := utils.NewTokenAuth(cfg.JWT.Secret)

	app := api.New(db, notify, uploader, tokens, cfg.IsProduction())

	mux := http.NewServeMux()
	app.Routes(mux)

	// CORS Middleware
	corsMiddleware := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS, PUT, DELETE")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			if r.Method == "OPTIONS" {
				w.WriteHeader(http.StatusOK)
				return
			}
			next.ServeHTTP(w, r)
		})
	}

	fmt.Printf("Server running on port %s\n", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, corsMiddleware(mux)); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
