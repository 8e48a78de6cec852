package utils

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Database wraps the MongoDB client together with the database name so
// handlers can grab collections without reaching for globals.
type Database struct {
	Client *mongo.Client
	Name   string
}

// ConnectMongo dials MongoDB and verifies the connection with a ping.
func ConnectMongo(uri, dbName string) (*Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	// Accounts are looked up by email everywhere, so the address must stay
	// unique even if a handler-level check is raced.
	users := client.Database(dbName).Collection("users")
	emailIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := users.Indexes().CreateOne(ctx, emailIndex); err != nil {
		return nil, fmt.Errorf("failed to ensure unique email index: %w", err)
	}

	log.Println("Connected to MongoDB!")
	return &Database{Client: client, Name: dbName}, nil
}

// Collection returns a handle to a collection in the configured database.
func (d *Database) Collection(name string) *mongo.Collection {
	return d.Client.Database(d.Name).Collection(name)
}

// Disconnect closes the underlying client.
func (d *Database) Disconnect(ctx context.Context) error {
	return d.Client.Disconnect(ctx)
}
