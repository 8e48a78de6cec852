package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all externally supplied settings. It is built once in main and
// passed by reference into the collaborators that need it.
type Config struct {
	Env    string
	Port   string
	Mongo  MongoConfig
	JWT    JWTConfig
	Email  EmailConfig
	Upload UploadConfig
}

type MongoConfig struct {
	URI    string
	DBName string
}

type JWTConfig struct {
	Secret string
}

type EmailConfig struct {
	SendGridAPIKey string
	FromName       string
	FromAddress    string
}

type UploadConfig struct {
	AWSRegion string
	Bucket    string
}

// Load reads environment variables from .env (if present) and the process
// environment, applying defaults for optional values.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := &Config{
		Env:  getEnv("APP_ENV", "development"),
		Port: getEnv("PORT", "5000"),
		Mongo: MongoConfig{
			URI:    getEnv("MONGO_URI", "mongodb://localhost:27017/"),
			DBName: getEnv("MONGO_DB", "thecosmeticshop"),
		},
		JWT: JWTConfig{
			Secret: os.Getenv("JWT_SECRET"),
		},
		Email: EmailConfig{
			SendGridAPIKey: os.Getenv("SENDGRID_API_KEY"),
			FromName:       getEnv("EMAIL_FROM_NAME", "The Cosmetic Shop"),
			FromAddress:    getEnv("EMAIL_FROM", "no-reply@thecosmeticshop.com"),
		},
		Upload: UploadConfig{
			AWSRegion: getEnv("AWS_REGION", "ap-south-1"),
			Bucket:    os.Getenv("AWS_BUCKET_NAME"),
		},
	}

	if cfg.JWT.Secret == "" {
		log.Println("Warning: JWT_SECRET is not set, issued tokens will not be secure")
	}

	return cfg
}

// IsProduction reports whether the app runs with production error reporting
// (stack traces suppressed in responses).
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
