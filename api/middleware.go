package api

import (
	"context"
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

type contextKey string

const userContextKey contextKey = "user"

// GetUserFromContext returns the authenticated user placed on the request
// context by requireAuth.
func GetUserFromContext(ctx context.Context) (models.User, error) {
	user, ok := ctx.Value(userContextKey).(models.User)
	if !ok {
		return models.User{}, fmt.Errorf("no user in context")
	}
	return user, nil
}

// parseBearerToken extracts the token from an "Authorization: Bearer ..."
// header.
func parseBearerToken(authHeader string) (string, error) {
	if authHeader == "" {
		return "", fmt.Errorf("authorization header missing")
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", fmt.Errorf("authorization header is not a bearer token")
	}
	return parts[1], nil
}

// requireAuth validates the session token and loads the user document onto
// the request context.
func (a *API) requireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tokenString, err := parseBearerToken(r.Header.Get("Authorization"))
		if err != nil {
			utils.RespondError(w, nil, "Not authorized, no token", http.StatusUnauthorized)
			return
		}

		userID, err := a.Tokens.Validate(tokenString)
		if err != nil {
			utils.RespondError(w, nil, "Not authorized, token failed", http.StatusUnauthorized)
			return
		}

		objID, err := primitive.ObjectIDFromHex(userID)
		if err != nil {
			utils.RespondError(w, nil, "Not authorized, token failed", http.StatusUnauthorized)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		var user models.User
		err = a.DB.Collection(UsersCollection).FindOne(ctx, bson.M{"_id": objID}).Decode(&user)
		if err != nil {
			if err == mongo.ErrNoDocuments {
				utils.RespondError(w, nil, "Not authorized, token failed", http.StatusUnauthorized)
			} else {
				utils.RespondError(w, nil, "Database error", http.StatusInternalServerError)
			}
			return
		}

		next(w, r.WithContext(context.WithValue(r.Context(), userContextKey, user)))
	}
}

// requireAdmin is requireAuth plus an isAdmin gate.
func (a *API) requireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return a.requireAuth(func(w http.ResponseWriter, r *http.Request) {
		user, err := GetUserFromContext(r.Context())
		if err != nil || !user.IsAdmin {
			utils.RespondError(w, nil, "Not authorized as an admin", http.StatusUnauthorized)
			return
		}
		next(w, r)
	})
}
