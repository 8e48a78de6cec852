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
	"golang.org/x/crypto/bcrypt"

	"github.com/thecosmeticshop/backend/models"
	"github.com/thecosmeticshop/backend/utils"
)

// UpdateProfileRequest carries the optional fields of a profile update; empty
// fields leave the stored value untouched.
type UpdateProfileRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Password string `json:"password"`
}

// ProfileResponse is the user's own view of the account.
type ProfileResponse struct {
	ID      primitive.ObjectID `json:"_id"`
	Name    string             `json:"name"`
	Email   string             `json:"email"`
	IsAdmin bool               `json:"isAdmin"`
	Phone   string             `json:"phone,omitempty"`
	Address string             `json:"address,omitempty"`
}

// emailTakenFilter matches any account other than selfID holding the email.
func emailTakenFilter(email string, selfID primitive.ObjectID) bson.M {
	return bson.M{"email": email, "_id": bson.M{"$ne": selfID}}
}

// GetProfileHandler returns the authenticated user's profile.
func (a *API) GetProfileHandler(w http.ResponseWriter, r *http.Request) {
	user, err := GetUserFromContext(r.Context())
	if err != nil {
		utils.RespondError(w, nil, "Not authorized", http.StatusUnauthorized)
		return
	}

	utils.RespondJSON(w, http.StatusOK, ProfileResponse{
		ID:      user.ID,
		Name:    user.Name,
		Email:   user.Email,
		IsAdmin: user.IsAdmin,
		Phone:   user.Phone,
		Address: user.Address,
	})
}

// UpdateProfileHandler applies the supplied fields and returns the updated
// profile with a fresh token.
func (a *API) UpdateProfileHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Update Profile API]")

	user, err := GetUserFromContext(r.Context())
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, "Not authorized", http.StatusUnauthorized)
		return
	}

	var req UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, &logMessageBuilder, "Invalid request body", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	set := bson.M{"updatedAt": time.Now()}
	if req.Name != "" {
		user.Name = req.Name
		set["name"] = req.Name
	}
	if req.Email != "" && req.Email != user.Email {
		// Emails are unique across accounts; moving to a taken address is a
		// conflict, same as registering with one.
		err := a.DB.Collection(UsersCollection).FindOne(ctx, emailTakenFilter(req.Email, user.ID)).Err()
		if err == nil {
			utils.RespondError(w, &logMessageBuilder, "User already exists", http.StatusBadRequest)
			return
		}
		if err != mongo.ErrNoDocuments {
			a.serverError(w, &logMessageBuilder, "Database error checking email")
			return
		}
		user.Email = req.Email
		set["email"] = req.Email
	}
	if req.Phone != "" {
		user.Phone = req.Phone
		set["phone"] = req.Phone
	}
	if req.Address != "" {
		user.Address = req.Address
		set["address"] = req.Address
	}
	if req.Password != "" {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			a.serverError(w, &logMessageBuilder, "Failed to hash password")
			return
		}
		set["password"] = string(hashedPassword)
	}

	_, err = a.DB.Collection(UsersCollection).UpdateOne(ctx, bson.M{"_id": user.ID}, bson.M{"$set": set})
	if err != nil {
		a.serverError(w, &logMessageBuilder, "Failed to update profile")
		return
	}

	token, err := a.Tokens.Generate(user.ID.Hex())
	if err != nil {
		a.serverError(w, &logMessageBuilder, "Failed to generate token")
		return
	}

	utils.AddToLogMessage(&logMessageBuilder, "Profile updated")
	utils.RespondJSON(w, http.StatusOK, AuthResponse{
		ID:      user.ID,
		Name:    user.Name,
		Email:   user.Email,
		IsAdmin: user.IsAdmin,
		Token:   token,
		Phone:   user.Phone,
		Address: user.Address,
	})
}

// ListUsersHandler returns every user account. Admin only.
func (a *API) ListUsersHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	cursor, err := a.DB.Collection(UsersCollection).Find(ctx, bson.M{})
	if err != nil {
		a.serverError(w, nil, "Failed to fetch users")
		return
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		a.serverError(w, nil, "Failed to decode users")
		return
	}
	if users == nil {
		users = []models.User{}
	}

	utils.RespondJSON(w, http.StatusOK, users)
}

// DeleteUserHandler removes a user account. Admin only.
func (a *API) DeleteUserHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Delete User API]")

	objID, err := primitive.ObjectIDFromHex(r.PathValue("id"))
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, "User not found", http.StatusNotFound)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	res, err := a.DB.Collection(UsersCollection).DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		a.serverError(w, &logMessageBuilder, "Failed to delete user")
		return
	}
	if res.DeletedCount == 0 {
		utils.RespondError(w, &logMessageBuilder, "User not found", http.StatusNotFound)
		return
	}

	utils.AddToLogMessage(&logMessageBuilder, "User removed")
	utils.RespondJSON(w, http.StatusOK, map[string]string{"message": "User removed"})
}
