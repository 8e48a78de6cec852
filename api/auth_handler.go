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

// RegisterRequest represents the payload for user registration
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest represents the payload for user login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// VerifyOTPRequest represents the payload for verifying OTP
type VerifyOTPRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

// ResendOTPRequest represents the payload for resending OTP
type ResendOTPRequest struct {
	Email string `json:"email"`
}

// AuthResponse is returned after a successful login or verification.
type AuthResponse struct {
	ID      primitive.ObjectID `json:"_id"`
	Name    string             `json:"name"`
	Email   string             `json:"email"`
	IsAdmin bool               `json:"isAdmin"`
	Token   string             `json:"token"`
	Phone   string             `json:"phone,omitempty"`
	Address string             `json:"address,omitempty"`
}

// otpMatches reports whether the supplied code matches the stored one and the
// stored expiry has not passed. A code is only invalid once the expiry is
// strictly in the past.
func otpMatches(user models.User, code string, now time.Time) bool {
	if user.OTP == "" || user.OTP != code {
		return false
	}
	return !user.OTPExpires.Before(now)
}

// RegisterHandler creates an unverified account and dispatches the OTP email.
func (a *API) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Register API]")

	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, &logMessageBuilder, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.Name == "" || req.Email == "" || req.Password == "" {
		utils.RespondError(w, &logMessageBuilder, "Name, Email and Password are required", http.StatusBadRequest)
		return
	}

	collection := a.DB.Collection(UsersCollection)
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var existing models.User
	err := collection.FindOne(ctx, bson.M{"email": req.Email}).Decode(&existing)
	if err == nil {
		utils.RespondError(w, &logMessageBuilder, "User already exists", http.StatusBadRequest)
		return
	} else if err != mongo.ErrNoDocuments {
		a.serverError(w, &logMessageBuilder, "Database error checking user")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		a.serverError(w, &logMessageBuilder, "Failed to hash password")
		return
	}

	otp, err := utils.GenerateOTP()
	if err != nil {
		a.serverError(w, &logMessageBuilder, "Failed to generate OTP")
		return
	}

	now := time.Now()
	user := models.User{
		Name:       req.Name,
		Email:      req.Email,
		Password:   string(hashedPassword),
		IsVerified: false,
		OTP:        otp,
		OTPExpires: now.Add(utils.OTPValidity),
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	res, err := collection.InsertOne(ctx, user)
	if err != nil {
		a.serverError(w, &logMessageBuilder, "Server error during registration")
		return
	}
	user.ID = res.InsertedID.(primitive.ObjectID)

	// Best effort: a failed email never fails the registration.
	a.Notify.Dispatch(user.Name, user.Email, "Verify your email - The Cosmetic Shop", verifyEmailHTML(otp))
	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("User registered: %s", user.Email))

	utils.RespondJSON(w, http.StatusCreated, map[string]interface{}{
		"_id":     user.ID,
		"name":    user.Name,
		"email":   user.Email,
		"message": "Registration successful. OTP sent to your email.",
	})
}

// LoginHandler authenticates a verified user and returns a session token.
func (a *API) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Login API]")

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, &logMessageBuilder, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.Email == "" || req.Password == "" {
		utils.RespondError(w, &logMessageBuilder, "Email and Password are required", http.StatusBadRequest)
		return
	}

	collection := a.DB.Collection(UsersCollection)
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var user models.User
	err := collection.FindOne(ctx, bson.M{"email": req.Email}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			utils.RespondError(w, &logMessageBuilder, "Invalid email or password", http.StatusUnauthorized)
		} else {
			a.serverError(w, &logMessageBuilder, "Server error during authentication")
		}
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		utils.RespondError(w, &logMessageBuilder, "Invalid email or password", http.StatusUnauthorized)
		return
	}

	if !user.IsVerified {
		utils.RespondError(w, &logMessageBuilder, "Please verify your email first.", http.StatusUnauthorized)
		return
	}

	token, err := a.Tokens.Generate(user.ID.Hex())
	if err != nil {
		a.serverError(w, &logMessageBuilder, "Failed to generate token")
		return
	}

	utils.AddToLogMessage(&logMessageBuilder, "Login successful")
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

// VerifyOTPHandler checks the supplied code, marks the account verified and
// returns a session token.
func (a *API) VerifyOTPHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Verify OTP API]")

	var req VerifyOTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, &logMessageBuilder, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.Email == "" || req.OTP == "" {
		utils.RespondError(w, &logMessageBuilder, "Email and OTP are required", http.StatusBadRequest)
		return
	}

	collection := a.DB.Collection(UsersCollection)
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var user models.User
	err := collection.FindOne(ctx, bson.M{"email": req.Email}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			utils.RespondError(w, &logMessageBuilder, "User not found", http.StatusNotFound)
		} else {
			a.serverError(w, &logMessageBuilder, "Server error during verification")
		}
		return
	}

	if !otpMatches(user, req.OTP, time.Now()) {
		utils.RespondError(w, &logMessageBuilder, "Invalid or expired OTP", http.StatusBadRequest)
		return
	}

	update := bson.M{
		"$set":   bson.M{"isVerified": true, "updatedAt": time.Now()},
		"$unset": bson.M{"otp": "", "otpExpires": ""},
	}
	if _, err := collection.UpdateOne(ctx, bson.M{"_id": user.ID}, update); err != nil {
		a.serverError(w, &logMessageBuilder, "Failed to verify user")
		return
	}

	token, err := a.Tokens.Generate(user.ID.Hex())
	if err != nil {
		a.serverError(w, &logMessageBuilder, "Failed to generate token")
		return
	}

	utils.AddToLogMessage(&logMessageBuilder, "OTP verified successfully")
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

// ResendOTPHandler regenerates the code for an unverified account. This is
// the one path where a failed email surfaces to the caller.
func (a *API) ResendOTPHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Resend OTP API]")

	var req ResendOTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, &logMessageBuilder, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.Email == "" {
		utils.RespondError(w, &logMessageBuilder, "Email is required", http.StatusBadRequest)
		return
	}

	collection := a.DB.Collection(UsersCollection)
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var user models.User
	err := collection.FindOne(ctx, bson.M{"email": req.Email}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			utils.RespondError(w, &logMessageBuilder, "User not found", http.StatusNotFound)
		} else {
			a.serverError(w, &logMessageBuilder, "Server error")
		}
		return
	}

	if user.IsVerified {
		utils.RespondError(w, &logMessageBuilder, "User already verified", http.StatusBadRequest)
		return
	}

	otp, err := utils.GenerateOTP()
	if err != nil {
		a.serverError(w, &logMessageBuilder, "Failed to generate OTP")
		return
	}

	update := bson.M{
		"$set": bson.M{
			"otp":        otp,
			"otpExpires": time.Now().Add(utils.OTPValidity),
			"updatedAt":  time.Now(),
		},
	}
	if _, err := collection.UpdateOne(ctx, bson.M{"_id": user.ID}, update); err != nil {
		a.serverError(w, &logMessageBuilder, "Failed to update user")
		return
	}

	if err := a.Notify.Send(ctx, user.Name, user.Email, "Resend: Verify your email - The Cosmetic Shop", resendOTPHTML(otp)); err != nil {
		utils.RespondError(w, &logMessageBuilder, fmt.Sprintf("Email failed: %v", err), http.StatusInternalServerError)
		return
	}

	utils.AddToLogMessage(&logMessageBuilder, "OTP resent")
	utils.RespondJSON(w, http.StatusOK, map[string]string{"message": "OTP resent successfully"})
}
