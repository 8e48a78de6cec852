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

// CreateOrderRequest carries the checkout payload.
type CreateOrderRequest struct {
	OrderItems      []models.OrderItem     `json:"orderItems"`
	ShippingAddress models.ShippingAddress `json:"shippingAddress"`
	PaymentMethod   string                 `json:"paymentMethod"`
	ItemsPrice      float64                `json:"itemsPrice"`
	TaxPrice        float64                `json:"taxPrice"`
	ShippingPrice   float64                `json:"shippingPrice"`
	TotalPrice      float64                `json:"totalPrice"`
}

// UpdateOrderStatusRequest carries the new status value.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// applyOrderStatus mutates the order for the given transition. Delivered
// stamps deliveredAt and, for COD orders, completes the payment; every other
// status is a plain label.
func applyOrderStatus(order *models.Order, status string, now time.Time) {
	order.Status = status

	if status == models.OrderDelivered {
		order.IsDelivered = true
		order.DeliveredAt = &now
		if order.PaymentMethod == models.PaymentCOD {
			order.IsPaid = true
			order.PaidAt = &now
		}
	}
}

// CreateOrderHandler persists a new order and dispatches the confirmation and
// delivery-team notifications.
func (a *API) CreateOrderHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Create Order API]")

	user, err := GetUserFromContext(r.Context())
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, "Not authorized", http.StatusUnauthorized)
		return
	}

	var req CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, &logMessageBuilder, "Invalid request body", http.StatusBadRequest)
		return
	}

	if len(req.OrderItems) == 0 {
		utils.RespondError(w, &logMessageBuilder, "No order items", http.StatusBadRequest)
		return
	}

	now := time.Now()
	order := models.Order{
		OrderItems:      req.OrderItems,
		User:            user.ID,
		ShippingAddress: req.ShippingAddress,
		PaymentMethod:   req.PaymentMethod,
		ItemsPrice:      req.ItemsPrice,
		TaxPrice:        req.TaxPrice,
		ShippingPrice:   req.ShippingPrice,
		TotalPrice:      req.TotalPrice,
		Status:          models.OrderPending,
		IsPaid:          false,
		IsDelivered:     false,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	res, err := a.DB.Collection(OrdersCollection).InsertOne(ctx, order)
	if err != nil {
		a.serverError(w, &logMessageBuilder, "Failed to create order")
		return
	}
	order.ID = res.InsertedID.(primitive.ObjectID)

	// Both notifications are best effort and independent of each other.
	a.Notify.Dispatch(user.Name, user.Email, "Order Confirmation - The Cosmetic Shop",
		orderConfirmationHTML(user.Name, order.ID.Hex(), order.TotalPrice))

	if deliveryEmail := a.lookupConfigValue(ctx, "deliveryEmail"); deliveryEmail != "" {
		a.Notify.Dispatch("Delivery Team", deliveryEmail, "New Order Received",
			orderAlertHTML(order, user.Name))
	}

	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Order created: %s", order.ID.Hex()))
	utils.RespondJSON(w, http.StatusCreated, order)
}

// lookupConfigValue reads a config key, returning "" when unset or on error.
func (a *API) lookupConfigValue(ctx context.Context, key string) string {
	var cfg models.Config
	err := a.DB.Collection(ConfigsCollection).FindOne(ctx, bson.M{"key": key}).Decode(&cfg)
	if err != nil {
		return ""
	}
	return cfg.Value
}

// MyOrdersHandler lists the authenticated user's orders.
func (a *API) MyOrdersHandler(w http.ResponseWriter, r *http.Request) {
	user, err := GetUserFromContext(r.Context())
	if err != nil {
		utils.RespondError(w, nil, "Not authorized", http.StatusUnauthorized)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	cursor, err := a.DB.Collection(OrdersCollection).Find(ctx, bson.M{"user": user.ID})
	if err != nil {
		a.serverError(w, nil, "Failed to fetch orders")
		return
	}
	defer cursor.Close(ctx)

	var orders []models.Order
	if err := cursor.All(ctx, &orders); err != nil {
		a.serverError(w, nil, "Failed to decode orders")
		return
	}
	if orders == nil {
		orders = []models.Order{}
	}

	utils.RespondJSON(w, http.StatusOK, orders)
}

// GetOrderHandler returns one order with its owner's name and email resolved.
func (a *API) GetOrderHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Get Order API]")

	objID, err := primitive.ObjectIDFromHex(r.PathValue("id"))
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, "Order not found", http.StatusNotFound)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var order models.Order
	err = a.DB.Collection(OrdersCollection).FindOne(ctx, bson.M{"_id": objID}).Decode(&order)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			utils.RespondError(w, &logMessageBuilder, "Order not found", http.StatusNotFound)
		} else {
			a.serverError(w, &logMessageBuilder, "Failed to fetch order")
		}
		return
	}

	a.resolveOrderUser(ctx, &order, true)

	utils.RespondJSON(w, http.StatusOK, order)
}

// ListOrdersHandler returns every order with owner names resolved. Admin only.
func (a *API) ListOrdersHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	cursor, err := a.DB.Collection(OrdersCollection).Find(ctx, bson.M{})
	if err != nil {
		a.serverError(w, nil, "Failed to fetch orders")
		return
	}
	defer cursor.Close(ctx)

	var orders []models.Order
	if err := cursor.All(ctx, &orders); err != nil {
		a.serverError(w, nil, "Failed to decode orders")
		return
	}
	if orders == nil {
		orders = []models.Order{}
	}

	for i := range orders {
		a.resolveOrderUser(ctx, &orders[i], false)
	}

	utils.RespondJSON(w, http.StatusOK, orders)
}

// resolveOrderUser fills UserInfo from the owning user document; missing
// owners just leave it unset.
func (a *API) resolveOrderUser(ctx context.Context, order *models.Order, withEmail bool) {
	var owner models.User
	err := a.DB.Collection(UsersCollection).FindOne(ctx, bson.M{"_id": order.User}).Decode(&owner)
	if err != nil {
		return
	}

	info := &models.OrderUser{ID: owner.ID, Name: owner.Name}
	if withEmail {
		info.Email = owner.Email
	}
	order.UserInfo = info
}

// UpdateOrderStatusHandler transitions an order's status. Admin only.
func (a *API) UpdateOrderStatusHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Update Order Status API]")

	objID, err := primitive.ObjectIDFromHex(r.PathValue("id"))
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, "Order not found", http.StatusNotFound)
		return
	}

	var req UpdateOrderStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, &logMessageBuilder, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.Status == "" {
		utils.RespondError(w, &logMessageBuilder, "Status is required", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	collection := a.DB.Collection(OrdersCollection)

	var order models.Order
	err = collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&order)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			utils.RespondError(w, &logMessageBuilder, "Order not found", http.StatusNotFound)
		} else {
			a.serverError(w, &logMessageBuilder, "Failed to fetch order")
		}
		return
	}

	now := time.Now()
	applyOrderStatus(&order, req.Status, now)
	order.UpdatedAt = now

	set := bson.M{
		"status":      order.Status,
		"isPaid":      order.IsPaid,
		"isDelivered": order.IsDelivered,
		"updatedAt":   order.UpdatedAt,
	}
	if order.PaidAt != nil {
		set["paidAt"] = *order.PaidAt
	}
	if order.DeliveredAt != nil {
		set["deliveredAt"] = *order.DeliveredAt
	}

	if _, err := collection.UpdateOne(ctx, bson.M{"_id": order.ID}, bson.M{"$set": set}); err != nil {
		a.serverError(w, &logMessageBuilder, "Failed to update order")
		return
	}

	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Order %s set to %s", order.ID.Hex(), order.Status))
	utils.RespondJSON(w, http.StatusOK, order)
}
