package api

import (
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/thecosmeticshop/backend/utils"
)

// Collection names used by the handlers.
const (
	UsersCollection    = "users"
	OrdersCollection   = "orders"
	ProductsCollection = "products"
	BannersCollection  = "banners"
	ConfigsCollection  = "configs"
)

// API bundles the collaborators every handler needs. All of them are built in
// main and passed in by reference.
type API struct {
	DB         *utils.Database
	Notify     *utils.Notifications
	Uploads    *utils.Uploader
	Tokens     *utils.TokenAuth
	Production bool
}

func New(db *utils.Database, notify *utils.Notifications, uploads *utils.Uploader, tokens *utils.TokenAuth, production bool) *API {
	return &API{
		DB:         db,
		Notify:     notify,
		Uploads:    uploads,
		Tokens:     tokens,
		Production: production,
	}
}

// Routes registers every handler on the mux.
func (a *API) Routes(mux *http.ServeMux) {
	// Users
	mux.HandleFunc("POST /api/users", a.RegisterHandler)
	mux.HandleFunc("POST /api/users/login", a.LoginHandler)
	mux.HandleFunc("POST /api/users/verify", a.VerifyOTPHandler)
	mux.HandleFunc("POST /api/users/resend-otp", a.ResendOTPHandler)
	mux.HandleFunc("GET /api/users/profile", a.requireAuth(a.GetProfileHandler))
	mux.HandleFunc("PUT /api/users/profile", a.requireAuth(a.UpdateProfileHandler))
	mux.HandleFunc("GET /api/users", a.requireAdmin(a.ListUsersHandler))
	mux.HandleFunc("DELETE /api/users/{id}", a.requireAdmin(a.DeleteUserHandler))

	// Orders
	mux.HandleFunc("POST /api/orders", a.requireAuth(a.CreateOrderHandler))
	mux.HandleFunc("GET /api/orders/myorders", a.requireAuth(a.MyOrdersHandler))
	mux.HandleFunc("GET /api/orders/{id}", a.requireAuth(a.GetOrderHandler))
	mux.HandleFunc("GET /api/orders", a.requireAdmin(a.ListOrdersHandler))
	mux.HandleFunc("PUT /api/orders/{id}/status", a.requireAdmin(a.UpdateOrderStatusHandler))

	// Products
	mux.HandleFunc("GET /api/products", a.ListProductsHandler)
	mux.HandleFunc("GET /api/products/{id}", a.GetProductHandler)

	// Banners
	mux.HandleFunc("GET /api/banners", a.ListBannersHandler)
	mux.HandleFunc("POST /api/banners", a.requireAdmin(a.CreateBannerHandler))
	mux.HandleFunc("PUT /api/banners/{id}", a.requireAdmin(a.UpdateBannerHandler))
	mux.HandleFunc("DELETE /api/banners/{id}", a.requireAdmin(a.DeleteBannerHandler))

	// Config
	mux.HandleFunc("GET /api/config/{key}", a.requireAdmin(a.GetConfigHandler))
	mux.HandleFunc("PUT /api/config/{key}", a.requireAdmin(a.UpdateConfigHandler))

	// Upload
	mux.HandleFunc("POST /api/upload", a.UploadHandler)

	mux.HandleFunc("GET /{$}", a.RootHandler)
	mux.HandleFunc("/", a.NotFoundHandler)
}

// RootHandler answers the health-line at the root path.
func (a *API) RootHandler(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("API is running..."))
}

// NotFoundHandler catches every unregistered route.
func (a *API) NotFoundHandler(w http.ResponseWriter, r *http.Request) {
	utils.RespondError(w, nil, "Not Found - "+r.URL.Path, http.StatusNotFound)
}

// serverError reports an unexpected failure, attaching the stack trace unless
// running in production.
func (a *API) serverError(w http.ResponseWriter, logger *strings.Builder, message string) {
	utils.RespondErrorWithStack(w, logger, message, string(debug.Stack()), a.Production)
}
