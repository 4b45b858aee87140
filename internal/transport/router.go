package transport

import (
	"net/http"

	"grafica-be/internal/files"
	"grafica-be/internal/logger"
	"grafica-be/internal/middleware"
	"grafica-be/internal/notification"
	"grafica-be/internal/order"
	"grafica-be/internal/product"
	"grafica-be/internal/user"

	"github.com/gorilla/mux"
)

type Handler struct {
	Products      product.Service
	Orders        order.Service
	Notifications notification.Service
	Users         user.Service
	Files         files.Storage
}

// NewRouter wires the HTTP surface. Quoting and product listing are
// public (the customer calculator); everything that touches orders or
// the catalog requires a staff token, admin-only for pricing and users.
func NewRouter(h *Handler) http.Handler {
	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/login", h.Login).Methods(http.MethodPost)
	api.HandleFunc("/products", h.ListProducts).Methods(http.MethodGet)
	api.HandleFunc("/products/{id}", h.GetProduct).Methods(http.MethodGet)
	api.HandleFunc("/quotes", h.Quote).Methods(http.MethodPost)
	api.HandleFunc("/orders", h.CreateOrder).Methods(http.MethodPost)

	staff := api.NewRoute().Subrouter()
	staff.Use(middleware.RequireAuth)
	staff.HandleFunc("/orders/active", h.ListActiveOrders).Methods(http.MethodGet)
	staff.HandleFunc("/orders/history", h.ListOrderHistory).Methods(http.MethodGet)
	staff.HandleFunc("/orders/{id}", h.GetOrder).Methods(http.MethodGet)
	staff.HandleFunc("/orders/{id}/status", h.TransitionOrder).Methods(http.MethodPatch)
	staff.HandleFunc("/orders/{id}", h.UpdateOrderDetails).Methods(http.MethodPatch)
	staff.HandleFunc("/notifications", h.ListNotifications).Methods(http.MethodGet)
	staff.HandleFunc("/notifications/{id}/read", h.MarkNotificationRead).Methods(http.MethodPatch)

	admin := api.NewRoute().Subrouter()
	admin.Use(middleware.RequireRole(user.RoleAdmin))
	admin.HandleFunc("/products", h.CreateProduct).Methods(http.MethodPost)
	admin.HandleFunc("/products/{id}/pricing", h.UpdateProductPricing).Methods(http.MethodPut)
	admin.HandleFunc("/products/{id}", h.DeleteProduct).Methods(http.MethodDelete)
	admin.HandleFunc("/users", h.RegisterUser).Methods(http.MethodPost)
	admin.HandleFunc("/users", h.ListUsers).Methods(http.MethodGet)

	var handler http.Handler = r
	handler = middleware.RateLimitMiddleware(handler)
	handler = middleware.AuthMiddleware(handler)
	handler = logger.LoggingMiddleware(handler)
	handler = logger.RequestIDMiddleware(handler)

	return handler
}
