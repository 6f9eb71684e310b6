package http

import (
	"net/http"

	"estatehub/internal/delivery/http/handler"
	"estatehub/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Router struct {
	router              *mux.Router
	authHandler         *handler.AuthHandler
	userHandler         *handler.UserHandler
	propertyHandler     *handler.PropertyHandler
	bookingHandler      *handler.BookingHandler
	paymentHandler      *handler.PaymentHandler
	notificationHandler *handler.NotificationHandler
	reviewHandler       *handler.ReviewHandler
	wishlistHandler     *handler.WishlistHandler
	authMiddleware      *middleware.AuthMiddleware
	corsMiddleware      *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	propertyHandler *handler.PropertyHandler,
	bookingHandler *handler.BookingHandler,
	paymentHandler *handler.PaymentHandler,
	notificationHandler *handler.NotificationHandler,
	reviewHandler *handler.ReviewHandler,
	wishlistHandler *handler.WishlistHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		authHandler:         authHandler,
		userHandler:         userHandler,
		propertyHandler:     propertyHandler,
		bookingHandler:      bookingHandler,
		paymentHandler:      paymentHandler,
		notificationHandler: notificationHandler,
		reviewHandler:       reviewHandler,
		wishlistHandler:     wishlistHandler,
		authMiddleware:      authMiddleware,
		corsMiddleware:      corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check and metrics
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)
	r.router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", r.authHandler.Register).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Property routes (public reads)
	api.HandleFunc("/properties", r.propertyHandler.ListProperties).Methods(http.MethodGet)
	api.HandleFunc("/properties/{id}", r.propertyHandler.GetProperty).Methods(http.MethodGet)
	api.HandleFunc("/properties/{propertyId}/reviews", r.reviewHandler.ListPropertyReviews).Methods(http.MethodGet)

	// Property routes (agent/admin writes)
	propertyWrite := api.PathPrefix("/properties").Subrouter()
	propertyWrite.Use(r.authMiddleware.Authenticate)
	propertyWrite.Use(middleware.RequireAgent)
	propertyWrite.HandleFunc("", r.propertyHandler.CreateProperty).Methods(http.MethodPost)
	propertyWrite.HandleFunc("/{id}", r.propertyHandler.UpdateProperty).Methods(http.MethodPatch)
	propertyWrite.HandleFunc("/{id}", r.propertyHandler.DeleteProperty).Methods(http.MethodDelete)

	// Review writes (protected)
	propertyReviews := api.PathPrefix("/properties").Subrouter()
	propertyReviews.Use(r.authMiddleware.Authenticate)
	propertyReviews.HandleFunc("/{propertyId}/reviews", r.reviewHandler.CreateReview).Methods(http.MethodPost)

	reviews := api.PathPrefix("/reviews").Subrouter()
	reviews.Use(r.authMiddleware.Authenticate)
	reviews.HandleFunc("/{id}", r.reviewHandler.UpdateReview).Methods(http.MethodPatch)
	reviews.HandleFunc("/{id}", r.reviewHandler.DeleteReview).Methods(http.MethodDelete)

	// Payment webhook (public; verified by signature, not session)
	api.HandleFunc("/payments/webhook/paystack", r.paymentHandler.HandleWebhook).Methods(http.MethodPost)

	// Payment routes (protected)
	payments := api.PathPrefix("/payments").Subrouter()
	payments.Use(r.authMiddleware.Authenticate)
	payments.HandleFunc("/initialize/{bookingId}", r.paymentHandler.InitializePayment).Methods(http.MethodPost)
	payments.HandleFunc("/verify/{reference}", r.paymentHandler.VerifyPayment).Methods(http.MethodGet)
	payments.HandleFunc("", r.paymentHandler.ListMyPayments).Methods(http.MethodGet)

	// Booking stats (admin) and agent schedule register before the generic
	// {id} routes so their literal segments are not captured as IDs.
	bookingAdmin := api.PathPrefix("/bookings/stats").Subrouter()
	bookingAdmin.Use(r.authMiddleware.Authenticate)
	bookingAdmin.Use(middleware.RequireAdmin)
	bookingAdmin.HandleFunc("", r.bookingHandler.GetBookingStats).Methods(http.MethodGet)
	bookingAdmin.HandleFunc("/monthly/{year}", r.bookingHandler.GetMonthlyBookings).Methods(http.MethodGet)

	bookingAgent := api.PathPrefix("/bookings").Subrouter()
	bookingAgent.Use(r.authMiddleware.Authenticate)
	bookingAgent.Use(middleware.RequireAgent)
	bookingAgent.HandleFunc("/schedule", r.bookingHandler.GetAgentSchedule).Methods(http.MethodGet)
	bookingAgent.HandleFunc("/{id}/confirm", r.bookingHandler.ConfirmBooking).Methods(http.MethodPatch)
	bookingAgent.HandleFunc("/{id}/reject", r.bookingHandler.RejectBooking).Methods(http.MethodPatch)
	bookingAgent.HandleFunc("/{id}/complete", r.bookingHandler.CompleteBooking).Methods(http.MethodPatch)
	bookingAgent.HandleFunc("/{id}/confirm-payment", r.bookingHandler.ConfirmPayment).Methods(http.MethodPatch)

	// Booking routes (protected)
	bookings := api.PathPrefix("/bookings").Subrouter()
	bookings.Use(r.authMiddleware.Authenticate)
	bookings.HandleFunc("", r.bookingHandler.CreateBooking).Methods(http.MethodPost)
	bookings.HandleFunc("", r.bookingHandler.ListBookings).Methods(http.MethodGet)
	bookings.HandleFunc("/check-availability", r.bookingHandler.CheckAvailability).Methods(http.MethodPost)
	bookings.HandleFunc("/{id}", r.bookingHandler.GetBooking).Methods(http.MethodGet)
	bookings.HandleFunc("/{id}", r.bookingHandler.UpdateBooking).Methods(http.MethodPatch)
	bookings.HandleFunc("/{id}/cancel", r.bookingHandler.CancelBooking).Methods(http.MethodPatch)
	bookings.HandleFunc("/{id}", r.bookingHandler.DeleteBooking).Methods(http.MethodDelete)

	// Notification routes (protected)
	notifications := api.PathPrefix("/notifications").Subrouter()
	notifications.Use(r.authMiddleware.Authenticate)
	notifications.HandleFunc("", r.notificationHandler.ListNotifications).Methods(http.MethodGet)
	notifications.HandleFunc("/unread-count", r.notificationHandler.UnreadCount).Methods(http.MethodGet)
	notifications.HandleFunc("/mark-all-read", r.notificationHandler.MarkAllRead).Methods(http.MethodPatch)
	notifications.HandleFunc("/{id}", r.notificationHandler.GetNotification).Methods(http.MethodGet)
	notifications.HandleFunc("/{id}", r.notificationHandler.DeleteNotification).Methods(http.MethodDelete)

	// Wishlist routes (protected)
	wishlist := api.PathPrefix("/wishlist").Subrouter()
	wishlist.Use(r.authMiddleware.Authenticate)
	wishlist.HandleFunc("", r.wishlistHandler.ListItems).Methods(http.MethodGet)
	wishlist.HandleFunc("", r.wishlistHandler.AddItem).Methods(http.MethodPost)
	wishlist.HandleFunc("/{propertyId}", r.wishlistHandler.UpdateItem).Methods(http.MethodPatch)
	wishlist.HandleFunc("/{propertyId}", r.wishlistHandler.RemoveItem).Methods(http.MethodDelete)

	// Profile and agent application routes (protected)
	users := api.PathPrefix("/users").Subrouter()
	users.Use(r.authMiddleware.Authenticate)
	users.HandleFunc("/me", r.userHandler.UpdateMe).Methods(http.MethodPatch)
	users.HandleFunc("/apply-agent", r.userHandler.ApplyAsAgent).Methods(http.MethodPost)

	// Admin routes
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)
	admin.HandleFunc("/users", r.userHandler.ListUsers).Methods(http.MethodGet)
	admin.HandleFunc("/users/{id}", r.userHandler.GetUser).Methods(http.MethodGet)
	admin.HandleFunc("/users/{id}", r.userHandler.UpdateUser).Methods(http.MethodPatch)
	admin.HandleFunc("/users/{id}", r.userHandler.DeactivateUser).Methods(http.MethodDelete)
	admin.HandleFunc("/agent-applications/{id}/approve", r.userHandler.ApproveAgentApplication).Methods(http.MethodPatch)
	admin.HandleFunc("/agent-applications/{id}/reject", r.userHandler.RejectAgentApplication).Methods(http.MethodPatch)

	// Global middleware
	r.router.Use(r.corsMiddleware.Handle)
	r.router.Use(middleware.Metrics)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
