package http

import (
	"log/slog"
	"net/http"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"freelancercheckin/internal/delivery/http/controllers"
	"freelancercheckin/internal/delivery/http/middleware"
)

// NewRouter initializes the HTTP router with all application routes
func NewRouter(eventController *controllers.EventController, registrationController *controllers.RegistrationController) *http.ServeMux {
	mux := http.NewServeMux()

	// Event board
	mux.HandleFunc("GET /events", eventController.ListEvents)
	mux.HandleFunc("POST /events", eventController.CreateEvent)
	mux.HandleFunc("GET /events/{eventID}", eventController.GetEvent)
	mux.HandleFunc("DELETE /events/{eventID}", eventController.DeleteEvent)

	// Registrations
	mux.HandleFunc("POST /events/{eventID}/registrations", registrationController.Register)
	mux.HandleFunc("GET /events/{eventID}/registrations", registrationController.EventRoster)
	mux.HandleFunc("GET /registrations", registrationController.SearchRegistrants)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}

// NewHandler wraps the router with the middleware chain: request id, panic recovery,
// request logging and CORS, outermost first.
func NewHandler(router http.Handler, logger *slog.Logger, allowedOrigins []string) http.Handler {
	h := middleware.CORS(allowedOrigins, router)
	h = middleware.LoggingMiddleware(logger, h)
	h = chimiddleware.Recoverer(h)
	return chimiddleware.RequestID(h)
}
