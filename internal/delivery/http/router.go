package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"webinarhub/internal/delivery/http/controllers"
	"webinarhub/internal/delivery/http/middleware"
	"webinarhub/internal/domain"
)

// NewRouter initializes the HTTP router with all application routes
func NewRouter(
	webinarController *controllers.WebinarController,
	authController *controllers.AuthController,
	verifier domain.TokenVerifier,
	limiter *middleware.RateLimiter,
) *http.ServeMux {
	mux := http.NewServeMux()
	requireAuth := middleware.RequireAuth(verifier)

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	// Webinars
	mux.HandleFunc("POST /webinars", requireAuth(webinarController.OrganizeWebinar))
	mux.HandleFunc("POST /webinars/{webinarID}/seats", requireAuth(webinarController.ChangeWebinarSeats))

	// Auth (rate limited: credential endpoints are brute-force targets)
	mux.HandleFunc("POST /auth/signup", limiter.Wrap(authController.SignUp))
	mux.HandleFunc("POST /auth/login", limiter.Wrap(authController.Login))

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
