package rest

import (
	"net/http"

	"github.com/heartmarshall/vitalog-backend/internal/domain"
	"github.com/heartmarshall/vitalog-backend/internal/transport/middleware"
)

// Handlers groups every handler the router mounts.
type Handlers struct {
	Auth    *AuthHandler
	Account *AccountHandler
	Sleep   *SleepHandler
	Sport   *SportHandler
	Meal    *MealHandler
	Comment *CommentHandler
	Friend  *FriendHandler
	Catalog *CatalogHandler
	Health  *HealthHandler
	// Metrics is mounted at MetricsPath when non-nil.
	Metrics     http.Handler
	MetricsPath string
}

// RouterOptions carries the cross-cutting middleware of the API.
type RouterOptions struct {
	// Global wraps the whole mux (request id, logging, recovery, CORS, auth).
	Global []middleware.Middleware
	// AuthLimit wraps the unauthenticated auth endpoints.
	AuthLimit middleware.Middleware
}

// NewRouter builds the HTTP handler of the API.
func NewRouter(h Handlers, opts RouterOptions) http.Handler {
	mux := http.NewServeMux()

	public := func(hf http.HandlerFunc) http.Handler {
		if opts.AuthLimit == nil {
			return hf
		}
		return opts.AuthLimit(hf)
	}
	private := func(hf http.HandlerFunc) http.Handler {
		return middleware.RequireAuth(hf)
	}

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)
	if h.Metrics != nil {
		path := h.MetricsPath
		if path == "" {
			path = "/metrics"
		}
		mux.Handle("GET "+path, h.Metrics)
	}

	mux.Handle("POST /api/auth/register", public(h.Auth.Register))
	mux.Handle("POST /api/auth/login", public(h.Auth.Login))
	mux.Handle("POST /api/auth/refresh", public(h.Auth.Refresh))
	mux.Handle("POST /api/auth/logout", private(h.Auth.Logout))

	mux.Handle("GET /api/account", private(h.Account.Me))
	mux.Handle("DELETE /api/account", private(h.Account.Delete))
	mux.Handle("GET /api/account/profile", private(h.Account.Profile))
	mux.Handle("PATCH /api/account/profile", private(h.Account.UpdateProfile))

	mux.Handle("GET /api/sleep", private(h.Sleep.List))
	mux.Handle("POST /api/sleep", private(h.Sleep.Create))
	mux.Handle("GET /api/sleep/{id}", private(h.Sleep.Get))
	mux.Handle("PATCH /api/sleep/{id}", private(h.Sleep.Update))
	mux.Handle("DELETE /api/sleep/{id}", private(h.Sleep.Delete))

	mux.Handle("GET /api/sport", private(h.Sport.List))
	mux.Handle("POST /api/sport", private(h.Sport.Create))
	mux.Handle("GET /api/sport/{id}", private(h.Sport.Get))
	mux.Handle("PATCH /api/sport/{id}", private(h.Sport.Update))
	mux.Handle("DELETE /api/sport/{id}", private(h.Sport.Delete))

	mux.Handle("GET /api/meals", private(h.Meal.List))
	mux.Handle("POST /api/meals", private(h.Meal.Create))
	mux.Handle("GET /api/meals/totals", private(h.Meal.Totals))
	mux.Handle("GET /api/meals/{id}", private(h.Meal.Get))
	mux.Handle("PATCH /api/meals/{id}", private(h.Meal.Update))
	mux.Handle("DELETE /api/meals/{id}", private(h.Meal.Delete))

	mux.Handle("GET /api/comments", private(h.Comment.List))
	mux.Handle("POST /api/comments", private(h.Comment.Create))
	mux.Handle("PATCH /api/comments/{id}", private(h.Comment.Update))
	mux.Handle("DELETE /api/comments/{id}", private(h.Comment.Delete))

	mux.Handle("GET /api/friends", private(h.Friend.Friends))
	mux.Handle("GET /api/friends/requests/received", private(h.Friend.Received))
	mux.Handle("GET /api/friends/requests/sent", private(h.Friend.Sent))
	mux.Handle("POST /api/friends/requests", private(h.Friend.Send))
	mux.Handle("POST /api/friends/edges/{id}/{action}", private(h.Friend.Transition))
	mux.Handle("GET /api/feed", private(h.Friend.Feed))

	mux.Handle("GET /api/catalog/sports", private(h.Catalog.Sports))
	mux.Handle("GET /api/catalog/foods", private(h.Catalog.Foods))

	mux.HandleFunc("/api/", func(w http.ResponseWriter, r *http.Request) {
		writeStatus(w, domain.StatusNotFound, "no such endpoint", nil)
	})

	return middleware.Chain(opts.Global...)(mux)
}
