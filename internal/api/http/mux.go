package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/sirupsen/logrus"

	"github.com/m-zajac/gitmatch/internal/app"
)

// Service provides profile, rating and recent views operations.
//go:generate mockgen -destination mock/service.go -package mock github.com/m-zajac/gitmatch/internal/api/http Service
type Service interface {
	Profile(ctx context.Context, username string) (*app.Profile, error)
	CollaborationRating(ctx context.Context, username1, username2 string) (*app.Rating, error)
	RecentProfiles(ctx context.Context) ([]app.RecentView, error)
}

// NewMux creates router for app's http server.
// allowedOrigins is the fixed cors allow-list of frontend/backend origins.
func NewMux(
	service Service,
	timeout time.Duration,
	allowedOrigins []string,
	l logrus.FieldLogger,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))
	r.Use(NewTimeoutMiddleware(timeout))

	urlParam := func(name string) func(*http.Request) string {
		return func(r *http.Request) string {
			return chi.URLParam(r, name)
		}
	}

	r.Get("/profile/{username}", NewProfileHandler(
		urlParam("username"),
		service,
		l,
	))
	r.Get("/collaboration-rating/{username1}/{username2}", NewCollaborationRatingHandler(
		urlParam("username1"),
		urlParam("username2"),
		service,
		l,
	))
	r.Get("/recent-users", NewRecentUsersHandler(service, l))

	return r
}
