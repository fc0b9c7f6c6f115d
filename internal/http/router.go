package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/ledgerline/ledgerline/internal/http/calendar"
	"github.com/ledgerline/ledgerline/internal/http/income"
	"github.com/ledgerline/ledgerline/internal/http/savings"
	"github.com/ledgerline/ledgerline/internal/http/snapshot"
)

func New(
	incomesV1 *income.Handler,
	calendarV1 *calendar.Handler,
	goalsV1 *savings.Handler,
	snapshotV1 *snapshot.Handler,
	authSecret string,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	router.Route("/api/v1", func(r chi.Router) {
		if authSecret != "" {
			r.Use(RequireToken(authSecret))
		}

		r.Route("/incomes", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			incomesV1.Routes(r)
		})

		r.Route("/calendar", calendarV1.Routes)

		r.Route("/goals", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			goalsV1.Routes(r)
		})

		r.Route("/snapshot", snapshotV1.Routes)
	})

	return router
}
