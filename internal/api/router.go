// WatchWise - Movie and TV Watchlist Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchwise

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/watchwise/internal/auth"
	"github.com/tomtom215/watchwise/internal/middleware"
)

// Router wires handlers and middleware into a chi mux.
type Router struct {
	handler       *Handler
	middleware    *auth.Middleware
	loginLimiter  *auth.LoginLimiter
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a Router. loginLimiter may be nil to disable login
// throttling.
func NewRouter(handler *Handler, mw *auth.Middleware, loginLimiter *auth.LoginLimiter, cfg *ChiMiddlewareConfig) *Router {
	return &Router{
		handler:       handler,
		middleware:    mw,
		loginLimiter:  loginLimiter,
		chiMiddleware: NewChiMiddleware(cfg),
	}
}

// SetupChi configures all HTTP routes using Chi router.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	// Global middleware, applied to all routes in order
	r.Use(chiMiddleware(middleware.RequestID))
	r.Use(chimiddleware.RealIP)
	r.Use(RequestLogger())
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS()) // global so OPTIONS preflight is answered
	r.Use(chiMiddleware(middleware.PrometheusMetrics))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusNotFound, "Not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Use(APISecurityHeaders())
		r.Use(chimiddleware.Compress(5, "application/json"))
		r.Use(router.chiMiddleware.RateLimit())

		r.Get("/health", router.handler.Health)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/signup", router.handler.Signup)
			r.Post("/login", router.login())
			r.With(router.middleware.Handler).Get("/me", router.handler.Me)
		})

		r.Group(func(r chi.Router) {
			r.Use(router.middleware.Handler)

			r.Get("/stats", router.handler.Stats)

			r.Route("/watchlist", func(r chi.Router) {
				r.Get("/", router.handler.ListWatchlist)
				r.Post("/", router.handler.AddToWatchlist)
				r.Delete("/", router.handler.ClearWatchlist)
				r.Get("/{id}", router.handler.GetWatchlistItem)
				r.Patch("/{id}", router.handler.UpdateWatchlistItem)
				r.Delete("/{id}", router.handler.RemoveWatchlistItem)
				r.Patch("/{id}/seasons/{seasonNumber}", router.handler.UpdateSeason)
			})
		})
	})

	return r
}

func (router *Router) login() http.HandlerFunc {
	if router.loginLimiter == nil {
		return router.handler.Login
	}
	return router.loginLimiter.Limit(router.handler.Login)
}
