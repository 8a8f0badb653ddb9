// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router wires the HTTP routes and middleware chain.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"inkwell/internal/handlers"
	"inkwell/internal/identity"
	"inkwell/internal/middleware"
)

// Config carries the dependencies the router needs.
type Config struct {
	Posts       *handlers.Posts
	Categories  *handlers.Categories
	Verifier    identity.Verifier
	CORSOrigins []string
}

// New builds the chi router with the full middleware chain. Reads are
// public; mutations sit behind RequireIdentity.
func New(cfg Config) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(middleware.LoadIdentity(cfg.Verifier))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api/posts", func(r chi.Router) {
		r.Get("/", cfg.Posts.List)
		r.Get("/{id}", cfg.Posts.Get)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireIdentity)
			r.Post("/", cfg.Posts.Create)
			r.Put("/{id}", cfg.Posts.Update)
			r.Delete("/{id}", cfg.Posts.Delete)
		})
	})

	r.Route("/api/categories", func(r chi.Router) {
		r.Get("/", cfg.Categories.List)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireIdentity)
			r.Post("/", cfg.Categories.Create)
		})
	})

	return r
}
