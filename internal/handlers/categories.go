// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"inkwell/internal/middleware"
	"inkwell/internal/models"
	"inkwell/internal/slug"
	"inkwell/internal/store"
)

// Categories handles the category endpoints.
type Categories struct {
	store *store.CategoryStore
}

// NewCategories creates a new Categories handler.
func NewCategories(s *store.CategoryStore) *Categories {
	return &Categories{store: s}
}

type categoryCreateRequest struct {
	Name string `json:"name"`
}

// List returns all categories ordered by name.
func (h *Categories) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.store.List()
	if err != nil {
		slog.Error("listing categories", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch categories")
		return
	}

	respondData(w, http.StatusOK, items)
}

// Create adds a new category. Uniqueness is decided on the generated
// slug, so "Go Tips" and "go tips" count as the same category.
func (h *Categories) Create(w http.ResponseWriter, r *http.Request) {
	if middleware.IdentityFromCtx(r.Context()) == nil {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req categoryCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	if msg := validateCategoryName(req.Name); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}

	catSlug := slug.Generate(req.Name)
	taken, err := h.store.SlugExists(catSlug)
	if err != nil {
		slog.Error("checking category slug", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to create category")
		return
	}
	if taken {
		respondError(w, http.StatusBadRequest, "Category already exists")
		return
	}

	created, err := h.store.Create(&models.Category{Name: req.Name, Slug: catSlug})
	if err != nil {
		slog.Error("creating category", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to create category")
		return
	}

	respondData(w, http.StatusCreated, created)
}
