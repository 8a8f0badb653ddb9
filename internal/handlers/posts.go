// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"inkwell/internal/middleware"
	"inkwell/internal/models"
	"inkwell/internal/slug"
	"inkwell/internal/store"
)

// Default pagination values applied when the query parameters are
// absent or malformed.
const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

// Posts handles the post CRUD endpoints.
type Posts struct {
	posts      *store.PostStore
	categories *store.CategoryStore
}

// NewPosts creates a new Posts handler.
func NewPosts(posts *store.PostStore, categories *store.CategoryStore) *Posts {
	return &Posts{posts: posts, categories: categories}
}

type postCreateRequest struct {
	Title      string   `json:"title"`
	Content    string   `json:"content"`
	Categories []string `json:"categories"`
}

// postUpdateRequest uses pointers so absent fields can be told apart
// from fields explicitly set to an empty value.
type postUpdateRequest struct {
	Title      *string   `json:"title"`
	Content    *string   `json:"content"`
	Categories *[]string `json:"categories"`
}

// List returns a page of posts, newest first, optionally filtered by
// category slug or name. An unresolvable category filter is ignored
// rather than rejected, so the client sees the unfiltered list.
func (h *Posts) List(w http.ResponseWriter, r *http.Request) {
	page := queryInt(r, "page", defaultPage)
	limit := queryInt(r, "limit", defaultLimit)
	if limit > maxLimit {
		limit = maxLimit
	}

	filter := ""
	if label := r.URL.Query().Get("category"); label != "" {
		cat, err := h.categories.FindBySlugOrName(label)
		if err != nil {
			slog.Error("resolving category filter", "category", label, "error", err)
			respondError(w, http.StatusInternalServerError, "Failed to fetch posts")
			return
		}
		if cat != nil {
			filter = cat.Slug
		}
	}

	total, err := h.posts.Count(filter)
	if err != nil {
		slog.Error("counting posts", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch posts")
		return
	}

	items, err := h.posts.List(filter, limit, (page-1)*limit)
	if err != nil {
		slog.Error("listing posts", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch posts")
		return
	}

	respondPage(w, items, listMeta{
		Total: total,
		Page:  page,
		Limit: limit,
		Pages: (total + limit - 1) / limit,
	})
}

// Get returns a single post looked up by UUID or slug.
func (h *Posts) Get(w http.ResponseWriter, r *http.Request) {
	post, err := h.posts.FindByIDOrSlug(chi.URLParam(r, "id"))
	if err != nil {
		slog.Error("fetching post", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch post")
		return
	}
	if post == nil {
		respondError(w, http.StatusNotFound, "Post not found")
		return
	}

	respondData(w, http.StatusOK, post)
}

// Create stores a new post owned by the authenticated user. The slug is
// derived from the title; a timestamp suffix is appended when the slug
// is already taken.
func (h *Posts) Create(w http.ResponseWriter, r *http.Request) {
	id := middleware.IdentityFromCtx(r.Context())
	if id == nil {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req postCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	req.Title = strings.TrimSpace(req.Title)
	req.Content = strings.TrimSpace(req.Content)
	if msg := validatePost(req.Title, req.Content); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}

	postSlug, err := h.uniqueSlug(req.Title, uuid.Nil)
	if err != nil {
		slog.Error("generating slug", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to create post")
		return
	}

	cats, err := h.categories.Resolve(req.Categories)
	if err != nil {
		slog.Error("resolving categories", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to create post")
		return
	}

	created, err := h.posts.Create(&models.Post{
		Title:      req.Title,
		Slug:       postSlug,
		Content:    req.Content,
		AuthorID:   id.UserID,
		AuthorName: id.DisplayName,
		Categories: cats,
	})
	if err != nil {
		slog.Error("creating post", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to create post")
		return
	}

	respondData(w, http.StatusCreated, created)
}

// Update rewrites the provided fields of a post. Only the author may
// update it; a missing post reports 404 before ownership is checked.
func (h *Posts) Update(w http.ResponseWriter, r *http.Request) {
	id := middleware.IdentityFromCtx(r.Context())
	if id == nil {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req postUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	post, err := h.posts.FindByIDOrSlug(chi.URLParam(r, "id"))
	if err != nil {
		slog.Error("fetching post", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to update post")
		return
	}
	if post == nil {
		respondError(w, http.StatusNotFound, "Post not found")
		return
	}
	if !post.OwnedBy(id.UserID) {
		respondError(w, http.StatusForbidden, "You can only edit your own posts")
		return
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		content := post.Content
		if req.Content != nil {
			content = strings.TrimSpace(*req.Content)
		}
		if msg := validatePost(title, content); msg != "" {
			respondError(w, http.StatusBadRequest, msg)
			return
		}
		if title != post.Title {
			newSlug, err := h.uniqueSlug(title, post.ID)
			if err != nil {
				slog.Error("generating slug", "error", err)
				respondError(w, http.StatusInternalServerError, "Failed to update post")
				return
			}
			post.Slug = newSlug
		}
		post.Title = title
	}

	if req.Content != nil {
		content := strings.TrimSpace(*req.Content)
		if msg := validatePost(post.Title, content); msg != "" {
			respondError(w, http.StatusBadRequest, msg)
			return
		}
		post.Content = content
	}

	if req.Categories != nil {
		cats, err := h.categories.Resolve(*req.Categories)
		if err != nil {
			slog.Error("resolving categories", "error", err)
			respondError(w, http.StatusInternalServerError, "Failed to update post")
			return
		}
		post.Categories = cats
	}

	updated, err := h.posts.Update(post)
	if err != nil {
		slog.Error("updating post", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to update post")
		return
	}
	if updated == nil {
		respondError(w, http.StatusNotFound, "Post not found")
		return
	}

	respondData(w, http.StatusOK, updated)
}

// Delete removes a post. Only the author may delete it; the removed
// record is echoed back in the response.
func (h *Posts) Delete(w http.ResponseWriter, r *http.Request) {
	id := middleware.IdentityFromCtx(r.Context())
	if id == nil {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	post, err := h.posts.FindByIDOrSlug(chi.URLParam(r, "id"))
	if err != nil {
		slog.Error("fetching post", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to delete post")
		return
	}
	if post == nil {
		respondError(w, http.StatusNotFound, "Post not found")
		return
	}
	if !post.OwnedBy(id.UserID) {
		respondError(w, http.StatusForbidden, "You can only delete your own posts")
		return
	}

	if err := h.posts.Delete(post.ID); err != nil {
		slog.Error("deleting post", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to delete post")
		return
	}

	respondData(w, http.StatusOK, post)
}

// uniqueSlug derives a slug from the title and disambiguates it with a
// timestamp suffix when another post already uses it.
func (h *Posts) uniqueSlug(title string, exclude uuid.UUID) (string, error) {
	s := slug.Generate(title)
	taken, err := h.posts.SlugExists(s, exclude)
	if err != nil {
		return "", err
	}
	if taken {
		s = slug.Disambiguate(s)
	}
	return s, nil
}

// queryInt parses a positive integer query parameter, falling back to
// the default when the parameter is absent, malformed, or non-positive.
func queryInt(r *http.Request, key string, fallback int) int {
	v, err := strconv.Atoi(r.URL.Query().Get(key))
	if err != nil || v < 1 {
		return fallback
	}
	return v
}
