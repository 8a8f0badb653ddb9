// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store contains the database access layer for posts and
// categories.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"inkwell/internal/models"
)

// PostStore handles all post-related database operations.
type PostStore struct {
	db *sql.DB
}

// NewPostStore creates a new PostStore with the given database connection.
func NewPostStore(db *sql.DB) *PostStore {
	return &PostStore{db: db}
}

const postColumns = `id, title, slug, content, author_id, author_name, categories, created_at, updated_at`

// scanPost scans a row into a Post, unpacking the categories JSON array.
func scanPost(scanner interface{ Scan(...any) error }) (*models.Post, error) {
	var p models.Post
	var cats []byte
	err := scanner.Scan(
		&p.ID, &p.Title, &p.Slug, &p.Content, &p.AuthorID, &p.AuthorName,
		&cats, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(cats, &p.Categories); err != nil {
		return nil, fmt.Errorf("decode categories: %w", err)
	}
	if p.Categories == nil {
		p.Categories = []string{}
	}
	return &p, nil
}

// encodeCategories packs a slug list into the JSONB column value.
// nil encodes as an empty array, never as JSON null.
func encodeCategories(categories []string) ([]byte, error) {
	if categories == nil {
		categories = []string{}
	}
	return json.Marshal(categories)
}

// List returns a page of posts ordered by creation date descending.
// When category is non-empty, only posts whose categories contain that
// slug are returned.
func (s *PostStore) List(category string, limit, offset int) ([]models.Post, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if category != "" {
		rows, err = s.db.Query(`
			SELECT `+postColumns+`
			FROM posts
			WHERE categories @> to_jsonb(ARRAY[$1::text])
			ORDER BY created_at DESC
			LIMIT $2 OFFSET $3
		`, category, limit, offset)
	} else {
		rows, err = s.db.Query(`
			SELECT `+postColumns+`
			FROM posts
			ORDER BY created_at DESC
			LIMIT $1 OFFSET $2
		`, limit, offset)
	}
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer rows.Close()

	items := []models.Post{}
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		items = append(items, *p)
	}
	return items, rows.Err()
}

// Count returns the number of posts matching the optional category filter.
func (s *PostStore) Count(category string) (int, error) {
	var (
		count int
		err   error
	)
	if category != "" {
		err = s.db.QueryRow(`
			SELECT COUNT(*) FROM posts
			WHERE categories @> to_jsonb(ARRAY[$1::text])
		`, category).Scan(&count)
	} else {
		err = s.db.QueryRow(`SELECT COUNT(*) FROM posts`).Scan(&count)
	}
	if err != nil {
		return 0, fmt.Errorf("count posts: %w", err)
	}
	return count, nil
}

// FindByIDOrSlug retrieves a post by its UUID or its slug, whichever
// matches. Returns nil if neither does.
func (s *PostStore) FindByIDOrSlug(key string) (*models.Post, error) {
	row := s.db.QueryRow(`
		SELECT `+postColumns+` FROM posts
		WHERE id::text = $1 OR slug = $1
	`, key)
	p, err := scanPost(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find post: %w", err)
	}
	return p, nil
}

// SlugExists reports whether another post already uses the slug.
// Pass uuid.Nil as exclude when creating; pass the post's own ID when
// updating so the post does not collide with itself.
func (s *PostStore) SlugExists(slug string, exclude uuid.UUID) (bool, error) {
	var exists bool
	err := s.db.QueryRow(`
		SELECT EXISTS (SELECT 1 FROM posts WHERE slug = $1 AND id <> $2)
	`, slug, exclude).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check post slug: %w", err)
	}
	return exists, nil
}

// Create inserts a new post and returns it with the generated ID and
// timestamps.
func (s *PostStore) Create(p *models.Post) (*models.Post, error) {
	cats, err := encodeCategories(p.Categories)
	if err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}

	row := s.db.QueryRow(`
		INSERT INTO posts (title, slug, content, author_id, author_name, categories)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+postColumns,
		p.Title, p.Slug, p.Content, p.AuthorID, p.AuthorName, cats,
	)
	created, err := scanPost(row)
	if err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}
	return created, nil
}

// Update rewrites the mutable fields of an existing post and returns
// the stored result. AuthorID and AuthorName are never touched.
func (s *PostStore) Update(p *models.Post) (*models.Post, error) {
	cats, err := encodeCategories(p.Categories)
	if err != nil {
		return nil, fmt.Errorf("update post: %w", err)
	}

	row := s.db.QueryRow(`
		UPDATE posts SET
			title = $1, slug = $2, content = $3, categories = $4,
			updated_at = NOW()
		WHERE id = $5
		RETURNING `+postColumns,
		p.Title, p.Slug, p.Content, cats, p.ID,
	)
	updated, err := scanPost(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update post: %w", err)
	}
	return updated, nil
}

// Delete removes a post by ID.
func (s *PostStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	return nil
}
