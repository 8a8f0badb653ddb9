// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package models defines the entities persisted by the Inkwell blog API.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Post is a blog post. AuthorID is the subject of the external identity
// that created the post and never changes; AuthorName is the display name
// captured at creation time and is not re-synced with the provider.
// Categories holds category slugs, ordered as submitted.
type Post struct {
	ID         uuid.UUID `json:"id"`
	Title      string    `json:"title"`
	Slug       string    `json:"slug"`
	Content    string    `json:"content"`
	AuthorID   string    `json:"authorId"`
	AuthorName string    `json:"authorName"`
	Categories []string  `json:"categories"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// OwnedBy reports whether the post belongs to the given identity subject.
func (p *Post) OwnedBy(userID string) bool {
	return p.AuthorID == userID
}
