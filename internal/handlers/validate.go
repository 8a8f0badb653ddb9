package handlers

import (
	"strings"
	"unicode/utf8"
)

// Validation limits for post and category fields.
const (
	maxTitleLen   = 300
	maxContentLen = 100_000
	maxNameLen    = 120
)

// validatePost checks create/update inputs and returns the first error found.
func validatePost(title, content string) string {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(content) == "" {
		return "Title and content are required"
	}
	if utf8.RuneCountInString(title) > maxTitleLen {
		return "Title is too long (max 300 characters)"
	}
	if utf8.RuneCountInString(content) > maxContentLen {
		return "Content is too long (max 100,000 characters)"
	}
	return ""
}

// validateCategoryName checks a category name and returns the first error found.
func validateCategoryName(name string) string {
	if strings.TrimSpace(name) == "" {
		return "Name is required"
	}
	if utf8.RuneCountInString(name) > maxNameLen {
		return "Name is too long (max 120 characters)"
	}
	return ""
}
