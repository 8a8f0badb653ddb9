// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package slug derives URL-safe identifiers from post titles and
// category names.
package slug

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	// stripped matches characters that never appear in a slug.
	stripped = regexp.MustCompile(`[^a-z0-9\s-]`)
	// separators matches runs of whitespace or hyphens that collapse
	// into a single hyphen.
	separators = regexp.MustCompile(`[\s-]+`)
)

// Generate lowercases the input, drops everything that is not a letter,
// digit, space, or hyphen, and joins the remaining words with single
// hyphens. Example: "Hello, World! 2026" → "hello-world-2026".
func Generate(s string) string {
	out := strings.ToLower(strings.TrimSpace(s))
	out = stripped.ReplaceAllString(out, "")
	out = separators.ReplaceAllString(out, "-")
	return strings.Trim(out, "-")
}

// Disambiguate appends a current-time suffix to a slug that collided
// with an existing one. Millisecond precision keeps two same-titled
// posts apart without coordinating with the database.
func Disambiguate(s string) string {
	return s + "-" + strconv.FormatInt(time.Now().UnixMilli(), 10)
}
