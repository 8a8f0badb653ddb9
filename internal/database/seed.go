package database

import (
	"database/sql"
	"fmt"
	"log/slog"

	"inkwell/internal/slug"
)

// Seed populates the database with initial development data.
// It creates a starter set of categories if none exist, so a fresh
// checkout has something to assign posts to.
func Seed(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM categories").Scan(&count); err != nil {
		return fmt.Errorf("seed check categories: %w", err)
	}

	if count > 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}

	names := []string{"General", "Tech", "Life", "Travel"}
	for _, name := range names {
		_, err := db.Exec(`
			INSERT INTO categories (name, slug)
			VALUES ($1, $2)
		`, name, slug.Generate(name))
		if err != nil {
			return fmt.Errorf("seed insert category %q: %w", name, err)
		}
	}

	slog.Info("database seeded with default categories", "count", len(names))
	return nil
}
