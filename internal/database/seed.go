// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package database

import (
	"database/sql"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"blogcms/internal/slug"
)

// Default development author created by Seed.
const (
	SeedAuthorEmail    = "author@blogcms.local"
	seedAuthorName     = "Dev Author"
	seedAuthorPassword = "author"
)

var (
	seedCategories = []string{"General", "Engineering", "Announcements"}
	seedTags       = []string{"Go", "PostgreSQL", "Release Notes"}
)

// Seed populates the database with initial development data: one author
// (the blog never creates users itself) and a few starter categories and
// tags. It is a no-op once any user exists.
func Seed(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM users").Scan(&count); err != nil {
		return fmt.Errorf("seed check users: %w", err)
	}

	if count > 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(seedAuthorPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed bcrypt: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed begin tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO users (name, email, password_hash)
		VALUES ($1, $2, $3)
	`, seedAuthorName, SeedAuthorEmail, string(hash))
	if err != nil {
		return fmt.Errorf("seed insert author: %w", err)
	}

	for _, name := range seedCategories {
		if _, err := tx.Exec(`
			INSERT INTO blog_categories (name, slug) VALUES ($1, $2)
			ON CONFLICT DO NOTHING
		`, name, slug.Generate(name)); err != nil {
			return fmt.Errorf("seed insert category %q: %w", name, err)
		}
	}

	for _, name := range seedTags {
		if _, err := tx.Exec(`
			INSERT INTO blog_tags (name, slug) VALUES ($1, $2)
			ON CONFLICT DO NOTHING
		`, name, slug.Generate(name)); err != nil {
			return fmt.Errorf("seed insert tag %q: %w", name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed commit: %w", err)
	}

	slog.Info("database seeded with development data",
		"email", SeedAuthorEmail,
		"categories", len(seedCategories),
		"tags", len(seedTags),
	)
	return nil
}
