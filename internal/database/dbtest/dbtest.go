// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package dbtest provides a shared PostgreSQL helper for integration tests.
// Every call to Open gets its own throwaway schema, so tests see an empty,
// freshly migrated database and never touch each other's rows. Tests are
// skipped when PostgreSQL is not available.
package dbtest

import (
	"database/sql"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"

	"blogcms/internal/database"
)

// DSN returns the PostgreSQL connection string for testing.
// Uses the POSTGRES_* environment variables with the config package defaults.
func DSN() string {
	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	user := envOr("POSTGRES_USER", "blogcms")
	pass := envOr("POSTGRES_PASSWORD", "changeme")
	name := envOr("POSTGRES_DB", "blogcms")
	return "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=disable"
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Open creates a private schema, connects with it as the search_path and
// runs all migrations. The schema is dropped when the test finishes.
func Open(t testing.TB) *sql.DB {
	t.Helper()

	admin, err := sql.Open("pgx", DSN())
	if err != nil {
		t.Skipf("skipping integration test: cannot open DB: %v", err)
	}
	if err := admin.Ping(); err != nil {
		admin.Close()
		t.Skipf("skipping integration test: DB not reachable: %v", err)
	}

	schema := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	if _, err := admin.Exec(`CREATE SCHEMA ` + schema); err != nil {
		admin.Close()
		t.Fatalf("create schema: %v", err)
	}

	db, err := sql.Open("pgx", DSN()+"&search_path="+schema)
	if err != nil {
		admin.Close()
		t.Fatalf("open schema connection: %v", err)
	}

	t.Cleanup(func() {
		db.Close()
		if _, err := admin.Exec(`DROP SCHEMA ` + schema + ` CASCADE`); err != nil {
			t.Logf("drop schema %s: %v", schema, err)
		}
		admin.Close()
	})

	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	return db
}

// CreateAuthor inserts a user row and returns its id. The email is derived
// from name, so names must be unique within a test.
func CreateAuthor(t testing.TB, db *sql.DB, name string) uuid.UUID {
	t.Helper()

	email := fmt.Sprintf("%s@example.test", strings.ToLower(strings.ReplaceAll(name, " ", ".")))
	var id uuid.UUID
	err := db.QueryRow(
		`INSERT INTO users (name, email) VALUES ($1, $2) RETURNING id`,
		name, email,
	).Scan(&id)
	if err != nil {
		t.Fatalf("create author %q: %v", name, err)
	}
	return id
}
