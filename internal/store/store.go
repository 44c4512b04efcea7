// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store provides database access methods for all blog entities.
// Each store struct wraps a DBTX (a *sql.DB or a *sql.Tx) and exposes
// typed query methods. Stores bundles them so a group of writes can run
// inside one transaction.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL SQLSTATE codes mapped to store errors.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
)

var (
	// ErrConflict is returned when a write violates a unique constraint,
	// e.g. a duplicate slug or name.
	ErrConflict = errors.New("conflict")
	// ErrInvalidReference is returned when a write points at a row that
	// does not exist, e.g. an unknown tag or category id.
	ErrInvalidReference = errors.New("invalid reference")
	// ErrConstraint is returned when a write violates a check constraint.
	ErrConstraint = errors.New("constraint violation")
)

// DBTX is the subset of *sql.DB and *sql.Tx used by the stores.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// txBeginner is implemented by *sql.DB but not by *sql.Tx.
type txBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// Stores groups every entity store over the same connection.
type Stores struct {
	db DBTX

	Posts      *PostStore
	Categories *CategoryStore
	Tags       *TagStore
	PostTags   *PostTagStore
	Comments   *CommentStore
}

// New returns the stores backed by db.
func New(db DBTX) *Stores {
	return &Stores{
		db:         db,
		Posts:      NewPostStore(db),
		Categories: NewCategoryStore(db),
		Tags:       NewTagStore(db),
		PostTags:   NewPostTagStore(db),
		Comments:   NewCommentStore(db),
	}
}

// InTx runs fn with stores bound to a single transaction, committing when fn
// returns nil and rolling back otherwise. Called on stores that are already
// transactional, fn joins the outer transaction.
func (s *Stores) InTx(ctx context.Context, fn func(tx *Stores) error) error {
	beginner, ok := s.db.(txBeginner)
	if !ok {
		return fn(s)
	}

	tx, err := beginner.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err := fn(New(tx)); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// wrapErr annotates err with op and classifies constraint violations so
// callers can test them with errors.Is.
func wrapErr(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return fmt.Errorf("%s: %w: %s", op, ErrConflict, pgErr.ConstraintName)
		case pgForeignKeyViolation:
			return fmt.Errorf("%s: %w: %s", op, ErrInvalidReference, pgErr.ConstraintName)
		case pgCheckViolation:
			return fmt.Errorf("%s: %w: %s", op, ErrConstraint, pgErr.ConstraintName)
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}
