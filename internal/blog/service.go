// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package blog implements the blog content operations on top of the store
// layer: input validation, slug derivation, publication rules, transactional
// writes and the dashboard statistics report. A Service holds no request
// state and is safe for concurrent use.
package blog

import (
	"time"

	"blogcms/internal/models"
	"blogcms/internal/store"
)

// Options tunes the service. Zero values fall back to the package defaults.
type Options struct {
	// DefaultPageSize applies when a listing asks for no page size.
	DefaultPageSize int
	// MaxPageSize caps page sizes; it cannot exceed models.MaxPageSize.
	MaxPageSize int
}

// Service is the entry point for every blog operation.
type Service struct {
	stores          *store.Stores
	defaultPageSize int
	maxPageSize     int
	now             func() time.Time
}

// NewService returns a Service over db, which is usually the *sql.DB pool.
func NewService(db store.DBTX, opts Options) *Service {
	s := &Service{
		stores:          store.New(db),
		defaultPageSize: models.DefaultPageSize,
		maxPageSize:     models.MaxPageSize,
		now:             time.Now,
	}
	if opts.DefaultPageSize > 0 {
		s.defaultPageSize = opts.DefaultPageSize
	}
	if opts.MaxPageSize > 0 && opts.MaxPageSize < models.MaxPageSize {
		s.maxPageSize = opts.MaxPageSize
	}
	if s.defaultPageSize > s.maxPageSize {
		s.defaultPageSize = s.maxPageSize
	}
	return s
}

// pagination applies the configured page size bounds and normalizes p.
func (s *Service) pagination(p models.Pagination) models.Pagination {
	if p.Limit < 1 {
		p.Limit = s.defaultPageSize
	}
	if p.Limit > s.maxPageSize {
		p.Limit = s.maxPageSize
	}
	return p.Normalize()
}
