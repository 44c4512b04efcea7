// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"errors"
	"net/url"
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"blogcms/internal/models"
)

// listQuery is a decoded post listing request.
type listQuery struct {
	filter     models.PostFilter
	sort       models.PostSort
	pagination models.Pagination
}

// parseListQuery decodes the post listing query string. Values that cannot
// be parsed are reported per parameter; range checks are left to the
// service.
func parseListQuery(q url.Values) (listQuery, validation.Errors) {
	var (
		lq   listQuery
		errs = validation.Errors{}
	)

	lq.pagination.Page = parseInt(q, "page", errs)
	lq.pagination.Limit = parseInt(q, "limit", errs)

	if v := q.Get("status"); v != "" {
		st := models.PostStatus(v)
		lq.filter.Status = &st
	}
	lq.filter.CategoryID = parseUUID(q, "category_id", errs)
	lq.filter.AuthorID = parseUUID(q, "author_id", errs)
	lq.filter.Search = q.Get("search")

	for _, v := range q["tag_id"] {
		id, err := uuid.Parse(v)
		if err != nil {
			errs["tag_id"] = errors.New("must be a valid UUID")
			break
		}
		lq.filter.TagIDs = append(lq.filter.TagIDs, id)
	}

	lq.sort = parseSort(q)

	if len(errs) > 0 {
		return lq, errs
	}
	return lq, nil
}

// parseSort reads sort_field and sort_direction. Empty values select the
// service default.
func parseSort(q url.Values) models.PostSort {
	return models.PostSort{
		Field:     models.SortField(q.Get("sort_field")),
		Direction: models.SortDirection(q.Get("sort_direction")),
	}
}

func parseInt(q url.Values, key string, errs validation.Errors) int {
	v := q.Get(key)
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		errs[key] = errors.New("must be an integer")
		return 0
	}
	return n
}

func parseUUID(q url.Values, key string, errs validation.Errors) *uuid.UUID {
	v := q.Get(key)
	if v == "" {
		return nil
	}
	id, err := uuid.Parse(v)
	if err != nil {
		errs[key] = errors.New("must be a valid UUID")
		return nil
	}
	return &id
}
