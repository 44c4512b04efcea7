// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package blog

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"

	"blogcms/internal/models"
)

// Field limits.
const (
	maxTitleLength       = 200
	maxExcerptLength     = 500
	maxContentLength     = 50000
	maxCommentLength     = 1000
	maxCategoryName      = 100
	maxTagName           = 50
	maxSearchLength      = 200
	maxFeaturedImageSize = 2048
)

var (
	// uuidRequired rejects the zero UUID, which Required does not catch for
	// array types.
	uuidRequired = validation.NotIn(uuid.Nil).Error("is required")

	sortFieldRule = validation.In(anySlice(models.SortFields)...).Error("is not a sortable field")
	sortDirRule   = validation.In(models.SortAsc, models.SortDesc).Error("must be asc or desc")

	featuredImageRules = []validation.Rule{
		validation.NilOrNotEmpty,
		validation.RuneLength(1, maxFeaturedImageSize),
		is.URL.Error("must be a valid URL"),
	}
)

func anySlice[T any](in []T) []any {
	out := make([]any, len(in))
	for i, v := range in {
		out[i] = v
	}
	return out
}

// postStatusRule accepts a known status; an empty value is left to
// Required or NilOrNotEmpty.
var postStatusRule = validation.By(func(value any) error {
	st, _ := value.(models.PostStatus)
	if p, ok := value.(*models.PostStatus); ok && p != nil {
		st = *p
	}
	if st == "" || st.Valid() {
		return nil
	}
	return errors.New("must be one of draft, published, archived")
})

// eachUUID validates every element of a UUID slice.
var eachUUID = validation.By(func(value any) error {
	var ids []uuid.UUID
	switch v := value.(type) {
	case []uuid.UUID:
		ids = v
	case *[]uuid.UUID:
		if v != nil {
			ids = *v
		}
	}
	for _, id := range ids {
		if id == uuid.Nil {
			return errors.New("must not contain an empty id")
		}
	}
	return nil
})

func validatePostInput(in *models.PostInput) error {
	return asValidationError(validation.ValidateStruct(in,
		validation.Field(&in.Title, validation.Required, validation.RuneLength(1, maxTitleLength)),
		validation.Field(&in.Content, validation.Required, validation.RuneLength(1, maxContentLength)),
		validation.Field(&in.Excerpt, validation.RuneLength(0, maxExcerptLength)),
		validation.Field(&in.FeaturedImage, featuredImageRules...),
		validation.Field(&in.Status, postStatusRule),
		validation.Field(&in.AuthorID, uuidRequired),
		validation.Field(&in.CategoryID, uuidRequired),
		validation.Field(&in.TagIDs, eachUUID),
	))
}

func validatePostPatch(p *models.PostPatch) error {
	return asValidationError(validation.ValidateStruct(p,
		validation.Field(&p.Title, validation.NilOrNotEmpty, validation.RuneLength(1, maxTitleLength)),
		validation.Field(&p.Content, validation.NilOrNotEmpty, validation.RuneLength(1, maxContentLength)),
		validation.Field(&p.Excerpt, validation.By(optionalString(validation.RuneLength(0, maxExcerptLength)))),
		validation.Field(&p.FeaturedImage, validation.By(optionalString(featuredImageRules...))),
		validation.Field(&p.Status, validation.NilOrNotEmpty, postStatusRule),
		validation.Field(&p.CategoryID, validation.By(optionalUUID)),
		validation.Field(&p.TagIDs, eachUUID),
	))
}

// optionalString applies rules to the value carried by an Optional[string].
func optionalString(rules ...validation.Rule) validation.RuleFunc {
	return func(value any) error {
		o, _ := value.(models.Optional[string])
		if o.Value == nil {
			return nil
		}
		return validation.Validate(*o.Value, rules...)
	}
}

func optionalUUID(value any) error {
	o, _ := value.(models.Optional[uuid.UUID])
	if o.Value == nil {
		return nil
	}
	return validation.Validate(*o.Value, uuidRequired)
}

func validateQuery(f *models.PostFilter, s *models.PostSort, pg *models.Pagination) error {
	errs := validation.Errors{}
	errs["page"] = validation.Validate(pg.Page, validation.Max(models.MaxPage).Error("is too large"))
	if f.Status != nil {
		errs["status"] = validation.Validate(*f.Status, validation.Required, postStatusRule)
	}
	errs["search"] = validation.Validate(f.Search, validation.RuneLength(0, maxSearchLength))
	errs["sort_field"] = validation.Validate(s.Field, sortFieldRule)
	errs["sort_direction"] = validation.Validate(s.Direction, sortDirRule)
	errs["tag_id"] = validation.Validate(f.TagIDs, eachUUID)
	return asValidationError(errs.Filter())
}

func validateCategory(name *string, description *string) error {
	errs := validation.Errors{}
	if name != nil {
		errs["name"] = validation.Validate(*name, validation.Required, validation.RuneLength(1, maxCategoryName))
	}
	errs["description"] = validation.Validate(description, validation.RuneLength(0, 1000))
	return asValidationError(errs.Filter())
}

func validateTag(in *models.TagInput) error {
	return asValidationError(validation.ValidateStruct(in,
		validation.Field(&in.Name, validation.Required, validation.RuneLength(1, maxTagName)),
	))
}

func validateComment(in *models.CommentInput) error {
	return asValidationError(validation.ValidateStruct(in,
		validation.Field(&in.Content, validation.Required, validation.RuneLength(1, maxCommentLength)),
		validation.Field(&in.PostID, uuidRequired),
		validation.Field(&in.AuthorID, uuidRequired),
		validation.Field(&in.ParentID, uuidRequired),
	))
}

func validateTagIDs(ids []uuid.UUID) error {
	return asValidationError(validation.Errors{"tag_ids": validation.Validate(ids, eachUUID)}.Filter())
}
