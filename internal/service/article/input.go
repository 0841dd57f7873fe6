package article

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/newsroom-backend/internal/domain"
)

const (
	MaxTitleLength = 200
	MaxBodyLength  = 100_000
)

// CreateInput holds the parameters for creating an article.
type CreateInput struct {
	Title       string
	Body        string
	Location    domain.Location
	CategoryIDs []string
	Tags        []string
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError
	errs = validateTitle(errs, i.Title)
	errs = validateBody(errs, i.Body)
	errs = validateLocation(errs, i.Location)
	errs = validateList(errs, "category_ids", i.CategoryIDs, domain.MaxCategories)
	errs = validateList(errs, "tags", i.Tags, domain.MaxTags)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// EditInput holds a content edit. Nil fields are left unchanged.
type EditInput struct {
	ArticleID   string
	Title       *string
	Body        *string
	Location    *domain.Location
	CategoryIDs *[]string
	Tags        *[]string
}

// Validate checks all fields and collects all errors.
func (i EditInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.ArticleID) == "" {
		errs = append(errs, domain.FieldError{Field: "article_id", Message: "required"})
	}
	if i.Title == nil && i.Body == nil && i.Location == nil && i.CategoryIDs == nil && i.Tags == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Title != nil {
		errs = validateTitle(errs, *i.Title)
	}
	if i.Body != nil {
		errs = validateBody(errs, *i.Body)
	}
	if i.Location != nil {
		errs = validateLocation(errs, *i.Location)
	}
	if i.CategoryIDs != nil {
		errs = validateList(errs, "category_ids", *i.CategoryIDs, domain.MaxCategories)
	}
	if i.Tags != nil {
		errs = validateList(errs, "tags", *i.Tags, domain.MaxTags)
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// patch converts the input into a content patch with trimmed values.
func (i EditInput) patch() domain.ArticlePatch {
	var p domain.ArticlePatch
	if i.Title != nil {
		t := strings.TrimSpace(*i.Title)
		p.Title = &t
	}
	if i.Body != nil {
		b := strings.TrimSpace(*i.Body)
		p.Body = &b
	}
	p.Location = i.Location
	if i.CategoryIDs != nil {
		c := cleanList(*i.CategoryIDs)
		p.CategoryIDs = &c
	}
	if i.Tags != nil {
		t := cleanList(*i.Tags)
		p.Tags = &t
	}
	return p
}

// ListInput holds the parameters for listing articles.
type ListInput struct {
	Location *domain.Location
	Limit    int
	Offset   int
}

// Validate checks all fields and collects all errors.
func (i ListInput) Validate() error {
	var errs []domain.FieldError
	if i.Location != nil {
		errs = validateLocation(errs, *i.Location)
	}
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be non-negative"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be non-negative"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ---------------------------------------------------------------------------
// Field validators
// ---------------------------------------------------------------------------

func validateTitle(errs []domain.FieldError, title string) []domain.FieldError {
	title = strings.TrimSpace(title)
	if title == "" {
		return append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return append(errs, domain.FieldError{Field: "title", Message: fmt.Sprintf("max %d characters", MaxTitleLength)})
	}
	return errs
}

func validateBody(errs []domain.FieldError, body string) []domain.FieldError {
	if utf8.RuneCountInString(body) > MaxBodyLength {
		return append(errs, domain.FieldError{Field: "body", Message: fmt.Sprintf("max %d characters", MaxBodyLength)})
	}
	return errs
}

func validateLocation(errs []domain.FieldError, loc domain.Location) []domain.FieldError {
	if loc != "" && !loc.IsValid() {
		return append(errs, domain.FieldError{Field: "location", Message: fmt.Sprintf("unknown location %q", loc)})
	}
	return errs
}

func validateList(errs []domain.FieldError, field string, items []string, limit int) []domain.FieldError {
	cleaned := cleanList(items)
	if len(cleaned) > limit {
		errs = append(errs, domain.FieldError{Field: field, Message: fmt.Sprintf("max %d items", limit)})
	}
	for i, item := range items {
		if strings.TrimSpace(item) == "" {
			errs = append(errs, domain.FieldError{Field: fmt.Sprintf("%s[%d]", field, i), Message: "required"})
		}
	}
	return errs
}

// cleanList trims items, drops blanks and collapses duplicates.
func cleanList(items []string) []string {
	out := make([]string, 0, len(items))
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		if _, dup := seen[item]; dup {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}
