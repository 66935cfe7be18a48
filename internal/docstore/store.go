// Package docstore is a small document store: whole JSON documents addressed by
// (collection, key), read and written as a unit, plus equality-filtered queries.
package docstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
)

var (
	ErrNotFound     = errors.New("document not found")
	ErrInvalidField = errors.New("invalid field name")
)

var fieldNameRegex = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*$`)

type Document struct {
	Key  string
	Data json.RawMessage
}

// DataTo decodes the document body into v.
func (d Document) DataTo(v any) error {
	return json.Unmarshal(d.Data, v)
}

// Filter matches documents whose top-level Field equals Value.
type Filter struct {
	Field string
	Value any
}

func Where(field string, value any) Filter {
	return Filter{Field: field, Value: value}
}

type OrderBy struct {
	Field string
	Desc  bool
}

type Store interface {
	// GetDocument returns ErrNotFound when the key does not exist.
	GetDocument(ctx context.Context, collection, key string) (Document, error)
	// SetDocument overwrites the whole document.
	SetDocument(ctx context.Context, collection, key string, value any) error
	// UpdateDocument merges top-level fields into an existing document.
	UpdateDocument(ctx context.Context, collection, key string, fields map[string]any) error
	// QueryCollection returns documents matching all filters. Without orderBy the
	// result is ordered by key.
	QueryCollection(ctx context.Context, collection string, filters []Filter, orderBy *OrderBy) ([]Document, error)
}

func validateQuery(filters []Filter, orderBy *OrderBy) error {
	for _, f := range filters {
		if !fieldNameRegex.MatchString(f.Field) {
			return fmt.Errorf("%w: %q", ErrInvalidField, f.Field)
		}
	}
	if orderBy != nil && !fieldNameRegex.MatchString(orderBy.Field) {
		return fmt.Errorf("%w: %q", ErrInvalidField, orderBy.Field)
	}
	return nil
}

func validateFields(fields map[string]any) error {
	for name := range fields {
		if !fieldNameRegex.MatchString(name) {
			return fmt.Errorf("%w: %q", ErrInvalidField, name)
		}
	}
	return nil
}
