package docstore

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"
	"slices"
	"strings"
	"sync"
)

var _ Store = (*MemoryStore)(nil)

// MemoryStore is a process-local Store, for tests and throwaway runs.
type MemoryStore struct {
	mutex       sync.RWMutex
	collections map[string]map[string][]byte

	// FailWith, when set, makes every call fail with the returned error (used to
	// simulate an unavailable backend in tests).
	FailWith func(op string) error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		collections: map[string]map[string][]byte{},
	}
}

func (s *MemoryStore) fail(op string) error {
	if s.FailWith == nil {
		return nil
	}
	return s.FailWith(op)
}

func (s *MemoryStore) GetDocument(_ context.Context, collection, key string) (Document, error) {
	if err := s.fail("get"); err != nil {
		return Document{}, err
	}

	s.mutex.RLock()
	defer s.mutex.RUnlock()

	body, ok := s.collections[collection][key]
	if !ok {
		return Document{}, ErrNotFound
	}
	return Document{Key: key, Data: slices.Clone(body)}, nil
}

func (s *MemoryStore) SetDocument(_ context.Context, collection, key string, value any) error {
	if err := s.fail("set"); err != nil {
		return err
	}

	body, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal document %s/%s: %w", collection, key, err)
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.collections[collection] == nil {
		s.collections[collection] = map[string][]byte{}
	}
	s.collections[collection][key] = body
	return nil
}

func (s *MemoryStore) UpdateDocument(_ context.Context, collection, key string, fields map[string]any) error {
	if err := s.fail("update"); err != nil {
		return err
	}
	if err := validateFields(fields); err != nil {
		return err
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	body, ok := s.collections[collection][key]
	if !ok {
		return ErrNotFound
	}

	var current map[string]any
	if err := json.Unmarshal(body, &current); err != nil {
		return fmt.Errorf("decode document %s/%s: %w", collection, key, err)
	}
	if current == nil {
		current = map[string]any{}
	}
	for name, value := range fields {
		current[name] = value
	}

	updated, err := json.Marshal(current)
	if err != nil {
		return fmt.Errorf("marshal document %s/%s: %w", collection, key, err)
	}
	s.collections[collection][key] = updated
	return nil
}

func (s *MemoryStore) QueryCollection(
	_ context.Context,
	collection string,
	filters []Filter,
	orderBy *OrderBy,
) ([]Document, error) {
	if err := s.fail("query"); err != nil {
		return nil, err
	}
	if err := validateQuery(filters, orderBy); err != nil {
		return nil, err
	}

	wanted := make([]any, len(filters))
	for i, f := range filters {
		normalized, err := normalize(f.Value)
		if err != nil {
			return nil, fmt.Errorf("normalize filter value for %s: %w", f.Field, err)
		}
		wanted[i] = normalized
	}

	s.mutex.RLock()
	defer s.mutex.RUnlock()

	type match struct {
		doc    Document
		fields map[string]any
	}
	var matches []match
	for key, body := range s.collections[collection] {
		var fields map[string]any
		if err := json.Unmarshal(body, &fields); err != nil {
			// not an object, so no field can match
			if len(filters) > 0 || orderBy != nil {
				continue
			}
		}

		ok := true
		for i, f := range filters {
			if !reflect.DeepEqual(fields[f.Field], wanted[i]) {
				ok = false
				break
			}
		}
		if ok {
			matches = append(matches, match{
				doc:    Document{Key: key, Data: slices.Clone(body)},
				fields: fields,
			})
		}
	}

	slices.SortFunc(matches, func(a, b match) int {
		return strings.Compare(a.doc.Key, b.doc.Key)
	})
	if orderBy != nil {
		slices.SortStableFunc(matches, func(a, b match) int {
			c := compareValues(a.fields[orderBy.Field], b.fields[orderBy.Field])
			if orderBy.Desc {
				return -c
			}
			return c
		})
	}

	docs := make([]Document, 0, len(matches))
	for _, m := range matches {
		docs = append(docs, m.doc)
	}
	return docs, nil
}

// normalize round-trips v through JSON so it compares equal to decoded document fields.
func normalize(v any) (any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// compareValues orders missing < bool < number < string; other kinds compare equal.
func compareValues(a, b any) int {
	rank := func(v any) int {
		switch v.(type) {
		case nil:
			return 0
		case bool:
			return 1
		case float64:
			return 2
		case string:
			return 3
		default:
			return 4
		}
	}
	if ra, rb := rank(a), rank(b); ra != rb {
		return ra - rb
	}

	switch av := a.(type) {
	case bool:
		bv := b.(bool)
		switch {
		case av == bv:
			return 0
		case !av:
			return -1
		default:
			return 1
		}
	case float64:
		bv := b.(float64)
		switch {
		case av < bv:
			return -1
		case av > bv:
			return 1
		default:
			return 0
		}
	case string:
		return strings.Compare(av, b.(string))
	}
	return 0
}
