package history

import (
	"context"
	"errors"
	"fmt"

	"github.com/tutostrucoscode/GymMetrics/internal/docstore"
	"github.com/tutostrucoscode/GymMetrics/internal/gymstats"
	"github.com/tutostrucoscode/GymMetrics/internal/telemetry/tracing"
)

var ErrDocumentNotFound = fmt.Errorf("history document %w", gymstats.ErrNotFound)

type Repo struct {
	store docstore.Store
}

func NewRepo(store docstore.Store) *Repo {
	return &Repo{
		store: store,
	}
}

// Get returns ErrDocumentNotFound when nothing was ever recorded for the exercise.
func (r *Repo) Get(ctx context.Context, userID, routineID, exerciseID string) (_ Document, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.history.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	key := DocumentKey(userID, routineID, exerciseID)
	doc, err := r.store.GetDocument(ctx, Collection, key)
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return nil, ErrDocumentNotFound
		}
		return nil, fmt.Errorf("%w: get history %s: %w", gymstats.ErrBackendUnavailable, key, err)
	}

	var history Document
	if err := doc.DataTo(&history); err != nil {
		return nil, fmt.Errorf("decode history %s: %w", key, err)
	}
	if history == nil {
		history = Document{}
	}

	return history, nil
}

// Put overwrites the whole document.
func (r *Repo) Put(ctx context.Context, userID, routineID, exerciseID string, history Document) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.history.put")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	key := DocumentKey(userID, routineID, exerciseID)
	if err := r.store.SetDocument(ctx, Collection, key, history); err != nil {
		return fmt.Errorf("%w: put history %s: %w", gymstats.ErrBackendUnavailable, key, err)
	}
	return nil
}

// All returns every stored history document keyed by store key.
func (r *Repo) All(ctx context.Context) (_ map[string]Document, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.history.all")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	docs, err := r.store.QueryCollection(ctx, Collection, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: list history: %w", gymstats.ErrBackendUnavailable, err)
	}

	all := make(map[string]Document, len(docs))
	for _, doc := range docs {
		var history Document
		if err := doc.DataTo(&history); err != nil {
			return nil, fmt.Errorf("decode history %s: %w", doc.Key, err)
		}
		all[doc.Key] = history
	}
	return all, nil
}
