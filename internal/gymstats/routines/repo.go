package routines

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tutostrucoscode/GymMetrics/internal/docstore"
	"github.com/tutostrucoscode/GymMetrics/internal/gymstats"
	"github.com/tutostrucoscode/GymMetrics/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

type Repo struct {
	store docstore.Store
}

func NewRepo(store docstore.Store) *Repo {
	return &Repo{
		store: store,
	}
}

func (r *Repo) Get(ctx context.Context, routineID string) (_ Routine, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.routines.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	doc, err := r.store.GetDocument(ctx, Collection, routineID)
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return Routine{}, ErrRoutineNotFound
		}
		return Routine{}, fmt.Errorf("%w: get routine %s: %w", gymstats.ErrBackendUnavailable, routineID, err)
	}

	return decodeRoutine(doc)
}

// ListForUser returns the visible routines of userID, newest first.
func (r *Repo) ListForUser(ctx context.Context, userID string) (_ []Routine, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.routines.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	docs, err := r.store.QueryCollection(
		ctx,
		Collection,
		[]docstore.Filter{
			docstore.Where("userId", userID),
			docstore.Where("isHidden", false),
		},
		&docstore.OrderBy{Field: "startDate", Desc: true},
	)
	if err != nil {
		return nil, fmt.Errorf("%w: list routines: %w", gymstats.ErrBackendUnavailable, err)
	}
	span.SetAttributes(attribute.Int("routines", len(docs)))

	routines := make([]Routine, 0, len(docs))
	for _, doc := range docs {
		routine, err := decodeRoutine(doc)
		if err != nil {
			return nil, err
		}
		routines = append(routines, routine)
	}
	return routines, nil
}

// Put stores the whole routine. Dates are kept in UTC at second precision so the
// stored strings sort chronologically.
func (r *Repo) Put(ctx context.Context, routine Routine) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.routines.put")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	routine.StartDate = storedTime(routine.StartDate)
	routine.CreatedAt = storedTime(routine.CreatedAt)
	if routine.EndDate != nil {
		endDate := storedTime(*routine.EndDate)
		routine.EndDate = &endDate
	}

	if err := r.store.SetDocument(ctx, Collection, routine.ID, routine); err != nil {
		return fmt.Errorf("%w: put routine %s: %w", gymstats.ErrBackendUnavailable, routine.ID, err)
	}
	return nil
}

// Close ends the routine, touching only the closing fields.
func (r *Repo) Close(ctx context.Context, routineID string, endDate time.Time, endWeight float64, duration int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.routines.close")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := r.store.UpdateDocument(ctx, Collection, routineID, map[string]any{
		"endDate":   storedTime(endDate),
		"endWeight": endWeight,
		"duration":  duration,
	}); err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return ErrRoutineNotFound
		}
		return fmt.Errorf("%w: close routine %s: %w", gymstats.ErrBackendUnavailable, routineID, err)
	}
	return nil
}

func (r *Repo) Catalog(ctx context.Context) (_ []CatalogExercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	docs, err := r.store.QueryCollection(ctx, CatalogCollection, nil, &docstore.OrderBy{Field: "name"})
	if err != nil {
		return nil, fmt.Errorf("%w: list catalog: %w", gymstats.ErrBackendUnavailable, err)
	}

	catalog := make([]CatalogExercise, 0, len(docs))
	for _, doc := range docs {
		var ex CatalogExercise
		if err := doc.DataTo(&ex); err != nil {
			return nil, fmt.Errorf("decode catalog exercise %s: %w", doc.Key, err)
		}
		ex.ID = doc.Key
		catalog = append(catalog, ex)
	}
	return catalog, nil
}

func (r *Repo) CatalogExercise(ctx context.Context, exerciseID string) (_ CatalogExercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	doc, err := r.store.GetDocument(ctx, CatalogCollection, exerciseID)
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return CatalogExercise{}, ErrExerciseNotFound
		}
		return CatalogExercise{}, fmt.Errorf("%w: get catalog exercise %s: %w", gymstats.ErrBackendUnavailable, exerciseID, err)
	}

	var ex CatalogExercise
	if err := doc.DataTo(&ex); err != nil {
		return CatalogExercise{}, fmt.Errorf("decode catalog exercise %s: %w", exerciseID, err)
	}
	ex.ID = doc.Key
	return ex, nil
}

func (r *Repo) PutCatalogExercise(ctx context.Context, ex CatalogExercise) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.put")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := r.store.SetDocument(ctx, CatalogCollection, ex.ID, ex); err != nil {
		return fmt.Errorf("%w: put catalog exercise %s: %w", gymstats.ErrBackendUnavailable, ex.ID, err)
	}
	return nil
}

// UpdateCatalogExercise overwrites the editable fields of an existing exercise.
func (r *Repo) UpdateCatalogExercise(ctx context.Context, ex CatalogExercise) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := r.store.UpdateDocument(ctx, CatalogCollection, ex.ID, map[string]any{
		"name":     ex.Name,
		"sets":     ex.Sets,
		"reps":     ex.Reps,
		"imageUrl": ex.ImageURL,
		"type":     ex.Type,
	}); err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return ErrExerciseNotFound
		}
		return fmt.Errorf("%w: update catalog exercise %s: %w", gymstats.ErrBackendUnavailable, ex.ID, err)
	}
	return nil
}

func decodeRoutine(doc docstore.Document) (Routine, error) {
	var routine Routine
	if err := doc.DataTo(&routine); err != nil {
		return Routine{}, fmt.Errorf("decode routine %s: %w", doc.Key, err)
	}
	routine.ID = doc.Key
	return routine, nil
}

func storedTime(t time.Time) time.Time {
	return t.UTC().Truncate(time.Second)
}
