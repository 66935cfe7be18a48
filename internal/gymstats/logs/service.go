package logs

import (
	"context"
	"errors"
	"fmt"

	"github.com/tutostrucoscode/GymMetrics/internal/gymstats"
	"github.com/tutostrucoscode/GymMetrics/internal/gymstats/editor"
	"github.com/tutostrucoscode/GymMetrics/internal/gymstats/history"
	"github.com/tutostrucoscode/GymMetrics/internal/gymstats/routines"
	"github.com/tutostrucoscode/GymMetrics/internal/telemetry/metrics"
	"github.com/tutostrucoscode/GymMetrics/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=logs_test

type routineSource interface {
	Get(ctx context.Context, userID, routineID string) (routines.Routine, error)
	CatalogNames(ctx context.Context) (map[string]string, error)
	DefaultSetCount(ctx context.Context, exerciseID string) (int, error)
}

type historyStore interface {
	Get(ctx context.Context, userID, routineID, exerciseID string) (history.Document, error)
	Put(ctx context.Context, userID, routineID, exerciseID string, doc history.Document) error
}

type draftStore interface {
	Load(ctx context.Context, routineID, exerciseID string, defaultSetCount int) ([]gymstats.SetEntry, error)
	Save(ctx context.Context, routineID, exerciseID string, entries []gymstats.SetEntry) error
	Clear(ctx context.Context, routineID, exerciseID string) error
}

type View struct {
	Day                  string              `json:"day"`
	Rows                 []LogRow            `json:"rows"`
	MaxWeightForExercise map[string]*float64 `json:"maxWeightForExercise"`
}

type Service struct {
	routines       routineSource
	history        historyStore
	drafts         draftStore
	aggregator     *Aggregator
	metricsManager *metrics.Manager
}

func NewService(
	routines routineSource,
	history historyStore,
	drafts draftStore,
	aggregator *Aggregator,
	metricsManager *metrics.Manager,
) *Service {
	return &Service{
		routines:       routines,
		history:        history,
		drafts:         drafts,
		aggregator:     aggregator,
		metricsManager: metricsManager,
	}
}

// Logs aggregates the routine of userID and keeps the rows scheduled on day. An empty
// day means DefaultFilter.
func (s *Service) Logs(ctx context.Context, userID, routineID, day string) (View, error) {
	routine, err := s.routines.Get(ctx, userID, routineID)
	if err != nil {
		return View{}, err
	}
	if day == "" {
		day = DefaultFilter(routine)
	}

	names, err := s.routines.CatalogNames(ctx)
	if err != nil {
		return View{}, err
	}

	aggregation, err := s.aggregator.Aggregate(ctx, routine, names)
	if err != nil {
		return View{}, err
	}

	return View{
		Day:                  day,
		Rows:                 Filter(aggregation.Rows, day),
		MaxWeightForExercise: aggregation.MaxWeightForExercise,
	}, nil
}

// Delete removes the session event id points at. The date key goes with its last
// event. A target that no longer exists is reported as gymstats.ErrStaleDeleteTarget.
func (s *Service) Delete(ctx context.Context, userID, routineID string, id LogID) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "logs.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
		s.countDelete(err)
	}()
	span.SetAttributes(
		attribute.String("routine", routineID),
		attribute.String("exercise", id.ExerciseID),
	)

	routine, err := s.routines.Get(ctx, userID, routineID)
	if err != nil {
		return err
	}

	doc, err := s.history.Get(ctx, routine.UserID, routine.ID, id.ExerciseID)
	if err != nil {
		if errors.Is(err, history.ErrDocumentNotFound) {
			return fmt.Errorf("delete %s: %w", id, gymstats.ErrStaleDeleteTarget)
		}
		return fmt.Errorf("delete %s: %w", id, err)
	}

	if err := doc.RemoveEvent(id.Date, id.Timestamp); err != nil {
		return fmt.Errorf("delete %s: %w", id, err)
	}

	if err := s.history.Put(ctx, routine.UserID, routine.ID, id.ExerciseID, doc); err != nil {
		return fmt.Errorf("delete %s: %w", id, err)
	}

	log.Debugf("logs: deleted [%s] of routine [%s]", id, routineID)
	return nil
}

// Edit reopens the set editor for the exercise of id. The editor shows the current
// draft (or fresh defaults), not the sets stored in the event.
func (s *Service) Edit(ctx context.Context, userID, routineID string, id LogID) (*editor.Editor, error) {
	routine, err := s.routines.Get(ctx, userID, routineID)
	if err != nil {
		return nil, err
	}
	return editor.OpenEditor(ctx, s.drafts, s.routines, routine.ID, id.ExerciseID)
}

func (s *Service) countDelete(err error) {
	if s.metricsManager == nil {
		return
	}
	result := metrics.ResultOK
	switch {
	case err == nil:
	case errors.Is(err, gymstats.ErrStaleDeleteTarget):
		result = metrics.ResultStale
	default:
		result = metrics.ResultFailed
	}
	s.metricsManager.CounterLogDeletes.WithLabelValues(result).Inc()
}
