// Package logs turns stored session history into log rows and edits that history.
package logs

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/tutostrucoscode/GymMetrics/internal/gymstats"
	"github.com/tutostrucoscode/GymMetrics/internal/gymstats/history"
	"github.com/tutostrucoscode/GymMetrics/internal/gymstats/routines"
	"github.com/tutostrucoscode/GymMetrics/internal/telemetry/metrics"
	"github.com/tutostrucoscode/GymMetrics/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"
)

const (
	UnknownExerciseName = "Unknown"
	defaultFetchLimit   = 8
)

//go:generate mockgen -source=$GOFILE -destination=aggregator_mocks_test.go -package=logs_test

type historyGetter interface {
	Get(ctx context.Context, userID, routineID, exerciseID string) (history.Document, error)
}

// LogRow summarizes one recorded session event.
type LogRow struct {
	ID            string  `json:"id"`
	ExerciseID    string  `json:"exerciseId"`
	Name          string  `json:"name"`
	ScheduledDay  string  `json:"scheduledDay"`
	PerformedDate string  `json:"performedDate"`
	PerformedDay  string  `json:"performedDay"`
	Sets          int     `json:"sets"`
	MaxWeight     float64 `json:"maxWeight"`
	MinWeight     float64 `json:"minWeight"`
}

type Aggregation struct {
	Rows []LogRow
	// MaxWeightForExercise holds the heaviest weight ever logged per planned
	// exercise, nil when none was.
	MaxWeightForExercise map[string]*float64
}

type Aggregator struct {
	history        historyGetter
	locale         string
	metricsManager *metrics.Manager
	fetchLimit     int
}

func NewAggregator(history historyGetter, locale string, metricsManager *metrics.Manager) *Aggregator {
	if !SupportedLocale(locale) {
		log.Warnf("logs: unsupported weekday locale [%s], using [%s]", locale, LocaleES)
		locale = LocaleES
	}
	return &Aggregator{
		history:        history,
		locale:         locale,
		metricsManager: metricsManager,
		fetchLimit:     defaultFetchLimit,
	}
}

// Aggregate builds the log rows of routine. Rows come in plan order: day, exercise,
// date key ascending, then stored event order. Events without a positive weight
// produce no row. exerciseNames resolves display names.
func (a *Aggregator) Aggregate(
	ctx context.Context,
	routine routines.Routine,
	exerciseNames map[string]string,
) (_ Aggregation, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "logs.aggregate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("routine", routine.ID))

	if a.metricsManager != nil {
		defer func(begin time.Time) {
			a.metricsManager.HistogramAggregationDuration.Observe(time.Since(begin).Seconds())
		}(time.Now())
	}

	docs, err := a.fetchDocuments(ctx, routine)
	if err != nil {
		return Aggregation{}, err
	}

	aggregation := Aggregation{
		Rows:                 []LogRow{},
		MaxWeightForExercise: map[string]*float64{},
	}
	for _, day := range routine.Plan {
		for _, planned := range day.Exercises {
			exerciseID := planned.ExerciseID
			name, ok := exerciseNames[exerciseID]
			if !ok || name == "" {
				name = UnknownExerciseName
			}

			rows, maxWeight := a.exerciseRows(exerciseID, name, day.Day, docs[exerciseID])
			aggregation.Rows = append(aggregation.Rows, rows...)
			aggregation.MaxWeightForExercise[exerciseID] = maxWeight
		}
	}

	span.SetAttributes(attribute.Int("rows", len(aggregation.Rows)))
	return aggregation, nil
}

// fetchDocuments loads the history of every planned exercise once, concurrently.
// Exercises without history map to an empty document.
func (a *Aggregator) fetchDocuments(ctx context.Context, routine routines.Routine) (map[string]history.Document, error) {
	var exerciseIDs []string
	for _, day := range routine.Plan {
		for _, planned := range day.Exercises {
			if !slices.Contains(exerciseIDs, planned.ExerciseID) {
				exerciseIDs = append(exerciseIDs, planned.ExerciseID)
			}
		}
	}

	fetched := make([]history.Document, len(exerciseIDs))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(a.fetchLimit)
	for i, exerciseID := range exerciseIDs {
		i, exerciseID := i, exerciseID
		g.Go(func() error {
			doc, err := a.history.Get(gCtx, routine.UserID, routine.ID, exerciseID)
			if err != nil {
				if errors.Is(err, history.ErrDocumentNotFound) {
					return nil
				}
				return fmt.Errorf("history of %s: %w", exerciseID, err)
			}
			fetched[i] = doc
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	docs := make(map[string]history.Document, len(exerciseIDs))
	for i, exerciseID := range exerciseIDs {
		docs[exerciseID] = fetched[i]
	}
	return docs, nil
}

func (a *Aggregator) exerciseRows(exerciseID, name, scheduledDay string, doc history.Document) ([]LogRow, *float64) {
	var (
		rows      []LogRow
		maxWeight *float64
	)
	for _, dateKey := range doc.Dates() {
		performedDate, midnight, err := NormalizeDate(dateKey)
		if err != nil {
			log.Warnf("logs: skipping history of [%s] under bad date key: %s", exerciseID, err)
			continue
		}
		performedDay := WeekdayName(midnight, a.locale)

		for _, event := range doc[dateKey] {
			weights := gymstats.PositiveWeights(event.Sets)
			if len(weights) == 0 {
				continue
			}

			eventMax, eventMin := slices.Max(weights), slices.Min(weights)
			if maxWeight == nil || eventMax > *maxWeight {
				maxWeight = &eventMax
			}

			rows = append(rows, LogRow{
				ID: LogID{
					ExerciseID: exerciseID,
					Date:       dateKey,
					Timestamp:  event.Timestamp,
				}.String(),
				ExerciseID:    exerciseID,
				Name:          name,
				ScheduledDay:  scheduledDay,
				PerformedDate: performedDate,
				PerformedDay:  performedDay,
				Sets:          len(event.Sets),
				MaxWeight:     eventMax,
				MinWeight:     eventMin,
			})
		}
	}
	return rows, maxWeight
}
