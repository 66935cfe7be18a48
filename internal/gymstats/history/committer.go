package history

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/tutostrucoscode/GymMetrics/internal/gymstats"
	"github.com/tutostrucoscode/GymMetrics/internal/telemetry/metrics"
	"github.com/tutostrucoscode/GymMetrics/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

var ErrEmptySession = fmt.Errorf("%w: a session needs at least one set", gymstats.ErrInvalidInput)

//go:generate mockgen -source=$GOFILE -destination=committer_mocks_test.go -package=history_test

type documentRepo interface {
	Get(ctx context.Context, userID, routineID, exerciseID string) (Document, error)
	Put(ctx context.Context, userID, routineID, exerciseID string, doc Document) error
}

type draftClearer interface {
	Clear(ctx context.Context, routineID, exerciseID string) error
}

type Committed struct {
	Date  string
	Event SessionEvent
}

// Committer appends finished set lists to history documents.
//
// Each commit reads the document, appends in memory and writes the whole document
// back. Two commits racing on the same (user, routine, exercise) can both read the
// old version; the later write then silently drops the earlier append.
type Committer struct {
	repo           documentRepo
	drafts         draftClearer
	metricsManager *metrics.Manager
	location       *time.Location
	// NowFunc can be replaced in tests
	NowFunc func() time.Time
}

// NewCommitter returns a Committer that files sessions under the calendar date of
// location (time.Local when nil).
func NewCommitter(
	repo documentRepo,
	drafts draftClearer,
	metricsManager *metrics.Manager,
	location *time.Location,
) *Committer {
	if location == nil {
		location = time.Local
	}
	return &Committer{
		repo:           repo,
		drafts:         drafts,
		metricsManager: metricsManager,
		location:       location,
		NowFunc:        time.Now,
	}
}

// Commit records entries as a new session of today and clears the draft. Zero-weight
// sets are stored as given. On failure the draft is left untouched.
func (c *Committer) Commit(
	ctx context.Context,
	userID, routineID, exerciseID string,
	entries []gymstats.SetEntry,
) (_ Committed, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "history.commit")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("routine", routineID),
		attribute.String("exercise", exerciseID),
		attribute.Int("sets", len(entries)),
	)

	if userID == "" {
		c.countCommit(metrics.ResultUnknownUser)
		return Committed{}, gymstats.ErrUserIdentityMissing
	}
	if len(entries) == 0 {
		c.countCommit(metrics.ResultFailed)
		return Committed{}, ErrEmptySession
	}

	now := c.NowFunc()
	date := now.In(c.location).Format(time.DateOnly)
	event := SessionEvent{
		Timestamp: FormatTimestamp(now),
		Sets:      slices.Clone(entries),
	}

	history, err := c.repo.Get(ctx, userID, routineID, exerciseID)
	if err != nil {
		if !errors.Is(err, ErrDocumentNotFound) {
			c.countCommit(metrics.ResultFailed)
			return Committed{}, fmt.Errorf("commit %s/%s: %w", routineID, exerciseID, err)
		}
		history = Document{}
	}

	history.Append(date, event)

	if err := c.repo.Put(ctx, userID, routineID, exerciseID, history); err != nil {
		c.countCommit(metrics.ResultFailed)
		return Committed{}, fmt.Errorf("commit %s/%s: %w", routineID, exerciseID, err)
	}

	// the session is stored; a draft that fails to clear only resurfaces in the editor
	if err := c.drafts.Clear(ctx, routineID, exerciseID); err != nil {
		log.Errorf("commit %s/%s: clear draft: %s", routineID, exerciseID, err)
	}

	c.countCommit(metrics.ResultOK)
	return Committed{Date: date, Event: event}, nil
}

func (c *Committer) countCommit(result string) {
	if c.metricsManager != nil {
		c.metricsManager.CounterCommits.WithLabelValues(result).Inc()
	}
}
