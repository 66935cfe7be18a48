// Package editor holds the in-progress set list of one exercise while it is being logged.
package editor

import (
	"context"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/tutostrucoscode/GymMetrics/internal/gymstats"
)

type Field string

const (
	FieldReps   Field = "reps"
	FieldWeight Field = "weight"
)

func ParseField(s string) (Field, error) {
	switch Field(s) {
	case FieldReps, FieldWeight:
		return Field(s), nil
	default:
		return "", fmt.Errorf("unknown set field: %q", s)
	}
}

type Trend string

const (
	TrendNone      Trend = "none"
	TrendIncreased Trend = "increased"
	TrendDecreased Trend = "decreased"
	TrendUnchanged Trend = "unchanged"
)

//go:generate mockgen -source=$GOFILE -destination=editor_mocks_test.go -package=editor_test

type draftStore interface {
	Load(ctx context.Context, routineID, exerciseID string, defaultSetCount int) ([]gymstats.SetEntry, error)
	Save(ctx context.Context, routineID, exerciseID string, entries []gymstats.SetEntry) error
	Clear(ctx context.Context, routineID, exerciseID string) error
}

// Editor is the mutable set list of one (routine, exercise) pair. Every change is
// written through to the draft store. It always holds at least one entry.
// An Editor is not safe for concurrent use.
type Editor struct {
	routineID  string
	exerciseID string
	drafts     draftStore
	entries    []gymstats.SetEntry
}

// Open loads the current draft, or starts one with defaultSetCount empty sets
// (at least one). Nothing is written until the first change.
func Open(ctx context.Context, drafts draftStore, routineID, exerciseID string, defaultSetCount int) (*Editor, error) {
	if defaultSetCount < 1 {
		defaultSetCount = 1
	}

	entries, err := drafts.Load(ctx, routineID, exerciseID, defaultSetCount)
	if err != nil {
		return nil, fmt.Errorf("open editor: %w", err)
	}
	if len(entries) == 0 {
		entries = gymstats.EmptySets(defaultSetCount)
	}

	return &Editor{
		routineID:  routineID,
		exerciseID: exerciseID,
		drafts:     drafts,
		entries:    entries,
	}, nil
}

func (e *Editor) RoutineID() string {
	return e.routineID
}

func (e *Editor) ExerciseID() string {
	return e.exerciseID
}

func (e *Editor) Len() int {
	return len(e.entries)
}

// Entries returns a copy of the current set list.
func (e *Editor) Entries() []gymstats.SetEntry {
	return slices.Clone(e.entries)
}

// UpdateField sets one field of the entry at index to the number parsed from raw.
// Input that is not a number becomes 0. Panics when index is out of range.
func (e *Editor) UpdateField(ctx context.Context, index int, field Field, raw string) error {
	e.mustBeInRange(index)

	value := ParseNumber(raw)
	switch field {
	case FieldReps:
		e.entries[index].Reps = toReps(value)
	case FieldWeight:
		e.entries[index].Weight = value
	default:
		panic(fmt.Sprintf("editor: unknown field %q", field))
	}

	return e.save(ctx)
}

// AddEntry appends an empty set.
func (e *Editor) AddEntry(ctx context.Context) error {
	e.entries = append(e.entries, gymstats.SetEntry{})
	return e.save(ctx)
}

// RemoveEntry drops the entry at index unless it is the only one left, and reports
// whether anything was removed. Panics when index is out of range.
func (e *Editor) RemoveEntry(ctx context.Context, index int) (bool, error) {
	e.mustBeInRange(index)

	if len(e.entries) <= 1 {
		return false, nil
	}

	e.entries = slices.Delete(e.entries, index, index+1)
	if err := e.save(ctx); err != nil {
		return true, err
	}
	return true, nil
}

// WeightTrend compares the weight at index with the previous set.
func (e *Editor) WeightTrend(index int) Trend {
	e.mustBeInRange(index)

	if index == 0 {
		return TrendNone
	}

	current, previous := e.entries[index].Weight, e.entries[index-1].Weight
	switch {
	case current > previous:
		return TrendIncreased
	case current < previous:
		return TrendDecreased
	default:
		return TrendUnchanged
	}
}

// Trends returns WeightTrend for every entry.
func (e *Editor) Trends() []Trend {
	trends := make([]Trend, len(e.entries))
	for i := range e.entries {
		trends[i] = e.WeightTrend(i)
	}
	return trends
}

func (e *Editor) mustBeInRange(index int) {
	if index < 0 || index >= len(e.entries) {
		panic(fmt.Sprintf("editor: set index %d out of range [0, %d)", index, len(e.entries)))
	}
}

func (e *Editor) save(ctx context.Context) error {
	if err := e.drafts.Save(ctx, e.routineID, e.exerciseID, e.entries); err != nil {
		return fmt.Errorf("save draft %s/%s: %w", e.routineID, e.exerciseID, err)
	}
	return nil
}

// ParseNumber reads form input as a non-negative number. Empty, malformed, negative
// and non-finite input all yield 0.
func ParseNumber(raw string) float64 {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) || value <= 0 {
		return 0
	}
	return value
}

func toReps(value float64) int {
	if value > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(value)
}
