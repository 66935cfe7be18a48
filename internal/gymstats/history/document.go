// Package history owns the durable per-exercise log of recorded sessions.
package history

import (
	"fmt"
	"slices"
	"time"

	"github.com/tutostrucoscode/GymMetrics/internal/gymstats"
)

// Collection is the document store collection holding history documents.
const Collection = "exerciseData"

// TimestampLayout renders instants like JavaScript's Date.toISOString (UTC, milliseconds).
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

type SessionEvent struct {
	Timestamp string              `json:"timestamp"`
	Sets      []gymstats.SetEntry `json:"sets"`
}

// Document maps a calendar date (YYYY-MM-DD) to the sessions recorded on it. A date
// never maps to an empty list.
type Document map[string][]SessionEvent

// DocumentKey is the store key of the history of one exercise in one user's routine.
func DocumentKey(userID, routineID, exerciseID string) string {
	return userID + "_" + routineID + "_" + exerciseID
}

func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// Append adds event at the end of the date bucket.
func (d Document) Append(date string, event SessionEvent) {
	d[date] = append(d[date], event)
}

// RemoveEvent drops the events of the date recorded at exactly timestamp, and the date
// itself when nothing is left under it.
func (d Document) RemoveEvent(date, timestamp string) error {
	events, ok := d[date]
	if !ok {
		return fmt.Errorf("no sessions on %s: %w", date, gymstats.ErrStaleDeleteTarget)
	}

	remaining := slices.DeleteFunc(slices.Clone(events), func(e SessionEvent) bool {
		return e.Timestamp == timestamp
	})
	if len(remaining) == len(events) {
		return fmt.Errorf("no session at %s on %s: %w", timestamp, date, gymstats.ErrStaleDeleteTarget)
	}

	if len(remaining) == 0 {
		delete(d, date)
		return nil
	}
	d[date] = remaining
	return nil
}

// Dates returns the date keys in ascending order.
func (d Document) Dates() []string {
	dates := make([]string, 0, len(d))
	for date := range d {
		dates = append(dates, date)
	}
	slices.Sort(dates)
	return dates
}
