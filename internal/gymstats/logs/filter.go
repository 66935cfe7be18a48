package logs

import (
	"github.com/tutostrucoscode/GymMetrics/internal/gymstats/routines"
)

// FilterAll selects rows of every scheduled day.
const FilterAll = "all"

// DefaultFilter is the day the logs view starts on: the first training day of the
// routine, or FilterAll when it has none.
func DefaultFilter(routine routines.Routine) string {
	if len(routine.TrainingDays) == 0 {
		return FilterAll
	}
	return routine.TrainingDays[0]
}

// Filter keeps the rows scheduled on day. FilterAll returns rows unchanged.
func Filter(rows []LogRow, day string) []LogRow {
	if day == FilterAll {
		return rows
	}
	filtered := make([]LogRow, 0, len(rows))
	for _, row := range rows {
		if row.ScheduledDay == day {
			filtered = append(filtered, row)
		}
	}
	return filtered
}
