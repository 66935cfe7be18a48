// Package routines holds training plans and the shared exercise catalog.
package routines

import (
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/tutostrucoscode/GymMetrics/internal/gymstats"
)

const (
	Collection        = "routines"
	CatalogCollection = "exercisesList"
)

var (
	ErrRoutineNotFound  = fmt.Errorf("routine %w", gymstats.ErrNotFound)
	ErrExerciseNotFound = fmt.Errorf("exercise %w", gymstats.ErrNotFound)
)

// TrainingDays are the weekday labels a plan can be scheduled on.
var TrainingDays = []string{
	"Lunes",
	"Martes",
	"Miércoles",
	"Jueves",
	"Viernes",
	"Sábado",
	"Domingo",
}

type PlannedExercise struct {
	ExerciseID string `json:"exerciseId"`
}

// DayPlan lists the exercises scheduled for one training day label.
type DayPlan struct {
	Day       string            `json:"day"`
	Exercises []PlannedExercise `json:"exercises"`
}

type Routine struct {
	ID           string     `json:"-"`
	UserID       string     `json:"userId"`
	StartDate    time.Time  `json:"startDate"`
	EndDate      *time.Time `json:"endDate"`
	Duration     int        `json:"duration"`
	StartWeight  float64    `json:"startWeight"`
	EndWeight    *float64   `json:"endWeight"`
	Waist        float64    `json:"waist"`
	Thigh        float64    `json:"thigh"`
	Arm          float64    `json:"arm"`
	Hip          float64    `json:"hip"`
	Height       float64    `json:"height"`
	DaysPerWeek  int        `json:"daysPerWeek"`
	TrainingDays []string   `json:"trainingDays"`
	Plan         []DayPlan  `json:"routines"`
	IsHidden     bool       `json:"isHidden"`
	CreatedAt    time.Time  `json:"createdAt"`
}

// IsOpen reports whether the routine has not been closed yet.
func (r Routine) IsOpen() bool {
	return r.EndDate == nil
}

// Plans reports whether exerciseID is scheduled on any day of the routine.
func (r Routine) Plans(exerciseID string) bool {
	for _, day := range r.Plan {
		for _, ex := range day.Exercises {
			if ex.ExerciseID == exerciseID {
				return true
			}
		}
	}
	return false
}

// DurationDays is the routine length in whole days, counting a started day as a full
// one. Open routines are measured up to now.
func (r Routine) DurationDays(now time.Time) int {
	end := now
	if r.EndDate != nil {
		end = *r.EndDate
	}
	return DurationDays(r.StartDate, end)
}

func DurationDays(start, end time.Time) int {
	diff := end.Sub(start)
	if diff < 0 {
		diff = -diff
	}
	return int(math.Ceil(diff.Hours() / 24))
}

// Validate checks the plan against the declared training days.
func (r Routine) Validate() error {
	if r.DaysPerWeek < 1 || r.DaysPerWeek > len(TrainingDays) {
		return fmt.Errorf("%w: days per week must be between 1 and %d", gymstats.ErrInvalidInput, len(TrainingDays))
	}
	if len(r.TrainingDays) > r.DaysPerWeek {
		return fmt.Errorf("%w: %d training days for %d days per week", gymstats.ErrInvalidInput, len(r.TrainingDays), r.DaysPerWeek)
	}

	seen := map[string]bool{}
	for _, day := range r.TrainingDays {
		if !slices.Contains(TrainingDays, day) {
			return fmt.Errorf("%w: unknown training day %q", gymstats.ErrInvalidInput, day)
		}
		if seen[day] {
			return fmt.Errorf("%w: training day %q listed twice", gymstats.ErrInvalidInput, day)
		}
		seen[day] = true
	}

	for _, plan := range r.Plan {
		if !seen[plan.Day] {
			return fmt.Errorf("%w: plan day %q is not a training day", gymstats.ErrInvalidInput, plan.Day)
		}
		for _, ex := range plan.Exercises {
			if ex.ExerciseID == "" {
				return fmt.Errorf("%w: plan day %q has an exercise without id", gymstats.ErrInvalidInput, plan.Day)
			}
		}
	}

	return nil
}

// CatalogExercise is an entry of the exercise catalog shared by all users.
type CatalogExercise struct {
	ID       string `json:"-" yaml:"id"`
	Name     string `json:"name" yaml:"name"`
	Sets     int    `json:"sets" yaml:"sets"`
	Reps     int    `json:"reps" yaml:"reps"`
	ImageURL string `json:"imageUrl" yaml:"imageUrl"`
	Type     string `json:"type" yaml:"type"`
}

func (ex CatalogExercise) Validate() error {
	if ex.Name == "" {
		return fmt.Errorf("%w: exercise name empty", gymstats.ErrInvalidInput)
	}
	if ex.Sets < 0 || ex.Reps < 0 {
		return fmt.Errorf("%w: negative sets or reps", gymstats.ErrInvalidInput)
	}
	return nil
}
