package routines

import (
	"context"
	"fmt"
	"time"

	"github.com/tutostrucoscode/GymMetrics/internal/gymstats"
	"github.com/tutostrucoscode/GymMetrics/internal/telemetry/tracing"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

type Service struct {
	repo *Repo
	// NowFunc and NewIDFunc can be replaced in tests
	NowFunc   func() time.Time
	NewIDFunc func() string
}

func NewService(repo *Repo) *Service {
	return &Service{
		repo:      repo,
		NowFunc:   time.Now,
		NewIDFunc: uuid.NewString,
	}
}

// Get returns the routine when it belongs to userID. Routines of other users are
// reported as not found.
func (s *Service) Get(ctx context.Context, userID, routineID string) (Routine, error) {
	if userID == "" {
		return Routine{}, gymstats.ErrUserIdentityMissing
	}

	routine, err := s.repo.Get(ctx, routineID)
	if err != nil {
		return Routine{}, err
	}
	if routine.UserID != userID {
		log.Debugf("routines: user [%s] asked for routine [%s] of another user", userID, routineID)
		return Routine{}, ErrRoutineNotFound
	}
	return routine, nil
}

// List returns the visible routines of userID, newest first, with Duration filled
// in for routines still open.
func (s *Service) List(ctx context.Context, userID string) ([]Routine, error) {
	if userID == "" {
		return nil, gymstats.ErrUserIdentityMissing
	}

	routines, err := s.repo.ListForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := s.NowFunc()
	for i := range routines {
		if routines[i].IsOpen() {
			routines[i].Duration = routines[i].DurationDays(now)
		}
	}
	return routines, nil
}

// Create stores a new routine for userID.
func (s *Service) Create(ctx context.Context, userID string, routine Routine) (_ Routine, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.routines.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if userID == "" {
		return Routine{}, gymstats.ErrUserIdentityMissing
	}
	if err := routine.Validate(); err != nil {
		return Routine{}, err
	}

	now := s.NowFunc()
	routine.ID = s.NewIDFunc()
	routine.UserID = userID
	routine.IsHidden = false
	routine.CreatedAt = now
	routine.EndDate = nil
	routine.EndWeight = nil
	routine.Duration = 0
	if routine.StartDate.IsZero() {
		routine.StartDate = now
	}

	if err := s.repo.Put(ctx, routine); err != nil {
		return Routine{}, err
	}

	log.Debugf("routines: created [%s] for user [%s]", routine.ID, userID)
	return s.repo.Get(ctx, routine.ID)
}

// StartNew closes the user's active routine at endWeight and creates routine,
// starting from that weight. Without an active routine it is a plain Create.
func (s *Service) StartNew(ctx context.Context, userID string, endWeight float64, routine Routine) (_ Routine, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.routines.start_new")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if userID == "" {
		return Routine{}, gymstats.ErrUserIdentityMissing
	}
	if endWeight < 0 {
		return Routine{}, fmt.Errorf("%w: negative end weight", gymstats.ErrInvalidInput)
	}
	if err := routine.Validate(); err != nil {
		return Routine{}, err
	}

	existing, err := s.repo.ListForUser(ctx, userID)
	if err != nil {
		return Routine{}, err
	}

	now := s.NowFunc()
	if len(existing) > 0 && existing[0].IsOpen() {
		active := existing[0]
		duration := DurationDays(active.StartDate, now)
		if err := s.repo.Close(ctx, active.ID, now, endWeight, duration); err != nil {
			return Routine{}, fmt.Errorf("close routine %s: %w", active.ID, err)
		}
		log.Debugf("routines: closed [%s] after %d days", active.ID, duration)
	}

	routine.StartWeight = endWeight
	routine.StartDate = now
	return s.Create(ctx, userID, routine)
}

// DefaultSetCount is the catalog set count of an exercise, used to seed new drafts.
func (s *Service) DefaultSetCount(ctx context.Context, exerciseID string) (int, error) {
	ex, err := s.repo.CatalogExercise(ctx, exerciseID)
	if err != nil {
		return 0, err
	}
	return max(ex.Sets, 1), nil
}

func (s *Service) Catalog(ctx context.Context) ([]CatalogExercise, error) {
	return s.repo.Catalog(ctx)
}

// CatalogNames maps exercise ids to display names.
func (s *Service) CatalogNames(ctx context.Context) (map[string]string, error) {
	catalog, err := s.repo.Catalog(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(catalog))
	for _, ex := range catalog {
		names[ex.ID] = ex.Name
	}
	return names, nil
}

// AddCatalogExercise stores ex under a new id unless it already carries one.
func (s *Service) AddCatalogExercise(ctx context.Context, ex CatalogExercise) (CatalogExercise, error) {
	if err := ex.Validate(); err != nil {
		return CatalogExercise{}, err
	}
	if ex.ID == "" {
		ex.ID = s.NewIDFunc()
	}
	if err := s.repo.PutCatalogExercise(ctx, ex); err != nil {
		return CatalogExercise{}, err
	}
	return ex, nil
}

func (s *Service) UpdateCatalogExercise(ctx context.Context, ex CatalogExercise) (CatalogExercise, error) {
	if ex.ID == "" {
		return CatalogExercise{}, fmt.Errorf("%w: exercise id empty", gymstats.ErrInvalidInput)
	}
	if err := ex.Validate(); err != nil {
		return CatalogExercise{}, err
	}
	if err := s.repo.UpdateCatalogExercise(ctx, ex); err != nil {
		return CatalogExercise{}, err
	}
	return s.repo.CatalogExercise(ctx, ex.ID)
}
