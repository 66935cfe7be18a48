// Package drafts keeps in-progress set lists until they are committed.
package drafts

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/tutostrucoscode/GymMetrics/internal/gymstats"
	"github.com/tutostrucoscode/GymMetrics/internal/telemetry/metrics"

	log "github.com/sirupsen/logrus"
)

const keyPrefix = "exerciseData_"

// Key is the cache key of the draft for an exercise within a routine.
func Key(routineID, exerciseID string) string {
	return keyPrefix + routineID + "_" + exerciseID
}

type Store struct {
	cache          LocalCache
	metricsManager *metrics.Manager
}

func NewStore(cache LocalCache, metricsManager *metrics.Manager) *Store {
	return &Store{
		cache:          cache,
		metricsManager: metricsManager,
	}
}

// Load returns the saved draft, or defaultSetCount zeroed entries when there is none.
// A stored value that does not decode to a non-empty set list counts as no draft.
func (s *Store) Load(ctx context.Context, routineID, exerciseID string, defaultSetCount int) ([]gymstats.SetEntry, error) {
	key := Key(routineID, exerciseID)
	raw, found, err := s.cache.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("load draft: %w", err)
	}
	if !found {
		return gymstats.EmptySets(defaultSetCount), nil
	}

	var entries []gymstats.SetEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		log.Debugf("drafts: ignoring corrupt draft [%s]: %s", key, err)
		return gymstats.EmptySets(defaultSetCount), nil
	}
	if len(entries) == 0 {
		log.Debugf("drafts: ignoring empty draft [%s]", key)
		return gymstats.EmptySets(defaultSetCount), nil
	}

	return entries, nil
}

// Save overwrites the stored draft.
func (s *Store) Save(ctx context.Context, routineID, exerciseID string, entries []gymstats.SetEntry) error {
	raw, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("marshal draft: %w", err)
	}

	if err := s.cache.Set(ctx, Key(routineID, exerciseID), string(raw)); err != nil {
		return fmt.Errorf("save draft: %w", err)
	}

	if s.metricsManager != nil {
		s.metricsManager.CounterDraftSaves.Inc()
	}
	return nil
}

// Clear removes the draft. Clearing a missing draft is not an error.
func (s *Store) Clear(ctx context.Context, routineID, exerciseID string) error {
	if err := s.cache.Remove(ctx, Key(routineID, exerciseID)); err != nil {
		return fmt.Errorf("clear draft: %w", err)
	}
	return nil
}
