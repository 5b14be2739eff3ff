package storage

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/dedededepepi/koala/internal/constants"
	"github.com/dedededepepi/koala/internal/logger"
	"github.com/dedededepepi/koala/internal/models"
)

// TriggerStore persists the full trigger collection as one serialized array
// under a single key. Every mutation is a read-modify-write of the whole
// collection; the internal mutex serializes those cycles so overlapping
// callers cannot clobber each other's writes.
//
// Reads degrade: a missing or corrupt blob yields an empty collection (the
// failure is logged). Writes surface their errors.
type TriggerStore struct {
	backend Backend
	mu      sync.Mutex
}

func NewTriggerStore(backend Backend) *TriggerStore {
	return &TriggerStore{backend: backend}
}

func (s *TriggerStore) loadLocked() []models.Trigger {
	data, ok, err := s.backend.Get(constants.TriggersKey)
	if err != nil {
		logger.Error("Failed to load triggers", "error", err)
		return []models.Trigger{}
	}
	if !ok {
		return []models.Trigger{}
	}

	var triggers []models.Trigger
	if err := json.Unmarshal(data, &triggers); err != nil {
		logger.Error("Failed to parse stored triggers", "error", err)
		return []models.Trigger{}
	}
	return triggers
}

func (s *TriggerStore) saveLocked(triggers []models.Trigger) error {
	data, err := json.Marshal(triggers)
	if err != nil {
		return fmt.Errorf("failed to serialize triggers: %w", err)
	}
	if err := s.backend.Set(constants.TriggersKey, data); err != nil {
		return fmt.Errorf("failed to save triggers: %w", err)
	}
	return nil
}

// GetAll returns every stored trigger in insertion order.
func (s *TriggerStore) GetAll() []models.Trigger {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked()
}

// Add appends a trigger to the collection.
func (s *TriggerStore) Add(trigger models.Trigger) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	triggers := s.loadLocked()
	triggers = append(triggers, trigger)
	return s.saveLocked(triggers)
}

// GetByDate returns the triggers whose local calendar date matches the given
// YYYY-MM-DD string. Full scan, no index.
func (s *TriggerStore) GetByDate(date string) []models.Trigger {
	all := s.GetAll()
	matched := make([]models.Trigger, 0, len(all))
	for _, t := range all {
		if t.Day() == date {
			matched = append(matched, t)
		}
	}
	return matched
}

// Update merges the patch onto the first trigger with a matching id and
// rewrites the collection. Unknown ids are a no-op.
func (s *TriggerStore) Update(id string, patch models.TriggerPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	triggers := s.loadLocked()
	for i, t := range triggers {
		if t.ID == id {
			triggers[i] = t.Apply(patch)
			return s.saveLocked(triggers)
		}
	}
	return nil
}

// Delete removes the trigger with the given id. Unknown ids are a no-op.
func (s *TriggerStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	triggers := s.loadLocked()
	kept := triggers[:0]
	for _, t := range triggers {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	if len(kept) == len(triggers) {
		return nil
	}
	return s.saveLocked(kept)
}

// ReplaceAll overwrites the entire collection. Used by backup import.
func (s *TriggerStore) ReplaceAll(triggers []models.Trigger) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveLocked(triggers)
}

// Clear removes the trigger collection entirely. Settings and achievements
// are independent keys and are left untouched.
func (s *TriggerStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.backend.Remove(constants.TriggersKey); err != nil {
		return fmt.Errorf("failed to clear triggers: %w", err)
	}
	return nil
}
