package storage

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/dedededepepi/koala/internal/constants"
	"github.com/dedededepepi/koala/internal/logger"
	"github.com/dedededepepi/koala/internal/models"
)

// DefaultAchievements returns the fixed six-badge catalog, all unearned.
// Ids, targets, and display metadata are stable; they appear in exported
// backup documents.
func DefaultAchievements() []models.Achievement {
	return []models.Achievement{
		{
			ID:          constants.AchievementFirstResistance,
			Title:       "First Resistance",
			Description: "Resisted your first trigger",
			Icon:        "🌱",
			Target:      1,
		},
		{
			ID:          constants.AchievementPerfectDay,
			Title:       "Perfect Day",
			Description: "100% resistance rate for a day",
			Icon:        "⭐",
			Target:      1,
		},
		{
			ID:          constants.AchievementWeekWarrior,
			Title:       "Week Warrior",
			Description: "75%+ resistance rate for a week",
			Icon:        "💪",
			Target:      1,
		},
		{
			ID:          constants.AchievementConsistencyChampion,
			Title:       "Consistency Champion",
			Description: "3+ day resistance streak",
			Icon:        "🏆",
			Target:      3,
		},
		{
			ID:          constants.AchievementMilestone10,
			Title:       "10 Resistances",
			Description: "Resisted 10 compulsions total",
			Icon:        "🎯",
			Target:      10,
		},
		{
			ID:          constants.AchievementMilestone50,
			Title:       "50 Resistances",
			Description: "Resisted 50 compulsions total",
			Icon:        "🚀",
			Target:      50,
		},
	}
}

// AchievementStore maintains progress against the fixed badge catalog.
// Progress is derived from the trigger collection by full scan; there is no
// referential link between the two stores.
type AchievementStore struct {
	backend  Backend
	triggers *TriggerStore
	mu       sync.Mutex
}

func NewAchievementStore(backend Backend, triggers *TriggerStore) *AchievementStore {
	return &AchievementStore{backend: backend, triggers: triggers}
}

func (s *AchievementStore) loadLocked() []models.Achievement {
	data, ok, err := s.backend.Get(constants.AchievementsKey)
	if err != nil {
		logger.Error("Failed to load achievements", "error", err)
		return DefaultAchievements()
	}
	if !ok {
		return DefaultAchievements()
	}

	var achievements []models.Achievement
	if err := json.Unmarshal(data, &achievements); err != nil {
		logger.Error("Failed to parse stored achievements", "error", err)
		return DefaultAchievements()
	}
	return achievements
}

func (s *AchievementStore) saveLocked(achievements []models.Achievement) error {
	data, err := json.Marshal(achievements)
	if err != nil {
		return fmt.Errorf("failed to serialize achievements: %w", err)
	}
	if err := s.backend.Set(constants.AchievementsKey, data); err != nil {
		return fmt.Errorf("failed to save achievements: %w", err)
	}
	return nil
}

// GetAll returns the stored achievements, or the default catalog when
// nothing is stored. Records with ids outside the catalog are preserved
// as-is rather than filtered.
func (s *AchievementStore) GetAll() []models.Achievement {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked()
}

// ReplaceAll overwrites the stored collection. Used by backup import.
func (s *AchievementStore) ReplaceAll(achievements []models.Achievement) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveLocked(achievements)
}

func findAchievement(achievements []models.Achievement, id string) *models.Achievement {
	for i := range achievements {
		if achievements[i].ID == id {
			return &achievements[i]
		}
	}
	return nil
}

// CheckAndUpdate recomputes achievement progress from the trigger collection
// and persists the result. The updated collection is returned even when the
// persist fails, alongside the error.
//
// Only the resistance-count achievements are evaluated here. perfect_day,
// week_warrior, and consistency_champion exist in the catalog with targets
// but have no evaluation logic yet; their earned state is left untouched
// pending a decision on how retroactive earning should work.
func (s *AchievementStore) CheckAndUpdate() ([]models.Achievement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	achievements := s.loadLocked()

	totalResisted := 0
	for _, t := range s.triggers.GetAll() {
		if t.IsResisted {
			totalResisted++
		}
	}

	now := time.Now().Format(time.RFC3339)

	if a := findAchievement(achievements, constants.AchievementFirstResistance); a != nil {
		if !a.Earned && totalResisted > 0 {
			a.Earned = true
			a.EarnedDate = now
			a.Progress = 1
		}
	}

	for _, id := range []string{constants.AchievementMilestone10, constants.AchievementMilestone50} {
		a := findAchievement(achievements, id)
		if a == nil {
			continue
		}
		a.Progress = min(totalResisted, a.Target)
		if !a.Earned && totalResisted >= a.Target {
			a.Earned = true
			a.EarnedDate = now
		}
	}

	if err := s.saveLocked(achievements); err != nil {
		return achievements, err
	}
	return achievements, nil
}
