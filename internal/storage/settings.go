package storage

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/dedededepepi/koala/internal/constants"
	"github.com/dedededepepi/koala/internal/logger"
	"github.com/dedededepepi/koala/internal/models"
)

// SettingsStore persists the single user settings record.
//
// Records written before ThemeMode existed carry only the legacy DarkMode
// flag. Get synthesizes ThemeMode from DarkMode for such records without
// rewriting them; the synthesized value is only persisted by the next
// explicit Update.
type SettingsStore struct {
	backend Backend
	mu      sync.Mutex
}

func NewSettingsStore(backend Backend) *SettingsStore {
	return &SettingsStore{backend: backend}
}

func (s *SettingsStore) loadLocked() models.Settings {
	data, ok, err := s.backend.Get(constants.SettingsKey)
	if err != nil {
		logger.Error("Failed to load settings", "error", err)
		return models.DefaultSettings()
	}
	if !ok {
		return models.DefaultSettings()
	}

	var settings models.Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		logger.Error("Failed to parse stored settings", "error", err)
		return models.DefaultSettings()
	}

	// Migration-on-read for pre-ThemeMode records
	if settings.ThemeMode == "" {
		if settings.DarkMode {
			settings.ThemeMode = models.ThemeDark
		} else {
			settings.ThemeMode = models.ThemeLight
		}
	}
	return settings
}

// Get returns the stored settings, or the defaults when nothing is stored.
func (s *SettingsStore) Get() models.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked()
}

// Update merges the patch onto the current record and persists the result.
func (s *SettingsStore) Update(patch models.SettingsPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	updated := s.loadLocked().Apply(patch)
	return s.saveLocked(updated)
}

// Save overwrites the record wholesale. Used by backup import.
func (s *SettingsStore) Save(settings models.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveLocked(settings)
}

func (s *SettingsStore) saveLocked(settings models.Settings) error {
	data, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to serialize settings: %w", err)
	}
	if err := s.backend.Set(constants.SettingsKey, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}
