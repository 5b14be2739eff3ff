package backup

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/dedededepepi/koala/internal/constants"
	"github.com/dedededepepi/koala/internal/models"
	"github.com/dedededepepi/koala/internal/storage"
)

func setupManager(t *testing.T) (*Manager, *storage.TriggerStore, *storage.SettingsStore, *storage.AchievementStore) {
	t.Helper()
	backend := storage.NewMemoryBackend()
	triggers := storage.NewTriggerStore(backend)
	settings := storage.NewSettingsStore(backend)
	achievements := storage.NewAchievementStore(backend, triggers)
	return NewManager(triggers, settings, achievements), triggers, settings, achievements
}

func seedTrigger(t *testing.T, store *storage.TriggerStore, id string, resisted bool) {
	t.Helper()
	err := store.Add(models.Trigger{
		ID:         id,
		Timestamp:  time.Now().Format(time.RFC3339),
		IsResisted: resisted,
	})
	if err != nil {
		t.Fatalf("seed failed: %v", err)
	}
}

func TestExportDocumentShape(t *testing.T) {
	m, triggers, _, _ := setupManager(t)
	seedTrigger(t, triggers, "t1", true)

	data, err := m.Export()
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}

	var doc models.ExportDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("export not parseable: %v", err)
	}
	if doc.Version != constants.ExportVersion {
		t.Errorf("expected version %q, got %q", constants.ExportVersion, doc.Version)
	}
	if _, err := time.Parse(time.RFC3339, doc.ExportDate); err != nil {
		t.Errorf("exportDate not RFC3339: %v", err)
	}
	if len(doc.Triggers) != 1 || len(doc.Achievements) != 6 {
		t.Errorf("unexpected section sizes: %d triggers, %d achievements", len(doc.Triggers), len(doc.Achievements))
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	m, triggers, settings, achievements := setupManager(t)
	seedTrigger(t, triggers, "t1", true)
	seedTrigger(t, triggers, "t2", false)
	theme := models.ThemeDark
	if err := settings.Update(models.SettingsPatch{ThemeMode: &theme}); err != nil {
		t.Fatalf("settings update failed: %v", err)
	}
	if _, err := achievements.CheckAndUpdate(); err != nil {
		t.Fatalf("achievement check failed: %v", err)
	}

	data, err := m.Export()
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}

	m2, triggers2, settings2, achievements2 := setupManager(t)
	if err := m2.Import(data); err != nil {
		t.Fatalf("import failed: %v", err)
	}

	if got := triggers2.GetAll(); len(got) != 2 || got[0].ID != "t1" {
		t.Errorf("triggers did not survive the round trip: %+v", got)
	}
	if got := settings2.Get(); got.ThemeMode != models.ThemeDark || !got.DarkMode {
		t.Errorf("settings did not survive the round trip: %+v", got)
	}
	earned := 0
	for _, a := range achievements2.GetAll() {
		if a.Earned {
			earned++
		}
	}
	if earned != 1 {
		t.Errorf("expected 1 earned badge after round trip, got %d", earned)
	}
}

func TestImportMalformedDocumentLeavesStateUntouched(t *testing.T) {
	m, triggers, _, _ := setupManager(t)
	seedTrigger(t, triggers, "keep-me", true)

	if err := m.Import([]byte("{not json")); err == nil {
		t.Fatal("expected malformed document to fail")
	}

	if got := triggers.GetAll(); len(got) != 1 || got[0].ID != "keep-me" {
		t.Errorf("failed import must not touch stored state: %+v", got)
	}
}

func TestImportDropsInvalidTriggers(t *testing.T) {
	m, triggers, _, _ := setupManager(t)

	doc := `{
		"version": "1.0",
		"triggers": [
			{"id": "good", "timestamp": "2026-08-01T10:00:00Z", "isResisted": true},
			{"id": "no-timestamp", "isResisted": true},
			{"id": 42, "timestamp": "2026-08-01T10:00:00Z", "isResisted": true},
			{"id": "wrong-resisted", "timestamp": "2026-08-01T10:00:00Z", "isResisted": "yes"}
		]
	}`
	if err := m.Import([]byte(doc)); err != nil {
		t.Fatalf("import failed: %v", err)
	}

	got := triggers.GetAll()
	if len(got) != 1 || got[0].ID != "good" {
		t.Errorf("expected only the valid record, got %+v", got)
	}
}

func TestImportDropsInvalidAchievements(t *testing.T) {
	m, _, _, achievements := setupManager(t)

	doc := `{
		"version": "1.0",
		"achievements": [
			{"id": "ok", "title": "Ok", "description": "d", "icon": "x", "earned": true},
			{"id": "no-earned", "title": "T", "description": "d", "icon": "x"}
		]
	}`
	if err := m.Import([]byte(doc)); err != nil {
		t.Fatalf("import failed: %v", err)
	}

	got := achievements.GetAll()
	if len(got) != 1 || got[0].ID != "ok" || !got[0].Earned {
		t.Errorf("expected only the valid record, got %+v", got)
	}
}

func TestImportCoercesSettings(t *testing.T) {
	m, _, settings, _ := setupManager(t)

	doc := `{
		"version": "1.0",
		"settings": {"themeMode": "neon", "dailyTarget": "lots", "haptics": false}
	}`
	if err := m.Import([]byte(doc)); err != nil {
		t.Fatalf("import failed: %v", err)
	}

	got := settings.Get()
	if got.ThemeMode != models.ThemeSystem {
		t.Errorf("invalid theme should fall back to default, got %q", got.ThemeMode)
	}
	if got.DailyTarget != constants.DefaultDailyTarget {
		t.Errorf("mistyped dailyTarget should fall back to default, got %d", got.DailyTarget)
	}
	if got.Haptics {
		t.Error("valid haptics value should be kept")
	}
}

func TestImportLegacyDarkModeSettings(t *testing.T) {
	m, _, settings, _ := setupManager(t)

	doc := `{"version": "1.0", "settings": {"darkMode": true}}`
	if err := m.Import([]byte(doc)); err != nil {
		t.Fatalf("import failed: %v", err)
	}

	got := settings.Get()
	if got.ThemeMode != models.ThemeDark || !got.DarkMode {
		t.Errorf("legacy darkMode should map to the dark theme, got %+v", got)
	}
}

func TestImportMissingSectionsLeaveStoresAlone(t *testing.T) {
	m, triggers, settings, _ := setupManager(t)
	seedTrigger(t, triggers, "keep-me", true)
	target := 42
	if err := settings.Update(models.SettingsPatch{DailyTarget: &target}); err != nil {
		t.Fatalf("settings update failed: %v", err)
	}

	if err := m.Import([]byte(`{"version": "1.0"}`)); err != nil {
		t.Fatalf("import failed: %v", err)
	}

	if got := triggers.GetAll(); len(got) != 1 {
		t.Errorf("absent trigger section must not clear triggers: %+v", got)
	}
	if got := settings.Get(); got.DailyTarget != 42 {
		t.Errorf("absent settings section must not reset settings: %+v", got)
	}
}
