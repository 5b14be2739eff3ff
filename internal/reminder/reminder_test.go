package reminder

import (
	"testing"
	"time"

	"github.com/dedededepepi/koala/internal/models"
)

func reminderSettings(at string, notifications bool) models.Settings {
	s := models.DefaultSettings()
	s.Notifications = notifications
	s.ReminderTime = at
	return s
}

func TestDue(t *testing.T) {
	now := time.Date(2026, 8, 20, 21, 0, 0, 0, time.Local)

	cases := []struct {
		name      string
		settings  models.Settings
		lastFired string
		want      bool
	}{
		{"fires at the configured minute", reminderSettings("21:00", true), "", true},
		{"wrong minute", reminderSettings("21:01", true), "", false},
		{"notifications disabled", reminderSettings("21:00", false), "", false},
		{"no reminder configured", reminderSettings("", true), "", false},
		{"already fired this minute", reminderSettings("21:00", true), "2026-08-20 21:00", false},
		{"fired yesterday, fires again today", reminderSettings("21:00", true), "2026-08-19 21:00", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			due, _ := Due(tc.settings, now, tc.lastFired)
			if due != tc.want {
				t.Errorf("due=%v, want %v", due, tc.want)
			}
		})
	}
}

func TestDueReturnsMinuteKey(t *testing.T) {
	now := time.Date(2026, 8, 20, 21, 0, 30, 0, time.Local)
	due, key := Due(reminderSettings("21:00", true), now, "")
	if !due {
		t.Fatal("expected reminder to fire")
	}
	if key != "2026-08-20 21:00" {
		t.Errorf("unexpected key %q", key)
	}

	// Feeding the key back suppresses a second firing in the same minute.
	if again, _ := Due(reminderSettings("21:00", true), now.Add(10*time.Second), key); again {
		t.Error("reminder fired twice within one minute")
	}
}

func TestDuePreservesLastFiredWhenNotDue(t *testing.T) {
	now := time.Date(2026, 8, 20, 22, 0, 0, 0, time.Local)
	_, key := Due(reminderSettings("21:00", true), now, "2026-08-20 21:00")
	if key != "2026-08-20 21:00" {
		t.Errorf("lastFired should pass through unchanged, got %q", key)
	}
}
