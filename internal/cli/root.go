package cli

import (
	"fmt"
	"time"

	"github.com/dedededepepi/koala/internal/backup"
	"github.com/dedededepepi/koala/internal/models"
	"github.com/dedededepepi/koala/internal/storage"
)

// Context carries the wired stores into every command's Run method.
type Context struct {
	Triggers     *storage.TriggerStore
	Settings     *storage.SettingsStore
	Achievements *storage.AchievementStore
	Backup       *backup.Manager

	// DataPath is the resolved path of the active backend's data file.
	DataPath string
}

// CheckAchievements runs an achievement recheck and prints any badge earned
// by it. Called after every successful log.
func (c *Context) CheckAchievements() error {
	before := c.Achievements.GetAll()
	after, err := c.Achievements.CheckAndUpdate()
	if err != nil {
		return err
	}

	wasEarned := map[string]bool{}
	for _, a := range before {
		if a.Earned {
			wasEarned[a.ID] = true
		}
	}
	for _, a := range after {
		if a.Earned && !wasEarned[a.ID] {
			fmt.Printf("%s Achievement earned: %s — %s\n", a.Icon, a.Title, a.Description)
		}
	}
	return nil
}

// ParseWhen parses a user-supplied timestamp for backdated entries. Accepts
// RFC3339, "YYYY-MM-DD HH:MM", or a bare date (midnight local time); an
// empty string means now.
func ParseWhen(s string) (time.Time, error) {
	if s == "" {
		return time.Now(), nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04", "2006-01-02"} {
		if ts, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q (expected RFC3339, YYYY-MM-DD HH:MM, or YYYY-MM-DD)", s)
}

// FormatTrigger renders one trigger as a timeline line.
func FormatTrigger(t models.Trigger) string {
	outcome := "✗ gave in "
	if t.IsResisted {
		outcome = "✓ resisted"
	}

	when := t.Timestamp
	if ts, err := t.Time(); err == nil {
		when = ts.Local().Format("2006-01-02 15:04")
	}

	line := fmt.Sprintf("%s  %s  %s  %s", shortID(t.ID), when, outcome, t.Type())
	if t.Notes != "" {
		line += fmt.Sprintf("  %q", t.Notes)
	}
	return line
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
