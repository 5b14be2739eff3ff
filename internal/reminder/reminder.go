// Package reminder runs the daily check-in reminder loop.
package reminder

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"

	"github.com/dedededepepi/koala/internal/constants"
	"github.com/dedededepepi/koala/internal/logger"
	"github.com/dedededepepi/koala/internal/models"
	"github.com/dedededepepi/koala/internal/storage"
)

// Due reports whether the reminder should fire at now, given the settings
// and the minute key of the last firing. The returned key (YYYY-MM-DD HH:MM)
// must be fed back in to keep the reminder to one firing per minute.
func Due(settings models.Settings, now time.Time, lastFired string) (bool, string) {
	if !settings.Notifications || settings.ReminderTime == "" {
		return false, lastFired
	}
	if now.Local().Format(constants.ClockFormat) != settings.ReminderTime {
		return false, lastFired
	}
	key := now.Local().Format(constants.DateFormat + " " + constants.ClockFormat)
	if key == lastFired {
		return false, lastFired
	}
	return true, key
}

// Run polls the settings once a minute and calls notify when the local
// wall clock matches the configured reminder time. Settings are re-read on
// every poll, so changing the reminder time takes effect without a restart.
// Blocks until ctx is cancelled.
func Run(ctx context.Context, settings *storage.SettingsStore, notify func(message string)) error {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return fmt.Errorf("failed to create scheduler: %w", err)
	}

	var lastFired string
	_, err = scheduler.NewJob(
		gocron.DurationJob(time.Minute),
		gocron.NewTask(func() {
			due, key := Due(settings.Get(), time.Now(), lastFired)
			if !due {
				return
			}
			lastFired = key
			logger.Info("Reminder fired", "at", key)
			notify("Time to check in with yourself 🐨")
		}),
	)
	if err != nil {
		return fmt.Errorf("failed to schedule reminder job: %w", err)
	}

	scheduler.Start()
	<-ctx.Done()
	return scheduler.Shutdown()
}
