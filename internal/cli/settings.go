package cli

import (
	"fmt"
	"time"

	"github.com/dedededepepi/koala/internal/constants"
	"github.com/dedededepepi/koala/internal/models"
)

type SettingsCmd struct {
	List bool `help:"List current settings."`

	Theme         *string `help:"Theme mode: light, dark, or system."`
	Notifications *bool   `help:"Enable or disable notifications."`
	Haptics       *bool   `help:"Enable or disable haptic feedback."`
	DailyTarget   *int    `help:"Daily urge target used as the display denominator."`
	ReminderTime  *string `help:"Daily reminder time (HH:MM, empty to disable)."`
}

func (c *SettingsCmd) Run(ctx *Context) error {
	settings := ctx.Settings.Get()

	if c.List {
		fmt.Println("Current Settings:")
		fmt.Printf("  Theme:         %s\n", settings.ThemeMode)
		fmt.Printf("  Notifications: %v\n", settings.Notifications)
		fmt.Printf("  Haptics:       %v\n", settings.Haptics)
		fmt.Printf("  Daily target:  %d\n", settings.DailyTarget)
		if settings.ReminderTime != "" {
			fmt.Printf("  Reminder:      %s\n", settings.ReminderTime)
		} else {
			fmt.Printf("  Reminder:      (off)\n")
		}
		return nil
	}

	patch := models.SettingsPatch{
		Notifications: c.Notifications,
		Haptics:       c.Haptics,
		DailyTarget:   c.DailyTarget,
	}
	updated := c.Notifications != nil || c.Haptics != nil || c.DailyTarget != nil

	if c.Theme != nil {
		mode := models.ThemeMode(*c.Theme)
		if !mode.Valid() {
			return fmt.Errorf("invalid theme %q (expected light, dark, or system)", *c.Theme)
		}
		patch.ThemeMode = &mode
		updated = true
	}
	if c.ReminderTime != nil {
		if *c.ReminderTime != "" {
			if _, err := time.Parse(constants.ClockFormat, *c.ReminderTime); err != nil {
				return fmt.Errorf("invalid reminder time %q (expected HH:MM)", *c.ReminderTime)
			}
		}
		patch.ReminderTime = c.ReminderTime
		updated = true
	}

	if !updated {
		fmt.Println("No changes specified. Use --list to view settings or flags to update them.")
		return nil
	}

	if err := ctx.Settings.Update(patch); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	fmt.Println("Settings updated successfully.")
	return nil
}
