package cli

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/dedededepepi/koala/internal/reminder"
)

type RemindCmd struct{}

func (c *RemindCmd) Run(ctx *Context) error {
	settings := ctx.Settings.Get()
	if settings.ReminderTime == "" {
		return fmt.Errorf("no reminder time configured; set one with 'koala settings --reminder-time HH:MM'")
	}
	if !settings.Notifications {
		return fmt.Errorf("notifications are disabled; enable them with 'koala settings --notifications'")
	}

	fmt.Printf("Reminder loop running (daily at %s). Ctrl+C to stop.\n", settings.ReminderTime)

	runCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return reminder.Run(runCtx, ctx.Settings, func(message string) {
		fmt.Printf("\a%s\n", message)
	})
}
