package cli

import (
	"fmt"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/google/uuid"

	"github.com/dedededepepi/koala/internal/models"
)

type LogCmd struct {
	Resisted bool `help:"Record the urge as resisted." xor:"outcome"`
	GaveIn   bool `help:"Record the urge as given in to." xor:"outcome"`

	Type      string `help:"Compulsion type label (e.g. Handwashing, Checking)." default:""`
	Note      string `help:"Free-text note." default:""`
	Mood      int    `help:"Mood on a 1-5 scale." default:"0"`
	Intensity int    `help:"Urge intensity on a 1-10 scale." default:"0"`
	At        string `help:"Backdate the entry (RFC3339, 'YYYY-MM-DD HH:MM', or YYYY-MM-DD)." default:""`
}

func (c *LogCmd) Run(ctx *Context) error {
	resisted := c.Resisted
	if !c.Resisted && !c.GaveIn {
		if err := c.promptOutcome(&resisted); err != nil {
			return err
		}
	}

	when, err := ParseWhen(c.At)
	if err != nil {
		return err
	}

	trigger := models.Trigger{
		ID:             uuid.New().String(),
		Timestamp:      when.Format(time.RFC3339),
		IsResisted:     resisted,
		CompulsionType: c.Type,
		Notes:          c.Note,
	}
	if c.Mood > 0 {
		trigger.Mood = &c.Mood
	}
	if c.Intensity > 0 {
		trigger.Intensity = &c.Intensity
	}

	if err := ctx.Triggers.Add(trigger); err != nil {
		return err
	}

	if resisted {
		fmt.Printf("✓ Logged resisted urge (%s)\n", trigger.Type())
	} else {
		fmt.Printf("Logged urge (%s). Be kind to yourself.\n", trigger.Type())
	}

	return ctx.CheckAchievements()
}

// promptOutcome runs the interactive entry form when no outcome flag was
// given.
func (c *LogCmd) promptOutcome(resisted *bool) error {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[bool]().
				Title("What happened?").
				Options(
					huh.NewOption("I resisted the urge", true),
					huh.NewOption("I gave in", false),
				).
				Value(resisted),
			huh.NewInput().
				Title("Compulsion type").
				Placeholder("e.g. Handwashing, Checking, Counting").
				Value(&c.Type),
			huh.NewText().
				Title("Notes").
				Placeholder("What triggered it? How did it feel?").
				Value(&c.Note),
		),
	)
	return form.Run()
}
