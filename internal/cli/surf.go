package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dedededepepi/koala/internal/tui"
)

type SurfCmd struct{}

func (c *SurfCmd) Run(ctx *Context) error {
	model := tui.NewModel(ctx.Triggers, ctx.Settings, ctx.Achievements, tui.StateSurf)
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run urge surf: %w", err)
	}
	return nil
}

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *Context) error {
	model := tui.NewModel(ctx.Triggers, ctx.Settings, ctx.Achievements, tui.StateToday)
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}
