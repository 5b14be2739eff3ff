package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

type ExportCmd struct {
	Out string `help:"File to write the backup to (default: stdout)." type:"path" default:""`
}

func (c *ExportCmd) Run(ctx *Context) error {
	data, err := ctx.Backup.Export()
	if err != nil {
		return err
	}

	if c.Out == "" {
		fmt.Println(string(data))
		return nil
	}

	if err := os.WriteFile(c.Out, data, 0600); err != nil {
		return fmt.Errorf("failed to write backup: %w", err)
	}
	fmt.Printf("✓ Backup written: %s\n", c.Out)
	return nil
}

type ImportCmd struct {
	File  string `arg:"" help:"Backup file to import." type:"path"`
	Force bool   `help:"Skip the confirmation prompt."`
}

func (c *ImportCmd) Run(ctx *Context) error {
	data, err := os.ReadFile(c.File)
	if err != nil {
		return fmt.Errorf("failed to read backup: %w", err)
	}

	if !c.Force {
		fmt.Println("⚠️  WARNING: This will replace your logged entries, settings, and achievements.")
		if !confirm("Continue? [y/N]: ") {
			fmt.Println("Import cancelled.")
			return nil
		}
	}

	if err := ctx.Backup.Import(data); err != nil {
		return err
	}
	fmt.Println("✓ Data imported successfully.")
	return nil
}

type ClearCmd struct {
	Force bool `help:"Skip the confirmation prompt."`
}

func (c *ClearCmd) Run(ctx *Context) error {
	if !c.Force {
		fmt.Println("⚠️  WARNING: This will permanently delete every logged entry.")
		fmt.Println("Settings and achievements are kept. Consider 'koala export' first.")
		if !confirm("Continue? [y/N]: ") {
			fmt.Println("Clear cancelled.")
			return nil
		}
	}

	if err := ctx.Triggers.Clear(); err != nil {
		return err
	}
	fmt.Println("✓ All entries cleared.")
	return nil
}

func confirm(prompt string) bool {
	fmt.Print(prompt)
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes"
}
