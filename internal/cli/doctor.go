package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	ps "github.com/mitchellh/go-ps"

	"github.com/dedededepepi/koala/internal/constants"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false

	// Check 1: storage reachable (round-trip through the triggers blob)
	count := len(ctx.Triggers.GetAll())
	fmt.Printf("✓ Storage reachable: OK (%d entries)\n", count)

	// Check 2: data directory writable
	if err := checkDataDirWritable(ctx.DataPath); err != nil {
		fmt.Printf("❌ Data directory writable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Data directory writable: OK\n")
	}

	// Check 3: clock sanity
	if err := checkClock(); err != nil {
		fmt.Printf("❌ Clock/timezone: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Clock/timezone: OK\n")
	}

	// Check 4: reminder time is well-formed
	settings := ctx.Settings.Get()
	if settings.ReminderTime != "" {
		if _, err := time.Parse(constants.ClockFormat, settings.ReminderTime); err != nil {
			fmt.Printf("⚠ Reminder time: WARNING (%q is not HH:MM)\n", settings.ReminderTime)
		} else {
			fmt.Printf("✓ Reminder time: OK (%s)\n", settings.ReminderTime)
		}
	} else {
		fmt.Printf("✓ Reminder time: OK (not configured)\n")
	}

	// Check 5: concurrent processes. Warning only; the stores are
	// single-writer and a second process can lose updates.
	if n, err := countKoalaProcesses(); err == nil && n > 1 {
		fmt.Printf("⚠ Concurrent processes: WARNING (%d koala processes running)\n", n)
		fmt.Println("   Overlapping writes from multiple processes can lose updates.")
	} else {
		fmt.Printf("✓ Concurrent processes: OK\n")
	}

	fmt.Println()
	if hasError {
		return fmt.Errorf("diagnostics found problems")
	}
	fmt.Println("All checks passed.")
	return nil
}

func checkDataDirWritable(dataPath string) error {
	dir := filepath.Dir(dataPath)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}
	probe := filepath.Join(dir, ".koala-doctor")
	if err := os.WriteFile(probe, []byte("ok"), 0600); err != nil {
		return err
	}
	return os.Remove(probe)
}

func checkClock() error {
	now := time.Now()
	if now.Year() < 2020 {
		return fmt.Errorf("system clock reads %s, which is implausibly old", now.Format(constants.DateFormat))
	}
	return nil
}

func countKoalaProcesses() (int, error) {
	procs, err := ps.Processes()
	if err != nil {
		return 0, err
	}
	n := 0
	for _, p := range procs {
		name := strings.TrimSuffix(p.Executable(), ".exe")
		if name == constants.AppName {
			n++
		}
	}
	return n, nil
}
