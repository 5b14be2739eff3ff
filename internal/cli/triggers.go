package cli

import (
	"fmt"
	"sort"
	"time"

	"github.com/dedededepepi/koala/internal/models"
)

type TriggerListCmd struct {
	Date  string `help:"Only show entries for a date (YYYY-MM-DD)." default:""`
	Limit int    `help:"Maximum number of entries to show (0 = all)." default:"20"`
}

func (c *TriggerListCmd) Run(ctx *Context) error {
	var triggers []models.Trigger
	if c.Date != "" {
		triggers = ctx.Triggers.GetByDate(c.Date)
	} else {
		triggers = ctx.Triggers.GetAll()
	}

	if len(triggers) == 0 {
		fmt.Println("No entries found.")
		return nil
	}

	// Newest first; entries with unparseable timestamps sink to the end.
	sort.SliceStable(triggers, func(i, j int) bool {
		ti, erri := triggers[i].Time()
		tj, errj := triggers[j].Time()
		if erri != nil {
			return false
		}
		if errj != nil {
			return true
		}
		return ti.After(tj)
	})

	if c.Limit > 0 && len(triggers) > c.Limit {
		triggers = triggers[:c.Limit]
	}

	for _, t := range triggers {
		fmt.Println(FormatTrigger(t))
	}
	return nil
}

type TriggerEditCmd struct {
	ID string `arg:"" help:"Id (or unique prefix shown by 'koala list') of the entry to edit."`

	Resisted *bool   `help:"Change the outcome."`
	Type     *string `help:"Change the compulsion type."`
	Note     *string `help:"Change the note."`
	At       *string `help:"Change the timestamp."`
}

func (c *TriggerEditCmd) Run(ctx *Context) error {
	id, err := resolveID(ctx, c.ID)
	if err != nil {
		return err
	}

	patch := models.TriggerPatch{
		IsResisted:     c.Resisted,
		CompulsionType: c.Type,
		Notes:          c.Note,
	}
	if c.At != nil {
		when, err := ParseWhen(*c.At)
		if err != nil {
			return err
		}
		ts := when.Format(time.RFC3339)
		patch.Timestamp = &ts
	}

	if err := ctx.Triggers.Update(id, patch); err != nil {
		return err
	}
	fmt.Println("Entry updated.")
	return nil
}

type TriggerDeleteCmd struct {
	ID string `arg:"" help:"Id (or unique prefix) of the entry to delete."`
}

func (c *TriggerDeleteCmd) Run(ctx *Context) error {
	id, err := resolveID(ctx, c.ID)
	if err != nil {
		return err
	}

	if err := ctx.Triggers.Delete(id); err != nil {
		return err
	}
	fmt.Println("Entry deleted.")
	return nil
}

// resolveID expands a short id prefix to the full stored id, erroring on
// unknown or ambiguous prefixes.
func resolveID(ctx *Context, prefix string) (string, error) {
	var match string
	for _, t := range ctx.Triggers.GetAll() {
		if t.ID == prefix {
			return t.ID, nil
		}
		if len(prefix) >= 4 && len(t.ID) > len(prefix) && t.ID[:len(prefix)] == prefix {
			if match != "" {
				return "", fmt.Errorf("id prefix %q is ambiguous", prefix)
			}
			match = t.ID
		}
	}
	if match == "" {
		return "", fmt.Errorf("no entry found with id %q", prefix)
	}
	return match, nil
}
