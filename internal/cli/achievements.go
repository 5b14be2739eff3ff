package cli

import "fmt"

type AchievementsCmd struct {
	Check bool `help:"Recompute progress from the logged entries before listing."`
}

func (c *AchievementsCmd) Run(ctx *Context) error {
	achievements := ctx.Achievements.GetAll()
	if c.Check {
		var err error
		achievements, err = ctx.Achievements.CheckAndUpdate()
		if err != nil {
			return err
		}
	}

	for _, a := range achievements {
		check := "  "
		if a.Earned {
			check = "✓ "
		}
		fmt.Printf("%s%s %-22s %s\n", check, a.Icon, a.Title, a.Description)
		if a.Target > 1 {
			fmt.Printf("      progress: %d/%d\n", a.Progress, a.Target)
		}
		if a.Earned && a.EarnedDate != "" {
			fmt.Printf("      earned:   %s\n", a.EarnedDate)
		}
	}
	return nil
}
