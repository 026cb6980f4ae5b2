package checkin

import (
	"fmt"

	"github.com/julianstephens/resurs/internal/cli"
)

type JournalCmd struct {
	Wins  bool `help:"Show achievements instead of mood entries."`
	Limit int  `help:"Maximum number of entries to show (0 for all)." default:"20"`
}

func (c *JournalCmd) Run(ctx *cli.Context) error {
	if c.Wins {
		return c.showWins(ctx)
	}

	entries, err := ctx.Model.Journal().Moods()
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("No mood entries yet. Use 'resurs mood' to record one.")
		return nil
	}

	fmt.Printf("Mood journal (%d entries):\n\n", len(entries))
	for i, e := range entries {
		if c.Limit > 0 && i >= c.Limit {
			fmt.Printf("  ... %d more\n", len(entries)-c.Limit)
			break
		}
		fmt.Printf("  %s  %s\n", cli.FormatDate(e.Date), cli.MoodBadge(e.Mood))
		if e.Note != "" {
			fmt.Printf("                    %s\n", e.Note)
		}
	}
	return nil
}

func (c *JournalCmd) showWins(ctx *cli.Context) error {
	entries, err := ctx.Model.Journal().Achievements()
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("No achievements yet. Use 'resurs win' to record one.")
		return nil
	}

	fmt.Printf("Achievements (%d):\n\n", len(entries))
	for i, e := range entries {
		if c.Limit > 0 && i >= c.Limit {
			fmt.Printf("  ... %d more\n", len(entries)-c.Limit)
			break
		}
		fmt.Printf("  %s  🏆 %s\n", cli.FormatDate(e.Date), e.Text)
	}
	return nil
}
