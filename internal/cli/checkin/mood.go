package checkin

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/resurs/internal/cli"
	"github.com/julianstephens/resurs/internal/models"
)

type MoodCmd struct {
	Mood string `help:"Mood to record (JOY, GRATITUDE, CALM, ENERGY, ANXIETY, SADNESS, IRRITATION, TIRED)."`
	Note string `help:"Optional note."`
}

func (c *MoodCmd) Run(ctx *cli.Context) error {
	note := c.Note
	var mood models.MoodType

	if c.Mood != "" {
		parsed, err := cli.ParseMoodArg(c.Mood)
		if err != nil {
			return err
		}
		mood = parsed
	} else {
		if err := moodForm(&mood, &note).Run(); err != nil {
			if cli.IsAborted(err) {
				fmt.Println("Check-in cancelled.")
				return nil
			}
			return err
		}
	}

	entry, err := ctx.Model.RecordMoodCheckin(mood, note)
	if err != nil {
		return err
	}

	fmt.Printf("✓ Настроение записано: %s\n", cli.MoodBadge(entry.Mood))

	// The entry is already persisted; the affirmation only decorates it
	text := ctx.Affirmations.Fetch(context.Background(), entry.Mood, ctx.UserName())
	fmt.Println()
	fmt.Println("  " + text)
	return nil
}

func moodForm(mood *models.MoodType, note *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[models.MoodType]().
				Title("Как ты себя чувствуешь?").
				Options(cli.MoodOptions()...).
				Value(mood),
			huh.NewText().
				Title("Заметка (необязательно)").
				Value(note),
		),
	)
}
