package checkin

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/resurs/internal/cli"
	"github.com/julianstephens/resurs/internal/validation"
)

type WinCmd struct {
	Text []string `arg:"" optional:"" help:"What went well today."`
}

func (c *WinCmd) Run(ctx *cli.Context) error {
	text := strings.Join(c.Text, " ")

	if strings.TrimSpace(text) == "" {
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Чем ты гордишься сегодня?").
					Value(&text).
					Validate(func(s string) error {
						_, err := validation.AchievementText(s)
						return err
					}),
			),
		)
		if err := form.Run(); err != nil {
			if cli.IsAborted(err) {
				fmt.Println("Cancelled.")
				return nil
			}
			return err
		}
	}

	entry, err := ctx.Model.RecordAchievement(text)
	if err != nil {
		return err
	}

	fmt.Printf("✓ Победа записана: %s\n", entry.Text)
	return nil
}
