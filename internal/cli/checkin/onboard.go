package checkin

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/resurs/internal/cli"
	"github.com/julianstephens/resurs/internal/constants"
	"github.com/julianstephens/resurs/internal/models"
	"github.com/julianstephens/resurs/internal/progression"
	"github.com/julianstephens/resurs/internal/validation"
)

type OnboardCmd struct {
	Name string `help:"Your name."`
	Mood string `help:"How you feel right now (JOY, GRATITUDE, CALM, ENERGY, ANXIETY, SADNESS, IRRITATION, TIRED)."`
}

func (c *OnboardCmd) Run(ctx *cli.Context) error {
	name := c.Name
	var mood models.MoodType

	if c.Mood != "" {
		parsed, err := cli.ParseMoodArg(c.Mood)
		if err != nil {
			return err
		}
		mood = parsed
	}

	if name == "" || mood == "" {
		if err := onboardingForm(&name, &mood).Run(); err != nil {
			if cli.IsAborted(err) {
				fmt.Println("Onboarding cancelled.")
				return nil
			}
			return err
		}
	}

	user, err := ctx.Model.CompleteOnboarding(name, mood)
	if err != nil {
		return err
	}

	fmt.Printf("✓ %s, %s!\n", progression.Greeting(time.Now()), user.Name)
	fmt.Printf("  Добро пожаловать в %s. Твой сад пока пуст: каждая практика вырастит цветок.\n", constants.AppDisplayName)
	fmt.Println()
	fmt.Println("  " + ctx.Affirmations.Fetch(context.Background(), mood, user.Name))
	return nil
}

func onboardingForm(name *string, mood *models.MoodType) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Как тебя зовут?").
				Value(name).
				Validate(func(s string) error {
					_, err := validation.UserName(s)
					return err
				}),
			huh.NewSelect[models.MoodType]().
				Title("Как ты себя чувствуешь?").
				Options(cli.MoodOptions()...).
				Value(mood),
		),
	)
}
