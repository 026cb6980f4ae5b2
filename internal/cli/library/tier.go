package library

import (
	"fmt"

	"github.com/julianstephens/resurs/internal/catalog"
	"github.com/julianstephens/resurs/internal/cli"
	"github.com/julianstephens/resurs/internal/models"
)

// TierCmd lists the tiers or switches the current one. There is no payment
// step; the switch only changes what the library unlocks.
type TierCmd struct {
	Set string `help:"Switch to a tier (free|basic|extended|premium)."`
}

func (c *TierCmd) Run(ctx *cli.Context) error {
	user, err := ctx.Model.RequireUser()
	if err != nil {
		return err
	}

	if c.Set != "" {
		level, err := models.ParseSubscriptionLevel(c.Set)
		if err != nil {
			return err
		}
		user, err = ctx.Model.SetSubscriptionLevel(user, level)
		if err != nil {
			return err
		}
		fmt.Printf("✓ Тариф изменён: %s\n", catalog.TierName(user.SubscriptionLevel))
		return nil
	}

	fmt.Printf("Текущий тариф: %s\n\n", catalog.TierName(user.SubscriptionLevel))
	for _, t := range catalog.Tiers() {
		marker := " "
		if t.ID == user.SubscriptionLevel {
			marker = "✓"
		}
		fmt.Printf("%s %-9s %-12s %s\n", marker, t.ID, t.Name, t.Price)
		for _, f := range t.Features {
			fmt.Printf("      • %s\n", f)
		}
	}
	return nil
}
