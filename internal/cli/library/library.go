package library

import (
	"fmt"

	"github.com/julianstephens/resurs/internal/catalog"
	"github.com/julianstephens/resurs/internal/cli"
	"github.com/julianstephens/resurs/internal/models"
)

type LibraryCmd struct {
	Read string `help:"Show the full text of an article by id."`
}

func (c *LibraryCmd) Run(ctx *cli.Context) error {
	tier, err := currentTier(ctx)
	if err != nil {
		return err
	}

	if c.Read != "" {
		article, ok := catalog.Article(c.Read)
		if !ok {
			return fmt.Errorf("unknown article %q", c.Read)
		}
		if catalog.ArticleLocked(article, tier) {
			return fmt.Errorf("«%s» requires the %s tier (you have %s); see 'resurs tier'",
				article.Title, catalog.TierName(article.RequiredTier), catalog.TierName(tier))
		}
		fmt.Printf("%s · %s\n\n", article.Category, article.Title)
		fmt.Println(article.Content)
		return nil
	}

	fmt.Printf("Библиотека (тариф: %s)\n\n", catalog.TierName(tier))
	for _, a := range catalog.Articles() {
		lock := " "
		if catalog.ArticleLocked(a, tier) {
			lock = "🔒"
		}
		fmt.Printf("%s %-3s %-10s %s\n", lock, a.ID, a.Category, a.Title)
	}
	fmt.Printf("\nСообщество: %s\n", catalog.CommunityLink)
	return nil
}

// currentTier is the stored user's tier, or free before onboarding.
func currentTier(ctx *cli.Context) (models.SubscriptionLevel, error) {
	user, ok, err := ctx.Model.LoadUser()
	if err != nil {
		return "", err
	}
	if !ok {
		return models.LevelFree, nil
	}
	return user.SubscriptionLevel, nil
}
