package practices

import (
	"fmt"
	"strings"

	"github.com/julianstephens/resurs/internal/catalog"
	"github.com/julianstephens/resurs/internal/cli"
	"github.com/julianstephens/resurs/internal/models"
)

type PracticeListCmd struct {
	Category string `help:"Filter by category (breathing|yoga|meditation|sos|all, or any practice category)." default:"all"`
}

func (c *PracticeListCmd) Run(ctx *cli.Context) error {
	category := models.PracticeCategory(strings.ToLower(strings.TrimSpace(c.Category)))
	if !catalog.ValidCategory(category) {
		var names []string
		for _, f := range catalog.PracticeFilters() {
			names = append(names, string(f.Category))
		}
		return fmt.Errorf("unknown category %q (use one of: %s)", c.Category, strings.Join(names, ", "))
	}

	list := catalog.PracticesByCategory(category)
	if len(list) == 0 {
		fmt.Println("No practices in this category yet.")
		return nil
	}

	for _, p := range list {
		lock := " "
		if p.IsLocked {
			lock = "🔒"
		}
		fmt.Printf("%s %-3s %-24s %-7s %s\n", lock, p.ID, p.Title, p.Duration, catalog.DisplayCategory(p.Category))
		fmt.Printf("      %s\n", p.Description)
	}
	return nil
}

type PracticeDoneCmd struct {
	ID string `arg:"" help:"Practice id (see 'resurs practice list')."`
}

func (c *PracticeDoneCmd) Run(ctx *cli.Context) error {
	user, err := ctx.Model.CompletePracticeByID(c.ID)
	if err != nil {
		return err
	}

	practice, _ := catalog.Practice(c.ID)
	fmt.Printf("✓ Практика «%s» завершена\n", practice.Title)
	fmt.Printf("  🌸 В твоём саду %d %s\n", user.Flowers, flowersWord(user.Flowers))
	return nil
}

// flowersWord picks the Russian plural form for n.
func flowersWord(n int) string {
	if n < 0 {
		n = -n
	}
	switch {
	case n%100 >= 11 && n%100 <= 14:
		return "цветов"
	case n%10 == 1:
		return "цветок"
	case n%10 >= 2 && n%10 <= 4:
		return "цветка"
	default:
		return "цветов"
	}
}
