package practices

import (
	"fmt"

	"github.com/julianstephens/resurs/internal/cli"
	"github.com/julianstephens/resurs/internal/garden"
)

type GardenCmd struct {
	Width  int  `help:"Garden width in columns." default:"60"`
	Height int  `help:"Garden height in rows." default:"16"`
	Plain  bool `help:"Draw without colors."`
}

func (c *GardenCmd) Run(ctx *cli.Context) error {
	if c.Width < 1 || c.Height < 1 {
		return fmt.Errorf("garden size must be positive, got %dx%d", c.Width, c.Height)
	}

	user, err := ctx.Model.RequireUser()
	if err != nil {
		return err
	}

	if user.Flowers == 0 {
		fmt.Println(garden.EmptyMessage)
		return nil
	}

	placements := garden.Layout(user.Flowers)
	if c.Plain {
		fmt.Println(garden.Render(placements, c.Width, c.Height))
	} else {
		fmt.Println(garden.RenderStyled(placements, c.Width, c.Height))
	}
	fmt.Printf("\n🌸 %d %s", user.Flowers, flowersWord(user.Flowers))
	if user.Flowers > len(placements) {
		fmt.Printf(" (показаны последние %d)", len(placements))
	}
	fmt.Println()
	return nil
}
