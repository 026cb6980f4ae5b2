package system

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/resurs/internal/affirmation"
	"github.com/julianstephens/resurs/internal/cli"
	"github.com/julianstephens/resurs/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	// Perform automatic backup on TUI startup (after successful load)
	ctx.PerformAutomaticBackup()

	var p *tea.Program
	// Results arrive on the tracker goroutine and are forwarded into the
	// program's update loop.
	tracker := affirmation.NewTracker(ctx.Affirmations, func(r affirmation.Result) {
		if p != nil {
			p.Send(tui.AffirmationMsg(r))
		}
	})
	defer tracker.Close()

	model, err := tui.NewModel(ctx.Model, tracker)
	if err != nil {
		return err
	}

	p = tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui exited with error: %w", err)
	}
	return nil
}
