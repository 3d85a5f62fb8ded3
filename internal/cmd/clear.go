package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/renato0307/tempo/internal/logging"
)

// ClearCmd removes the timer state and session history
type ClearCmd struct {
	Yes bool `help:"Skip the confirmation prompt" short:"y"`
}

// Run executes the clear command
func (c *ClearCmd) Run(cli *CLI) error {
	if !c.Yes {
		confirmed := false
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title("Clear all session data?").
					Description("Totals, streak and history are removed. Profile and goal are kept.").
					Affirmative("Clear").
					Negative("Cancel").
					Value(&confirmed),
			),
		)
		if err := form.Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				fmt.Println("Cancelled.")
				return nil
			}
			return fmt.Errorf("confirmation failed: %w", err)
		}
		if !confirmed {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	logging.Logger.Info("Clearing all data from the CLI")
	if err := cli.Container.Engine.ClearAllData(context.Background()); err != nil {
		return fmt.Errorf("failed to clear data: %w", err)
	}
	fmt.Println("All session data cleared.")
	return nil
}
