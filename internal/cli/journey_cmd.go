package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/jornada/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newJourneyCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "journey [STEP]",
		Short: "Print the journey path and earned XP, or one step",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Catalog == nil {
				return errors.New("no catalog loaded")
			}
			if len(args) == 1 {
				step, ok := app.Catalog.Step(args[0])
				if !ok {
					return fmt.Errorf("unknown journey step %q", args[0])
				}
				fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatJourneyStep(step, false))
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatJourney(app.Catalog.Journey))
			return nil
		},
	}
}
