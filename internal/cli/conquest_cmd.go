package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/jornada/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newConquestCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "conquest",
		Short: "Print the achievements and the XP they earned",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Catalog == nil {
				return errors.New("no catalog loaded")
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatConquest(app.Catalog.Achievements))
			return nil
		},
	}
}
