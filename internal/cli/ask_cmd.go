package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/jornada/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newAskCmd(app *App) *cobra.Command {
	var contextText string

	cmd := &cobra.Command{
		Use:   `ask "<question>"`,
		Short: "Ask the assistant a question",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Ask == nil {
				return errors.New("ask is disabled. Enable with: JORNADA_ASK_ENABLED=true")
			}

			stop := func() {}
			if app.IsInteractive != nil && app.IsInteractive() {
				stop = formatter.StartSpinner(cmd.ErrOrStderr(), "Pensando...")
			}
			ans, err := app.Ask.Ask(context.Background(), args[0], contextText)
			stop()
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatAnswer(ans))
			return nil
		},
	}

	cmd.Flags().StringVar(&contextText, "context", "", "Context sent before the question")
	return cmd
}
