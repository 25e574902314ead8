package cli

import (
	"context"
	"io"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/alexanderramin/jornada/internal/activity"
	"github.com/alexanderramin/jornada/internal/domain"
	"github.com/alexanderramin/jornada/internal/llm"
	"github.com/spf13/cobra"
)

// SessionStore is the authentication state the CLI and TUI read and drive.
type SessionStore interface {
	Session() domain.Session
	Login(ctx context.Context, email, password string) bool
	Logout()
	SetLoading(loading bool)
}

// App holds references to everything CLI commands and TUI views use.
type App struct {
	Auth    SessionStore
	Catalog *activity.Catalog
	// Ask is nil when the ask collaborator is disabled.
	Ask    llm.Asker
	Logger *slog.Logger

	// IsInteractive reports whether stdin is a terminal. When true, the
	// root command launches the TUI.
	IsInteractive func() bool

	// Rand picks an index in [0, n); Now supplies chat timestamps.
	Rand func(n int) int
	Now  func() time.Time
}

// NewRootCmd creates the top-level "jornada" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	app.applyDefaults()

	root := &cobra.Command{
		Use:           "jornada",
		Short:         "Jornada espiritual: missões, quiz, leitura e conversa",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && app.IsInteractive() {
				return runTUI(app)
			}
			return cmd.Help()
		},
	}

	root.AddCommand(
		newTUICmd(app),
		newLoginCmd(app),
		newLogoutCmd(app),
		newWhoamiCmd(app),
		newAskCmd(app),
		newJourneyCmd(app),
		newConquestCmd(app),
	)

	return root
}

func (a *App) applyDefaults() {
	if a.Logger == nil {
		a.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if a.Rand == nil {
		a.Rand = rand.IntN
	}
	if a.Now == nil {
		a.Now = time.Now
	}
}
