package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexanderramin/jornada/internal/activity"
	"github.com/alexanderramin/jornada/internal/auth"
	"github.com/alexanderramin/jornada/internal/cli"
	"github.com/alexanderramin/jornada/internal/db"
	"github.com/alexanderramin/jornada/internal/llm"
	"github.com/alexanderramin/jornada/internal/repository"
	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// A .env next to the binary is optional.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading .env: %w", err)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("finding home directory: %w", err)
	}

	// Determine DB path: env var or default ~/.jornada/jornada.db
	dbPath := os.Getenv("JORNADA_DB")
	if dbPath == "" {
		dbPath = filepath.Join(home, ".jornada", "jornada.db")
	}

	isInteractive := func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// The TUI owns the terminal, so its logs go to a file.
	logPath := os.Getenv("JORNADA_LOG_FILE")
	if logPath == "" && tuiRequested(os.Args[1:], isInteractive()) {
		logPath = filepath.Join(home, ".jornada", "jornada.log")
	}
	logger, closeLog, err := newLogger(logPath, os.Getenv("JORNADA_LOG_LEVEL"))
	if err != nil {
		return err
	}
	defer closeLog()

	// Open database
	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	authCfg := auth.LoadConfig()
	verifier, err := auth.NewMockVerifier(authCfg)
	if err != nil {
		return fmt.Errorf("building verifier: %w", err)
	}
	store := auth.NewStore(context.Background(), repository.NewSQLiteKVRepo(database), verifier,
		auth.WithDelay(authCfg.Delay),
		auth.WithLogger(logger),
	)

	catalog, err := activity.LoadCatalog()
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}

	app := &cli.App{
		Auth:          store,
		Catalog:       catalog,
		Logger:        logger,
		IsInteractive: isInteractive,
	}

	// Wire the ask client only when enabled.
	askCfg := llm.LoadConfig()
	if askCfg.Enabled {
		app.Ask = llm.NewClient(askCfg, llm.NewLogObserver(logger))
	}

	// Execute root command
	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}

// tuiRequested reports whether these arguments launch the TUI.
func tuiRequested(args []string, interactive bool) bool {
	if len(args) == 0 {
		return interactive
	}
	return args[0] == "tui"
}

// newLogger builds the process logger. An empty path logs to stderr.
func newLogger(path, level string) (*slog.Logger, func(), error) {
	var lvl slog.Level
	if level != "" {
		if err := lvl.UnmarshalText([]byte(strings.ToUpper(level))); err != nil {
			return nil, nil, fmt.Errorf("invalid JORNADA_LOG_LEVEL %q: %w", level, err)
		}
	}

	var w io.Writer = os.Stderr
	closeFn := func() {}
	if path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("creating log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file: %w", err)
		}
		w = f
		closeFn = func() { _ = f.Close() }
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), closeFn, nil
}
