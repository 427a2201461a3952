// Command dashboard-tui runs the dashboard in the terminal for a single local user.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kyra-labs/internship-dashboard/internal/app"
	"github.com/kyra-labs/internship-dashboard/internal/config"
	"github.com/kyra-labs/internship-dashboard/internal/logging"
	"github.com/kyra-labs/internship-dashboard/internal/tui"
	"github.com/kyra-labs/internship-dashboard/internal/view"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// the alternate screen owns stdout, so logs go to a file when asked for
	var logOut io.Writer = io.Discard
	if cfg.TUILogFile != "" {
		f, err := os.OpenFile(cfg.TUILogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logOut = f
	}
	log := logging.New(cfg.Env, logOut)
	slog.SetDefault(log)

	ctx := context.Background()
	deps, err := app.Build(ctx, cfg, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initialising: %v\n", err)
		os.Exit(1)
	}
	defer deps.Close()

	p := tea.NewProgram(
		tui.NewApp(ctx, view.NewMachine(deps.Registrations)),
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
