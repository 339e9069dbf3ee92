// Package cli provides the tour launch command.
package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/showcase/internal/db"
	"github.com/opencode-ai/showcase/internal/events"
	"github.com/opencode-ai/showcase/internal/tours"
	"github.com/opencode-ai/showcase/internal/tui"
)

const defaultTour = "welcome"

var (
	runForce   bool
	runSection bool
	runVars    map[string]string
)

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().BoolVarP(&runForce, "force", "f", false, "run the tour even if it was already completed")
	runCmd.Flags().BoolVar(&runSection, "section", false, "run over the document panel instead of the whole screen")
	runCmd.Flags().StringToStringVar(&runVars, "var", nil, "caption variable (key=value, repeatable)")
}

var runCmd = &cobra.Command{
	Use:   "run [tour]",
	Short: "Run a guided tour",
	Long: `Run a guided tour in the terminal. Without a name the built-in
welcome tour runs. A tour that was already completed is skipped unless
--force is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		name := defaultTour
		if len(args) == 1 {
			name = strings.TrimSpace(args[0])
		}
		return runTour(ctx, name)
	},
}

func runTour(ctx context.Context, name string) error {
	tour, err := tours.Find(projectDir(), name)
	if err != nil {
		return &PreflightError{
			Message:  err.Error(),
			Hint:     "Tours are loaded from .showcase/tours, the user config directory and the built-in set",
			NextStep: "showcase tours list",
		}
	}

	steps, err := tours.RenderTour(tour, runVars)
	if err != nil {
		return err
	}

	database, err := openDatabase(ctx)
	if err != nil {
		return err
	}
	defer database.Close()

	progressRepo := db.NewProgressRepository(database)
	completed, err := progressRepo.IsCompleted(ctx, tour.Name)
	if err != nil {
		return fmt.Errorf("failed to read tour progress: %w", err)
	}
	if completed && !runForce {
		logger.Info().Str("tour", tour.Name).Msg("tour already completed, skipping")
		fmt.Fprintf(os.Stderr, "Tour %q was already completed. Use --force to run it again.\n", tour.Name)
		return nil
	}

	if IsNonInteractive() {
		return &PreflightError{
			Message:  "tours require an interactive terminal",
			Hint:     "Run without --non-interactive and with a TTY",
			NextStep: fmt.Sprintf("showcase tours describe %s", tour.Name),
		}
	}

	eventRepo := db.NewEventRepository(database)
	recorder := events.NewRecorder(ctx, tour.Name, len(steps), eventRepo, progressRepo)

	cfg := GetConfig()
	logger.Info().Str("tour", tour.Name).Int("steps", len(steps)).Bool("section", runSection).Msg("running tour")
	err = tui.Run(tui.Config{
		Theme:              cfg.TUI.Theme,
		Mouse:              cfg.TUI.Mouse,
		Tour:               tour,
		Steps:              steps,
		Section:            runSection,
		Radius:             cfg.Tour.Radius,
		ClickInCircle:      cfg.Tour.ClickInCircle,
		ScrollLinesPerTick: cfg.Tour.ScrollLinesPerTick,
		ScrollTick:         cfg.Tour.ScrollTick(),
		Listener:           recorder,
	})
	if err != nil {
		if logErr := events.LogError(ctx, eventRepo, "tui", err); logErr != nil {
			logger.Warn().Err(logErr).Msg("failed to record error event")
		}
		return fmt.Errorf("tour %q failed: %w", tour.Name, err)
	}
	return nil
}
