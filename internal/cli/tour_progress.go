// Package cli provides tour progress commands.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/showcase/internal/db"
	"github.com/opencode-ai/showcase/internal/models"
	"github.com/opencode-ai/showcase/internal/tui/components"
	"github.com/opencode-ai/showcase/internal/tui/styles"
)

var (
	progressResetAll bool
	progressResetYes bool

	progressEventsLimit int
)

func init() {
	rootCmd.AddCommand(progressCmd)
	progressCmd.AddCommand(progressListCmd)
	progressCmd.AddCommand(progressResetCmd)
	progressCmd.AddCommand(progressEventsCmd)

	progressResetCmd.Flags().BoolVar(&progressResetAll, "all", false, "reset every tour")
	progressResetCmd.Flags().BoolVarP(&progressResetYes, "yes", "y", false, "skip confirmation")

	progressEventsCmd.Flags().IntVarP(&progressEventsLimit, "limit", "n", 50, "maximum events to show")
}

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Inspect and reset tour progress",
	Long:  "Show which tours have been run and completed, and reset them so they run again.",
}

var progressListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded tour progress",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		database, err := openDatabase(ctx)
		if err != nil {
			return err
		}
		defer database.Close()

		list, err := db.NewProgressRepository(database).List(ctx)
		if err != nil {
			return fmt.Errorf("failed to list progress: %w", err)
		}

		if IsJSONOutput() || IsJSONLOutput() {
			return WriteOutput(os.Stdout, list)
		}

		if len(list) == 0 {
			fmt.Println(components.EmptyProgress().Render(styles.DefaultStyles()))
			return nil
		}

		return writeTable(os.Stdout, []string{"TOUR", "RUNS", "LAST RUN", "STATUS", "COMPLETED"}, progressRows(list))
	},
}

var progressResetCmd = &cobra.Command{
	Use:   "reset [tour]",
	Short: "Reset progress so a tour runs again",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		tour := ""
		if len(args) == 1 {
			tour = strings.TrimSpace(args[0])
		}
		if tour == "" && !progressResetAll {
			return errors.New("name a tour or pass --all")
		}
		if tour != "" && progressResetAll {
			return errors.New("--all cannot be combined with a tour name")
		}
		if progressResetAll && !progressResetYes {
			if !confirm("Reset progress for every tour?") {
				return errors.New("reset aborted (use --yes to skip the prompt)")
			}
		}

		database, err := openDatabase(ctx)
		if err != nil {
			return err
		}
		defer database.Close()

		removed, err := db.NewProgressRepository(database).Reset(ctx, tour)
		if err != nil {
			return fmt.Errorf("failed to reset progress: %w", err)
		}
		logger.Info().Str("tour", tour).Int("removed", removed).Msg("progress reset")

		if IsJSONOutput() || IsJSONLOutput() {
			return WriteOutput(os.Stdout, map[string]any{"tour": tour, "removed": removed})
		}
		if tour == "" {
			fmt.Printf("Reset progress for %d tours\n", removed)
		} else if removed == 0 {
			fmt.Printf("No progress recorded for %q\n", tour)
		} else {
			fmt.Printf("Reset progress for %q\n", tour)
		}
		return nil
	},
}

var progressEventsCmd = &cobra.Command{
	Use:   "events <tour>",
	Short: "Show recorded events for a tour",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		database, err := openDatabase(ctx)
		if err != nil {
			return err
		}
		defer database.Close()

		list, err := db.NewEventRepository(database).ListByTour(ctx, args[0], progressEventsLimit)
		if err != nil {
			return fmt.Errorf("failed to list events: %w", err)
		}

		if IsJSONOutput() || IsJSONLOutput() {
			return WriteOutput(os.Stdout, list)
		}
		if len(list) == 0 {
			fmt.Printf("No events recorded for %q\n", args[0])
			return nil
		}

		return writeTable(os.Stdout, []string{"TIME", "TYPE", "PAYLOAD"}, eventRows(list))
	},
}

func progressRows(list []*models.TourProgress) [][]string {
	rows := make([][]string, 0, len(list))
	for _, item := range list {
		completed := "--"
		if item.CompletedAt != nil {
			completed = item.CompletedAt.Local().Format("2006-01-02 15:04")
		}
		rows = append(rows, []string{
			item.Tour,
			fmt.Sprintf("%d", item.Runs),
			item.LastRunAt.Local().Format("2006-01-02 15:04"),
			formatTourStatus(item),
			completed,
		})
	}
	return rows
}

func eventRows(list []*models.Event) [][]string {
	rows := make([][]string, 0, len(list))
	for _, event := range list {
		rows = append(rows, []string{
			event.Timestamp.Local().Format("2006-01-02 15:04:05"),
			formatEventType(event.Type),
			truncateText(string(event.Payload), 60),
		})
	}
	return rows
}
