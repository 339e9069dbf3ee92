// Package cli provides tour discovery commands.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/opencode-ai/showcase/internal/db"
	"github.com/opencode-ai/showcase/internal/models"
	"github.com/opencode-ai/showcase/internal/tours"
	"github.com/opencode-ai/showcase/internal/tui/components"
	"github.com/opencode-ai/showcase/internal/tui/styles"
)

var (
	toursListTags   []string
	toursDescribeMD bool
)

func init() {
	rootCmd.AddCommand(toursCmd)
	toursCmd.AddCommand(toursListCmd)
	toursCmd.AddCommand(toursDescribeCmd)
	toursCmd.AddCommand(toursValidateCmd)

	toursListCmd.Flags().StringSliceVar(&toursListTags, "tag", nil, "only list tours with this tag (repeatable)")
	toursDescribeCmd.Flags().BoolVar(&toursDescribeMD, "markdown", false, "print raw markdown instead of rendering it")
}

var toursCmd = &cobra.Command{
	Use:   "tours",
	Short: "Inspect available tours",
	Long:  "List, describe and validate tour definitions from the project, user and built-in search paths.",
}

// tourSummary is the JSON shape of a listed tour.
type tourSummary struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Surface     string   `json:"surface"`
	Steps       int      `json:"steps"`
	Tags        []string `json:"tags,omitempty"`
	Source      string   `json:"source"`
	Completed   bool     `json:"completed"`
}

var toursListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available tours",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		all, err := tours.LoadToursFromSearchPaths(projectDir())
		if err != nil {
			return fmt.Errorf("failed to load tours: %w", err)
		}
		items := filterTours(all, toursListTags)

		progress := loadProgress(ctx)

		summaries := make([]tourSummary, 0, len(items))
		for _, tour := range items {
			summaries = append(summaries, tourSummary{
				Name:        tour.Name,
				Description: tour.Description,
				Surface:     string(surfaceOf(tour)),
				Steps:       len(tour.Steps),
				Tags:        tour.Tags,
				Source:      tour.Source,
				Completed:   progress[tour.Name].Completed(),
			})
		}

		if IsJSONOutput() || IsJSONLOutput() {
			return WriteOutput(os.Stdout, summaries)
		}

		if len(summaries) == 0 {
			fmt.Println(components.EmptyTours().Render(styles.DefaultStyles()))
			return nil
		}

		rows := make([][]string, 0, len(summaries))
		for _, summary := range summaries {
			rows = append(rows, []string{
				summary.Name,
				fmt.Sprintf("%d", summary.Steps),
				summary.Surface,
				formatTourStatus(progress[summary.Name]),
				truncateText(summary.Description, 48),
			})
		}
		return writeTable(os.Stdout, []string{"NAME", "STEPS", "SURFACE", "STATUS", "DESCRIPTION"}, rows)
	},
}

var toursDescribeCmd = &cobra.Command{
	Use:   "describe <tour>",
	Short: "Show a tour's steps",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		all, err := tours.LoadToursFromSearchPaths(projectDir())
		if err != nil {
			return fmt.Errorf("failed to load tours: %w", err)
		}
		tour := findTourByName(all, args[0])
		if tour == nil {
			return fmt.Errorf("%w: %s", tours.ErrTourNotFound, args[0])
		}

		if IsJSONOutput() || IsJSONLOutput() {
			return WriteOutput(os.Stdout, tour)
		}

		progress := loadProgress(ctx)[tour.Name]
		card := components.TourCard{
			Name:        tour.Name,
			Description: tour.Description,
			Source:      tour.Source,
			Surface:     string(surfaceOf(tour)),
			Steps:       len(tour.Steps),
			Tags:        tour.Tags,
		}
		if progress != nil {
			card.Runs = progress.Runs
			card.CompletedAt = progress.CompletedAt
		}
		fmt.Println(components.RenderTourCard(styles.BuildStyles(styles.ThemeByName(GetConfig().TUI.Theme)), card))

		markdown := describeMarkdown(tour)
		if toursDescribeMD {
			fmt.Print(markdown)
			return nil
		}

		renderer, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(80),
		)
		if err != nil {
			return fmt.Errorf("failed to create markdown renderer: %w", err)
		}
		out, err := renderer.Render(markdown)
		if err != nil {
			return fmt.Errorf("failed to render tour: %w", err)
		}
		fmt.Print(out)
		return nil
	},
}

var toursValidateCmd = &cobra.Command{
	Use:   "validate <file>...",
	Short: "Validate tour files",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var failed []string
		reporter := newProgressReporter(os.Stderr, len(args))
		for _, path := range args {
			step := reporter.Start(fmt.Sprintf("Validating %s", path))
			tour, err := tours.LoadTour(path)
			if err != nil {
				step.Fail(err)
				logger.Debug().Err(err).Str("path", path).Msg("tour invalid")
				failed = append(failed, path)
				if reporter == nil {
					fmt.Fprintf(os.Stderr, "%s %s: %v\n", colorize("ERR", colorRed), path, err)
				}
				continue
			}
			step.Done(fmt.Sprintf("%s, %d steps", tour.Name, len(tour.Steps)))
			if reporter == nil {
				fmt.Printf("%s %s (%s, %d steps)\n", colorize("OK", colorGreen), path, tour.Name, len(tour.Steps))
			}
		}

		if len(failed) > 0 {
			return errors.New("invalid tours: " + strings.Join(failed, ", "))
		}
		return nil
	},
}

// filterTours keeps tours carrying any of tags. No tags keeps everything.
func filterTours(items []*tours.Tour, tags []string) []*tours.Tour {
	if len(tags) == 0 {
		return items
	}
	wanted := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		wanted[strings.ToLower(strings.TrimSpace(tag))] = struct{}{}
	}

	out := make([]*tours.Tour, 0, len(items))
	for _, item := range items {
		for _, tag := range item.Tags {
			if _, ok := wanted[strings.ToLower(tag)]; ok {
				out = append(out, item)
				break
			}
		}
	}
	return out
}

// findTourByName matches a tour name case-insensitively.
func findTourByName(items []*tours.Tour, name string) *tours.Tour {
	for _, item := range items {
		if strings.EqualFold(item.Name, name) {
			return item
		}
	}
	return nil
}

func surfaceOf(tour *tours.Tour) tours.SurfaceKind {
	if tour.Surface == "" {
		return tours.SurfacePage
	}
	return tour.Surface
}

// loadProgress returns progress keyed by tour. A missing or unreadable
// database yields an empty map.
func loadProgress(ctx context.Context) map[string]*models.TourProgress {
	out := make(map[string]*models.TourProgress)

	database, err := openDatabase(ctx)
	if err != nil {
		logger.Debug().Err(err).Msg("progress unavailable")
		return out
	}
	defer database.Close()

	list, err := db.NewProgressRepository(database).List(ctx)
	if err != nil {
		logger.Debug().Err(err).Msg("progress unavailable")
		return out
	}
	for _, item := range list {
		out[item.Tour] = item
	}
	return out
}

func describeMarkdown(tour *tours.Tour) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", tour.Name)
	if tour.Description != "" {
		fmt.Fprintf(&b, "%s\n\n", tour.Description)
	}

	if len(tour.Variables) > 0 {
		b.WriteString("## Variables\n\n")
		for _, variable := range tour.Variables {
			line := fmt.Sprintf("- `%s`", variable.Name)
			if variable.Description != "" {
				line += ": " + variable.Description
			}
			if variable.Default != "" {
				line += fmt.Sprintf(" (default `%s`)", variable.Default)
			}
			if variable.Required {
				line += " **required**"
			}
			b.WriteString(line + "\n")
		}
		b.WriteString("\n")
	}

	b.WriteString("## Steps\n\n")
	for i, step := range tour.Steps {
		target := fmt.Sprintf("screen row %d, col %d", step.Row, step.Col)
		if step.Anchor == tours.AnchorContent {
			target = fmt.Sprintf("document line %d, col %d", step.Line, step.Col)
		}
		message := strings.TrimSpace(step.Message)
		if message == "" {
			message = "_no caption_"
		}
		fmt.Fprintf(&b, "%d. **%s**: %s\n", i+1, target, message)
	}
	return b.String()
}

func truncateText(value string, maxLen int) string {
	runes := []rune(value)
	if len(runes) <= maxLen {
		return value
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}
