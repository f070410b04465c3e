// srs-chart renders the same filtered+smoothed rating series the dashboard
// plots, but as a static PNG for reports and sharing.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dankyKang7/CollegeFootballSRSweeklyVisualized/internal/chart"
	"github.com/dankyKang7/CollegeFootballSRSweeklyVisualized/internal/dataset"
)

type chartFlags struct {
	ratingsCSV  string
	metadataCSV string
	conferences []string
	teams       []string
	seasons     []int
	window      int
	out         string
	width       int
	height      int
	title       string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	flags := &chartFlags{}

	cmd := &cobra.Command{
		Use:   "srs-chart",
		Short: "Render a static SRS rating chart from the weekly ratings CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(flags)
		},
		SilenceUsage: true,
	}

	cmd.Flags().StringVar(&flags.ratingsCSV, "ratings", "srs_24_07.csv", "path to the weekly ratings CSV")
	cmd.Flags().StringVar(&flags.metadataCSV, "metadata", "team_metadata.csv", "path to the team metadata CSV")
	cmd.Flags().StringSliceVar(&flags.conferences, "conferences", nil, "conferences to include (default all)")
	cmd.Flags().StringSliceVar(&flags.teams, "teams", nil, "teams to include (default all in selected conferences)")
	cmd.Flags().IntSliceVar(&flags.seasons, "seasons", nil, "seasons to include (default all)")
	cmd.Flags().IntVar(&flags.window, "window", 1, "moving average window in weeks (1-5)")
	cmd.Flags().StringVar(&flags.out, "out", "srs_chart.png", "output PNG path")
	cmd.Flags().IntVar(&flags.width, "width", 1280, "image width in pixels")
	cmd.Flags().IntVar(&flags.height, "height", 720, "image height in pixels")
	cmd.Flags().StringVar(&flags.title, "title", "", "chart title (default derived)")

	return cmd
}

func run(flags *chartFlags) error {
	if flags.window < 1 || flags.window > 5 {
		return fmt.Errorf("window must be between 1 and 5, got %d", flags.window)
	}

	store, err := dataset.Load(flags.ratingsCSV, flags.metadataCSV)
	if err != nil {
		return err
	}

	q := dataset.Query{
		Conferences: flags.conferences,
		Teams:       flags.teams,
		Seasons:     flags.seasons,
		Window:      flags.window,
	}
	if len(q.Conferences) == 0 {
		q.Conferences = store.Conferences()
	}
	if len(q.Teams) == 0 {
		q.Teams = store.TeamsIn(q.Conferences)
	}
	if len(q.Seasons) == 0 {
		q.Seasons = store.Seasons()
	}

	records := store.Ratings(q)
	if len(records) == 0 {
		return fmt.Errorf("no rows match the given filters")
	}

	f, err := os.Create(flags.out)
	if err != nil {
		return err
	}
	defer f.Close()

	opts := chart.PNGOptions{Width: flags.width, Height: flags.height, Title: flags.title}
	if err := chart.RenderPNG(records, store.Metadata(), f, opts); err != nil {
		return err
	}

	fmt.Printf("wrote %s (%d rows, %d teams)\n", flags.out, len(records), len(q.Teams))
	return nil
}
