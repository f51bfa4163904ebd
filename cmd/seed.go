package main

import (
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/jekabolt/affiliate-dashboard/internal/seed"
	"github.com/jekabolt/affiliate-dashboard/internal/store"
)

var (
	seedCmd = &cobra.Command{
		Use:   "seed",
		Short: "Load generated demo traffic into an empty database",
		RunE:  seedDemo,
	}

	seedOpts seed.Options
)

func init() {
	seedCmd.Flags().IntVar(&seedOpts.Publishers, "publishers", 3, "number of publishers")
	seedCmd.Flags().IntVar(&seedOpts.Offers, "offers", 4, "number of offers")
	seedCmd.Flags().IntVar(&seedOpts.Days, "days", 60, "days of history ending now")
	seedCmd.Flags().IntVar(&seedOpts.ClicksPerDay, "clicks-per-day", 40, "average clicks per publisher, offer and day")
	seedCmd.Flags().Uint64Var(&seedOpts.Seed, "seed", 1, "random seed")
}

func seedDemo(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	s, err := store.New(ctx, cfg.DB)
	if err != nil {
		return err
	}
	defer s.Close()

	d := seed.Generate(time.Now().UTC(), seedOpts)
	if err := seed.Load(ctx, s, d); err != nil {
		return err
	}
	slog.Default().InfoContext(ctx, "demo data loaded",
		slog.Int("offers", len(d.Offers)),
		slog.Int("publishers", len(d.Publishers)),
		slog.Int("clicks", len(d.Clicks)),
		slog.Int("conversions", len(d.Conversions)),
	)
	return nil
}
