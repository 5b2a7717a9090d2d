package cmd

import (
	"context"
	"log/slog"
	"os"

	"trendclip/internal/app"
	"trendclip/pkg/config"

	"github.com/spf13/cobra"
)

var (
	verbose     bool
	noClipboard bool
)

var rootCmd = &cobra.Command{
	Use:   "trendclip",
	Short: "Turn trending news into short-video content",
	Long: `TrendClip walks you from a news category to a trending headline, a video
length and finally a generated script with graphics and thumbnail ideas.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&noClipboard, "no-clipboard", false, "Skip the system clipboard when copying")
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		setupLogger()
	}
}

func Execute() error {
	return rootCmd.Execute()
}

func setupLogger() {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

func loadService(ctx context.Context) (*app.Service, error) {
	cfg, err := config.Load(ctx)
	if err != nil {
		return nil, err
	}
	return app.BuildService(ctx, cfg, app.BuildOptions{NoClipboard: noClipboard})
}
