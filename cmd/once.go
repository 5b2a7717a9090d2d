package cmd

import (
	"fmt"
	"log/slog"

	"trendclip/internal/app"
	"trendclip/internal/model"
	"trendclip/internal/view"
	"trendclip/internal/wizard"

	"github.com/spf13/cobra"
)

var (
	onceCategory string
	onceHeadline string
	onceLength   string
	onceExport   bool
)

var onceCmd = &cobra.Command{
	Use:   "once",
	Short: "Generate a single content package",
	Long: `Run the wizard without prompts: pick a category, a headline and a length
from flags, print the generated package and optionally export it.`,
	Args: cobra.NoArgs,
	RunE: runOnce,
}

func init() {
	onceCmd.Flags().StringVarP(&onceCategory, "category", "c", "", "Category id (see 'trendclip categories')")
	onceCmd.Flags().StringVarP(&onceHeadline, "headline", "H", "", "Headline position (1-based) or URL; defaults to the first")
	onceCmd.Flags().StringVarP(&onceLength, "length", "l", string(model.Length30s), "Video length: 15s, 30s, 1m, 2-3m or 5m+")
	onceCmd.Flags().BoolVarP(&onceExport, "export", "e", false, "Export the package after generation")
	rootCmd.AddCommand(onceCmd)
}

func runOnce(cmd *cobra.Command, args []string) error {
	length, err := model.ParseVideoLength(onceLength)
	if err != nil {
		return err
	}

	ctx := cmd.Context()

	service, err := loadService(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = service.Close() }()

	result, err := app.NewPipeline(service).Run(ctx, app.RunRequest{
		Category: onceCategory,
		Headline: onceHeadline,
		Length:   length,
		Export:   onceExport,
	})
	if err != nil {
		return err
	}

	fmt.Println(view.Title(result.Headline.Title))
	for _, tab := range wizard.Tabs() {
		fmt.Println(view.Tab(result.Package, tab))
	}

	slog.Info("Content package generated",
		"headline", result.Headline.Title,
		"length", result.Length,
		"ideas", len(result.Ideas),
	)
	for _, loc := range result.Exported {
		slog.Info("Exported", "path", loc)
	}

	return nil
}
