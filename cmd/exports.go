package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var exportsCmd = &cobra.Command{
	Use:   "exports",
	Short: "List exported content packages",
	Long:  `List the export directories in the output directory and, when configured, the GCS bucket.`,
	Args:  cobra.NoArgs,
	RunE:  runExports,
}

func init() {
	rootCmd.AddCommand(exportsCmd)
}

func runExports(cmd *cobra.Command, args []string) error {
	service, err := loadService(cmd.Context())
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	defer func() { _ = service.Close() }()

	listing, err := service.Exports(cmd.Context())
	if err != nil {
		return err
	}

	locations := make([]string, 0, len(listing))
	for loc := range listing {
		locations = append(locations, loc)
	}
	sort.Strings(locations)

	for _, loc := range locations {
		dirs := listing[loc]
		fmt.Println(titleStyle.Render(fmt.Sprintf("%s (%d)", loc, len(dirs))))
		for _, dir := range dirs {
			fmt.Printf("  %s\n", dir)
		}
	}
	return nil
}
