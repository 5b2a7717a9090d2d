package cmd

import (
	"fmt"

	"trendclip/internal/wizard"

	"github.com/spf13/cobra"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the news categories",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, c := range wizard.Categories() {
			fmt.Printf("%-14s %s\n", c.ID, c.Name)
		}
	},
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
}
