// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "rupa-chimney-web",
	Short: "Rupa Chimney website and admin back office",
	Long: `Rupa Chimney website serves the public marketing pages for the
brick and chimney works and provides the JSON back office used by the
administrator to manage services, gallery images, enquiries and orders.`,
	Args: cobra.OnlyValidArgs,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
