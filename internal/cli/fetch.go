// internal/cli/fetch.go
package pkgdocs

import "github.com/spf13/cobra"

// fetchCmd represents the 'fetch' command group and acts as a namespace
// for subcommands that retrieve package documentation from the registries.
var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Group commands for fetching package documentation",
	Long:  "The 'fetch' command groups related subcommands that fetch package documentation from upstream registries. It performs no action on its own.",
}

func init() {
	rootCmd.AddCommand(fetchCmd)
}
