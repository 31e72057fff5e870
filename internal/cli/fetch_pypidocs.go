// internal/cli/fetch_pypidocs.go
package pkgdocs

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/mwiater/pkgdocs/internal/registry"
	"github.com/mwiater/pkgdocs/internal/render"
	"github.com/spf13/cobra"
)

// fetchPyPIDocsCmd implements 'fetch pypidocs', which looks up a project on
// the PyPI index and prints its rendered Markdown document.
var fetchPyPIDocsCmd = &cobra.Command{
	Use:   "pypidocs <package>",
	Short: "Fetch documentation for a PyPI package",
	Long:  "The 'pypidocs' subcommand fetches metadata for the named project from the PyPI JSON API and prints it as a single Markdown document.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfig()
		name := args[0]

		client := registry.NewPyPIClient(cfg.PyPIBaseURL(), cfg.RequestTimeout())

		ctx, cancel := context.WithTimeout(cmd.Context(), cfg.RequestTimeout())
		defer cancel()

		project, err := client.Fetch(ctx, name)
		if err != nil {
			return fmt.Errorf("fetch pypi docs: %w", err)
		}

		doc, err := render.PyPIDocument(project, name)
		if err != nil {
			return fmt.Errorf("render pypi docs: %w", err)
		}

		color.New(color.FgGreen).Fprintf(cmd.ErrOrStderr(), "Fetched %q from %s\n", name, cfg.PyPIBaseURL())
		fmt.Fprint(cmd.OutOrStdout(), doc)
		return nil
	},
}

func init() {
	fetchCmd.AddCommand(fetchPyPIDocsCmd)
}
