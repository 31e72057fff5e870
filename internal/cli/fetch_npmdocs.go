// internal/cli/fetch_npmdocs.go
package pkgdocs

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/mwiater/pkgdocs/internal/registry"
	"github.com/mwiater/pkgdocs/internal/render"
	"github.com/spf13/cobra"
)

// fetchNPMDocsCmd implements 'fetch npmdocs', which looks up a package on the
// npm registry and prints its rendered Markdown document.
var fetchNPMDocsCmd = &cobra.Command{
	Use:   "npmdocs <package>",
	Short: "Fetch documentation for an npm package",
	Long:  "The 'npmdocs' subcommand fetches metadata for the named package from the npm registry and prints it as a single Markdown document.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfig()
		name := args[0]

		client := registry.NewNPMClient(cfg.NPMBaseURL(), cfg.RequestTimeout())

		ctx, cancel := context.WithTimeout(cmd.Context(), cfg.RequestTimeout())
		defer cancel()

		pkg, err := client.Fetch(ctx, name)
		if err != nil {
			return fmt.Errorf("fetch npm docs: %w", err)
		}

		doc, err := render.NPMDocument(pkg, name)
		if err != nil {
			return fmt.Errorf("render npm docs: %w", err)
		}

		color.New(color.FgGreen).Fprintf(cmd.ErrOrStderr(), "Fetched %q from %s\n", name, cfg.NPMBaseURL())
		fmt.Fprint(cmd.OutOrStdout(), doc)
		return nil
	},
}

func init() {
	fetchCmd.AddCommand(fetchNPMDocsCmd)
}
