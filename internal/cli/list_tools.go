// internal/cli/list_tools.go
package pkgdocs

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/mwiater/pkgdocs/internal/util"
	"github.com/mwiater/pkgdocs/servers/mcp/tools"
	"github.com/spf13/cobra"
)

var (
	toolNameStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	toolArgStyle  = lipgloss.NewStyle().Faint(true)
)

// listToolsCmd implements 'list tools', which prints the MCP tools the
// server exposes along with their required arguments.
var listToolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List the MCP tools exposed by the server",
	Long:  `The 'tools' subcommand prints each MCP tool the stdio server exposes, with its description and required arguments.`,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		for _, def := range tools.Definitions() {
			fmt.Fprintln(out, toolNameStyle.Render(def.Name))
			fmt.Fprintln(out, util.WrapToWidth(def.Description, 72))
			if required, ok := def.InputSchema["required"].([]string); ok {
				for _, arg := range required {
					fmt.Fprintln(out, toolArgStyle.Render("  requires: "+arg+" (string)"))
				}
			}
			fmt.Fprintln(out)
		}
	},
}

func init() {
	listCmd.AddCommand(listToolsCmd)
}
