// internal/cli/show_config.go
package pkgdocs

import (
	"fmt"

	"github.com/k0kubun/pp"
	"github.com/spf13/cobra"
)

// showConfigCmd implements 'show config', which prints the merged
// configuration (flags > config file > defaults).
var showConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Show config settings",
	Long:  `Show config settings ensuring that the JSON configs are loaded properly and overridden by flags accordingly.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := getConfig()
		if cfg.ConfigPath == "" {
			fmt.Println("No config file loaded (using defaults).")
		} else {
			fmt.Printf("Config file: %s\n\n", cfg.ConfigPath)
		}

		fmt.Println("Current configuration:")
		fmt.Printf("  NPM registry:  %s\n", cfg.NPMBaseURL())
		fmt.Printf("  PyPI registry: %s\n", cfg.PyPIBaseURL())
		fmt.Printf("  Timeout:       %s\n", cfg.RequestTimeout())
		fmt.Printf("  Log file:      %s\n", cfg.LogFilePath())
		fmt.Printf("  Debug:         %v\n", DebugEnabled())

		if DebugEnabled() {
			pp.Println(cfg)
		}
	},
}

func init() {
	showCmd.AddCommand(showConfigCmd)
}
