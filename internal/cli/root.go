// internal/cli/root.go
package pkgdocs

import (
	"os"
	"strconv"

	"github.com/mwiater/pkgdocs/internal/appconfig"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile       string
	currentConfig *appconfig.Config
)

var rootCmd = &cobra.Command{
	Use:   "pkgdocs",
	Short: "pkgdocs — package documentation lookups for npm and PyPI",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// 1) Load config (file or defaults)
		cfg, err := appconfig.Load(cfgFile)
		if err != nil {
			return err
		}

		// 2) If user did NOT set a flag, copy the config value into the flag so
		//    both pflags and viper reflect the same, final value.
		if !cmd.Flags().Changed("debug") {
			_ = cmd.Flags().Set("debug", strconv.FormatBool(cfg.Debug))
		}
		cfg.Debug = viper.GetBool("debug")

		// 3) Materialize the fully merged configuration (flags > config >
		//    defaults) so other commands get a stable snapshot.
		currentConfig = &cfg
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// --config (defaults to your existing path)
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", appconfig.DefaultConfigPath, "config file (e.g., config/config.json)")

	// Persistent flags available to all commands
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug output")

	// Bind flags to Viper keys (flags override config)
	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
}

// getConfig returns the loaded application configuration for other commands.
func getConfig() appconfig.Config {
	if currentConfig == nil {
		return appconfig.Config{}
	}
	return *currentConfig
}

// DebugEnabled reflects the merged Viper state.
func DebugEnabled() bool { return viper.GetBool("debug") }
