package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/goliatone/go-listingwizard/internal/logging"
)

func main() {
	if err := logging.Configure(logging.LevelWarn); err != nil {
		_, _ = os.Stderr.WriteString("configure logger: " + err.Error() + "\n")
		os.Exit(1)
	}

	if err := newRootCmd(viper.New()).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd(v *viper.Viper) *cobra.Command {
	var (
		debug   bool
		cfgFile string
		cfg     = new(Config)
	)

	root := &cobra.Command{
		Use:           "listing-wizard",
		Short:         "Render and walk the rental listing wizard header",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := loadConfig(v, cfgFile)
			if err != nil {
				return err
			}
			level := loaded.LogLevel
			if debug {
				level = logging.LevelDebug
			}
			if err := logging.Configure(level); err != nil {
				return err
			}
			*cfg = loaded
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.BoolVar(&debug, "debug", false, "Enable debug logging")
	flags.StringVar(&cfgFile, "config", "", "Config file (default: ./listing-wizard.yaml)")
	flags.String("locale", "", "Locale used for labels and step titles")
	flags.String("renderer", "", "Renderer name (vanilla, tui, json)")
	flags.String("theme", "", "Theme name")
	flags.String("variant", "", "Theme variant")
	flags.String("translations", "", "YAML translations file merged over the built-in messages")
	flags.String("profiles", "", "YAML profile catalog replacing the built-in profiles")
	flags.String("themes", "", "YAML file holding theme manifests")
	flags.String("log-level", "", "Log level (debug, info, warn, error)")
	bindFlags(v, flags)

	root.AddCommand(newRenderCmd(cfg))
	root.AddCommand(newRunCmd(cfg))
	root.AddCommand(newCatalogCmd(cfg))
	root.AddCommand(newLintCmd())
	return root
}
