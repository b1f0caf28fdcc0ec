package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/iburimskiy/charro-ambient/internal/config"
	"github.com/iburimskiy/charro-ambient/internal/field"
)

var interactive bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or create the configuration file",
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write the default configuration",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := cfgFile
		if len(args) == 1 {
			path = args[0]
		}
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists", path)
		}
		cfg := config.DefaultConfig()
		if interactive {
			var err error
			if cfg, err = config.RunWizard(cfg); err != nil {
				return err
			}
		}
		if err := cfg.Save(path); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the resolved field variant",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("variant") {
			cfg.Variant = variant
		}
		fc, err := cfg.Field()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "variant:       %s (available: %v)\n", cfg.Variant, field.Variants())
		fmt.Fprintf(out, "density:       1 per %d px, cap %d\n", fc.Density, fc.Cap)
		fmt.Fprintf(out, "kinds:         %v\n", fc.Kinds)
		fmt.Fprintf(out, "size:          %g..%g\n", fc.SizeMin, fc.SizeMax)
		fmt.Fprintf(out, "link distance: %g\n", fc.LinkDistance)
		fmt.Fprintf(out, "palette:       %d colours\n", len(fc.Palette))
		return nil
	},
}

func init() {
	configInitCmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "ask for the main settings")
	configCmd.AddCommand(configInitCmd, configShowCmd)
	rootCmd.AddCommand(configCmd)
}
