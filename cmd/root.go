package cmd

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/iburimskiy/charro-ambient/internal/config"
	"github.com/iburimskiy/charro-ambient/internal/field"
	"github.com/iburimskiy/charro-ambient/internal/random"
)

var (
	cfgFile string
	verbose bool
	variant string
	seed    uint64
)

var rootCmd = &cobra.Command{
	Use:   "charro",
	Short: "Charro site with its ambient particle field",
	Long: `Charro renders the Charro landing page and services showcase with the
drifting particle field behind the hero, either in a desktop window or in
the terminal.`,
	RunE: runWindow,
}

func Execute() error {
	return rootCmd.ExecuteContext(context.Background())
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "charro.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&variant, "variant", "", "field variant (geometric or dots)")
	rootCmd.PersistentFlags().Uint64Var(&seed, "seed", 0, "particle seed, 0 picks a random one")
}

// session is what every rendering command starts from.
type session struct {
	cfg    *config.Config
	logger *log.Logger
	hero   *field.Renderer
}

func newSession(cmd *cobra.Command) (*session, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	flags := cmd.Flags()
	if flags.Changed("variant") {
		cfg.Variant = variant
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	fc, err := cfg.Field()
	if err != nil {
		return nil, err
	}
	rng, used, err := random.New(cfg.Seed)
	if err != nil {
		return nil, fmt.Errorf("seeding particles: %w", err)
	}

	logger := newLogger()
	logger.Printf("variant %s, seed %d", cfg.Variant, used)

	return &session{cfg: cfg, logger: logger, hero: field.NewRenderer(fc, rng)}, nil
}

func newLogger() *log.Logger {
	var w io.Writer = io.Discard
	if verbose {
		w = os.Stderr
	}
	return log.New(w, "charro: ", log.LstdFlags)
}
