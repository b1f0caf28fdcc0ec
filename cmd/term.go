package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/iburimskiy/charro-ambient/internal/term"
)

var termCmd = &cobra.Command{
	Use:   "term",
	Short: "Draw the particle field in the terminal",
	Long:  `Runs the ambient field full screen in the terminal. Esc or q quits.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd)
		if err != nil {
			return err
		}

		screen, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("opening terminal: %w", err)
		}
		if err := screen.Init(); err != nil {
			return fmt.Errorf("initialising terminal: %w", err)
		}
		defer screen.Fini()

		h := term.NewHost(screen, s.cfg.Terminal, s.logger)
		if !s.hero.Mount(h) {
			s.logger.Printf("no drawing surface, field disabled")
		}
		defer s.hero.Unmount()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return h.Run(ctx)
	},
}

func init() {
	rootCmd.AddCommand(termCmd)
}
