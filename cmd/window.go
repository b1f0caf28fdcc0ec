package cmd

import (
	"github.com/spf13/cobra"

	"github.com/iburimskiy/charro-ambient/internal/game"
	"github.com/iburimskiy/charro-ambient/internal/sound"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Open the site in a desktop window",
	RunE:  runWindow,
}

func init() {
	rootCmd.AddCommand(windowCmd)
}

func runWindow(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	player := sound.NewPlayer(s.cfg.Sound, s.logger)
	if err := player.Init(); err != nil {
		s.logger.Printf("sound disabled: %v", err)
	}
	defer player.Close()

	if s.cfg.Sound.Ambient != "" {
		if err := player.PlayAmbient(s.cfg.Sound.Ambient); err != nil {
			s.logger.Printf("ambient track: %v", err)
		}
	}

	return game.Run(s.cfg.Window, s.hero, player, s.logger)
}
