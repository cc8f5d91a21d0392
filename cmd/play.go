package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/capy/internal/config"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a quiz (same as running capy with no command)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func init() {
	config.RegisterFlags(playCmd.Flags())
}
