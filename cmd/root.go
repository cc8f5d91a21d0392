package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/capy/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "capy",
	Short: "Quiz with a helper pet",
	Long:  "Capy is a multiple-choice quiz for the terminal. Its helper pet nudges you to slow down and offers worked examples when you get stuck.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	config.RegisterFlags(rootCmd.Flags())

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(bankCmd)
	rootCmd.AddCommand(versionCmd)
}
