package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/capy/internal/quiz"
)

var bankCmd = &cobra.Command{
	Use:   "bank",
	Short: "Inspect question banks",
}

var bankValidateCmd = &cobra.Command{
	Use:   "validate <file>...",
	Short: "Check question bank files against the schema and bank rules",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		failed := 0
		for _, path := range args {
			bank, err := quiz.Load(path)
			if err != nil {
				fmt.Fprintf(out, "✗ %s\n    %v\n", path, err)
				failed++
				continue
			}
			fmt.Fprintf(out, "✓ %s (%d questions)\n", path, bank.Len())
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d banks invalid", failed, len(args))
		}
		return nil
	},
}

var bankShowCmd = &cobra.Command{
	Use:   "show [file]",
	Short: "Print a question bank (the built-in one if no file is given)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := ""
		if len(args) == 1 {
			path = args[0]
		}
		bank, err := loadBank(path)
		if err != nil {
			return err
		}

		format, _ := cmd.Flags().GetString("format")
		switch strings.ToLower(format) {
		case "json":
			return quiz.Write(cmd.OutOrStdout(), bank, quiz.FormatJSON)
		case "yaml", "yml":
			return quiz.Write(cmd.OutOrStdout(), bank, quiz.FormatYAML)
		case "text":
			printBank(cmd, bank)
			return nil
		}
		return fmt.Errorf("unknown format %q (use text, json or yaml)", format)
	},
}

func printBank(cmd *cobra.Command, bank *quiz.Bank) {
	out := cmd.OutOrStdout()
	if bank.Title != "" {
		fmt.Fprintln(out, bank.Title)
		fmt.Fprintln(out, strings.Repeat("─", len([]rune(bank.Title))))
	}
	for i, q := range bank.Questions {
		fmt.Fprintf(out, "\n%d. %s\n", i+1, q.Text)
		for j, opt := range q.Options {
			mark := " "
			if opt == q.CorrectAnswer {
				mark = "*"
			}
			fmt.Fprintf(out, "   %s %d) %s\n", mark, j+1, opt)
		}
	}
	fmt.Fprintf(out, "\n%d questions\n", bank.Len())
}

func init() {
	bankShowCmd.Flags().StringP("format", "f", "text", "Output format: text, json or yaml")

	bankCmd.AddCommand(bankValidateCmd)
	bankCmd.AddCommand(bankShowCmd)
}
