package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/takak2166/chapterseg/internal/parser"
)

var (
	extractSection string
	extractOutput  string
)

var extractCmd = &cobra.Command{
	Use:   "extract <file>",
	Short: "Print the blocks of one section",
	Long: `Print the blocks of one section as {"blocks": [...]}.

An unknown section id prints the whole chapter.`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().StringVarP(&extractSection, "section", "s", "", "section id")
	extractCmd.Flags().StringVarP(&extractOutput, "output", "o", "", "output file (default: stdout)")

	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	svc, id := openChapter(args[0])

	blocks, err := svc.Extract(cmd.Context(), id, extractSection)
	if err != nil {
		return err
	}
	data, err := parser.Marshal(blocks)
	if err != nil {
		return err
	}

	if extractOutput == "" {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return err
	}
	if err := os.WriteFile(extractOutput, data, 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
