package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var (
	sectionsJSON    bool
	sectionsOutline bool
)

var sectionsCmd = &cobra.Command{
	Use:   "sections <file>",
	Short: "List the sections of a chapter",
	Args:  cobra.ExactArgs(1),
	RunE:  runSections,
}

func init() {
	sectionsCmd.Flags().BoolVar(&sectionsJSON, "json", false, "print JSON")
	sectionsCmd.Flags().BoolVar(&sectionsOutline, "outline", false, "include lower-level headings")

	rootCmd.AddCommand(sectionsCmd)
}

func runSections(cmd *cobra.Command, args []string) error {
	svc, id := openChapter(args[0])
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	if sectionsOutline {
		outline, err := svc.Outline(ctx, id)
		if err != nil {
			return err
		}
		if sectionsJSON {
			return writeJSON(cmd, outline)
		}
		for _, entry := range outline {
			fmt.Fprintf(out, "%s\t%s\n", entry.Section.ID, entry.Section.Text)
			for _, sub := range entry.Subheadings {
				fmt.Fprintf(out, "  %s\n", sub.Text)
			}
		}
		return nil
	}

	summaries, err := svc.Summaries(ctx, id)
	if err != nil {
		return err
	}
	if sectionsJSON {
		return writeJSON(cmd, summaries)
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTEXT\tMODEL")
	for _, s := range summaries {
		model := "-"
		if s.ModelID != nil {
			model = *s.ModelID
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", s.ID, s.Text, model)
	}
	return w.Flush()
}

func writeJSON(cmd *cobra.Command, v interface{}) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
