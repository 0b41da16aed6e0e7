package cli

import (
	"github.com/spf13/cobra"

	"github.com/takak2166/chapterseg/internal/manifest"
)

var associateModels string

var associateCmd = &cobra.Command{
	Use:   "associate <file>",
	Short: "Bind the models of a manifest to the sections of a chapter",
	Long: `Bind the models of a manifest to the sections of a chapter.

The first model of the manifest is bound to the "main" key. Sections whose
heading carries a matching modelId are bound to that model.`,
	Args: cobra.ExactArgs(1),
	RunE: runAssociate,
}

func init() {
	associateCmd.Flags().StringVarP(&associateModels, "models", "m", "", "model manifest (.yaml or .json)")
	_ = associateCmd.MarkFlagRequired("models")

	rootCmd.AddCommand(associateCmd)
}

func runAssociate(cmd *cobra.Command, args []string) error {
	m, err := manifest.Load(associateModels)
	if err != nil {
		return err
	}

	svc, id := openChapter(args[0])
	assoc, err := svc.Models(cmd.Context(), id, m.Models)
	if err != nil {
		return err
	}
	return writeJSON(cmd, assoc)
}
