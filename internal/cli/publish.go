package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/takak2166/chapterseg/internal/logger"
	"github.com/takak2166/chapterseg/internal/notion"
)

var (
	publishSection string
	publishTitle   string
)

var publishCmd = &cobra.Command{
	Use:   "publish <file>",
	Short: "Publish a chapter or one of its sections to Notion",
	Args:  cobra.ExactArgs(1),
	RunE:  runPublish,
}

func init() {
	publishCmd.Flags().StringVarP(&publishSection, "section", "s", "", "section id (default: whole chapter)")
	publishCmd.Flags().StringVarP(&publishTitle, "title", "t", "", "page title (default: chapter id)")

	rootCmd.AddCommand(publishCmd)
}

func runPublish(cmd *cobra.Command, args []string) error {
	client, err := notion.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize Notion client: %w", err)
	}

	svc, id := openChapter(args[0])
	blocks, err := svc.Extract(cmd.Context(), id, publishSection)
	if err != nil {
		return err
	}

	title := publishTitle
	if title == "" {
		title = id
	}

	pageID, err := client.PublishChapter(cmd.Context(), title, blocks)
	if err != nil {
		logger.Error("Failed to publish chapter", err, logger.Fields{
			"chapter": id,
			"section": publishSection,
		})
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), pageID)
	return nil
}
