package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/takak2166/chapterseg/internal/chapter"
	"github.com/takak2166/chapterseg/internal/config"
	"github.com/takak2166/chapterseg/internal/logger"
	"github.com/takak2166/chapterseg/internal/parser"
	"github.com/takak2166/chapterseg/internal/segment"
)

var (
	logLevel  string
	logFormat string

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "chapterseg",
	Short: "Split chapter content into sections",
	Long: `chapterseg reads chapter content (editorjs JSON or markdown), splits it into
sections at every level-1 header, extracts single sections and binds 3D models
to them.

Environment:
  LOG_LEVEL               log level (default info)
  LOG_FORMAT              text or json (default text)
  PLACEHOLDER_TEXT        heading text for content before the first heading
  NOTION_API_KEY          required by publish
  NOTION_PARENT_PAGE_ID   required by publish`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		cfg = loaded

		if cmd.Flags().Changed("log-level") {
			cfg.LogLevel = logLevel
		}
		if cmd.Flags().Changed("log-format") {
			cfg.LogFormat = logFormat
		}
		if err := logger.Init(cfg.LogLevel); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		if err := logger.SetFormat(cfg.LogFormat); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger.SetOutput(cmd.ErrOrStderr())
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "log format (text, json)")
}

// Execute runs the command tree
func Execute() error {
	return rootCmd.Execute()
}

// openChapter returns a service serving the chapter file at path, and the
// chapter id to query it with
func openChapter(path string) (*chapter.Service, string) {
	builder := segment.Builder{}
	if cfg != nil {
		builder.PlaceholderText = cfg.PlaceholderText
	}

	source := chapter.NewPathSource(path, parser.New())
	return chapter.NewService(source, nil, builder), source.ID()
}
