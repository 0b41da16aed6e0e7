package parser

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/takak2166/chapterseg/internal/idgen"
	"github.com/takak2166/chapterseg/internal/importer"
	"github.com/takak2166/chapterseg/internal/logger"
	"github.com/takak2166/chapterseg/internal/models"
	"github.com/takak2166/chapterseg/internal/segment"
)

// Parser decodes raw chapter content into models.Chapter
type Parser struct {
	newID    idgen.Generator
	markdown *importer.MarkdownImporter
}

// Option configures a Parser
type Option func(*Parser)

// WithIDGenerator sets the generator used for headings without an id
func WithIDGenerator(gen idgen.Generator) Option {
	return func(p *Parser) {
		p.newID = gen
	}
}

// New creates a new Parser instance
func New(opts ...Option) *Parser {
	p := &Parser{
		newID:    idgen.Prefixed(segment.FallbackPrefix, idgen.UUID()),
		markdown: importer.NewMarkdownImporter(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

type wireChapter struct {
	Time    int64           `json:"time,omitempty"`
	Version string          `json:"version,omitempty"`
	Blocks  *[]models.Block `json:"blocks"`
}

// Parse decodes the JSON content of a chapter.
// Level-1 headers without an id get a fallback id that stays fixed for the
// lifetime of the returned Chapter.
func (p *Parser) Parse(chapterID string, raw []byte) (*models.Chapter, error) {
	var w wireChapter
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, fmt.Errorf("chapter %s: failed to parse JSON: %w", chapterID, err)
	}
	if w.Blocks == nil {
		return nil, fmt.Errorf("chapter %s: %w", chapterID, models.ErrMissingBlocks)
	}

	return p.newChapter(chapterID, *w.Blocks, w.Time, w.Version)
}

// ParseMarkdown imports a markdown document as a chapter
func (p *Parser) ParseMarkdown(chapterID string, src []byte) (*models.Chapter, error) {
	blocks, err := p.markdown.Import(src)
	if err != nil {
		return nil, fmt.Errorf("chapter %s: failed to import markdown: %w", chapterID, err)
	}
	return p.newChapter(chapterID, blocks, 0, "")
}

func (p *Parser) newChapter(chapterID string, blocks []models.Block, ts int64, version string) (*models.Chapter, error) {
	for i, b := range blocks {
		if b.Type == "" {
			return nil, &segment.BlockError{Chapter: chapterID, Index: i, Err: models.ErrMissingType}
		}
	}

	b := segment.Builder{NewID: p.newID, Chapter: chapterID}
	withIDs, err := b.AssignHeadingIDs(blocks)
	if err != nil {
		return nil, err
	}

	return &models.Chapter{
		ID:      chapterID,
		Time:    ts,
		Version: version,
		Blocks:  withIDs,
	}, nil
}

// ParseFile reads a chapter from disk. Markdown files (.md, .markdown) are
// imported, everything else is decoded as JSON. The chapter id is the file
// name without extension.
func (p *Parser) ParseFile(path string) (*models.Chapter, error) {
	logger.Debug("Reading chapter file", logger.Fields{
		"filepath": path,
	})

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	chapterID := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	var chapter *models.Chapter
	switch ext {
	case ".md", ".markdown":
		chapter, err = p.ParseMarkdown(chapterID, data)
	default:
		chapter, err = p.Parse(chapterID, data)
	}
	if err != nil {
		return nil, err
	}

	logger.Info("Successfully parsed chapter file", logger.Fields{
		"chapter":      chapterID,
		"blocks_count": len(chapter.Blocks),
	})

	return chapter, nil
}

// Marshal re-serialises blocks in the chapter wire format
func Marshal(blocks []models.Block) ([]byte, error) {
	if blocks == nil {
		blocks = []models.Block{}
	}
	data, err := json.Marshal(struct {
		Blocks []models.Block `json:"blocks"`
	}{Blocks: blocks})
	if err != nil {
		return nil, fmt.Errorf("failed to encode blocks: %w", err)
	}
	return data, nil
}
