package chapter

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/takak2166/chapterseg/internal/models"
	"github.com/takak2166/chapterseg/internal/parser"
)

// ErrNotFound is returned when a source has no chapter with the requested id
var ErrNotFound = errors.New("chapter not found")

//go:generate mockgen -source=source.go -destination=mock_chapter/mock_chapter.go -package=mock_chapter
type Source interface {
	Load(ctx context.Context, id string) (*models.Chapter, error)
}

// FileSource loads chapters from <Dir>/<id>.json or <Dir>/<id>.md
type FileSource struct {
	Dir    string
	Parser *parser.Parser
}

// NewFileSource creates a FileSource reading from dir
func NewFileSource(dir string, p *parser.Parser) *FileSource {
	if p == nil {
		p = parser.New()
	}
	return &FileSource{Dir: dir, Parser: p}
}

// Load finds and parses the chapter file
func (s *FileSource) Load(ctx context.Context, id string) (*models.Chapter, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if id == "" || id != filepath.Base(id) {
		return nil, fmt.Errorf("invalid chapter id %q", id)
	}

	for _, ext := range []string{".json", ".md", ".markdown"} {
		path := filepath.Join(s.Dir, id+ext)
		if _, err := os.Stat(path); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("failed to stat chapter file: %w", err)
		}
		return s.Parser.ParseFile(path)
	}

	return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// PathSource serves the single chapter file at Path. Its chapter id is the
// file name without extension.
type PathSource struct {
	Path   string
	Parser *parser.Parser
}

// NewPathSource creates a PathSource for path
func NewPathSource(path string, p *parser.Parser) *PathSource {
	if p == nil {
		p = parser.New()
	}
	return &PathSource{Path: path, Parser: p}
}

// ID returns the chapter id of the file
func (s *PathSource) ID() string {
	base := filepath.Base(s.Path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Load parses the file when id matches it
func (s *PathSource) Load(ctx context.Context, id string) (*models.Chapter, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if id != s.ID() {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return s.Parser.ParseFile(s.Path)
}
