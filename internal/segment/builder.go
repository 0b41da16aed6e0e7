// Package segment splits a chapter's flat block sequence into sections keyed
// by level-1 headers, extracts single sections and binds models to them.
//
// Every function here is a pure transformation: inputs are never mutated and
// nothing is cached between calls.
package segment

import (
	"github.com/takak2166/chapterseg/internal/idgen"
	"github.com/takak2166/chapterseg/internal/models"
)

const (
	// FallbackPrefix starts every id synthesized for a heading
	FallbackPrefix = "fallback"
	// DefaultPlaceholderText titles the section holding content that precedes the first heading
	DefaultPlaceholderText = "content without a main heading"
)

// Builder groups blocks into sections. The zero value is ready to use.
type Builder struct {
	// NewID produces complete heading ids. Defaults to fallback-<uuid>.
	NewID idgen.Generator
	// PlaceholderText overrides DefaultPlaceholderText
	PlaceholderText string
	// Chapter is only used to give errors context
	Chapter string
}

// Build groups blocks into sections in document order.
//
// A section is emitted when the next level-1 header starts, and once more at the
// end for whatever is left. Blocks before the first level-1 header are wrapped in
// a section with a synthesized heading.
func (b Builder) Build(blocks []models.Block) ([]models.Section, error) {
	newID := b.idGenerator()

	var (
		sections []models.Section
		pending  *models.Block
		acc      []models.Block
	)

	flush := func() {
		var heading models.Block
		if pending != nil {
			heading = *pending
		} else {
			heading = b.placeholder(newID())
		}
		content := acc
		if content == nil {
			content = []models.Block{}
		}
		sections = append(sections, models.Section{Heading: heading, Content: content})
	}

	for i, blk := range blocks {
		isHeading, err := blk.IsSectionHeading()
		if err != nil {
			return nil, &BlockError{Chapter: b.Chapter, Index: i, Err: err}
		}
		if !isHeading {
			acc = append(acc, blk)
			continue
		}

		if pending != nil || len(acc) > 0 {
			flush()
		}
		heading := blk
		if heading.ID == "" {
			heading.ID = newID()
		}
		pending = &heading
		acc = nil
	}

	if pending != nil || len(acc) > 0 {
		flush()
	}

	if sections == nil {
		sections = []models.Section{}
	}
	return sections, nil
}

// AssignHeadingIDs returns a copy of blocks in which every level-1 header
// without an id carries a generated one. Other blocks are copied as is.
func (b Builder) AssignHeadingIDs(blocks []models.Block) ([]models.Block, error) {
	newID := b.idGenerator()
	out := make([]models.Block, len(blocks))
	for i, blk := range blocks {
		out[i] = blk
		if blk.ID != "" {
			continue
		}
		isHeading, err := blk.IsSectionHeading()
		if err != nil {
			return nil, &BlockError{Chapter: b.Chapter, Index: i, Err: err}
		}
		if isHeading {
			out[i].ID = newID()
		}
	}
	return out, nil
}

func (b Builder) idGenerator() idgen.Generator {
	if b.NewID != nil {
		return b.NewID
	}
	return idgen.Prefixed(FallbackPrefix, idgen.UUID())
}

func (b Builder) placeholder(id string) models.Block {
	text := b.PlaceholderText
	if text == "" {
		text = DefaultPlaceholderText
	}
	return models.NewHeader(id, models.SectionLevel, text)
}

// Build groups blocks into sections with the default Builder.
func Build(blocks []models.Block) ([]models.Section, error) {
	return Builder{}.Build(blocks)
}
