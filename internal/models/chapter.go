package models

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Block types the engine and its collaborators read
const (
	BlockTypeHeader    = "header"
	BlockTypeParagraph = "paragraph"
	BlockTypeList      = "list"
	BlockTypeCode      = "code"
	BlockTypeQuote     = "quote"
	BlockTypeDelimiter = "delimiter"
	BlockTypeImage     = "image"
)

// SectionLevel is the header level that starts a new section
const SectionLevel = 1

var (
	ErrMissingBlocks      = errors.New("chapter content has no blocks array")
	ErrMissingType        = errors.New("block has no type")
	ErrMissingHeadingText = errors.New("header block has no text")
	ErrInvalidHeaderData  = errors.New("header block data is malformed")
)

// Chapter represents the decoded content of one chapter
type Chapter struct {
	ID      string  `json:"-"`
	Time    int64   `json:"time,omitempty"`
	Version string  `json:"version,omitempty"`
	Blocks  []Block `json:"blocks"`
}

// Block represents one editorjs-style content block
type Block struct {
	ID   string          `json:"id,omitempty"`
	Type string          `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

// HeaderData is the payload of a header block
type HeaderData struct {
	Level   int     `json:"level"`
	Text    *string `json:"text"`
	ModelID *string `json:"modelId,omitempty"`
}

// Section groups a level-1 header with the blocks up to the next one
type Section struct {
	Heading Block   `json:"heading"`
	Content []Block `json:"content"`
}

// SectionSummary is the navigation projection of a section heading
type SectionSummary struct {
	ID      string  `json:"id"`
	Text    string  `json:"text"`
	ModelID *string `json:"modelId"`
}

// IsHeader reports whether the block is a header of any level
func (b Block) IsHeader() bool {
	return b.Type == BlockTypeHeader
}

// Header decodes the header payload of the block
func (b Block) Header() (HeaderData, error) {
	var h HeaderData
	if !b.IsHeader() {
		return h, fmt.Errorf("block type %q is not a header", b.Type)
	}
	if len(b.Data) == 0 {
		return h, ErrInvalidHeaderData
	}
	if err := json.Unmarshal(b.Data, &h); err != nil {
		return h, fmt.Errorf("%w: %v", ErrInvalidHeaderData, err)
	}
	return h, nil
}

// IsSectionHeading reports whether the block starts a section.
// Non-header blocks and headers of other levels return false without error.
func (b Block) IsSectionHeading() (bool, error) {
	if !b.IsHeader() {
		return false, nil
	}
	h, err := b.Header()
	if err != nil {
		return false, err
	}
	return h.Level == SectionLevel, nil
}

// NewHeader builds a header block
func NewHeader(id string, level int, text string) Block {
	data, _ := json.Marshal(HeaderData{Level: level, Text: &text})
	return Block{ID: id, Type: BlockTypeHeader, Data: data}
}

// NewParagraph builds a paragraph block
func NewParagraph(id, text string) Block {
	data, _ := json.Marshal(TextData{Text: text})
	return Block{ID: id, Type: BlockTypeParagraph, Data: data}
}

// TextData is the payload shared by paragraph and quote blocks
type TextData struct {
	Text string `json:"text"`
}

// ListData is the payload of a list block
type ListData struct {
	Style string   `json:"style"`
	Items []string `json:"items"`
}

// CodeData is the payload of a code block
type CodeData struct {
	Code     string `json:"code"`
	Language string `json:"language,omitempty"`
}

// TextOf returns the text payload of paragraph and quote blocks, if any
func (b Block) TextOf() (string, bool) {
	if len(b.Data) == 0 {
		return "", false
	}
	var d TextData
	if err := json.Unmarshal(b.Data, &d); err != nil {
		return "", false
	}
	return d.Text, true
}

// NewModelHeader builds a level-1 header that references a model
func NewModelHeader(id, text, modelID string) Block {
	data, _ := json.Marshal(HeaderData{Level: SectionLevel, Text: &text, ModelID: &modelID})
	return Block{ID: id, Type: BlockTypeHeader, Data: data}
}
