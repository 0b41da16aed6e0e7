// Package importer turns markdown documents into chapter blocks.
package importer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"

	"github.com/takak2166/chapterseg/internal/models"
)

// MarkdownImporter converts markdown to blocks using goldmark.
type MarkdownImporter struct {
	md goldmark.Markdown
}

// NewMarkdownImporter creates a new importer.
func NewMarkdownImporter() *MarkdownImporter {
	return &MarkdownImporter{
		md: goldmark.New(
			goldmark.WithExtensions(extension.Strikethrough),
		),
	}
}

// Markdown converts src with a default importer.
func Markdown(src []byte) ([]models.Block, error) {
	return NewMarkdownImporter().Import(src)
}

// Import walks the top-level markdown nodes and emits one block per node.
// Blocks carry no ids; HTML blocks and link reference definitions are dropped.
func (m *MarkdownImporter) Import(src []byte) ([]models.Block, error) {
	doc := m.md.Parser().Parse(text.NewReader(src))

	blocks := []models.Block{}
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		var (
			blockType string
			payload   interface{}
		)

		switch node := n.(type) {
		case *ast.Heading:
			t := inlineText(node, src)
			blockType, payload = models.BlockTypeHeader, models.HeaderData{Level: node.Level, Text: &t}
		case *ast.Paragraph:
			t := inlineText(node, src)
			if t == "" {
				continue
			}
			blockType, payload = models.BlockTypeParagraph, models.TextData{Text: t}
		case *ast.List:
			blockType, payload = models.BlockTypeList, listData(node, src)
		case *ast.FencedCodeBlock:
			blockType, payload = models.BlockTypeCode, models.CodeData{
				Code:     rawLines(node, src),
				Language: string(node.Language(src)),
			}
		case *ast.CodeBlock:
			blockType, payload = models.BlockTypeCode, models.CodeData{Code: rawLines(node, src)}
		case *ast.Blockquote:
			blockType, payload = models.BlockTypeQuote, models.TextData{Text: inlineText(node, src)}
		case *ast.ThematicBreak:
			blockType, payload = models.BlockTypeDelimiter, struct{}{}
		default:
			continue
		}

		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to encode %s block: %w", blockType, err)
		}
		blocks = append(blocks, models.Block{Type: blockType, Data: data})
	}

	return blocks, nil
}

func listData(list *ast.List, src []byte) models.ListData {
	style := "unordered"
	if list.IsOrdered() {
		style = "ordered"
	}
	data := models.ListData{Style: style, Items: []string{}}
	for item := list.FirstChild(); item != nil; item = item.NextSibling() {
		// Nested lists are flattened into their parent item's text.
		if first := item.FirstChild(); first != nil {
			data.Items = append(data.Items, inlineText(first, src))
		} else {
			data.Items = append(data.Items, "")
		}
	}
	return data
}

// inlineText concatenates the text of every inline node under n.
func inlineText(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := c.(type) {
		case *ast.Text:
			buf.Write(t.Segment.Value(src))
			if t.SoftLineBreak() || t.HardLineBreak() {
				buf.WriteByte(' ')
			}
		case *ast.String:
			buf.Write(t.Value)
		case *ast.AutoLink:
			buf.Write(t.URL(src))
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(buf.String())
}

func rawLines(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		buf.Write(line.Value(src))
	}
	return strings.TrimRight(buf.String(), "\n")
}
