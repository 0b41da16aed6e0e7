package notion

import (
	"encoding/json"
	"html"
	"strings"

	"github.com/jomei/notionapi"
	"github.com/microcosm-cc/bluemonday"

	"github.com/takak2166/chapterseg/internal/logger"
	"github.com/takak2166/chapterseg/internal/models"
)

// maxRichTextLength is the Notion limit for a single rich text object
const maxRichTextLength = 2000

var stripTags = bluemonday.StrictPolicy()

// ConvertBlocks converts chapter blocks to Notion blocks.
// Blocks of unsupported types, or whose payload cannot be read, are skipped.
func ConvertBlocks(blocks []models.Block) []notionapi.Block {
	var out []notionapi.Block
	for i, b := range blocks {
		converted, ok := convertBlock(b)
		if !ok {
			logger.Debug("Skipping block", logger.Fields{
				"index": i,
				"type":  b.Type,
			})
			continue
		}
		out = append(out, converted...)
	}
	return out
}

func convertBlock(b models.Block) ([]notionapi.Block, bool) {
	switch b.Type {
	case models.BlockTypeHeader:
		h, err := b.Header()
		if err != nil || h.Text == nil {
			return nil, false
		}
		return []notionapi.Block{createHeadingBlock(plainText(*h.Text), h.Level)}, true

	case models.BlockTypeParagraph, models.BlockTypeQuote:
		text, ok := b.TextOf()
		if !ok {
			return nil, false
		}
		return []notionapi.Block{createParagraphBlock(plainText(text))}, true

	case models.BlockTypeList:
		var list models.ListData
		if err := json.Unmarshal(b.Data, &list); err != nil {
			return nil, false
		}
		items := make([]notionapi.Block, 0, len(list.Items))
		for _, item := range list.Items {
			if list.Style == "ordered" {
				items = append(items, createNumberedListBlock(plainText(item)))
			} else {
				items = append(items, createBulletedListBlock(plainText(item)))
			}
		}
		return items, true

	case models.BlockTypeCode:
		var code models.CodeData
		if err := json.Unmarshal(b.Data, &code); err != nil {
			return nil, false
		}
		return []notionapi.Block{createCodeBlock(code.Code)}, true
	}

	return nil, false
}

// plainText drops the inline HTML editorjs keeps in its text fields
func plainText(s string) string {
	return strings.TrimSpace(html.UnescapeString(stripTags.Sanitize(s)))
}

// richText splits content into rich text objects within the Notion length limit
func richText(content string) []notionapi.RichText {
	runes := []rune(content)
	if len(runes) == 0 {
		return []notionapi.RichText{{Text: &notionapi.Text{Content: ""}}}
	}

	var out []notionapi.RichText
	for len(runes) > 0 {
		n := len(runes)
		if n > maxRichTextLength {
			n = maxRichTextLength
		}
		out = append(out, notionapi.RichText{
			Text: &notionapi.Text{
				Content: string(runes[:n]),
			},
		})
		runes = runes[n:]
	}
	return out
}

// createHeadingBlock creates a heading block with the specified level
func createHeadingBlock(text string, level int) notionapi.Block {
	switch level {
	case 1:
		return &notionapi.Heading1Block{
			BasicBlock: notionapi.BasicBlock{
				Object: "block",
				Type:   notionapi.BlockTypeHeading1,
			},
			Heading1: notionapi.Heading{
				RichText: richText(text),
			},
		}
	case 2:
		return &notionapi.Heading2Block{
			BasicBlock: notionapi.BasicBlock{
				Object: "block",
				Type:   notionapi.BlockTypeHeading2,
			},
			Heading2: notionapi.Heading{
				RichText: richText(text),
			},
		}
	default:
		return &notionapi.Heading3Block{
			BasicBlock: notionapi.BasicBlock{
				Object: "block",
				Type:   notionapi.BlockTypeHeading3,
			},
			Heading3: notionapi.Heading{
				RichText: richText(text),
			},
		}
	}
}

func createCodeBlock(content string) notionapi.Block {
	return &notionapi.CodeBlock{
		BasicBlock: notionapi.BasicBlock{
			Object: "block",
			Type:   notionapi.BlockTypeCode,
		},
		Code: notionapi.Code{
			RichText: richText(content),
			Language: "plain text",
		},
	}
}

func createBulletedListBlock(text string) notionapi.Block {
	return &notionapi.BulletedListItemBlock{
		BasicBlock: notionapi.BasicBlock{
			Object: "block",
			Type:   notionapi.BlockTypeBulletedListItem,
		},
		BulletedListItem: notionapi.ListItem{
			RichText: richText(text),
		},
	}
}

func createNumberedListBlock(text string) notionapi.Block {
	return &notionapi.NumberedListItemBlock{
		BasicBlock: notionapi.BasicBlock{
			Object: "block",
			Type:   notionapi.BlockTypeNumberedListItem,
		},
		NumberedListItem: notionapi.ListItem{
			RichText: richText(text),
		},
	}
}

func createParagraphBlock(text string) notionapi.Block {
	return &notionapi.ParagraphBlock{
		BasicBlock: notionapi.BasicBlock{
			Object: "block",
			Type:   notionapi.BlockTypeParagraph,
		},
		Paragraph: notionapi.Paragraph{
			RichText: richText(text),
		},
	}
}
