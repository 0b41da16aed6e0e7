package segment

import (
	"fmt"

	"github.com/takak2166/chapterseg/internal/models"
)

// Index projects each section heading to a summary.
// A heading without text is an error.
func Index(sections []models.Section) ([]models.SectionSummary, error) {
	summaries := make([]models.SectionSummary, 0, len(sections))
	for i, s := range sections {
		summary, err := summarize(s.Heading)
		if err != nil {
			return nil, fmt.Errorf("section %d: %w", i, err)
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

func summarize(heading models.Block) (models.SectionSummary, error) {
	h, err := heading.Header()
	if err != nil {
		return models.SectionSummary{}, err
	}
	if h.Text == nil {
		return models.SectionSummary{}, models.ErrMissingHeadingText
	}
	return models.SectionSummary{
		ID:      heading.ID,
		Text:    *h.Text,
		ModelID: h.ModelID,
	}, nil
}

// OutlineEntry is one collapsible navigation group
type OutlineEntry struct {
	Section     models.SectionSummary   `json:"section"`
	Subheadings []models.SectionSummary `json:"subheadings"`
}

// Outline lists every section along with the lower-level headers in its content.
func Outline(sections []models.Section) ([]OutlineEntry, error) {
	entries := make([]OutlineEntry, 0, len(sections))
	for i, s := range sections {
		summary, err := summarize(s.Heading)
		if err != nil {
			return nil, fmt.Errorf("section %d: %w", i, err)
		}
		entry := OutlineEntry{Section: summary, Subheadings: []models.SectionSummary{}}
		for j, blk := range s.Content {
			if !blk.IsHeader() {
				continue
			}
			sub, err := summarize(blk)
			if err != nil {
				return nil, fmt.Errorf("section %d: content block %d: %w", i, j, err)
			}
			entry.Subheadings = append(entry.Subheadings, sub)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
