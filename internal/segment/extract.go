package segment

import (
	"github.com/takak2166/chapterseg/internal/models"
)

// Extract returns the run of blocks that forms the section with the given id:
// its level-1 header and everything up to, not including, the next one.
//
// If no level-1 header carries targetID the original slice is returned unchanged.
// Errors carry the block index but no chapter; use Builder.Extract for that.
func Extract(blocks []models.Block, targetID string) ([]models.Block, error) {
	return Builder{}.Extract(blocks, targetID)
}

// Extract is the package-level Extract with b.Chapter attached to errors.
func (b Builder) Extract(blocks []models.Block, targetID string) ([]models.Block, error) {
	if targetID == "" {
		return blocks, nil
	}

	start := -1
	for i, blk := range blocks {
		if blk.ID != targetID {
			continue
		}
		isHeading, err := blk.IsSectionHeading()
		if err != nil {
			return nil, &BlockError{Chapter: b.Chapter, Index: i, Err: err}
		}
		if isHeading {
			start = i
			break
		}
	}
	if start < 0 {
		return blocks, nil
	}

	run := []models.Block{blocks[start]}
	for i := start + 1; i < len(blocks); i++ {
		isHeading, err := blocks[i].IsSectionHeading()
		if err != nil {
			return nil, &BlockError{Chapter: b.Chapter, Index: i, Err: err}
		}
		if isHeading {
			break
		}
		run = append(run, blocks[i])
	}
	return run, nil
}
