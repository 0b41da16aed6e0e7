package segment

import "fmt"

// BlockError locates a malformed block inside a chapter
type BlockError struct {
	Chapter string
	Index   int
	Err     error
}

func (e *BlockError) Error() string {
	if e.Chapter == "" {
		return fmt.Sprintf("block %d: %v", e.Index, e.Err)
	}
	return fmt.Sprintf("chapter %s: block %d: %v", e.Chapter, e.Index, e.Err)
}

func (e *BlockError) Unwrap() error {
	return e.Err
}
