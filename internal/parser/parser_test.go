package parser

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/takak2166/chapterseg/internal/idgen"
	"github.com/takak2166/chapterseg/internal/models"
	"github.com/takak2166/chapterseg/internal/segment"
)

const sampleChapter = `{
	"time": 1681398816,
	"version": "2.28.2",
	"blocks": [
		{"id": "p0", "type": "paragraph", "data": {"text": "orphan"}},
		{"type": "header", "data": {"level": 1, "text": "Intro"}},
		{"id": "p1", "type": "paragraph", "data": {"text": "a"}},
		{"id": "part2", "type": "header", "data": {"level": 1, "text": "Part 2", "modelId": "m-2"}},
		{"type": "header", "data": {"level": 2, "text": "Details"}}
	]
}`

func TestParse(t *testing.T) {
	p := New(WithIDGenerator(idgen.Sequence("fallback")))

	chapter, err := p.Parse("c1", []byte(sampleChapter))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if chapter.ID != "c1" || chapter.Version != "2.28.2" || chapter.Time != 1681398816 {
		t.Errorf("Unexpected chapter metadata: %+v", chapter)
	}
	if len(chapter.Blocks) != 5 {
		t.Fatalf("Expected 5 blocks, got %d", len(chapter.Blocks))
	}

	expectedIDs := []string{"p0", "fallback-1", "p1", "part2", ""}
	for i, want := range expectedIDs {
		if chapter.Blocks[i].ID != want {
			t.Errorf("Block %d: expected id %q, got %q", i, want, chapter.Blocks[i].ID)
		}
	}
}

func TestParseIDsStableAcrossOperations(t *testing.T) {
	chapter, err := New().Parse("c1", []byte(sampleChapter))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	sections, err := segment.Build(chapter.Blocks)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	summaries, err := segment.Index(sections)
	if err != nil {
		t.Fatalf("Index() error = %v", err)
	}
	if len(summaries) != 3 {
		t.Fatalf("Expected 3 summaries, got %d", len(summaries))
	}

	intro := summaries[1]
	if intro.Text != "Intro" {
		t.Fatalf("Expected Intro summary, got %+v", intro)
	}
	run, err := segment.Extract(chapter.Blocks, intro.ID)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if len(run) != 2 || run[0].ID != intro.ID {
		t.Errorf("Expected Intro section run, got %+v", run)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected error
	}{
		{
			name:     "Missing blocks",
			raw:      `{"time": 1}`,
			expected: models.ErrMissingBlocks,
		},
		{
			name:     "Missing type",
			raw:      `{"blocks": [{"id": "a", "data": {}}]}`,
			expected: models.ErrMissingType,
		},
		{
			name:     "Malformed header",
			raw:      `{"blocks": [{"type": "header", "data": {"level": "1"}}]}`,
			expected: models.ErrInvalidHeaderData,
		},
	}

	p := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := p.Parse("broken", []byte(tt.raw))
			if !errors.Is(err, tt.expected) {
				t.Errorf("Parse() error = %v, want %v", err, tt.expected)
			}
		})
	}

	t.Run("Invalid JSON", func(t *testing.T) {
		if _, err := p.Parse("broken", []byte(`{`)); err == nil {
			t.Error("Expected error, got nil")
		}
	})
}

func TestParseEmptyBlocks(t *testing.T) {
	chapter, err := New().Parse("empty", []byte(`{"blocks": []}`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(chapter.Blocks) != 0 {
		t.Errorf("Expected no blocks, got %d", len(chapter.Blocks))
	}
}

func TestParseFile(t *testing.T) {
	tmpDir := t.TempDir()

	jsonFile := filepath.Join(tmpDir, "engine.json")
	if err := os.WriteFile(jsonFile, []byte(sampleChapter), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}
	mdFile := filepath.Join(tmpDir, "wheels.md")
	if err := os.WriteFile(mdFile, []byte("# Wheels\n\nRound things.\n"), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	p := New(WithIDGenerator(idgen.Sequence("fallback")))

	chapter, err := p.ParseFile(jsonFile)
	if err != nil {
		t.Fatalf("ParseFile() error = %v", err)
	}
	if chapter.ID != "engine" || len(chapter.Blocks) != 5 {
		t.Errorf("Unexpected chapter: id=%s blocks=%d", chapter.ID, len(chapter.Blocks))
	}

	chapter, err = p.ParseFile(mdFile)
	if err != nil {
		t.Fatalf("ParseFile() error = %v", err)
	}
	if chapter.ID != "wheels" || len(chapter.Blocks) != 2 {
		t.Fatalf("Unexpected chapter: id=%s blocks=%d", chapter.ID, len(chapter.Blocks))
	}
	if chapter.Blocks[0].ID == "" {
		t.Error("Expected imported heading to receive an id")
	}

	if _, err := p.ParseFile(filepath.Join(tmpDir, "missing.json")); err == nil {
		t.Error("Expected error for missing file, got nil")
	}
}

func TestMarshal(t *testing.T) {
	blocks := []models.Block{models.NewHeader("a", 1, "A"), models.NewParagraph("p", "text")}

	data, err := Marshal(blocks)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	chapter, err := New().Parse("roundtrip", data)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(chapter.Blocks) != 2 || chapter.Blocks[0].ID != "a" || chapter.Blocks[1].Type != models.BlockTypeParagraph {
		t.Errorf("Unexpected round trip: %+v", chapter.Blocks)
	}

	empty, err := Marshal(nil)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	var decoded map[string]json.RawMessage
	if err := json.Unmarshal(empty, &decoded); err != nil {
		t.Fatalf("Failed to decode: %v", err)
	}
	if string(decoded["blocks"]) != "[]" {
		t.Errorf("Expected empty blocks array, got %s", decoded["blocks"])
	}
}
