// Package chapter serves sections of chapters loaded from a Source, caching
// each parsed chapter by id.
package chapter

import (
	"context"
	"fmt"
	"slices"

	"github.com/takak2166/chapterseg/internal/logger"
	"github.com/takak2166/chapterseg/internal/manifest"
	"github.com/takak2166/chapterseg/internal/models"
	"github.com/takak2166/chapterseg/internal/segment"
)

// Service answers section queries for chapters
type Service struct {
	source  Source
	cache   *Cache
	builder segment.Builder
}

// NewService creates a Service. A nil cache is replaced by a fresh one.
func NewService(source Source, cache *Cache, builder segment.Builder) *Service {
	if cache == nil {
		cache = NewCache()
	}
	return &Service{source: source, cache: cache, builder: builder}
}

// Entry returns the cached chapter, loading and segmenting it on a miss
func (s *Service) Entry(ctx context.Context, id string) (*Entry, error) {
	if e, ok := s.cache.Get(id); ok {
		logger.Debug("Chapter cache hit", logger.Fields{"chapter": id})
		return e, nil
	}

	chapter, err := s.source.Load(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load chapter %s: %w", id, err)
	}

	b := s.builder
	b.Chapter = id
	sections, err := b.Build(chapter.Blocks)
	if err != nil {
		return nil, fmt.Errorf("failed to build sections: %w", err)
	}

	e := &Entry{Chapter: chapter, Sections: sections}
	s.cache.Put(id, e)

	logger.Debug("Chapter loaded", logger.Fields{
		"chapter":        id,
		"blocks_count":   len(chapter.Blocks),
		"sections_count": len(sections),
	})
	return e, nil
}

// Sections returns the sections of a chapter. The slice is a copy; the
// blocks inside it are shared with the cache and must not be modified.
func (s *Service) Sections(ctx context.Context, id string) ([]models.Section, error) {
	e, err := s.Entry(ctx, id)
	if err != nil {
		return nil, err
	}
	return slices.Clone(e.Sections), nil
}

// Summaries returns the navigation summaries of a chapter
func (s *Service) Summaries(ctx context.Context, id string) ([]models.SectionSummary, error) {
	e, err := s.Entry(ctx, id)
	if err != nil {
		return nil, err
	}
	summaries, err := segment.Index(e.Sections)
	if err != nil {
		return nil, fmt.Errorf("chapter %s: %w", id, err)
	}
	return summaries, nil
}

// Outline returns the collapsible navigation groups of a chapter
func (s *Service) Outline(ctx context.Context, id string) ([]segment.OutlineEntry, error) {
	e, err := s.Entry(ctx, id)
	if err != nil {
		return nil, err
	}
	outline, err := segment.Outline(e.Sections)
	if err != nil {
		return nil, fmt.Errorf("chapter %s: %w", id, err)
	}
	return outline, nil
}

// Extract returns the blocks of one section, or the whole chapter when
// sectionID is unknown
func (s *Service) Extract(ctx context.Context, id, sectionID string) ([]models.Block, error) {
	e, err := s.Entry(ctx, id)
	if err != nil {
		return nil, err
	}
	b := s.builder
	b.Chapter = id
	blocks, err := b.Extract(e.Chapter.Blocks, sectionID)
	if err != nil {
		return nil, err
	}
	if len(blocks) == 0 || blocks[0].ID != sectionID {
		logger.Debug("Section not found, serving whole chapter", logger.Fields{
			"chapter": id,
			"section": sectionID,
		})
	}
	return blocks, nil
}

// Models binds the given models to the sections of a chapter
func (s *Service) Models(ctx context.Context, id string, entities []manifest.Model) (map[string]manifest.Model, error) {
	summaries, err := s.Summaries(ctx, id)
	if err != nil {
		return nil, err
	}
	assoc := segment.Associate(summaries, entities, manifest.ModelID)
	if _, ok := assoc[segment.MainKey]; !ok {
		logger.Warn("No model configured for chapter", logger.Fields{"chapter": id})
	}
	return assoc, nil
}

// Invalidate forgets the cached chapter
func (s *Service) Invalidate(id string) {
	s.cache.Invalidate(id)
}
