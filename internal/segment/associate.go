package segment

import (
	"github.com/takak2166/chapterseg/internal/models"
)

// MainKey binds the chapter's default model in an association map
const MainKey = "main"

// Associate binds caller-owned models to section ids.
//
// The first entity is bound to MainKey. A section whose model id matches an
// entity is bound to it; when several entities share an id the first one wins.
// Sections without a match get no entry, and a section whose id equals MainKey
// never overrides the main binding.
func Associate[M any](summaries []models.SectionSummary, entities []M, idOf func(M) string) map[string]M {
	assoc := make(map[string]M)
	if len(entities) == 0 {
		return assoc
	}
	assoc[MainKey] = entities[0]

	byID := make(map[string]M, len(entities))
	for _, e := range entities {
		id := idOf(e)
		if _, ok := byID[id]; !ok {
			byID[id] = e
		}
	}

	for _, s := range summaries {
		if s.ModelID == nil || s.ID == MainKey {
			continue
		}
		if e, ok := byID[*s.ModelID]; ok {
			assoc[s.ID] = e
		}
	}
	return assoc
}

// ModelFor reads the model for a section, falling back to the main model.
// ok is false when neither is present.
func ModelFor[M any](assoc map[string]M, sectionID string) (m M, ok bool) {
	if m, ok = assoc[sectionID]; ok {
		return m, true
	}
	m, ok = assoc[MainKey]
	return m, ok
}
