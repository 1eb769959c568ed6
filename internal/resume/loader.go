// Package resume loads the resume document from its YAML source, assigns
// stable ids to items that lack one, and caches the parsed document against
// file modification time.
package resume

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/evanqhuang/resume-tailor/internal/types"
)

// Load reads and parses the resume YAML at path. Every selectable item comes
// back selected, matching a freshly opened session where nothing has been
// filtered out yet. Ids missing from the file are assigned here, once; they
// are never regenerated afterwards.
func Load(path string) (*types.Resume, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read resume file %s: %w", path, err)
	}

	var r types.Resume
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("failed to parse resume YAML: %w", err)
	}

	normalize(&r)
	return &r, nil
}

// normalize assigns missing ids, fills nil tag slices, and marks everything
// selected.
func normalize(r *types.Resume) {
	for i := range r.Skills {
		for j := range r.Skills[i].Items {
			item := &r.Skills[i].Items[j]
			item.Tags = ensureTags(item.Tags)
			item.Selected = true
		}
	}

	for i := range r.Experience {
		entry := &r.Experience[i]
		if entry.ID == "" {
			entry.ID = uuid.NewString()
		}
		entry.Tags = ensureTags(entry.Tags)
		entry.Selected = true
		normalizeBullets(entry.Bullets)
	}

	for i := range r.Projects {
		entry := &r.Projects[i]
		if entry.ID == "" {
			entry.ID = uuid.NewString()
		}
		entry.Tags = ensureTags(entry.Tags)
		entry.Selected = true
		normalizeBullets(entry.Bullets)
	}

	for i := range r.Leadership {
		entry := &r.Leadership[i]
		if entry.ID == "" {
			entry.ID = uuid.NewString()
		}
		entry.Tags = ensureTags(entry.Tags)
		entry.Selected = true
	}
}

func normalizeBullets(bullets []types.Bullet) {
	for i := range bullets {
		if bullets[i].ID == "" {
			bullets[i].ID = uuid.NewString()
		}
		bullets[i].Tags = ensureTags(bullets[i].Tags)
		bullets[i].Selected = true
	}
}

func ensureTags(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}

// DefaultOrder extracts each reorderable section's ids in file order.
func DefaultOrder(r *types.Resume) map[types.SectionName][]string {
	return map[types.SectionName][]string{
		types.SectionExperience: r.SectionIDs(types.SectionExperience),
		types.SectionProjects:   r.SectionIDs(types.SectionProjects),
		types.SectionLeadership: r.SectionIDs(types.SectionLeadership),
	}
}
