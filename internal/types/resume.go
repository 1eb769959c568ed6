// Package types provides type definitions for the resume document and its
// per-item selection state, shared by every component of the tailor.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ContactInfo holds personal contact information. Display-only: it carries no
// selection flag and is never filtered.
type ContactInfo struct {
	Name     string `yaml:"name" json:"name"`
	Location string `yaml:"location" json:"location"`
	Email    string `yaml:"email" json:"email"`
	Phone    string `yaml:"phone" json:"phone"`
	LinkedIn string `yaml:"linkedin,omitempty" json:"linkedin,omitempty"`
	GitHub   string `yaml:"github,omitempty" json:"github,omitempty"`
}

// EducationEntry represents education details. There is exactly one and it is
// always included in the output.
type EducationEntry struct {
	Institution string `yaml:"institution" json:"institution"`
	Location    string `yaml:"location" json:"location"`
	Degree      string `yaml:"degree" json:"degree"`
	Focus       string `yaml:"focus,omitempty" json:"focus,omitempty"`
	Minor       string `yaml:"minor,omitempty" json:"minor,omitempty"`
	GPA         string `yaml:"gpa,omitempty" json:"gpa,omitempty"`
	Honors      string `yaml:"honors,omitempty" json:"honors,omitempty"`
}

// SkillItem is a single selectable skill. Skills are keyed by name, not by a
// synthetic id.
type SkillItem struct {
	Name     string   `yaml:"name" json:"name"`
	Tags     []string `yaml:"tags" json:"tags"`
	Selected bool     `yaml:"-" json:"selected"`
}

// SkillCategory groups skill items under a named heading.
type SkillCategory struct {
	Name  string      `yaml:"category" json:"category"`
	Items []SkillItem `yaml:"items" json:"items"`
}

// Bullet is a leaf, selectable line item belonging to an entry. RelevanceScore
// is stamped by the suggestion engine and persists for display even when the
// bullet ends up unselected.
type Bullet struct {
	ID             string   `yaml:"id" json:"id"`
	Text           string   `yaml:"text" json:"text"`
	Tags           []string `yaml:"tags" json:"tags"`
	Selected       bool     `yaml:"-" json:"selected"`
	RelevanceScore *float64 `yaml:"-" json:"relevanceScore,omitempty"`
}

// ExperienceEntry represents a work experience with its bullets.
type ExperienceEntry struct {
	ID        string   `yaml:"id" json:"id"`
	Title     string   `yaml:"title" json:"title"`
	Company   string   `yaml:"company" json:"company"`
	Location  string   `yaml:"location" json:"location"`
	StartDate string   `yaml:"start_date" json:"start_date"`
	EndDate   string   `yaml:"end_date" json:"end_date"`
	Tags      []string `yaml:"tags" json:"tags"`
	Bullets   []Bullet `yaml:"bullets" json:"bullets"`
	Selected  bool     `yaml:"-" json:"selected"`
}

// ProjectEntry represents a project with its bullets.
type ProjectEntry struct {
	ID           string   `yaml:"id" json:"id"`
	Title        string   `yaml:"title" json:"title"`
	Technologies string   `yaml:"technologies" json:"technologies"`
	GitHub       string   `yaml:"github,omitempty" json:"github,omitempty"`
	Tags         []string `yaml:"tags" json:"tags"`
	Bullets      []Bullet `yaml:"bullets" json:"bullets"`
	Selected     bool     `yaml:"-" json:"selected"`
}

// LeadershipEntry is a selectable leadership activity with no sub-items.
type LeadershipEntry struct {
	ID       string   `yaml:"id" json:"id"`
	Text     string   `yaml:"text" json:"text"`
	Tags     []string `yaml:"tags" json:"tags"`
	Selected bool     `yaml:"-" json:"selected"`
}

// Resume is the root document aggregate. Exactly one live instance exists per
// session; all mutation goes through the store's action algebra and produces a
// fresh snapshot.
type Resume struct {
	Contact    ContactInfo       `yaml:"contact" json:"contact"`
	Summary    string            `yaml:"summary,omitempty" json:"summary,omitempty"`
	Education  EducationEntry    `yaml:"education" json:"education"`
	Skills     []SkillCategory   `yaml:"skills" json:"skills"`
	Experience []ExperienceEntry `yaml:"experience" json:"experience"`
	Projects   []ProjectEntry    `yaml:"projects" json:"projects"`
	Leadership []LeadershipEntry `yaml:"leadership" json:"leadership"`
}

// Identity returns the stable id of the entry.
func (e ExperienceEntry) Identity() string { return e.ID }

// Identity returns the stable id of the entry.
func (p ProjectEntry) Identity() string { return p.ID }

// Identity returns the stable id of the entry.
func (l LeadershipEntry) Identity() string { return l.ID }

// Identity returns the skill name; skills have no synthetic id.
func (s SkillItem) Identity() string { return s.Name }

// Identity returns the stable id of the bullet.
func (b Bullet) Identity() string { return b.ID }

// WithSelected returns a copy of the item with the selection flag replaced.
func (s SkillItem) WithSelected(v bool) SkillItem { s.Selected = v; return s }

// WithSelected returns a copy of the bullet with the selection flag replaced.
// The relevance score annotation is left untouched.
func (b Bullet) WithSelected(v bool) Bullet { b.Selected = v; return b }

// WithSelected returns a copy of the entry with only its own selection flag
// replaced. Bullets are shared with the receiver and must be replaced
// separately when they change.
func (e ExperienceEntry) WithSelected(v bool) ExperienceEntry { e.Selected = v; return e }

// WithSelected returns a copy of the entry with only its own selection flag
// replaced.
func (p ProjectEntry) WithSelected(v bool) ProjectEntry { p.Selected = v; return p }

// WithSelected returns a copy of the entry with the selection flag replaced.
func (l LeadershipEntry) WithSelected(v bool) LeadershipEntry { l.Selected = v; return l }
