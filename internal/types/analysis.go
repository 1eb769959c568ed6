package types

// JobAnalysis holds externally computed keyword and relevance data for one
// job posting. A new analysis replaces the previous one wholesale; analyses
// are never merged.
type JobAnalysis struct {
	Keywords []string `json:"keywords"`
	// Scores maps an item identity (skill name, bullet id, or leadership id)
	// to a relevance score in [0,100].
	Scores         map[string]float64 `json:"scores"`
	SuggestedItems []string           `json:"suggested_items"`
}

// SelectionSet is the read-only projection of the current selection state
// handed to the export renderer: selected skill names, selected entry ids
// plus their selected bullet ids, and selected leadership ids.
type SelectionSet struct {
	Skills     []string `json:"skills"`
	Experience []string `json:"experience"`
	Projects   []string `json:"projects"`
	Leadership []string `json:"leadership"`
}

// IDSet flattens the selection set into a membership map, the shape the
// rendering side filters with.
func (s SelectionSet) IDSet() map[string]bool {
	ids := make(map[string]bool)
	for _, group := range [][]string{s.Skills, s.Experience, s.Projects, s.Leadership} {
		for _, id := range group {
			ids[id] = true
		}
	}
	return ids
}
