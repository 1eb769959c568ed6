package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/evanqhuang/resume-tailor/internal/types"
)

const (
	// defaultBatchSize caps the number of items scored per model call.
	defaultBatchSize = 40
	// suggestionThreshold is the score at or above which an item lands in
	// the suggested list.
	suggestionThreshold = 70.0
)

// scorableItem is one identity presented to the model for scoring.
type scorableItem struct {
	ID   string
	Text string
	Tags []string
}

// batchResult is the JSON shape each model call must return.
type batchResult struct {
	Keywords []string           `json:"keywords"`
	Scores   map[string]float64 `json:"scores"`
}

// Analyzer scores every selectable resume item against a job description.
// Large documents are scored in concurrent batches and the per-batch results
// merged into one analysis.
type Analyzer struct {
	gen       Generator
	log       *zap.Logger
	batchSize int
}

// NewAnalyzer creates an analyzer over the given generator.
func NewAnalyzer(gen Generator, log *zap.Logger) *Analyzer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Analyzer{gen: gen, log: log, batchSize: defaultBatchSize}
}

// Analyze scores the resume's skills, bullets, and leadership entries against
// the job posting and returns a complete analysis. The returned scores are
// clamped to [0,100]; items the model skipped are simply absent and default
// to 0 downstream.
func (a *Analyzer) Analyze(ctx context.Context, r *types.Resume, jobTitle, company, description string) (*types.JobAnalysis, error) {
	items := collectItems(r)
	if len(items) == 0 {
		return &types.JobAnalysis{Keywords: []string{}, Scores: map[string]float64{}, SuggestedItems: []string{}}, nil
	}

	batches := splitBatches(items, a.batchSize)
	a.log.Debug("scoring resume items",
		zap.Int("items", len(items)),
		zap.Int("batches", len(batches)),
	)

	var mu sync.Mutex
	merged := batchResult{Scores: make(map[string]float64)}

	g, gctx := errgroup.WithContext(ctx)
	for _, batch := range batches {
		g.Go(func() error {
			prompt := buildPrompt(batch, jobTitle, company, description)
			raw, err := a.gen.GenerateJSON(gctx, prompt)
			if err != nil {
				return fmt.Errorf("model call failed: %w", err)
			}

			result, err := parseBatchResult(raw)
			if err != nil {
				return err
			}

			mu.Lock()
			defer mu.Unlock()
			merged.Keywords = appendUnique(merged.Keywords, result.Keywords)
			for id, score := range result.Scores {
				merged.Scores[id] = clamp(score)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if merged.Keywords == nil {
		merged.Keywords = []string{}
	}
	return &types.JobAnalysis{
		Keywords:       merged.Keywords,
		Scores:         merged.Scores,
		SuggestedItems: suggested(merged.Scores),
	}, nil
}

// collectItems gathers every scorable identity: skill names, bullet ids, and
// leadership ids, each with display text for the model.
func collectItems(r *types.Resume) []scorableItem {
	var items []scorableItem
	for _, cat := range r.Skills {
		for _, item := range cat.Items {
			items = append(items, scorableItem{ID: item.Name, Text: item.Name, Tags: item.Tags})
		}
	}
	for _, entry := range r.Experience {
		for _, b := range entry.Bullets {
			items = append(items, scorableItem{ID: b.ID, Text: b.Text, Tags: b.Tags})
		}
	}
	for _, entry := range r.Projects {
		for _, b := range entry.Bullets {
			items = append(items, scorableItem{ID: b.ID, Text: b.Text, Tags: b.Tags})
		}
	}
	for _, entry := range r.Leadership {
		items = append(items, scorableItem{ID: entry.ID, Text: entry.Text, Tags: entry.Tags})
	}
	return items
}

func splitBatches(items []scorableItem, size int) [][]scorableItem {
	if size <= 0 {
		size = defaultBatchSize
	}
	var batches [][]scorableItem
	for len(items) > size {
		batches = append(batches, items[:size])
		items = items[size:]
	}
	return append(batches, items)
}

func parseBatchResult(raw string) (*batchResult, error) {
	if err := validateBatchJSON(raw); err != nil {
		return nil, err
	}
	var result batchResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal analysis response: %w", err)
	}
	return &result, nil
}

func clamp(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

func appendUnique(dst, src []string) []string {
	seen := make(map[string]bool, len(dst))
	for _, k := range dst {
		seen[k] = true
	}
	for _, k := range src {
		if !seen[k] {
			dst = append(dst, k)
			seen[k] = true
		}
	}
	return dst
}

// suggested lists the ids at or above the suggestion threshold, highest score
// first, ties broken by id for a stable result.
func suggested(scores map[string]float64) []string {
	ids := make([]string, 0)
	for id, score := range scores {
		if score >= suggestionThreshold {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool {
		if scores[ids[i]] != scores[ids[j]] {
			return scores[ids[i]] > scores[ids[j]]
		}
		return ids[i] < ids[j]
	})
	return ids
}
