// Package orderstore persists section ordering: a mapping from section name
// to an ordered list of item identities. Nothing else about the document is
// ever persisted by this subsystem. Saves are per-section overwrites, so a
// retried or repeated save is harmless.
package orderstore

import (
	"context"
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/evanqhuang/resume-tailor/internal/types"
)

// Store reads and writes section order. Save applies a partial patch: only
// the sections present in the patch are replaced.
type Store interface {
	Load(ctx context.Context) (map[types.SectionName][]string, error)
	Save(ctx context.Context, patch map[types.SectionName][]string) error
}

// fileOrder is the on-disk YAML shape.
type fileOrder struct {
	Experience []string `yaml:"experience"`
	Projects   []string `yaml:"projects"`
	Leadership []string `yaml:"leadership"`
}

// FileStore keeps section order in a YAML file next to the resume.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore creates a file-backed store at path. The file is created on
// first save.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads the stored order. A missing file is not an error: it means no
// custom order has been saved yet, and an empty map is returned.
func (s *FileStore) Load(_ context.Context) (map[types.SectionName][]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, err := s.read()
	if err != nil {
		return nil, err
	}
	return toMap(order), nil
}

// Save merges the patch into the stored order and rewrites the file.
func (s *FileStore) Save(_ context.Context, patch map[types.SectionName][]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, err := s.read()
	if err != nil {
		return err
	}
	merge(order, patch)

	data, err := yaml.Marshal(order)
	if err != nil {
		return fmt.Errorf("failed to encode order: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write order file %s: %w", s.path, err)
	}
	return nil
}

func (s *FileStore) read() (*fileOrder, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return &fileOrder{}, nil
		}
		return nil, fmt.Errorf("failed to read order file %s: %w", s.path, err)
	}

	var order fileOrder
	if err := yaml.Unmarshal(data, &order); err != nil {
		return nil, fmt.Errorf("failed to parse order file %s: %w", s.path, err)
	}
	return &order, nil
}

func merge(order *fileOrder, patch map[types.SectionName][]string) {
	if ids, ok := patch[types.SectionExperience]; ok {
		order.Experience = ids
	}
	if ids, ok := patch[types.SectionProjects]; ok {
		order.Projects = ids
	}
	if ids, ok := patch[types.SectionLeadership]; ok {
		order.Leadership = ids
	}
}

func toMap(order *fileOrder) map[types.SectionName][]string {
	out := make(map[types.SectionName][]string)
	if len(order.Experience) > 0 {
		out[types.SectionExperience] = order.Experience
	}
	if len(order.Projects) > 0 {
		out[types.SectionProjects] = order.Projects
	}
	if len(order.Leadership) > 0 {
		out[types.SectionLeadership] = order.Leadership
	}
	return out
}
