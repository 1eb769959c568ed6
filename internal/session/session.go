// Package session wires the state store to the external collaborators and
// runs the asynchronous flows of one tailoring session: initial document
// load, job analysis, and export. It owns one reorder coordinator per
// reorderable section.
package session

import (
	"context"

	"go.uber.org/zap"

	"github.com/evanqhuang/resume-tailor/internal/client"
	"github.com/evanqhuang/resume-tailor/internal/reorder"
	"github.com/evanqhuang/resume-tailor/internal/selection"
	"github.com/evanqhuang/resume-tailor/internal/store"
	"github.com/evanqhuang/resume-tailor/internal/types"
)

// ResumeSource fetches the initial document.
type ResumeSource interface {
	FetchResume(ctx context.Context) (*types.Resume, error)
}

// JobAnalyzer computes keyword and relevance data for a job posting.
type JobAnalyzer interface {
	AnalyzeJob(ctx context.Context, req client.AnalyzeRequest) (*types.JobAnalysis, error)
}

// ExportRenderer turns a selection set into a rendered PDF.
type ExportRenderer interface {
	Generate(ctx context.Context, sel types.SelectionSet) ([]byte, error)
}

// Collaborators bundles the external services a session depends on. The
// backend client satisfies all four interfaces; tests substitute stubs.
type Collaborators struct {
	Source    ResumeSource
	Analyzer  JobAnalyzer
	Persister reorder.Persister
	Exporter  ExportRenderer
}

// Session drives one tailoring session against a single store instance.
type Session struct {
	store    *store.Store
	collab   Collaborators
	reorders map[types.SectionName]*reorder.Coordinator
	log      *zap.Logger
}

// New creates a session over a fresh store.
func New(collab Collaborators, log *zap.Logger) *Session {
	if log == nil {
		log = zap.NewNop()
	}
	st := store.New()
	s := &Session{
		store:    st,
		collab:   collab,
		reorders: make(map[types.SectionName]*reorder.Coordinator),
		log:      log,
	}
	for _, section := range []types.SectionName{
		types.SectionExperience,
		types.SectionProjects,
		types.SectionLeadership,
	} {
		s.reorders[section] = reorder.New(section, st, collab.Persister, log)
	}
	return s
}

// Store exposes the session's state store for dispatching selection actions
// and subscribing to snapshots.
func (s *Session) Store() *store.Store { return s.store }

// Load fetches the initial document. On failure the error is surfaced in
// session state, the document stays absent, and no retry is attempted.
func (s *Session) Load(ctx context.Context) error {
	s.store.Dispatch(store.SetLoading{Loading: true})

	resume, err := s.collab.Source.FetchResume(ctx)
	if err != nil {
		s.log.Error("resume fetch failed", zap.Error(err))
		s.store.Dispatch(store.SetError{Message: err.Error()})
		return err
	}

	s.store.Dispatch(store.SetResume{Resume: resume})
	s.store.Dispatch(store.SetLoading{Loading: false})
	return nil
}

// Analyze requests a job analysis and installs the result. On failure the
// previous analysis, if any, is left in place and the error is surfaced.
func (s *Session) Analyze(ctx context.Context, req client.AnalyzeRequest) error {
	s.store.Dispatch(store.SetLoading{Loading: true})

	analysis, err := s.collab.Analyzer.AnalyzeJob(ctx, req)
	if err != nil {
		s.log.Error("job analysis failed", zap.Error(err))
		s.store.Dispatch(store.SetError{Message: err.Error()})
		return err
	}

	s.store.Dispatch(store.SetJobAnalysis{Analysis: analysis})
	s.store.Dispatch(store.SetLoading{Loading: false})
	return nil
}

// ApplySuggestions recomputes selection from the current analysis.
func (s *Session) ApplySuggestions(threshold float64) {
	s.store.Dispatch(store.ApplySuggestions{Threshold: threshold})
}

// Reorder forwards a completed drag to the section's coordinator and returns
// the terminal protocol state. A rollback is not an error from the caller's
// point of view; the reverted order is the user-visible correction.
func (s *Session) Reorder(ctx context.Context, section types.SectionName, activeID, overID string) reorder.State {
	c, ok := s.reorders[section]
	if !ok {
		return reorder.StateIdle
	}
	return c.Move(ctx, activeID, overID)
}

// Export renders the currently selected items to a PDF. On failure the error
// is surfaced in session state and no bytes are returned.
func (s *Session) Export(ctx context.Context) ([]byte, error) {
	state := s.store.State()
	sel := selection.BuildSelectionSet(state.Resume)

	pdf, err := s.collab.Exporter.Generate(ctx, sel)
	if err != nil {
		s.log.Error("export failed", zap.Error(err))
		s.store.Dispatch(store.SetError{Message: err.Error()})
		return nil, err
	}
	return pdf, nil
}
