package server

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/evanqhuang/resume-tailor/internal/rendering"
	"github.com/evanqhuang/resume-tailor/internal/types"
)

// analyzeRequest mirrors the client's analyze payload.
type analyzeRequest struct {
	JobTitle    string `json:"job_title" validate:"required"`
	Company     string `json:"company"`
	Description string `json:"description" validate:"required"`
}

// handleGetResume serves the document with any stored section order applied.
func (s *Server) handleGetResume(w http.ResponseWriter, r *http.Request) {
	doc, err := s.loadResume(false)
	if err != nil {
		s.errorResponse(w, err)
		return
	}

	order, err := s.deps.Orders.Load(r.Context())
	if err != nil {
		s.log.Warn("order load failed, serving file order", zap.Error(err))
		order = nil
	}

	s.jsonResponse(w, http.StatusOK, applyOrder(doc, order))
}

// handleReloadResume forces a reload from disk and serves the fresh document.
func (s *Server) handleReloadResume(w http.ResponseWriter, r *http.Request) {
	doc, err := s.loadResume(true)
	if err != nil {
		s.errorResponse(w, err)
		return
	}

	order, err := s.deps.Orders.Load(r.Context())
	if err != nil {
		order = nil
	}

	s.jsonResponse(w, http.StatusOK, applyOrder(doc, order))
}

// handleAnalyzeJob scores the current document against the posted job.
func (s *Server) handleAnalyzeJob(w http.ResponseWriter, r *http.Request) {
	if s.deps.Analyzer == nil {
		s.errorResponse(w, &ErrAnalyzerUnavailable{})
		return
	}

	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, &ErrValidation{Field: "body", Message: "invalid JSON"})
		return
	}
	if err := s.validate.Struct(req); err != nil {
		s.errorResponse(w, &ErrValidation{Field: "job_title, description", Message: "required"})
		return
	}

	doc, err := s.loadResume(false)
	if err != nil {
		s.errorResponse(w, err)
		return
	}

	analysis, err := s.deps.Analyzer.Analyze(r.Context(), doc, req.JobTitle, req.Company, req.Description)
	if err != nil {
		s.log.Error("analysis failed", zap.Error(err))
		s.errorResponse(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, analysis)
}

// handleGenerate renders the posted selection set to a PDF.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var sel types.SelectionSet
	if err := json.NewDecoder(r.Body).Decode(&sel); err != nil {
		s.errorResponse(w, &ErrValidation{Field: "body", Message: "invalid JSON"})
		return
	}

	doc, err := s.loadResume(false)
	if err != nil {
		s.errorResponse(w, err)
		return
	}

	order, err := s.deps.Orders.Load(r.Context())
	if err == nil {
		doc = applyOrder(doc, order)
	}

	html, err := rendering.RenderHTML(rendering.Filter(doc, sel))
	if err != nil {
		s.log.Error("render failed", zap.Error(err))
		s.errorResponse(w, err)
		return
	}

	if s.deps.Printer == nil {
		// No browser available: serve the HTML itself.
		w.Header().Set("Content-Type", "text/html")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(html))
		return
	}

	pdf, err := s.deps.Printer.PrintPDF(r.Context(), html)
	if err != nil {
		s.log.Error("pdf print failed", zap.Error(err))
		s.errorResponse(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="resume.pdf"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdf)
}

// handleSaveOrder merges a partial section-order patch into the order store.
func (s *Server) handleSaveOrder(w http.ResponseWriter, r *http.Request) {
	var patch map[types.SectionName][]string
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		s.errorResponse(w, &ErrValidation{Field: "body", Message: "invalid JSON"})
		return
	}
	if len(patch) == 0 {
		s.errorResponse(w, &ErrValidation{Field: "body", Message: "empty patch"})
		return
	}

	for section := range patch {
		if !types.ValidSection(section) {
			s.errorResponse(w, &ErrUnknownSection{Section: string(section)})
			return
		}
	}

	if err := s.deps.Orders.Save(r.Context(), patch); err != nil {
		s.log.Error("order save failed", zap.Error(err))
		s.errorResponse(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) loadResume(force bool) (*types.Resume, error) {
	doc, err := s.deps.Resume.Get(force)
	if err != nil {
		return nil, &ErrResumeUnavailable{Cause: err}
	}
	return doc, nil
}

// applyOrder returns a copy of the document with each stored section order
// applied. Sections absent from the map keep their file order.
func applyOrder(r *types.Resume, order map[types.SectionName][]string) *types.Resume {
	if len(order) == 0 {
		return r
	}
	out := *r
	if ids, ok := order[types.SectionExperience]; ok {
		out.Experience = types.ReorderByIdentity(r.Experience, ids)
	}
	if ids, ok := order[types.SectionProjects]; ok {
		out.Projects = types.ReorderByIdentity(r.Projects, ids)
	}
	if ids, ok := order[types.SectionLeadership]; ok {
		out.Leadership = types.ReorderByIdentity(r.Leadership, ids)
	}
	return &out
}
