package rendering

import (
	_ "embed"
	"html/template"
	"strings"

	"github.com/evanqhuang/resume-tailor/internal/types"
)

//go:embed templates/resume.html.tmpl
var resumeTemplate string

// RenderHTML executes the built-in resume template against an already
// filtered document and returns the page as a string.
func RenderHTML(r *types.Resume) (string, error) {
	if r == nil {
		return "", &RenderError{Message: "no resume to render"}
	}

	tmpl, err := template.New("resume").Parse(resumeTemplate)
	if err != nil {
		return "", &TemplateError{Message: "failed to parse resume template", Cause: err}
	}

	var out strings.Builder
	if err := tmpl.Execute(&out, r); err != nil {
		return "", &TemplateError{Message: "failed to execute resume template", Cause: err}
	}
	return out.String(), nil
}
