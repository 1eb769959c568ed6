package rendering

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evanqhuang/resume-tailor/internal/types"
)

func TestRenderHTML(t *testing.T) {
	html, err := RenderHTML(renderResume())
	require.NoError(t, err)

	assert.Contains(t, html, "Evan Huang")
	assert.Contains(t, html, "State University")
	assert.Contains(t, html, "Built services")
	assert.Contains(t, html, "Club president")
	assert.Contains(t, html, "languages")
}

func TestRenderHTMLEscapesContent(t *testing.T) {
	r := &types.Resume{
		Contact: types.ContactInfo{Name: "<script>alert(1)</script>"},
	}
	html, err := RenderHTML(r)
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>alert(1)</script>")
}

func TestRenderHTMLNilResume(t *testing.T) {
	_, err := RenderHTML(nil)
	require.Error(t, err)

	var rerr *RenderError
	assert.ErrorAs(t, err, &rerr)
}

func TestRenderHTMLSkipsEmptySections(t *testing.T) {
	r := &types.Resume{
		Contact:   types.ContactInfo{Name: "Evan Huang"},
		Education: types.EducationEntry{Institution: "State University"},
	}
	html, err := RenderHTML(r)
	require.NoError(t, err)
	assert.NotContains(t, html, "<h2>Skills</h2>")
	assert.NotContains(t, html, "<h2>Experience</h2>")
	assert.NotContains(t, html, "<h2>Projects</h2>")
	assert.NotContains(t, html, "<h2>Leadership</h2>")
}
