package ingest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const postingHTML = `<!DOCTYPE html>
<html>
<head><title>Job</title><style>body { color: red; }</style></head>
<body>
<nav><a href="/">Home</a></nav>
<main>
  <h1>Backend Engineer</h1>
  <p>We build distributed systems in Go.</p>
  <ul>
    <li>5+ years backend experience</li>
    <li>PostgreSQL and Redis</li>
  </ul>
  <script>trackVisit();</script>
</main>
<footer>Copyright</footer>
</body>
</html>`

func TestFromURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(postingHTML))
	}))
	defer srv.Close()

	text, err := FromURL(context.Background(), srv.URL)
	require.NoError(t, err)

	assert.Contains(t, text, "Backend Engineer")
	assert.Contains(t, text, "distributed systems in Go")
	assert.Contains(t, text, "PostgreSQL and Redis")
	// Chrome and scripts are stripped.
	assert.NotContains(t, text, "Home")
	assert.NotContains(t, text, "trackVisit")
	assert.NotContains(t, text, "Copyright")
}

func TestFromURLServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := FromURL(context.Background(), srv.URL)
	require.Error(t, err)

	var ierr *Error
	require.ErrorAs(t, err, &ierr)
	assert.Contains(t, ierr.Message, "404")
}

func TestFromURLInvalid(t *testing.T) {
	_, err := FromURL(context.Background(), "not-a-url")
	require.Error(t, err)
}

func TestFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "job.txt")
	require.NoError(t, os.WriteFile(path, []byte("  Senior Go Engineer at Acme  \n"), 0o644))

	text, err := FromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Senior Go Engineer at Acme", text)
}

func TestFromFileEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "job.txt")
	require.NoError(t, os.WriteFile(path, []byte("   \n"), 0o644))

	_, err := FromFile(path)
	require.Error(t, err)
}

func TestFromFileMissing(t *testing.T) {
	_, err := FromFile(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
}
