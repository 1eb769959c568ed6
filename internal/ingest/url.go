// Package ingest retrieves job posting text for analysis, either from a
// local file or by fetching a posting URL and extracting its readable text.
package ingest

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// DefaultTimeout bounds the posting fetch.
const DefaultTimeout = 30 * time.Second

// DefaultUserAgent identifies the fetcher to job boards.
const DefaultUserAgent = "Mozilla/5.0 (compatible; ResumeTailor/1.0)"

// Error reports a failed posting fetch or extraction.
type Error struct {
	URL     string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("ingest error for %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("ingest error for %s: %s", e.URL, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

// FromFile reads a job description from a plain text file.
func FromFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read job file %s: %w", path, err)
	}
	text := strings.TrimSpace(string(data))
	if text == "" {
		return "", fmt.Errorf("job file %s is empty", path)
	}
	return text, nil
}

// FromURL fetches a job posting page and extracts its readable text.
func FromURL(ctx context.Context, postingURL string) (string, error) {
	parsed, err := url.Parse(postingURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return "", &Error{URL: postingURL, Message: "invalid URL", Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, postingURL, nil)
	if err != nil {
		return "", &Error{URL: postingURL, Message: "failed to build request", Cause: err}
	}
	req.Header.Set("User-Agent", DefaultUserAgent)

	client := &http.Client{Timeout: DefaultTimeout}
	resp, err := client.Do(req)
	if err != nil {
		return "", &Error{URL: postingURL, Message: "request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", &Error{URL: postingURL, Message: fmt.Sprintf("server returned %d", resp.StatusCode)}
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", &Error{URL: postingURL, Message: "failed to parse HTML", Cause: err}
	}

	text := ExtractText(doc)
	if text == "" {
		return "", &Error{URL: postingURL, Message: "no readable text found"}
	}
	return text, nil
}

// ExtractText pulls readable text from a parsed page, skipping script, style,
// and navigation chrome, and collapsing whitespace.
func ExtractText(doc *goquery.Document) string {
	doc.Find("script, style, noscript, nav, header, footer, iframe").Remove()

	root := doc.Find("main")
	if root.Length() == 0 {
		root = doc.Find("body")
	}

	var lines []string
	root.Find("h1, h2, h3, h4, p, li, td, div").Each(func(_ int, s *goquery.Selection) {
		// Only leaf-ish nodes: skip containers whose text is covered by
		// their children.
		if s.Children().Filter("p, li, div, ul, ol, h1, h2, h3, h4").Length() > 0 {
			return
		}
		text := strings.TrimSpace(s.Text())
		if text != "" {
			lines = append(lines, text)
		}
	})

	seen := make(map[string]bool, len(lines))
	unique := lines[:0]
	for _, line := range lines {
		if !seen[line] {
			unique = append(unique, line)
			seen[line] = true
		}
	}
	return strings.Join(unique, "\n")
}
