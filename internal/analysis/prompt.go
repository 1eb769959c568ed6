package analysis

import (
	"fmt"
	"strings"
)

// buildPrompt assembles the scoring prompt for one batch of items.
func buildPrompt(items []scorableItem, jobTitle, company, description string) string {
	var sb strings.Builder

	sb.WriteString("You are scoring resume items for relevance to a job posting.\n\n")
	sb.WriteString("Job title: ")
	sb.WriteString(jobTitle)
	sb.WriteString("\n")
	if company != "" {
		sb.WriteString("Company: ")
		sb.WriteString(company)
		sb.WriteString("\n")
	}
	sb.WriteString("\nJob description:\n")
	sb.WriteString(description)
	sb.WriteString("\n\nResume items (id: text):\n")
	for _, item := range items {
		sb.WriteString("- ")
		sb.WriteString(item.ID)
		sb.WriteString(": ")
		sb.WriteString(item.Text)
		if len(item.Tags) > 0 {
			sb.WriteString(fmt.Sprintf(" [tags: %s]", strings.Join(item.Tags, ", ")))
		}
		sb.WriteString("\n")
	}

	sb.WriteString(`
Return a JSON object with exactly these fields:
{
  "keywords": ["the most important skills and technologies from the posting"],
  "scores": {"<item id>": <relevance score 0-100>}
}
Score every listed item id. 0 means irrelevant, 100 means a direct match.
Return JSON only, no prose.`)

	return sb.String()
}
