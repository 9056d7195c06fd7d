package prompt

import (
	"fmt"
	"strings"
	"time"

	"github.com/newsflow/hotaggr/pkg/models"
)

// maxNewsBodyChars bounds how much of a news body goes into the prompt.
// Bodies are scraped text and can run to tens of kilobytes.
const maxNewsBodyChars = 600

// FormatNewsSection builds the news-batch section of the aggregation prompt.
func FormatNewsSection(news []models.NewsDigest) string {
	var sb strings.Builder
	sb.WriteString("## News Items\n\n")

	for _, n := range news {
		sb.WriteString(fmt.Sprintf("### News %d\n", n.ID))
		sb.WriteString("**Source:** ")
		sb.WriteString(n.SourceType)
		sb.WriteString("\n**Title:** ")
		sb.WriteString(n.Title)
		sb.WriteString("\n")
		if n.CityName != "" {
			sb.WriteString("**City:** ")
			sb.WriteString(n.CityName)
			sb.WriteString("\n")
		}
		if !n.FirstSeenAt.IsZero() {
			sb.WriteString("**Seen:** ")
			sb.WriteString(n.FirstSeenAt.Format(time.RFC3339))
			sb.WriteString("\n")
		}
		if body := truncate(n.Body, maxNewsBodyChars); body != "" {
			sb.WriteString("**Body:** ")
			sb.WriteString(body)
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// FormatEventSection builds the candidate-event section shared by the
// aggregation and merge prompts. heading names the section.
func FormatEventSection(heading string, events []models.EventDigest) string {
	var sb strings.Builder
	sb.WriteString("## ")
	sb.WriteString(heading)
	sb.WriteString("\n\n")

	if len(events) == 0 {
		sb.WriteString("No recent events. Every news item forms a new event.\n")
		return sb.String()
	}

	for _, e := range events {
		sb.WriteString(fmt.Sprintf("### Event %d\n", e.ID))
		sb.WriteString("**Title:** ")
		sb.WriteString(e.Title)
		sb.WriteString("\n")
		if e.Description != "" {
			sb.WriteString("**Description:** ")
			sb.WriteString(truncate(e.Description, maxNewsBodyChars))
			sb.WriteString("\n")
		}
		if e.EventType != "" {
			sb.WriteString("**Type:** ")
			sb.WriteString(e.EventType)
			sb.WriteString("\n")
		}
		if e.Regions != "" {
			sb.WriteString("**Regions:** ")
			sb.WriteString(e.Regions)
			sb.WriteString("\n")
		}
		if e.Keywords != "" {
			sb.WriteString("**Keywords:** ")
			sb.WriteString(e.Keywords)
			sb.WriteString("\n")
		}
		if !e.CreatedAt.IsZero() {
			sb.WriteString("**Created:** ")
			sb.WriteString(e.CreatedAt.Format(time.RFC3339))
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func truncate(s string, max int) string {
	s = strings.TrimSpace(s)
	if len(s) <= max {
		return s
	}
	// Cut on a rune boundary.
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "…"
}
