package pdf

import (
	"fmt"
	"strings"
)

// summaryMaxChars caps a page summary at this many characters before the
// ellipsis is appended.
const summaryMaxChars = 100

// summarySourceLines is how many leading non-empty lines feed a page summary.
const summarySourceLines = 3

// StructureReport combines the document outline and per-page summaries into
// one report: a title line, a total page count, an optional Table of Contents
// section and an optional Page Summaries section, in that order.
func StructureReport(doc Document, filename string) string {
	lines := []string{
		fmt.Sprintf("PDF Structure: %s", filename),
		fmt.Sprintf("Total Pages: %d", doc.PageCount()),
	}

	if outline := doc.Outline(); len(outline) > 0 {
		lines = append(lines, "", "Table of Contents:")
		for _, entry := range outline {
			indent := strings.Repeat("  ", entry.Level-1)
			lines = append(lines, fmt.Sprintf("%s• %s (Page %d)", indent, entry.Title, entry.Page))
		}
	}

	if summaries := pageSummaries(doc); len(summaries) > 0 {
		lines = append(lines, "", "Page Summaries:")
		lines = append(lines, summaries...)
	}

	return strings.Join(lines, "\n")
}

// pageSummaries builds one summary line per page that has any text: the first
// three non-empty lines joined by single spaces, capped at summaryMaxChars
// characters and always ellipsis-suffixed. Pages with no text are omitted.
func pageSummaries(doc Document) []string {
	var summaries []string

	for page := 1; page <= doc.PageCount(); page++ {
		text, err := doc.PageText(page)
		if err != nil {
			continue
		}

		var kept []string
		for _, line := range strings.Split(text, "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			kept = append(kept, line)
			if len(kept) == summarySourceLines {
				break
			}
		}

		summary := strings.Join(kept, " ")
		if summary == "" {
			continue
		}
		summaries = append(summaries, fmt.Sprintf("Page %d: %s...", page, truncateRunes(summary, summaryMaxChars)))
	}

	return summaries
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
