package pdf

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// maxMatchesPerPage caps how many matches a single page may contribute.
const maxMatchesPerPage = 3

// SearchMatch is a single occurrence of the query. Page is 1-indexed; Offset
// is the byte position of the match start within the page's extracted text.
type SearchMatch struct {
	Page    int    `json:"page"`
	Context string `json:"context"`
	Offset  int    `json:"offset"`
}

// SearchReport is the ordered result of one search call: matches in scan
// order (page ascending, offset ascending within a page), paired with the
// query and the source file name they were computed for.
type SearchReport struct {
	Query    string        `json:"query"`
	Filename string        `json:"filename"`
	Matches  []SearchMatch `json:"matches"`
}

// SearchEngine scans document pages for case-insensitive literal substring
// occurrences of a query. Every search rescans the document; nothing is
// indexed or persisted.
type SearchEngine struct {
	contextChars int
	maxResults   int
}

// NewSearchEngine creates a search engine with the given context window size
// and global result cap.
func NewSearchEngine(contextChars, maxResults int) *SearchEngine {
	return &SearchEngine{
		contextChars: contextChars,
		maxResults:   maxResults,
	}
}

// Search scans doc for query. Matching is a rune-wise case-folded scan of the
// original page text, never a lowered copy: case conversion can change a
// rune's byte length, so offsets computed in a lowered string would not be
// valid positions in the text they are reported against.
//
// Each page contributes at most maxMatchesPerPage matches. The global cap is
// checked only at page boundaries, so the page that crosses it still finishes
// accumulating its own matches first; callers may observe up to
// maxMatchesPerPage-1 matches beyond the configured maximum.
func (e *SearchEngine) Search(doc Document, query, filename string) (*SearchReport, error) {
	if query == "" {
		return nil, InvalidArgumentError("search query cannot be empty")
	}

	report := &SearchReport{Query: query, Filename: filename}

	for page := 1; page <= doc.PageCount(); page++ {
		text, err := doc.PageText(page)
		if err != nil {
			continue
		}

		pageMatches := 0
		searchFrom := 0
		for {
			pos, matchLen := indexFold(text, query, searchFrom)
			if pos < 0 {
				break
			}

			report.Matches = append(report.Matches, SearchMatch{
				Page:    page,
				Context: e.contextWindow(text, pos, matchLen),
				Offset:  pos,
			})

			// Advance by one so overlapping occurrences are still found.
			searchFrom = pos + 1

			pageMatches++
			if pageMatches >= maxMatchesPerPage {
				break
			}
		}

		if len(report.Matches) >= e.maxResults {
			break
		}
	}

	return report, nil
}

// indexFold finds the first case-insensitive occurrence of substr in s at or
// after byte offset from. It returns the byte offset of the match in s and
// the byte length of the matched segment of s, which can differ from
// len(substr) when case conversion changes a rune's encoded length. A from
// that lands mid-rune realigns on the next boundary. Returns -1, 0 when
// there is no match.
func indexFold(s, substr string, from int) (pos, matchLen int) {
	if from < 0 {
		from = 0
	}
	for i := from; i < len(s); {
		if n, ok := hasPrefixFold(s[i:], substr); ok {
			return i, n
		}
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
	}
	return -1, 0
}

// hasPrefixFold reports whether s starts with a case-insensitive match of
// prefix, and how many bytes of s that match spans.
func hasPrefixFold(s, prefix string) (int, bool) {
	n := 0
	for _, pr := range prefix {
		r, size := utf8.DecodeRuneInString(s[n:])
		if size == 0 {
			return 0, false
		}
		if unicode.ToLower(r) != unicode.ToLower(pr) {
			return 0, false
		}
		n += size
	}
	return n, true
}

// contextWindow slices the text around a match at pos and normalizes its
// whitespace. The window never shrinks below the matched substring itself.
func (e *SearchEngine) contextWindow(text string, pos, matchLen int) string {
	start := pos - e.contextChars/2
	if start < 0 {
		start = 0
	}
	end := pos + matchLen + e.contextChars/2
	if end > len(text) {
		end = len(text)
	}

	// Nudge the window edges onto rune boundaries so the byte arithmetic can
	// never split a character in multi-byte text.
	for start < pos && !utf8.RuneStart(text[start]) {
		start++
	}
	for end > pos+matchLen && end < len(text) && !utf8.RuneStart(text[end]) {
		end--
	}

	return strings.Join(strings.Fields(text[start:end]), " ")
}

// Render serializes the report into the exact textual form that
// PageForResult re-parses. Do not change this format without changing the
// parser to match.
func (r *SearchReport) Render() string {
	if len(r.Matches) == 0 {
		return fmt.Sprintf("No results found for '%s' in %s", r.Query, r.Filename)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d results for '%s' in %s:\n", len(r.Matches), r.Query, r.Filename)
	for i, m := range r.Matches {
		fmt.Fprintf(&b, "\n%d. Page %d: ...%s...", i+1, m.Page, m.Context)
	}
	return b.String()
}
