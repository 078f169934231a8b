package pdf

import (
	"strconv"
	"strings"
)

// PageForResult recovers the page number of the 1-indexed resultIndex from a
// rendered search report, without re-running the search. It locates the line
// whose trimmed form starts with "{resultIndex}." and parses the integer
// between "Page " and ":" on that line.
//
// For any report rendered by SearchReport.Render, PageForResult(rendered, i)
// equals report.Matches[i-1].Page for every valid i.
func PageForResult(rendered string, resultIndex int) (int, error) {
	prefix := strconv.Itoa(resultIndex) + "."

	for _, line := range strings.Split(rendered, "\n") {
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, prefix) {
			continue
		}

		marker := strings.Index(trimmed, "Page ")
		if marker < 0 {
			return 0, ResultNotFoundError(resultIndex)
		}
		rest := trimmed[marker+len("Page "):]

		colon := strings.Index(rest, ":")
		if colon < 0 {
			return 0, ResultNotFoundError(resultIndex)
		}

		page, err := strconv.Atoi(rest[:colon])
		if err != nil {
			return 0, ResultNotFoundError(resultIndex)
		}
		return page, nil
	}

	return 0, ResultNotFoundError(resultIndex)
}
