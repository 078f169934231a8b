package pdf

import (
	"fmt"
	"strings"
)

// ReadRange extracts the concatenated text of the inclusive 1-indexed page
// range [startPage, endPage]. Both bounds are validated against the document;
// defaulting an omitted end page happens at the request layer, never here, so
// an explicit 0 fails the bounds check like any other value.
//
// Validation is fail-fast and ordered: start bounds, end bounds, start <= end.
// No page text is read before validation passes. Pages whose trimmed text is
// empty are skipped entirely; each retained page is rendered as a labeled
// block, blocks separated by a blank line. A range where every page is empty
// yields a distinct "no text found" message rather than an empty string.
func ReadRange(doc Document, filename string, startPage, endPage int) (string, error) {
	totalPages := doc.PageCount()

	if startPage < 1 || startPage > totalPages {
		return "", PageOutOfRangeError("Start page", startPage, totalPages)
	}
	if endPage < 1 || endPage > totalPages {
		return "", PageOutOfRangeError("End page", endPage, totalPages)
	}
	if startPage > endPage {
		return "", InvalidRangeError(startPage, endPage)
	}

	var blocks []string
	for page := startPage; page <= endPage; page++ {
		text, err := doc.PageText(page)
		if err != nil {
			continue
		}
		if strings.TrimSpace(text) == "" {
			continue
		}
		blocks = append(blocks, fmt.Sprintf("--- Page %d ---\n%s", page, text))
	}

	if len(blocks) == 0 {
		return fmt.Sprintf("No text found in pages %d-%d of %s", startPage, endPage, filename), nil
	}

	return strings.Join(blocks, "\n\n"), nil
}

// ReadPage extracts the text of a single 1-indexed page. It is exactly
// ReadRange over the degenerate range [page, page].
func ReadPage(doc Document, filename string, page int) (string, error) {
	return ReadRange(doc, filename, page, page)
}
