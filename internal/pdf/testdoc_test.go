package pdf

import "fmt"

// fakeDocument is an in-memory Document used across the package tests.
// pages[i] is the text of 1-indexed page i+1.
type fakeDocument struct {
	pages    []string
	metadata Metadata
	outline  []OutlineEntry
	pageErrs map[int]error
	closed   bool
}

func (d *fakeDocument) PageCount() int {
	return len(d.pages)
}

func (d *fakeDocument) PageText(page int) (string, error) {
	if err := d.pageErrs[page]; err != nil {
		return "", err
	}
	if page < 1 || page > len(d.pages) {
		return "", fmt.Errorf("page %d out of range", page)
	}
	return d.pages[page-1], nil
}

func (d *fakeDocument) Metadata() Metadata {
	return d.metadata
}

func (d *fakeDocument) Outline() []OutlineEntry {
	return d.outline
}

func (d *fakeDocument) Close() error {
	d.closed = true
	return nil
}
