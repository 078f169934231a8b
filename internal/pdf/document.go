package pdf

import (
	"os"
	"strings"

	ledongthuc "github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// Metadata holds the document information dictionary fields. Missing fields
// are empty strings.
type Metadata struct {
	Title        string `json:"title,omitempty"`
	Author       string `json:"author,omitempty"`
	Subject      string `json:"subject,omitempty"`
	Creator      string `json:"creator,omitempty"`
	Producer     string `json:"producer,omitempty"`
	CreationDate string `json:"creation_date,omitempty"`
	ModDate      string `json:"modification_date,omitempty"`
}

// OutlineEntry is a single table-of-contents entry. Level is the nesting
// depth, 1 for top-level entries.
type OutlineEntry struct {
	Level int    `json:"level"`
	Title string `json:"title"`
	Page  int    `json:"page"`
}

// Document is the per-operation handle to a decoded PDF. Handles are opened
// at the start of an operation and closed on every exit path; they are never
// shared across tool invocations.
type Document interface {
	PageCount() int
	PageText(page int) (string, error)
	Metadata() Metadata
	Outline() []OutlineEntry
	Close() error
}

// fileDocument backs Document with a file on disk, using ledongthuc/pdf for
// page text and metadata and pdfcpu for the outline.
type fileDocument struct {
	path   string
	file   *os.File
	reader *ledongthuc.Reader
}

// Open validates path and decodes the PDF behind it. Validation order:
// existence, regular file, .pdf extension, decode.
func Open(path string) (Document, error) {
	fileInfo, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil, NotFoundError(path)
	}
	if err != nil {
		return nil, DecodeError(path, err)
	}
	if fileInfo.IsDir() {
		return nil, NotAPDFError(path)
	}
	if !strings.HasSuffix(strings.ToLower(path), ".pdf") {
		return nil, NotAPDFError(path)
	}

	f, reader, err := ledongthuc.Open(path)
	if err != nil {
		return nil, DecodeError(path, err)
	}

	return &fileDocument{path: path, file: f, reader: reader}, nil
}

func (d *fileDocument) PageCount() int {
	return d.reader.NumPage()
}

// PageText extracts the plain text of a 1-indexed page. Pages that fail to
// extract yield empty text rather than an error, matching the scan semantics
// of the search and range operations.
func (d *fileDocument) PageText(page int) (string, error) {
	p := d.reader.Page(page)
	if p.V.IsNull() {
		return "", nil
	}
	text, err := p.GetPlainText(nil)
	if err != nil {
		return "", nil
	}
	return text, nil
}

// Metadata reads the trailer Info dictionary. The ledongthuc Value API can
// panic on malformed dictionaries, so extraction is recover-guarded and
// degrades to whatever was collected before the failure.
func (d *fileDocument) Metadata() Metadata {
	var md Metadata

	defer func() {
		_ = recover()
	}()

	trailer := d.reader.Trailer()
	if trailer.IsNull() {
		return md
	}
	info := trailer.Key("Info")
	if info.IsNull() {
		return md
	}

	fields := []struct {
		key string
		dst *string
	}{
		{"Title", &md.Title},
		{"Author", &md.Author},
		{"Subject", &md.Subject},
		{"Creator", &md.Creator},
		{"Producer", &md.Producer},
		{"CreationDate", &md.CreationDate},
		{"ModDate", &md.ModDate},
	}
	for _, f := range fields {
		if v := info.Key(f.key); !v.IsNull() {
			*f.dst = strings.TrimSpace(v.String())
		}
	}

	return md
}

// Outline returns the document bookmarks flattened depth-first. A document
// without bookmarks yields an empty outline, not an error.
func (d *fileDocument) Outline() []OutlineEntry {
	f, err := os.Open(d.path)
	if err != nil {
		return nil
	}
	defer f.Close()

	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	bookmarks, err := api.Bookmarks(f, conf)
	if err != nil {
		return nil
	}

	return flattenBookmarks(bookmarks, 1, nil)
}

func flattenBookmarks(bookmarks []pdfcpu.Bookmark, level int, entries []OutlineEntry) []OutlineEntry {
	for _, b := range bookmarks {
		entries = append(entries, OutlineEntry{Level: level, Title: b.Title, Page: b.PageFrom})
		if len(b.Kids) > 0 {
			entries = flattenBookmarks(b.Kids, level+1, entries)
		}
	}
	return entries
}

func (d *fileDocument) Close() error {
	return d.file.Close()
}
