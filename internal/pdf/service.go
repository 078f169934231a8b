package pdf

import (
	"fmt"
	"math"
	"path/filepath"
	"strconv"
	"strings"
)

// Settings is the read side of the persisted navigator settings consumed by
// the service. The concrete store lives in internal/config.
type Settings interface {
	PDFReader() string
	ReaderPath() string
	SearchContextChars() int
	MaxSearchResults() int
}

// ViewerLauncher opens a PDF file in an external viewer at a given page.
// Launching is fire-and-forget; completion of the viewer is never awaited.
type ViewerLauncher interface {
	Open(path string, page int) error
}

// LauncherFactory resolves a configured reader name (and optional executable
// override) to a launcher. Unknown names fail with an UnsupportedReader error.
type LauncherFactory func(reader, readerPath string) (ViewerLauncher, error)

// Service implements the navigator operations. It is constructed once at
// process start and injected into every request handler; it holds no mutable
// state of its own. Each operation opens its own document handle and releases
// it before returning, success or failure.
type Service struct {
	settings    Settings
	newLauncher LauncherFactory

	// open is swapped for a fake in tests.
	open func(path string) (Document, error)
}

// NewService creates a navigator service over the given settings store and
// viewer launcher factory.
func NewService(settings Settings, newLauncher LauncherFactory) *Service {
	return &Service{
		settings:    settings,
		newLauncher: newLauncher,
		open:        Open,
	}
}

// withDocument runs fn over a freshly opened document, guaranteeing the
// handle is released on every exit path.
func (s *Service) withDocument(path string, fn func(doc Document, filename string) (string, error)) (string, error) {
	doc, err := s.open(path)
	if err != nil {
		return "", err
	}
	defer doc.Close()
	return fn(doc, filepath.Base(path))
}

// OpenPage validates the page number against the document and launches the
// configured viewer at that page. The document handle is released before the
// viewer starts; the viewer needs the file, not our handle.
func (s *Service) OpenPage(req OpenPageRequest) (string, error) {
	doc, err := s.open(req.Path)
	if err != nil {
		return "", err
	}
	totalPages := doc.PageCount()
	if err := doc.Close(); err != nil {
		return "", DecodeError(req.Path, err)
	}

	if req.Page < 1 || req.Page > totalPages {
		return "", PageOutOfRangeError("Page", req.Page, totalPages)
	}

	launcher, err := s.newLauncher(s.settings.PDFReader(), s.settings.ReaderPath())
	if err != nil {
		return "", err
	}
	if err := launcher.Open(req.Path, req.Page); err != nil {
		return "", err
	}

	return fmt.Sprintf("Opened %s to page %d", filepath.Base(req.Path), req.Page), nil
}

// SearchText scans the document for the query and returns the rendered
// search report.
func (s *Service) SearchText(req SearchTextRequest) (string, error) {
	report, err := s.searchReport(req.Path, req.Query)
	if err != nil {
		return "", err
	}
	return report.Render(), nil
}

func (s *Service) searchReport(path, query string) (*SearchReport, error) {
	doc, err := s.open(path)
	if err != nil {
		return nil, err
	}
	defer doc.Close()

	engine := NewSearchEngine(s.settings.SearchContextChars(), s.settings.MaxSearchResults())
	return engine.Search(doc, query, filepath.Base(path))
}

// ReadText extracts the text of the requested page range. An omitted end
// page reads through the last page of the document.
func (s *Service) ReadText(req ReadTextRequest) (string, error) {
	return s.withDocument(req.Path, func(doc Document, filename string) (string, error) {
		endPage := doc.PageCount()
		if req.EndPage != nil {
			endPage = *req.EndPage
		}
		return ReadRange(doc, filename, req.StartPage, endPage)
	})
}

// ReadPage extracts the text of a single page.
func (s *Service) ReadPage(req ReadPageRequest) (string, error) {
	return s.withDocument(req.Path, func(doc Document, filename string) (string, error) {
		return ReadPage(doc, filename, req.Page)
	})
}

// Structure returns the outline and page-summary report.
func (s *Service) Structure(req StructureRequest) (string, error) {
	return s.withDocument(req.Path, func(doc Document, filename string) (string, error) {
		return StructureReport(doc, filename), nil
	})
}

// Info returns the metadata report. Title, Author and Subject lines appear
// only when the corresponding field is present in the document.
func (s *Service) Info(req InfoRequest) (string, error) {
	return s.withDocument(req.Path, func(doc Document, filename string) (string, error) {
		md := doc.Metadata()
		lines := []string{
			fmt.Sprintf("PDF Information: %s", filename),
			fmt.Sprintf("Pages: %d", doc.PageCount()),
		}
		if md.Title != "" {
			lines = append(lines, "Title: "+md.Title)
		}
		if md.Author != "" {
			lines = append(lines, "Author: "+md.Author)
		}
		if md.Subject != "" {
			lines = append(lines, "Subject: "+md.Subject)
		}
		return strings.Join(lines, "\n"), nil
	})
}

// SearchAndOpen runs a fresh search, re-parses its rendering to find the page
// of the requested result, and opens the viewer there. A search with no
// matches returns the "No results found" rendering unchanged.
//
// The page is deliberately recovered from the rendered text rather than the
// in-memory report: the rendering is the contract that external callers
// re-parse, and going through it here keeps that contract exercised.
func (s *Service) SearchAndOpen(req SearchAndOpenRequest) (string, error) {
	report, err := s.searchReport(req.Path, req.Query)
	if err != nil {
		return "", err
	}

	rendered := report.Render()
	if len(report.Matches) == 0 {
		return rendered, nil
	}

	page, err := PageForResult(rendered, req.ResultIndex)
	if err != nil {
		return "", err
	}

	opened, err := s.OpenPage(OpenPageRequest{Path: req.Path, Page: page})
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Search result %d: %s", req.ResultIndex, opened), nil
}

// ParsePageArg coerces a tool argument into a page number. Accepted forms are
// integral JSON numbers and strings consisting of an optional leading '-'
// followed by digits; anything else is an InvalidArgument error. name is the
// argument name used in the error message.
func ParsePageArg(name string, value any) (int, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		if v != math.Trunc(v) {
			return 0, InvalidArgumentError(fmt.Sprintf("%s must be an integer, got %v", name, v))
		}
		return int(v), nil
	case string:
		if !isIntegerLiteral(v) {
			return 0, InvalidArgumentError(fmt.Sprintf("%s must be an integer, got %q", name, v))
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return 0, InvalidArgumentError(fmt.Sprintf("%s must be an integer, got %q", name, v))
		}
		return n, nil
	default:
		return 0, InvalidArgumentError(fmt.Sprintf("%s must be an integer, got %T", name, value))
	}
}

func isIntegerLiteral(s string) bool {
	s = strings.TrimPrefix(s, "-")
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
