package pdf

// Request Types

// OpenPageRequest asks for a PDF to be opened in the configured viewer at a
// specific 1-indexed page.
type OpenPageRequest struct {
	Path string `json:"file_path"`
	Page int    `json:"page_number"`
}

// SearchTextRequest asks for a full-text search of a PDF.
type SearchTextRequest struct {
	Path  string `json:"file_path"`
	Query string `json:"query"`
}

// ReadTextRequest asks for the text of an inclusive page range. A nil EndPage
// means "through the last page"; an explicit value, including 0, is validated
// against the document.
type ReadTextRequest struct {
	Path      string `json:"file_path"`
	StartPage int    `json:"start_page"`
	EndPage   *int   `json:"end_page,omitempty"`
}

// ReadPageRequest asks for the text of a single 1-indexed page.
type ReadPageRequest struct {
	Path string `json:"file_path"`
	Page int    `json:"page_number"`
}

// StructureRequest asks for the outline and page-summary report.
type StructureRequest struct {
	Path string `json:"file_path"`
}

// InfoRequest asks for the metadata report.
type InfoRequest struct {
	Path string `json:"file_path"`
}

// SearchAndOpenRequest asks for a search followed by opening the viewer at
// the page of the 1-indexed ResultIndex-th match.
type SearchAndOpenRequest struct {
	Path        string `json:"file_path"`
	Query       string `json:"query"`
	ResultIndex int    `json:"result_index"`
}
