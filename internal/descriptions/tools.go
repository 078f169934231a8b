package descriptions

// Tool descriptions with practical examples and use cases

const (
	OpenPDFPageDescription = `Open a PDF file in the configured desktop viewer at a specific page.

**When to use:** You found the page you care about (via search or the structure report) and want to show it to the user in their PDF reader.

**Examples:**
• Jump to results: "Open methods-paper.pdf to page 12 where the experiment setup starts"
• Follow the outline: "Open the chapter that get_pdf_structure listed at page 45"

**Best practices:** Page numbers are 1-indexed. The viewer (Skim, Zathura, Evince, SumatraPDF or Acrobat) comes from the persisted navigator settings.`

	SearchPDFTextDescription = `Search a PDF for a literal text string and get page numbers with surrounding context.

**When to use:** You need to locate where a term, phrase or citation appears in a document.

**Why it's useful:** Matching is case-insensitive and every hit comes with a context window, so you can judge relevance without reading whole pages. Results are capped (at most 3 per page) to stay readable.

**Examples:**
• Find a concept: "Search thesis.pdf for 'convolutional'"
• Track a citation: "Search review.pdf for 'Smith et al.'"

**Common workflows:**
1. Locate & read: search_pdf_text → read_pdf_page on the hit pages
2. Locate & show: search_pdf_text → search_and_open to jump the viewer there

**Best practices:** This is literal substring search, not regex or fuzzy matching.`

	GetPDFInfoDescription = `Get metadata and basic information about a PDF file.

**When to use:** You need the page count, title, author or subject before deciding how to process a document.

**Examples:**
• Sizing up a document: "How many pages does handbook.pdf have?"
• Cataloguing: "Get title and author of every paper in the reading list"`

	ReadPDFTextDescription = `Read text content from a range of PDF pages.

**When to use:** You want the actual text of part (or all) of a document for analysis or summarization.

**Why it's useful:** Pages come back as labeled blocks, so page boundaries stay visible in the extracted text. Empty pages are skipped.

**Examples:**
• Read a chapter: "Read pages 12-31 of textbook.pdf"
• Read everything: "Read report.pdf" (start_page defaults to 1, end_page to the last page)

**Best practices:** Both bounds are 1-indexed and inclusive. For a single page, read_pdf_page is the shorthand.`

	ReadPDFPageDescription = `Read text content from a single PDF page.

**When to use:** A search result or outline entry pointed you at one page and you want just that page's text.

**Examples:**
• Follow up a search hit: "Read page 7 of paper.pdf where the match was found"`

	GetPDFStructureDescription = `Get a PDF's structure: table of contents and per-page summaries.

**When to use:** First contact with an unfamiliar document — the structure report is the fastest way to learn how it is organized.

**Why it's useful:** Combines the embedded outline (with nesting and page targets) with a one-line summary of each page built from its first lines of text.

**Common workflows:**
1. Orient: get_pdf_structure → pick sections → read_pdf_text on their ranges
2. Navigate: get_pdf_structure → open_pdf_page at an outline target`

	SearchAndOpenDescription = `Search a PDF and open the viewer at a chosen result.

**When to use:** You want to jump straight from a query to looking at the matching page, in one step.

**Examples:**
• First hit: "Search lecture-notes.pdf for 'gradient descent' and open it"
• Specific hit: "Open the third result for 'Table 2' in results.pdf"

**Best practices:** result_index is 1-indexed into the search result list; run search_pdf_text first if you want to inspect the results before opening one.`
)

// Prompt descriptions

const (
	AnalyzePaperPromptDescription = "Guided workflow for analyzing an academic paper: " +
		"metadata, structure, targeted section reading and note taking."

	FindSectionPromptDescription = "Guided workflow for locating a specific section or topic " +
		"in a PDF and opening it in the viewer."

	LiteratureReviewPromptDescription = "Guided workflow for extracting the review-relevant facts " +
		"(question, method, findings, limitations) from a paper."
)
