package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/pdfnav/mcp-pdf-navigator/internal/descriptions"
)

// Prompt templates. Each renders to a single user message instructing the
// client which navigator tools to call and in what order.

const analyzePaperTemplate = `Analyze the academic paper at %s.

Work through it step by step:
1. Call get_pdf_info to get the title, author and page count.
2. Call get_pdf_structure to see the table of contents and page summaries.
3. Read the abstract and introduction with read_pdf_text (usually the first few pages).
4. Use search_pdf_text to locate the methodology, results and conclusion sections, then read them with read_pdf_page or read_pdf_text.
5. Summarize: the research question, the approach, the key findings and any stated limitations.

Cite page numbers for every claim you take from the paper.`

const findSectionTemplate = `Find the part of %s that covers "%s".

1. Call get_pdf_structure first; if the table of contents names the topic, note the page.
2. Otherwise call search_pdf_text with the topic (try a shorter phrasing if there are no hits).
3. Read the most promising page with read_pdf_page to confirm it is the right place.
4. Once confirmed, call open_pdf_page so the user sees it in their viewer, and report the page number.`

const literatureReviewTemplate = `Extract the facts needed for a literature review from %s.

1. Call get_pdf_info for the citation details (title, author).
2. Call get_pdf_structure to map out the document.
3. Read the relevant sections with read_pdf_text and collect, each with page numbers:
   - the research question or hypothesis
   - the method and sample/dataset
   - the main findings with any reported effect sizes
   - the authors' own stated limitations
4. Present the result as a structured note suitable for a review matrix.`

// registerPrompts registers the guided-workflow prompts
func (s *Server) registerPrompts() {
	analyzePaper := mcp.NewPrompt(
		"analyze_paper",
		mcp.WithPromptDescription(descriptions.AnalyzePaperPromptDescription),
		mcp.WithArgument("file_path",
			mcp.ArgumentDescription("Full path to the PDF file to analyze"),
			mcp.RequiredArgument(),
		),
	)
	s.mcpServer.AddPrompt(analyzePaper, s.handleAnalyzePaperPrompt)

	findSection := mcp.NewPrompt(
		"find_section",
		mcp.WithPromptDescription(descriptions.FindSectionPromptDescription),
		mcp.WithArgument("file_path",
			mcp.ArgumentDescription("Full path to the PDF file"),
			mcp.RequiredArgument(),
		),
		mcp.WithArgument("topic",
			mcp.ArgumentDescription("Section name or topic to locate"),
			mcp.RequiredArgument(),
		),
	)
	s.mcpServer.AddPrompt(findSection, s.handleFindSectionPrompt)

	literatureReview := mcp.NewPrompt(
		"literature_review",
		mcp.WithPromptDescription(descriptions.LiteratureReviewPromptDescription),
		mcp.WithArgument("file_path",
			mcp.ArgumentDescription("Full path to the PDF file"),
			mcp.RequiredArgument(),
		),
	)
	s.mcpServer.AddPrompt(literatureReview, s.handleLiteratureReviewPrompt)
}

func (s *Server) handleAnalyzePaperPrompt(ctx context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	filePath := request.Params.Arguments["file_path"]
	if filePath == "" {
		return nil, fmt.Errorf("file_path is required")
	}

	return mcp.NewGetPromptResult(
		descriptions.AnalyzePaperPromptDescription,
		[]mcp.PromptMessage{
			mcp.NewPromptMessage(mcp.RoleUser, mcp.NewTextContent(fmt.Sprintf(analyzePaperTemplate, filePath))),
		},
	), nil
}

func (s *Server) handleFindSectionPrompt(ctx context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	filePath := request.Params.Arguments["file_path"]
	if filePath == "" {
		return nil, fmt.Errorf("file_path is required")
	}
	topic := request.Params.Arguments["topic"]
	if topic == "" {
		return nil, fmt.Errorf("topic is required")
	}

	return mcp.NewGetPromptResult(
		descriptions.FindSectionPromptDescription,
		[]mcp.PromptMessage{
			mcp.NewPromptMessage(mcp.RoleUser, mcp.NewTextContent(fmt.Sprintf(findSectionTemplate, filePath, topic))),
		},
	), nil
}

func (s *Server) handleLiteratureReviewPrompt(ctx context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	filePath := request.Params.Arguments["file_path"]
	if filePath == "" {
		return nil, fmt.Errorf("file_path is required")
	}

	return mcp.NewGetPromptResult(
		descriptions.LiteratureReviewPromptDescription,
		[]mcp.PromptMessage{
			mcp.NewPromptMessage(mcp.RoleUser, mcp.NewTextContent(fmt.Sprintf(literatureReviewTemplate, filePath))),
		},
	), nil
}
