package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/sirupsen/logrus"

	"github.com/pdfnav/mcp-pdf-navigator/internal/config"
	"github.com/pdfnav/mcp-pdf-navigator/internal/descriptions"
	"github.com/pdfnav/mcp-pdf-navigator/internal/pdf"
)

// Server represents the MCP server instance
type Server struct {
	config    *config.Config
	navigator *pdf.Service
	logger    *logrus.Logger
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP server instance
func NewServer(cfg *config.Config, navigator *pdf.Service, logger *logrus.Logger) (*Server, error) {
	if navigator == nil {
		return nil, fmt.Errorf("navigator cannot be nil")
	}
	if logger == nil {
		logger = logrus.New()
	}

	mcpServer := server.NewMCPServer(
		cfg.ServerName,
		cfg.Version,
		server.WithToolCapabilities(false), // Tool set is static
		server.WithPromptCapabilities(true),
	)

	s := &Server{
		config:    cfg,
		navigator: navigator,
		logger:    logger,
		mcpServer: mcpServer,
	}

	s.registerTools()
	s.registerPrompts()

	return s, nil
}

// registerTools registers all available MCP tools
func (s *Server) registerTools() {
	openPDFPageTool := mcp.NewTool(
		"open_pdf_page",
		mcp.WithDescription(descriptions.OpenPDFPageDescription),
		mcp.WithString("file_path",
			mcp.Required(),
			mcp.Description("Full path to the PDF file"),
		),
		mcp.WithNumber("page_number",
			mcp.Required(),
			mcp.Description("Page number to open (1-indexed)"),
		),
	)
	s.mcpServer.AddTool(openPDFPageTool, s.handleOpenPDFPage)

	searchPDFTextTool := mcp.NewTool(
		"search_pdf_text",
		mcp.WithDescription(descriptions.SearchPDFTextDescription),
		mcp.WithString("file_path",
			mcp.Required(),
			mcp.Description("Full path to the PDF file"),
		),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Text to search for (case-insensitive literal match)"),
		),
	)
	s.mcpServer.AddTool(searchPDFTextTool, s.handleSearchPDFText)

	getPDFInfoTool := mcp.NewTool(
		"get_pdf_info",
		mcp.WithDescription(descriptions.GetPDFInfoDescription),
		mcp.WithString("file_path",
			mcp.Required(),
			mcp.Description("Full path to the PDF file"),
		),
	)
	s.mcpServer.AddTool(getPDFInfoTool, s.handleGetPDFInfo)

	readPDFTextTool := mcp.NewTool(
		"read_pdf_text",
		mcp.WithDescription(descriptions.ReadPDFTextDescription),
		mcp.WithString("file_path",
			mcp.Required(),
			mcp.Description("Full path to the PDF file"),
		),
		mcp.WithNumber("start_page",
			mcp.Description("First page to read (1-indexed, default 1)"),
		),
		mcp.WithNumber("end_page",
			mcp.Description("Last page to read (1-indexed, inclusive; defaults to the last page)"),
		),
	)
	s.mcpServer.AddTool(readPDFTextTool, s.handleReadPDFText)

	readPDFPageTool := mcp.NewTool(
		"read_pdf_page",
		mcp.WithDescription(descriptions.ReadPDFPageDescription),
		mcp.WithString("file_path",
			mcp.Required(),
			mcp.Description("Full path to the PDF file"),
		),
		mcp.WithNumber("page_number",
			mcp.Required(),
			mcp.Description("Page number to read (1-indexed)"),
		),
	)
	s.mcpServer.AddTool(readPDFPageTool, s.handleReadPDFPage)

	getPDFStructureTool := mcp.NewTool(
		"get_pdf_structure",
		mcp.WithDescription(descriptions.GetPDFStructureDescription),
		mcp.WithString("file_path",
			mcp.Required(),
			mcp.Description("Full path to the PDF file"),
		),
	)
	s.mcpServer.AddTool(getPDFStructureTool, s.handleGetPDFStructure)

	searchAndOpenTool := mcp.NewTool(
		"search_and_open",
		mcp.WithDescription(descriptions.SearchAndOpenDescription),
		mcp.WithString("file_path",
			mcp.Required(),
			mcp.Description("Full path to the PDF file"),
		),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Text to search for"),
		),
		mcp.WithNumber("result_index",
			mcp.Description("Which search result to open (1-indexed, default 1)"),
		),
	)
	s.mcpServer.AddTool(searchAndOpenTool, s.handleSearchAndOpen)
}

// Handler functions

func (s *Server) handleOpenPDFPage(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("file_path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	page, err := requiredPageArg(request, "page_number")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := s.navigator.OpenPage(pdf.OpenPageRequest{Path: path, Page: page})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(result), nil
}

func (s *Server) handleSearchPDFText(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("file_path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	query, err := request.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := s.navigator.SearchText(pdf.SearchTextRequest{Path: path, Query: query})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(result), nil
}

func (s *Server) handleGetPDFInfo(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("file_path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := s.navigator.Info(pdf.InfoRequest{Path: path})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(result), nil
}

func (s *Server) handleReadPDFText(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("file_path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	startPage, err := optionalPageArg(request, "start_page", 1)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	readReq := pdf.ReadTextRequest{Path: path, StartPage: startPage}
	// end_page defaults to the last page only when absent; an explicit value,
	// 0 included, goes through the normal bounds check.
	if raw, ok := request.GetArguments()["end_page"]; ok && raw != nil {
		endPage, err := pdf.ParsePageArg("end_page", raw)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		readReq.EndPage = &endPage
	}

	result, err := s.navigator.ReadText(readReq)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(result), nil
}

func (s *Server) handleReadPDFPage(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("file_path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	page, err := requiredPageArg(request, "page_number")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := s.navigator.ReadPage(pdf.ReadPageRequest{Path: path, Page: page})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(result), nil
}

func (s *Server) handleGetPDFStructure(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("file_path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := s.navigator.Structure(pdf.StructureRequest{Path: path})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(result), nil
}

func (s *Server) handleSearchAndOpen(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("file_path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	query, err := request.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	resultIndex, err := optionalPageArg(request, "result_index", 1)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := s.navigator.SearchAndOpen(pdf.SearchAndOpenRequest{
		Path:        path,
		Query:       query,
		ResultIndex: resultIndex,
	})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(result), nil
}

// requiredPageArg reads a mandatory integer argument. Integral JSON numbers
// and digit strings are both accepted.
func requiredPageArg(request mcp.CallToolRequest, name string) (int, error) {
	raw, ok := request.GetArguments()[name]
	if !ok || raw == nil {
		return 0, fmt.Errorf("%s is required", name)
	}
	return pdf.ParsePageArg(name, raw)
}

// optionalPageArg reads an optional integer argument, falling back to def
// when it is absent or null.
func optionalPageArg(request mcp.CallToolRequest, name string, def int) (int, error) {
	raw, ok := request.GetArguments()[name]
	if !ok || raw == nil {
		return def, nil
	}
	return pdf.ParsePageArg(name, raw)
}

// shutdownTimeout bounds how long a canceled network server may spend
// draining connections.
const shutdownTimeout = 10 * time.Second

// Run starts the MCP server on the configured transport and blocks until the
// server stops or, in the network modes, ctx is canceled.
func (s *Server) Run(ctx context.Context) error {
	switch s.config.Mode {
	case config.ModeStdio:
		return s.runStdio()
	case config.ModeSSE:
		return s.runSSE(ctx)
	case config.ModeHTTP:
		return s.runHTTP(ctx)
	default:
		return fmt.Errorf("unsupported transport: %s", s.config.Mode)
	}
}

// runStdio serves the MCP protocol over standard I/O. Nothing may be written
// to stdout here except protocol frames; the parent process owns the
// lifecycle through stdin.
func (s *Server) runStdio() error {
	s.logger.Debug("starting PDF navigator in stdio mode")
	if err := server.ServeStdio(s.mcpServer); err != nil {
		return fmt.Errorf("failed to serve stdio: %w", err)
	}
	return nil
}

// runSSE serves the MCP protocol over server-sent events until ctx is
// canceled.
func (s *Server) runSSE(ctx context.Context) error {
	addr := s.config.Address()
	s.logger.WithField("address", addr).Info("starting PDF navigator SSE server")

	sseServer := server.NewSSEServer(
		s.mcpServer,
		server.WithBaseURL(fmt.Sprintf("http://%s", addr)),
	)

	errCh := make(chan error, 1)
	go func() {
		errCh <- sseServer.Start(addr)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return sseServer.Shutdown(shutdownCtx)
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to serve SSE: %w", err)
		}
		return nil
	}
}

// runHTTP serves the MCP protocol over streamable HTTP until ctx is canceled.
func (s *Server) runHTTP(ctx context.Context) error {
	addr := s.config.Address()
	s.logger.WithField("address", addr).Info("starting PDF navigator HTTP server")

	httpServer := server.NewStreamableHTTPServer(s.mcpServer)

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpServer.Start(addr)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to serve HTTP: %w", err)
		}
		return nil
	}
}
