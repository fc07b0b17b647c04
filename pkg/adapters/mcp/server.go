package mcp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"golang.org/x/sync/errgroup"

	"github.com/afuentesan/awpak-builder"
	"github.com/afuentesan/awpak-builder/internal/logging"
	"github.com/afuentesan/awpak-builder/pkg/validate"
)

// GraphURIPrefix addresses stored documents as MCP resources.
const GraphURIPrefix = "awpak://graphs/"

// Issue is one validation finding.
type Issue struct {
	Node   string `json:"node,omitempty" jsonschema_description:"Id of the node holding the problem"`
	Field  string `json:"field,omitempty" jsonschema_description:"Wire path of the offending field"`
	Reason string `json:"reason" jsonschema_description:"Human readable description"`
}

// Report is the result of validate_graph.
type Report struct {
	Valid       bool     `json:"valid" jsonschema_description:"True when no issue was found"`
	Unreachable []string `json:"unreachable" jsonschema_description:"Nodes no route from the first node reaches"`
	Issues      []Issue  `json:"issues" jsonschema_description:"Structural problems"`
}

// RenameResult is the result of rename_node.
type RenameResult struct {
	References int `json:"references" jsonschema_description:"Number of node references rewritten"`
}

// DocumentArgs carries an inline wire document.
type DocumentArgs struct {
	Document string `json:"document"`
}

// RenameArgs identifies a node to rename in a stored document.
type RenameArgs struct {
	Graph string `json:"graph"`
	From  string `json:"from"`
	To    string `json:"to"`
}

// Server wraps the Editor and exposes it as an MCP Server.
type Server struct {
	editor    *awpak.Editor
	logger    *slog.Logger
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance. A nil logger discards output.
func NewServer(ed *awpak.Editor, logger *slog.Logger) *Server {
	if logger == nil {
		logger = logging.NewNop()
	}
	s := &Server{
		editor:    ed,
		logger:    logger,
		mcpServer: server.NewMCPServer("awpak-mcp", awpak.Version),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE serves MCP over SSE on port until ctx is done.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.logger.Info("MCP server listening (SSE)", "address", addr)
		if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.logger.Info("shutting down MCP server")
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	})
	return g.Wait()
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) registerTools() {
	validateTool := mcp.NewTool("validate_graph",
		mcp.WithDescription("Decode an awpak graph document and report structural problems."),
		mcp.WithString("document", mcp.Required(), mcp.Description("The graph as wire JSON")),
		mcp.WithOutputSchema[Report](),
	)
	s.mcpServer.AddTool(validateTool, mcp.NewStructuredToolHandler(s.handleValidate))

	s.mcpServer.AddTool(mcp.NewTool("format_graph",
		mcp.WithDescription("Decode an awpak graph document and return its canonical form."),
		mcp.WithString("document", mcp.Required(), mcp.Description("The graph as wire JSON")),
	), s.handleFormat)

	renameTool := mcp.NewTool("rename_node",
		mcp.WithDescription("Rename a node in a stored graph, rewriting every reference to it."),
		mcp.WithString("graph", mcp.Required(), mcp.Description("Stored document name")),
		mcp.WithString("from", mcp.Required(), mcp.Description("Current node id")),
		mcp.WithString("to", mcp.Required(), mcp.Description("New node id")),
		mcp.WithOutputSchema[RenameResult](),
	)
	s.mcpServer.AddTool(renameTool, mcp.NewStructuredToolHandler(s.handleRename))

	s.mcpServer.AddTool(mcp.NewTool("export_graph",
		mcp.WithDescription("Render a stored graph as json, mermaid or dot."),
		mcp.WithString("graph", mcp.Required(), mcp.Description("Stored document name")),
		mcp.WithString("format", mcp.Description("json, mermaid or dot (default mermaid)")),
	), s.handleExport)

	s.mcpServer.AddTool(mcp.NewTool("list_graphs",
		mcp.WithDescription("List stored graph documents."),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		names, err := s.editor.List(ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("list failed: %v", err)), nil
		}
		return mcp.NewToolResultText(strings.Join(names, "\n")), nil
	})
}

func (s *Server) handleValidate(ctx context.Context, request mcp.CallToolRequest, args DocumentArgs) (Report, error) {
	g, err := s.editor.Decode([]byte(args.Document))
	if err != nil {
		return Report{}, fmt.Errorf("decode failed: %w", err)
	}
	report := Report{Unreachable: validate.Unreachable(g), Issues: []Issue{}}
	if report.Unreachable == nil {
		report.Unreachable = []string{}
	}
	for _, is := range validate.Issues(validate.Graph(g)) {
		report.Issues = append(report.Issues, Issue{Node: is.NodeID, Field: is.Field, Reason: is.Reason})
	}
	report.Valid = len(report.Issues) == 0
	return report, nil
}

func (s *Server) handleFormat(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	out, err := s.editor.Format([]byte(request.GetString("document", "")))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("format failed: %v", err)), nil
	}
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) handleRename(ctx context.Context, request mcp.CallToolRequest, args RenameArgs) (RenameResult, error) {
	n, err := s.editor.RenameNode(ctx, args.Graph, args.From, args.To)
	if err != nil {
		s.logger.Warn("MCP rename rejected", "graph", args.Graph, "from", args.From, "err", err)
		return RenameResult{}, fmt.Errorf("rename failed: %w", err)
	}
	return RenameResult{References: n}, nil
}

func (s *Server) handleExport(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	format, err := awpak.ParseFormat(request.GetString("format", string(awpak.FormatMermaid)))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	out, err := s.editor.Export(ctx, request.GetString("graph", ""), format)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("export failed: %v", err)), nil
	}
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) registerResources() {
	s.mcpServer.AddResourceTemplate(mcp.NewResourceTemplate(GraphURIPrefix+"{name}", "Stored graph document",
		mcp.WithTemplateMIMEType("application/json"),
	), s.readGraph)
}

func (s *Server) readGraph(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	uri := request.Params.URI
	name := strings.TrimPrefix(uri, GraphURIPrefix)
	out, err := s.editor.Export(ctx, name, awpak.FormatJSON)
	if err != nil {
		return nil, fmt.Errorf("failed to read graph %s: %w", name, err)
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(out),
		},
	}, nil
}
