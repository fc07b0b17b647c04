package mcp

import (
	"context"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/afuentesan/awpak-builder"
	"github.com/afuentesan/awpak-builder/internal/testutils"
	"github.com/afuentesan/awpak-builder/pkg/adapters/memory"
	"github.com/afuentesan/awpak-builder/pkg/domain"
)

const brokenDoc = `{"first":{"Node":{"id":"a","executor":{"ContextMut":[]},
	"destination":[{"next":{"Node":"b"}}]}}}`

func newTestServer(t *testing.T) *Server {
	t.Helper()
	store := memory.NewStore()
	require.NoError(t, store.Save(context.Background(), "sample", testutils.SampleGraph()))
	return NewServer(awpak.New(store), nil)
}

func callRequest(args map[string]any) mcp.CallToolRequest {
	var req mcp.CallToolRequest
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, res.Content)
	text, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok)
	return text.Text
}

func TestValidateGraph(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	report, err := s.handleValidate(ctx, mcp.CallToolRequest{}, DocumentArgs{Document: brokenDoc})
	require.NoError(t, err)
	assert.False(t, report.Valid)
	require.Len(t, report.Issues, 1)
	assert.Equal(t, "a", report.Issues[0].Node)

	_, err = s.handleValidate(ctx, mcp.CallToolRequest{}, DocumentArgs{Document: "{"})
	assert.Error(t, err)
}

func TestFormatGraph(t *testing.T) {
	s := newTestServer(t)

	res, err := s.handleFormat(context.Background(), callRequest(map[string]any{"document": brokenDoc}))
	require.NoError(t, err)
	assert.False(t, res.IsError)
	assert.Contains(t, resultText(t, res), `"True"`)

	res, err = s.handleFormat(context.Background(), callRequest(map[string]any{"document": "[]"}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
}

func TestRenameNode(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	out, err := s.handleRename(ctx, mcp.CallToolRequest{}, RenameArgs{Graph: "sample", From: "agent", To: "assistant"})
	require.NoError(t, err)
	assert.Equal(t, 5, out.References)

	_, err = s.handleRename(ctx, mcp.CallToolRequest{}, RenameArgs{Graph: "sample", From: "agent", To: "x"})
	assert.ErrorIs(t, err, domain.ErrNodeNotFound)
}

func TestExportGraph(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	res, err := s.handleExport(ctx, callRequest(map[string]any{"graph": "sample"}))
	require.NoError(t, err)
	assert.Contains(t, resultText(t, res), "graph TD")

	res, err = s.handleExport(ctx, callRequest(map[string]any{"graph": "sample", "format": "dot"}))
	require.NoError(t, err)
	assert.Contains(t, resultText(t, res), "digraph")

	res, err = s.handleExport(ctx, callRequest(map[string]any{"graph": "sample", "format": "svg"}))
	require.NoError(t, err)
	assert.True(t, res.IsError)

	res, err = s.handleExport(ctx, callRequest(map[string]any{"graph": "missing"}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
}

func TestReadGraphResource(t *testing.T) {
	s := newTestServer(t)

	var req mcp.ReadResourceRequest
	req.Params.URI = GraphURIPrefix + "sample"
	contents, err := s.readGraph(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, contents, 1)
	text, ok := contents[0].(mcp.TextResourceContents)
	require.True(t, ok)
	assert.Contains(t, text.Text, `"first"`)
}
