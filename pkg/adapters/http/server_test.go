package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/afuentesan/awpak-builder"
	"github.com/afuentesan/awpak-builder/internal/testutils"
	"github.com/afuentesan/awpak-builder/pkg/adapters/memory"
	"github.com/afuentesan/awpak-builder/pkg/codec"
	"github.com/afuentesan/awpak-builder/pkg/domain"
	"github.com/afuentesan/awpak-builder/pkg/ports"
)

type fakeWatcher struct{}

func (fakeWatcher) Watch(ctx context.Context) (<-chan struct{}, error) {
	ch := make(chan struct{}, 1)
	ch <- struct{}{}
	close(ch)
	return ch, nil
}

func newTestHandler(t *testing.T, opts ...Option) http.Handler {
	t.Helper()
	store := memory.NewStore()
	require.NoError(t, store.Save(context.Background(), "sample", testutils.SampleGraph()))
	return NewHandler(awpak.New(store), opts...)
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestHealthAndInfo(t *testing.T) {
	h := newTestHandler(t)

	w := do(t, h, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())

	w = do(t, h, http.MethodGet, "/info", "")
	require.Equal(t, http.StatusOK, w.Code)
	var info map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &info))
	assert.Equal(t, "1.0.0", info["api_version"])
	assert.Equal(t, awpak.Version, info["version"])
}

func TestOpenAPIDocumentIsValid(t *testing.T) {
	doc, err := GetSwagger()
	require.NoError(t, err)
	require.NoError(t, doc.Validate(context.Background()))
	for _, path := range []string{"/graphs/{name}", "/graphs/{name}/nodes/{id}/rename", "/validate", "/format"} {
		assert.NotNil(t, doc.Paths.Find(path), path)
	}
}

func TestGraphCRUD(t *testing.T) {
	h := newTestHandler(t)

	w := do(t, h, http.MethodGet, "/graphs", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"graphs":["sample"]}`, w.Body.String())

	w = do(t, h, http.MethodGet, "/graphs/sample", "")
	require.Equal(t, http.StatusOK, w.Code)
	want, err := codec.Marshal(testutils.SampleGraph())
	require.NoError(t, err)
	assert.JSONEq(t, string(want), w.Body.String())

	w = do(t, h, http.MethodPut, "/graphs/copy", string(want))
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = do(t, h, http.MethodDelete, "/graphs/sample", "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = do(t, h, http.MethodGet, "/graphs/sample", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, h, http.MethodPut, "/graphs/bad", `{"first":{"Node":{"id":"a","executor":{"Warp":{}}}}}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, h, http.MethodPut, "/graphs/bad", `not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, h, http.MethodPut, "/graphs/bad", `{"first":{"Node":{"id":"a","executor":{"ContextMut":[]},
		"destination":[{"next":{"Node":"ghost"}}]}}}`)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "/first/Node/destination/0/next/Node")
}

func TestNodeEdits(t *testing.T) {
	h := newTestHandler(t)

	w := do(t, h, http.MethodPost, "/graphs/sample/nodes/agent/rename", `{"to":"assistant"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.JSONEq(t, `{"references":5}`, w.Body.String())

	w = do(t, h, http.MethodPost, "/graphs/sample/nodes/web/rename", `{"to":"assistant"}`)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = do(t, h, http.MethodPost, "/graphs/sample/nodes/ghost/rename", `{"to":"x"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, h, http.MethodDelete, "/graphs/sample/nodes/web", "")
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "unresolved node references")

	w = do(t, h, http.MethodDelete, "/graphs/sample/nodes/web?force=true", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"references":1}`, w.Body.String())

	w = do(t, h, http.MethodDelete, "/graphs/sample/nodes/start", "")
	assert.Equal(t, http.StatusConflict, w.Code)

	w = do(t, h, http.MethodPost, "/graphs/sample/nodes/ctx/kind", `{"executor":"Command"}`)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = do(t, h, http.MethodPost, "/graphs/sample/nodes/ctx/kind", `{"node":"Graph"}`)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = do(t, h, http.MethodPost, "/graphs/sample/nodes/ctx/kind", `{"node":"Graph","executor":"Agent"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, h, http.MethodPost, "/graphs/sample/nodes/ctx/kind", `{"executor":"Teleport"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestValidateAndFormat(t *testing.T) {
	h := newTestHandler(t)
	doc := `{"first":{"Node":{"id":"a","executor":{"ContextMut":[]},
		"destination":[{"next":{"Node":"b"}}]}},"nodes":[{"Node":{"id":"island","executor":{"ContextMut":[]}}}]}`

	w := do(t, h, http.MethodPost, "/validate", doc)
	require.Equal(t, http.StatusOK, w.Code)
	var report reportResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
	assert.False(t, report.Valid)
	assert.Equal(t, []string{"island"}, report.Unreachable)
	require.Len(t, report.Issues, 1)
	assert.Equal(t, "a", report.Issues[0].Node)

	w = do(t, h, http.MethodPost, "/format", doc)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "\n  \"")
	assert.Contains(t, w.Body.String(), `"True"`)
}

func TestExport(t *testing.T) {
	h := newTestHandler(t)

	w := do(t, h, http.MethodGet, "/graphs/sample/export", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.HasPrefix(w.Body.String(), "graph TD"))

	w = do(t, h, http.MethodGet, "/graphs/sample/export?format=dot", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "digraph")

	w = do(t, h, http.MethodGet, "/graphs/sample/export?format=png", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReadOnlyStore(t *testing.T) {
	store := memory.NewStore()
	require.NoError(t, store.Save(context.Background(), "sample", testutils.SampleGraph()))
	h := NewHandler(awpak.New(ports.ReadOnly(store)))

	w := do(t, h, http.MethodDelete, "/graphs/sample", "")
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	w = do(t, h, http.MethodPost, "/graphs/sample/nodes/agent/rename", `{"to":"x"}`)
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestSubscribeEvents(t *testing.T) {
	w := do(t, newTestHandler(t), http.MethodGet, "/events", "")
	assert.Equal(t, http.StatusNotImplemented, w.Code)

	w = do(t, newTestHandler(t, WithWatcher(fakeWatcher{})), http.MethodGet, "/events", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "event: ping")
	assert.Contains(t, w.Body.String(), "data: reload")
}

func TestMetricsRoute(t *testing.T) {
	called := false
	metrics := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("# metrics"))
	})
	instrument := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
			next.ServeHTTP(w, r)
		})
	}
	h := newTestHandler(t, WithMetrics(metrics, instrument))

	w := do(t, h, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "# metrics", w.Body.String())
	assert.True(t, called)
}

func TestCORSPreflight(t *testing.T) {
	w := do(t, newTestHandler(t), http.MethodOptions, "/graphs", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestStatusOf(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, statusOf(domain.ErrGraphNotFound))
	assert.Equal(t, http.StatusBadRequest, statusOf(domain.ErrInvalidGraphName))
	assert.Equal(t, http.StatusInternalServerError, statusOf(assert.AnError))
}
