package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/afuentesan/awpak-builder/internal/testutils"
	"github.com/afuentesan/awpak-builder/pkg/adapters/memory"
	"github.com/afuentesan/awpak-builder/pkg/codec"
	"github.com/afuentesan/awpak-builder/pkg/ports"
)

func TestStoreMiddleware_CountsOperations(t *testing.T) {
	m := New()
	store := m.StoreMiddleware("memory")(memory.NewStore())
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "a", testutils.SampleGraph()))
	_, err := store.Load(ctx, "a")
	require.NoError(t, err)
	_, err = store.Load(ctx, "missing")
	require.Error(t, err)
	_, err = store.List(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.storeOps.WithLabelValues("memory", "save", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.storeOps.WithLabelValues("memory", "load", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.storeOps.WithLabelValues("memory", "load", "not_found")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.storeOps.WithLabelValues("memory", "list", "ok")))
}

func TestStoreMiddleware_Contract(t *testing.T) {
	ports.RunGraphStoreContract(t, New().StoreMiddleware("memory")(memory.NewStore()))
}

func TestObserver_CountsDecodeEvents(t *testing.T) {
	m := New()
	dec := codec.NewDecoder(codec.WithObserver(m.Observer()))

	raw, err := codec.ParseJSON([]byte(`{"Foo": {}}`))
	require.NoError(t, err)
	_, err = dec.DataComparator(raw)
	m.ObserveDecode(err)
	require.NoError(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.decodeEvents.WithLabelValues(string(codec.EventFallback), "DataComparator")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.decodes.WithLabelValues("ok")))
}

func TestHandler_ExposesRegistry(t *testing.T) {
	m := New()
	m.ObserveDecode(nil)

	h := m.Instrument(m.Handler())
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "awpak_graph_decodes_total")
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("200", "get")))
}
