package middleware_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/afuentesan/awpak-builder/internal/testutils"
	"github.com/afuentesan/awpak-builder/pkg/adapters/memory"
	"github.com/afuentesan/awpak-builder/pkg/persistence/middleware"
)

func TestRedactMiddleware_Masking(t *testing.T) {
	underlying := memory.NewStore()
	mw, err := middleware.NewRedactMiddleware([]string{"password", "token"})
	require.NoError(t, err)
	store := mw(underlying)
	ctx := context.Background()

	g := testutils.SampleGraph()
	g.Context["db_password"] = "secret123"
	g.Context["auth"] = map[string]any{"token": "abc", "user": "jdoe"}

	require.NoError(t, store.Save(ctx, "public", g))
	assert.Equal(t, "secret123", g.Context["db_password"], "caller graph must not be modified")

	stored, err := underlying.Load(ctx, "public")
	require.NoError(t, err)
	assert.Equal(t, middleware.Mask, stored.Context["db_password"])
	assert.Equal(t, "en", stored.Context["lang"])

	auth := stored.Context["auth"].(map[string]any)
	assert.Equal(t, middleware.Mask, auth["token"])
	assert.Equal(t, "jdoe", auth["user"])

	assert.Equal(t, middleware.Mask, agentKey(t, stored))
	assert.Equal(t, middleware.Mask, storeKey(stored))
}

func TestRedactMiddleware_InvalidPattern(t *testing.T) {
	_, err := middleware.NewRedactMiddleware([]string{"("})
	assert.Error(t, err)
}

func TestChain_OrderIsOutermostFirst(t *testing.T) {
	underlying := memory.NewStore()
	redact, err := middleware.NewRedactMiddleware(nil)
	require.NoError(t, err)
	encrypt := middleware.NewEncryptionMiddleware(middleware.EncryptionConfig{ActiveKey: generateKey(t)})

	// Redaction runs first, so the sealed value is the mask itself.
	store := middleware.Chain(underlying, redact, encrypt)
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, "chained", testutils.SampleGraph()))

	loaded, err := store.Load(ctx, "chained")
	require.NoError(t, err)
	assert.Equal(t, middleware.Mask, agentKey(t, loaded))
}
