package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/go-faster/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type stubFetcher struct {
	items []Item
	err   error
	calls int
}

func (s *stubFetcher) FetchCatalog(context.Context) ([]Item, error) {
	s.calls++
	return s.items, s.err
}

func TestLoader_Loaded(t *testing.T) {
	f := &stubFetcher{items: []Item{{ID: 1, Title: "A"}, {ID: 2, Title: "B"}}}
	state := NewLoader(f, nil).Load(context.Background())

	assert.Equal(t, PhaseLoaded, state.Phase)
	assert.Len(t, state.Items, 2)
	assert.Empty(t, state.Message)
	assert.Equal(t, 1, f.calls)
}

func TestLoader_FailureLogsCauseAndHidesIt(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	f := &stubFetcher{err: errors.New("dial tcp: connection refused")}

	state := NewLoader(f, zap.New(core)).Load(context.Background())

	assert.Equal(t, PhaseFailed, state.Phase)
	assert.Equal(t, FailureMessage, state.Message)
	assert.NotContains(t, state.Message, "connection refused")
	assert.Nil(t, state.Items)

	entries := logs.FilterMessage("Catalog load failed").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "catalog", entries[0].LoggerName)
	assert.Contains(t, entries[0].ContextMap()["error"], "connection refused")
}

func TestLoader_HTTP500FailsWithoutRetry(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	require.NoError(t, err)

	state := NewLoader(c, nil).Load(context.Background())
	assert.Equal(t, PhaseFailed, state.Phase)
	assert.Equal(t, FailureMessage, state.Message)
	assert.Equal(t, int32(1), hits.Load())
}

func TestLoader_MissingDataFails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"items":[]}`))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	require.NoError(t, err)

	state := NewLoader(c, nil).Load(context.Background())
	assert.Equal(t, PhaseFailed, state.Phase, "missing data must not render as zero cards")
}

func TestLoadedNormalizesNil(t *testing.T) {
	state := Loaded(nil)
	assert.NotNil(t, state.Items)
	assert.Empty(t, state.Items)
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "loading", PhaseLoading.String())
	assert.Equal(t, "loaded", PhaseLoaded.String())
	assert.Equal(t, "failed", PhaseFailed.String())
}
