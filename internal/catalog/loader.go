package catalog

import (
	"context"

	"go.uber.org/zap"
)

// FailureMessage is the only failure text the view ever shows.
const FailureMessage = "Failed to load anime details. Please try again later."

// Phase tags a LoadState.
type Phase int

const (
	PhaseLoading Phase = iota
	PhaseLoaded
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseLoaded:
		return "loaded"
	case PhaseFailed:
		return "failed"
	default:
		return "loading"
	}
}

// LoadState is the outcome of a catalog load. Items is set only when Phase is
// PhaseLoaded; Message only when PhaseFailed.
type LoadState struct {
	Phase   Phase
	Items   []Item
	Message string
}

// Loading is the state before the load completes.
func Loading() LoadState {
	return LoadState{Phase: PhaseLoading}
}

// Loaded wraps a successfully fetched item list.
func Loaded(items []Item) LoadState {
	if items == nil {
		items = []Item{}
	}
	return LoadState{Phase: PhaseLoaded, Items: items}
}

// Failed carries a user-facing failure message.
func Failed(message string) LoadState {
	return LoadState{Phase: PhaseFailed, Message: message}
}

// Loader turns one catalog fetch into a LoadState.
type Loader struct {
	fetcher Fetcher
	logger  *zap.Logger
}

// NewLoader builds a Loader. A nil logger discards diagnostics.
func NewLoader(fetcher Fetcher, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{fetcher: fetcher, logger: logger.Named("catalog")}
}

// Load performs the fetch exactly once. Failures are logged with their cause
// and reported with FailureMessage only.
func (l *Loader) Load(ctx context.Context) LoadState {
	if l == nil || l.fetcher == nil {
		return Failed(FailureMessage)
	}
	items, err := l.fetcher.FetchCatalog(ctx)
	if err != nil {
		l.logger.Error("Catalog load failed", zap.Error(err))
		return Failed(FailureMessage)
	}
	l.logger.Info("Catalog loaded", zap.Int("items", len(items)))
	return Loaded(items)
}
