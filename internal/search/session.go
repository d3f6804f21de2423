package search

import (
	"context"
	"errors"
	"sync"

	"github.com/Rishi-raj-19/Visual-Product-Matcher/internal/model"
)

// AllCategories is the category filter value that disables category
// filtering.
const AllCategories = "All"

// Searcher runs one search. *Pipeline satisfies it; tests substitute
// stubs.
type Searcher interface {
	Search(ctx context.Context, target model.ImagePayload, mode Mode) ([]model.EnrichedResult, error)
}

// Filters is the presentation-side view state: results are shown when
// score >= MinScore and the category matches (or is "All").
type Filters struct {
	MinScore float64 `json:"minScore"`
	Category string  `json:"category"`
}

// Snapshot is an immutable view of the current session handed to the
// presentation layer.
type Snapshot struct {
	Active    bool                   `json:"active"`
	Loading   bool                   `json:"loading"`
	Origin    string                 `json:"origin,omitempty"`
	Error     string                 `json:"error,omitempty"`
	ErrorKind string                 `json:"errorKind,omitempty"`
	Filters   Filters                `json:"filters"`
	Results   []model.EnrichedResult `json:"results"`
	Visible   []model.EnrichedResult `json:"visible"`
}

// SessionManager holds the single in-flight SearchSession. Each new
// search replaces the previous one wholesale; a superseded search's
// eventual outcome is discarded on arrival (cancellation by
// replacement, tracked with a generation counter). State is never
// left partially updated: either a full result list lands, or the
// error is set and results are cleared.
type SessionManager struct {
	searcher Searcher

	mu         sync.Mutex
	generation uint64
	active     bool
	loading    bool
	origin     string
	err        error
	filters    Filters
	results    []model.EnrichedResult
}

func NewSessionManager(searcher Searcher) *SessionManager {
	return &SessionManager{
		searcher: searcher,
		filters:  Filters{Category: AllCategories},
	}
}

// Run starts a new search, runs it to completion and applies the
// outcome if no newer search superseded it meanwhile. The returned
// bool is false when this search was superseded; its snapshot must
// then be ignored by the caller.
func (m *SessionManager) Run(ctx context.Context, target model.ImagePayload, mode Mode) (Snapshot, bool) {
	gen := m.begin(target)
	results, err := m.searcher.Search(ctx, target, mode)
	return m.finish(gen, results, err)
}

func (m *SessionManager) begin(target model.ImagePayload) uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.generation++
	m.active = true
	m.loading = true
	m.origin = target.Origin
	m.err = nil
	m.results = nil
	m.filters = Filters{Category: AllCategories}
	return m.generation
}

func (m *SessionManager) finish(gen uint64, results []model.EnrichedResult, err error) (Snapshot, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if gen != m.generation {
		// A newer search owns the session now.
		return Snapshot{}, false
	}

	m.loading = false
	if err != nil {
		m.err = err
		m.results = nil
	} else {
		m.err = nil
		m.results = results
	}
	return m.snapshotLocked(), true
}

// SetFilters updates the presentation filters and returns the new
// view. MinScore is clamped to [0,100]; an empty category means all.
func (m *SessionManager) SetFilters(f Filters) Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	if f.Category == "" {
		f.Category = AllCategories
	}
	if f.MinScore < 0 {
		f.MinScore = 0
	}
	if f.MinScore > 100 {
		f.MinScore = 100
	}
	m.filters = f
	return m.snapshotLocked()
}

// Reset clears the session. The generation bump discards any search
// still in flight.
func (m *SessionManager) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.generation++
	m.active = false
	m.loading = false
	m.origin = ""
	m.err = nil
	m.results = nil
	m.filters = Filters{Category: AllCategories}
}

// Snapshot returns the current session view.
func (m *SessionManager) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshotLocked()
}

func (m *SessionManager) snapshotLocked() Snapshot {
	snap := Snapshot{
		Active:  m.active,
		Loading: m.loading,
		Origin:  m.origin,
		Filters: m.filters,
		Results: append([]model.EnrichedResult(nil), m.results...),
		Visible: m.visibleLocked(),
	}
	if m.err != nil {
		snap.Error = m.err.Error()
		snap.ErrorKind = errorKind(m.err)
	}
	return snap
}

// visibleLocked applies the client-side filter intersection:
// score >= MinScore AND (category == All OR category == selected).
func (m *SessionManager) visibleLocked() []model.EnrichedResult {
	visible := make([]model.EnrichedResult, 0, len(m.results))
	for _, r := range m.results {
		if r.SimilarityScore < m.filters.MinScore {
			continue
		}
		if m.filters.Category != AllCategories && r.Product.Category != m.filters.Category {
			continue
		}
		visible = append(visible, r)
	}
	return visible
}

func errorKind(err error) string {
	switch {
	case errors.Is(err, ErrModelUnavailable):
		return "model_unavailable"
	case errors.Is(err, ErrMalformedResponse):
		return "malformed_response"
	default:
		return "internal"
	}
}
