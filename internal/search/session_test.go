package search

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/Rishi-raj-19/Visual-Product-Matcher/internal/model"
)

// stubSearcher returns canned results, optionally blocking until
// released so tests can overlap two searches.
type stubSearcher struct {
	results []model.EnrichedResult
	err     error
	block   chan struct{} // nil means return immediately
}

func (s *stubSearcher) Search(ctx context.Context, target model.ImagePayload, mode Mode) ([]model.EnrichedResult, error) {
	if s.block != nil {
		<-s.block
	}
	return s.results, s.err
}

func enriched(id, category string, score float64) model.EnrichedResult {
	return model.EnrichedResult{
		Product:         model.Product{ID: id, Category: category},
		SimilarityScore: score,
	}
}

func TestRun_ReplacesSessionWholesale(t *testing.T) {
	m := NewSessionManager(&stubSearcher{results: []model.EnrichedResult{enriched("p1", "Footwear", 92)}})

	snap, applied := m.Run(context.Background(), target(), ModeVisual)
	if !applied {
		t.Fatal("first search must apply")
	}
	if !snap.Active || snap.Loading {
		t.Errorf("expected active, settled session: %+v", snap)
	}
	if len(snap.Results) != 1 || snap.Results[0].Product.ID != "p1" {
		t.Fatalf("unexpected results: %+v", snap.Results)
	}
	if snap.Origin != "https://example.com/t.png" {
		t.Errorf("origin not carried: %q", snap.Origin)
	}
}

func TestRun_ErrorClearsResults(t *testing.T) {
	ok := &stubSearcher{results: []model.EnrichedResult{enriched("p1", "Footwear", 92)}}
	m := NewSessionManager(ok)
	m.Run(context.Background(), target(), ModeVisual)

	m.searcher = &stubSearcher{err: fmt.Errorf("%w: boom", ErrModelUnavailable)}
	snap, applied := m.Run(context.Background(), target(), ModeVisual)

	if !applied {
		t.Fatal("second search must apply")
	}
	if snap.Error == "" || snap.ErrorKind != "model_unavailable" {
		t.Errorf("expected model_unavailable error, got %+v", snap)
	}
	if len(snap.Results) != 0 {
		t.Errorf("error must clear prior results, got %d", len(snap.Results))
	}
}

func TestRun_MalformedResponseKind(t *testing.T) {
	m := NewSessionManager(&stubSearcher{err: fmt.Errorf("%w: bad json", ErrMalformedResponse)})

	snap, _ := m.Run(context.Background(), target(), ModeVisual)
	if snap.ErrorKind != "malformed_response" {
		t.Errorf("expected malformed_response, got %q", snap.ErrorKind)
	}
}

func TestRun_SupersededSearchIsDiscarded(t *testing.T) {
	slow := &stubSearcher{
		results: []model.EnrichedResult{enriched("old", "Footwear", 10)},
		block:   make(chan struct{}),
	}
	m := NewSessionManager(slow)

	var wg sync.WaitGroup
	var slowApplied bool
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, slowApplied = m.Run(context.Background(), target(), ModeVisual)
	}()

	// Wait until the slow search owns the session, then supersede it.
	waitLoading(t, m)

	m.searcher = &stubSearcher{results: []model.EnrichedResult{enriched("new", "Footwear", 99)}}
	if _, applied := m.Run(context.Background(), target(), ModeVisual); !applied {
		t.Fatal("newer search must apply")
	}

	close(slow.block)
	wg.Wait()

	if slowApplied {
		t.Error("superseded search must report not-applied")
	}
	final := m.Snapshot()
	if len(final.Results) != 1 || final.Results[0].Product.ID != "new" {
		t.Fatalf("stale results leaked into the session: %+v", final.Results)
	}
}

// waitLoading blocks until a search is in flight.
func waitLoading(t *testing.T, m *SessionManager) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !m.Snapshot().Loading {
		if time.Now().After(deadline) {
			t.Fatal("timed out waiting for search to start")
		}
		time.Sleep(time.Millisecond)
	}
}

func TestSetFilters_MinScoreAndCategory(t *testing.T) {
	m := NewSessionManager(&stubSearcher{results: []model.EnrichedResult{
		enriched("a", "Footwear", 95),
		enriched("b", "Clothing", 80),
		enriched("c", "Footwear", 72),
		enriched("d", "Home", 60),
		enriched("e", "Clothing", 40),
	}})
	m.Run(context.Background(), target(), ModeVisual)

	snap := m.SetFilters(Filters{MinScore: 70})
	if len(snap.Visible) != 3 {
		t.Fatalf("expected 3 visible results at min score 70, got %d", len(snap.Visible))
	}
	wantOrder := []string{"a", "b", "c"}
	for i, id := range wantOrder {
		if snap.Visible[i].Product.ID != id {
			t.Errorf("visible[%d] = %s, want %s", i, snap.Visible[i].Product.ID, id)
		}
	}

	snap = m.SetFilters(Filters{MinScore: 70, Category: "Clothing"})
	if len(snap.Visible) != 1 || snap.Visible[0].Product.ID != "b" {
		t.Fatalf("category+score intersection wrong: %+v", snap.Visible)
	}

	// Full results stay untouched by filtering.
	if len(snap.Results) != 5 {
		t.Errorf("filters must not drop stored results, got %d", len(snap.Results))
	}
}

func TestSetFilters_ClampsMinScore(t *testing.T) {
	m := NewSessionManager(&stubSearcher{})

	snap := m.SetFilters(Filters{MinScore: 250})
	if snap.Filters.MinScore != 100 {
		t.Errorf("min score not clamped: %v", snap.Filters.MinScore)
	}
	snap = m.SetFilters(Filters{MinScore: -5})
	if snap.Filters.MinScore != 0 {
		t.Errorf("negative min score not clamped: %v", snap.Filters.MinScore)
	}
	if snap.Filters.Category != AllCategories {
		t.Errorf("empty category should default to All, got %q", snap.Filters.Category)
	}
}

func TestReset_ClearsEverythingAndDiscardsInFlight(t *testing.T) {
	slow := &stubSearcher{
		results: []model.EnrichedResult{enriched("late", "Footwear", 50)},
		block:   make(chan struct{}),
	}
	m := NewSessionManager(slow)

	var wg sync.WaitGroup
	var applied bool
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, applied = m.Run(context.Background(), target(), ModeVisual)
	}()
	waitLoading(t, m)

	m.Reset()
	close(slow.block)
	wg.Wait()

	if applied {
		t.Error("search finishing after reset must be discarded")
	}
	snap := m.Snapshot()
	if snap.Active || snap.Loading || len(snap.Results) != 0 || snap.Error != "" {
		t.Errorf("reset left state behind: %+v", snap)
	}
}

func TestRun_NewSearchResetsFilters(t *testing.T) {
	m := NewSessionManager(&stubSearcher{results: []model.EnrichedResult{enriched("a", "Footwear", 95)}})
	m.Run(context.Background(), target(), ModeVisual)
	m.SetFilters(Filters{MinScore: 90, Category: "Footwear"})

	snap, _ := m.Run(context.Background(), target(), ModeVisual)
	if snap.Filters.MinScore != 0 || snap.Filters.Category != AllCategories {
		t.Errorf("new search must reset filters, got %+v", snap.Filters)
	}
}

func TestParseMode(t *testing.T) {
	if mode, err := ParseMode(""); err != nil || mode != ModeVisual {
		t.Errorf("empty mode should default to visual, got %v %v", mode, err)
	}
	if mode, err := ParseMode("direct"); err != nil || mode != ModeDirect {
		t.Errorf("direct mode parse failed: %v %v", mode, err)
	}
	if _, err := ParseMode("psychic"); err == nil {
		t.Error("unknown mode must error")
	}
}
