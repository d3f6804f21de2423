package search

import (
	"log"
	"sort"

	"github.com/Rishi-raj-19/Visual-Product-Matcher/internal/catalog"
	"github.com/Rishi-raj-19/Visual-Product-Matcher/internal/model"
)

// Reconciler joins raw match entries back to catalog records and
// produces the final ordered result list.
type Reconciler struct {
	store *catalog.Store
}

func NewReconciler(store *catalog.Store) *Reconciler {
	return &Reconciler{store: store}
}

// Reconcile joins, validates and orders the raw matches.
//
// Per-entry policy: an identifier with no catalog record (orphan) or a
// score outside [0,100] drops that entry only; the rest of the batch
// is unaffected. Duplicate identifiers keep the highest-scored entry.
// The result is re-sorted descending by score regardless of the
// upstream ordering, and product fields always come from the catalog.
func (r *Reconciler) Reconcile(matches []model.MatchResult) []model.EnrichedResult {
	results := make([]model.EnrichedResult, 0, len(matches))
	index := make(map[string]int, len(matches))
	orphans, outOfRange, duplicates := 0, 0, 0

	for _, m := range matches {
		if m.SimilarityScore < 0 || m.SimilarityScore > 100 {
			outOfRange++
			continue
		}

		product, ok := r.store.Get(m.ProductID)
		if !ok {
			orphans++
			continue
		}

		enriched := model.EnrichedResult{
			Product:         product,
			SimilarityScore: m.SimilarityScore,
			Reason:          m.Reason,
		}

		if i, seen := index[m.ProductID]; seen {
			duplicates++
			if enriched.SimilarityScore > results[i].SimilarityScore {
				results[i] = enriched
			}
			continue
		}

		index[m.ProductID] = len(results)
		results = append(results, enriched)
	}

	// Stable so reconciling the same response twice gives identical
	// output, ties included.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].SimilarityScore > results[j].SimilarityScore
	})

	if orphans > 0 || outOfRange > 0 || duplicates > 0 {
		log.Printf("Reconcile: dropped %d orphan, %d out-of-range, %d duplicate entries (%d kept)",
			orphans, outOfRange, duplicates, len(results))
	}

	return results
}
