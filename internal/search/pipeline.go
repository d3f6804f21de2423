// Package search implements the candidate selection and
// result-reconciliation pipeline around the external similarity
// model: selector -> requester -> reconciler.
package search

import (
	"context"
	"fmt"
	"log"

	"github.com/Rishi-raj-19/Visual-Product-Matcher/internal/model"
)

// Mode selects the comparison strategy.
type Mode string

const (
	// ModeVisual pre-classifies the target, samples candidates from
	// the matching category and compares images directly.
	ModeVisual Mode = "visual"
	// ModeDirect sends the whole catalog's metadata as text context
	// and lets the model choose by identifier.
	ModeDirect Mode = "direct"
)

// ParseMode maps a request string onto a Mode, defaulting to visual.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", string(ModeVisual):
		return ModeVisual, nil
	case string(ModeDirect):
		return ModeDirect, nil
	default:
		return "", fmt.Errorf("unknown search mode %q", s)
	}
}

// Pipeline runs one search end to end. A single search is fully
// sequential; the only internal parallelism is the selector's
// candidate image fan-out.
type Pipeline struct {
	selector   *Selector
	requester  *Requester
	reconciler *Reconciler
}

func NewPipeline(selector *Selector, requester *Requester, reconciler *Reconciler) *Pipeline {
	return &Pipeline{selector: selector, requester: requester, reconciler: reconciler}
}

// Search produces the ordered, catalog-joined result list for one
// target image.
func (p *Pipeline) Search(ctx context.Context, target model.ImagePayload, mode Mode) ([]model.EnrichedResult, error) {
	var matches []model.MatchResult
	var err error

	switch mode {
	case ModeDirect:
		matches, err = p.requester.Direct(ctx, target, p.selector.Direct())
	default:
		candidates := p.selector.Visual(ctx, target)
		if len(candidates) == 0 {
			// Nothing fetchable to compare against: empty result,
			// no model call.
			log.Printf("No fetchable candidates, returning empty result")
			return []model.EnrichedResult{}, nil
		}
		matches, err = p.requester.Visual(ctx, target, candidates)
	}
	if err != nil {
		return nil, err
	}

	return p.reconciler.Reconcile(matches), nil
}
