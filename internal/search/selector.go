package search

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/Rishi-raj-19/Visual-Product-Matcher/internal/catalog"
	"github.com/Rishi-raj-19/Visual-Product-Matcher/internal/gemini"
	"github.com/Rishi-raj-19/Visual-Product-Matcher/internal/model"
)

// Generator is the single surface of the external model the pipeline
// depends on. *gemini.Client satisfies it.
type Generator interface {
	GenerateContent(ctx context.Context, model string, parts []gemini.Part, cfg *gemini.GenerationConfig) (string, error)
}

// ImageFetcher fetches a candidate product image for visual
// comparison. *acquire.Fetcher satisfies it.
type ImageFetcher interface {
	FetchCandidate(ctx context.Context, url string) (model.ImagePayload, error)
}

// Candidate is a catalog product picked for comparison, with its
// fetched image in visual mode.
type Candidate struct {
	Product model.Product
	Image   model.ImagePayload
}

// Selector narrows the catalog to a bounded candidate set before the
// single comparison call.
type Selector struct {
	store           *catalog.Store
	gen             Generator
	fetcher         ImageFetcher
	categorizeModel string
	cap             int

	mu  sync.Mutex // rand.Rand is not safe for concurrent use
	rng *rand.Rand
}

// NewSelector builds a selector. src seeds candidate sampling; pass
// nil for a time-seeded source, or a fixed one in tests to assert
// exact sampled subsets.
func NewSelector(store *catalog.Store, gen Generator, fetcher ImageFetcher, categorizeModel string, cap int, src rand.Source) *Selector {
	if cap <= 0 {
		cap = 12
	}
	if src == nil {
		src = rand.NewSource(time.Now().UnixNano())
	}
	return &Selector{
		store:           store,
		gen:             gen,
		fetcher:         fetcher,
		categorizeModel: categorizeModel,
		cap:             cap,
		rng:             rand.New(src),
	}
}

// Direct returns the whole catalog as lightweight metadata context.
// No candidate images are fetched in direct mode.
func (s *Selector) Direct() []model.Product {
	return s.store.Products()
}

// Visual pre-classifies the target into a catalog category, samples up
// to cap products from that category (whole catalog as fallback) and
// fetches their images concurrently. Unfetchable candidates are
// dropped silently; an empty return means the pipeline should
// short-circuit to an empty result list.
func (s *Selector) Visual(ctx context.Context, target model.ImagePayload) []Candidate {
	pool := s.store.Products()
	if category := s.categorize(ctx, target); category != "" {
		if filtered := s.store.ByCategory(category); len(filtered) > 0 {
			log.Printf("Image categorized as %q, comparing against %d products", category, len(filtered))
			pool = filtered
		} else {
			log.Printf("No products in category %q, falling back to full catalog", category)
		}
	} else {
		log.Printf("Could not categorize image, comparing against full catalog")
	}

	sampled := s.sample(pool)

	// Fan out the image fetches; join back by index so a slow or
	// failed fetch never blocks or evicts another candidate.
	fetched := make([]model.ImagePayload, len(sampled))
	ok := make([]bool, len(sampled))

	var wg sync.WaitGroup
	for i, p := range sampled {
		wg.Add(1)
		go func(i int, p model.Product) {
			defer wg.Done()
			img, err := s.fetcher.FetchCandidate(ctx, p.ImageURL)
			if err != nil {
				log.Printf("Skipping candidate %s: %v", p.ID, err)
				return
			}
			fetched[i] = img
			ok[i] = true
		}(i, p)
	}
	wg.Wait()

	candidates := make([]Candidate, 0, len(sampled))
	for i, p := range sampled {
		if ok[i] {
			candidates = append(candidates, Candidate{Product: p, Image: fetched[i]})
		}
	}
	return candidates
}

// sample picks up to cap products uniformly without replacement. The
// shuffle also randomizes prompt position so no candidate is biased
// by where it lands in the request.
func (s *Selector) sample(pool []model.Product) []model.Product {
	cp := make([]model.Product, len(pool))
	copy(cp, pool)

	s.mu.Lock()
	s.rng.Shuffle(len(cp), func(i, j int) {
		cp[i], cp[j] = cp[j], cp[i]
	})
	s.mu.Unlock()

	if len(cp) > s.cap {
		cp = cp[:s.cap]
	}
	return cp
}

// categorize asks the model which catalog category the target belongs
// to. Any failure falls back to "" (full catalog); categorization is
// an optimization, not a requirement.
func (s *Selector) categorize(ctx context.Context, target model.ImagePayload) string {
	categories := s.store.Categories()
	prompt := fmt.Sprintf(`Analyze the product in the image. From the following list of categories, which one does it best fit into?
Categories: %s.
Respond with only the single best category name from the list.`, strings.Join(categories, ", "))

	parts := []gemini.Part{
		gemini.ImagePart(target.MIMEType, target.Base64),
		gemini.TextPart(prompt),
	}

	text, err := s.gen.GenerateContent(ctx, s.categorizeModel, parts, nil)
	if err != nil {
		log.Printf("Failed to categorize image: %v", err)
		return ""
	}

	return s.store.CanonicalCategory(text)
}
