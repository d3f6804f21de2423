package catalog

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Rishi-raj-19/Visual-Product-Matcher/internal/model"
)

// Store is the static, in-memory product catalog. It is built once at
// startup and read-only afterwards, so no locking is needed.
type Store struct {
	products   []model.Product
	byID       map[string]model.Product
	categories []string
}

// NewStore builds a store from a product list. Products with an empty
// ID or a duplicate ID are rejected.
func NewStore(products []model.Product) (*Store, error) {
	if len(products) == 0 {
		return nil, fmt.Errorf("catalog is empty")
	}

	byID := make(map[string]model.Product, len(products))
	catSet := make(map[string]bool)
	for _, p := range products {
		if p.ID == "" {
			return nil, fmt.Errorf("product %q has no id", p.Name)
		}
		if _, exists := byID[p.ID]; exists {
			return nil, fmt.Errorf("duplicate product id %q", p.ID)
		}
		if p.Price < 0 {
			return nil, fmt.Errorf("product %q has negative price %.2f", p.ID, p.Price)
		}
		byID[p.ID] = p
		catSet[p.Category] = true
	}

	categories := make([]string, 0, len(catSet))
	for c := range catSet {
		categories = append(categories, c)
	}
	sort.Strings(categories)

	cp := make([]model.Product, len(products))
	copy(cp, products)

	return &Store{products: cp, byID: byID, categories: categories}, nil
}

// Products returns a copy of the full catalog.
func (s *Store) Products() []model.Product {
	cp := make([]model.Product, len(s.products))
	copy(cp, s.products)
	return cp
}

// Get looks up a product by ID.
func (s *Store) Get(id string) (model.Product, bool) {
	p, ok := s.byID[id]
	return p, ok
}

// Len returns the number of products in the catalog.
func (s *Store) Len() int {
	return len(s.products)
}

// Categories returns the distinct categories, sorted.
func (s *Store) Categories() []string {
	cp := make([]string, len(s.categories))
	copy(cp, s.categories)
	return cp
}

// ByCategory returns all products in a category. Matching is
// case-insensitive since the category comes back from a model call.
func (s *Store) ByCategory(category string) []model.Product {
	var out []model.Product
	for _, p := range s.products {
		if strings.EqualFold(p.Category, category) {
			out = append(out, p)
		}
	}
	return out
}

// CanonicalCategory maps a model-reported category string onto the
// catalog's spelling, or "" if it matches no known category.
func (s *Store) CanonicalCategory(category string) string {
	for _, c := range s.categories {
		if strings.EqualFold(c, strings.TrimSpace(category)) {
			return c
		}
	}
	return ""
}
