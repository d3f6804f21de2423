package catalog

import (
	"reflect"
	"testing"

	"github.com/Rishi-raj-19/Visual-Product-Matcher/internal/model"
)

func sampleProducts() []model.Product {
	return []model.Product{
		{ID: "p1", Name: "Sneakers", Category: "Footwear", Price: 89.99, ImageURL: "https://example.com/1.jpg"},
		{ID: "p2", Name: "Boots", Category: "Footwear", Price: 150, ImageURL: "https://example.com/2.jpg"},
		{ID: "p3", Name: "Jacket", Category: "Clothing", Price: 75, ImageURL: "https://example.com/3.jpg"},
	}
}

func TestNewStore_RejectsBadCatalogs(t *testing.T) {
	if _, err := NewStore(nil); err == nil {
		t.Error("empty catalog must be rejected")
	}
	if _, err := NewStore([]model.Product{{ID: "", Name: "x"}}); err == nil {
		t.Error("missing id must be rejected")
	}
	if _, err := NewStore([]model.Product{{ID: "a"}, {ID: "a"}}); err == nil {
		t.Error("duplicate id must be rejected")
	}
	if _, err := NewStore([]model.Product{{ID: "a", Price: -1}}); err == nil {
		t.Error("negative price must be rejected")
	}
}

func TestStore_Lookups(t *testing.T) {
	store, err := NewStore(sampleProducts())
	if err != nil {
		t.Fatal(err)
	}

	if store.Len() != 3 {
		t.Errorf("expected 3 products, got %d", store.Len())
	}
	p, ok := store.Get("p2")
	if !ok || p.Name != "Boots" {
		t.Errorf("Get(p2) = %+v, %v", p, ok)
	}
	if _, ok := store.Get("p99"); ok {
		t.Error("Get of unknown id must report false")
	}
	if got := store.Categories(); !reflect.DeepEqual(got, []string{"Clothing", "Footwear"}) {
		t.Errorf("Categories() = %v", got)
	}
	if got := len(store.ByCategory("Footwear")); got != 2 {
		t.Errorf("ByCategory(Footwear) = %d products", got)
	}
	if got := len(store.ByCategory("FOOTWEAR")); got != 2 {
		t.Errorf("ByCategory must be case-insensitive, got %d", got)
	}
}

func TestStore_CanonicalCategory(t *testing.T) {
	store, err := NewStore(sampleProducts())
	if err != nil {
		t.Fatal(err)
	}

	if got := store.CanonicalCategory(" footwear \n"); got != "Footwear" {
		t.Errorf("CanonicalCategory = %q", got)
	}
	if got := store.CanonicalCategory("Spaceships"); got != "" {
		t.Errorf("unknown category must map to empty, got %q", got)
	}
}

func TestStore_ProductsReturnsCopy(t *testing.T) {
	store, err := NewStore(sampleProducts())
	if err != nil {
		t.Fatal(err)
	}

	products := store.Products()
	products[0].Name = "tampered"

	fresh, _ := store.Get("p1")
	if fresh.Name == "tampered" {
		t.Error("mutating the returned slice must not touch the store")
	}
}

func TestSeedCatalogIsValid(t *testing.T) {
	store, err := NewStore(seedProducts)
	if err != nil {
		t.Fatalf("seed catalog invalid: %v", err)
	}
	if store.Len() != 50 {
		t.Errorf("expected 50 seed products, got %d", store.Len())
	}
	if len(store.Categories()) != 5 {
		t.Errorf("expected 5 seed categories, got %v", store.Categories())
	}
}
