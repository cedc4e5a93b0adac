package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/khadamat/marketplace-api/internal/core/domain"
	"github.com/khadamat/marketplace-api/internal/core/ports"
)

type stubCatalogService struct {
	catalog *ports.Catalog
	err     error
}

func (s *stubCatalogService) FetchCatalog(_ context.Context) (*ports.Catalog, error) {
	return s.catalog, s.err
}

func sampleCatalog() *ports.Catalog {
	return &ports.Catalog{
		Categories: []domain.Category{
			{ID: "c1", Name: "مطاعم", Icon: "utensils", IsActive: true},
			{ID: "c2", Name: "ورود", Icon: "bouquet", IsActive: true},
		},
		Stores: []domain.Store{
			{ID: "s1", CategoryID: "c1", Name: "مطعم الشام", Description: "مأكولات شامية", Rating: 4.8, IsActive: true},
			{ID: "s2", CategoryID: "c2", Name: "ورد الجنوب", Description: "باقات ورد", Rating: 4.3, IsActive: true},
		},
	}
}

func TestCatalogHandler_Get(t *testing.T) {
	h := NewCatalogHandler(&stubCatalogService{catalog: sampleCatalog()})

	c, rec := newTestContext(http.MethodGet, "/v1/catalog", "")
	if err := h.Get(c); err != nil {
		t.Fatalf("Get returned error: %v", err)
	}

	var resp catalogResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(resp.Categories) != 2 || len(resp.Stores) != 2 {
		t.Fatalf("unexpected counts: %d categories, %d stores", len(resp.Categories), len(resp.Stores))
	}
	if resp.Categories[0].Icon != "utensils" {
		t.Fatalf("known icon must pass through, got %q", resp.Categories[0].Icon)
	}
	// Unknown icon keys resolve to the fallback.
	if resp.Categories[1].Icon != "shopping-cart" {
		t.Fatalf("unknown icon must fall back, got %q", resp.Categories[1].Icon)
	}
	if resp.Stores[0].DeliveryFeeDisplay == "" {
		t.Fatal("store money display fields must be resolved")
	}
}

func TestCatalogHandler_Get_QueryFilter(t *testing.T) {
	h := NewCatalogHandler(&stubCatalogService{catalog: sampleCatalog()})

	c, rec := newTestContext(http.MethodGet, "/v1/catalog?q=%D9%85%D8%B7%D8%B9%D9%85", "")
	if err := h.Get(c); err != nil {
		t.Fatalf("Get returned error: %v", err)
	}

	var resp catalogResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(resp.Stores) != 1 || resp.Stores[0].ID != "s1" {
		t.Fatalf("expected only the matching store, got %+v", resp.Stores)
	}
	// Categories are not filtered by the store query.
	if len(resp.Categories) != 2 {
		t.Fatalf("categories must be unaffected by q, got %d", len(resp.Categories))
	}
}

func TestCatalogHandler_Get_CategoryFilter(t *testing.T) {
	h := NewCatalogHandler(&stubCatalogService{catalog: sampleCatalog()})

	c, rec := newTestContext(http.MethodGet, "/v1/catalog?category=c2", "")
	if err := h.Get(c); err != nil {
		t.Fatalf("Get returned error: %v", err)
	}

	var resp catalogResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(resp.Stores) != 1 || resp.Stores[0].ID != "s2" {
		t.Fatalf("expected only the category's store, got %+v", resp.Stores)
	}
}
