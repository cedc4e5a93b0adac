package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/khadamat/marketplace-api/internal/core/domain"
	"github.com/khadamat/marketplace-api/internal/core/ports"
)

type stubDashboardService struct {
	snapshot *ports.DashboardSnapshot
	fetchErr error

	deletedCollection ports.Collection
	deletedID         string
	deleteErr         error
}

func (s *stubDashboardService) FetchAll(_ context.Context, _ string) (*ports.DashboardSnapshot, error) {
	return s.snapshot, s.fetchErr
}

func (s *stubDashboardService) Delete(_ context.Context, _ string, collection ports.Collection, id string) (*ports.DashboardSnapshot, error) {
	s.deletedCollection = collection
	s.deletedID = id
	if s.deleteErr != nil {
		return nil, s.deleteErr
	}
	return s.snapshot, nil
}

func sampleSnapshot() *ports.DashboardSnapshot {
	return &ports.DashboardSnapshot{
		Stores: []domain.Store{
			{ID: "s1", OwnerID: "u1", Name: "مطعم الشام", Rating: 4.8, IsActive: true},
		},
		Properties: []domain.Property{
			{ID: "p1", OwnerID: "u1", Title: "فيلا في الرياض", PropertyType: domain.PropertyVilla, Price: 1200000},
		},
		Vehicles: []domain.Vehicle{},
		Orders: []domain.Order{
			{ID: "o1", CustomerID: "u1", StoreName: "مطعم الشام", TotalAmount: 85.5, Status: domain.OrderDelivered, CreatedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)},
		},
		Stats: ports.DashboardStats{Stores: 1, Properties: 1, Vehicles: 0, Orders: 1},
	}
}

func authedContext(method, target string) (echo.Context, func() *dashboardResponse) {
	c, rec := newTestContext(method, target, "")
	c.Set("user_id", "u1")
	decode := func() *dashboardResponse {
		var resp dashboardResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			panic(err)
		}
		return &resp
	}
	return c, decode
}

func TestDashboardHandler_Get(t *testing.T) {
	svc := &stubDashboardService{snapshot: sampleSnapshot()}
	h := NewDashboardHandler(svc)

	c, decode := authedContext(http.MethodGet, "/v1/dashboard")
	if err := h.Get(c); err != nil {
		t.Fatalf("Get returned error: %v", err)
	}

	resp := decode()
	if resp.Stats.Stores != 1 || resp.Stats.Orders != 1 {
		t.Fatalf("unexpected stats: %+v", resp.Stats)
	}
	if len(resp.Properties) != 1 || resp.Properties[0].TypeLabel != "فيلا" {
		t.Fatalf("property label not resolved: %+v", resp.Properties)
	}
	if resp.Orders[0].StatusLabel != "تم التوصيل" || resp.Orders[0].BadgeVariant != "default" {
		t.Fatalf("order display fields not resolved: %+v", resp.Orders[0])
	}
	if resp.Orders[0].TotalDisplay == "" {
		t.Fatal("order total display is empty")
	}
	// Empty slots serialize as [], never null.
	if resp.Vehicles == nil {
		t.Fatal("vehicles slot decoded as nil")
	}
}

func TestDashboardHandler_Get_Unauthenticated(t *testing.T) {
	h := NewDashboardHandler(&stubDashboardService{})

	c, _ := newTestContext(http.MethodGet, "/v1/dashboard", "")
	err := h.Get(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without identity, got %v", err)
	}
}

func TestDashboardHandler_Delete(t *testing.T) {
	svc := &stubDashboardService{snapshot: sampleSnapshot()}
	h := NewDashboardHandler(svc)

	c, decode := authedContext(http.MethodDelete, "/v1/dashboard/stores/s9")
	c.SetParamNames("collection", "id")
	c.SetParamValues("stores", "s9")

	if err := h.Delete(c); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if svc.deletedCollection != ports.CollectionStores || svc.deletedID != "s9" {
		t.Fatalf("delete not forwarded: %s/%s", svc.deletedCollection, svc.deletedID)
	}

	// The response is the refetched snapshot.
	if resp := decode(); resp.Stats.Stores != 1 {
		t.Fatalf("expected refetched snapshot in response, got %+v", resp.Stats)
	}
}

func TestDashboardHandler_Delete_UnknownCollection(t *testing.T) {
	svc := &stubDashboardService{snapshot: sampleSnapshot()}
	h := NewDashboardHandler(svc)

	c, _ := authedContext(http.MethodDelete, "/v1/dashboard/orders/o1")
	c.SetParamNames("collection", "id")
	c.SetParamValues("orders", "o1")

	err := h.Delete(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for non-deletable collection, got %v", err)
	}
	if svc.deletedID != "" {
		t.Fatal("service must not be called for an unknown collection")
	}
}

func TestDashboardHandler_Delete_NotFound(t *testing.T) {
	svc := &stubDashboardService{deleteErr: domain.ErrStoreNotFound}
	h := NewDashboardHandler(svc)

	c, _ := authedContext(http.MethodDelete, "/v1/dashboard/stores/gone")
	c.SetParamNames("collection", "id")
	c.SetParamValues("stores", "gone")

	// The sentinel propagates for the central error handler to map to 404.
	if err := h.Delete(c); err != domain.ErrStoreNotFound {
		t.Fatalf("expected ErrStoreNotFound to propagate, got %v", err)
	}
}
