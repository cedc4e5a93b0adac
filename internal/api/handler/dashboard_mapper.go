package handler

import (
	"time"

	"github.com/khadamat/marketplace-api/internal/core/domain"
	"github.com/khadamat/marketplace-api/internal/core/ports"
	"github.com/khadamat/marketplace-api/internal/core/service"
)

func toStoreView(s domain.Store) storeView {
	return storeView{
		ID:                    s.ID,
		CategoryID:            s.CategoryID,
		CategoryName:          s.CategoryName,
		Name:                  s.Name,
		Description:           s.Description,
		Address:               s.Address,
		Phone:                 s.Phone,
		Rating:                s.Rating,
		DeliveryFee:           s.DeliveryFee,
		DeliveryFeeDisplay:    domain.FormatPrice(s.DeliveryFee),
		MinimumOrder:          s.MinimumOrder,
		MinimumOrderDisplay:   domain.FormatPrice(s.MinimumOrder),
		EstimatedDeliveryTime: s.EstimatedDeliveryTime,
		IsActive:              s.IsActive,
	}
}

func toPropertyView(p domain.Property) propertyView {
	return propertyView{
		ID:           p.ID,
		Title:        p.Title,
		Location:     p.Location,
		PropertyType: string(p.PropertyType),
		TypeLabel:    p.PropertyType.Label(),
		Price:        p.Price,
		PriceDisplay: domain.FormatPrice(p.Price),
		Area:         p.Area,
		IsActive:     p.IsActive,
	}
}

func toVehicleView(v domain.Vehicle) vehicleView {
	return vehicleView{
		ID:           v.ID,
		Title:        v.Title,
		Brand:        v.Brand,
		Model:        v.Model,
		Year:         v.Year,
		VehicleType:  string(v.VehicleType),
		TypeLabel:    v.VehicleType.Label(),
		Price:        v.Price,
		PriceDisplay: domain.FormatPrice(v.Price),
		Mileage:      v.Mileage,
		IsActive:     v.IsActive,
	}
}

func toOrderView(o domain.Order) orderView {
	return orderView{
		ID:              o.ID,
		StoreID:         o.StoreID,
		StoreName:       o.StoreName,
		DeliveryAddress: o.DeliveryAddress,
		TotalAmount:     o.TotalAmount,
		TotalDisplay:    domain.FormatPrice(o.TotalAmount),
		Status:          string(o.Status),
		StatusLabel:     o.Status.Label(),
		BadgeVariant:    o.Status.BadgeVariant(),
		CreatedAt:       o.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func toDashboardResponse(snapshot *ports.DashboardSnapshot) dashboardResponse {
	resp := dashboardResponse{
		Stores:     make([]storeView, 0, len(snapshot.Stores)),
		Properties: make([]propertyView, 0, len(snapshot.Properties)),
		Vehicles:   make([]vehicleView, 0, len(snapshot.Vehicles)),
		Orders:     make([]orderView, 0, len(snapshot.Orders)),
		Stats: dashboardStatsView{
			Stores:     snapshot.Stats.Stores,
			Properties: snapshot.Stats.Properties,
			Vehicles:   snapshot.Stats.Vehicles,
			Orders:     snapshot.Stats.Orders,
		},
	}
	for _, s := range snapshot.Stores {
		resp.Stores = append(resp.Stores, toStoreView(s))
	}
	for _, p := range snapshot.Properties {
		resp.Properties = append(resp.Properties, toPropertyView(p))
	}
	for _, v := range snapshot.Vehicles {
		resp.Vehicles = append(resp.Vehicles, toVehicleView(v))
	}
	for _, o := range snapshot.Orders {
		resp.Orders = append(resp.Orders, toOrderView(o))
	}
	return resp
}

func toCatalogResponse(catalog *ports.Catalog, stores []domain.Store) catalogResponse {
	resp := catalogResponse{
		Categories: make([]categoryView, 0, len(catalog.Categories)),
		Stores:     make([]storeView, 0, len(stores)),
	}
	for _, cat := range catalog.Categories {
		resp.Categories = append(resp.Categories, categoryView{
			ID:          cat.ID,
			Name:        cat.Name,
			Icon:        service.IconFor(cat.Icon),
			Description: cat.Description,
		})
	}
	for _, s := range stores {
		resp.Stores = append(resp.Stores, toStoreView(s))
	}
	return resp
}
