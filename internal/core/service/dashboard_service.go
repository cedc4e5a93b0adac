package service

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/khadamat/marketplace-api/internal/core/domain"
	"github.com/khadamat/marketplace-api/internal/core/ports"
)

// DashboardService reconciles the four ownership-scoped collections for one
// user and applies delete mutations. There is no local patching: every
// mutation is followed by a full refetch.
type DashboardService struct {
	stores     ports.StoreRepository
	properties ports.PropertyRepository
	vehicles   ports.VehicleRepository
	orders     ports.OrderRepository
	notifier   ports.Notifier
	logger     zerolog.Logger
}

func NewDashboardService(
	stores ports.StoreRepository,
	properties ports.PropertyRepository,
	vehicles ports.VehicleRepository,
	orders ports.OrderRepository,
	notifier ports.Notifier,
	logger zerolog.Logger,
) *DashboardService {
	return &DashboardService{
		stores:     stores,
		properties: properties,
		vehicles:   vehicles,
		orders:     orders,
		notifier:   notifier,
		logger:     logger,
	}
}

// FetchAll loads stores, properties, vehicles, and orders for the user. The
// four queries are independent: one failing degrades its slot to empty and
// produces a non-fatal notification while the other three proceed. Only
// context cancellation aborts the whole fetch.
func (s *DashboardService) FetchAll(ctx context.Context, userID string) (*ports.DashboardSnapshot, error) {
	snapshot := &ports.DashboardSnapshot{
		Stores:     []domain.Store{},
		Properties: []domain.Property{},
		Vehicles:   []domain.Vehicle{},
		Orders:     []domain.Order{},
	}

	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		failed []string
	)

	fail := func(slot string, err error) {
		mu.Lock()
		failed = append(failed, slot)
		mu.Unlock()
		s.logger.Error().Err(err).Str("user_id", userID).Str("collection", slot).Msg("dashboard fetch failed")
	}

	wg.Add(4)
	go func() {
		defer wg.Done()
		if items, err := s.stores.ListByOwner(ctx, userID); err != nil {
			fail("stores", err)
		} else if items != nil {
			snapshot.Stores = items
		}
	}()
	go func() {
		defer wg.Done()
		if items, err := s.properties.ListByOwner(ctx, userID); err != nil {
			fail("properties", err)
		} else if items != nil {
			snapshot.Properties = items
		}
	}()
	go func() {
		defer wg.Done()
		if items, err := s.vehicles.ListByOwner(ctx, userID); err != nil {
			fail("vehicles", err)
		} else if items != nil {
			snapshot.Vehicles = items
		}
	}()
	go func() {
		defer wg.Done()
		if items, err := s.orders.ListByCustomer(ctx, userID); err != nil {
			fail("orders", err)
		} else if items != nil {
			snapshot.Orders = items
		}
	}()
	wg.Wait()

	// Torn-down caller: report the cancellation, publish nothing.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for range failed {
		s.notifier.Notify(ports.Notification{
			Title:       "خطأ",
			Description: "فشل في تحميل البيانات",
			Severity:    ports.SeverityDestructive,
		})
	}

	snapshot.Stats = ports.DashboardStats{
		Stores:     len(snapshot.Stores),
		Properties: len(snapshot.Properties),
		Vehicles:   len(snapshot.Vehicles),
		Orders:     len(snapshot.Orders),
	}
	return snapshot, nil
}

// collectionNouns are the Arabic nouns used in delete notifications.
var collectionNouns = map[ports.Collection]string{
	ports.CollectionStores:     "المتجر",
	ports.CollectionProperties: "العقار",
	ports.CollectionVehicles:   "المركبة",
}

// Delete removes one record scoped to the owner, then resynchronises by
// refetching the full snapshot. On failure, including a delete of an id
// that is already gone, it notifies and returns the error; the caller's
// previous snapshot stays valid.
func (s *DashboardService) Delete(ctx context.Context, userID string, collection ports.Collection, id string) (*ports.DashboardSnapshot, error) {
	var err error
	switch collection {
	case ports.CollectionStores:
		err = s.stores.Delete(ctx, userID, id)
	case ports.CollectionProperties:
		err = s.properties.Delete(ctx, userID, id)
	case ports.CollectionVehicles:
		err = s.vehicles.Delete(ctx, userID, id)
	default:
		err = domain.ErrForbidden
	}
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", userID).Str("collection", string(collection)).Str("id", id).Msg("delete failed")
		s.notifier.Notify(ports.Notification{
			Title:       "خطأ",
			Description: "فشل في حذف العنصر",
			Severity:    ports.SeverityDestructive,
		})
		return nil, err
	}

	s.notifier.Notify(ports.Notification{
		Title:       "تم الحذف",
		Description: "تم حذف " + collectionNouns[collection] + " بنجاح",
		Severity:    ports.SeveritySuccess,
	})
	s.logger.Info().Str("user_id", userID).Str("collection", string(collection)).Str("id", id).Msg("record deleted")

	return s.FetchAll(ctx, userID)
}
