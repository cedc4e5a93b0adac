package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/khadamat/marketplace-api/internal/core/domain"
	"github.com/khadamat/marketplace-api/internal/core/ports"
)

// CatalogService loads the public storefront: active categories ordered by
// name and active stores ranked by rating.
type CatalogService struct {
	categories ports.CategoryRepository
	stores     ports.StoreRepository
	notifier   ports.Notifier
	logger     zerolog.Logger
}

func NewCatalogService(categories ports.CategoryRepository, stores ports.StoreRepository, notifier ports.Notifier, logger zerolog.Logger) *CatalogService {
	return &CatalogService{categories: categories, stores: stores, notifier: notifier, logger: logger}
}

// FetchCatalog queries both public collections. A query failure degrades its
// slot to empty with a notification; the catalog itself is never fatal.
func (s *CatalogService) FetchCatalog(ctx context.Context) (*ports.Catalog, error) {
	catalog := &ports.Catalog{
		Categories: []domain.Category{},
		Stores:     []domain.Store{},
	}

	if categories, err := s.categories.ListActive(ctx); err != nil {
		s.logger.Error().Err(err).Msg("catalog categories fetch failed")
		catalog.Degraded = true
	} else if categories != nil {
		catalog.Categories = categories
	}

	if stores, err := s.stores.ListActive(ctx); err != nil {
		s.logger.Error().Err(err).Msg("catalog stores fetch failed")
		catalog.Degraded = true
	} else if stores != nil {
		catalog.Stores = stores
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if catalog.Degraded {
		s.notifier.Notify(ports.Notification{
			Title:       "خطأ",
			Description: "فشل في تحميل البيانات",
			Severity:    ports.SeverityDestructive,
		})
	}
	return catalog, nil
}

// FilterStores is the pure client-side filter over a fetched store list. A
// store matches when the query is empty or contained case-insensitively in
// its name or description, and the selected category is empty or equal to
// the store's category. The input slice is never mutated.
func FilterStores(stores []domain.Store, query, categoryID string) []domain.Store {
	q := strings.ToLower(strings.TrimSpace(query))
	matched := make([]domain.Store, 0, len(stores))
	for _, store := range stores {
		if q != "" &&
			!strings.Contains(strings.ToLower(store.Name), q) &&
			!strings.Contains(strings.ToLower(store.Description), q) {
			continue
		}
		if categoryID != "" && store.CategoryID != categoryID {
			continue
		}
		matched = append(matched, store)
	}
	return matched
}

// ToggleCategory implements single-select-with-deselect: clicking the
// selected category again clears the selection.
func ToggleCategory(selected, clicked string) string {
	if selected == clicked {
		return ""
	}
	return clicked
}

// defaultIcon is rendered for any category whose icon key is not in the
// fixed set.
const defaultIcon = "shopping-cart"

var catalogIcons = map[string]struct{}{
	"utensils":      {},
	"pill":          {},
	"shopping-cart": {},
	"flower":        {},
	"smartphone":    {},
	"shirt":         {},
}

// IconFor resolves a category icon key against the fixed icon set.
func IconFor(key string) string {
	if _, ok := catalogIcons[key]; ok {
		return key
	}
	return defaultIcon
}
