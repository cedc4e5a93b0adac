package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/khadamat/marketplace-api/internal/core/domain"
)

const collectionStores = "stores"

type StoreRepository struct {
	col *mongo.Collection
}

func NewStoreRepository(db *mongo.Database) *StoreRepository {
	return &StoreRepository{col: db.Collection(collectionStores)}
}

type storeDoc struct {
	ID                    primitive.ObjectID `bson:"_id,omitempty"`
	OwnerID               string             `bson:"owner_id"`
	CategoryID            primitive.ObjectID `bson:"category_id,omitempty"`
	CategoryName          string             `bson:"category_name,omitempty"`
	Name                  string             `bson:"name"`
	Description           string             `bson:"description"`
	Address               string             `bson:"address"`
	Phone                 string             `bson:"phone"`
	Rating                float64            `bson:"rating"`
	DeliveryFee           float64            `bson:"delivery_fee"`
	MinimumOrder          float64            `bson:"minimum_order"`
	EstimatedDeliveryTime int                `bson:"estimated_delivery_time"`
	IsActive              bool               `bson:"is_active"`
}

func (d storeDoc) toDomain() domain.Store {
	s := domain.Store{
		ID:                    d.ID.Hex(),
		OwnerID:               d.OwnerID,
		CategoryName:          d.CategoryName,
		Name:                  d.Name,
		Description:           d.Description,
		Address:               d.Address,
		Phone:                 d.Phone,
		Rating:                d.Rating,
		DeliveryFee:           d.DeliveryFee,
		MinimumOrder:          d.MinimumOrder,
		EstimatedDeliveryTime: d.EstimatedDeliveryTime,
		IsActive:              d.IsActive,
	}
	if !d.CategoryID.IsZero() {
		s.CategoryID = d.CategoryID.Hex()
	}
	return s
}

// categoryNameLookup resolves category_name from delivery_categories. The
// join lives server-side so the dashboard and catalog never issue a second
// round-trip per store.
func categoryNameLookup() []bson.D {
	return []bson.D{
		{{Key: "$lookup", Value: bson.M{
			"from":         collectionCategories,
			"localField":   "category_id",
			"foreignField": "_id",
			"as":           "category",
		}}},
		{{Key: "$addFields", Value: bson.M{
			"category_name": bson.M{"$first": "$category.name"},
		}}},
		{{Key: "$project", Value: bson.M{"category": 0}}},
	}
}

func (r *StoreRepository) aggregate(ctx context.Context, pipeline []bson.D) ([]domain.Store, error) {
	cursor, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate stores: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []storeDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode stores: %w", err)
	}

	stores := make([]domain.Store, 0, len(docs))
	for _, d := range docs {
		stores = append(stores, d.toDomain())
	}
	return stores, nil
}

// ListByOwner returns the owner's stores, active or not, with category
// names resolved.
func (r *StoreRepository) ListByOwner(ctx context.Context, ownerID string) ([]domain.Store, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := append([]bson.D{
		{{Key: "$match", Value: bson.M{"owner_id": ownerID}}},
	}, categoryNameLookup()...)

	return r.aggregate(ctx, pipeline)
}

// ListActive returns public stores ordered by rating descending. The
// secondary _id sort pins the order among equal ratings.
func (r *StoreRepository) ListActive(ctx context.Context) ([]domain.Store, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := append([]bson.D{
		{{Key: "$match", Value: bson.M{"is_active": true}}},
	}, categoryNameLookup()...)
	pipeline = append(pipeline, bson.D{
		{Key: "$sort", Value: bson.D{{Key: "rating", Value: -1}, {Key: "_id", Value: 1}}},
	})

	return r.aggregate(ctx, pipeline)
}

// Delete removes a store by id, scoped to its owner.
func (r *StoreRepository) Delete(ctx context.Context, ownerID, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrStoreNotFound
	}

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid, "owner_id": ownerID})
	if err != nil {
		return fmt.Errorf("delete store: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrStoreNotFound
	}
	return nil
}

// EnsureIndexes creates the indexes backing ownership scoping and the
// public catalog ranking.
func (r *StoreRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "owner_id", Value: 1}}},
		{Keys: bson.D{{Key: "is_active", Value: 1}, {Key: "rating", Value: -1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
