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

const collectionOrders = "orders"

type OrderRepository struct {
	col *mongo.Collection
}

func NewOrderRepository(db *mongo.Database) *OrderRepository {
	return &OrderRepository{col: db.Collection(collectionOrders)}
}

type orderDoc struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	CustomerID      string             `bson:"customer_id"`
	StoreID         primitive.ObjectID `bson:"store_id,omitempty"`
	StoreName       string             `bson:"store_name,omitempty"`
	DeliveryAddress string             `bson:"delivery_address"`
	TotalAmount     float64            `bson:"total_amount"`
	Status          string             `bson:"status"`
	CreatedAt       time.Time          `bson:"created_at"`
}

func (d orderDoc) toDomain() domain.Order {
	o := domain.Order{
		ID:              d.ID.Hex(),
		CustomerID:      d.CustomerID,
		StoreName:       d.StoreName,
		DeliveryAddress: d.DeliveryAddress,
		TotalAmount:     d.TotalAmount,
		Status:          domain.OrderStatus(d.Status),
		CreatedAt:       d.CreatedAt,
	}
	if !d.StoreID.IsZero() {
		o.StoreID = d.StoreID.Hex()
	}
	return o
}

// ListByCustomer returns the customer's orders with store names resolved,
// newest first.
func (r *OrderRepository) ListByCustomer(ctx context.Context, customerID string) ([]domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := []bson.D{
		{{Key: "$match", Value: bson.M{"customer_id": customerID}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         collectionStores,
			"localField":   "store_id",
			"foreignField": "_id",
			"as":           "store",
		}}},
		{{Key: "$addFields", Value: bson.M{
			"store_name": bson.M{"$first": "$store.name"},
		}}},
		{{Key: "$project", Value: bson.M{"store": 0}}},
		{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: -1}}}},
	}

	cursor, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate orders: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []orderDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode orders: %w", err)
	}

	orders := make([]domain.Order, 0, len(docs))
	for _, d := range docs {
		orders = append(orders, d.toDomain())
	}
	return orders, nil
}

func (r *OrderRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "customer_id", Value: 1}, {Key: "created_at", Value: -1}},
	})
	return err
}
