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

const collectionProperties = "properties"

type PropertyRepository struct {
	col *mongo.Collection
}

func NewPropertyRepository(db *mongo.Database) *PropertyRepository {
	return &PropertyRepository{col: db.Collection(collectionProperties)}
}

type propertyDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	OwnerID      string             `bson:"owner_id"`
	Title        string             `bson:"title"`
	Location     string             `bson:"location"`
	PropertyType string             `bson:"property_type"`
	Price        float64            `bson:"price"`
	Area         float64            `bson:"area"`
	IsActive     bool               `bson:"is_active"`
}

func (d propertyDoc) toDomain() domain.Property {
	return domain.Property{
		ID:           d.ID.Hex(),
		OwnerID:      d.OwnerID,
		Title:        d.Title,
		Location:     d.Location,
		PropertyType: domain.PropertyType(d.PropertyType),
		Price:        d.Price,
		Area:         d.Area,
		IsActive:     d.IsActive,
	}
}

func (r *PropertyRepository) ListByOwner(ctx context.Context, ownerID string) ([]domain.Property, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.col.Find(ctx, bson.M{"owner_id": ownerID})
	if err != nil {
		return nil, fmt.Errorf("list properties: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []propertyDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode properties: %w", err)
	}

	properties := make([]domain.Property, 0, len(docs))
	for _, d := range docs {
		properties = append(properties, d.toDomain())
	}
	return properties, nil
}

func (r *PropertyRepository) Delete(ctx context.Context, ownerID, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrPropertyNotFound
	}

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid, "owner_id": ownerID})
	if err != nil {
		return fmt.Errorf("delete property: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrPropertyNotFound
	}
	return nil
}

func (r *PropertyRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "owner_id", Value: 1}},
	})
	return err
}
