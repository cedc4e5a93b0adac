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

const collectionVehicles = "vehicles"

type VehicleRepository struct {
	col *mongo.Collection
}

func NewVehicleRepository(db *mongo.Database) *VehicleRepository {
	return &VehicleRepository{col: db.Collection(collectionVehicles)}
}

type vehicleDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	OwnerID     string             `bson:"owner_id"`
	Title       string             `bson:"title"`
	Brand       string             `bson:"brand"`
	Model       string             `bson:"model"`
	Year        int                `bson:"year"`
	VehicleType string             `bson:"vehicle_type"`
	Price       float64            `bson:"price"`
	Mileage     int                `bson:"mileage"`
	IsActive    bool               `bson:"is_active"`
}

func (d vehicleDoc) toDomain() domain.Vehicle {
	return domain.Vehicle{
		ID:          d.ID.Hex(),
		OwnerID:     d.OwnerID,
		Title:       d.Title,
		Brand:       d.Brand,
		Model:       d.Model,
		Year:        d.Year,
		VehicleType: domain.VehicleType(d.VehicleType),
		Price:       d.Price,
		Mileage:     d.Mileage,
		IsActive:    d.IsActive,
	}
}

func (r *VehicleRepository) ListByOwner(ctx context.Context, ownerID string) ([]domain.Vehicle, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.col.Find(ctx, bson.M{"owner_id": ownerID})
	if err != nil {
		return nil, fmt.Errorf("list vehicles: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []vehicleDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode vehicles: %w", err)
	}

	vehicles := make([]domain.Vehicle, 0, len(docs))
	for _, d := range docs {
		vehicles = append(vehicles, d.toDomain())
	}
	return vehicles, nil
}

func (r *VehicleRepository) Delete(ctx context.Context, ownerID, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrVehicleNotFound
	}

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid, "owner_id": ownerID})
	if err != nil {
		return fmt.Errorf("delete vehicle: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrVehicleNotFound
	}
	return nil
}

func (r *VehicleRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "owner_id", Value: 1}},
	})
	return err
}
