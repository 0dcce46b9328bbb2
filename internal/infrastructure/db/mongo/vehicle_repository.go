package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/99minutos/vehicles-api/internal/core/domain"
	"github.com/99minutos/vehicles-api/internal/core/ports"
)

type vehicleDoc struct {
	ID    int64  `bson:"_id"`
	Name  string `bson:"name"`
	Brand string `bson:"brand"`
	Year  int    `bson:"year"`
}

func (d vehicleDoc) toDomain() domain.Vehicle {
	return domain.Vehicle{ID: d.ID, Name: d.Name, Brand: d.Brand, Year: d.Year}
}

// VehicleRepository implements ports.VehicleRepository using MongoDB.
type VehicleRepository struct {
	db  *mongo.Database
	col *mongo.Collection
}

func NewVehicleRepository(db *mongo.Database) *VehicleRepository {
	return &VehicleRepository{db: db, col: db.Collection(collectionVehicles)}
}

func (r *VehicleRepository) FindByID(ctx context.Context, id int64) (*domain.Vehicle, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc vehicleDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrVehicleNotFound
		}
		return nil, fmt.Errorf("find vehicle: %w", err)
	}
	v := doc.toDomain()
	return &v, nil
}

// List applies the optional name filter and pagination. filter.Brand is not
// part of the query.
func (r *VehicleRepository) List(ctx context.Context, filter ports.VehicleFilter) ([]domain.Vehicle, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.Name != "" {
		query["name"] = primitive.Regex{Pattern: regexp.QuoteMeta(filter.Name), Options: "i"}
	}

	cur, err := r.col.Find(ctx, query, findOptions(filter.Page))
	if err != nil {
		return nil, fmt.Errorf("list vehicles: %w", err)
	}
	var docs []vehicleDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode vehicles: %w", err)
	}

	out := make([]domain.Vehicle, len(docs))
	for i, d := range docs {
		out[i] = d.toDomain()
	}
	return out, nil
}

func (r *VehicleRepository) Create(ctx context.Context, v *domain.Vehicle) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := nextID(ctx, r.db, collectionVehicles)
	if err != nil {
		return err
	}
	if _, err := r.col.InsertOne(ctx, vehicleDoc{ID: id, Name: v.Name, Brand: v.Brand, Year: v.Year}); err != nil {
		return fmt.Errorf("insert vehicle: %w", err)
	}
	v.ID = id
	return nil
}

func (r *VehicleRepository) Update(ctx context.Context, v *domain.Vehicle) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": v.ID},
		bson.M{"$set": bson.M{"name": v.Name, "brand": v.Brand, "year": v.Year}},
	)
	if err != nil {
		return fmt.Errorf("update vehicle: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrVehicleNotFound
	}
	return nil
}

func (r *VehicleRepository) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete vehicle: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrVehicleNotFound
	}
	return nil
}
