package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/99minutos/vehicles-api/internal/core/domain"
)

type administratorDoc struct {
	ID       int64  `bson:"_id"`
	Email    string `bson:"email"`
	Password string `bson:"password_hash"`
	Role     string `bson:"role"`
}

func (d administratorDoc) toDomain() domain.Administrator {
	return domain.Administrator{ID: d.ID, Email: d.Email, PasswordHash: d.Password, Role: d.Role}
}

// AdministratorRepository implements ports.AdministratorRepository using MongoDB.
type AdministratorRepository struct {
	db  *mongo.Database
	col *mongo.Collection
}

func NewAdministratorRepository(db *mongo.Database) *AdministratorRepository {
	return &AdministratorRepository{db: db, col: db.Collection(collectionAdministrators)}
}

func (r *AdministratorRepository) FindByID(ctx context.Context, id int64) (*domain.Administrator, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *AdministratorRepository) FindByEmail(ctx context.Context, email string) (*domain.Administrator, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *AdministratorRepository) findOne(ctx context.Context, filter bson.M) (*domain.Administrator, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc administratorDoc
	if err := r.col.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAdministratorNotFound
		}
		return nil, fmt.Errorf("find administrator: %w", err)
	}
	a := doc.toDomain()
	return &a, nil
}

func (r *AdministratorRepository) List(ctx context.Context, page domain.Page) ([]domain.Administrator, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{}, findOptions(page))
	if err != nil {
		return nil, fmt.Errorf("list administrators: %w", err)
	}
	var docs []administratorDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode administrators: %w", err)
	}

	out := make([]domain.Administrator, len(docs))
	for i, d := range docs {
		out[i] = d.toDomain()
	}
	return out, nil
}

func (r *AdministratorRepository) Create(ctx context.Context, a *domain.Administrator) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := nextID(ctx, r.db, collectionAdministrators)
	if err != nil {
		return err
	}
	doc := administratorDoc{ID: id, Email: a.Email, Password: a.PasswordHash, Role: a.Role}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert administrator: %w", err)
	}
	a.ID = id
	return nil
}
