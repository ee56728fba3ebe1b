package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/starlog/catalog-api/internal/core/domain"
)

const rolesCollection = "roles"

type MongoRoleRepository struct {
	coll     *mongo.Collection
	counters *CounterRepository
}

func NewRoleRepository(db *mongo.Database, counters *CounterRepository) *MongoRoleRepository {
	return &MongoRoleRepository{coll: db.Collection(rolesCollection), counters: counters}
}

type mongoRoleRow struct {
	ID        int64  `bson:"_id"`
	Name      string `bson:"name"`
	CreatedAt int64  `bson:"created_at"`
}

// Create inserts a role row. The unique index on name makes a concurrent
// duplicate insert fail; the caller re-reads in that case so bootstrap
// stays idempotent.
func (r *MongoRoleRepository) Create(ctx context.Context, name string) (*domain.Role, error) {
	id, err := r.counters.Next(ctx, rolesCollection)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	doc := mongoRoleRow{ID: id, Name: name, CreatedAt: now.Unix()}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return r.FindByName(ctx, name)
		}
		return nil, fmt.Errorf("insert role: %w", err)
	}

	return &domain.Role{ID: id, Name: name, CreatedAt: now}, nil
}

func (r *MongoRoleRepository) FindByName(ctx context.Context, name string) (*domain.Role, error) {
	var row mongoRoleRow
	if err := r.coll.FindOne(ctx, bson.M{"name": name}).Decode(&row); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrRoleNotFound
		}
		return nil, fmt.Errorf("find role: %w", err)
	}
	return row.toDomain(), nil
}

func (r *MongoRoleRepository) FindAll(ctx context.Context) ([]domain.Role, error) {
	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find roles: %w", err)
	}
	defer cursor.Close(ctx)

	var roles []domain.Role
	for cursor.Next(ctx) {
		var row mongoRoleRow
		if err := cursor.Decode(&row); err != nil {
			return nil, fmt.Errorf("decode role: %w", err)
		}
		roles = append(roles, *row.toDomain())
	}
	return roles, cursor.Err()
}

func (row *mongoRoleRow) toDomain() *domain.Role {
	return &domain.Role{
		ID:        row.ID,
		Name:      row.Name,
		CreatedAt: unixToTime(row.CreatedAt),
	}
}
