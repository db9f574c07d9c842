package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/PVL06/OC-P12-Epic/internal/core/domain"
	"github.com/PVL06/OC-P12-Epic/internal/core/ports"
)

const collaboratorsCollection = "collaborators"

// CollaboratorRepository persists collaborators in MongoDB. Email and phone
// carry unique indexes; violations map to domain.ErrIntegrity.
type CollaboratorRepository struct {
	db   *mongo.Database
	coll *mongo.Collection
}

func NewCollaboratorRepository(db *mongo.Database) *CollaboratorRepository {
	return &CollaboratorRepository{db: db, coll: db.Collection(collaboratorsCollection)}
}

func (r *CollaboratorRepository) Create(ctx context.Context, c *domain.Collaborator) (*domain.Collaborator, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := nextID(ctx, r.db, collaboratorsCollection)
	if err != nil {
		return nil, err
	}

	created := *c
	created.ID = id
	if _, err := r.coll.InsertOne(ctx, &created); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrIntegrity
		}
		return nil, fmt.Errorf("insert collaborator: %w", err)
	}
	return &created, nil
}

func (r *CollaboratorRepository) FindByID(ctx context.Context, id int64) (*domain.Collaborator, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *CollaboratorRepository) FindByEmail(ctx context.Context, email string) (*domain.Collaborator, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *CollaboratorRepository) findOne(ctx context.Context, filter bson.M) (*domain.Collaborator, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var c domain.Collaborator
	if err := r.coll.FindOne(ctx, filter).Decode(&c); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCollaboratorNotFound
		}
		return nil, fmt.Errorf("find collaborator: %w", err)
	}
	return &c, nil
}

func (r *CollaboratorRepository) List(ctx context.Context, f ports.CollaboratorFilter) ([]*domain.Collaborator, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{}
	if f.Role != "" {
		filter["role"] = f.Role
	}

	cur, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list collaborators: %w", err)
	}

	collabs := []*domain.Collaborator{}
	if err := cur.All(ctx, &collabs); err != nil {
		return nil, fmt.Errorf("decode collaborators: %w", err)
	}
	return collabs, nil
}

func (r *CollaboratorRepository) Update(ctx context.Context, id int64, fields map[string]any) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.UpdateByID(ctx, id, bson.M{"$set": toBSON(fields)})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrIntegrity
		}
		return fmt.Errorf("update collaborator: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrCollaboratorNotFound
	}
	return nil
}

func (r *CollaboratorRepository) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete collaborator: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrCollaboratorNotFound
	}
	return nil
}

// EnsureIndexes creates the uniqueness constraints login and the permission
// gate rely on.
func (r *CollaboratorRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "phone", Value: 1}}, Options: options.Index().SetUnique(true)},
	})
	return err
}

// toBSON converts a sanitized field map into an update document. Field names
// have already passed the permission gate.
func toBSON(fields map[string]any) bson.M {
	doc := bson.M{}
	for k, v := range fields {
		doc[k] = v
	}
	return doc
}
