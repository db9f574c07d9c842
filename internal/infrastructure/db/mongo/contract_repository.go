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

const contractsCollection = "contracts"

// ContractRepository persists contracts in MongoDB.
type ContractRepository struct {
	db   *mongo.Database
	coll *mongo.Collection
}

func NewContractRepository(db *mongo.Database) *ContractRepository {
	return &ContractRepository{db: db, coll: db.Collection(contractsCollection)}
}

func (r *ContractRepository) Create(ctx context.Context, c *domain.Contract) (*domain.Contract, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := nextID(ctx, r.db, contractsCollection)
	if err != nil {
		return nil, err
	}

	created := *c
	created.ID = id
	if _, err := r.coll.InsertOne(ctx, &created); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrIntegrity
		}
		return nil, fmt.Errorf("insert contract: %w", err)
	}
	return &created, nil
}

func (r *ContractRepository) FindByID(ctx context.Context, id int64) (*domain.Contract, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var c domain.Contract
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&c); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrContractNotFound
		}
		return nil, fmt.Errorf("find contract: %w", err)
	}
	return &c, nil
}

func (r *ContractRepository) List(ctx context.Context, f ports.ContractFilter) ([]*domain.Contract, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{}
	if f.CommercialID > 0 {
		filter["commercial_id"] = f.CommercialID
	}
	if f.NotSigned {
		filter["status"] = false
	}
	if f.Debtor {
		filter["remaining_to_pay"] = bson.M{"$gt": 0}
	}

	cur, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list contracts: %w", err)
	}

	contracts := []*domain.Contract{}
	if err := cur.All(ctx, &contracts); err != nil {
		return nil, fmt.Errorf("decode contracts: %w", err)
	}
	return contracts, nil
}

func (r *ContractRepository) Update(ctx context.Context, id int64, fields map[string]any) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.UpdateByID(ctx, id, bson.M{"$set": toBSON(fields)})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrIntegrity
		}
		return fmt.Errorf("update contract: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrContractNotFound
	}
	return nil
}

// EnsureIndexes creates the lookup indexes used by list scoping.
func (r *ContractRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "commercial_id", Value: 1}}},
		{Keys: bson.D{{Key: "client_id", Value: 1}}},
	})
	return err
}
