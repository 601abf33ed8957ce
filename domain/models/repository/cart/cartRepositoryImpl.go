package cart_repository

import (
	"context"
	"time"

	"github.com/May-nib/sellarmy/domain/models/entities"
	"github.com/pkg/errors"
	"gitlab.faza.io/go-framework/mongoadapter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	databaseName   string = "storefront"
	collectionName string = "carts"
)

var ErrorCartNotFound = errors.New("cart not found")

type iCartRepositoryImpl struct {
	mongoAdapter *mongoadapter.Mongo
}

func NewCartRepository(mongoDriver *mongoadapter.Mongo) ICartRepository {
	return &iCartRepositoryImpl{mongoDriver}
}

func (repo iCartRepositoryImpl) Save(ctx context.Context, cart entities.Cart) (*entities.Cart, error) {
	cart.UpdatedAt = time.Now().UTC()

	optionUpdate := options.Update()
	optionUpdate.SetUpsert(true)

	_, err := repo.mongoAdapter.UpdateOne(databaseName, collectionName,
		bson.D{{Key: "sessionId", Value: cart.SessionId}, {Key: "key", Value: cart.Key}},
		bson.D{{Key: "$set", Value: cart}}, optionUpdate)
	if err != nil {
		return nil, errors.Wrap(err, "Save failed")
	}

	return &cart, nil
}

func (repo iCartRepositoryImpl) FindBySessionAndKey(ctx context.Context, sessionId, key string) (*entities.Cart, error) {
	var cart entities.Cart
	singleResult := repo.mongoAdapter.FindOne(databaseName, collectionName,
		bson.D{{Key: "sessionId", Value: sessionId}, {Key: "key", Value: key}})
	if err := singleResult.Err(); err != nil {
		if repo.mongoAdapter.NoDocument(err) {
			return nil, ErrorCartNotFound
		}
		return nil, errors.Wrap(err, "FindBySessionAndKey failed")
	}

	if err := singleResult.Decode(&cart); err != nil {
		return nil, errors.Wrap(err, "singleResult.Decode failed")
	}

	return &cart, nil
}

func (repo iCartRepositoryImpl) RemoveBySessionAndKey(ctx context.Context, sessionId, key string) error {
	_, err := repo.mongoAdapter.DeleteOne(databaseName, collectionName,
		bson.D{{Key: "sessionId", Value: sessionId}, {Key: "key", Value: key}})
	if err != nil {
		return errors.Wrap(err, "RemoveBySessionAndKey failed")
	}
	return nil
}
