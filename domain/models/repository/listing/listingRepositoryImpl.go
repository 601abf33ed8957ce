package listing_repository

import (
	"context"

	"github.com/May-nib/sellarmy/domain/models/entities"
	"github.com/pkg/errors"
	"gitlab.faza.io/go-framework/logger"
	"gitlab.faza.io/go-framework/mongoadapter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	databaseName    string = "storefront"
	collectionName  string = "resellerStore"
	defaultDocCount int    = 64
)

type iListingRepositoryImpl struct {
	mongoAdapter *mongoadapter.Mongo
}

func NewListingRepository(mongoDriver *mongoadapter.Mongo) IListingRepository {
	return &iListingRepositoryImpl{mongoDriver}
}

func (repo iListingRepositoryImpl) FindAllByResellerId(ctx context.Context, resellerId uint64) ([]*entities.Listing, error) {
	cursor, err := repo.mongoAdapter.FindMany(databaseName, collectionName, bson.D{{Key: "resellerId", Value: resellerId}})
	if err != nil {
		return nil, errors.Wrap(err, "FindAllByResellerId failed")
	}

	defer closeCursor(ctx, cursor)
	listings := make([]*entities.Listing, 0, defaultDocCount)

	// iterate through all documents
	for cursor.Next(ctx) {
		var listing entities.Listing
		// decode the document
		if err := cursor.Decode(&listing); err != nil {
			return nil, errors.Wrap(err, "cursor.Decode failed")
		}
		listings = append(listings, &listing)
	}

	return listings, nil
}

func (repo iListingRepositoryImpl) FindAllByProductId(ctx context.Context, productIds ...uint64) ([]*entities.Listing, error) {
	if len(productIds) == 0 {
		return nil, nil
	}

	cursor, err := repo.mongoAdapter.FindMany(databaseName, collectionName,
		bson.D{{Key: "productId", Value: bson.D{{Key: "$in", Value: productIds}}}})
	if err != nil {
		return nil, errors.Wrap(err, "FindAllByProductId failed")
	}

	defer closeCursor(ctx, cursor)
	listings := make([]*entities.Listing, 0, len(productIds))

	for cursor.Next(ctx) {
		var listing entities.Listing
		if err := cursor.Decode(&listing); err != nil {
			return nil, errors.Wrap(err, "cursor.Decode failed")
		}
		listings = append(listings, &listing)
	}

	return listings, nil
}

func (repo iListingRepositoryImpl) Count(ctx context.Context, resellerId uint64) (int64, error) {
	total, err := repo.mongoAdapter.Count(databaseName, collectionName, bson.D{{Key: "resellerId", Value: resellerId}})
	if err != nil {
		return 0, errors.Wrap(err, "Count failed")
	}
	return total, nil
}

func closeCursor(context context.Context, cursor *mongo.Cursor) {
	err := cursor.Close(context)
	if err != nil {
		logger.Err("closeCursor() failed, err: %s", err)
	}
}
