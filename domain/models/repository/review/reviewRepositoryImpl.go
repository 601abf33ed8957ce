package review_repository

import (
	"context"

	"github.com/May-nib/sellarmy/domain/models/entities"
	"github.com/pkg/errors"
	"gitlab.faza.io/go-framework/logger"
	"gitlab.faza.io/go-framework/mongoadapter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	databaseName    string = "storefront"
	collectionName  string = "reviews"
	defaultDocCount int    = 64
)

type iReviewRepositoryImpl struct {
	mongoAdapter *mongoadapter.Mongo
}

func NewReviewRepository(mongoDriver *mongoadapter.Mongo) IReviewRepository {
	return &iReviewRepositoryImpl{mongoDriver}
}

func (repo iReviewRepositoryImpl) FindAllByProductId(ctx context.Context, productId uint64) ([]*entities.Review, error) {
	sortMap := make(map[string]int)
	sortMap["createdAt"] = -1

	optionFind := options.Find()
	optionFind.SetSort(sortMap)

	cursor, err := repo.mongoAdapter.FindMany(databaseName, collectionName, bson.D{{Key: "productId", Value: productId}}, optionFind)
	if err != nil {
		return nil, errors.Wrap(err, "FindAllByProductId failed")
	}

	defer closeCursor(ctx, cursor)
	reviews := make([]*entities.Review, 0, defaultDocCount)

	// iterate through all documents
	for cursor.Next(ctx) {
		var review entities.Review
		// decode the document
		if err := cursor.Decode(&review); err != nil {
			return nil, errors.Wrap(err, "cursor.Decode failed")
		}
		reviews = append(reviews, &review)
	}

	return reviews, nil
}

func (repo iReviewRepositoryImpl) Count(ctx context.Context, productId uint64) (int64, error) {
	total, err := repo.mongoAdapter.Count(databaseName, collectionName, bson.D{{Key: "productId", Value: productId}})
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
