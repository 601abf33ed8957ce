package product_repository

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
	collectionName  string = "products"
	defaultDocCount int    = 64
)

var ErrorProductNotFound = errors.New("product not found")

type iProductRepositoryImpl struct {
	mongoAdapter *mongoadapter.Mongo
}

func NewProductRepository(mongoDriver *mongoadapter.Mongo) IProductRepository {
	return &iProductRepositoryImpl{mongoDriver}
}

func (repo iProductRepositoryImpl) FindById(ctx context.Context, productId uint64) (*entities.Product, error) {
	var product entities.Product
	singleResult := repo.mongoAdapter.FindOne(databaseName, collectionName, bson.D{{Key: "productId", Value: productId}, {Key: "deletedAt", Value: nil}})
	if err := singleResult.Err(); err != nil {
		if repo.mongoAdapter.NoDocument(err) {
			return nil, ErrorProductNotFound
		}
		return nil, errors.Wrap(err, "FindById failed")
	}

	if err := singleResult.Decode(&product); err != nil {
		return nil, errors.Wrap(err, "singleResult.Decode failed")
	}

	return &product, nil
}

func (repo iProductRepositoryImpl) FindAllById(ctx context.Context, ids ...uint64) ([]*entities.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	cursor, err := repo.mongoAdapter.FindMany(databaseName, collectionName,
		bson.D{{Key: "productId", Value: bson.D{{Key: "$in", Value: ids}}}, {Key: "deletedAt", Value: nil}})
	if err != nil {
		return nil, errors.Wrap(err, "FindAllById failed")
	}

	defer closeCursor(ctx, cursor)
	products := make([]*entities.Product, 0, len(ids))

	// iterate through all documents
	for cursor.Next(ctx) {
		var product entities.Product
		// decode the document
		if err := cursor.Decode(&product); err != nil {
			return nil, errors.Wrap(err, "cursor.Decode failed")
		}
		products = append(products, &product)
	}

	return products, nil
}

func (repo iProductRepositoryImpl) FindByCategory(ctx context.Context, category string, excludeId uint64, limit int64) ([]*entities.Product, error) {
	optionFind := options.Find()
	optionFind.SetLimit(limit)

	cursor, err := repo.mongoAdapter.FindMany(databaseName, collectionName,
		bson.D{{Key: "category", Value: category}, {Key: "productId", Value: bson.D{{Key: "$ne", Value: excludeId}}}, {Key: "deletedAt", Value: nil}}, optionFind)
	if err != nil {
		return nil, errors.Wrap(err, "FindByCategory failed")
	}

	defer closeCursor(ctx, cursor)
	products := make([]*entities.Product, 0, limit)

	for cursor.Next(ctx) {
		var product entities.Product
		if err := cursor.Decode(&product); err != nil {
			return nil, errors.Wrap(err, "cursor.Decode failed")
		}
		products = append(products, &product)
	}

	return products, nil
}

func (repo iProductRepositoryImpl) FindAllWithSort(ctx context.Context, fieldName string, direction int, limit int64) ([]*entities.Product, error) {
	sortMap := make(map[string]int)
	sortMap[fieldName] = direction

	optionFind := options.Find()
	optionFind.SetSort(sortMap)
	optionFind.SetLimit(limit)

	cursor, err := repo.mongoAdapter.FindMany(databaseName, collectionName, bson.D{{Key: "deletedAt", Value: nil}}, optionFind)
	if err != nil {
		return nil, errors.Wrap(err, "FindAllWithSort failed")
	}

	defer closeCursor(ctx, cursor)
	products := make([]*entities.Product, 0, defaultDocCount)

	for cursor.Next(ctx) {
		var product entities.Product
		if err := cursor.Decode(&product); err != nil {
			return nil, errors.Wrap(err, "cursor.Decode failed")
		}
		products = append(products, &product)
	}

	return products, nil
}

func (repo iProductRepositoryImpl) ExistsById(ctx context.Context, productId uint64) (bool, error) {
	singleResult := repo.mongoAdapter.FindOne(databaseName, collectionName, bson.D{{Key: "productId", Value: productId}, {Key: "deletedAt", Value: nil}})
	if err := singleResult.Err(); err != nil {
		if repo.mongoAdapter.NoDocument(err) {
			return false, nil
		}
		return false, errors.Wrap(err, "ExistsById failed")
	}
	return true, nil
}

func (repo iProductRepositoryImpl) Count(ctx context.Context) (int64, error) {
	total, err := repo.mongoAdapter.Count(databaseName, collectionName, bson.D{{Key: "deletedAt", Value: nil}})
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
