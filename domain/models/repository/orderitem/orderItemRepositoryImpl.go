package orderitem_repository

import (
	"context"
	"time"

	"github.com/May-nib/sellarmy/domain/models/entities"
	"github.com/pkg/errors"
	"gitlab.faza.io/go-framework/logger"
	"gitlab.faza.io/go-framework/mongoadapter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	databaseName   string = "storefront"
	collectionName string = "orderItems"
)

type iOrderItemRepositoryImpl struct {
	mongoAdapter *mongoadapter.Mongo
}

func NewOrderItemRepository(mongoDriver *mongoadapter.Mongo) IOrderItemRepository {
	return &iOrderItemRepositoryImpl{mongoDriver}
}

func (repo iOrderItemRepositoryImpl) InsertAll(ctx context.Context, items []*entities.OrderItem) error {
	if len(items) == 0 {
		return nil
	}

	documents := make([]interface{}, 0, len(items))
	for _, item := range items {
		if item.OrderItemId == 0 {
			item.OrderItemId = entities.GenerateOrderItemId()
		}
		item.CreatedAt = time.Now().UTC()
		documents = append(documents, item)
	}

	_, err := repo.mongoAdapter.InsertMany(databaseName, collectionName, documents)
	if err != nil {
		return errors.Wrap(err, "InsertAll failed")
	}

	return nil
}

func (repo iOrderItemRepositoryImpl) FindAllByOrderId(ctx context.Context, orderId uint64) ([]*entities.OrderItem, error) {
	cursor, err := repo.mongoAdapter.FindMany(databaseName, collectionName, bson.D{{Key: "orderId", Value: orderId}})
	if err != nil {
		return nil, errors.Wrap(err, "FindAllByOrderId failed")
	}

	defer closeCursor(ctx, cursor)
	items := make([]*entities.OrderItem, 0, 16)

	// iterate through all documents
	for cursor.Next(ctx) {
		var item entities.OrderItem
		// decode the document
		if err := cursor.Decode(&item); err != nil {
			return nil, errors.Wrap(err, "cursor.Decode failed")
		}
		items = append(items, &item)
	}

	return items, nil
}

func (repo iOrderItemRepositoryImpl) Count(ctx context.Context, orderId uint64) (int64, error) {
	total, err := repo.mongoAdapter.Count(databaseName, collectionName, bson.D{{Key: "orderId", Value: orderId}})
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
