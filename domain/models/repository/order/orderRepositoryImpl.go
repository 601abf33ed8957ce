package order_repository

import (
	"context"
	"time"

	"github.com/May-nib/sellarmy/domain/models/entities"
	"github.com/pkg/errors"
	"gitlab.faza.io/go-framework/logger"
	"gitlab.faza.io/go-framework/mongoadapter"
	"go.mongodb.org/mongo-driver/bson"
)

const (
	databaseName   string = "storefront"
	collectionName string = "orders"
)

var ErrorOrderNotFound = errors.New("order not found")
var ErrorDeleteFailed = errors.New("update deletedAt field failed")

type iOrderRepositoryImpl struct {
	mongoAdapter *mongoadapter.Mongo
}

func NewOrderRepository(mongoDriver *mongoadapter.Mongo) (IOrderRepository, error) {

	_, err := mongoDriver.AddUniqueIndex(databaseName, collectionName, "orderId")
	if err != nil {
		logger.Err("create orderId index failed, error: %s", err.Error())
		return nil, err
	}

	return &iOrderRepositoryImpl{mongoDriver}, nil
}

func (repo iOrderRepositoryImpl) Insert(ctx context.Context, order *entities.Order) error {

	if order.OrderId == 0 {
		order.OrderId = entities.GenerateOrderId()
	}

	order.CreatedAt = time.Now().UTC()
	order.UpdatedAt = order.CreatedAt

	var _, err = repo.mongoAdapter.InsertOne(databaseName, collectionName, order)
	if err != nil {
		if repo.mongoAdapter.IsDupError(err) {
			for repo.mongoAdapter.IsDupError(err) {
				order.OrderId = entities.GenerateOrderId()
				_, err = repo.mongoAdapter.InsertOne(databaseName, collectionName, order)
			}
		} else {
			return errors.Wrap(err, "Insert failed")
		}
	}

	return nil
}

func (repo iOrderRepositoryImpl) FindById(ctx context.Context, orderId uint64) (*entities.Order, error) {
	var order entities.Order
	singleResult := repo.mongoAdapter.FindOne(databaseName, collectionName, bson.D{{Key: "orderId", Value: orderId}, {Key: "deletedAt", Value: nil}})
	if err := singleResult.Err(); err != nil {
		if repo.mongoAdapter.NoDocument(err) {
			return nil, ErrorOrderNotFound
		}
		return nil, errors.Wrap(err, "FindById failed")
	}

	if err := singleResult.Decode(&order); err != nil {
		return nil, errors.Wrap(err, "singleResult.Decode failed")
	}

	return &order, nil
}

func (repo iOrderRepositoryImpl) FindByOrderNumber(ctx context.Context, orderNumber string) (*entities.Order, error) {
	var order entities.Order
	singleResult := repo.mongoAdapter.FindOne(databaseName, collectionName, bson.D{{Key: "orderNumber", Value: orderNumber}, {Key: "deletedAt", Value: nil}})
	if err := singleResult.Err(); err != nil {
		if repo.mongoAdapter.NoDocument(err) {
			return nil, ErrorOrderNotFound
		}
		return nil, errors.Wrap(err, "FindByOrderNumber failed")
	}

	if err := singleResult.Decode(&order); err != nil {
		return nil, errors.Wrap(err, "singleResult.Decode failed")
	}

	return &order, nil
}

func (repo iOrderRepositoryImpl) ExistsById(ctx context.Context, orderId uint64) (bool, error) {
	singleResult := repo.mongoAdapter.FindOne(databaseName, collectionName, bson.D{{Key: "orderId", Value: orderId}, {Key: "deletedAt", Value: nil}})
	if err := singleResult.Err(); err != nil {
		if repo.mongoAdapter.NoDocument(err) {
			return false, nil
		}
		return false, errors.Wrap(err, "ExistsById failed")
	}
	return true, nil
}

func (repo iOrderRepositoryImpl) Count(ctx context.Context) (int64, error) {
	total, err := repo.mongoAdapter.Count(databaseName, collectionName, bson.D{{Key: "deletedAt", Value: nil}})
	if err != nil {
		return 0, errors.Wrap(err, "Count failed")
	}
	return total, nil
}

func (repo iOrderRepositoryImpl) DeleteById(ctx context.Context, orderId uint64) (*entities.Order, error) {
	order, err := repo.FindById(ctx, orderId)
	if err != nil {
		return nil, err
	}

	deletedAt := time.Now().UTC()
	order.DeletedAt = &deletedAt

	updateResult, err := repo.mongoAdapter.UpdateOne(databaseName, collectionName,
		bson.D{{Key: "orderId", Value: order.OrderId}, {Key: "deletedAt", Value: nil}},
		bson.D{{Key: "$set", Value: order}})
	if err != nil {
		return nil, errors.Wrap(err, "UpdateOne failed")
	}

	if updateResult.ModifiedCount != 1 {
		return nil, ErrorDeleteFailed
	}

	return order, nil
}
