package user_repository

import (
	"context"
	"regexp"
	"strings"

	"github.com/May-nib/sellarmy/domain/models/entities"
	"github.com/pkg/errors"
	"gitlab.faza.io/go-framework/mongoadapter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	databaseName   string = "storefront"
	collectionName string = "users"
)

var ErrorUserNotFound = errors.New("user not found")

type iUserRepositoryImpl struct {
	mongoAdapter *mongoadapter.Mongo
}

func NewUserRepository(mongoDriver *mongoadapter.Mongo) IUserRepository {
	return &iUserRepositoryImpl{mongoDriver}
}

func (repo iUserRepositoryImpl) FindById(ctx context.Context, userId uint64) (*entities.User, error) {
	var user entities.User
	singleResult := repo.mongoAdapter.FindOne(databaseName, collectionName, bson.D{{Key: "userId", Value: userId}, {Key: "deletedAt", Value: nil}})
	if err := singleResult.Err(); err != nil {
		if repo.mongoAdapter.NoDocument(err) {
			return nil, ErrorUserNotFound
		}
		return nil, errors.Wrap(err, "FindById failed")
	}

	if err := singleResult.Decode(&user); err != nil {
		return nil, errors.Wrap(err, "singleResult.Decode failed")
	}

	return &user, nil
}

func (repo iUserRepositoryImpl) FindBySlug(ctx context.Context, slug string) (*entities.User, error) {
	name := strings.ReplaceAll(slug, "-", " ")
	pattern := "^" + regexp.QuoteMeta(name) + "$"

	var user entities.User
	singleResult := repo.mongoAdapter.FindOne(databaseName, collectionName,
		bson.D{{Key: "fullName", Value: primitive.Regex{Pattern: pattern, Options: "i"}}, {Key: "deletedAt", Value: nil}})
	if err := singleResult.Err(); err != nil {
		if repo.mongoAdapter.NoDocument(err) {
			return nil, ErrorUserNotFound
		}
		return nil, errors.Wrap(err, "FindBySlug failed")
	}

	if err := singleResult.Decode(&user); err != nil {
		return nil, errors.Wrap(err, "singleResult.Decode failed")
	}

	return &user, nil
}

func (repo iUserRepositoryImpl) ExistsById(ctx context.Context, userId uint64) (bool, error) {
	singleResult := repo.mongoAdapter.FindOne(databaseName, collectionName, bson.D{{Key: "userId", Value: userId}, {Key: "deletedAt", Value: nil}})
	if err := singleResult.Err(); err != nil {
		if repo.mongoAdapter.NoDocument(err) {
			return false, nil
		}
		return false, errors.Wrap(err, "ExistsById failed")
	}
	return true, nil
}

func (repo iUserRepositoryImpl) Count(ctx context.Context) (int64, error) {
	total, err := repo.mongoAdapter.Count(databaseName, collectionName, bson.D{{Key: "deletedAt", Value: nil}})
	if err != nil {
		return 0, errors.Wrap(err, "Count failed")
	}
	return total, nil
}
