package user_repository

import (
	"context"

	"github.com/May-nib/sellarmy/domain/models/entities"
)

type IUserRepository interface {
	FindById(ctx context.Context, userId uint64) (*entities.User, error)

	// FindBySlug resolves a store slug to a reseller by case-insensitive
	// name match. Slugs are not unique keys, the first match wins.
	FindBySlug(ctx context.Context, slug string) (*entities.User, error)

	ExistsById(ctx context.Context, userId uint64) (bool, error)

	Count(ctx context.Context) (int64, error)
}
