package product_repository

import (
	"context"

	"github.com/May-nib/sellarmy/domain/models/entities"
)

type IProductRepository interface {
	FindById(ctx context.Context, productId uint64) (*entities.Product, error)

	// FindAllById is a batched lookup, missing ids are silently skipped.
	FindAllById(ctx context.Context, ids ...uint64) ([]*entities.Product, error)

	// FindByCategory returns up to limit products sharing a category,
	// excluding the product identified by excludeId.
	FindByCategory(ctx context.Context, category string, excludeId uint64, limit int64) ([]*entities.Product, error)

	FindAllWithSort(ctx context.Context, fieldName string, direction int, limit int64) ([]*entities.Product, error)

	ExistsById(ctx context.Context, productId uint64) (bool, error)

	Count(ctx context.Context) (int64, error)
}
