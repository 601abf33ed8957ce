package review_repository

import (
	"context"

	"github.com/May-nib/sellarmy/domain/models/entities"
)

type IReviewRepository interface {
	// FindAllByProductId returns reviews newest first.
	FindAllByProductId(ctx context.Context, productId uint64) ([]*entities.Review, error)

	Count(ctx context.Context, productId uint64) (int64, error)
}
