package order_repository

import (
	"context"

	"github.com/May-nib/sellarmy/domain/models/entities"
)

type IOrderRepository interface {
	// Insert assigns orderId when zero and persists the order. The
	// orderNumber written here is the one customers see on the
	// confirmation page and the receipt document.
	Insert(ctx context.Context, order *entities.Order) error

	FindById(ctx context.Context, orderId uint64) (*entities.Order, error)

	FindByOrderNumber(ctx context.Context, orderNumber string) (*entities.Order, error)

	ExistsById(ctx context.Context, orderId uint64) (bool, error)

	Count(ctx context.Context) (int64, error)

	// only set DeletedAt field
	DeleteById(ctx context.Context, orderId uint64) (*entities.Order, error)
}
