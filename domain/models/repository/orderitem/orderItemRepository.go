package orderitem_repository

import (
	"context"

	"github.com/May-nib/sellarmy/domain/models/entities"
)

type IOrderItemRepository interface {
	// InsertAll assigns item ids and persists every line item of an
	// order in one write.
	InsertAll(ctx context.Context, items []*entities.OrderItem) error

	FindAllByOrderId(ctx context.Context, orderId uint64) ([]*entities.OrderItem, error)

	Count(ctx context.Context, orderId uint64) (int64, error)
}
