package confirmation

import (
	"context"

	"github.com/May-nib/sellarmy/domain/models/entities"
	"github.com/pkg/errors"
)

var ErrorOrderNotFound = errors.New("order not found")

// OrderSummary is what the confirmation page renders after checkout.
type OrderSummary struct {
	Order *entities.Order
	Items []*entities.OrderItem
}

type IConfirmationService interface {
	OrderSummary(ctx context.Context, orderId uint64) (*OrderSummary, error)

	// OrderReceipt renders the downloadable receipt document and its
	// filename for an order.
	OrderReceipt(ctx context.Context, orderId uint64) ([]byte, string, error)
}
