package cart

import (
	"context"

	"github.com/May-nib/sellarmy/domain/models/entities"
	"github.com/pkg/errors"
)

var ErrorInvalidQuantity = errors.New("quantity must be positive")
var ErrorInvalidProduct = errors.New("product id must be set")

// Backend persists cart lists per session and storage key. Implementations
// must treat a missing entry as an empty list, not an error.
type Backend interface {
	Get(ctx context.Context, sessionId, key string) ([]entities.CartItem, error)

	Put(ctx context.Context, sessionId, key string, items []entities.CartItem) error

	Clear(ctx context.Context, sessionId, key string) error
}

// Store wraps a Backend with the cart append and buy-now rules.
type Store struct {
	backend Backend
}

func NewStore(backend Backend) *Store {
	return &Store{backend: backend}
}

// AddItem appends the item to the stored cart as a new line. Repeated adds of
// the same product and size stack as separate lines, never a quantity merge.
func (store *Store) AddItem(ctx context.Context, sessionId string, item entities.CartItem) ([]entities.CartItem, error) {
	if item.ProductId == 0 {
		return nil, ErrorInvalidProduct
	}

	if item.Quantity <= 0 {
		return nil, ErrorInvalidQuantity
	}

	items, err := store.backend.Get(ctx, sessionId, entities.CartKey)
	if err != nil {
		return nil, err
	}

	items = append(items, item)

	if err := store.backend.Put(ctx, sessionId, entities.CartKey, items); err != nil {
		return nil, err
	}

	return items, nil
}

// BuyNow overwrites the direct-checkout slot with a single line item. The
// regular cart is left untouched.
func (store *Store) BuyNow(ctx context.Context, sessionId string, item entities.CartItem) error {
	if item.ProductId == 0 {
		return ErrorInvalidProduct
	}

	if item.Quantity <= 0 {
		return ErrorInvalidQuantity
	}

	return store.backend.Put(ctx, sessionId, entities.DirectCheckoutKey, []entities.CartItem{item})
}

func (store *Store) Items(ctx context.Context, sessionId string) ([]entities.CartItem, error) {
	return store.backend.Get(ctx, sessionId, entities.CartKey)
}

func (store *Store) DirectItems(ctx context.Context, sessionId string) ([]entities.CartItem, error) {
	return store.backend.Get(ctx, sessionId, entities.DirectCheckoutKey)
}

// ClearAll drops both the cart and the direct-checkout slot, called after a
// successful order write.
func (store *Store) ClearAll(ctx context.Context, sessionId string) error {
	if err := store.backend.Clear(ctx, sessionId, entities.CartKey); err != nil {
		return err
	}
	return store.backend.Clear(ctx, sessionId, entities.DirectCheckoutKey)
}

func (store *Store) ClearDirect(ctx context.Context, sessionId string) error {
	return store.backend.Clear(ctx, sessionId, entities.DirectCheckoutKey)
}
