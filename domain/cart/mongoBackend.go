package cart

import (
	"context"

	"github.com/May-nib/sellarmy/domain/models/entities"
	cart_repository "github.com/May-nib/sellarmy/domain/models/repository/cart"
)

// mongoBackend persists cart lists through the cart repository so sessions
// survive restarts.
type mongoBackend struct {
	cartRepository cart_repository.ICartRepository
}

func NewMongoBackend(cartRepository cart_repository.ICartRepository) Backend {
	return &mongoBackend{cartRepository: cartRepository}
}

func (backend *mongoBackend) Get(ctx context.Context, sessionId, key string) ([]entities.CartItem, error) {
	storedCart, err := backend.cartRepository.FindBySessionAndKey(ctx, sessionId, key)
	if err != nil {
		if err == cart_repository.ErrorCartNotFound {
			return nil, nil
		}
		return nil, err
	}
	return storedCart.Items, nil
}

func (backend *mongoBackend) Put(ctx context.Context, sessionId, key string, items []entities.CartItem) error {
	_, err := backend.cartRepository.Save(ctx, entities.Cart{
		SessionId: sessionId,
		Key:       key,
		Items:     items,
	})
	return err
}

func (backend *mongoBackend) Clear(ctx context.Context, sessionId, key string) error {
	return backend.cartRepository.RemoveBySessionAndKey(ctx, sessionId, key)
}
