package cart_repository

import (
	"context"

	"github.com/May-nib/sellarmy/domain/models/entities"
)

type ICartRepository interface {
	// Save upserts the cart document keyed by session and storage key.
	Save(ctx context.Context, cart entities.Cart) (*entities.Cart, error)

	FindBySessionAndKey(ctx context.Context, sessionId, key string) (*entities.Cart, error)

	RemoveBySessionAndKey(ctx context.Context, sessionId, key string) error
}
