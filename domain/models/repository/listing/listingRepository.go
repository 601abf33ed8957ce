package listing_repository

import (
	"context"

	"github.com/May-nib/sellarmy/domain/models/entities"
)

type IListingRepository interface {
	// FindAllByResellerId returns every listing a reseller carries in
	// their store.
	FindAllByResellerId(ctx context.Context, resellerId uint64) ([]*entities.Listing, error)

	// FindAllByProductId is a batched reverse lookup used to attribute
	// cart items to the resellers carrying them.
	FindAllByProductId(ctx context.Context, productIds ...uint64) ([]*entities.Listing, error)

	Count(ctx context.Context, resellerId uint64) (int64, error)
}
