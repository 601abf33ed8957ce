package catalog

import (
	"context"

	"github.com/May-nib/sellarmy/domain/models/entities"
	"github.com/pkg/errors"
)

var ErrorBlankSlug = errors.New("store slug is blank")
var ErrorStoreNotFound = errors.New("store not found")

// StoreView is a reseller storefront, an empty Products list is a valid
// storefront.
type StoreView struct {
	Reseller *entities.User
	Products []*entities.Product
}

// ProductDetailView carries everything the product page renders. Sections
// fall back to fixed placeholder data instead of erroring when backend data
// is absent.
type ProductDetailView struct {
	Product       *entities.Product
	Reviews       []*entities.Review
	AverageRating float64
	Similar       []*entities.Product
	Placeholder   bool
}

type ICatalogService interface {
	// StoreBySlug resolves a storefront by reseller slug.
	StoreBySlug(ctx context.Context, slug string) (*StoreView, error)

	// ProductDetail never fails on absent data, each missing section is
	// substituted with placeholder content.
	ProductDetail(ctx context.Context, productId uint64) (*ProductDetailView, error)

	// FeaturedProducts is the home page marketing list.
	FeaturedProducts(ctx context.Context) []*entities.Product
}
