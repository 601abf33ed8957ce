package catalog

import (
	"context"
	"math"
	"time"

	"github.com/May-nib/sellarmy/domain/models/entities"
	listing_repository "github.com/May-nib/sellarmy/domain/models/repository/listing"
	product_repository "github.com/May-nib/sellarmy/domain/models/repository/product"
	review_repository "github.com/May-nib/sellarmy/domain/models/repository/review"
	user_repository "github.com/May-nib/sellarmy/domain/models/repository/user"
	"github.com/May-nib/sellarmy/infrastructure/future"
	applog "github.com/May-nib/sellarmy/infrastructure/logger"
	"github.com/pkg/errors"
)

type iCatalogServiceImpl struct {
	userRepository    user_repository.IUserRepository
	productRepository product_repository.IProductRepository
	listingRepository listing_repository.IListingRepository
	reviewRepository  review_repository.IReviewRepository
	featuredLimit     int
	similarLimit      int
	fetchTimeout      time.Duration
}

func NewCatalogService(userRepository user_repository.IUserRepository,
	productRepository product_repository.IProductRepository,
	listingRepository listing_repository.IListingRepository,
	reviewRepository review_repository.IReviewRepository,
	featuredLimit, similarLimit int, fetchTimeout time.Duration) ICatalogService {
	return &iCatalogServiceImpl{
		userRepository:    userRepository,
		productRepository: productRepository,
		listingRepository: listingRepository,
		reviewRepository:  reviewRepository,
		featuredLimit:     featuredLimit,
		similarLimit:      similarLimit,
		fetchTimeout:      fetchTimeout,
	}
}

func (service *iCatalogServiceImpl) StoreBySlug(ctx context.Context, slug string) (*StoreView, error) {
	if slug == "" {
		return nil, ErrorBlankSlug
	}

	reseller, err := service.userRepository.FindBySlug(ctx, slug)
	if err != nil {
		if err == user_repository.ErrorUserNotFound {
			return nil, ErrorStoreNotFound
		}
		return nil, errors.Wrap(err, "reseller lookup failed")
	}

	listings, err := service.listingRepository.FindAllByResellerId(ctx, reseller.UserId)
	if err != nil {
		return nil, errors.Wrap(err, "listings fetch failed")
	}

	productIds := make([]uint64, 0, len(listings))
	for _, listing := range listings {
		productIds = append(productIds, listing.ProductId)
	}

	products, err := service.productRepository.FindAllById(ctx, productIds...)
	if err != nil {
		return nil, errors.Wrap(err, "products batch fetch failed")
	}

	return &StoreView{Reseller: reseller, Products: products}, nil
}

func (service *iCatalogServiceImpl) ProductDetail(ctx context.Context, productId uint64) (*ProductDetailView, error) {
	view := &ProductDetailView{}

	product, err := service.productRepository.FindById(ctx, productId)
	if err != nil {
		applog.GLog.Logger.Warn("product fetch failed, rendering placeholder",
			"fn", "ProductDetail",
			"pid", productId,
			"error", err)
		product = PlaceholderProduct()
		view.Placeholder = true
	}
	view.Product = product

	reviewsFuture := future.Factory().SetCapacity(1).Build()
	go func() {
		reviews, err := service.reviewRepository.FindAllByProductId(ctx, productId)
		if err != nil {
			future.FactoryOf(reviewsFuture).
				SetError(future.BadGateway, "reviews fetch failed", err).Send()
			return
		}
		future.FactoryOf(reviewsFuture).SetData(reviews).Send()
	}()

	similarFuture := future.Factory().SetCapacity(1).Build()
	go func() {
		similar, err := service.productRepository.FindByCategory(ctx, product.Category, productId, int64(service.similarLimit))
		if err != nil {
			future.FactoryOf(similarFuture).
				SetError(future.BadGateway, "similar products fetch failed", err).Send()
			return
		}
		future.FactoryOf(similarFuture).SetData(similar).Send()
	}()

	if futureData := reviewsFuture.GetTimeout(service.fetchTimeout); futureData == nil {
		applog.GLog.Logger.Warn("reviews fetch timed out, rendering placeholder reviews",
			"fn", "ProductDetail",
			"pid", productId,
			"timeout", service.fetchTimeout)
		view.Reviews = PlaceholderReviews()
	} else if futureData.Error() != nil {
		applog.GLog.Logger.Warn("reviews fetch failed, rendering placeholder reviews",
			"fn", "ProductDetail",
			"pid", productId,
			"error", futureData.Error().Reason())
		view.Reviews = PlaceholderReviews()
	} else if reviews := futureData.Data().([]*entities.Review); len(reviews) == 0 {
		view.Reviews = PlaceholderReviews()
	} else {
		view.Reviews = reviews
	}
	view.AverageRating = averageRating(view.Reviews)

	if futureData := similarFuture.GetTimeout(service.fetchTimeout); futureData == nil {
		applog.GLog.Logger.Warn("similar products fetch timed out, rendering placeholder strip",
			"fn", "ProductDetail",
			"pid", productId,
			"timeout", service.fetchTimeout)
		view.Similar = PlaceholderSimilar()
	} else if futureData.Error() != nil {
		applog.GLog.Logger.Warn("similar products fetch failed, rendering placeholder strip",
			"fn", "ProductDetail",
			"pid", productId,
			"error", futureData.Error().Reason())
		view.Similar = PlaceholderSimilar()
	} else if similar := futureData.Data().([]*entities.Product); len(similar) == 0 {
		view.Similar = PlaceholderSimilar()
	} else {
		view.Similar = similar
	}

	return view, nil
}

func (service *iCatalogServiceImpl) FeaturedProducts(ctx context.Context) []*entities.Product {
	products, err := service.productRepository.FindAllWithSort(ctx, "createdAt", -1, int64(service.featuredLimit))
	if err != nil || len(products) == 0 {
		if err != nil {
			applog.GLog.Logger.Warn("featured products fetch failed, rendering marketing list",
				"fn", "FeaturedProducts",
				"error", err)
		}
		return featuredProducts()
	}
	return products
}

// averageRating rounds to one decimal the way the product page displays it.
func averageRating(reviews []*entities.Review) float64 {
	if len(reviews) == 0 {
		return 0
	}

	var sum int64
	for _, review := range reviews {
		sum += int64(review.Rating)
	}

	return math.Round(float64(sum)/float64(len(reviews))*10) / 10
}
