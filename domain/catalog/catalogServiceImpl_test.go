package catalog

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/May-nib/sellarmy/domain/models/entities"
	user_repository "github.com/May-nib/sellarmy/domain/models/repository/user"
	applog "github.com/May-nib/sellarmy/infrastructure/logger"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.faza.io/go-framework/logger"
)

func TestMain(m *testing.M) {
	applog.GLog.ZapLogger = applog.InitZap()
	applog.GLog.Logger = logger.NewZapLogger(applog.GLog.ZapLogger)

	// Running Tests
	code := m.Run()
	os.Exit(code)
}

type fakeUserRepository struct {
	users map[string]*entities.User
}

func (repo *fakeUserRepository) FindById(ctx context.Context, userId uint64) (*entities.User, error) {
	return nil, user_repository.ErrorUserNotFound
}

func (repo *fakeUserRepository) FindBySlug(ctx context.Context, slug string) (*entities.User, error) {
	if user, ok := repo.users[slug]; ok {
		return user, nil
	}
	return nil, user_repository.ErrorUserNotFound
}

func (repo *fakeUserRepository) ExistsById(ctx context.Context, userId uint64) (bool, error) {
	return false, nil
}

func (repo *fakeUserRepository) Count(ctx context.Context) (int64, error) {
	return int64(len(repo.users)), nil
}

type fakeProductRepository struct {
	products map[uint64]*entities.Product
	similar  []*entities.Product
	sorted   []*entities.Product
	fail     bool
}

func (repo *fakeProductRepository) FindById(ctx context.Context, productId uint64) (*entities.Product, error) {
	if repo.fail {
		return nil, errors.New("remote read failed")
	}
	if product, ok := repo.products[productId]; ok {
		return product, nil
	}
	return nil, errors.New("product not found")
}

func (repo *fakeProductRepository) FindAllById(ctx context.Context, ids ...uint64) ([]*entities.Product, error) {
	if repo.fail {
		return nil, errors.New("remote read failed")
	}
	products := make([]*entities.Product, 0, len(ids))
	for _, id := range ids {
		if product, ok := repo.products[id]; ok {
			products = append(products, product)
		}
	}
	return products, nil
}

func (repo *fakeProductRepository) FindByCategory(ctx context.Context, category string, excludeId uint64, limit int64) ([]*entities.Product, error) {
	if repo.fail {
		return nil, errors.New("remote read failed")
	}
	return repo.similar, nil
}

func (repo *fakeProductRepository) FindAllWithSort(ctx context.Context, fieldName string, direction int, limit int64) ([]*entities.Product, error) {
	if repo.fail {
		return nil, errors.New("remote read failed")
	}
	return repo.sorted, nil
}

func (repo *fakeProductRepository) ExistsById(ctx context.Context, productId uint64) (bool, error) {
	_, ok := repo.products[productId]
	return ok, nil
}

func (repo *fakeProductRepository) Count(ctx context.Context) (int64, error) {
	return int64(len(repo.products)), nil
}

type fakeListingRepository struct {
	listings []*entities.Listing
}

func (repo *fakeListingRepository) FindAllByResellerId(ctx context.Context, resellerId uint64) ([]*entities.Listing, error) {
	matched := make([]*entities.Listing, 0, len(repo.listings))
	for _, listing := range repo.listings {
		if listing.ResellerId == resellerId {
			matched = append(matched, listing)
		}
	}
	return matched, nil
}

func (repo *fakeListingRepository) FindAllByProductId(ctx context.Context, productIds ...uint64) ([]*entities.Listing, error) {
	return nil, nil
}

func (repo *fakeListingRepository) Count(ctx context.Context, resellerId uint64) (int64, error) {
	return int64(len(repo.listings)), nil
}

type fakeReviewRepository struct {
	reviews []*entities.Review
	fail    bool
	delay   time.Duration
}

func (repo *fakeReviewRepository) FindAllByProductId(ctx context.Context, productId uint64) ([]*entities.Review, error) {
	if repo.delay > 0 {
		time.Sleep(repo.delay)
	}
	if repo.fail {
		return nil, errors.New("remote read failed")
	}
	return repo.reviews, nil
}

func (repo *fakeReviewRepository) Count(ctx context.Context, productId uint64) (int64, error) {
	return int64(len(repo.reviews)), nil
}

func newTestCatalog(users *fakeUserRepository, products *fakeProductRepository,
	listings *fakeListingRepository, reviews *fakeReviewRepository) ICatalogService {
	return NewCatalogService(users, products, listings, reviews, 8, 8, time.Second)
}

func TestStoreBySlugBlank(t *testing.T) {
	service := newTestCatalog(&fakeUserRepository{}, &fakeProductRepository{}, &fakeListingRepository{}, &fakeReviewRepository{})

	view, err := service.StoreBySlug(context.Background(), "")
	require.Equal(t, ErrorBlankSlug, err)
	require.Nil(t, view)
}

func TestStoreBySlugNotFound(t *testing.T) {
	service := newTestCatalog(&fakeUserRepository{}, &fakeProductRepository{}, &fakeListingRepository{}, &fakeReviewRepository{})

	view, err := service.StoreBySlug(context.Background(), "ghost-store")
	require.Equal(t, ErrorStoreNotFound, err)
	require.Nil(t, view)
}

func TestStoreBySlugJoinsListings(t *testing.T) {
	users := &fakeUserRepository{users: map[string]*entities.User{
		"amina-shop": {UserId: 9, FullName: "Amina Shop"},
	}}
	products := &fakeProductRepository{products: map[uint64]*entities.Product{
		1: {ProductId: 1, Name: "Sneaker", Price: 20},
		2: {ProductId: 2, Name: "Perfume", Price: 59.99},
	}}
	listings := &fakeListingRepository{listings: []*entities.Listing{
		{ResellerId: 9, ProductId: 1},
		{ResellerId: 9, ProductId: 2},
		{ResellerId: 11, ProductId: 1},
	}}
	service := newTestCatalog(users, products, listings, &fakeReviewRepository{})

	view, err := service.StoreBySlug(context.Background(), "amina-shop")
	require.Nil(t, err)
	require.Equal(t, uint64(9), view.Reseller.UserId)
	require.Len(t, view.Products, 2)
}

func TestStoreBySlugEmptyStoreIsValid(t *testing.T) {
	users := &fakeUserRepository{users: map[string]*entities.User{
		"empty-shop": {UserId: 3, FullName: "Empty Shop"},
	}}
	service := newTestCatalog(users, &fakeProductRepository{}, &fakeListingRepository{}, &fakeReviewRepository{})

	view, err := service.StoreBySlug(context.Background(), "empty-shop")
	require.Nil(t, err)
	require.Len(t, view.Products, 0)
}

func TestProductDetailPlaceholderFallback(t *testing.T) {
	service := newTestCatalog(&fakeUserRepository{}, &fakeProductRepository{fail: true}, &fakeListingRepository{}, &fakeReviewRepository{fail: true})

	view, err := service.ProductDetail(context.Background(), 404)
	require.Nil(t, err)
	require.True(t, view.Placeholder)
	require.Equal(t, PlaceholderProduct().Name, view.Product.Name)
	require.Len(t, view.Reviews, len(PlaceholderReviews()))
	require.Len(t, view.Similar, len(PlaceholderSimilar()))
	// placeholder reviews rate 5, 4 and 3
	assert.Equal(t, 4.0, view.AverageRating)
}

func TestProductDetailAverageRatingRounding(t *testing.T) {
	products := &fakeProductRepository{products: map[uint64]*entities.Product{
		1: {ProductId: 1, Name: "Sneaker", Category: "Shoes"},
	}}
	reviews := &fakeReviewRepository{reviews: []*entities.Review{
		{ReviewId: 1, Rating: 5},
		{ReviewId: 2, Rating: 4},
		{ReviewId: 3, Rating: 4},
	}}
	service := newTestCatalog(&fakeUserRepository{}, products, &fakeListingRepository{}, reviews)

	view, err := service.ProductDetail(context.Background(), 1)
	require.Nil(t, err)
	require.False(t, view.Placeholder)
	// 13/3 = 4.333... rounds to one decimal
	assert.Equal(t, 4.3, view.AverageRating)
}

func TestProductDetailEmptySectionsUsePlaceholders(t *testing.T) {
	products := &fakeProductRepository{products: map[uint64]*entities.Product{
		1: {ProductId: 1, Name: "Sneaker", Category: "Shoes"},
	}}
	service := newTestCatalog(&fakeUserRepository{}, products, &fakeListingRepository{}, &fakeReviewRepository{})

	view, err := service.ProductDetail(context.Background(), 1)
	require.Nil(t, err)
	require.False(t, view.Placeholder)
	require.Len(t, view.Reviews, len(PlaceholderReviews()))
	require.Len(t, view.Similar, len(PlaceholderSimilar()))
}

func TestProductDetailSlowReviewsUsePlaceholders(t *testing.T) {
	products := &fakeProductRepository{products: map[uint64]*entities.Product{
		1: {ProductId: 1, Name: "Sneaker", Category: "Shoes"},
	}}
	reviews := &fakeReviewRepository{
		reviews: []*entities.Review{{ReviewId: 1, Rating: 1}},
		delay:   200 * time.Millisecond,
	}
	service := NewCatalogService(&fakeUserRepository{}, products, &fakeListingRepository{},
		reviews, 8, 8, 10*time.Millisecond)

	view, err := service.ProductDetail(context.Background(), 1)
	require.Nil(t, err)
	require.False(t, view.Placeholder)
	// the slow review read is abandoned, the placeholder reviews render
	require.Len(t, view.Reviews, len(PlaceholderReviews()))
	assert.Equal(t, 4.0, view.AverageRating)
}

func TestFeaturedProductsFallsBackToMarketingList(t *testing.T) {
	service := newTestCatalog(&fakeUserRepository{}, &fakeProductRepository{fail: true}, &fakeListingRepository{}, &fakeReviewRepository{})

	products := service.FeaturedProducts(context.Background())
	require.Len(t, products, 4)
	assert.Equal(t, "Best Running Shoe", products[0].Name)
}

func TestFeaturedProductsUsesStoreWhenAvailable(t *testing.T) {
	products := &fakeProductRepository{sorted: []*entities.Product{
		{ProductId: 7, Name: "Fresh Drop", Price: 12.50},
	}}
	service := newTestCatalog(&fakeUserRepository{}, products, &fakeListingRepository{}, &fakeReviewRepository{})

	featured := service.FeaturedProducts(context.Background())
	require.Len(t, featured, 1)
	assert.Equal(t, uint64(7), featured[0].ProductId)
}
