package converter

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/May-nib/sellarmy/domain/models/entities"
	applog "github.com/May-nib/sellarmy/infrastructure/logger"
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

func TestMapProduct(t *testing.T) {
	iconv := NewConverter()

	product := &entities.Product{
		ProductId: 1,
		Name:      "Sneaker",
		Price:     20,
		ImageUrl:  "/images/sneaker.png",
		Category:  "Shoes",
	}

	out, err := iconv.Map(context.Background(), product, ProductView{})
	require.Nil(t, err)

	view, ok := out.(*ProductView)
	require.True(t, ok)
	assert.Equal(t, uint64(1), view.ProductId)
	assert.Equal(t, "Sneaker", view.Name)
	assert.Equal(t, "/images/sneaker.png", view.ImageUrl)
}

func TestMapProductDefaultsImage(t *testing.T) {
	iconv := NewConverter()

	out, err := iconv.Map(context.Background(), &entities.Product{ProductId: 1, Name: "Sneaker", Price: 20}, ProductView{})
	require.Nil(t, err)
	assert.Equal(t, placeholderImage, out.(*ProductView).ImageUrl)
}

func TestMapProductRejectsNegativePrice(t *testing.T) {
	iconv := NewConverter()

	_, err := iconv.Map(context.Background(), &entities.Product{ProductId: 1, Name: "Sneaker", Price: -1}, ProductView{})
	require.NotNil(t, err)
}

func TestMapOrder(t *testing.T) {
	iconv := NewConverter()

	order := &entities.Order{
		OrderId:         55,
		OrderNumber:     "ORD-m1abc-7f",
		CustomerName:    "Hanna Tesfaye",
		TotalAmount:     55.50,
		CommissionRate:  10,
		TotalCommission: 5.55,
		Status:          entities.PendingStatus,
		PaymentStatus:   entities.PendingStatus,
		CreatedAt:       time.Now().UTC(),
	}

	out, err := iconv.Map(context.Background(), order, OrderView{})
	require.Nil(t, err)

	view, ok := out.(*OrderView)
	require.True(t, ok)
	assert.Equal(t, "ORD-m1abc-7f", view.OrderNumber)
	assert.Equal(t, 55.50, view.TotalAmount)
	assert.Equal(t, 5.55, view.TotalCommission)
}

func TestMapOrderRejectsMissingNumber(t *testing.T) {
	iconv := NewConverter()

	_, err := iconv.Map(context.Background(), &entities.Order{OrderId: 55}, OrderView{})
	require.NotNil(t, err)
}

func TestMapReviewDefaultsReviewer(t *testing.T) {
	iconv := NewConverter()

	out, err := iconv.Map(context.Background(), &entities.Review{ReviewId: 1, Rating: 4}, ReviewView{})
	require.Nil(t, err)
	assert.Equal(t, "Anonymous", out.(*ReviewView).ReviewerName)
}

func TestMapReviewNamesReviewer(t *testing.T) {
	iconv := NewConverter()

	review := &entities.Review{
		ReviewId: 1,
		Rating:   5,
		Comment:  "Great",
		Reviewer: entities.ReviewerInfo{UserId: 2, FullName: "Amina"},
	}

	out, err := iconv.Map(context.Background(), review, ReviewView{})
	require.Nil(t, err)
	assert.Equal(t, "Amina", out.(*ReviewView).ReviewerName)
}

func TestMapCartItem(t *testing.T) {
	iconv := NewConverter()

	size := "M"
	item := entities.CartItem{ProductId: 1, Name: "Sneaker", Price: 20, Quantity: 2, Size: &size}

	out, err := iconv.Map(context.Background(), item, CartItemView{})
	require.Nil(t, err)

	view, ok := out.(*CartItemView)
	require.True(t, ok)
	assert.Equal(t, int32(2), view.Quantity)
	require.NotNil(t, view.Size)
	assert.Equal(t, "M", *view.Size)
}

func TestMapUnsupportedType(t *testing.T) {
	iconv := NewConverter()

	_, err := iconv.Map(context.Background(), "bogus", OrderView{})
	require.NotNil(t, err)

	_, err = iconv.Map(context.Background(), &entities.Order{}, struct{}{})
	require.NotNil(t, err)
}
