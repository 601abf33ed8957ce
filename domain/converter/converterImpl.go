package converter

import (
	"context"

	"github.com/May-nib/sellarmy/domain/models/entities"
	applog "github.com/May-nib/sellarmy/infrastructure/logger"
	"github.com/devfeel/mapper"
	"github.com/pkg/errors"
)

const placeholderImage = "/images/placeholder.png"

func init() {
	_ = mapper.Register(&entities.User{})
	_ = mapper.Register(&entities.Product{})
	_ = mapper.Register(&entities.Review{})
	_ = mapper.Register(&entities.CartItem{})
	_ = mapper.Register(&entities.Order{})
	_ = mapper.Register(&entities.OrderItem{})
	_ = mapper.Register(&ResellerView{})
	_ = mapper.Register(&ProductView{})
	_ = mapper.Register(&ReviewView{})
	_ = mapper.Register(&CartItemView{})
	_ = mapper.Register(&OrderView{})
	_ = mapper.Register(&OrderItemView{})
}

type iConverterImpl struct {
}

func NewConverter() IConverter {
	return &iConverterImpl{}
}

func (iconv iConverterImpl) Map(ctx context.Context, in interface{}, out interface{}) (interface{}, error) {

	switch out.(type) {
	case ResellerView:
		user, ok := in.(*entities.User)
		if !ok {
			return nil, iconv.unsupported(ctx, in)
		}
		return convertReseller(user)

	case ProductView:
		product, ok := in.(*entities.Product)
		if !ok {
			return nil, iconv.unsupported(ctx, in)
		}
		return convertProduct(product)

	case ReviewView:
		review, ok := in.(*entities.Review)
		if !ok {
			return nil, iconv.unsupported(ctx, in)
		}
		return convertReview(review)

	case CartItemView:
		item, ok := in.(entities.CartItem)
		if !ok {
			return nil, iconv.unsupported(ctx, in)
		}
		return convertCartItem(item)

	case OrderView:
		order, ok := in.(*entities.Order)
		if !ok {
			return nil, iconv.unsupported(ctx, in)
		}
		return convertOrder(order)

	case OrderItemView:
		item, ok := in.(*entities.OrderItem)
		if !ok {
			return nil, iconv.unsupported(ctx, in)
		}
		return convertOrderItem(item)
	}

	applog.GLog.Logger.Error("mapping to output type not supported",
		"fn", "Map",
		"out", out)
	return nil, errors.New("mapping to output type not supported")
}

func (iconv iConverterImpl) unsupported(ctx context.Context, in interface{}) error {
	applog.GLog.Logger.Error("mapping from input type not supported",
		"fn", "Map",
		"in", in)
	return errors.New("mapping from input type not supported")
}

func convertReseller(user *entities.User) (*ResellerView, error) {
	if user.UserId == 0 {
		return nil, errors.New("user id of reseller invalid")
	}

	var view ResellerView
	if err := mapper.AutoMapper(user, &view); err != nil {
		return nil, errors.Wrap(err, "reseller mapping failed")
	}

	if view.FullName == "" {
		view.FullName = "Unnamed Store"
	}

	return &view, nil
}

func convertProduct(product *entities.Product) (*ProductView, error) {
	if product.ProductId == 0 {
		return nil, errors.New("product id invalid")
	}

	if product.Price < 0 {
		return nil, errors.New("product price negative")
	}

	var view ProductView
	if err := mapper.AutoMapper(product, &view); err != nil {
		return nil, errors.Wrap(err, "product mapping failed")
	}

	if view.ImageUrl == "" {
		view.ImageUrl = placeholderImage
	}

	return &view, nil
}

func convertReview(review *entities.Review) (*ReviewView, error) {
	if review.Rating < 0 || review.Rating > 5 {
		return nil, errors.New("review rating out of range")
	}

	var view ReviewView
	if err := mapper.AutoMapper(review, &view); err != nil {
		return nil, errors.Wrap(err, "review mapping failed")
	}

	view.ReviewerName = review.Reviewer.FullName
	if view.ReviewerName == "" {
		view.ReviewerName = "Anonymous"
	}

	return &view, nil
}

func convertCartItem(item entities.CartItem) (*CartItemView, error) {
	if item.ProductId == 0 {
		return nil, errors.New("product id of cart item invalid")
	}

	if item.Quantity <= 0 {
		return nil, errors.New("quantity of cart item invalid")
	}

	var view CartItemView
	if err := mapper.AutoMapper(&item, &view); err != nil {
		return nil, errors.Wrap(err, "cart item mapping failed")
	}

	return &view, nil
}

func convertOrder(order *entities.Order) (*OrderView, error) {
	if order.OrderId == 0 {
		return nil, errors.New("order id invalid")
	}

	if order.OrderNumber == "" {
		return nil, errors.New("order number empty")
	}

	var view OrderView
	if err := mapper.AutoMapper(order, &view); err != nil {
		return nil, errors.Wrap(err, "order mapping failed")
	}

	return &view, nil
}

func convertOrderItem(item *entities.OrderItem) (*OrderItemView, error) {
	if item.OrderId == 0 {
		return nil, errors.New("order id of order item invalid")
	}

	var view OrderItemView
	if err := mapper.AutoMapper(item, &view); err != nil {
		return nil, errors.Wrap(err, "order item mapping failed")
	}

	return &view, nil
}
