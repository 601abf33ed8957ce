package checkout

import (
	"context"
	"regexp"
	"sync"
	"time"

	"github.com/May-nib/sellarmy/domain/cart"
	"github.com/May-nib/sellarmy/domain/models/entities"
	listing_repository "github.com/May-nib/sellarmy/domain/models/repository/listing"
	order_repository "github.com/May-nib/sellarmy/domain/models/repository/order"
	orderitem_repository "github.com/May-nib/sellarmy/domain/models/repository/orderitem"
	product_repository "github.com/May-nib/sellarmy/domain/models/repository/product"
	"github.com/May-nib/sellarmy/infrastructure/future"
	applog "github.com/May-nib/sellarmy/infrastructure/logger"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

type iCheckoutServiceImpl struct {
	cartStore           *cart.Store
	productRepository   product_repository.IProductRepository
	listingRepository   listing_repository.IListingRepository
	orderRepository     order_repository.IOrderRepository
	orderItemRepository orderitem_repository.IOrderItemRepository
	commissionRate      int
	fetchTimeout        time.Duration

	mux      sync.Mutex
	inFlight map[string]struct{}
}

func NewCheckoutService(cartStore *cart.Store,
	productRepository product_repository.IProductRepository,
	listingRepository listing_repository.IListingRepository,
	orderRepository order_repository.IOrderRepository,
	orderItemRepository orderitem_repository.IOrderItemRepository,
	commissionRate int, fetchTimeout time.Duration) ICheckoutService {
	return &iCheckoutServiceImpl{
		cartStore:           cartStore,
		productRepository:   productRepository,
		listingRepository:   listingRepository,
		orderRepository:     orderRepository,
		orderItemRepository: orderItemRepository,
		commissionRate:      commissionRate,
		fetchTimeout:        fetchTimeout,
		inFlight:            make(map[string]struct{}, 64),
	}
}

func (service *iCheckoutServiceImpl) LoadCartItems(ctx context.Context, sessionId string) ([]entities.CartItem, bool, error) {
	directItems, err := service.cartStore.DirectItems(ctx, sessionId)
	if err != nil {
		return nil, false, err
	}

	if len(directItems) > 0 {
		return directItems, true, nil
	}

	items, err := service.cartStore.Items(ctx, sessionId)
	if err != nil {
		return nil, false, err
	}

	return items, false, nil
}

func (service *iCheckoutServiceImpl) EnrichItems(ctx context.Context, items []entities.CartItem) []entities.CartItem {
	if len(items) == 0 {
		return items
	}

	distinctIds := make([]uint64, 0, len(items))
	seenIds := make(map[uint64]struct{}, len(items))
	for _, item := range items {
		if _, ok := seenIds[item.ProductId]; ok {
			continue
		}
		seenIds[item.ProductId] = struct{}{}
		distinctIds = append(distinctIds, item.ProductId)
	}

	productsFuture := future.Factory().SetCapacity(1).Build()
	go func() {
		products, err := service.productRepository.FindAllById(ctx, distinctIds...)
		if err != nil {
			future.FactoryOf(productsFuture).
				SetError(future.BadGateway, "products batch fetch failed", err).Send()
			return
		}
		future.FactoryOf(productsFuture).SetData(products).Send()
	}()

	listingsFuture := future.Factory().SetCapacity(1).Build()
	go func() {
		listings, err := service.listingRepository.FindAllByProductId(ctx, distinctIds...)
		if err != nil {
			future.FactoryOf(listingsFuture).
				SetError(future.BadGateway, "listings batch fetch failed", err).Send()
			return
		}
		future.FactoryOf(listingsFuture).SetData(listings).Send()
	}()

	productsById := make(map[uint64]*entities.Product, len(distinctIds))
	if futureData := productsFuture.GetTimeout(service.fetchTimeout); futureData == nil {
		applog.GLog.Logger.Error("products batch fetch timed out, items kept unenriched",
			"fn", "EnrichItems",
			"timeout", service.fetchTimeout)
	} else if futureData.Error() != nil {
		applog.GLog.Logger.Error("products batch fetch failed, items kept unenriched",
			"fn", "EnrichItems",
			"error", futureData.Error().Reason())
	} else {
		for _, product := range futureData.Data().([]*entities.Product) {
			productsById[product.ProductId] = product
		}
	}

	// first listing per product wins, matching the single-reseller
	// attribution policy
	resellerByProductId := make(map[uint64]uint64, len(distinctIds))
	if futureData := listingsFuture.GetTimeout(service.fetchTimeout); futureData == nil {
		applog.GLog.Logger.Error("listings batch fetch timed out, items kept unenriched",
			"fn", "EnrichItems",
			"timeout", service.fetchTimeout)
	} else if futureData.Error() != nil {
		applog.GLog.Logger.Error("listings batch fetch failed, items kept unenriched",
			"fn", "EnrichItems",
			"error", futureData.Error().Reason())
	} else {
		for _, listing := range futureData.Data().([]*entities.Listing) {
			if _, ok := resellerByProductId[listing.ProductId]; !ok {
				resellerByProductId[listing.ProductId] = listing.ResellerId
			}
		}
	}

	enriched := make([]entities.CartItem, len(items))
	for i, item := range items {
		if product, ok := productsById[item.ProductId]; ok {
			if item.ImageUrl == nil && product.ImageUrl != "" {
				imageUrl := product.ImageUrl
				item.ImageUrl = &imageUrl
			}
			if item.SellerId == nil && product.SellerId != nil {
				sellerId := *product.SellerId
				item.SellerId = &sellerId
			}
		}
		if item.ResellerId == nil {
			if resellerId, ok := resellerByProductId[item.ProductId]; ok {
				item.ResellerId = &resellerId
			}
		}
		enriched[i] = item
	}

	return enriched
}

func (service *iCheckoutServiceImpl) PlaceOrder(ctx context.Context, sessionId string, form CheckoutForm) (*entities.Order, error) {
	if err := service.acquireSession(sessionId); err != nil {
		return nil, err
	}
	defer service.releaseSession(sessionId)

	if validationErrors := validateForm(form); len(validationErrors) > 0 {
		return nil, validationErrors
	}

	items, direct, err := service.LoadCartItems(ctx, sessionId)
	if err != nil {
		return nil, err
	}

	if len(items) == 0 {
		return nil, ErrorEmptyCart
	}

	items = service.EnrichItems(ctx, items)

	total, itemCommissions, totalCommission := computeTotals(items, service.commissionRate)

	billingAddress := form.BillingAddress
	if form.SameBillingAddress {
		billingAddress = form.ShippingAddress
	}

	order := &entities.Order{
		OrderNumber:     entities.GenerateOrderNumber(),
		CustomerName:    form.CustomerName,
		CustomerEmail:   form.CustomerEmail,
		CustomerPhone:   form.CustomerPhone,
		ShippingAddress: form.ShippingAddress,
		BillingAddress:  billingAddress,
		PaymentMethod:   form.PaymentMethod,
		Notes:           form.Notes,
		TotalAmount:     total,
		CommissionRate:  float64(service.commissionRate),
		TotalCommission: totalCommission,
		Status:          entities.PendingStatus,
		PaymentStatus:   entities.PendingStatus,
	}

	if err := service.orderRepository.Insert(ctx, order); err != nil {
		return nil, errors.Wrap(err, "order insert failed")
	}

	orderItems := make([]*entities.OrderItem, 0, len(items))
	for i, item := range items {
		orderItems = append(orderItems, &entities.OrderItem{
			OrderId:        order.OrderId,
			ProductId:      item.ProductId,
			ProductName:    item.Name,
			ProductPrice:   item.Price,
			Quantity:       item.Quantity,
			Size:           item.Size,
			ImageUrl:       item.ImageUrl,
			ItemCommission: itemCommissions[i],
			SellerId:       item.SellerId,
			ResellerId:     item.ResellerId,
		})
	}

	// the header is not rolled back when the item write fails, the
	// orphaned header stays behind and the cart is left intact
	if err := service.orderItemRepository.InsertAll(ctx, orderItems); err != nil {
		applog.GLog.Logger.Error("order items insert failed after header insert",
			"fn", "PlaceOrder",
			"oid", order.OrderId,
			"error", err)
		return nil, errors.Wrap(err, "order items insert failed")
	}

	if err := service.cartStore.ClearAll(ctx, sessionId); err != nil {
		applog.GLog.Logger.Error("cart clear after successful order failed",
			"fn", "PlaceOrder",
			"oid", order.OrderId,
			"sessionId", sessionId,
			"error", err)
	}

	applog.GLog.Logger.Info("order placed",
		"fn", "PlaceOrder",
		"oid", order.OrderId,
		"orderNumber", order.OrderNumber,
		"direct", direct,
		"total", order.TotalAmount)

	return order, nil
}

func (service *iCheckoutServiceImpl) acquireSession(sessionId string) error {
	service.mux.Lock()
	defer service.mux.Unlock()

	if _, ok := service.inFlight[sessionId]; ok {
		return ErrorCheckoutInFlight
	}
	service.inFlight[sessionId] = struct{}{}
	return nil
}

func (service *iCheckoutServiceImpl) releaseSession(sessionId string) {
	service.mux.Lock()
	defer service.mux.Unlock()
	delete(service.inFlight, sessionId)
}

// computeTotals runs the money math through decimals so the per-item
// commissions and the header commission agree exactly for 2-dp prices.
func computeTotals(items []entities.CartItem, commissionRate int) (float64, []float64, float64) {
	rate := decimal.New(int64(commissionRate), -2)

	total := decimal.Zero
	itemCommissions := make([]float64, len(items))
	for i, item := range items {
		lineTotal := decimal.NewFromFloat(item.Price).Mul(decimal.New(int64(item.Quantity), 0))
		total = total.Add(lineTotal)
		itemCommissions[i], _ = lineTotal.Mul(rate).Round(2).Float64()
	}

	total = total.Round(2)
	totalCommission, _ := total.Mul(rate).Round(2).Float64()
	totalAmount, _ := total.Float64()

	return totalAmount, itemCommissions, totalCommission
}

func validateForm(form CheckoutForm) ValidationErrors {
	validationErrors := make(ValidationErrors, 4)

	if form.CustomerName == "" {
		validationErrors["customer_name"] = "customer name is required"
	}

	if form.CustomerEmail == "" {
		validationErrors["customer_email"] = "customer email is required"
	} else if !emailPattern.MatchString(form.CustomerEmail) {
		validationErrors["customer_email"] = "customer email is malformed"
	}

	if form.ShippingAddress.Street == "" {
		validationErrors["shipping_street"] = "shipping street is required"
	}

	if form.ShippingAddress.City == "" {
		validationErrors["shipping_city"] = "shipping city is required"
	}

	return validationErrors
}
