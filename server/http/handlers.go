package http_server

import (
	"context"
	"net/http"
	"strconv"

	"github.com/May-nib/sellarmy/domain/cart"
	"github.com/May-nib/sellarmy/domain/catalog"
	"github.com/May-nib/sellarmy/domain/checkout"
	"github.com/May-nib/sellarmy/domain/confirmation"
	"github.com/May-nib/sellarmy/domain/converter"
	"github.com/May-nib/sellarmy/domain/models/entities"
	applog "github.com/May-nib/sellarmy/infrastructure/logger"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const sessionHeader = "X-Cart-Session"

type addressRequest struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zip_code"`
	Country string `json:"country"`
}

type cartItemRequest struct {
	ProductId uint64  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int32   `json:"quantity"`
	Size      *string `json:"size"`
}

type checkoutRequest struct {
	CustomerName       string          `json:"customer_name"`
	CustomerEmail      string          `json:"customer_email"`
	CustomerPhone      string          `json:"customer_phone"`
	ShippingAddress    addressRequest  `json:"shipping_address"`
	BillingAddress     *addressRequest `json:"billing_address"`
	SameBillingAddress bool            `json:"same_billing_address"`
	PaymentMethod      string          `json:"payment_method"`
	Notes              string          `json:"notes"`
}

func (server Server) session(c echo.Context) string {
	sessionId := c.Request().Header.Get(sessionHeader)
	if sessionId == "" {
		sessionId = uuid.New().String()
	}
	c.Response().Header().Set(sessionHeader, sessionId)
	return sessionId
}

func (server Server) handleHome(c echo.Context) error {
	ctx := c.Request().Context()
	products := server.catalogService.FeaturedProducts(ctx)
	return c.JSON(http.StatusOK, echo.Map{
		"products": server.productViews(ctx, products),
	})
}

func (server Server) handleStore(c echo.Context) error {
	ctx := c.Request().Context()

	storeView, err := server.catalogService.StoreBySlug(ctx, c.Param("slug"))
	if err != nil {
		switch err {
		case catalog.ErrorBlankSlug:
			return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": "store slug is blank"})
		case catalog.ErrorStoreNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"state": "not_found", "error": "store not found"})
		default:
			applog.GLog.Logger.Error("store lookup failed",
				"fn", "handleStore",
				"slug", c.Param("slug"),
				"error", err)
			return c.JSON(http.StatusBadGateway, echo.Map{"error": "store lookup failed"})
		}
	}

	reseller, mapErr := server.converter.Map(ctx, storeView.Reseller, converter.ResellerView{})
	if mapErr != nil {
		return c.JSON(http.StatusBadGateway, echo.Map{"error": "store record malformed"})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"reseller": reseller,
		"products": server.productViews(ctx, storeView.Products),
	})
}

func (server Server) handleProductDetail(c echo.Context) error {
	ctx := c.Request().Context()

	productId, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "product id malformed"})
	}

	detail, err := server.catalogService.ProductDetail(ctx, productId)
	if err != nil {
		applog.GLog.Logger.Error("product detail failed",
			"fn", "handleProductDetail",
			"pid", productId,
			"error", err)
		return c.JSON(http.StatusBadGateway, echo.Map{"error": "product detail failed"})
	}

	product, mapErr := server.converter.Map(ctx, detail.Product, converter.ProductView{})
	if mapErr != nil {
		return c.JSON(http.StatusBadGateway, echo.Map{"error": "product record malformed"})
	}

	reviews := make([]interface{}, 0, len(detail.Reviews))
	for _, review := range detail.Reviews {
		reviewView, mapErr := server.converter.Map(ctx, review, converter.ReviewView{})
		if mapErr != nil {
			applog.GLog.Logger.Warn("review record skipped",
				"fn", "handleProductDetail",
				"error", mapErr)
			continue
		}
		reviews = append(reviews, reviewView)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"product":        product,
		"placeholder":    detail.Placeholder,
		"reviews":        reviews,
		"average_rating": detail.AverageRating,
		"similar":        server.productViews(ctx, detail.Similar),
	})
}

func (server Server) handleGetCart(c echo.Context) error {
	ctx := c.Request().Context()
	sessionId := server.session(c)

	items, err := server.cartStore.Items(ctx, sessionId)
	if err != nil {
		applog.GLog.Logger.Error("cart read failed",
			"fn", "handleGetCart",
			"sessionId", sessionId,
			"error", err)
		return c.JSON(http.StatusBadGateway, echo.Map{"error": "cart read failed"})
	}

	items = server.checkoutService.EnrichItems(ctx, items)
	return c.JSON(http.StatusOK, echo.Map{
		"session": sessionId,
		"items":   server.cartItemViews(ctx, items),
	})
}

func (server Server) handleAddToCart(c echo.Context) error {
	ctx := c.Request().Context()
	sessionId := server.session(c)

	var request cartItemRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "request body malformed"})
	}

	items, err := server.cartStore.AddItem(ctx, sessionId, entities.CartItem{
		ProductId: request.ProductId,
		Name:      request.Name,
		Price:     request.Price,
		Quantity:  request.Quantity,
		Size:      request.Size,
	})
	if err != nil {
		switch err {
		case cart.ErrorInvalidProduct, cart.ErrorInvalidQuantity:
			return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": err.Error()})
		default:
			applog.GLog.Logger.Error("cart write failed",
				"fn", "handleAddToCart",
				"sessionId", sessionId,
				"error", err)
			return c.JSON(http.StatusBadGateway, echo.Map{"error": "cart write failed"})
		}
	}

	return c.JSON(http.StatusOK, echo.Map{
		"session": sessionId,
		"items":   server.cartItemViews(ctx, items),
	})
}

func (server Server) handleBuyNow(c echo.Context) error {
	ctx := c.Request().Context()
	sessionId := server.session(c)

	var request cartItemRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "request body malformed"})
	}

	err := server.cartStore.BuyNow(ctx, sessionId, entities.CartItem{
		ProductId: request.ProductId,
		Name:      request.Name,
		Price:     request.Price,
		Quantity:  request.Quantity,
		Size:      request.Size,
	})
	if err != nil {
		switch err {
		case cart.ErrorInvalidProduct, cart.ErrorInvalidQuantity:
			return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": err.Error()})
		default:
			applog.GLog.Logger.Error("buy-now write failed",
				"fn", "handleBuyNow",
				"sessionId", sessionId,
				"error", err)
			return c.JSON(http.StatusBadGateway, echo.Map{"error": "buy-now write failed"})
		}
	}

	return c.JSON(http.StatusOK, echo.Map{
		"session": sessionId,
		"state":   "direct_checkout_ready",
	})
}

func (server Server) handleCheckout(c echo.Context) error {
	ctx := c.Request().Context()
	sessionId := server.session(c)

	var request checkoutRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "request body malformed"})
	}

	form := checkout.CheckoutForm{
		CustomerName:       request.CustomerName,
		CustomerEmail:      request.CustomerEmail,
		CustomerPhone:      request.CustomerPhone,
		ShippingAddress:    toAddress(request.ShippingAddress),
		SameBillingAddress: request.SameBillingAddress,
		PaymentMethod:      request.PaymentMethod,
		Notes:              request.Notes,
	}
	if request.BillingAddress != nil {
		form.BillingAddress = toAddress(*request.BillingAddress)
	} else {
		form.SameBillingAddress = true
	}

	order, err := server.checkoutService.PlaceOrder(ctx, sessionId, form)
	if err != nil {
		if validationErrors, ok := err.(checkout.ValidationErrors); ok {
			checkoutFailuresTotal.WithLabelValues("validation").Inc()
			return c.JSON(http.StatusUnprocessableEntity, echo.Map{"errors": validationErrors})
		}

		switch err {
		case checkout.ErrorEmptyCart:
			// an empty cart is a terminal continue-shopping state, not
			// an error
			return c.JSON(http.StatusOK, echo.Map{"state": "empty_cart"})
		case checkout.ErrorCheckoutInFlight:
			checkoutFailuresTotal.WithLabelValues("inflight").Inc()
			return c.JSON(http.StatusNotAcceptable, echo.Map{"error": "checkout already in flight"})
		default:
			checkoutFailuresTotal.WithLabelValues("remote").Inc()
			applog.GLog.Logger.Error("checkout failed",
				"fn", "handleCheckout",
				"sessionId", sessionId,
				"error", err)
			return c.JSON(http.StatusBadGateway, echo.Map{"error": "checkout failed"})
		}
	}

	ordersPlacedTotal.Inc()

	orderView, mapErr := server.converter.Map(ctx, order, converter.OrderView{})
	if mapErr != nil {
		return c.JSON(http.StatusBadGateway, echo.Map{"error": "order record malformed"})
	}

	return c.JSON(http.StatusCreated, echo.Map{"order": orderView})
}

func (server Server) handleOrderConfirmation(c echo.Context) error {
	ctx := c.Request().Context()

	orderId, err := strconv.ParseUint(c.Param("orderId"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "order id malformed"})
	}

	summary, err := server.confirmationService.OrderSummary(ctx, orderId)
	if err != nil {
		if err == confirmation.ErrorOrderNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"state": "not_found", "error": "order not found"})
		}
		applog.GLog.Logger.Error("order summary failed",
			"fn", "handleOrderConfirmation",
			"oid", orderId,
			"error", err)
		return c.JSON(http.StatusBadGateway, echo.Map{"error": "order summary failed"})
	}

	orderView, mapErr := server.converter.Map(ctx, summary.Order, converter.OrderView{})
	if mapErr != nil {
		return c.JSON(http.StatusBadGateway, echo.Map{"error": "order record malformed"})
	}

	items := make([]interface{}, 0, len(summary.Items))
	for _, item := range summary.Items {
		itemView, mapErr := server.converter.Map(ctx, item, converter.OrderItemView{})
		if mapErr != nil {
			applog.GLog.Logger.Warn("order item record skipped",
				"fn", "handleOrderConfirmation",
				"error", mapErr)
			continue
		}
		items = append(items, itemView)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"order": orderView,
		"items": items,
	})
}

func (server Server) handleOrderReceipt(c echo.Context) error {
	ctx := c.Request().Context()

	orderId, err := strconv.ParseUint(c.Param("orderId"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "order id malformed"})
	}

	data, filename, err := server.confirmationService.OrderReceipt(ctx, orderId)
	if err != nil {
		if err == confirmation.ErrorOrderNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"state": "not_found", "error": "order not found"})
		}
		applog.GLog.Logger.Error("receipt render failed",
			"fn", "handleOrderReceipt",
			"oid", orderId,
			"error", err)
		return c.JSON(http.StatusBadGateway, echo.Map{"error": "receipt render failed"})
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Blob(http.StatusOK, "application/pdf", data)
}

func (server Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"status": "up"})
}

func (server Server) productViews(ctx context.Context, products []*entities.Product) []interface{} {
	views := make([]interface{}, 0, len(products))
	for _, product := range products {
		view, err := server.converter.Map(ctx, product, converter.ProductView{})
		if err != nil {
			applog.GLog.Logger.Warn("product record skipped",
				"fn", "productViews",
				"error", err)
			continue
		}
		views = append(views, view)
	}
	return views
}

func (server Server) cartItemViews(ctx context.Context, items []entities.CartItem) []interface{} {
	views := make([]interface{}, 0, len(items))
	for _, item := range items {
		view, err := server.converter.Map(ctx, item, converter.CartItemView{})
		if err != nil {
			applog.GLog.Logger.Warn("cart item skipped",
				"fn", "cartItemViews",
				"error", err)
			continue
		}
		views = append(views, view)
	}
	return views
}

func toAddress(request addressRequest) entities.AddressInfo {
	return entities.AddressInfo{
		Street:  request.Street,
		City:    request.City,
		State:   request.State,
		ZipCode: request.ZipCode,
		Country: request.Country,
	}
}
