package http_server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/May-nib/sellarmy/domain/cart"
	"github.com/May-nib/sellarmy/domain/catalog"
	"github.com/May-nib/sellarmy/domain/checkout"
	"github.com/May-nib/sellarmy/domain/confirmation"
	"github.com/May-nib/sellarmy/domain/converter"
	"github.com/May-nib/sellarmy/domain/models/entities"
	applog "github.com/May-nib/sellarmy/infrastructure/logger"
	"github.com/labstack/echo/v4"
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

type fakeCheckoutService struct {
	order *entities.Order
	err   error
}

func (service *fakeCheckoutService) LoadCartItems(ctx context.Context, sessionId string) ([]entities.CartItem, bool, error) {
	return nil, false, nil
}

func (service *fakeCheckoutService) EnrichItems(ctx context.Context, items []entities.CartItem) []entities.CartItem {
	return items
}

func (service *fakeCheckoutService) PlaceOrder(ctx context.Context, sessionId string, form checkout.CheckoutForm) (*entities.Order, error) {
	if service.err != nil {
		return nil, service.err
	}
	return service.order, nil
}

type fakeCatalogService struct {
	store *catalog.StoreView
	err   error
}

func (service *fakeCatalogService) StoreBySlug(ctx context.Context, slug string) (*catalog.StoreView, error) {
	if service.err != nil {
		return nil, service.err
	}
	return service.store, nil
}

func (service *fakeCatalogService) ProductDetail(ctx context.Context, productId uint64) (*catalog.ProductDetailView, error) {
	return &catalog.ProductDetailView{Product: catalog.PlaceholderProduct(), Placeholder: true}, nil
}

func (service *fakeCatalogService) FeaturedProducts(ctx context.Context) []*entities.Product {
	return nil
}

type fakeConfirmationService struct {
	summary *confirmation.OrderSummary
	err     error
}

func (service *fakeConfirmationService) OrderSummary(ctx context.Context, orderId uint64) (*confirmation.OrderSummary, error) {
	if service.err != nil {
		return nil, service.err
	}
	return service.summary, nil
}

func (service *fakeConfirmationService) OrderReceipt(ctx context.Context, orderId uint64) ([]byte, string, error) {
	if service.err != nil {
		return nil, "", service.err
	}
	return []byte("%PDF"), "order-ORD-x.pdf", nil
}

func newTestServer(checkoutService checkout.ICheckoutService,
	catalogService catalog.ICatalogService,
	confirmationService confirmation.IConfirmationService) Server {
	return NewServer("127.0.0.1", 0,
		cart.NewStore(cart.NewMemoryBackend()),
		checkoutService, catalogService, confirmationService,
		converter.NewConverter())
}

func jsonRequest(method, target, body string) *http.Request {
	request := httptest.NewRequest(method, target, strings.NewReader(body))
	request.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return request
}

func decodeBody(t *testing.T, recorder *httptest.ResponseRecorder) map[string]interface{} {
	var body map[string]interface{}
	require.Nil(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return body
}

func TestHandleCheckoutValidationErrors(t *testing.T) {
	server := newTestServer(&fakeCheckoutService{
		err: checkout.ValidationErrors{"customer_name": "customer name is required"},
	}, &fakeCatalogService{}, &fakeConfirmationService{})

	recorder := httptest.NewRecorder()
	c := server.echoServer.NewContext(jsonRequest(http.MethodPost, "/checkout", `{}`), recorder)

	require.Nil(t, server.handleCheckout(c))
	require.Equal(t, http.StatusUnprocessableEntity, recorder.Code)

	body := decodeBody(t, recorder)
	require.Contains(t, body, "errors")
	fields := body["errors"].(map[string]interface{})
	assert.Contains(t, fields, "customer_name")
}

func TestHandleCheckoutEmptyCartIsAState(t *testing.T) {
	server := newTestServer(&fakeCheckoutService{err: checkout.ErrorEmptyCart},
		&fakeCatalogService{}, &fakeConfirmationService{})

	recorder := httptest.NewRecorder()
	c := server.echoServer.NewContext(jsonRequest(http.MethodPost, "/checkout", `{}`), recorder)

	require.Nil(t, server.handleCheckout(c))
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "empty_cart", decodeBody(t, recorder)["state"])
}

func TestHandleCheckoutInFlight(t *testing.T) {
	server := newTestServer(&fakeCheckoutService{err: checkout.ErrorCheckoutInFlight},
		&fakeCatalogService{}, &fakeConfirmationService{})

	recorder := httptest.NewRecorder()
	c := server.echoServer.NewContext(jsonRequest(http.MethodPost, "/checkout", `{}`), recorder)

	require.Nil(t, server.handleCheckout(c))
	require.Equal(t, http.StatusNotAcceptable, recorder.Code)
}

func TestHandleCheckoutRemoteFailure(t *testing.T) {
	server := newTestServer(&fakeCheckoutService{err: errors.New("order insert failed")},
		&fakeCatalogService{}, &fakeConfirmationService{})

	recorder := httptest.NewRecorder()
	c := server.echoServer.NewContext(jsonRequest(http.MethodPost, "/checkout", `{}`), recorder)

	require.Nil(t, server.handleCheckout(c))
	require.Equal(t, http.StatusBadGateway, recorder.Code)
}

func TestHandleCheckoutSuccess(t *testing.T) {
	server := newTestServer(&fakeCheckoutService{order: &entities.Order{
		OrderId:       77,
		OrderNumber:   "ORD-m1abc-7f",
		CustomerName:  "Hanna Tesfaye",
		TotalAmount:   55.50,
		Status:        entities.PendingStatus,
		PaymentStatus: entities.PendingStatus,
		CreatedAt:     time.Now().UTC(),
	}}, &fakeCatalogService{}, &fakeConfirmationService{})

	recorder := httptest.NewRecorder()
	c := server.echoServer.NewContext(jsonRequest(http.MethodPost, "/checkout", `{"customer_name":"Hanna Tesfaye"}`), recorder)

	require.Nil(t, server.handleCheckout(c))
	require.Equal(t, http.StatusCreated, recorder.Code)

	body := decodeBody(t, recorder)
	require.Contains(t, body, "order")
	order := body["order"].(map[string]interface{})
	assert.Equal(t, "ORD-m1abc-7f", order["order_number"])
}

func TestHandleStoreNotFound(t *testing.T) {
	server := newTestServer(&fakeCheckoutService{},
		&fakeCatalogService{err: catalog.ErrorStoreNotFound}, &fakeConfirmationService{})

	recorder := httptest.NewRecorder()
	c := server.echoServer.NewContext(httptest.NewRequest(http.MethodGet, "/store/ghost-store", nil), recorder)
	c.SetParamNames("slug")
	c.SetParamValues("ghost-store")

	require.Nil(t, server.handleStore(c))
	require.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Equal(t, "not_found", decodeBody(t, recorder)["state"])
}

func TestHandleStoreBlankSlug(t *testing.T) {
	server := newTestServer(&fakeCheckoutService{},
		&fakeCatalogService{err: catalog.ErrorBlankSlug}, &fakeConfirmationService{})

	recorder := httptest.NewRecorder()
	c := server.echoServer.NewContext(httptest.NewRequest(http.MethodGet, "/store/", nil), recorder)

	require.Nil(t, server.handleStore(c))
	require.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
}

func TestHandleOrderConfirmationNotFound(t *testing.T) {
	server := newTestServer(&fakeCheckoutService{}, &fakeCatalogService{},
		&fakeConfirmationService{err: confirmation.ErrorOrderNotFound})

	recorder := httptest.NewRecorder()
	c := server.echoServer.NewContext(httptest.NewRequest(http.MethodGet, "/order-confirmation/404", nil), recorder)
	c.SetParamNames("orderId")
	c.SetParamValues("404")

	require.Nil(t, server.handleOrderConfirmation(c))
	require.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Equal(t, "not_found", decodeBody(t, recorder)["state"])
}
