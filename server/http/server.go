package http_server

import (
	"context"
	"fmt"

	"github.com/May-nib/sellarmy/domain/cart"
	"github.com/May-nib/sellarmy/domain/catalog"
	"github.com/May-nib/sellarmy/domain/checkout"
	"github.com/May-nib/sellarmy/domain/confirmation"
	"github.com/May-nib/sellarmy/domain/converter"
	applog "github.com/May-nib/sellarmy/infrastructure/logger"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Server struct {
	echoServer          *echo.Echo
	address             string
	port                uint16
	cartStore           *cart.Store
	checkoutService     checkout.ICheckoutService
	catalogService      catalog.ICatalogService
	confirmationService confirmation.IConfirmationService
	converter           converter.IConverter
}

func NewServer(address string, port uint16,
	cartStore *cart.Store,
	checkoutService checkout.ICheckoutService,
	catalogService catalog.ICatalogService,
	confirmationService confirmation.IConfirmationService,
	converter converter.IConverter) Server {

	server := Server{
		echoServer:          echo.New(),
		address:             address,
		port:                port,
		cartStore:           cartStore,
		checkoutService:     checkoutService,
		catalogService:      catalogService,
		confirmationService: confirmationService,
		converter:           converter,
	}

	server.echoServer.HideBanner = true
	server.echoServer.Use(middleware.Recover())
	server.echoServer.Use(requestMetrics())

	server.registerRoutes()
	return server
}

func (server Server) registerRoutes() {
	server.echoServer.GET("/", server.handleHome)
	server.echoServer.GET("/store/:slug", server.handleStore)
	server.echoServer.GET("/product/:id", server.handleProductDetail)

	server.echoServer.GET("/cart", server.handleGetCart)
	server.echoServer.POST("/cart/items", server.handleAddToCart)
	server.echoServer.POST("/cart/buy-now", server.handleBuyNow)

	server.echoServer.POST("/checkout", server.handleCheckout)
	server.echoServer.GET("/order-confirmation/:orderId", server.handleOrderConfirmation)
	server.echoServer.GET("/order-confirmation/:orderId/pdf", server.handleOrderReceipt)

	server.echoServer.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	server.echoServer.GET("/health", server.handleHealth)
}

func (server Server) Start() error {
	listenAddress := fmt.Sprintf("%s:%d", server.address, server.port)
	applog.GLog.Logger.Info("http server listening",
		"fn", "Start",
		"address", listenAddress)
	return server.echoServer.Start(listenAddress)
}

func (server Server) Shutdown(ctx context.Context) error {
	return server.echoServer.Shutdown(ctx)
}
