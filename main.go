package main

import (
	"os"
	"time"

	"github.com/May-nib/sellarmy/app"
	"github.com/May-nib/sellarmy/configs"
	"github.com/May-nib/sellarmy/domain/cart"
	"github.com/May-nib/sellarmy/domain/catalog"
	"github.com/May-nib/sellarmy/domain/checkout"
	"github.com/May-nib/sellarmy/domain/confirmation"
	"github.com/May-nib/sellarmy/domain/converter"
	cart_repository "github.com/May-nib/sellarmy/domain/models/repository/cart"
	listing_repository "github.com/May-nib/sellarmy/domain/models/repository/listing"
	order_repository "github.com/May-nib/sellarmy/domain/models/repository/order"
	orderitem_repository "github.com/May-nib/sellarmy/domain/models/repository/orderitem"
	product_repository "github.com/May-nib/sellarmy/domain/models/repository/product"
	review_repository "github.com/May-nib/sellarmy/domain/models/repository/review"
	user_repository "github.com/May-nib/sellarmy/domain/models/repository/user"
	applog "github.com/May-nib/sellarmy/infrastructure/logger"
	document_service "github.com/May-nib/sellarmy/infrastructure/services/document"
	http_server "github.com/May-nib/sellarmy/server/http"
	"gitlab.faza.io/go-framework/logger"
)

var MainApp struct {
	httpServer http_server.Server
}

func main() {
	var err error
	if os.Getenv("APP_ENV") == "dev" {
		app.Globals.Config, err = configs.LoadConfig("./testdata/.env")
	} else {
		app.Globals.Config, err = configs.LoadConfig("")
	}
	if err != nil {
		logger.Err("LoadConfig of main init failed, error: %s ", err.Error())
		os.Exit(1)
	}

	app.Globals.ZapLogger = app.InitZap()
	app.Globals.Logger = logger.NewZapLogger(app.Globals.ZapLogger)
	applog.GLog.ZapLogger = app.Globals.ZapLogger
	applog.GLog.Logger = app.Globals.Logger

	mongoDriver, err := app.SetupMongoDriver(*app.Globals.Config)
	if err != nil {
		logger.Err("main SetupMongoDriver failed, configs: %v, error: %s ", app.Globals.Config.Mongo, err.Error())
		os.Exit(1)
	}
	app.Globals.MongoDriver = mongoDriver

	app.Globals.UserRepository = user_repository.NewUserRepository(mongoDriver)
	app.Globals.ProductRepository = product_repository.NewProductRepository(mongoDriver)
	app.Globals.ListingRepository = listing_repository.NewListingRepository(mongoDriver)
	app.Globals.ReviewRepository = review_repository.NewReviewRepository(mongoDriver)
	app.Globals.OrderRepository, err = order_repository.NewOrderRepository(mongoDriver)
	if err != nil {
		logger.Err("order repository creation failed, error: %s ", err.Error())
		os.Exit(1)
	}
	app.Globals.OrderItemRepository = orderitem_repository.NewOrderItemRepository(mongoDriver)
	app.Globals.CartRepository = cart_repository.NewCartRepository(mongoDriver)

	if app.Globals.Config.App.ServiceMode == "dev" {
		app.Globals.CartStore = cart.NewStore(cart.NewMemoryBackend())
	} else {
		app.Globals.CartStore = cart.NewStore(cart.NewMongoBackend(app.Globals.CartRepository))
	}

	app.Globals.Converter = converter.NewConverter()
	app.Globals.DocumentService = document_service.NewDocumentService(
		app.Globals.Config.App.DocumentBrandName,
		app.Globals.Config.App.DocumentBrandColor)

	fetchTimeout := time.Duration(app.Globals.Config.App.FetchTimeout) * time.Second

	app.Globals.CheckoutService = checkout.NewCheckoutService(
		app.Globals.CartStore,
		app.Globals.ProductRepository,
		app.Globals.ListingRepository,
		app.Globals.OrderRepository,
		app.Globals.OrderItemRepository,
		app.Globals.Config.App.CommissionRate,
		fetchTimeout)

	app.Globals.CatalogService = catalog.NewCatalogService(
		app.Globals.UserRepository,
		app.Globals.ProductRepository,
		app.Globals.ListingRepository,
		app.Globals.ReviewRepository,
		app.Globals.Config.App.FeaturedLimit,
		app.Globals.Config.App.SimilarLimit,
		fetchTimeout)

	app.Globals.ConfirmationService = confirmation.NewConfirmationService(
		app.Globals.OrderRepository,
		app.Globals.OrderItemRepository,
		app.Globals.DocumentService)

	MainApp.httpServer = http_server.NewServer(
		app.Globals.Config.HTTPServer.Address,
		uint16(app.Globals.Config.HTTPServer.Port),
		app.Globals.CartStore,
		app.Globals.CheckoutService,
		app.Globals.CatalogService,
		app.Globals.ConfirmationService,
		app.Globals.Converter)

	if err := MainApp.httpServer.Start(); err != nil {
		logger.Err("http server stopped, error: %s ", err.Error())
		os.Exit(1)
	}
}
