package app

import (
	"time"

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
	document_service "github.com/May-nib/sellarmy/infrastructure/services/document"
	"github.com/pkg/errors"
	"gitlab.faza.io/go-framework/logger"
	"gitlab.faza.io/go-framework/mongoadapter"
	"go.uber.org/zap"
)

type CtxKey int

const (
	CtxSessionId CtxKey = iota
)

var Globals struct {
	MongoDriver         *mongoadapter.Mongo
	Config              *configs.Config
	ZapLogger           *zap.Logger
	Logger              logger.Logger
	UserRepository      user_repository.IUserRepository
	ProductRepository   product_repository.IProductRepository
	ListingRepository   listing_repository.IListingRepository
	ReviewRepository    review_repository.IReviewRepository
	OrderRepository     order_repository.IOrderRepository
	OrderItemRepository orderitem_repository.IOrderItemRepository
	CartRepository      cart_repository.ICartRepository
	CartStore           *cart.Store
	CheckoutService     checkout.ICheckoutService
	CatalogService      catalog.ICatalogService
	ConfirmationService confirmation.IConfirmationService
	DocumentService     document_service.IDocumentService
	Converter           converter.IConverter
}

func SetupMongoDriver(config configs.Config) (*mongoadapter.Mongo, error) {
	// store in mongo
	mongoConf := &mongoadapter.MongoConfig{
		Host:            config.Mongo.Host,
		Port:            config.Mongo.Port,
		Username:        config.Mongo.User,
		ConnTimeout:     time.Duration(config.Mongo.ConnectionTimeout) * time.Second,
		ReadTimeout:     time.Duration(config.Mongo.ReadTimeout) * time.Second,
		WriteTimeout:    time.Duration(config.Mongo.WriteTimeout) * time.Second,
		MaxConnIdleTime: time.Duration(config.Mongo.MaxConnIdleTime) * time.Second,
		MaxPoolSize:     uint64(config.Mongo.MaxPoolSize),
		MinPoolSize:     uint64(config.Mongo.MinPoolSize),
		WriteConcernW:   config.Mongo.WriteConcernW,
		WriteConcernJ:   config.Mongo.WriteConcernJ,
		RetryWrites:     config.Mongo.RetryWrite,
	}

	mongoDriver, err := mongoadapter.NewMongo(mongoConf)
	if err != nil {
		Globals.Logger.Error("mongoadapter.NewMongo failed",
			"fn", "SetupMongoDriver",
			"Mongo", err)
		return nil, errors.Wrap(err, "mongoadapter.NewMongo init failed")
	}

	_, err = mongoDriver.AddUniqueIndex(config.Mongo.Database, config.Mongo.OrderCollection, "orderNumber")
	if err != nil {
		Globals.Logger.Error("create orderNumber index failed",
			"fn", "SetupMongoDriver",
			"error", err)
		return nil, err
	}

	_, err = mongoDriver.AddTextV3Index(config.Mongo.Database, config.Mongo.OrderCollection, "createdAt")
	if err != nil {
		Globals.Logger.Error("create createdAt index failed",
			"fn", "SetupMongoDriver",
			"error", err)
		return nil, err
	}

	_, err = mongoDriver.AddTextV3Index(config.Mongo.Database, config.Mongo.OrderItemCollection, "orderId")
	if err != nil {
		Globals.Logger.Error("create orderId index failed",
			"fn", "SetupMongoDriver",
			"error", err)
		return nil, err
	}

	_, err = mongoDriver.AddTextV3Index(config.Mongo.Database, config.Mongo.CartCollection, "sessionId")
	if err != nil {
		Globals.Logger.Error("create sessionId index failed",
			"fn", "SetupMongoDriver",
			"error", err)
		return nil, err
	}

	_, err = mongoDriver.AddTextV3Index(config.Mongo.Database, config.Mongo.UserCollection, "fullName")
	if err != nil {
		Globals.Logger.Error("create fullName index failed",
			"fn", "SetupMongoDriver",
			"error", err)
		return nil, err
	}

	_, err = mongoDriver.AddTextV3Index(config.Mongo.Database, config.Mongo.ProductCollection, "category")
	if err != nil {
		Globals.Logger.Error("create category index failed",
			"fn", "SetupMongoDriver",
			"error", err)
		return nil, err
	}

	_, err = mongoDriver.AddTextV3Index(config.Mongo.Database, config.Mongo.ListingCollection, "resellerId")
	if err != nil {
		Globals.Logger.Error("create resellerId index failed",
			"fn", "SetupMongoDriver",
			"error", err)
		return nil, err
	}

	_, err = mongoDriver.AddTextV3Index(config.Mongo.Database, config.Mongo.ReviewCollection, "productId")
	if err != nil {
		Globals.Logger.Error("create productId index failed",
			"fn", "SetupMongoDriver",
			"error", err)
		return nil, err
	}

	return mongoDriver, nil
}

func InitZap() (zapLogger *zap.Logger) {
	conf := zap.NewProductionConfig()
	conf.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	conf.DisableCaller = true
	conf.DisableStacktrace = true
	zapLogger, e := conf.Build(zap.AddCaller(), zap.AddCallerSkip(1))
	if e != nil {
		panic(e)
	}
	return
}
