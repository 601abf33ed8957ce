package configs

import (
	"flag"
	"os"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
	"gitlab.faza.io/go-framework/logger"
)

type Config struct {
	App struct {
		ServiceMode        string `env:"STOREFRONT_SERVICE_MODE"`
		CommissionRate     int    `env:"STOREFRONT_COMMISSION_RATE"`
		FeaturedLimit      int    `env:"STOREFRONT_FEATURED_LIMIT"`
		SimilarLimit       int    `env:"STOREFRONT_SIMILAR_LIMIT"`
		FetchTimeout       int    `env:"STOREFRONT_FETCH_TIMEOUT"`
		DocumentBrandName  string `env:"STOREFRONT_DOCUMENT_BRAND_NAME"`
		DocumentBrandColor string `env:"STOREFRONT_DOCUMENT_BRAND_COLOR"`
	}

	HTTPServer struct {
		Address string `env:"STOREFRONT_SERVER_ADDRESS"`
		Port    int    `env:"STOREFRONT_SERVER_PORT"`
	}

	Mongo struct {
		User                string `env:"STOREFRONT_MONGO_USER"`
		Pass                string `env:"STOREFRONT_MONGO_PASS"`
		Host                string `env:"STOREFRONT_MONGO_HOST"`
		Port                int    `env:"STOREFRONT_MONGO_PORT"`
		Database            string `env:"STOREFRONT_MONGO_DATABASE"`
		UserCollection      string `env:"STOREFRONT_MONGO_USER_COLLECTION"`
		ProductCollection   string `env:"STOREFRONT_MONGO_PRODUCT_COLLECTION"`
		ListingCollection   string `env:"STOREFRONT_MONGO_LISTING_COLLECTION"`
		ReviewCollection    string `env:"STOREFRONT_MONGO_REVIEW_COLLECTION"`
		OrderCollection     string `env:"STOREFRONT_MONGO_ORDER_COLLECTION"`
		OrderItemCollection string `env:"STOREFRONT_MONGO_ORDER_ITEM_COLLECTION"`
		CartCollection      string `env:"STOREFRONT_MONGO_CART_COLLECTION"`
		ConnectionTimeout   int    `env:"STOREFRONT_MONGO_CONN_TIMEOUT"`
		ReadTimeout         int    `env:"STOREFRONT_MONGO_READ_TIMEOUT"`
		WriteTimeout        int    `env:"STOREFRONT_MONGO_WRITE_TIMEOUT"`
		MaxConnIdleTime     int    `env:"STOREFRONT_MONGO_MAX_CONN_IDLE_TIME"`
		MaxPoolSize         int    `env:"STOREFRONT_MONGO_MAX_POOL_SIZE"`
		MinPoolSize         int    `env:"STOREFRONT_MONGO_MIN_POOL_SIZE"`
		WriteConcernW       string `env:"STOREFRONT_MONGO_WRITE_CONCERN_W"`
		WriteConcernJ       string `env:"STOREFRONT_MONGO_WRITE_CONCERN_J"`
		RetryWrite          bool   `env:"STOREFRONT_MONGO_RETRY_WRITE"`
	}
}

func LoadConfig(path string) (*Config, error) {
	var config = &Config{}
	currentPath, err := os.Getwd()
	if err != nil {
		logger.Err("get current working directory failed, error %s", err)
	}

	if os.Getenv("APP_ENV") == "dev" {
		if path != "" {
			err := godotenv.Load(path)
			if err != nil {
				logger.Err("Error loading testdata .env file, Working Directory: %s  path: %s, error: %s", currentPath, path, err)
			}
		} else if flag.Lookup("test.v") != nil {
			// test mode
			err := godotenv.Load("../testdata/.env")
			if err != nil {
				logger.Err("Error loading testdata .env file, error: %s", err)
			}
		} else {
			err := godotenv.Load("./.env")
			if err != nil {
				logger.Err("Error loading .env file")
			}
		}
	}

	// Get environment variables for Config
	_, err = env.UnmarshalFromEnviron(config)
	if err != nil {
		return nil, err
	}

	if config.App.CommissionRate == 0 {
		config.App.CommissionRate = 10
	}

	if config.App.FeaturedLimit == 0 {
		config.App.FeaturedLimit = 8
	}

	if config.App.SimilarLimit == 0 {
		config.App.SimilarLimit = 8
	}

	if config.App.FetchTimeout == 0 {
		config.App.FetchTimeout = 5
	}

	return config, nil
}
