// Package config defines the environment variable and command-line flags
// supported by this service and includes default values for particular
// fields.
package config

import (
	"sync"

	"github.com/companieshouse/gofigure"
)

var cfg *Config
var mtx sync.Mutex

// Config defines the configuration options for this service.
type Config struct {
	BindAddr          string   `env:"BIND_ADDR"                   flag:"bind-addr"                   flagDesc:"Bind address"`
	CatalogPath       string   `env:"CATALOG_PATH"                flag:"catalog-path"                flagDesc:"Path to the trusted product catalog JSON file"`
	Currency          string   `env:"CHECKOUT_CURRENCY"           flag:"checkout-currency"           flagDesc:"ISO currency code used for all checkout orders"`
	Collection        string   `env:"MONGODB_COLLECTION"          flag:"mongodb-collection"          flagDesc:"MongoDB collection for captured payment records"`
	EventsCollection  string   `env:"MONGODB_EVENTS_COLLECTION"   flag:"mongodb-events-collection"   flagDesc:"MongoDB collection for processed webhook events"`
	Database          string   `env:"MONGODB_DATABASE"            flag:"mongodb-database"            flagDesc:"MongoDB database for data"`
	MongoDBURL        string   `env:"MONGODB_URL"                 flag:"mongodb-url"                 flagDesc:"MongoDB server URL"`
	PayPalClientID    string   `env:"PAYPAL_CLIENT_ID"            flag:"paypal-client-id"            flagDesc:"Client ID used to authenticate API calls with PayPal"`
	PayPalSecret      string   `env:"PAYPAL_SECRET"               flag:"paypal-secret"               flagDesc:"Secret used to authenticate API calls with PayPal"`
	PayPalEnv         string   `env:"PAYPAL_ENV"                  flag:"paypal-env"                  flagDesc:"PayPal environment to target - live or test"`
	PayPalWebhookID   string   `env:"PAYPAL_WEBHOOK_ID"           flag:"paypal-webhook-id"           flagDesc:"Webhook ID used to verify inbound PayPal event signatures"`
	WooCommerceAPIURL string   `env:"WOOCOMMERCE_API_URL"         flag:"woocommerce-api-url"         flagDesc:"Base URL of the WooCommerce REST API"`
	WooConsumerKey    string   `env:"WOOCOMMERCE_CONSUMER_KEY"    flag:"woocommerce-consumer-key"    flagDesc:"Consumer key used to authenticate API calls with WooCommerce"`
	WooConsumerSecret string   `env:"WOOCOMMERCE_CONSUMER_SECRET" flag:"woocommerce-consumer-secret" flagDesc:"Consumer secret used to authenticate API calls with WooCommerce"`
	WordPressURL      string   `env:"WORDPRESS_URL"               flag:"wordpress-url"               flagDesc:"Base URL of the WordPress site for login and password reset"`
	BrokerAddr        []string `env:"KAFKA_BROKER_ADDR"           flag:"broker-addr"                 flagDesc:"Kafka broker address"`
	SchemaRegistryURL string   `env:"SCHEMA_REGISTRY_URL"         flag:"schema-registry-url"         flagDesc:"Schema registry url"`
}

// DefaultConfig returns a pointer to a Config instance that has been populated
// with default values.
func DefaultConfig() *Config {
	return &Config{
		CatalogPath:      "assets/catalog.json",
		Currency:         "USD",
		Database:         "checkout",
		Collection:       "payments",
		EventsCollection: "webhook_events",
		PayPalEnv:        "test",
	}
}

// Get returns a pointer to a Config instance that has been populated with
// values provided by the environment or command-line flags, or with default
// values if none are provided.
func Get() (*Config, error) {
	mtx.Lock()
	defer mtx.Unlock()

	if cfg != nil {
		return cfg, nil
	}

	cfg = DefaultConfig()

	err := gofigure.Gofigure(cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
