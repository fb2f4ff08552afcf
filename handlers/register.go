package handlers

import (
	"net/http"
	"os"

	"github.com/companieshouse/chs.go/log"
	"github.com/gorilla/mux"
	"github.com/rankworks/checkout.api/config"
	"github.com/rankworks/checkout.api/dao"
	"github.com/rankworks/checkout.api/pricing"
	"github.com/rankworks/checkout.api/service"
)

var checkoutService *service.CheckoutService

// Register defines the route mappings for the main router and its subrouters
func Register(mainRouter *mux.Router, cfg config.Config) {
	engine, err := pricing.NewEngine(cfg.CatalogPath)
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}

	m := dao.NewMongoService(cfg.MongoDBURL, cfg.Database, cfg.Collection, cfg.EventsCollection)

	checkoutService = &service.CheckoutService{
		Engine: engine,
		PayPal: &service.PayPalService{Config: cfg},
		Woo:    service.NewWooCommerceService(cfg),
		DAO:    m,
		Config: cfg,
	}

	mainRouter.HandleFunc("/healthcheck", healthCheck).Methods("GET").Name("get-healthcheck")

	// checkout endpoints and the webhook share a subrouter; the webhook
	// authenticates by provider signature inside its handler rather than by
	// middleware
	checkoutRouter := mainRouter.PathPrefix("/checkout").Subrouter()
	checkoutRouter.HandleFunc("/orders", HandleCreateOrder).Methods("POST").Name("create-order")
	checkoutRouter.HandleFunc("/orders/capture", HandleCaptureOrder).Methods("POST").Name("capture-order")
	checkoutRouter.HandleFunc("/orders/{order_id}", HandleGetOrderStatus).Methods("GET").Name("get-order")
	checkoutRouter.HandleFunc("/webhook", HandlePayPalWebhook).Methods("POST").Name("paypal-webhook")

	accountRouter := mainRouter.PathPrefix("/account").Subrouter()
	accountRouter.HandleFunc("/login", HandleLogin).Methods("POST").Name("login")
	accountRouter.HandleFunc("/password-reset", HandlePasswordReset).Methods("POST").Name("password-reset")

	couponRouter := mainRouter.PathPrefix("/coupons").Subrouter()
	couponRouter.HandleFunc("/validate", HandleValidateCoupon).Methods("POST").Name("validate-coupon")

	// Set middleware for subrouters
	checkoutRouter.Use(log.Handler)
	accountRouter.Use(log.Handler)
	couponRouter.Use(log.Handler)
}

func healthCheck(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}
