package service

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/companieshouse/chs.go/log"
	"github.com/plutov/paypal/v4"
	"github.com/rankworks/checkout.api/config"
	"github.com/rankworks/checkout.api/models"
)

// paypalCallTimeout bounds every outbound PayPal call. The upstream default is
// no deadline at all, which stalls captures indefinitely on a hung connection.
const paypalCallTimeout = 10 * time.Second

var (
	client    *paypal.Client
	clientMtx sync.Mutex
)

// GetPayPalClient returns a client for the PayPal environment named in config,
// authenticating with the configured credentials. Concurrent first callers
// serialize on the lock so only one client is ever constructed and only one
// token fetch is made.
func GetPayPalClient(cfg config.Config) (*paypal.Client, error) {
	clientMtx.Lock()
	defer clientMtx.Unlock()

	if client != nil {
		return client, nil
	}

	paypalAPIBase := getPayPalAPIBase(cfg.PayPalEnv)
	if paypalAPIBase == "" {
		return nil, fmt.Errorf("invalid paypal env in config: %s", cfg.PayPalEnv)
	}

	c, err := paypal.NewClient(cfg.PayPalClientID, cfg.PayPalSecret, paypalAPIBase)
	if err != nil {
		return nil, fmt.Errorf("error creating paypal client: [%v]", err)
	}
	_, err = c.GetAccessToken(context.Background())
	if err != nil {
		return nil, fmt.Errorf("error getting access token: [%v]", err)
	}
	client = c
	return client, nil
}

// PayPalSDK is an interface for all the PayPal client methods that will be
// used in this service
type PayPalSDK interface {
	GetAccessToken(ctx context.Context) (*paypal.TokenResponse, error)
	CreateOrder(ctx context.Context, intent string, purchaseUnits []paypal.PurchaseUnitRequest, payer *paypal.CreateOrderPayer, appContext *paypal.ApplicationContext) (*paypal.Order, error)
	GetOrder(ctx context.Context, orderID string) (*paypal.Order, error)
	CaptureOrder(ctx context.Context, orderID string, captureOrderRequest paypal.CaptureOrderRequest) (*paypal.CaptureOrderResponse, error)
	VerifyWebhookSignature(ctx context.Context, httpReq *http.Request, webhookID string) (*paypal.VerifyWebhookResponse, error)
}

// PayPalService wraps the PayPal SDK for the checkout flows
type PayPalService struct {
	Client PayPalSDK
	Config config.Config

	mtx sync.Mutex
}

// sdk returns the injected client, creating the real one on first use so that
// construction failures surface as call failures rather than at startup. The
// lock serializes concurrent first requests racing to initialize Client.
func (pp *PayPalService) sdk() (PayPalSDK, error) {
	pp.mtx.Lock()
	defer pp.mtx.Unlock()

	if pp.Client != nil {
		return pp.Client, nil
	}
	c, err := GetPayPalClient(pp.Config)
	if err != nil {
		return nil, err
	}
	pp.Client = c
	return pp.Client, nil
}

// CreateCheckoutOrder creates a PayPal order for a verified cart total. The
// item breakdown mirrors the order amount exactly - the cart is sent as a
// single consolidated line item so the breakdown sum can never drift from the
// purchase unit amount, which PayPal rejects.
func (pp *PayPalService) CreateCheckoutOrder(amount string, orderNumber string, description string, customer models.CustomerInfo) (*paypal.Order, ResponseType, error) {
	sdk, err := pp.sdk()
	if err != nil {
		return nil, Error, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), paypalCallTimeout)
	defer cancel()

	var payer *paypal.CreateOrderPayer
	if customer.Email != "" {
		payer = &paypal.CreateOrderPayer{
			EmailAddress: customer.Email,
		}
	}

	order, err := sdk.CreateOrder(
		ctx,
		paypal.OrderIntentCapture,
		[]paypal.PurchaseUnitRequest{
			{
				ReferenceID: orderNumber,
				Description: description,
				Amount: &paypal.PurchaseUnitAmount{
					Value:    amount,
					Currency: pp.Config.Currency,
					Breakdown: &paypal.PurchaseUnitAmountBreakdown{
						ItemTotal: &paypal.Money{
							Value:    amount,
							Currency: pp.Config.Currency,
						},
					},
				},
				Items: []paypal.Item{
					{
						Name:     description,
						Quantity: "1",
						UnitAmount: &paypal.Money{
							Value:    amount,
							Currency: pp.Config.Currency,
						},
					},
				},
			},
		},
		payer,
		&paypal.ApplicationContext{
			UserAction: paypal.UserActionPayNow,
		},
	)
	if err != nil {
		return nil, Error, fmt.Errorf("error creating order: [%v]", err)
	}

	if order.Status != paypal.OrderStatusCreated {
		log.Debug(fmt.Sprintf("paypal order response status: %s", order.Status))
		return nil, Error, fmt.Errorf("failed to correctly create paypal order - status is not CREATED")
	}

	return order, Success, nil
}

// CapturePayment captures the payment in PayPal
func (pp *PayPalService) CapturePayment(orderID string) (*paypal.CaptureOrderResponse, error) {
	sdk, err := pp.sdk()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), paypalCallTimeout)
	defer cancel()

	res, err := sdk.CaptureOrder(
		ctx,
		orderID,
		paypal.CaptureOrderRequest{},
	)
	return res, err
}

// GetOrderDetails gets the details of a PayPal order for status
// reconciliation
func (pp *PayPalService) GetOrderDetails(orderID string) (*paypal.Order, ResponseType, error) {
	sdk, err := pp.sdk()
	if err != nil {
		return nil, Error, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), paypalCallTimeout)
	defer cancel()

	res, err := sdk.GetOrder(ctx, orderID)
	if err != nil {
		return nil, Error, fmt.Errorf("error checking order status with PayPal: [%w]", err)
	}

	return res, Success, nil
}

// VerifyWebhook verifies the signature headers of an inbound webhook request
// against the configured webhook id. A failed verification is a normal false
// outcome, not an error, so callers can reject the event without treating it
// as an internal failure.
func (pp *PayPalService) VerifyWebhook(req *http.Request) (bool, error) {
	sdk, err := pp.sdk()
	if err != nil {
		return false, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), paypalCallTimeout)
	defer cancel()

	res, err := sdk.VerifyWebhookSignature(ctx, req, pp.Config.PayPalWebhookID)
	if err != nil {
		return false, fmt.Errorf("error verifying webhook signature: [%v]", err)
	}

	return res.VerificationStatus == "SUCCESS", nil
}

func getPayPalAPIBase(env string) string {
	switch env {
	case "live":
		return paypal.APIBaseLive
	case "test":
		return paypal.APIBaseSandBox
	default:
		return ""
	}
}
