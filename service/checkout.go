package service

import (
	"fmt"
	"math/rand"
	"net/http"
	"strings"
	"time"

	"github.com/companieshouse/chs.go/log"
	"github.com/plutov/paypal/v4"
	"github.com/rankworks/checkout.api/config"
	"github.com/rankworks/checkout.api/dao"
	"github.com/rankworks/checkout.api/models"
	"github.com/rankworks/checkout.api/pricing"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// priceTolerance is the maximum difference allowed between the recomputed
// order total and the client-submitted total
var priceTolerance = decimal.New(1, -2)

// CheckoutService orchestrates price verification, PayPal order handling and
// the downstream WooCommerce order commit
type CheckoutService struct {
	Engine *pricing.Engine
	PayPal *PayPalService
	Woo    *WooCommerceService
	DAO    dao.DAO
	Config config.Config
}

// CreateOrder recomputes the cart total from the trusted catalog, verifies it
// against the client-submitted total, and only then creates a PayPal order.
// No order is ever created for a mismatched total.
func (service *CheckoutService) CreateOrder(req *http.Request, incoming models.IncomingCheckoutRequest) (*models.CreateOrderResponse, ResponseType, error) {

	total, description, err := service.Engine.RecomputeOrder(incoming.Items)
	if err != nil {
		return nil, InvalidData, fmt.Errorf("error recomputing order total: [%v]", err)
	}

	responseType, err := VerifyOrderTotal(total, incoming.TotalAmount)
	if err != nil {
		return nil, responseType, err
	}

	orderNumber := generateOrderNumber()

	order, responseType, err := service.PayPal.CreateCheckoutOrder(total.StringFixed(2), orderNumber, description, incoming.CustomerInfo)
	if err != nil {
		return nil, responseType, err
	}

	log.InfoR(req, "PayPal order created for verified cart", log.Data{
		"paypal_order_id": order.ID,
		"order_number":    orderNumber,
		"amount":          total.StringFixed(2),
	})

	return &models.CreateOrderResponse{
		Success:     true,
		OrderID:     order.ID,
		OrderNumber: orderNumber,
		Amount:      total.StringFixed(2),
		Currency:    service.Config.Currency,
	}, Success, nil
}

// CaptureOrder captures an approved PayPal order and then runs the best-effort
// follow-ups: journalling the capture and creating the WooCommerce order.
// Once funds have been captured the response is a success regardless of
// follow-up outcomes - a failed WooCommerce commit is reported as a warning,
// never an error, because the money has already moved.
func (service *CheckoutService) CaptureOrder(req *http.Request, captureRequest models.CaptureOrderRequest) (*models.CaptureOrderResponse, ResponseType, error) {

	captureResponse, err := service.PayPal.CapturePayment(captureRequest.OrderID)
	if err != nil {
		return nil, Error, fmt.Errorf("error capturing paypal order [%s]: [%v]", captureRequest.OrderID, err)
	}

	captureID, amount, payerEmail := extractCaptureDetails(captureResponse)

	response := &models.CaptureOrderResponse{
		Success:             true,
		PayPalOrderID:       captureResponse.ID,
		PayPalTransactionID: captureID,
		PayPalStatus:        captureResponse.Status,
		Amount:              amount,
	}

	var eg errgroup.Group
	var wooOrderID int64
	var wooErr error

	eg.Go(func() error {
		record := &models.CaptureResourceDB{
			ID:          captureResponse.ID,
			CaptureID:   captureID,
			Amount:      amount,
			Currency:    service.Config.Currency,
			Status:      captureResponse.Status,
			PayerEmail:  payerEmail,
			CompletedAt: time.Now(),
		}
		if captureRequest.OrderData != nil {
			record.OrderNumber = captureRequest.OrderData.OrderNumber
		}
		if journalErr := service.DAO.CreateCaptureResource(record); journalErr != nil {
			log.ErrorR(req, fmt.Errorf("error journalling capture [%s]: [%v]", captureID, journalErr))
		}
		return nil
	})

	if captureRequest.OrderData == nil {
		wooErr = fmt.Errorf("no order data supplied with capture request")
	} else {
		orderData := captureRequest.OrderData
		eg.Go(func() error {
			items, itemsErr := service.wooLineItems(orderData.Items)
			if itemsErr != nil {
				wooErr = itemsErr
				return nil
			}
			id, _, createErr := service.Woo.CreateOrder(captureID, amount, orderData.CustomerInfo, items)
			if createErr != nil {
				wooErr = createErr
				return nil
			}
			wooOrderID = id
			return nil
		})
	}

	// both follow-ups are best-effort so the group never returns an error
	_ = eg.Wait()

	if wooErr != nil {
		log.ErrorR(req, fmt.Errorf("payment [%s] captured but WooCommerce order not created: [%v]", captureID, wooErr))
		response.Warning = "payment captured but the order could not be created in WooCommerce"
	} else {
		response.WooCommerceOrderID = wooOrderID
		response.Message = "payment captured and order created"
		if storeErr := service.DAO.StoreWooCommerceOrderID(captureResponse.ID, wooOrderID); storeErr != nil {
			log.ErrorR(req, fmt.Errorf("error recording WooCommerce order [%d] against capture [%s]: [%v]", wooOrderID, captureID, storeErr))
		}
	}

	return response, Success, nil
}

// GetOrderStatus fetches the current provider-side status of an order,
// annotated with the capture journal record when one exists
func (service *CheckoutService) GetOrderStatus(orderID string) (*models.OrderStatusResponse, ResponseType, error) {
	order, responseType, err := service.PayPal.GetOrderDetails(orderID)
	if err != nil {
		return nil, responseType, err
	}

	statusResponse := &models.OrderStatusResponse{
		OrderID: order.ID,
		Status:  order.Status,
	}

	record, err := service.DAO.GetCaptureResource(orderID)
	if err != nil {
		// the provider status alone is still a useful answer
		log.Error(fmt.Errorf("error reading capture journal for order [%s]: [%v]", orderID, err))
	} else if record != nil {
		statusResponse.PayPalTransactionID = record.CaptureID
		statusResponse.Amount = record.Amount
		statusResponse.WooCommerceOrderID = record.WooCommerceOrderID
	}

	return statusResponse, Success, nil
}

// VerifyOrderTotal compares the recomputed total against the client-submitted
// total. A difference of up to one cent is accepted to absorb client-side
// float rounding; anything beyond that rejects the order as tampered.
func VerifyOrderTotal(recomputed decimal.Decimal, submitted string) (ResponseType, error) {
	clientTotal, err := decimal.NewFromString(strings.TrimSpace(submitted))
	if err != nil {
		return InvalidData, fmt.Errorf("submitted total [%s] is not a valid amount", submitted)
	}

	if recomputed.Sub(clientTotal).Abs().GreaterThan(priceTolerance) {
		return PriceMismatch, fmt.Errorf("submitted total [%s] does not match recomputed total [%s]", clientTotal.StringFixed(2), recomputed.StringFixed(2))
	}

	return Success, nil
}

// extractCaptureDetails pulls the durable references out of a capture
// response. The nesting is index-based on the provider side and any level may
// be absent, so missing levels resolve to empty fields rather than a crash.
func extractCaptureDetails(captureResponse *paypal.CaptureOrderResponse) (captureID, amount, payerEmail string) {
	if captureResponse.Payer != nil {
		payerEmail = captureResponse.Payer.EmailAddress
	}

	if len(captureResponse.PurchaseUnits) == 0 {
		return
	}
	payments := captureResponse.PurchaseUnits[0].Payments
	if payments == nil || len(payments.Captures) == 0 {
		return
	}

	capture := payments.Captures[0]
	captureID = capture.ID
	if capture.Amount != nil {
		amount = capture.Amount.Value
	}
	return
}

func (service *CheckoutService) wooLineItems(items []models.LineItem) ([]models.WooOrderLineItem, error) {
	wooItems := make([]models.WooOrderLineItem, 0, len(items))
	for _, item := range items {
		lineTotal, _, err := service.Engine.RecomputeOrder([]models.LineItem{item})
		if err != nil {
			return nil, err
		}
		product, ok := service.Engine.Product(item.ProductID)
		if !ok {
			return nil, fmt.Errorf("product [%s] not found in catalog", item.ProductID)
		}
		wooItems = append(wooItems, models.WooOrderLineItem{
			Name:     product.Name,
			Quantity: item.OrderQuantity,
			Total:    lineTotal.StringFixed(2),
		})
	}
	return wooItems, nil
}

func generateOrderNumber() string {
	return fmt.Sprintf("RW-%d%04d", time.Now().Unix(), rand.Intn(10000))
}
