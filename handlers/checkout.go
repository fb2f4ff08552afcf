package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/companieshouse/chs.go/log"
	"github.com/gorilla/mux"
	"github.com/rankworks/checkout.api/models"
	"github.com/rankworks/checkout.api/service"
	"github.com/rankworks/checkout.api/utils"

	"gopkg.in/go-playground/validator.v9"
)

// HandleCreateOrder verifies a submitted cart against the trusted catalog and
// creates a PayPal order for it
func HandleCreateOrder(w http.ResponseWriter, req *http.Request) {
	if req.Body == nil {
		log.ErrorR(req, fmt.Errorf("request body empty"))
		utils.WriteErrorWithStatus(w, req, "request body empty", http.StatusBadRequest)
		return
	}

	requestDecoder := json.NewDecoder(req.Body)
	var incomingCheckoutRequest models.IncomingCheckoutRequest
	err := requestDecoder.Decode(&incomingCheckoutRequest)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("request body invalid: [%v]", err))
		utils.WriteErrorWithStatus(w, req, "request body invalid", http.StatusBadRequest)
		return
	}

	if err = validateCheckoutRequest(incomingCheckoutRequest); err != nil {
		log.ErrorR(req, fmt.Errorf("invalid POST request to create checkout order: [%v]", err))
		utils.WriteErrorWithStatus(w, req, "invalid request", http.StatusBadRequest)
		return
	}

	orderResponse, responseType, err := checkoutService.CreateOrder(req, incomingCheckoutRequest)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error creating checkout order: [%v]", err))
		switch responseType {
		case service.InvalidData:
			utils.WriteErrorWithStatus(w, req, "invalid order data", http.StatusBadRequest)
			return
		case service.PriceMismatch:
			// the details carry both totals for diagnostics
			utils.WriteJSONWithStatus(w, req, utils.NewErrorResponseWithDetails("price verification failed", err.Error()), http.StatusBadRequest)
			return
		default:
			utils.WriteErrorWithStatus(w, req, "error creating order", http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSONWithStatus(w, req, orderResponse, http.StatusOK)

	log.InfoR(req, "Successful POST request for new checkout order", log.Data{"paypal_order_id": orderResponse.OrderID, "status": http.StatusOK})
}

// HandleCaptureOrder captures an approved PayPal order and commits the
// downstream WooCommerce order
func HandleCaptureOrder(w http.ResponseWriter, req *http.Request) {
	if req.Body == nil {
		log.ErrorR(req, fmt.Errorf("request body empty"))
		utils.WriteErrorWithStatus(w, req, "request body empty", http.StatusBadRequest)
		return
	}

	requestDecoder := json.NewDecoder(req.Body)
	var captureRequest models.CaptureOrderRequest
	err := requestDecoder.Decode(&captureRequest)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("request body invalid: [%v]", err))
		utils.WriteErrorWithStatus(w, req, "request body invalid", http.StatusBadRequest)
		return
	}

	if captureRequest.OrderID == "" {
		log.ErrorR(req, fmt.Errorf("capture request missing order id"))
		utils.WriteErrorWithStatus(w, req, "orderId is required", http.StatusBadRequest)
		return
	}

	captureResponse, responseType, err := checkoutService.CaptureOrder(req, captureRequest)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error capturing checkout order: [%v]", err), log.Data{"service_response_type": responseType.String()})
		utils.WriteErrorWithStatus(w, req, "error capturing order", http.StatusInternalServerError)
		return
	}

	if message := handleOrderCapturedMessage(captureResponse.PayPalOrderID, captureResponse.PayPalTransactionID); message != nil {
		// event production is best-effort and never alters the response
		log.ErrorR(req, fmt.Errorf("error producing order captured message: [%v]", message))
	}

	utils.WriteJSONWithStatus(w, req, captureResponse, http.StatusOK)

	log.InfoR(req, "Successful POST request to capture checkout order", log.Data{
		"paypal_order_id":       captureResponse.PayPalOrderID,
		"paypal_transaction_id": captureResponse.PayPalTransactionID,
		"status":                http.StatusOK,
	})
}

// HandleGetOrderStatus returns the provider-side status of an order for
// reconciliation
func HandleGetOrderStatus(w http.ResponseWriter, req *http.Request) {
	vars := mux.Vars(req)
	orderID := vars["order_id"]
	if orderID == "" {
		log.ErrorR(req, fmt.Errorf("order id not supplied"))
		utils.WriteErrorWithStatus(w, req, "order id not supplied", http.StatusBadRequest)
		return
	}

	statusResponse, _, err := checkoutService.GetOrderStatus(orderID)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error getting order status: [%v]", err))
		utils.WriteErrorWithStatus(w, req, "error getting order status", http.StatusInternalServerError)
		return
	}

	utils.WriteJSONWithStatus(w, req, statusResponse, http.StatusOK)
}

func validateCheckoutRequest(incomingCheckoutRequest models.IncomingCheckoutRequest) error {
	validate := validator.New()
	return validate.Struct(incomingCheckoutRequest)
}
