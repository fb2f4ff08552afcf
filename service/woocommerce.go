package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/companieshouse/chs.go/log"
	"github.com/rankworks/checkout.api/config"
	"github.com/rankworks/checkout.api/models"
)

// WooCommerceService makes the outbound calls to the WooCommerce REST API and
// the WordPress endpoints used for login and password reset
type WooCommerceService struct {
	Config     config.Config
	HTTPClient *http.Client
}

// NewWooCommerceService returns a service with a bounded outbound client. The
// original transport carried no deadline at all.
func NewWooCommerceService(cfg config.Config) *WooCommerceService {
	return &WooCommerceService{
		Config:     cfg,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// GetCustomerByEmail looks a customer up in WooCommerce by email address.
// A missing customer is a NotFound outcome, not an error.
func (woo *WooCommerceService) GetCustomerByEmail(email string) (*models.WooCustomer, ResponseType, error) {
	requestURL := woo.apiURL("/wp-json/wc/v3/customers", url.Values{"email": {email}})

	body, status, err := woo.doRequest("GET", requestURL, nil)
	if err != nil {
		return nil, Error, err
	}
	if status != http.StatusOK {
		return nil, Error, fmt.Errorf("error status [%v] back from WooCommerce when fetching customer", status)
	}

	var customers []models.WooCustomer
	err = json.Unmarshal(body, &customers)
	if err != nil {
		return nil, Error, fmt.Errorf("error reading customer response from WooCommerce: [%s]", err)
	}

	if len(customers) == 0 {
		return nil, NotFound, fmt.Errorf("no customer found for email [%s]", email)
	}

	return &customers[0], Success, nil
}

// GetCouponByCode looks a coupon up in WooCommerce by code and checks it is
// still redeemable
func (woo *WooCommerceService) GetCouponByCode(code string) (*models.WooCoupon, ResponseType, error) {
	requestURL := woo.apiURL("/wp-json/wc/v3/coupons", url.Values{"code": {code}})

	body, status, err := woo.doRequest("GET", requestURL, nil)
	if err != nil {
		return nil, Error, err
	}
	if status != http.StatusOK {
		return nil, Error, fmt.Errorf("error status [%v] back from WooCommerce when fetching coupon", status)
	}

	var coupons []models.WooCoupon
	err = json.Unmarshal(body, &coupons)
	if err != nil {
		return nil, Error, fmt.Errorf("error reading coupon response from WooCommerce: [%s]", err)
	}

	if len(coupons) == 0 {
		return nil, NotFound, fmt.Errorf("coupon [%s] not found", code)
	}

	coupon := coupons[0]

	if coupon.DateExpires != "" {
		expires, err := time.Parse("2006-01-02T15:04:05", coupon.DateExpires)
		if err == nil && time.Now().After(expires) {
			return nil, InvalidData, fmt.Errorf("coupon [%s] has expired", code)
		}
	}

	if coupon.UsageLimit > 0 && coupon.UsageCount >= coupon.UsageLimit {
		return nil, InvalidData, fmt.Errorf("coupon [%s] usage limit reached", code)
	}

	return &coupon, Success, nil
}

// CreateOrder creates a WooCommerce order for a captured payment. The PayPal
// transaction id travels in the order note so support can always trace an
// order back to the capture.
func (woo *WooCommerceService) CreateOrder(transactionID string, amount string, customer models.CustomerInfo, items []models.WooOrderLineItem) (int64, ResponseType, error) {
	orderRequest := models.OutgoingWooOrderRequest{
		PaymentMethod:      "paypal",
		PaymentMethodTitle: "PayPal",
		SetPaid:            true,
		TransactionID:      transactionID,
		CustomerNote:       fmt.Sprintf("PayPal transaction ID: %s", transactionID),
		Billing: models.WooBillingAddress{
			FirstName: customer.FirstName,
			LastName:  customer.LastName,
			Email:     customer.Email,
			Phone:     customer.Phone,
			Address1:  customer.Address1,
			City:      customer.City,
			Postcode:  customer.Postcode,
			Country:   customer.Country,
		},
		LineItems: items,
	}

	requestBody, err := json.Marshal(orderRequest)
	if err != nil {
		return 0, Error, fmt.Errorf("error marshalling WooCommerce order request: [%s]", err)
	}

	requestURL := woo.apiURL("/wp-json/wc/v3/orders", nil)

	body, status, err := woo.doRequest("POST", requestURL, requestBody)
	if err != nil {
		return 0, Error, err
	}
	if status != http.StatusCreated && status != http.StatusOK {
		return 0, Error, fmt.Errorf("error status [%v] back from WooCommerce when creating order for transaction [%s]", status, transactionID)
	}

	orderResponse := &models.IncomingWooOrderResponse{}
	err = json.Unmarshal(body, orderResponse)
	if err != nil {
		return 0, Error, fmt.Errorf("error reading order response from WooCommerce: [%s]", err)
	}

	log.Info("WooCommerce order created", log.Data{"woocommerce_order_id": orderResponse.ID, "transaction_id": transactionID, "amount": amount})

	return orderResponse.ID, Success, nil
}

// Login checks credentials against the WordPress JWT token endpoint. Bad
// credentials are an Unauthorized outcome, not an error.
func (woo *WooCommerceService) Login(email, password string) (*models.LoginResponse, ResponseType, error) {
	loginRequest := map[string]string{
		"username": email,
		"password": password,
	}
	requestBody, err := json.Marshal(loginRequest)
	if err != nil {
		return nil, Error, fmt.Errorf("error marshalling login request: [%s]", err)
	}

	requestURL := woo.Config.WordPressURL + "/wp-json/jwt-auth/v1/token"

	body, status, err := woo.doRequest("POST", requestURL, requestBody)
	if err != nil {
		return nil, Error, err
	}

	tokenResponse := &models.IncomingWPTokenResponse{}
	err = json.Unmarshal(body, tokenResponse)
	if err != nil {
		return nil, Error, fmt.Errorf("error reading token response from WordPress: [%s]", err)
	}

	// a backend outage must not read as bad credentials
	if status >= http.StatusInternalServerError {
		return nil, Error, fmt.Errorf("error status [%v] back from WordPress login", status)
	}
	if status != http.StatusOK {
		return nil, Unauthorized, fmt.Errorf("error status [%v] back from WordPress login: [%s]", status, tokenResponse.Message)
	}

	return &models.LoginResponse{
		Success:     true,
		Token:       tokenResponse.Token,
		Email:       tokenResponse.UserEmail,
		DisplayName: tokenResponse.DisplayName,
	}, Success, nil
}

// ResetPassword forwards a password reset request to the WordPress backend
// once the account is known to exist. The reset plugin reports unknown
// accounts with the same 500 it uses for genuine failures, so the customer
// lookup is what distinguishes the two.
func (woo *WooCommerceService) ResetPassword(email string) (ResponseType, error) {
	_, lookupType, lookupErr := woo.GetCustomerByEmail(email)
	if lookupErr != nil {
		if lookupType == NotFound {
			return NotFound, fmt.Errorf("no account found for email [%s]", email)
		}
		// lookup outages fall through to the reset attempt
		log.Error(fmt.Errorf("error checking account for password reset: [%v]", lookupErr))
	}

	resetRequest := map[string]string{"email": email}
	requestBody, err := json.Marshal(resetRequest)
	if err != nil {
		return Error, fmt.Errorf("error marshalling password reset request: [%s]", err)
	}

	requestURL := woo.Config.WordPressURL + "/wp-json/bdpwr/v1/reset-password"

	_, status, err := woo.doRequest("POST", requestURL, requestBody)
	if err != nil {
		return Error, err
	}

	switch status {
	case http.StatusOK:
		return Success, nil
	case http.StatusNotFound, http.StatusInternalServerError:
		// the reset plugin reports unknown accounts as 500
		return NotFound, fmt.Errorf("no account found for email [%s]", email)
	default:
		return Error, fmt.Errorf("error status [%v] back from WordPress password reset", status)
	}
}

func (woo *WooCommerceService) apiURL(path string, params url.Values) string {
	if params == nil {
		params = url.Values{}
	}
	params.Set("consumer_key", woo.Config.WooConsumerKey)
	params.Set("consumer_secret", woo.Config.WooConsumerSecret)
	return woo.Config.WooCommerceAPIURL + path + "?" + params.Encode()
}

func (woo *WooCommerceService) doRequest(method, requestURL string, requestBody []byte) ([]byte, int, error) {
	var reader io.Reader
	if requestBody != nil {
		reader = bytes.NewBuffer(requestBody)
	}

	request, err := http.NewRequest(method, requestURL, reader)
	if err != nil {
		return nil, 0, fmt.Errorf("error generating request for WooCommerce: [%s]", err)
	}

	request.Header.Add("accept", "application/json")
	request.Header.Add("content-type", "application/json")

	resp, err := woo.HTTPClient.Do(request)
	if err != nil {
		return nil, 0, fmt.Errorf("error sending request to WooCommerce: [%s]", err)
	}

	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, fmt.Errorf("error reading response from WooCommerce: [%s]", err)
	}

	return body, resp.StatusCode, nil
}
