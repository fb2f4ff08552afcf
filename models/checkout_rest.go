package models

// IncomingCheckoutRequest is the data received in the body of a request to
// create a checkout order
type IncomingCheckoutRequest struct {
	Items        []LineItem   `json:"items" validate:"required,min=1,dive"`
	CustomerInfo CustomerInfo `json:"customerInfo"`
	TotalAmount  string       `json:"totalAmount" validate:"required"`
}

// LineItem is a single cart entry: a product plus chosen add-ons and an
// order quantity multiplier
type LineItem struct {
	ProductID       string          `json:"productId" validate:"required"`
	OrderQuantity   int64           `json:"orderQuantity"`
	SelectedOptions SelectedOptions `json:"selectedOptions"`
}

// SelectedOptions holds the add-ons chosen for a line item. Speed and Target
// reference a catalog option by name or id. BaseServiceQuantity may be absent
// on carts persisted before the field existed.
type SelectedOptions struct {
	Speed               string `json:"speed,omitempty"`
	Target              string `json:"target,omitempty"`
	SelectedQuantity    int64  `json:"selectedQuantity,omitempty"`
	BaseServiceQuantity int64  `json:"baseServiceQuantity,omitempty"`
}

// CustomerInfo is the billing contact submitted with the cart
type CustomerInfo struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Address1  string `json:"address1,omitempty"`
	City      string `json:"city,omitempty"`
	Postcode  string `json:"postcode,omitempty"`
	Country   string `json:"country,omitempty"`
}

// CreateOrderResponse is returned once a PayPal order has been created for a
// verified cart
type CreateOrderResponse struct {
	Success     bool   `json:"success"`
	OrderID     string `json:"orderId"`
	OrderNumber string `json:"orderNumber"`
	Amount      string `json:"amount"`
	Currency    string `json:"currency"`
}

// CaptureOrderRequest is the data received in the body of a request to capture
// an approved PayPal order
type CaptureOrderRequest struct {
	OrderID   string     `json:"orderId" validate:"required"`
	OrderData *OrderData `json:"orderData"`
}

// OrderData carries the cart and customer details needed to create the
// WooCommerce order once funds have been captured
type OrderData struct {
	Items        []LineItem   `json:"items"`
	CustomerInfo CustomerInfo `json:"customerInfo"`
	OrderNumber  string       `json:"orderNumber,omitempty"`
}

// CaptureOrderResponse is returned once a capture attempt has completed.
// Warning is populated when funds were captured but the downstream WooCommerce
// order could not be created.
type CaptureOrderResponse struct {
	Success             bool   `json:"success"`
	PayPalOrderID       string `json:"paypalOrderId"`
	PayPalTransactionID string `json:"paypalTransactionId,omitempty"`
	PayPalStatus        string `json:"paypalStatus"`
	WooCommerceOrderID  int64  `json:"wooCommerceOrderId,omitempty"`
	Amount              string `json:"amount,omitempty"`
	Message             string `json:"message,omitempty"`
	Warning             string `json:"warning,omitempty"`
}

// WebhookEvent is the envelope of an inbound PayPal webhook event
type WebhookEvent struct {
	ID           string `json:"id"`
	EventType    string `json:"event_type"`
	ResourceType string `json:"resource_type,omitempty"`
	CreateTime   string `json:"create_time,omitempty"`
}

// WebhookResponse is returned once a webhook event has been verified and
// journalled
type WebhookResponse struct {
	Success     bool   `json:"success"`
	ProcessedAt string `json:"processed_at"`
}

// OrderStatusResponse is returned from the order details endpoint. The
// capture fields are filled from the journal when the order has been captured.
type OrderStatusResponse struct {
	OrderID             string `json:"orderId"`
	Status              string `json:"status"`
	PayPalTransactionID string `json:"paypalTransactionId,omitempty"`
	Amount              string `json:"amount,omitempty"`
	WooCommerceOrderID  int64  `json:"wooCommerceOrderId,omitempty"`
}
