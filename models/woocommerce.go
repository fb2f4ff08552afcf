package models

// WooCustomer is a customer record returned by the WooCommerce customers API
type WooCustomer struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Username  string `json:"username"`
}

// WooCoupon is a coupon record returned by the WooCommerce coupons API
type WooCoupon struct {
	ID           int64  `json:"id"`
	Code         string `json:"code"`
	Amount       string `json:"amount"`
	DiscountType string `json:"discount_type"`
	DateExpires  string `json:"date_expires,omitempty"`
	UsageCount   int64  `json:"usage_count"`
	UsageLimit   int64  `json:"usage_limit,omitempty"`
}

// OutgoingWooOrderRequest is the request sent to WooCommerce to create an
// order for a captured payment
type OutgoingWooOrderRequest struct {
	PaymentMethod      string              `json:"payment_method"`
	PaymentMethodTitle string              `json:"payment_method_title"`
	SetPaid            bool                `json:"set_paid"`
	TransactionID      string              `json:"transaction_id"`
	CustomerNote       string              `json:"customer_note"`
	Billing            WooBillingAddress   `json:"billing"`
	LineItems          []WooOrderLineItem  `json:"line_items"`
}

// WooBillingAddress is the billing block of a WooCommerce order
type WooBillingAddress struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Address1  string `json:"address_1,omitempty"`
	City      string `json:"city,omitempty"`
	Postcode  string `json:"postcode,omitempty"`
	Country   string `json:"country,omitempty"`
}

// WooOrderLineItem is a single order line in a WooCommerce order request
type WooOrderLineItem struct {
	Name     string `json:"name"`
	Quantity int64  `json:"quantity"`
	Total    string `json:"total"`
}

// IncomingWooOrderResponse is the subset of the WooCommerce order creation
// response this service reads
type IncomingWooOrderResponse struct {
	ID     int64  `json:"id"`
	Status string `json:"status"`
}

// LoginRequest is the data received in the body of a login request
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse is returned after a successful credential check against the
// WordPress backend
type LoginResponse struct {
	Success     bool   `json:"success"`
	Token       string `json:"token,omitempty"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName,omitempty"`
}

// IncomingWPTokenResponse is the response from the WordPress JWT token
// endpoint used for credential checks
type IncomingWPTokenResponse struct {
	Token       string `json:"token"`
	UserEmail   string `json:"user_email"`
	DisplayName string `json:"user_display_name"`
	Message     string `json:"message,omitempty"`
}

// CouponValidationRequest is the data received in the body of a coupon
// validation request
type CouponValidationRequest struct {
	Code string `json:"code" validate:"required"`
}

// CouponValidationResponse is returned for a valid coupon
type CouponValidationResponse struct {
	Success      bool   `json:"success"`
	Code         string `json:"code"`
	Amount       string `json:"amount"`
	DiscountType string `json:"discountType"`
}

// PasswordResetRequest is the data received in the body of a password reset
// request
type PasswordResetRequest struct {
	Email string `json:"email" validate:"required"`
}
