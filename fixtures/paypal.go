// Package fixtures provides canned provider responses for unit tests.
package fixtures

import "github.com/plutov/paypal/v4"

// GetCreatedOrder returns a PayPal order in the CREATED state
func GetCreatedOrder(id string) *paypal.Order {
	return &paypal.Order{
		ID:     id,
		Status: paypal.OrderStatusCreated,
		Links: []paypal.Link{
			{
				Href: "https://www.sandbox.paypal.com/checkoutnow?token=" + id,
				Rel:  "approve",
			},
		},
	}
}

// GetCaptureOrderResponse returns a completed capture with the full purchase
// unit nesting populated
func GetCaptureOrderResponse(orderID, captureID string) *paypal.CaptureOrderResponse {
	return &paypal.CaptureOrderResponse{
		ID:     orderID,
		Status: "COMPLETED",
		Payer: &paypal.PayerWithNameAndPhone{
			EmailAddress: "payer@example.com",
		},
		PurchaseUnits: []paypal.CapturedPurchaseUnit{
			{
				ReferenceID: "RW-10001",
				Payments: &paypal.CapturedPayments{
					Captures: []paypal.CaptureAmount{
						{
							ID: captureID,
							Amount: &paypal.PurchaseUnitAmount{
								Currency: "USD",
								Value:    "100.00",
							},
						},
					},
				},
			},
		},
	}
}

// GetBareCaptureOrderResponse returns a capture response with none of the
// optional nesting present
func GetBareCaptureOrderResponse(orderID string) *paypal.CaptureOrderResponse {
	return &paypal.CaptureOrderResponse{
		ID:     orderID,
		Status: "COMPLETED",
	}
}

// GetVerifyWebhookResponse returns a webhook verification result with the
// given status
func GetVerifyWebhookResponse(status string) *paypal.VerifyWebhookResponse {
	return &paypal.VerifyWebhookResponse{
		VerificationStatus: status,
	}
}
