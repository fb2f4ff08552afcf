package models

import "time"

// CaptureResourceDB is the journal record written after a successful capture.
// It is keyed by the PayPal order id and exists for reconciliation; writing it
// is best-effort and never fails the capture response.
type CaptureResourceDB struct {
	ID                 string    `bson:"_id"`
	CaptureID          string    `bson:"capture_id"`
	OrderNumber        string    `bson:"order_number,omitempty"`
	Amount             string    `bson:"amount"`
	Currency           string    `bson:"currency"`
	Status             string    `bson:"status"`
	PayerEmail         string    `bson:"payer_email,omitempty"`
	WooCommerceOrderID int64     `bson:"woocommerce_order_id,omitempty"`
	CompletedAt        time.Time `bson:"completed_at"`
}

// WebhookEventDB is the journal record written for each verified webhook event
type WebhookEventDB struct {
	ID          string    `bson:"_id"`
	EventType   string    `bson:"event_type"`
	ProcessedAt time.Time `bson:"processed_at"`
}
