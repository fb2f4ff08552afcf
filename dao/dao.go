package dao

import "github.com/rankworks/checkout.api/models"

// DAO is an interface for accessing the capture and webhook journals in a
// backend store
type DAO interface {
	CreateCaptureResource(captureResource *models.CaptureResourceDB) error
	StoreWooCommerceOrderID(paypalOrderID string, wooOrderID int64) error
	GetCaptureResource(paypalOrderID string) (*models.CaptureResourceDB, error)
	CreateWebhookEvent(event *models.WebhookEventDB) error
}
