package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/companieshouse/chs.go/log"
	"github.com/rankworks/checkout.api/models"
	"github.com/rankworks/checkout.api/utils"
)

// transmissionHeaders are the PayPal signature headers that must all be
// present before any verification call is made
var transmissionHeaders = []string{
	"Paypal-Auth-Algo",
	"Paypal-Cert-Url",
	"Paypal-Transmission-Id",
	"Paypal-Transmission-Sig",
	"Paypal-Transmission-Time",
}

// HandlePayPalWebhook verifies and journals an inbound PayPal webhook event
func HandlePayPalWebhook(w http.ResponseWriter, req *http.Request) {
	for _, header := range transmissionHeaders {
		if req.Header.Get(header) == "" {
			log.ErrorR(req, fmt.Errorf("webhook request missing header [%s]", header))
			utils.WriteErrorWithStatus(w, req, "missing webhook verification headers", http.StatusBadRequest)
			return
		}
	}

	body, err := io.ReadAll(req.Body)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error reading webhook body: [%v]", err))
		utils.WriteErrorWithStatus(w, req, "error reading webhook body", http.StatusInternalServerError)
		return
	}
	// signature verification re-reads the request body
	req.Body = io.NopCloser(bytes.NewReader(body))

	verified, err := checkoutService.PayPal.VerifyWebhook(req)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error verifying webhook: [%v]", err))
		utils.WriteErrorWithStatus(w, req, "error verifying webhook", http.StatusInternalServerError)
		return
	}
	if !verified {
		log.ErrorR(req, fmt.Errorf("webhook signature verification failed"))
		utils.WriteErrorWithStatus(w, req, "webhook signature verification failed", http.StatusUnauthorized)
		return
	}

	var event models.WebhookEvent
	err = json.Unmarshal(body, &event)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("webhook event body invalid: [%v]", err))
		utils.WriteErrorWithStatus(w, req, "webhook event body invalid", http.StatusBadRequest)
		return
	}

	if event.ID != "" {
		journalErr := checkoutService.DAO.CreateWebhookEvent(&models.WebhookEventDB{
			ID:          event.ID,
			EventType:   event.EventType,
			ProcessedAt: time.Now(),
		})
		if journalErr != nil {
			log.ErrorR(req, fmt.Errorf("error journalling webhook event [%s]: [%v]", event.ID, journalErr))
		}
	}

	log.InfoR(req, "Processed PayPal webhook", log.Data{"event_id": event.ID, "event_type": event.EventType})

	utils.WriteJSONWithStatus(w, req, models.WebhookResponse{
		Success:     true,
		ProcessedAt: time.Now().UTC().Format(time.RFC3339),
	}, http.StatusOK)
}
