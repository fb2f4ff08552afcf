package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/rankworks/checkout.api/fixtures"
	. "github.com/smartystreets/goconvey/convey"
)

func webhookRequest(body string, headers map[string]string) *http.Request {
	req := httptest.NewRequest("POST", "/checkout/webhook", bytes.NewBufferString(body))
	for header, value := range headers {
		req.Header.Set(header, value)
	}
	return req
}

func allTransmissionHeaders() map[string]string {
	return map[string]string{
		"Paypal-Auth-Algo":         "SHA256withRSA",
		"Paypal-Cert-Url":          "https://api.paypal.com/cert",
		"Paypal-Transmission-Id":   "transmission-1",
		"Paypal-Transmission-Sig":  "signature",
		"Paypal-Transmission-Time": "2024-01-01T00:00:00Z",
	}
}

func TestUnitHandlePayPalWebhook(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	mockPayPalSDK, mockDAO, _ := setCheckoutServiceUp(t, mockCtrl)

	eventBody := `{"id": "WH-1", "event_type": "PAYMENT.CAPTURE.COMPLETED"}`

	Convey("Missing transmission header rejects the event before verification", t, func() {
		// no VerifyWebhookSignature expectation registered - a verification
		// call would fail the test
		headers := allTransmissionHeaders()
		delete(headers, "Paypal-Auth-Algo")
		w := httptest.NewRecorder()
		HandlePayPalWebhook(w, webhookRequest(eventBody, headers))
		So(w.Code, ShouldEqual, http.StatusBadRequest)
		So(w.Body.String(), ShouldContainSubstring, "missing webhook verification headers")
	})

	Convey("Error verifying webhook signature", t, func() {
		mockPayPalSDK.EXPECT().VerifyWebhookSignature(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, fmt.Errorf("error"))
		w := httptest.NewRecorder()
		HandlePayPalWebhook(w, webhookRequest(eventBody, allTransmissionHeaders()))
		So(w.Code, ShouldEqual, http.StatusInternalServerError)
	})

	Convey("Failed signature verification rejects the event", t, func() {
		mockPayPalSDK.EXPECT().VerifyWebhookSignature(gomock.Any(), gomock.Any(), gomock.Any()).Return(fixtures.GetVerifyWebhookResponse("FAILURE"), nil)
		w := httptest.NewRecorder()
		HandlePayPalWebhook(w, webhookRequest(eventBody, allTransmissionHeaders()))
		So(w.Code, ShouldEqual, http.StatusUnauthorized)
	})

	Convey("Verified event with an invalid body", t, func() {
		mockPayPalSDK.EXPECT().VerifyWebhookSignature(gomock.Any(), gomock.Any(), gomock.Any()).Return(fixtures.GetVerifyWebhookResponse("SUCCESS"), nil)
		w := httptest.NewRecorder()
		HandlePayPalWebhook(w, webhookRequest("not json", allTransmissionHeaders()))
		So(w.Code, ShouldEqual, http.StatusBadRequest)
	})

	Convey("Verified event is journalled and acknowledged", t, func() {
		mockPayPalSDK.EXPECT().VerifyWebhookSignature(gomock.Any(), gomock.Any(), gomock.Any()).Return(fixtures.GetVerifyWebhookResponse("SUCCESS"), nil)
		mockDAO.EXPECT().CreateWebhookEvent(gomock.Any()).Return(nil)
		w := httptest.NewRecorder()
		HandlePayPalWebhook(w, webhookRequest(eventBody, allTransmissionHeaders()))
		So(w.Code, ShouldEqual, http.StatusOK)
		So(w.Body.String(), ShouldContainSubstring, `"success":true`)
	})

	Convey("Journal failure never blocks the acknowledgement", t, func() {
		mockPayPalSDK.EXPECT().VerifyWebhookSignature(gomock.Any(), gomock.Any(), gomock.Any()).Return(fixtures.GetVerifyWebhookResponse("SUCCESS"), nil)
		mockDAO.EXPECT().CreateWebhookEvent(gomock.Any()).Return(fmt.Errorf("error"))
		w := httptest.NewRecorder()
		HandlePayPalWebhook(w, webhookRequest(eventBody, allTransmissionHeaders()))
		So(w.Code, ShouldEqual, http.StatusOK)
	})
}
