package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/jarcoal/httpmock"
	"github.com/rankworks/checkout.api/models"
	. "github.com/smartystreets/goconvey/convey"
)

func TestUnitHandleLogin(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	_, _, woo := setCheckoutServiceUp(t, mockCtrl)

	httpmock.ActivateNonDefault(woo.HTTPClient)
	defer httpmock.DeactivateAndReset()

	Convey("Request body empty", t, func() {
		req, _ := http.NewRequest("POST", "/account/login", nil)
		w := httptest.NewRecorder()
		HandleLogin(w, req)
		So(w.Code, ShouldEqual, http.StatusBadRequest)
	})

	Convey("Request missing credentials fails validation", t, func() {
		req := httptest.NewRequest("POST", "/account/login", bytes.NewBufferString(`{"email": "someone@example.com"}`))
		w := httptest.NewRecorder()
		HandleLogin(w, req)
		So(w.Code, ShouldEqual, http.StatusBadRequest)
	})

	Convey("Bad credentials are unauthorized", t, func() {
		httpmock.RegisterResponder("POST", "https://shop.example.com/wp-json/jwt-auth/v1/token",
			httpmock.NewStringResponder(http.StatusForbidden, `{"message": "invalid credentials"}`))

		req := httptest.NewRequest("POST", "/account/login", bytes.NewBufferString(`{"email": "someone@example.com", "password": "wrong"}`))
		w := httptest.NewRecorder()
		HandleLogin(w, req)
		So(w.Code, ShouldEqual, http.StatusUnauthorized)
		So(w.Body.String(), ShouldContainSubstring, errLoginFailed)
	})

	Convey("WordPress outage is a server error, not bad credentials", t, func() {
		httpmock.RegisterResponder("POST", "https://shop.example.com/wp-json/jwt-auth/v1/token",
			httpmock.NewStringResponder(http.StatusInternalServerError, `{"message": "internal server error"}`))

		req := httptest.NewRequest("POST", "/account/login", bytes.NewBufferString(`{"email": "someone@example.com", "password": "correct"}`))
		w := httptest.NewRecorder()
		HandleLogin(w, req)
		So(w.Code, ShouldEqual, http.StatusInternalServerError)
		So(w.Body.String(), ShouldContainSubstring, errUnexpected)
	})

	Convey("Successful login returns the token", t, func() {
		httpmock.RegisterResponder("POST", "https://shop.example.com/wp-json/jwt-auth/v1/token",
			httpmock.NewStringResponder(http.StatusOK, `{"token": "jwt-token", "user_email": "someone@example.com", "user_display_name": "Someone"}`))

		req := httptest.NewRequest("POST", "/account/login", bytes.NewBufferString(`{"email": "someone@example.com", "password": "correct"}`))
		w := httptest.NewRecorder()
		HandleLogin(w, req)
		So(w.Code, ShouldEqual, http.StatusOK)

		var loginResponse models.LoginResponse
		So(json.Unmarshal(w.Body.Bytes(), &loginResponse), ShouldBeNil)
		So(loginResponse.Success, ShouldBeTrue)
		So(loginResponse.Token, ShouldEqual, "jwt-token")
	})
}

func TestUnitHandleValidateCoupon(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	_, _, woo := setCheckoutServiceUp(t, mockCtrl)

	httpmock.ActivateNonDefault(woo.HTTPClient)
	defer httpmock.DeactivateAndReset()

	Convey("Unknown coupon code", t, func() {
		httpmock.RegisterResponder("GET", `=~^https://shop\.example\.com/wp-json/wc/v3/coupons`,
			httpmock.NewStringResponder(http.StatusOK, `[]`))

		req := httptest.NewRequest("POST", "/coupons/validate", bytes.NewBufferString(`{"code": "MISSING"}`))
		w := httptest.NewRecorder()
		HandleValidateCoupon(w, req)
		So(w.Code, ShouldEqual, http.StatusNotFound)
		So(w.Body.String(), ShouldContainSubstring, errCouponNotFound)
	})

	Convey("Expired coupon", t, func() {
		httpmock.RegisterResponder("GET", `=~^https://shop\.example\.com/wp-json/wc/v3/coupons`,
			httpmock.NewStringResponder(http.StatusOK, `[{"code": "OLD10", "amount": "10.00", "discount_type": "percent", "date_expires": "2020-01-01T00:00:00"}]`))

		req := httptest.NewRequest("POST", "/coupons/validate", bytes.NewBufferString(`{"code": "OLD10"}`))
		w := httptest.NewRecorder()
		HandleValidateCoupon(w, req)
		So(w.Code, ShouldEqual, http.StatusBadRequest)
		So(w.Body.String(), ShouldContainSubstring, errCouponInvalid)
	})

	Convey("Valid coupon", t, func() {
		httpmock.RegisterResponder("GET", `=~^https://shop\.example\.com/wp-json/wc/v3/coupons`,
			httpmock.NewStringResponder(http.StatusOK, `[{"code": "SAVE10", "amount": "10.00", "discount_type": "percent"}]`))

		req := httptest.NewRequest("POST", "/coupons/validate", bytes.NewBufferString(`{"code": "SAVE10"}`))
		w := httptest.NewRecorder()
		HandleValidateCoupon(w, req)
		So(w.Code, ShouldEqual, http.StatusOK)

		var couponResponse models.CouponValidationResponse
		So(json.Unmarshal(w.Body.Bytes(), &couponResponse), ShouldBeNil)
		So(couponResponse.Success, ShouldBeTrue)
		So(couponResponse.Code, ShouldEqual, "SAVE10")
		So(couponResponse.Amount, ShouldEqual, "10.00")
	})
}

func TestUnitHandlePasswordReset(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	_, _, woo := setCheckoutServiceUp(t, mockCtrl)

	httpmock.ActivateNonDefault(woo.HTTPClient)
	defer httpmock.DeactivateAndReset()

	Convey("Unknown account", t, func() {
		httpmock.RegisterResponder("GET", `=~^https://shop\.example\.com/wp-json/wc/v3/customers`,
			httpmock.NewStringResponder(http.StatusOK, `[]`))

		req := httptest.NewRequest("POST", "/account/password-reset", bytes.NewBufferString(`{"email": "missing@example.com"}`))
		w := httptest.NewRecorder()
		HandlePasswordReset(w, req)
		So(w.Code, ShouldEqual, http.StatusNotFound)
		So(w.Body.String(), ShouldContainSubstring, errNoAccount)
	})

	Convey("Successful password reset", t, func() {
		httpmock.RegisterResponder("GET", `=~^https://shop\.example\.com/wp-json/wc/v3/customers`,
			httpmock.NewStringResponder(http.StatusOK, `[{"id": 7, "email": "someone@example.com"}]`))
		httpmock.RegisterResponder("POST", "https://shop.example.com/wp-json/bdpwr/v1/reset-password",
			httpmock.NewStringResponder(http.StatusOK, `{"message": "reset email sent"}`))

		req := httptest.NewRequest("POST", "/account/password-reset", bytes.NewBufferString(`{"email": "someone@example.com"}`))
		w := httptest.NewRecorder()
		HandlePasswordReset(w, req)
		So(w.Code, ShouldEqual, http.StatusOK)
		So(w.Body.String(), ShouldContainSubstring, `"success":true`)
	})
}
