package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/companieshouse/chs.go/log"
	"github.com/rankworks/checkout.api/models"
	"github.com/rankworks/checkout.api/service"
	"github.com/rankworks/checkout.api/utils"

	"gopkg.in/go-playground/validator.v9"
)

// user-facing error strings for the account and coupon endpoints
const (
	errLoginFailed    = "email or password is incorrect"
	errCouponNotFound = "coupon code not found"
	errCouponInvalid  = "this coupon has expired or is no longer available"
	errNoAccount      = "no account found for this email address"
	errUnexpected     = "something went wrong, please try again later"
)

// HandleLogin forwards a credential check to the WordPress backend
func HandleLogin(w http.ResponseWriter, req *http.Request) {
	var loginRequest models.LoginRequest
	if !decodeAndValidate(w, req, &loginRequest) {
		return
	}

	loginResponse, responseType, err := checkoutService.Woo.Login(loginRequest.Email, loginRequest.Password)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error logging in user: [%v]", err))
		switch responseType {
		case service.Unauthorized:
			utils.WriteErrorWithStatus(w, req, errLoginFailed, http.StatusUnauthorized)
			return
		default:
			utils.WriteErrorWithStatus(w, req, errUnexpected, http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSONWithStatus(w, req, loginResponse, http.StatusOK)

	log.InfoR(req, "Successful login", log.Data{"email": loginResponse.Email})
}

// HandleValidateCoupon validates a coupon code against WooCommerce
func HandleValidateCoupon(w http.ResponseWriter, req *http.Request) {
	var couponRequest models.CouponValidationRequest
	if !decodeAndValidate(w, req, &couponRequest) {
		return
	}

	coupon, responseType, err := checkoutService.Woo.GetCouponByCode(couponRequest.Code)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error validating coupon: [%v]", err))
		switch responseType {
		case service.NotFound:
			utils.WriteErrorWithStatus(w, req, errCouponNotFound, http.StatusNotFound)
			return
		case service.InvalidData:
			utils.WriteErrorWithStatus(w, req, errCouponInvalid, http.StatusBadRequest)
			return
		default:
			utils.WriteErrorWithStatus(w, req, errUnexpected, http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSONWithStatus(w, req, models.CouponValidationResponse{
		Success:      true,
		Code:         coupon.Code,
		Amount:       coupon.Amount,
		DiscountType: coupon.DiscountType,
	}, http.StatusOK)
}

// HandlePasswordReset forwards a password reset request to the WordPress
// backend
func HandlePasswordReset(w http.ResponseWriter, req *http.Request) {
	var resetRequest models.PasswordResetRequest
	if !decodeAndValidate(w, req, &resetRequest) {
		return
	}

	responseType, err := checkoutService.Woo.ResetPassword(resetRequest.Email)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error resetting password: [%v]", err))
		switch responseType {
		case service.NotFound:
			utils.WriteErrorWithStatus(w, req, errNoAccount, http.StatusNotFound)
			return
		default:
			utils.WriteErrorWithStatus(w, req, errUnexpected, http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSONWithStatus(w, req, map[string]interface{}{"success": true}, http.StatusOK)
}

// decodeAndValidate decodes the request body into target and validates it,
// writing a 400 response and returning false on failure
func decodeAndValidate(w http.ResponseWriter, req *http.Request, target interface{}) bool {
	if req.Body == nil {
		log.ErrorR(req, fmt.Errorf("request body empty"))
		utils.WriteErrorWithStatus(w, req, "request body empty", http.StatusBadRequest)
		return false
	}

	err := json.NewDecoder(req.Body).Decode(target)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("request body invalid: [%v]", err))
		utils.WriteErrorWithStatus(w, req, "request body invalid", http.StatusBadRequest)
		return false
	}

	validate := validator.New()
	if err = validate.Struct(target); err != nil {
		log.ErrorR(req, fmt.Errorf("invalid request: [%v]", err))
		utils.WriteErrorWithStatus(w, req, "invalid request", http.StatusBadRequest)
		return false
	}

	return true
}
