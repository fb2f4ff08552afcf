package service

import (
	"fmt"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/plutov/paypal/v4"

	"github.com/golang/mock/gomock"
	"github.com/rankworks/checkout.api/config"
	"github.com/rankworks/checkout.api/fixtures"
	"github.com/rankworks/checkout.api/models"
	. "github.com/smartystreets/goconvey/convey"
)

func createMockPayPalService(sdk PayPalSDK, cfg *config.Config) *PayPalService {
	return &PayPalService{
		Client: sdk,
		Config: *cfg,
	}
}

func TestUnitCreateCheckoutOrder(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()
	cfg, _ := config.Get()
	mockPayPalSDK := NewMockPaypalSDK(mockCtrl)
	mockPayPalService := createMockPayPalService(mockPayPalSDK, cfg)

	customer := models.CustomerInfo{Email: "buyer@example.com"}

	Convey("Error when creating an order resource in PayPal", t, func() {
		mockPayPalSDK.EXPECT().CreateOrder(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, fmt.Errorf("error"))

		order, resType, err := mockPayPalService.CreateCheckoutOrder("100.00", "RW-10001", "2000x Website Traffic", customer)

		So(order, ShouldBeNil)
		So(resType, ShouldEqual, Error)
		So(err.Error(), ShouldContainSubstring, "error creating order: [error]")
	})

	Convey("Order status is not created - unsuccessful", t, func() {
		order := paypal.Order{
			ID:     "123",
			Status: paypal.OrderStatusVoided,
		}

		mockPayPalSDK.EXPECT().CreateOrder(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(&order, nil)

		res, resType, err := mockPayPalService.CreateCheckoutOrder("100.00", "RW-10001", "2000x Website Traffic", customer)

		So(res, ShouldBeNil)
		So(resType, ShouldEqual, Error)
		So(err.Error(), ShouldContainSubstring, "failed to correctly create paypal order")
	})

	Convey("Breakdown item total mirrors the purchase unit amount", t, func() {
		var captured []paypal.PurchaseUnitRequest
		mockPayPalSDK.EXPECT().CreateOrder(gomock.Any(), paypal.OrderIntentCapture, gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ interface{}, _ string, purchaseUnits []paypal.PurchaseUnitRequest, _ *paypal.CreateOrderPayer, _ *paypal.ApplicationContext) (*paypal.Order, error) {
				captured = purchaseUnits
				return fixtures.GetCreatedOrder("123"), nil
			})

		res, resType, err := mockPayPalService.CreateCheckoutOrder("100.00", "RW-10001", "2000x Website Traffic", customer)

		So(err, ShouldBeNil)
		So(resType, ShouldEqual, Success)
		So(res.ID, ShouldEqual, "123")
		So(captured, ShouldHaveLength, 1)
		So(captured[0].Amount.Value, ShouldEqual, "100.00")
		So(captured[0].Amount.Breakdown.ItemTotal.Value, ShouldEqual, "100.00")
		So(captured[0].Items, ShouldHaveLength, 1)
		So(captured[0].Items[0].UnitAmount.Value, ShouldEqual, "100.00")
		So(captured[0].Items[0].Quantity, ShouldEqual, "1")
	})
}

func TestUnitCapturePayment(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()
	cfg, _ := config.Get()
	mockPayPalSDK := NewMockPaypalSDK(mockCtrl)
	mockPayPalService := createMockPayPalService(mockPayPalSDK, cfg)

	Convey("Capture error is returned to the caller", t, func() {
		mockPayPalSDK.EXPECT().CaptureOrder(gomock.Any(), "123", gomock.Any()).Return(nil, fmt.Errorf("error"))

		res, err := mockPayPalService.CapturePayment("123")

		So(res, ShouldBeNil)
		So(err.Error(), ShouldEqual, "error")
	})

	Convey("Successful capture", t, func() {
		mockPayPalSDK.EXPECT().CaptureOrder(gomock.Any(), "123", gomock.Any()).Return(fixtures.GetCaptureOrderResponse("123", "CAP-1"), nil)

		res, err := mockPayPalService.CapturePayment("123")

		So(err, ShouldBeNil)
		So(res.ID, ShouldEqual, "123")
		So(res.Status, ShouldEqual, "COMPLETED")
	})
}

func TestUnitGetOrderDetails(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()
	cfg, _ := config.Get()
	mockPayPalSDK := NewMockPaypalSDK(mockCtrl)
	mockPayPalService := createMockPayPalService(mockPayPalSDK, cfg)

	Convey("Error fetching order details", t, func() {
		mockPayPalSDK.EXPECT().GetOrder(gomock.Any(), "123").Return(nil, fmt.Errorf("error"))

		res, resType, err := mockPayPalService.GetOrderDetails("123")

		So(res, ShouldBeNil)
		So(resType, ShouldEqual, Error)
		So(err.Error(), ShouldContainSubstring, "error checking order status with PayPal")
	})

	Convey("Successful fetch is passed through", t, func() {
		mockPayPalSDK.EXPECT().GetOrder(gomock.Any(), "123").Return(fixtures.GetCreatedOrder("123"), nil)

		res, resType, err := mockPayPalService.GetOrderDetails("123")

		So(err, ShouldBeNil)
		So(resType, ShouldEqual, Success)
		So(res.Status, ShouldEqual, paypal.OrderStatusCreated)
	})
}

func TestUnitVerifyWebhook(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()
	cfg, _ := config.Get()
	mockPayPalSDK := NewMockPaypalSDK(mockCtrl)
	mockPayPalService := createMockPayPalService(mockPayPalSDK, cfg)

	Convey("Transport error verifying a webhook", t, func() {
		req := httptest.NewRequest("POST", "/checkout/webhook", nil)
		mockPayPalSDK.EXPECT().VerifyWebhookSignature(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, fmt.Errorf("error"))

		verified, err := mockPayPalService.VerifyWebhook(req)

		So(verified, ShouldBeFalse)
		So(err.Error(), ShouldContainSubstring, "error verifying webhook signature")
	})

	Convey("Failed verification is a false outcome, not an error", t, func() {
		req := httptest.NewRequest("POST", "/checkout/webhook", nil)
		mockPayPalSDK.EXPECT().VerifyWebhookSignature(gomock.Any(), gomock.Any(), gomock.Any()).Return(fixtures.GetVerifyWebhookResponse("FAILURE"), nil)

		verified, err := mockPayPalService.VerifyWebhook(req)

		So(verified, ShouldBeFalse)
		So(err, ShouldBeNil)
	})

	Convey("Successful verification", t, func() {
		req := httptest.NewRequest("POST", "/checkout/webhook", nil)
		mockPayPalSDK.EXPECT().VerifyWebhookSignature(gomock.Any(), gomock.Any(), gomock.Any()).Return(fixtures.GetVerifyWebhookResponse("SUCCESS"), nil)

		verified, err := mockPayPalService.VerifyWebhook(req)

		So(verified, ShouldBeTrue)
		So(err, ShouldBeNil)
	})
}

func TestUnitPayPalClientConstruction(t *testing.T) {

	Convey("Invalid environment surfaces as a call error", t, func() {
		cfg, _ := config.Get()
		badCfg := *cfg
		badCfg.PayPalEnv = "bogus"
		paypalService := &PayPalService{Config: badCfg}

		sdk, err := paypalService.sdk()

		So(sdk, ShouldBeNil)
		So(err.Error(), ShouldContainSubstring, "invalid paypal env")
	})

	Convey("Concurrent first calls serialize on the client lock", t, func() {
		cfg, _ := config.Get()
		badCfg := *cfg
		badCfg.PayPalEnv = "bogus"
		paypalService := &PayPalService{Config: badCfg}

		var wg sync.WaitGroup
		errs := make([]error, 4)
		for i := 0; i < 4; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				_, errs[i] = paypalService.sdk()
			}(i)
		}
		wg.Wait()

		for _, err := range errs {
			So(err, ShouldNotBeNil)
		}
	})
}
