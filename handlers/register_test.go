package handlers

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gorilla/mux"
	"github.com/rankworks/checkout.api/config"

	. "github.com/smartystreets/goconvey/convey"
)

func TestUnitRegisterRoutes(t *testing.T) {
	catalogPath := filepath.Join(t.TempDir(), "catalog.json")
	err := os.WriteFile(catalogPath, []byte(`{"products": [{"id": "p1", "name": "Website Traffic", "basePrice": 0.05}]}`), 0600)
	if err != nil {
		t.Fatalf("error writing test catalog: %v", err)
	}

	Convey("Register routes", t, func() {
		router := mux.NewRouter()
		cfg, _ := config.Get()
		cfg.CatalogPath = catalogPath
		Register(router, *cfg)
		So(router.Get("get-healthcheck"), ShouldNotBeNil)
		So(router.Get("create-order"), ShouldNotBeNil)
		So(router.Get("capture-order"), ShouldNotBeNil)
		So(router.Get("get-order"), ShouldNotBeNil)
		So(router.Get("paypal-webhook"), ShouldNotBeNil)
		So(router.Get("login"), ShouldNotBeNil)
		So(router.Get("password-reset"), ShouldNotBeNil)
		So(router.Get("validate-coupon"), ShouldNotBeNil)
	})
}
