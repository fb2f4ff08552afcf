// Package pricing rebuilds authoritative order totals from the trusted
// product catalog. Client-submitted prices never enter any calculation here.
package pricing

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/companieshouse/chs.go/log"
	"github.com/rankworks/checkout.api/models"
	"github.com/shopspring/decimal"
)

// DefaultBaseQuantity is the base service quantity assumed when a legacy cart
// carries no quantity information at all.
const DefaultBaseQuantity = 1000

// Engine resolves products and recomputes order totals from the catalog
type Engine struct {
	products map[string]models.Product
}

// NewEngine loads the catalog JSON file at the given path and returns an
// engine resolving against it.
func NewEngine(catalogPath string) (*Engine, error) {
	data, err := os.ReadFile(catalogPath)
	if err != nil {
		return nil, fmt.Errorf("error reading catalog file: [%v]", err)
	}

	var catalog models.Catalog
	err = json.Unmarshal(data, &catalog)
	if err != nil {
		return nil, fmt.Errorf("error parsing catalog file: [%v]", err)
	}

	return NewEngineFromCatalog(catalog)
}

// NewEngineFromCatalog returns an engine resolving against an already-loaded
// catalog
func NewEngineFromCatalog(catalog models.Catalog) (*Engine, error) {
	if len(catalog.Products) == 0 {
		return nil, fmt.Errorf("catalog contains no products")
	}

	products := make(map[string]models.Product, len(catalog.Products))
	for _, p := range catalog.Products {
		if p.ID == "" {
			return nil, fmt.Errorf("catalog product with empty id")
		}
		products[p.ID] = p
	}

	return &Engine{products: products}, nil
}

// Product resolves a catalog product by id
func (e *Engine) Product(id string) (*models.Product, bool) {
	p, ok := e.products[id]
	if !ok {
		return nil, false
	}
	return &p, true
}

// RecomputeOrder rebuilds the order total for the given line items and
// produces a consolidated order description. All cart lines are merged into a
// single description so the order is sent to PayPal as one line item, avoiding
// per-item rounding drift. The returned total is rounded to 2 decimal places.
func (e *Engine) RecomputeOrder(items []models.LineItem) (decimal.Decimal, string, error) {
	var total decimal.Decimal
	fragments := make([]string, 0, len(items))

	for _, item := range items {
		product, ok := e.products[item.ProductID]
		if !ok {
			return decimal.Zero, "", fmt.Errorf("product [%s] not found in catalog", item.ProductID)
		}

		speedPrice := optionPrice(product.SpeedOptions, item.SelectedOptions.Speed, product.ID, "speed")
		targetPrice := optionPrice(product.TargetOptions, item.SelectedOptions.Target, product.ID, "target")

		baseQuantity := DeriveBaseQuantity(item)

		result := Calculate(product.BasePrice, baseQuantity, decimal.Zero, targetPrice, product.DiscountTiers)

		// The speed surcharge is a flat per-line addition and must not be
		// scaled by the base service quantity.
		unitPrice := result.Total.Add(speedPrice)
		itemTotal := unitPrice.Mul(decimal.NewFromInt(item.OrderQuantity))

		total = total.Add(itemTotal)
		fragments = append(fragments, fmt.Sprintf("%dx %s", displayQuantity(item), product.Name))
	}

	return total.Round(2), strings.Join(fragments, ", "), nil
}

// Calculate applies the pricing formula for one service unit at the given
// base quantity. The discount percentage from the matching tier applies to
// (basePrice+targetPrice) x quantity; speedPrice is added to the subtotal
// untouched by the discount.
func Calculate(basePrice decimal.Decimal, quantity int64, speedPrice decimal.Decimal, targetPrice decimal.Decimal, tiers []models.DiscountTier) models.PricingResult {
	qty := decimal.NewFromInt(quantity)
	base := basePrice.Add(targetPrice).Mul(qty)

	subtotal := base.Add(speedPrice)
	discount := discountFor(quantity, tiers)
	discountAmount := base.Mul(discount).Div(decimal.NewFromInt(100))

	return models.PricingResult{
		Subtotal:       subtotal,
		Discount:       discount,
		DiscountAmount: discountAmount,
		Total:          subtotal.Sub(discountAmount),
	}
}

// DeriveBaseQuantity resolves the base service quantity for a line item.
//
// Carts persisted before the baseServiceQuantity field existed never stored
// it, so when the explicit field is absent the quantity is reconstructed as
// round(selectedQuantity/orderQuantity). This is a best-effort compatibility
// shim, not a guaranteed-correct recomputation; it lives in one place so it
// can be retired in one place.
func DeriveBaseQuantity(item models.LineItem) int64 {
	if item.SelectedOptions.BaseServiceQuantity > 0 {
		return item.SelectedOptions.BaseServiceQuantity
	}

	if item.OrderQuantity <= 0 {
		return DefaultBaseQuantity
	}

	selectedQuantity := item.SelectedOptions.SelectedQuantity
	if selectedQuantity <= 0 {
		selectedQuantity = item.OrderQuantity
	}

	return int64(math.Round(float64(selectedQuantity) / float64(item.OrderQuantity)))
}

// optionPrice resolves an option reference by id or name. An unmatched
// reference resolves to zero surcharge rather than an error; the line is
// logged so data-entry mistakes in the catalog remain visible.
func optionPrice(options []models.ServiceOption, ref string, productID string, kind string) decimal.Decimal {
	if ref == "" {
		return decimal.Zero
	}

	for _, option := range options {
		if option.ID == ref || option.Name == ref {
			return option.Price
		}
	}

	log.Debug(fmt.Sprintf("unmatched %s option [%s] for product [%s], applying zero surcharge", kind, ref, productID))
	return decimal.Zero
}

func discountFor(quantity int64, tiers []models.DiscountTier) decimal.Decimal {
	best := decimal.Zero
	bestMin := int64(-1)
	for _, tier := range tiers {
		if quantity >= tier.MinQuantity && tier.MinQuantity > bestMin {
			best = tier.Percent
			bestMin = tier.MinQuantity
		}
	}
	return best
}

func displayQuantity(item models.LineItem) int64 {
	if item.SelectedOptions.SelectedQuantity > 0 {
		return item.SelectedOptions.SelectedQuantity
	}
	return item.OrderQuantity
}
