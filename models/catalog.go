package models

import "github.com/shopspring/decimal"

// Catalog is the trusted product catalog loaded at startup. All price
// recomputation resolves against it; client-submitted prices are never used.
type Catalog struct {
	Products []Product `json:"products"`
}

// Product is an immutable catalog record. BasePrice is the price of one unit
// block of the service at the base quantity.
type Product struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	BasePrice     decimal.Decimal `json:"basePrice"`
	SpeedOptions  []ServiceOption `json:"speedOptions,omitempty"`
	TargetOptions []ServiceOption `json:"targetOptions,omitempty"`
	DiscountTiers []DiscountTier  `json:"discountTiers,omitempty"`
}

// ServiceOption is a selectable add-on carrying a price. Speed option prices
// are flat per order line; target option prices scale with the base quantity.
type ServiceOption struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// DiscountTier grants a percentage discount once the base service quantity
// reaches MinQuantity. Tiers are evaluated highest threshold first.
type DiscountTier struct {
	MinQuantity int64           `json:"minQuantity"`
	Percent     decimal.Decimal `json:"percent"`
}

// PricingResult is the output of the pricing formula for one service unit at
// a given base quantity
type PricingResult struct {
	Subtotal       decimal.Decimal `json:"subtotal"`
	Discount       decimal.Decimal `json:"discount"`
	DiscountAmount decimal.Decimal `json:"discountAmount"`
	Total          decimal.Decimal `json:"total"`
}
