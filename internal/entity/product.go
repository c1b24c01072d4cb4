package domain

import "github.com/shopspring/decimal"

// Product is immutable once loaded from the catalog.
type Product struct {
	ID             string
	Name           string
	Description    string
	Price          decimal.Decimal
	Category       string
	Image          string
	Rating         float64
	Reviews        int
	IsTrending     bool
	IsFlashSale    bool
	SellerName     string
	VendorID       string
	CommissionRate decimal.Decimal // zero when the product pays no commission
}

type Category struct {
	ID   string
	Name string
}
