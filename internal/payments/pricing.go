package payments

import (
	"github.com/shopspring/decimal"

	"github.com/infogrowkro/growkroweb/internal/models"
)

// Payment purposes.
const (
	TypeSubscription     = "subscription"
	TypeVerification     = "verification"
	TypeHighlightPackage = "highlight_package"
)

// Currency is the only currency the platform charges in.
const Currency = "INR"

// Fixed prices in paise (minor currency unit).
const (
	SubscriptionAmount int64 = 4900  // annual platform subscription, ₹49
	VerificationAmount int64 = 19900 // profile verification badge, ₹199
)

// PackageAmount converts a catalog price in whole rupees to paise.
func PackageAmount(pkg models.HighlightPackage) int64 {
	return int64(pkg.Price) * 100
}

// Rupees converts a paise amount to rupees without float drift.
func Rupees(paise int64) float64 {
	return decimal.NewFromInt(paise).Div(decimal.NewFromInt(100)).InexactFloat64()
}

type Price struct {
	Amount      int64   `json:"amount"`
	AmountINR   float64 `json:"amount_inr"`
	Description string  `json:"description"`
}

func price(paise int64, description string) Price {
	return Price{Amount: paise, AmountINR: Rupees(paise), Description: description}
}

// PricingTable is the static price sheet served by the pricing endpoint.
func PricingTable() map[string]map[string]Price {
	table := map[string]map[string]Price{
		"subscription": {
			"annual": price(SubscriptionAmount, "Annual platform subscription"),
		},
		"verification": {
			"profile": price(VerificationAmount, "Profile verification badge"),
		},
		"highlight_packages": {},
	}
	for _, pkg := range models.HighlightPackages {
		table["highlight_packages"][pkg.ID] = price(PackageAmount(pkg), pkg.Name)
	}
	return table
}
