// Package pricing maps customer categories to ticket prices. VIPs get in
// free, children and seniors pay the discounted rate, everyone else pays the
// standard adult rate.
package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"boxoffice/internal/domain"
)

var (
	priceFree     = decimal.NewFromInt(0)
	priceReduced  = decimal.NewFromInt(5)
	priceStandard = decimal.NewFromInt(10)
)

// PriceFor returns the base ticket price for a category. Unknown labels are
// priced at the standard rate.
func PriceFor(category domain.Category) decimal.Decimal {
	switch category {
	case domain.CategoryVIP:
		return priceFree
	case domain.CategoryChild, domain.CategorySenior:
		return priceReduced
	default:
		return priceStandard
	}
}

// Explanation returns the human-readable price reasoning used in booking
// reports, e.g. "VIP (Free admission)".
func Explanation(category domain.Category) string {
	switch category {
	case domain.CategoryVIP:
		return "VIP (Free admission)"
	case domain.CategoryChild, domain.CategorySenior:
		return fmt.Sprintf("%s (discounted rate)", category)
	case domain.CategoryAdult:
		return "Adult (standard rate)"
	default:
		return fmt.Sprintf("%s (standard rate)", category)
	}
}
