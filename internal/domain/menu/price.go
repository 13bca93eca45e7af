package menu

import (
	"cafe-menu-service/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

type Unit string

const (
	UnitPerItem Unit = "per_item"
	UnitPer100g Unit = "per_100g"
)

func (u Unit) String() string {
	return string(u)
}

func (u Unit) IsValid() bool {
	switch u {
	case UnitPerItem, UnitPer100g:
		return true
	default:
		return false
	}
}

// Stored as NUMERIC(12, 4): at most 8 integer digits and 4 decimal places.
const (
	PriceScale            = 4
	MaxPriceIntegerDigits = 8
)

var maxPriceAmount = decimal.New(1, MaxPriceIntegerDigits)

// Price is immutable. Discount is a fraction in [0, 1).
type Price struct {
	amount   decimal.Decimal
	unit     Unit
	discount decimal.Decimal
}

func NewPrice(amount decimal.Decimal, unit Unit, discount decimal.Decimal) (Price, error) {
	var c errs.Collector
	switch {
	case !amount.IsPositive():
		c.Add("amount", CodePriceAmountInvalid, "price amount must be greater than zero")
	case amount.GreaterThanOrEqual(maxPriceAmount):
		c.Add("amount", CodePriceAmountInvalid, "price amount must be less than 100000000")
	case !fitsScale(amount):
		c.Add("amount", CodePriceAmountInvalid, "price amount must have at most 4 decimal places")
	}
	if !unit.IsValid() {
		c.Add("unit", CodePriceUnitInvalid, "price unit must be per_item or per_100g")
	}
	switch {
	case discount.IsNegative() || discount.GreaterThanOrEqual(decimal.NewFromInt(1)):
		c.Add("discount", CodePriceDiscountInvalid, "discount must be at least 0 and less than 1")
	case !fitsScale(discount):
		c.Add("discount", CodePriceDiscountInvalid, "discount must have at most 4 decimal places")
	}
	if err := c.Err(); err != nil {
		return Price{}, err
	}
	return Price{amount: amount, unit: unit, discount: discount}, nil
}

// fitsScale ignores trailing zeros, so "8.00000" fits.
func fitsScale(d decimal.Decimal) bool {
	return d.Equal(d.Truncate(PriceScale))
}

func (p Price) Amount() decimal.Decimal   { return p.amount }
func (p Price) Unit() Unit                { return p.unit }
func (p Price) Discount() decimal.Decimal { return p.discount }

func (p Price) FinalAmount() decimal.Decimal {
	return p.amount.Mul(decimal.NewFromInt(1).Sub(p.discount))
}

func (p Price) Equal(other Price) bool {
	return p.unit == other.unit && p.amount.Equal(other.amount) && p.discount.Equal(other.discount)
}

// ReconstructPrice rebuilds a stored price without validation.
func ReconstructPrice(amount decimal.Decimal, unit Unit, discount decimal.Decimal) Price {
	return Price{amount: amount, unit: unit, discount: discount}
}
