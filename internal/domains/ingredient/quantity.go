package ingredient

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// MaxQuantity is the largest amount the store column can hold.
var MaxQuantity = decimal.RequireFromString("999999999.999")

// ValidateQuantity accepts zero and any positive amount, fractional included.
func ValidateQuantity(q decimal.Decimal) error {
	if q.IsNegative() {
		return ErrNegativeQuantity
	}
	if q.GreaterThan(MaxQuantity) {
		return ErrQuantityTooLarge
	}
	return nil
}

// NonNegativeQuantity is ValidateQuantity as an ozzo-validation rule.
var NonNegativeQuantity = quantityRule{}

type quantityRule struct{}

func (quantityRule) Validate(value interface{}) error {
	switch q := value.(type) {
	case decimal.Decimal:
		return ValidateQuantity(q)
	case *decimal.Decimal:
		if q == nil {
			return nil
		}
		return ValidateQuantity(*q)
	default:
		return fmt.Errorf("quantity must be a decimal, got %T", value)
	}
}
