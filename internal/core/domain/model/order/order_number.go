package order

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"

	"marketplace/internal/pkg/errs"
)

// orderNumberPrefix is the human-readable prefix for all order numbers.
const orderNumberPrefix = "ORD-"

// orderNumberDigits is the number of random digits after the prefix.
const orderNumberDigits = 10

// OrderNumber is the human-readable identifier printed on receipts and
// shown to buyers and stores, e.g. "ORD-4829130057". It is distinct from
// the order's UUID, which stays internal.
type OrderNumber struct {
	value string
}

// GenerateOrderNumber creates a new random order number.
func GenerateOrderNumber() (OrderNumber, error) {
	limit := new(big.Int).Exp(big.NewInt(10), big.NewInt(orderNumberDigits), nil)
	n, err := rand.Int(rand.Reader, limit)
	if err != nil {
		return OrderNumber{}, fmt.Errorf("generate order number: %w", err)
	}

	return OrderNumber{value: fmt.Sprintf("%s%0*d", orderNumberPrefix, orderNumberDigits, n)}, nil
}

// OrderNumberFromString restores an order number from persistence.
func OrderNumberFromString(s string) (OrderNumber, error) {
	if !strings.HasPrefix(s, orderNumberPrefix) || len(s) != len(orderNumberPrefix)+orderNumberDigits {
		return OrderNumber{}, errs.NewValueIsInvalidErrorWithCause(
			"order number",
			fmt.Errorf("%q is not a valid order number", s),
		)
	}
	return OrderNumber{value: s}, nil
}

// String returns the order number, e.g. "ORD-4829130057".
func (n OrderNumber) String() string {
	return n.value
}

// Validate checks if the order number is properly constructed.
func (n OrderNumber) Validate() error {
	if n.value == "" {
		return errs.NewValueIsRequiredError("order number")
	}
	return nil
}
