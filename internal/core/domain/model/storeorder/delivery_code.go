package storeorder

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"

	"marketplace/internal/pkg/errs"
)

// ErrInvalidDeliveryCode indicates that a presented OTP does not match the
// delivery code issued for the store order. The status is left unchanged.
var ErrInvalidDeliveryCode = errors.New("invalid delivery code")

// deliveryCodeLength is the fixed number of digits in a delivery code.
const deliveryCodeLength = 6

// DeliveryCode is the one-time confirmation token issued to the buyer when a
// store order is paid. The store's courier must present the exact code to
// complete delivery. Codes are 6-digit numeric strings with leading zeros
// preserved, compared byte for byte with no normalization.
type DeliveryCode struct {
	value string
}

// GenerateDeliveryCode creates a new random 6-digit delivery code.
// Uses crypto/rand so codes are not guessable from prior codes.
func GenerateDeliveryCode() (DeliveryCode, error) {
	limit := big.NewInt(1_000_000)
	n, err := rand.Int(rand.Reader, limit)
	if err != nil {
		return DeliveryCode{}, fmt.Errorf("generate delivery code: %w", err)
	}

	return DeliveryCode{value: fmt.Sprintf("%06d", n.Int64())}, nil
}

// DeliveryCodeFromString restores a delivery code from persistence.
// Returns an error unless the string is exactly six ASCII digits.
func DeliveryCodeFromString(s string) (DeliveryCode, error) {
	if len(s) != deliveryCodeLength {
		return DeliveryCode{}, errs.NewValueIsInvalidErrorWithCause(
			"delivery code",
			fmt.Errorf("%q is not %d characters long", s, deliveryCodeLength),
		)
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return DeliveryCode{}, errs.NewValueIsInvalidErrorWithCause(
				"delivery code",
				fmt.Errorf("%q contains a non-digit character", s),
			)
		}
	}

	return DeliveryCode{value: s}, nil
}

// String returns the 6-digit code.
func (c DeliveryCode) String() string {
	return c.value
}

// Matches reports whether the presented OTP equals the code exactly.
// No trimming, no case folding: the compare is a plain string equality.
func (c DeliveryCode) Matches(otp string) bool {
	return c.value == otp
}

// Validate checks if the delivery code is properly constructed.
func (c DeliveryCode) Validate() error {
	if c.value == "" {
		return errs.NewValueIsRequiredError("delivery code")
	}
	return nil
}
