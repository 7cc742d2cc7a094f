package storeorder

import (
	"errors"
	"fmt"

	"marketplace/internal/pkg/errs"
)

// ErrInvalidTransition is the sentinel wrapped by every InvalidTransitionError.
// Callers classify transition guard failures with errors.Is against it.
var ErrInvalidTransition = errors.New("invalid status transition")

// Status represents the lifecycle state of a store order.
// It implements a state machine with an explicit transition table to ensure
// store orders follow the fulfillment workflow.
//
// State transitions:
//
//	pending ──┬──> accepted ──> paid ──> out_for_delivery ──> delivered
//	          ├──> rejected
//	          └──> cancelled
//
// rejected, delivered, and cancelled are terminal. Status is a value object
// that validates state transitions and provides string representations for
// persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when a store order is created at checkout.
	// Store orders in this status are waiting for the store to accept or reject.
	Pending

	// Accepted indicates the store agreed to fulfill the order and set a
	// delivery fee. The order waits for the buyer's payment.
	Accepted

	// Rejected indicates the store declined the order. Terminal.
	Rejected

	// Paid indicates the buyer paid for the order and a delivery code
	// was issued.
	Paid

	// OutForDelivery indicates the store handed the order to delivery.
	OutForDelivery

	// Delivered indicates the buyer confirmed receipt with the delivery
	// code. Terminal.
	Delivered

	// Cancelled indicates the buyer withdrew the order before the store
	// acted on it. Terminal.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
// The strings are also the persisted enum values.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "unknown",
		Pending:        "pending",
		Accepted:       "accepted",
		Rejected:       "rejected",
		Paid:           "paid",
		OutForDelivery: "out_for_delivery",
		Delivered:      "delivered",
		Cancelled:      "cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation and restoration
// from persistence.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:        "pending",
		Accepted:       "accepted",
		Rejected:       "rejected",
		Paid:           "paid",
		OutForDelivery: "out_for_delivery",
		Delivered:      "delivered",
		Cancelled:      "cancelled",
	}
}

// getTransitionTable returns the exhaustive set of legal transitions.
// A status absent from the table (or an empty target set) is terminal.
// There are no hidden auto-transitions: every edge here corresponds to
// exactly one operation on the StoreOrder aggregate.
func getTransitionTable() map[Status]map[Status]bool {
	return map[Status]map[Status]bool{
		Pending: {
			Accepted:  true,
			Rejected:  true,
			Cancelled: true,
		},
		Accepted: {
			Paid: true,
		},
		Paid: {
			OutForDelivery: true,
		},
		OutForDelivery: {
			Delivered: true,
		},
	}
}

// StatusFromString restores a Status from its persisted string value.
// Returns an error for strings that do not name a valid status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
// Unknown (0) and any other values outside the enumeration are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the persisted name of the status.
// Returns "unknown" for invalid status values. Implements fmt.Stringer
// and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no transition leaves this status.
func (s Status) IsTerminal() bool {
	return len(getTransitionTable()[s]) == 0
}

// CanTransitionTo reports whether the transition table permits moving
// from the current status to target.
func (s Status) CanTransitionTo(target Status) bool {
	return getTransitionTable()[s][target]
}

// TransitionTo performs a guarded transition to the target status.
//
// Returns:
//   - (target, nil) when the transition table permits the move
//   - (0, *InvalidTransitionError) otherwise, leaving the caller's state untouched
//
// This method is the single gate every StoreOrder operation goes through,
// so the transition table in this file is the complete workflow definition.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return 0, err
	}
	if !s.CanTransitionTo(target) {
		return 0, NewInvalidTransitionError(s, target)
	}
	return target, nil
}

// InvalidTransitionError reports an attempted operation that is illegal
// for the current status. The store order is left unchanged.
type InvalidTransitionError struct {
	From Status
	To   Status
}

// NewInvalidTransitionError creates an InvalidTransitionError for the given edge.
func NewInvalidTransitionError(from, to Status) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrInvalidTransition, e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}
