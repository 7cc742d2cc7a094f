package storeorder

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

var (
	// ErrStoreOrderIsNotConstructed is returned when a StoreOrder instance was not
	// created through NewStoreOrder or RestoreStoreOrder. This ensures all store
	// orders are properly validated.
	ErrStoreOrderIsNotConstructed = errors.New("StoreOrder must be created via NewStoreOrder constructor")
)

// StoreOrder is the portion of a buyer's order fulfilled by one store.
// It is the aggregate root for the fulfillment workflow and the unit of
// mutual exclusion: all transitions on a store order are serialized by a
// row lock held for the duration of the surrounding transaction.
//
// StoreOrder maintains these invariants:
//   - total = subtotal + delivery fee after every successful transition
//   - status moves only along the edges of the transition table in status.go
//   - the delivery code exists only from the paid status onward and is
//     exclusively owned by this store order
//   - order items are immutable after construction
//
// Every transition method leaves the aggregate untouched when its guard
// fails, so a failed call never requires a reload.
type StoreOrder struct {
	id      kernel.UUID
	orderID kernel.UUID
	storeID kernel.UUID

	status      Status
	subtotal    kernel.Money
	deliveryFee kernel.Money
	total       kernel.Money

	deliveryCode          *DeliveryCode
	estimatedDeliveryDate *time.Time
	deliveryMethod        string
	deliveryNotes         string
	rejectionReason       string
	cancellationReason    string
	deliveredAt           *time.Time
	createdAt             time.Time

	items []OrderItem

	isConstructed bool
}

// NewStoreOrder creates a pending store order from the buyer's cart lines for
// one store. The subtotal is the sum of item line totals; the delivery fee is
// zero until the store accepts, so total starts equal to subtotal.
func NewStoreOrder(
	id kernel.UUID,
	orderID kernel.UUID,
	storeID kernel.UUID,
	items []OrderItem,
	createdAt time.Time,
) (*StoreOrder, error) {
	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		storeID.Validate(),
	); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, errs.NewValueIsRequiredError("order items")
	}

	subtotal := kernel.ZeroMoney()
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
		subtotal = subtotal.Add(item.LineTotal())
	}

	return &StoreOrder{
		id:            id,
		orderID:       orderID,
		storeID:       storeID,
		status:        Pending,
		subtotal:      subtotal,
		deliveryFee:   kernel.ZeroMoney(),
		total:         subtotal,
		createdAt:     createdAt,
		items:         items,
		isConstructed: true,
	}, nil
}

// RestoreStoreOrder reconstructs a store order from persistence without
// running transition guards. The stored total must still satisfy
// total = subtotal + delivery fee.
func RestoreStoreOrder(
	id kernel.UUID,
	orderID kernel.UUID,
	storeID kernel.UUID,
	status Status,
	subtotal kernel.Money,
	deliveryFee kernel.Money,
	total kernel.Money,
	deliveryCode *DeliveryCode,
	estimatedDeliveryDate *time.Time,
	deliveryMethod string,
	deliveryNotes string,
	rejectionReason string,
	cancellationReason string,
	deliveredAt *time.Time,
	createdAt time.Time,
	items []OrderItem,
) (*StoreOrder, error) {
	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		storeID.Validate(),
		status.Validate(),
		subtotal.Validate(),
		deliveryFee.Validate(),
		total.Validate(),
	); err != nil {
		return nil, err
	}
	if !total.IsEqual(subtotal.Add(deliveryFee)) {
		return nil, errs.NewValueIsInvalidError("total does not equal subtotal plus delivery fee")
	}
	if deliveryCode != nil {
		if err := deliveryCode.Validate(); err != nil {
			return nil, err
		}
	}

	return &StoreOrder{
		id:                    id,
		orderID:               orderID,
		storeID:               storeID,
		status:                status,
		subtotal:              subtotal,
		deliveryFee:           deliveryFee,
		total:                 total,
		deliveryCode:          deliveryCode,
		estimatedDeliveryDate: estimatedDeliveryDate,
		deliveryMethod:        deliveryMethod,
		deliveryNotes:         deliveryNotes,
		rejectionReason:       rejectionReason,
		cancellationReason:    cancellationReason,
		deliveredAt:           deliveredAt,
		createdAt:             createdAt,
		items:                 items,
		isConstructed:         true,
	}, nil
}

// Validate ensures the StoreOrder instance was properly constructed.
// Call when reconstructing store orders from persistence.
func (s *StoreOrder) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrStoreOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two store orders by their unique identifiers.
func (s *StoreOrder) IsEqual(other *StoreOrder) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ID returns the store order's unique identifier.
func (s *StoreOrder) ID() kernel.UUID {
	return s.id
}

// OrderID returns the identifier of the parent buyer order.
func (s *StoreOrder) OrderID() kernel.UUID {
	return s.orderID
}

// StoreID returns the identifier of the fulfilling store.
func (s *StoreOrder) StoreID() kernel.UUID {
	return s.storeID
}

// Status returns the current workflow status.
func (s *StoreOrder) Status() Status {
	return s.status
}

// Subtotal returns the sum of item line totals.
func (s *StoreOrder) Subtotal() kernel.Money {
	return s.subtotal
}

// DeliveryFee returns the fee set by the store at acceptance (zero before).
func (s *StoreOrder) DeliveryFee() kernel.Money {
	return s.deliveryFee
}

// Total returns subtotal + delivery fee.
func (s *StoreOrder) Total() kernel.Money {
	return s.total
}

// DeliveryCode returns the issued delivery code, or nil before payment.
func (s *StoreOrder) DeliveryCode() *DeliveryCode {
	return s.deliveryCode
}

// EstimatedDeliveryDate returns the date promised by the store, if any.
func (s *StoreOrder) EstimatedDeliveryDate() *time.Time {
	return s.estimatedDeliveryDate
}

// DeliveryMethod returns the delivery method chosen by the store.
func (s *StoreOrder) DeliveryMethod() string {
	return s.deliveryMethod
}

// DeliveryNotes returns free-form notes the store attached at acceptance.
func (s *StoreOrder) DeliveryNotes() string {
	return s.deliveryNotes
}

// RejectionReason returns the reason given by the store, if rejected.
func (s *StoreOrder) RejectionReason() string {
	return s.rejectionReason
}

// CancellationReason returns the reason given by the buyer, if cancelled.
func (s *StoreOrder) CancellationReason() string {
	return s.cancellationReason
}

// DeliveredAt returns the delivery confirmation timestamp, if delivered.
func (s *StoreOrder) DeliveredAt() *time.Time {
	return s.deliveredAt
}

// CreatedAt returns the checkout timestamp.
func (s *StoreOrder) CreatedAt() time.Time {
	return s.createdAt
}

// Items returns the order items. The returned slice must not be mutated.
func (s *StoreOrder) Items() []OrderItem {
	return s.items
}

// Accept transitions the store order from pending to accepted.
//
// The store sets the delivery fee (non-negative by Money construction) and
// may attach an estimated delivery date, method, and notes. The total is
// recomputed as subtotal + delivery fee.
func (s *StoreOrder) Accept(
	deliveryFee kernel.Money,
	estimatedDeliveryDate *time.Time,
	deliveryMethod string,
	deliveryNotes string,
) error {
	if err := deliveryFee.Validate(); err != nil {
		return err
	}

	newStatus, err := s.status.TransitionTo(Accepted)
	if err != nil {
		return err
	}

	s.status = newStatus
	s.deliveryFee = deliveryFee
	s.total = s.subtotal.Add(deliveryFee)
	s.estimatedDeliveryDate = estimatedDeliveryDate
	s.deliveryMethod = deliveryMethod
	s.deliveryNotes = deliveryNotes
	return nil
}

// Reject transitions the store order from pending to rejected.
// The reason must not be empty. The parent order's aggregate totals lose
// this store order's contribution; that recomputation belongs to the
// command handler, which holds both aggregates in one transaction.
func (s *StoreOrder) Reject(reason string) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("rejection reason")
	}

	newStatus, err := s.status.TransitionTo(Rejected)
	if err != nil {
		return err
	}

	s.status = newStatus
	s.rejectionReason = reason
	return nil
}

// Cancel transitions the store order from pending to cancelled.
// This is the buyer-side withdrawal; the reason is optional.
func (s *StoreOrder) Cancel(reason string) error {
	newStatus, err := s.status.TransitionTo(Cancelled)
	if err != nil {
		return err
	}

	s.status = newStatus
	s.cancellationReason = reason
	return nil
}

// MarkPaid transitions the store order from accepted to paid and records the
// delivery code issued for this order. The caller is responsible for charging
// the buyer in the same transaction so a failed debit rolls this back.
func (s *StoreOrder) MarkPaid(code DeliveryCode) error {
	if err := code.Validate(); err != nil {
		return err
	}

	newStatus, err := s.status.TransitionTo(Paid)
	if err != nil {
		return err
	}

	s.status = newStatus
	s.deliveryCode = &code
	return nil
}

// StartDelivery transitions the store order from paid to out_for_delivery.
// Calling it again is an invalid transition, not a silent no-op.
func (s *StoreOrder) StartDelivery() error {
	newStatus, err := s.status.TransitionTo(OutForDelivery)
	if err != nil {
		return err
	}

	s.status = newStatus
	return nil
}

// CompleteDelivery transitions the store order from out_for_delivery to
// delivered when the presented OTP exactly matches the issued delivery code.
//
// A wrong OTP returns ErrInvalidDeliveryCode and leaves the status (and the
// stored code) unchanged; there is no attempt counter or lockout. The code is
// retained after delivery for audit.
func (s *StoreOrder) CompleteDelivery(otp string, deliveredAt time.Time) error {
	newStatus, err := s.status.TransitionTo(Delivered)
	if err != nil {
		return err
	}

	if s.deliveryCode == nil || !s.deliveryCode.Matches(otp) {
		return ErrInvalidDeliveryCode
	}

	s.status = newStatus
	s.deliveredAt = &deliveredAt
	return nil
}
