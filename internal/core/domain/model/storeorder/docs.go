// Package storeorder provides domain entities and business logic for the
// per-store fulfillment workflow in the marketplace. It implements the
// StoreOrder aggregate root with lifecycle management and state transitions.
//
// The package includes:
//   - StoreOrder: The aggregate root owning one store's portion of a buyer order
//   - Status: A state machine with an explicit transition table
//   - OrderItem: Immutable product lines captured at checkout
//   - DeliveryCode: The 6-digit OTP gating delivery confirmation
//
// Key business rules:
//   - Status follows pending -> accepted -> paid -> out_for_delivery -> delivered,
//     with pending also branching to rejected (store) or cancelled (buyer)
//   - total = subtotal + delivery fee holds after every successful transition
//   - The delivery code is generated at payment and required, exactly, to
//     confirm delivery
//   - Guard failures never mutate the aggregate
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package storeorder
