// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/storeorder"
	"marketplace/internal/pkg/guard"
)

var (
	ErrGetStoreOrdersQueryIsNotConstructed = errors.New(
		"GetStoreOrdersQuery must be created via NewGetStoreOrdersQuery constructor",
	)
)

// GetStoreOrdersQuery retrieves the store orders belonging to one store,
// optionally filtered by workflow status. This is the store dashboard's
// incoming-orders view.
//
// Example:
//
//	status := storeorder.Pending
//	query, _ := NewGetStoreOrdersQuery(storeID, &status)
//	handler := NewGetStoreOrdersQueryHandler(db)
//
//	rows, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve store orders: %w", err)
//	}
type GetStoreOrdersQuery struct { //nolint:recvcheck //using for validation
	storeID kernel.UUID
	status  *storeorder.Status

	guard guard.ConstructorGuard
}

// NewGetStoreOrdersQuery creates a query for a store's orders. A nil status
// returns store orders in every status.
func NewGetStoreOrdersQuery(storeID kernel.UUID, status *storeorder.Status) (GetStoreOrdersQuery, error) {
	query := GetStoreOrdersQuery{
		status: status,
		guard:  guard.NewConstructorGuard(),
	}

	if err := query.setStoreID(storeID); err != nil {
		return GetStoreOrdersQuery{}, err
	}
	if status != nil {
		if err := status.Validate(); err != nil {
			return GetStoreOrdersQuery{}, err
		}
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetStoreOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetStoreOrdersQueryIsNotConstructed)
}

// StoreID returns the store whose orders are requested.
func (q GetStoreOrdersQuery) StoreID() kernel.UUID {
	return q.storeID
}

// Status returns the optional status filter.
func (q GetStoreOrdersQuery) Status() *storeorder.Status {
	return q.status
}

func (q *GetStoreOrdersQuery) setStoreID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	q.storeID = id
	return nil
}

// GetStoreOrdersQueryResponse is one row of the store's order list.
// Monetary fields are decimal strings with two fraction digits.
type GetStoreOrdersQueryResponse struct {
	ID          kernel.UUID
	OrderID     kernel.UUID
	OrderNumber string
	Status      string
	Subtotal    string
	DeliveryFee string
	Total       string
	CreatedAt   time.Time
}
