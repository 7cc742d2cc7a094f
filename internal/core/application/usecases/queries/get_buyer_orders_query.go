package queries

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var (
	ErrGetBuyerOrdersQueryIsNotConstructed = errors.New(
		"GetBuyerOrdersQuery must be created via NewGetBuyerOrdersQuery constructor",
	)
)

// GetBuyerOrdersQuery retrieves a buyer's orders together with their
// per-store breakdown. This is the buyer's order history view; it is the
// one read surface where the delivery code is visible, since the buyer
// has to present it to the courier.
type GetBuyerOrdersQuery struct { //nolint:recvcheck //using for validation
	buyerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetBuyerOrdersQuery creates a query for the buyer's order history.
func NewGetBuyerOrdersQuery(buyerID kernel.UUID) (GetBuyerOrdersQuery, error) {
	query := GetBuyerOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setBuyerID(buyerID); err != nil {
		return GetBuyerOrdersQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetBuyerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetBuyerOrdersQueryIsNotConstructed)
}

// BuyerID returns the buyer whose orders are requested.
func (q GetBuyerOrdersQuery) BuyerID() kernel.UUID {
	return q.buyerID
}

func (q *GetBuyerOrdersQuery) setBuyerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	q.buyerID = id
	return nil
}

// GetBuyerOrdersQueryResponse is one order in the buyer's history with its
// per-store parts nested.
type GetBuyerOrdersQueryResponse struct {
	ID            kernel.UUID
	Number        string
	ItemsTotal    string
	ShippingTotal string
	PlatformFee   string
	GrandTotal    string
	CreatedAt     time.Time
	StoreOrders   []BuyerStoreOrderResponse
}

// BuyerStoreOrderResponse is one store's portion of a buyer order.
// DeliveryCode is nil until the store order is paid.
type BuyerStoreOrderResponse struct {
	ID           kernel.UUID
	StoreID      kernel.UUID
	Status       string
	Subtotal     string
	DeliveryFee  string
	Total        string
	DeliveryCode *string
}
