package queries

import (
	"context"
	"database/sql"

	"marketplace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetBuyerOrdersQueryHandler retrieves a buyer's order history from the
// database. One joined query feeds both the order rows and their nested
// store order parts; assembly happens in memory keyed on the order id.
type GetBuyerOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetBuyerOrdersQueryHandler creates a handler for buyer order history queries.
func NewGetBuyerOrdersQueryHandler(db *gorm.DB) GetBuyerOrdersQueryHandler {
	return GetBuyerOrdersQueryHandler{db: db}
}

// Handle executes the query. Orders come back newest first; store orders
// within an order keep their creation order.
func (h GetBuyerOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetBuyerOrdersQuery,
) ([]GetBuyerOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.number,
			o.items_total,
			o.shipping_total,
			o.platform_fee,
			o.grand_total,
			o.created_at,
			so.id,
			so.store_id,
			so.status,
			so.subtotal,
			so.delivery_fee,
			so.total,
			so.delivery_code
		FROM orders o
		JOIN store_orders so ON so.order_id = o.id
		WHERE o.buyer_id = ?
		ORDER BY o.created_at DESC, so.created_at ASC
	`, query.BuyerID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	responses := make([]GetBuyerOrdersQueryResponse, 0)
	indexByOrder := make(map[uuid.UUID]int)

	for rows.Next() {
		var orderID, storeOrderID, storeID uuid.UUID
		var number, status string
		var itemsTotal, shippingTotal, platformFee, grandTotal decimal.Decimal
		var subtotal, deliveryFee, total decimal.Decimal
		var createdAt sql.NullTime
		var deliveryCode sql.NullString

		if err = rows.Scan(
			&orderID,
			&number,
			&itemsTotal,
			&shippingTotal,
			&platformFee,
			&grandTotal,
			&createdAt,
			&storeOrderID,
			&storeID,
			&status,
			&subtotal,
			&deliveryFee,
			&total,
			&deliveryCode,
		); err != nil {
			return nil, err
		}

		idx, seen := indexByOrder[orderID]
		if !seen {
			id, idErr := kernel.UUIDFromBytes(orderID[:])
			if idErr != nil {
				return nil, idErr
			}
			responses = append(responses, GetBuyerOrdersQueryResponse{
				ID:            id,
				Number:        number,
				ItemsTotal:    itemsTotal.StringFixed(2),
				ShippingTotal: shippingTotal.StringFixed(2),
				PlatformFee:   platformFee.StringFixed(2),
				GrandTotal:    grandTotal.StringFixed(2),
				CreatedAt:     createdAt.Time,
				StoreOrders:   make([]BuyerStoreOrderResponse, 0),
			})
			idx = len(responses) - 1
			indexByOrder[orderID] = idx
		}

		part := BuyerStoreOrderResponse{
			Status:      status,
			Subtotal:    subtotal.StringFixed(2),
			DeliveryFee: deliveryFee.StringFixed(2),
			Total:       total.StringFixed(2),
		}
		if part.ID, err = kernel.UUIDFromBytes(storeOrderID[:]); err != nil {
			return nil, err
		}
		if part.StoreID, err = kernel.UUIDFromBytes(storeID[:]); err != nil {
			return nil, err
		}
		if deliveryCode.Valid {
			code := deliveryCode.String
			part.DeliveryCode = &code
		}

		responses[idx].StoreOrders = append(responses[idx].StoreOrders, part)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return responses, nil
}
