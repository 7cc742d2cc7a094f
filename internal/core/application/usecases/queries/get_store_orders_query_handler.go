package queries

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetStoreOrdersQueryHandler retrieves a store's order list from the
// database. Uses direct SQL for optimal read performance in the CQRS
// pattern; the delivery code column is deliberately never selected here,
// a store must not be able to read it.
type GetStoreOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetStoreOrdersQueryHandler creates a handler for store order list queries.
func NewGetStoreOrdersQueryHandler(db *gorm.DB) GetStoreOrdersQueryHandler {
	return GetStoreOrdersQueryHandler{db: db}
}

// Handle executes the query. Rows come back newest first.
func (h GetStoreOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetStoreOrdersQuery,
) ([]GetStoreOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			so.id,
			so.order_id,
			o.number,
			so.status,
			so.subtotal,
			so.delivery_fee,
			so.total,
			so.created_at
		FROM store_orders so
		JOIN orders o ON o.id = so.order_id
		WHERE so.store_id = ?
	`
	args := []any{query.StoreID().Bytes()}

	if query.Status() != nil {
		sql += " AND so.status = ?"
		args = append(args, query.Status().String())
	}
	sql += " ORDER BY so.created_at DESC"

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	responses := make([]GetStoreOrdersQueryResponse, 0)
	for rows.Next() {
		var response GetStoreOrdersQueryResponse
		var id, orderID uuid.UUID
		var subtotal, deliveryFee, total decimal.Decimal

		if err = rows.Scan(
			&id,
			&orderID,
			&response.OrderNumber,
			&response.Status,
			&subtotal,
			&deliveryFee,
			&total,
			&response.CreatedAt,
		); err != nil {
			return nil, err
		}

		if response.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if response.OrderID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
			return nil, err
		}
		response.Subtotal = subtotal.StringFixed(2)
		response.DeliveryFee = deliveryFee.StringFixed(2)
		response.Total = total.StringFixed(2)

		responses = append(responses, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return responses, nil
}
