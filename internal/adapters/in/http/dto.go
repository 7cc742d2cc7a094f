package http

import (
	"time"

	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/services"
)

// Request bodies.

type checkoutRequest struct {
	BuyerID string            `json:"buyer_id"`
	Lines   []cartLineRequest `json:"lines"`
}

type cartLineRequest struct {
	StoreID     string  `json:"store_id"`
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	SKU         string  `json:"sku"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
}

type acceptRequest struct {
	StoreID               string     `json:"store_id"`
	DeliveryFee           float64    `json:"delivery_fee"`
	EstimatedDeliveryDate *time.Time `json:"estimated_delivery_date,omitempty"`
	DeliveryMethod        string     `json:"delivery_method,omitempty"`
	DeliveryNotes         string     `json:"delivery_notes,omitempty"`
}

type rejectRequest struct {
	StoreID string `json:"store_id"`
	Reason  string `json:"reason"`
}

type cancelRequest struct {
	BuyerID string `json:"buyer_id"`
	Reason  string `json:"reason,omitempty"`
}

type payRequest struct {
	BuyerID string `json:"buyer_id"`
}

type outForDeliveryRequest struct {
	StoreID string `json:"store_id"`
}

type deliverRequest struct {
	StoreID      string `json:"store_id"`
	DeliveryCode string `json:"delivery_code"`
}

type topUpRequest struct {
	Amount float64 `json:"amount"`
}

// Response bodies.

type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type checkoutResponse struct {
	OrderID       string                   `json:"order_id"`
	Number        string                   `json:"number"`
	ItemsTotal    string                   `json:"items_total"`
	ShippingTotal string                   `json:"shipping_total"`
	PlatformFee   string                   `json:"platform_fee"`
	GrandTotal    string                   `json:"grand_total"`
	StoreOrders   []checkoutStoreOrderRepr `json:"store_orders"`
}

type checkoutStoreOrderRepr struct {
	ID       string `json:"id"`
	StoreID  string `json:"store_id"`
	Status   string `json:"status"`
	Subtotal string `json:"subtotal"`
}

func checkoutResponseFrom(result *services.CheckoutResult) checkoutResponse {
	storeOrders := make([]checkoutStoreOrderRepr, 0, len(result.StoreOrders))
	for _, so := range result.StoreOrders {
		storeOrders = append(storeOrders, checkoutStoreOrderRepr{
			ID:       so.ID().String(),
			StoreID:  so.StoreID().String(),
			Status:   so.Status().String(),
			Subtotal: so.Subtotal().String(),
		})
	}

	return checkoutResponse{
		OrderID:       result.Order.ID().String(),
		Number:        result.Order.Number().String(),
		ItemsTotal:    result.Order.ItemsTotal().String(),
		ShippingTotal: result.Order.ShippingTotal().String(),
		PlatformFee:   result.Order.PlatformFee().String(),
		GrandTotal:    result.Order.GrandTotal().String(),
		StoreOrders:   storeOrders,
	}
}

type storeOrderListItem struct {
	ID          string    `json:"id"`
	OrderID     string    `json:"order_id"`
	OrderNumber string    `json:"order_number"`
	Status      string    `json:"status"`
	Subtotal    string    `json:"subtotal"`
	DeliveryFee string    `json:"delivery_fee"`
	Total       string    `json:"total"`
	CreatedAt   time.Time `json:"created_at"`
}

func storeOrderListFrom(rows []queries.GetStoreOrdersQueryResponse) []storeOrderListItem {
	items := make([]storeOrderListItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, storeOrderListItem{
			ID:          row.ID.String(),
			OrderID:     row.OrderID.String(),
			OrderNumber: row.OrderNumber,
			Status:      row.Status,
			Subtotal:    row.Subtotal,
			DeliveryFee: row.DeliveryFee,
			Total:       row.Total,
			CreatedAt:   row.CreatedAt,
		})
	}
	return items
}

type buyerOrderListItem struct {
	ID            string                `json:"id"`
	Number        string                `json:"number"`
	ItemsTotal    string                `json:"items_total"`
	ShippingTotal string                `json:"shipping_total"`
	PlatformFee   string                `json:"platform_fee"`
	GrandTotal    string                `json:"grand_total"`
	CreatedAt     time.Time             `json:"created_at"`
	StoreOrders   []buyerStoreOrderRepr `json:"store_orders"`
}

type buyerStoreOrderRepr struct {
	ID           string  `json:"id"`
	StoreID      string  `json:"store_id"`
	Status       string  `json:"status"`
	Subtotal     string  `json:"subtotal"`
	DeliveryFee  string  `json:"delivery_fee"`
	Total        string  `json:"total"`
	DeliveryCode *string `json:"delivery_code,omitempty"`
}

func buyerOrderListFrom(rows []queries.GetBuyerOrdersQueryResponse) []buyerOrderListItem {
	items := make([]buyerOrderListItem, 0, len(rows))
	for _, row := range rows {
		storeOrders := make([]buyerStoreOrderRepr, 0, len(row.StoreOrders))
		for _, part := range row.StoreOrders {
			storeOrders = append(storeOrders, buyerStoreOrderRepr{
				ID:           part.ID.String(),
				StoreID:      part.StoreID.String(),
				Status:       part.Status,
				Subtotal:     part.Subtotal,
				DeliveryFee:  part.DeliveryFee,
				Total:        part.Total,
				DeliveryCode: part.DeliveryCode,
			})
		}
		items = append(items, buyerOrderListItem{
			ID:            row.ID.String(),
			Number:        row.Number,
			ItemsTotal:    row.ItemsTotal,
			ShippingTotal: row.ShippingTotal,
			PlatformFee:   row.PlatformFee,
			GrandTotal:    row.GrandTotal,
			CreatedAt:     row.CreatedAt,
			StoreOrders:   storeOrders,
		})
	}
	return items
}
