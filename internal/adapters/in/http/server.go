package http

import (
	"errors"
	"net/http"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/storeorder"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server handles the HTTP API. It coordinates between HTTP handlers and
// application use cases; all business rules live behind the handlers.
type Server struct {
	// Command handlers
	placeOrderHandler         commands.PlaceOrderCommandHandler
	acceptStoreOrderHandler   commands.AcceptStoreOrderCommandHandler
	rejectStoreOrderHandler   commands.RejectStoreOrderCommandHandler
	cancelStoreOrderHandler   commands.CancelStoreOrderCommandHandler
	payStoreOrderHandler      commands.PayStoreOrderCommandHandler
	markOutForDeliveryHandler commands.MarkOutForDeliveryCommandHandler
	markDeliveredHandler      commands.MarkDeliveredCommandHandler
	topUpWalletHandler        commands.TopUpWalletCommandHandler

	// Query handlers
	getStoreOrdersHandler queries.GetStoreOrdersQueryHandler
	getBuyerOrdersHandler queries.GetBuyerOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	placeOrderHandler commands.PlaceOrderCommandHandler,
	acceptStoreOrderHandler commands.AcceptStoreOrderCommandHandler,
	rejectStoreOrderHandler commands.RejectStoreOrderCommandHandler,
	cancelStoreOrderHandler commands.CancelStoreOrderCommandHandler,
	payStoreOrderHandler commands.PayStoreOrderCommandHandler,
	markOutForDeliveryHandler commands.MarkOutForDeliveryCommandHandler,
	markDeliveredHandler commands.MarkDeliveredCommandHandler,
	topUpWalletHandler commands.TopUpWalletCommandHandler,
	getStoreOrdersHandler queries.GetStoreOrdersQueryHandler,
	getBuyerOrdersHandler queries.GetBuyerOrdersQueryHandler,
) *Server {
	return &Server{
		placeOrderHandler:         placeOrderHandler,
		acceptStoreOrderHandler:   acceptStoreOrderHandler,
		rejectStoreOrderHandler:   rejectStoreOrderHandler,
		cancelStoreOrderHandler:   cancelStoreOrderHandler,
		payStoreOrderHandler:      payStoreOrderHandler,
		markOutForDeliveryHandler: markOutForDeliveryHandler,
		markDeliveredHandler:      markDeliveredHandler,
		topUpWalletHandler:        topUpWalletHandler,
		getStoreOrdersHandler:     getStoreOrdersHandler,
		getBuyerOrdersHandler:     getBuyerOrdersHandler,
	}
}

// RegisterRoutes attaches every API route to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.PlaceOrder)

	api.POST("/store-orders/:id/accept", s.AcceptStoreOrder)
	api.POST("/store-orders/:id/reject", s.RejectStoreOrder)
	api.POST("/store-orders/:id/cancel", s.CancelStoreOrder)
	api.POST("/store-orders/:id/pay", s.PayStoreOrder)
	api.POST("/store-orders/:id/out-for-delivery", s.MarkOutForDelivery)
	api.POST("/store-orders/:id/deliver", s.MarkDelivered)

	api.GET("/stores/:storeId/orders", s.GetStoreOrders)
	api.GET("/buyers/:buyerId/orders", s.GetBuyerOrders)

	api.POST("/wallets/:buyerId/top-up", s.TopUpWallet)
}

// errorJSON maps a use case error to its HTTP status and writes the
// error body. The mapping is the API's whole error contract:
//
//	not found               -> 404
//	illegal state change    -> 409
//	payment failed          -> 402
//	wrong delivery code     -> 422
//	invalid input           -> 400
//	anything else           -> 500
func errorJSON(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, storeorder.ErrInvalidTransition):
		code = http.StatusConflict
	case errors.Is(err, commands.ErrPaymentFailed):
		code = http.StatusPaymentRequired
	case errors.Is(err, storeorder.ErrInvalidDeliveryCode):
		code = http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, services.ErrEmptyCart):
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, errorResponse{
		Code:    code,
		Message: err.Error(),
	})
}

func badRequestJSON(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, errorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// PlaceOrder handles POST /api/v1/orders - checkout, splitting the cart
// into one store order per store.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var req checkoutRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequestJSON(ctx, "Invalid request body")
	}

	buyerID, err := kernel.UUIDFromString(req.BuyerID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	lines := make([]services.CartLine, 0, len(req.Lines))
	for _, line := range req.Lines {
		storeID, lineErr := kernel.UUIDFromString(line.StoreID)
		if lineErr != nil {
			return errorJSON(ctx, lineErr)
		}
		productID, lineErr := kernel.UUIDFromString(line.ProductID)
		if lineErr != nil {
			return errorJSON(ctx, lineErr)
		}
		unitPrice, lineErr := kernel.MoneyFromFloat(line.UnitPrice)
		if lineErr != nil {
			return errorJSON(ctx, lineErr)
		}

		lines = append(lines, services.CartLine{
			StoreID:     storeID,
			ProductID:   productID,
			ProductName: line.ProductName,
			SKU:         line.SKU,
			Quantity:    line.Quantity,
			UnitPrice:   unitPrice,
		})
	}

	cmd, err := commands.NewPlaceOrderCommand(buyerID, lines)
	if err != nil {
		return errorJSON(ctx, err)
	}

	result, err := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, checkoutResponseFrom(result))
}

// AcceptStoreOrder handles POST /api/v1/store-orders/:id/accept.
func (s *Server) AcceptStoreOrder(ctx echo.Context) error {
	storeOrderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, err)
	}

	var req acceptRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequestJSON(ctx, "Invalid request body")
	}

	storeID, err := kernel.UUIDFromString(req.StoreID)
	if err != nil {
		return errorJSON(ctx, err)
	}
	deliveryFee, err := kernel.MoneyFromFloat(req.DeliveryFee)
	if err != nil {
		return errorJSON(ctx, err)
	}

	cmd, err := commands.NewAcceptStoreOrderCommand(
		storeOrderID,
		storeID,
		deliveryFee,
		req.EstimatedDeliveryDate,
		req.DeliveryMethod,
		req.DeliveryNotes,
	)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err := s.acceptStoreOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RejectStoreOrder handles POST /api/v1/store-orders/:id/reject.
func (s *Server) RejectStoreOrder(ctx echo.Context) error {
	storeOrderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, err)
	}

	var req rejectRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequestJSON(ctx, "Invalid request body")
	}

	storeID, err := kernel.UUIDFromString(req.StoreID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	cmd, err := commands.NewRejectStoreOrderCommand(storeOrderID, storeID, req.Reason)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err := s.rejectStoreOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelStoreOrder handles POST /api/v1/store-orders/:id/cancel.
func (s *Server) CancelStoreOrder(ctx echo.Context) error {
	storeOrderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, err)
	}

	var req cancelRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequestJSON(ctx, "Invalid request body")
	}

	buyerID, err := kernel.UUIDFromString(req.BuyerID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	cmd, err := commands.NewCancelStoreOrderCommand(storeOrderID, buyerID, req.Reason)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err := s.cancelStoreOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// PayStoreOrder handles POST /api/v1/store-orders/:id/pay.
func (s *Server) PayStoreOrder(ctx echo.Context) error {
	storeOrderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, err)
	}

	var req payRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequestJSON(ctx, "Invalid request body")
	}

	buyerID, err := kernel.UUIDFromString(req.BuyerID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	cmd, err := commands.NewPayStoreOrderCommand(storeOrderID, buyerID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err := s.payStoreOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// MarkOutForDelivery handles POST /api/v1/store-orders/:id/out-for-delivery.
func (s *Server) MarkOutForDelivery(ctx echo.Context) error {
	storeOrderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, err)
	}

	var req outForDeliveryRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequestJSON(ctx, "Invalid request body")
	}

	storeID, err := kernel.UUIDFromString(req.StoreID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	cmd, err := commands.NewMarkOutForDeliveryCommand(storeOrderID, storeID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err := s.markOutForDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// MarkDelivered handles POST /api/v1/store-orders/:id/deliver - the courier
// confirms handover with the code the buyer reads out.
func (s *Server) MarkDelivered(ctx echo.Context) error {
	storeOrderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, err)
	}

	var req deliverRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequestJSON(ctx, "Invalid request body")
	}

	storeID, err := kernel.UUIDFromString(req.StoreID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	cmd, err := commands.NewMarkDeliveredCommand(storeOrderID, storeID, req.DeliveryCode)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err := s.markDeliveredHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// TopUpWallet handles POST /api/v1/wallets/:buyerId/top-up.
func (s *Server) TopUpWallet(ctx echo.Context) error {
	buyerID, err := kernel.UUIDFromString(ctx.Param("buyerId"))
	if err != nil {
		return errorJSON(ctx, err)
	}

	var req topUpRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequestJSON(ctx, "Invalid request body")
	}

	amount, err := kernel.MoneyFromFloat(req.Amount)
	if err != nil {
		return errorJSON(ctx, err)
	}

	cmd, err := commands.NewTopUpWalletCommand(buyerID, amount)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err := s.topUpWalletHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetStoreOrders handles GET /api/v1/stores/:storeId/orders - lists a
// store's orders, optionally filtered with ?status=.
func (s *Server) GetStoreOrders(ctx echo.Context) error {
	storeID, err := kernel.UUIDFromString(ctx.Param("storeId"))
	if err != nil {
		return errorJSON(ctx, err)
	}

	var statusFilter *storeorder.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		status, parseErr := storeorder.StatusFromString(raw)
		if parseErr != nil {
			return errorJSON(ctx, parseErr)
		}
		statusFilter = &status
	}

	query, err := queries.NewGetStoreOrdersQuery(storeID, statusFilter)
	if err != nil {
		return errorJSON(ctx, err)
	}

	rows, err := s.getStoreOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, storeOrderListFrom(rows))
}

// GetBuyerOrders handles GET /api/v1/buyers/:buyerId/orders - lists a
// buyer's orders with their store order parts.
func (s *Server) GetBuyerOrders(ctx echo.Context) error {
	buyerID, err := kernel.UUIDFromString(ctx.Param("buyerId"))
	if err != nil {
		return errorJSON(ctx, err)
	}

	query, err := queries.NewGetBuyerOrdersQuery(buyerID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	rows, err := s.getBuyerOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, buyerOrderListFrom(rows))
}
