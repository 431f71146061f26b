package http

import (
	"net/http"

	"watertanker/internal/core/application/usecases/commands"
	"watertanker/internal/core/application/usecases/queries"
	"watertanker/internal/core/domain/model/kernel"
	"watertanker/internal/core/domain/model/recycling"

	"github.com/labstack/echo/v4"
)

// GetProfile handles GET /api/customers/profile.
func (s *Server) GetProfile(ctx echo.Context) error {
	customerID, err := actorID(ctx)
	if err != nil {
		return s.respondError(ctx, err)
	}

	query, err := queries.NewGetCustomerQuery(customerID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	profile, err := s.queries.GetCustomer.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, newCustomerResponse(profile))
}

// UpdateProfile handles PATCH /api/customers/profile. Only the supplied
// fields change.
func (s *Server) UpdateProfile(ctx echo.Context) error {
	customerID, err := actorID(ctx)
	if err != nil {
		return s.respondError(ctx, err)
	}

	var req updateProfileRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	hash, err := hashOptionalPassword(req.Password)
	if err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateCustomerCommand(
		customerID, req.FirstName, req.LastName, req.Address, req.ContactNumber, hash)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err = s.commands.UpdateCustomer.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOwnOrders handles GET /api/customers/orders.
func (s *Server) GetOwnOrders(ctx echo.Context) error {
	customerID, err := actorID(ctx)
	if err != nil {
		return s.respondError(ctx, err)
	}

	query, err := queries.NewGetCustomerOrdersQuery(customerID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	orders, err := s.queries.GetCustomerOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, newOrderResponses(orders))
}

// CreateOrder handles POST /api/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	customerID, err := actorID(ctx)
	if err != nil {
		return s.respondError(ctx, err)
	}

	var req createOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, customerID, req.Destination, req.WaterAmount)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err = s.commands.CreateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, idResponse{ID: orderID.String()})
}

// AcceptCharge handles POST /api/orders/:id/accept-charge. Captures the
// simulated payment and moves the order to pending payment.
func (s *Server) AcceptCharge(ctx echo.Context) error {
	customerID, err := actorID(ctx)
	if err != nil {
		return s.respondError(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req acceptChargeRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	paymentID := kernel.NewUUID()
	cmd, err := commands.NewAcceptChargeCommand(orderID, customerID, paymentID, req.TransactionRef)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err = s.commands.AcceptCharge.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, idResponse{ID: paymentID.String()})
}

// CancelOwnOrder handles POST /api/orders/:id/cancel. The ownership check
// rides on the cancellation request path; direct cancel only succeeds while
// the order is still pairing.
func (s *Server) CancelOwnOrder(ctx echo.Context) error {
	customerID, err := actorID(ctx)
	if err != nil {
		return s.respondError(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req cancelOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return s.respondError(ctx, err)
	}
	existing, err := s.queries.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}
	if !existing.CustomerID.IsEqual(customerID) {
		return s.respondError(ctx, commands.ErrOrderDoesNotBelongToCustomer)
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, req.Reason)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err = s.commands.CancelOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RequestCancellation handles POST /api/orders/:id/request-cancellation.
func (s *Server) RequestCancellation(ctx echo.Context) error {
	customerID, err := actorID(ctx)
	if err != nil {
		return s.respondError(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req cancelOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRequestCancellationCommand(orderID, customerID, req.Reason)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err = s.commands.RequestCancellation.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SubmitFeedback handles POST /api/feedback/:order_id.
func (s *Server) SubmitFeedback(ctx echo.Context) error {
	customerID, err := actorID(ctx)
	if err != nil {
		return s.respondError(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("order_id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req feedbackRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	feedbackID := kernel.NewUUID()
	cmd, err := commands.NewSubmitFeedbackCommand(feedbackID, orderID, customerID, req.Rating, req.Comment)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err = s.commands.SubmitFeedback.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, idResponse{ID: feedbackID.String()})
}

// SubmitRecycling handles POST /api/recycling.
func (s *Server) SubmitRecycling(ctx echo.Context) error {
	customerID, err := actorID(ctx)
	if err != nil {
		return s.respondError(ctx, err)
	}

	var req submitRecyclingRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	option, err := recycling.PickupOptionFromString(req.PickupOption)
	if err != nil {
		return s.respondError(ctx, err)
	}

	submissionID := kernel.NewUUID()
	cmd, err := commands.NewSubmitRecyclingCommand(
		submissionID, customerID, req.ImageURL, req.RecyclableType,
		option, req.PickupAddress, req.DropoffLocation)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err = s.commands.SubmitRecycling.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, idResponse{ID: submissionID.String()})
}

// GetOwnSubmissions handles GET /api/recycling.
func (s *Server) GetOwnSubmissions(ctx echo.Context) error {
	customerID, err := actorID(ctx)
	if err != nil {
		return s.respondError(ctx, err)
	}

	skip, limit := pageParams(ctx)
	query, err := queries.NewGetSubmissionsQuery(&customerID, nil, skip, limit)
	if err != nil {
		return s.respondError(ctx, err)
	}

	submissions, err := s.queries.GetSubmissions.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, newSubmissionResponses(submissions))
}
