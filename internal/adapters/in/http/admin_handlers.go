package http

import (
	"net/http"

	"watertanker/internal/core/application/auth"
	"watertanker/internal/core/application/usecases/commands"
	"watertanker/internal/core/application/usecases/queries"
	"watertanker/internal/core/domain/model/kernel"
	"watertanker/internal/core/domain/model/order"
	"watertanker/internal/core/domain/model/recycling"

	"github.com/labstack/echo/v4"
)

// GetOrders handles GET /api/admin/orders. Accepts optional status, skip,
// and limit query parameters.
func (s *Server) GetOrders(ctx echo.Context) error {
	var statusFilter *order.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		status, err := order.StatusFromString(raw)
		if err != nil {
			return s.respondError(ctx, err)
		}
		statusFilter = &status
	}

	skip, limit := pageParams(ctx)
	query, err := queries.NewGetOrdersQuery(statusFilter, skip, limit)
	if err != nil {
		return s.respondError(ctx, err)
	}

	orders, err := s.queries.GetOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, newOrderResponses(orders))
}

// GetOrder handles GET /api/admin/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	resp, err := s.queries.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, newOrderResponse(resp))
}

// SetCharge handles PATCH /api/admin/orders/:id/set-charge.
func (s *Server) SetCharge(ctx echo.Context) error {
	staffID, err := actorID(ctx)
	if err != nil {
		return s.respondError(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req setChargeRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewSetChargeCommand(orderID, staffID, req.Amount)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err = s.commands.SetCharge.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignDriver handles PATCH /api/admin/orders/:id/assign-driver.
func (s *Server) AssignDriver(ctx echo.Context) error {
	staffID, err := actorID(ctx)
	if err != nil {
		return s.respondError(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req assignDriverRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	driverID, err := kernel.UUIDFromString(req.DriverID)
	if err != nil {
		return badRequest(ctx, "Invalid driver id")
	}

	cmd, err := commands.NewAssignDriverCommand(orderID, driverID, staffID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err = s.commands.AssignDriver.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DispatchOrder handles PATCH /api/admin/orders/:id/dispatch.
func (s *Server) DispatchOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewDispatchOrderCommand(orderID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err = s.commands.DispatchOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// MarkDelivered handles PATCH /api/admin/orders/:id/delivered.
func (s *Server) MarkDelivered(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewMarkDeliveredCommand(orderID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err = s.commands.MarkDelivered.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles PATCH /api/admin/orders/:id/cancel. Staff cancel any
// order still pairing, typically resolving a cancellation request.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req cancelOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
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

// GetCustomers handles GET /api/admin/customers.
func (s *Server) GetCustomers(ctx echo.Context) error {
	skip, limit := pageParams(ctx)
	query, err := queries.NewGetCustomersQuery(skip, limit)
	if err != nil {
		return s.respondError(ctx, err)
	}

	customers, err := s.queries.GetCustomers.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	out := make([]customerResponse, len(customers))
	for i, c := range customers {
		out[i] = newCustomerResponse(c)
	}
	return ctx.JSON(http.StatusOK, out)
}

// GetCustomer handles GET /api/admin/customers/:id.
func (s *Server) GetCustomer(ctx echo.Context) error {
	customerID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid customer id")
	}

	query, err := queries.NewGetCustomerQuery(customerID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	resp, err := s.queries.GetCustomer.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, newCustomerResponse(resp))
}

// DeleteCustomer handles DELETE /api/admin/customers/:id.
func (s *Server) DeleteCustomer(ctx echo.Context) error {
	customerID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid customer id")
	}

	cmd, err := commands.NewDeleteCustomerCommand(customerID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err = s.commands.DeleteCustomer.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetDrivers handles GET /api/admin/drivers. The active_only query parameter
// narrows the listing to drivers available for assignment.
func (s *Server) GetDrivers(ctx echo.Context) error {
	activeOnly := ctx.QueryParam("active_only") == "true"
	skip, limit := pageParams(ctx)

	query, err := queries.NewGetDriversQuery(activeOnly, skip, limit)
	if err != nil {
		return s.respondError(ctx, err)
	}

	drivers, err := s.queries.GetDrivers.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	out := make([]driverResponse, len(drivers))
	for i, d := range drivers {
		out[i] = newDriverResponse(d)
	}
	return ctx.JSON(http.StatusOK, out)
}

// GetDriver handles GET /api/admin/drivers/:id.
func (s *Server) GetDriver(ctx echo.Context) error {
	driverID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid driver id")
	}

	query, err := queries.NewGetDriverQuery(driverID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	resp, err := s.queries.GetDriver.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, newDriverResponse(resp))
}

// RegisterDriver handles POST /api/admin/drivers. Staff provision drivers
// the same way drivers sign themselves up.
func (s *Server) RegisterDriver(ctx echo.Context) error {
	return s.SignupDriver(ctx)
}

// UpdateDriver handles PATCH /api/admin/drivers/:id. Only the supplied
// fields change.
func (s *Server) UpdateDriver(ctx echo.Context) error {
	driverID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid driver id")
	}

	var req updateDriverRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	hash, err := hashOptionalPassword(req.Password)
	if err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateDriverCommand(driverID, req.VehicleDetails, req.RatePerLitre, req.Active, hash)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err = s.commands.UpdateDriver.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteDriver handles DELETE /api/admin/drivers/:id.
func (s *Server) DeleteDriver(ctx echo.Context) error {
	driverID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid driver id")
	}

	cmd, err := commands.NewDeleteDriverCommand(driverID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err = s.commands.DeleteDriver.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetSubmissions handles GET /api/admin/recycling. Accepts optional status
// and customer_id filters.
func (s *Server) GetSubmissions(ctx echo.Context) error {
	var statusFilter *recycling.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		status, err := recycling.StatusFromString(raw)
		if err != nil {
			return s.respondError(ctx, err)
		}
		statusFilter = &status
	}

	var customerFilter *kernel.UUID
	if raw := ctx.QueryParam("customer_id"); raw != "" {
		customerID, err := kernel.UUIDFromString(raw)
		if err != nil {
			return badRequest(ctx, "Invalid customer id")
		}
		customerFilter = &customerID
	}

	skip, limit := pageParams(ctx)
	query, err := queries.NewGetSubmissionsQuery(customerFilter, statusFilter, skip, limit)
	if err != nil {
		return s.respondError(ctx, err)
	}

	submissions, err := s.queries.GetSubmissions.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, newSubmissionResponses(submissions))
}

// GetSubmission handles GET /api/admin/recycling/:id.
func (s *Server) GetSubmission(ctx echo.Context) error {
	submissionID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid submission id")
	}

	query, err := queries.NewGetSubmissionQuery(submissionID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	resp, err := s.queries.GetSubmission.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, newSubmissionResponse(resp))
}

// ReviewRecycling handles PATCH /api/admin/recycling/:id.
func (s *Server) ReviewRecycling(ctx echo.Context) error {
	submissionID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid submission id")
	}

	var req reviewRecyclingRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	status, err := recycling.StatusFromString(req.Status)
	if err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewReviewRecyclingCommand(submissionID, status, req.EstimatedValue, req.CreditedAmount)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err = s.commands.ReviewRecycling.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RegisterStaff handles POST /api/admin/staff. Only superadmins provision
// staff; the creating account is recorded on the new member.
func (s *Server) RegisterStaff(ctx echo.Context) error {
	createdBy, err := actorID(ctx)
	if err != nil {
		return s.respondError(ctx, err)
	}

	var req registerStaffRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return s.respondError(ctx, err)
	}

	staffID := kernel.NewUUID()
	cmd, err := commands.NewRegisterStaffCommand(
		staffID, req.FirstName, req.LastName, req.Email, hash, createdBy)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err = s.commands.RegisterStaff.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, idResponse{ID: staffID.String()})
}

// UpdateStaff handles PATCH /api/admin/staff/:id. Only the supplied fields
// change; a supplied password is re-hashed.
func (s *Server) UpdateStaff(ctx echo.Context) error {
	staffID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid staff id")
	}

	var req updateStaffRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	hash, err := hashOptionalPassword(req.Password)
	if err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateStaffCommand(staffID, req.FirstName, req.LastName, req.Email, hash)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err = s.commands.UpdateStaff.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteStaff handles DELETE /api/admin/staff/:id.
func (s *Server) DeleteStaff(ctx echo.Context) error {
	staffID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid staff id")
	}

	cmd, err := commands.NewDeleteStaffCommand(staffID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err = s.commands.DeleteStaff.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
