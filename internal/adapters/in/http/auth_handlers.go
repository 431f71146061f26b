package http

import (
	"net/http"

	"watertanker/internal/core/application/auth"
	"watertanker/internal/core/application/usecases/commands"
	"watertanker/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// SignupCustomer handles POST /api/customers/signup.
func (s *Server) SignupCustomer(ctx echo.Context) error {
	var req signupCustomerRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return s.respondError(ctx, err)
	}

	customerID := kernel.NewUUID()
	cmd, err := commands.NewRegisterCustomerCommand(
		customerID, req.FirstName, req.LastName, req.Email, hash, req.Address, req.ContactNumber)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err = s.commands.RegisterCustomer.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, idResponse{ID: customerID.String()})
}

// SignupDriver handles POST /api/drivers/signup.
func (s *Server) SignupDriver(ctx echo.Context) error {
	var req signupDriverRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return s.respondError(ctx, err)
	}

	driverID := kernel.NewUUID()
	cmd, err := commands.NewRegisterDriverCommand(
		driverID, req.FirstName, req.LastName, req.ContactNumber, hash,
		req.VehicleDetails, req.RatePerLitre)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err = s.commands.RegisterDriver.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, idResponse{ID: driverID.String()})
}

// SignupSuperAdmin handles POST /api/admin/signup.
func (s *Server) SignupSuperAdmin(ctx echo.Context) error {
	var req signupAdminRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return s.respondError(ctx, err)
	}

	adminID := kernel.NewUUID()
	cmd, err := commands.NewRegisterSuperAdminCommand(adminID, req.Email, hash)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err = s.commands.RegisterSuperAdmin.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, idResponse{ID: adminID.String()})
}

// LoginCustomer handles POST /api/customers/login.
func (s *Server) LoginCustomer(ctx echo.Context) error {
	var req emailLoginRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	pair, err := s.auth.LoginCustomer(ctx.Request().Context(), req.Email, req.Password)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, newTokenResponse(pair))
}

// LoginDriver handles POST /api/drivers/login.
func (s *Server) LoginDriver(ctx echo.Context) error {
	var req driverLoginRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	pair, err := s.auth.LoginDriver(ctx.Request().Context(), req.ContactNumber, req.Password)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, newTokenResponse(pair))
}

// LoginAdmin handles POST /api/admin/login.
func (s *Server) LoginAdmin(ctx echo.Context) error {
	var req emailLoginRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	pair, err := s.auth.LoginAdmin(ctx.Request().Context(), req.Email, req.Password)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, newTokenResponse(pair))
}

// RefreshToken handles GET /api/{customers,drivers,admin}/refresh_token.
// The refresh token is presented as the bearer token and is single use.
func (s *Server) RefreshToken(ctx echo.Context) error {
	token, ok := bearerToken(ctx)
	if !ok {
		return ctx.JSON(http.StatusUnauthorized, errorResponse{
			Code:    http.StatusUnauthorized,
			Message: "Missing bearer token",
		})
	}

	pair, err := s.auth.Refresh(ctx.Request().Context(), token)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, newTokenResponse(pair))
}

// hashOptionalPassword hashes a password supplied in a partial update.
// Nil passes through untouched, keeping the stored hash.
func hashOptionalPassword(password *string) (*string, error) {
	if password == nil {
		return nil, nil
	}
	hash, err := auth.HashPassword(*password)
	if err != nil {
		return nil, err
	}
	return &hash, nil
}

// Logout handles GET /api/{customers,drivers,admin}/logout.
func (s *Server) Logout(ctx echo.Context) error {
	claims, err := claimsFrom(ctx)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err = s.auth.Logout(ctx.Request().Context(), claims); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
