// Package http exposes the application over an Echo HTTP API. Handlers bind
// requests, build commands/queries, and translate domain errors to statuses;
// all business rules live in the application layer.
package http

import (
	"net/http"

	"watertanker/internal/core/application/auth"
	"watertanker/internal/core/application/usecases/commands"
	"watertanker/internal/core/application/usecases/queries"
	"watertanker/internal/core/domain/model/account"

	"github.com/labstack/echo/v4"
)

// Commands groups the command handlers the server dispatches to.
type Commands struct {
	CreateOrder         commands.CreateOrderCommandHandler
	SetCharge           commands.SetChargeCommandHandler
	AcceptCharge        commands.AcceptChargeCommandHandler
	AssignDriver        commands.AssignDriverCommandHandler
	DispatchOrder       commands.DispatchOrderCommandHandler
	MarkDelivered       commands.MarkDeliveredCommandHandler
	CancelOrder         commands.CancelOrderCommandHandler
	RequestCancellation commands.RequestCancellationCommandHandler
	SubmitFeedback      commands.SubmitFeedbackCommandHandler
	RegisterCustomer    commands.RegisterCustomerCommandHandler
	UpdateCustomer      commands.UpdateCustomerCommandHandler
	DeleteCustomer      commands.DeleteCustomerCommandHandler
	RegisterDriver      commands.RegisterDriverCommandHandler
	UpdateDriver        commands.UpdateDriverCommandHandler
	DeleteDriver        commands.DeleteDriverCommandHandler
	RegisterStaff       commands.RegisterStaffCommandHandler
	UpdateStaff         commands.UpdateStaffCommandHandler
	DeleteStaff         commands.DeleteStaffCommandHandler
	RegisterSuperAdmin  commands.RegisterSuperAdminCommandHandler
	SubmitRecycling     commands.SubmitRecyclingCommandHandler
	ReviewRecycling     commands.ReviewRecyclingCommandHandler
}

// Queries groups the query handlers the server dispatches to.
type Queries struct {
	GetOrders         queries.GetOrdersQueryHandler
	GetOrder          queries.GetOrderQueryHandler
	GetCustomerOrders queries.GetCustomerOrdersQueryHandler
	GetCustomers      queries.GetCustomersQueryHandler
	GetCustomer       queries.GetCustomerQueryHandler
	GetDrivers        queries.GetDriversQueryHandler
	GetDriver         queries.GetDriverQueryHandler
	GetSubmissions    queries.GetSubmissionsQueryHandler
	GetSubmission     queries.GetSubmissionQueryHandler
	GetReports        queries.GetReportsQueryHandler
}

// Server handles HTTP requests. It coordinates between Echo handlers,
// the authentication service, and the application use cases.
type Server struct {
	auth     *auth.Service
	commands Commands
	queries  Queries
}

// NewServer creates a new HTTP server with the required handlers.
func NewServer(authService *auth.Service, cmds Commands, qrys Queries) *Server {
	return &Server{
		auth:     authService,
		commands: cmds,
		queries:  qrys,
	}
}

// RegisterRoutes attaches every route to the Echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api")

	customers := api.Group("/customers")
	customers.POST("/signup", s.SignupCustomer)
	customers.POST("/login", s.LoginCustomer)
	customers.GET("/refresh_token", s.RefreshToken)
	customers.GET("/logout", s.Logout, s.authenticated)
	customers.GET("/profile", s.GetProfile, s.authenticated, s.allow(account.KindCustomer))
	customers.PATCH("/profile", s.UpdateProfile, s.authenticated, s.allow(account.KindCustomer))
	customers.GET("/orders", s.GetOwnOrders, s.authenticated, s.allow(account.KindCustomer))

	drivers := api.Group("/drivers")
	drivers.POST("/signup", s.SignupDriver)
	drivers.POST("/login", s.LoginDriver)
	drivers.GET("/refresh_token", s.RefreshToken)
	drivers.GET("/logout", s.Logout, s.authenticated)

	orders := api.Group("/orders", s.authenticated, s.allow(account.KindCustomer))
	orders.POST("", s.CreateOrder)
	orders.POST("/:id/accept-charge", s.AcceptCharge)
	orders.POST("/:id/cancel", s.CancelOwnOrder)
	orders.POST("/:id/request-cancellation", s.RequestCancellation)

	api.POST("/feedback/:order_id", s.SubmitFeedback,
		s.authenticated, s.allow(account.KindCustomer))

	recycling := api.Group("/recycling", s.authenticated, s.allow(account.KindCustomer))
	recycling.POST("", s.SubmitRecycling)
	recycling.GET("", s.GetOwnSubmissions)

	admin := api.Group("/admin")
	admin.POST("/signup", s.SignupSuperAdmin)
	admin.POST("/login", s.LoginAdmin)
	admin.GET("/refresh_token", s.RefreshToken)
	admin.GET("/logout", s.Logout, s.authenticated)

	staffOnly := []echo.MiddlewareFunc{
		s.authenticated, s.allow(account.KindStaff, account.KindSuperAdmin),
	}

	adminOrders := admin.Group("/orders", staffOnly...)
	adminOrders.GET("", s.GetOrders)
	adminOrders.GET("/:id", s.GetOrder)
	adminOrders.PATCH("/:id/set-charge", s.SetCharge)
	adminOrders.PATCH("/:id/assign-driver", s.AssignDriver)
	adminOrders.PATCH("/:id/dispatch", s.DispatchOrder)
	adminOrders.PATCH("/:id/delivered", s.MarkDelivered)
	adminOrders.PATCH("/:id/cancel", s.CancelOrder)

	adminCustomers := admin.Group("/customers", staffOnly...)
	adminCustomers.GET("", s.GetCustomers)
	adminCustomers.GET("/:id", s.GetCustomer)
	adminCustomers.DELETE("/:id", s.DeleteCustomer)

	adminDrivers := admin.Group("/drivers", staffOnly...)
	adminDrivers.GET("", s.GetDrivers)
	adminDrivers.GET("/:id", s.GetDriver)
	adminDrivers.POST("", s.RegisterDriver)
	adminDrivers.PATCH("/:id", s.UpdateDriver)
	adminDrivers.DELETE("/:id", s.DeleteDriver)

	adminRecycling := admin.Group("/recycling", staffOnly...)
	adminRecycling.GET("", s.GetSubmissions)
	adminRecycling.GET("/:id", s.GetSubmission)
	adminRecycling.PATCH("/:id", s.ReviewRecycling)

	adminStaff := admin.Group("/staff",
		s.authenticated, s.allow(account.KindSuperAdmin))
	adminStaff.POST("", s.RegisterStaff)
	adminStaff.PATCH("/:id", s.UpdateStaff)
	adminStaff.DELETE("/:id", s.DeleteStaff)

	reports := api.Group("/reports", staffOnly...)
	reports.GET("/orders", s.GetOrdersReport)
	reports.GET("/revenue", s.GetRevenueReport)
	reports.GET("/feedback", s.GetFeedbackReport)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
