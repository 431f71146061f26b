package cmd

import (
	"log/slog"
	"time"

	httpin "watertanker/internal/adapters/in/http"
	"watertanker/internal/adapters/out/postgres"
	"watertanker/internal/core/application/auth"
	"watertanker/internal/core/application/usecases/commands"
	"watertanker/internal/core/application/usecases/queries"
	"watertanker/internal/jobs"

	"github.com/labstack/gommon/log"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB      *gorm.DB
	uowFactory  *postgres.GormUnitOfWorkFactory
	authService *auth.Service
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB) CompositionRoot {
	accessTTL, err := time.ParseDuration(configs.AccessTokenTTL)
	if err != nil {
		log.Fatalf("Invalid ACCESS_TOKEN_TTL: %v", err)
	}
	refreshTTL, err := time.ParseDuration(configs.RefreshTokenTTL)
	if err != nil {
		log.Fatalf("Invalid REFRESH_TOKEN_TTL: %v", err)
	}

	uowFactory := postgres.NewGormUnitOfWorkFactory(gormDB)
	tokens := auth.NewTokenService(configs.JWTSecret, configs.JWTIssuer, accessTTL, refreshTTL)

	return CompositionRoot{
		gormDB:      gormDB,
		uowFactory:  uowFactory,
		authService: auth.NewService(tokens, uowFactory),
	}
}

func (c *CompositionRoot) AuthService() *auth.Service {
	return c.authService
}

func (c *CompositionRoot) NewHTTPServer() *httpin.Server {
	cmds := httpin.Commands{
		CreateOrder:         c.CreateCreateOrderCommandHandler(),
		SetCharge:           c.CreateSetChargeCommandHandler(),
		AcceptCharge:        c.CreateAcceptChargeCommandHandler(),
		AssignDriver:        c.CreateAssignDriverCommandHandler(),
		DispatchOrder:       c.CreateDispatchOrderCommandHandler(),
		MarkDelivered:       c.CreateMarkDeliveredCommandHandler(),
		CancelOrder:         c.CreateCancelOrderCommandHandler(),
		RequestCancellation: c.CreateRequestCancellationCommandHandler(),
		SubmitFeedback:      c.CreateSubmitFeedbackCommandHandler(),
		RegisterCustomer:    c.CreateRegisterCustomerCommandHandler(),
		UpdateCustomer:      c.CreateUpdateCustomerCommandHandler(),
		DeleteCustomer:      c.CreateDeleteCustomerCommandHandler(),
		RegisterDriver:      c.CreateRegisterDriverCommandHandler(),
		UpdateDriver:        c.CreateUpdateDriverCommandHandler(),
		DeleteDriver:        c.CreateDeleteDriverCommandHandler(),
		RegisterStaff:       c.CreateRegisterStaffCommandHandler(),
		UpdateStaff:         c.CreateUpdateStaffCommandHandler(),
		DeleteStaff:         c.CreateDeleteStaffCommandHandler(),
		RegisterSuperAdmin:  c.CreateRegisterSuperAdminCommandHandler(),
		SubmitRecycling:     c.CreateSubmitRecyclingCommandHandler(),
		ReviewRecycling:     c.CreateReviewRecyclingCommandHandler(),
	}

	qrys := httpin.Queries{
		GetOrders:         queries.NewGetOrdersQueryHandler(c.gormDB),
		GetOrder:          queries.NewGetOrderQueryHandler(c.gormDB),
		GetCustomerOrders: queries.NewGetCustomerOrdersQueryHandler(c.gormDB),
		GetCustomers:      queries.NewGetCustomersQueryHandler(c.gormDB),
		GetCustomer:       queries.NewGetCustomerQueryHandler(c.gormDB),
		GetDrivers:        queries.NewGetDriversQueryHandler(c.gormDB),
		GetDriver:         queries.NewGetDriverQueryHandler(c.gormDB),
		GetSubmissions:    queries.NewGetSubmissionsQueryHandler(c.gormDB),
		GetSubmission:     queries.NewGetSubmissionQueryHandler(c.gormDB),
		GetReports:        queries.NewGetReportsQueryHandler(c.gormDB),
	}

	return httpin.NewServer(c.authService, cmds, qrys)
}

func (c *CompositionRoot) NewJobManager(evictionSchedule string, logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(c.CreateEvictExpiredTokensCommandHandler(), evictionSchedule, logger)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateSetChargeCommandHandler() commands.SetChargeCommandHandler {
	return commands.NewSetChargeCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAcceptChargeCommandHandler() commands.AcceptChargeCommandHandler {
	var f commands.OrderPaymentUoWFactory = FuncOrderPaymentUoWFactory(func() commands.OrderPaymentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAcceptChargeCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignDriverCommandHandler() commands.AssignDriverCommandHandler {
	var f commands.OrderDriverUoWFactory = FuncOrderDriverUoWFactory(func() commands.OrderDriverUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignDriverCommandHandler(f)
}

func (c *CompositionRoot) CreateDispatchOrderCommandHandler() commands.DispatchOrderCommandHandler {
	return commands.NewDispatchOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateMarkDeliveredCommandHandler() commands.MarkDeliveredCommandHandler {
	return commands.NewMarkDeliveredCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateRequestCancellationCommandHandler() commands.RequestCancellationCommandHandler {
	return commands.NewRequestCancellationCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateSubmitFeedbackCommandHandler() commands.SubmitFeedbackCommandHandler {
	var f commands.OrderFeedbackUoWFactory = FuncOrderFeedbackUoWFactory(func() commands.OrderFeedbackUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSubmitFeedbackCommandHandler(f)
}

func (c *CompositionRoot) CreateRegisterCustomerCommandHandler() commands.RegisterCustomerCommandHandler {
	return commands.NewRegisterCustomerCommandHandler(c.customerUoWFactory())
}

func (c *CompositionRoot) CreateUpdateCustomerCommandHandler() commands.UpdateCustomerCommandHandler {
	return commands.NewUpdateCustomerCommandHandler(c.customerUoWFactory())
}

func (c *CompositionRoot) CreateDeleteCustomerCommandHandler() commands.DeleteCustomerCommandHandler {
	var f commands.CustomerPurgeUoWFactory = FuncCustomerPurgeUoWFactory(func() commands.CustomerPurgeUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteCustomerCommandHandler(f)
}

func (c *CompositionRoot) CreateRegisterDriverCommandHandler() commands.RegisterDriverCommandHandler {
	return commands.NewRegisterDriverCommandHandler(c.driverUoWFactory())
}

func (c *CompositionRoot) CreateUpdateDriverCommandHandler() commands.UpdateDriverCommandHandler {
	return commands.NewUpdateDriverCommandHandler(c.driverUoWFactory())
}

func (c *CompositionRoot) CreateDeleteDriverCommandHandler() commands.DeleteDriverCommandHandler {
	return commands.NewDeleteDriverCommandHandler(c.driverUoWFactory())
}

func (c *CompositionRoot) CreateRegisterStaffCommandHandler() commands.RegisterStaffCommandHandler {
	return commands.NewRegisterStaffCommandHandler(c.staffUoWFactory())
}

func (c *CompositionRoot) CreateUpdateStaffCommandHandler() commands.UpdateStaffCommandHandler {
	return commands.NewUpdateStaffCommandHandler(c.staffUoWFactory())
}

func (c *CompositionRoot) CreateDeleteStaffCommandHandler() commands.DeleteStaffCommandHandler {
	return commands.NewDeleteStaffCommandHandler(c.staffUoWFactory())
}

func (c *CompositionRoot) CreateRegisterSuperAdminCommandHandler() commands.RegisterSuperAdminCommandHandler {
	return commands.NewRegisterSuperAdminCommandHandler(c.staffUoWFactory())
}

func (c *CompositionRoot) CreateSubmitRecyclingCommandHandler() commands.SubmitRecyclingCommandHandler {
	return commands.NewSubmitRecyclingCommandHandler(c.recyclingUoWFactory())
}

func (c *CompositionRoot) CreateReviewRecyclingCommandHandler() commands.ReviewRecyclingCommandHandler {
	return commands.NewReviewRecyclingCommandHandler(c.recyclingUoWFactory())
}

func (c *CompositionRoot) CreateEvictExpiredTokensCommandHandler() commands.EvictExpiredTokensCommandHandler {
	var f commands.DenylistUoWFactory = FuncDenylistUoWFactory(func() commands.DenylistUoW {
		return c.uowFactory.Create()
	})
	return commands.NewEvictExpiredTokensCommandHandler(f)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) customerUoWFactory() commands.CustomerUoWFactory {
	return FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) driverUoWFactory() commands.DriverUoWFactory {
	return FuncDriverUoWFactory(func() commands.DriverUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) staffUoWFactory() commands.StaffUoWFactory {
	return FuncStaffUoWFactory(func() commands.StaffUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) recyclingUoWFactory() commands.RecyclingUoWFactory {
	return FuncRecyclingUoWFactory(func() commands.RecyclingUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncOrderPaymentUoWFactory func() commands.OrderPaymentUoW

func (f FuncOrderPaymentUoWFactory) Create() commands.OrderPaymentUoW {
	return f()
}

type FuncOrderDriverUoWFactory func() commands.OrderDriverUoW

func (f FuncOrderDriverUoWFactory) Create() commands.OrderDriverUoW {
	return f()
}

type FuncOrderFeedbackUoWFactory func() commands.OrderFeedbackUoW

func (f FuncOrderFeedbackUoWFactory) Create() commands.OrderFeedbackUoW {
	return f()
}

type FuncCustomerUoWFactory func() commands.CustomerUoW

func (f FuncCustomerUoWFactory) Create() commands.CustomerUoW {
	return f()
}

type FuncCustomerPurgeUoWFactory func() commands.CustomerPurgeUoW

func (f FuncCustomerPurgeUoWFactory) Create() commands.CustomerPurgeUoW {
	return f()
}

type FuncDriverUoWFactory func() commands.DriverUoW

func (f FuncDriverUoWFactory) Create() commands.DriverUoW {
	return f()
}

type FuncStaffUoWFactory func() commands.StaffUoW

func (f FuncStaffUoWFactory) Create() commands.StaffUoW {
	return f()
}

type FuncRecyclingUoWFactory func() commands.RecyclingUoW

func (f FuncRecyclingUoWFactory) Create() commands.RecyclingUoW {
	return f()
}

type FuncDenylistUoWFactory func() commands.DenylistUoW

func (f FuncDenylistUoWFactory) Create() commands.DenylistUoW {
	return f()
}
