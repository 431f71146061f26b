package commands_test

import (
	"context"
	"time"

	"watertanker/internal/core/application/usecases/commands"
	"watertanker/internal/core/domain/model/account"
	"watertanker/internal/core/domain/model/feedback"
	"watertanker/internal/core/domain/model/kernel"
	"watertanker/internal/core/domain/model/order"
	"watertanker/internal/core/domain/model/payment"
	"watertanker/internal/core/domain/model/recycling"
	"watertanker/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) UpdateInStatus(ctx context.Context, o *order.Order, expected order.Status) error {
	args := m.Called(ctx, o, expected)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if o, ok := args.Get(0).(*order.Order); ok {
		return o, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderRepository) GetAllByCustomer(ctx context.Context, customerID kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, customerID)
	if orders, ok := args.Get(0).([]*order.Order); ok {
		return orders, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderRepository) DeleteAllByCustomer(ctx context.Context, customerID kernel.UUID) error {
	args := m.Called(ctx, customerID)
	return args.Error(0)
}

type MockCustomerRepository struct{ mock.Mock }

func (m *MockCustomerRepository) Add(ctx context.Context, c *account.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCustomerRepository) Update(ctx context.Context, c *account.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCustomerRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCustomerRepository) Get(ctx context.Context, id kernel.UUID) (*account.Customer, error) {
	args := m.Called(ctx, id)
	if c, ok := args.Get(0).(*account.Customer); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCustomerRepository) GetByEmail(ctx context.Context, email string) (*account.Customer, error) {
	args := m.Called(ctx, email)
	if c, ok := args.Get(0).(*account.Customer); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockDriverRepository struct{ mock.Mock }

func (m *MockDriverRepository) Add(ctx context.Context, d *account.Driver) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDriverRepository) Update(ctx context.Context, d *account.Driver) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDriverRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockDriverRepository) Get(ctx context.Context, id kernel.UUID) (*account.Driver, error) {
	args := m.Called(ctx, id)
	if d, ok := args.Get(0).(*account.Driver); ok {
		return d, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockDriverRepository) GetByContactNumber(ctx context.Context, contactNumber string) (*account.Driver, error) {
	args := m.Called(ctx, contactNumber)
	if d, ok := args.Get(0).(*account.Driver); ok {
		return d, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockStaffRepository struct{ mock.Mock }

func (m *MockStaffRepository) AddStaff(ctx context.Context, s *account.Staff) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockStaffRepository) AddSuperAdmin(ctx context.Context, s *account.SuperAdmin) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockStaffRepository) UpdateStaff(ctx context.Context, s *account.Staff) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockStaffRepository) DeleteStaff(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockStaffRepository) GetStaff(ctx context.Context, id kernel.UUID) (*account.Staff, error) {
	args := m.Called(ctx, id)
	if s, ok := args.Get(0).(*account.Staff); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockStaffRepository) GetSuperAdmin(ctx context.Context, id kernel.UUID) (*account.SuperAdmin, error) {
	args := m.Called(ctx, id)
	if s, ok := args.Get(0).(*account.SuperAdmin); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockStaffRepository) GetStaffByEmail(ctx context.Context, email string) (*account.Staff, error) {
	args := m.Called(ctx, email)
	if s, ok := args.Get(0).(*account.Staff); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockStaffRepository) GetSuperAdminByEmail(ctx context.Context, email string) (*account.SuperAdmin, error) {
	args := m.Called(ctx, email)
	if s, ok := args.Get(0).(*account.SuperAdmin); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockPaymentRepository struct{ mock.Mock }

func (m *MockPaymentRepository) Add(ctx context.Context, p *payment.Payment) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPaymentRepository) GetByOrder(ctx context.Context, orderID kernel.UUID) (*payment.Payment, error) {
	args := m.Called(ctx, orderID)
	if p, ok := args.Get(0).(*payment.Payment); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPaymentRepository) DeleteAllByCustomer(ctx context.Context, customerID kernel.UUID) error {
	args := m.Called(ctx, customerID)
	return args.Error(0)
}

type MockFeedbackRepository struct{ mock.Mock }

func (m *MockFeedbackRepository) Add(ctx context.Context, f *feedback.Feedback) error {
	args := m.Called(ctx, f)
	return args.Error(0)
}

func (m *MockFeedbackRepository) GetByOrder(ctx context.Context, orderID kernel.UUID) (*feedback.Feedback, error) {
	args := m.Called(ctx, orderID)
	if f, ok := args.Get(0).(*feedback.Feedback); ok {
		return f, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockFeedbackRepository) DeleteAllByCustomer(ctx context.Context, customerID kernel.UUID) error {
	args := m.Called(ctx, customerID)
	return args.Error(0)
}

type MockRecyclingRepository struct{ mock.Mock }

func (m *MockRecyclingRepository) Add(ctx context.Context, s *recycling.Submission) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockRecyclingRepository) Update(ctx context.Context, s *recycling.Submission) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockRecyclingRepository) Get(ctx context.Context, id kernel.UUID) (*recycling.Submission, error) {
	args := m.Called(ctx, id)
	if s, ok := args.Get(0).(*recycling.Submission); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRecyclingRepository) DeleteAllByCustomer(ctx context.Context, customerID kernel.UUID) error {
	args := m.Called(ctx, customerID)
	return args.Error(0)
}

type MockTokenDenylist struct{ mock.Mock }

func (m *MockTokenDenylist) Add(ctx context.Context, token ports.DeniedToken) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockTokenDenylist) Contains(ctx context.Context, jti string) (bool, error) {
	args := m.Called(ctx, jti)
	return args.Bool(0), args.Error(1)
}

func (m *MockTokenDenylist) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

// MockUoW satisfies every unit of work composition used by the handlers.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) CustomerRepository() ports.CustomerRepository {
	args := m.Called()
	return args.Get(0).(ports.CustomerRepository)
}

func (m *MockUoW) DriverRepository() ports.DriverRepository {
	args := m.Called()
	return args.Get(0).(ports.DriverRepository)
}

func (m *MockUoW) StaffRepository() ports.StaffRepository {
	args := m.Called()
	return args.Get(0).(ports.StaffRepository)
}

func (m *MockUoW) PaymentRepository() ports.PaymentRepository {
	args := m.Called()
	return args.Get(0).(ports.PaymentRepository)
}

func (m *MockUoW) FeedbackRepository() ports.FeedbackRepository {
	args := m.Called()
	return args.Get(0).(ports.FeedbackRepository)
}

func (m *MockUoW) RecyclingRepository() ports.RecyclingRepository {
	args := m.Called()
	return args.Get(0).(ports.RecyclingRepository)
}

func (m *MockUoW) TokenDenylist() ports.TokenDenylist {
	args := m.Called()
	return args.Get(0).(ports.TokenDenylist)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockOrderPaymentUoWFactory struct{ mock.Mock }

func (m *MockOrderPaymentUoWFactory) Create() commands.OrderPaymentUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderPaymentUoW)
}

type MockOrderDriverUoWFactory struct{ mock.Mock }

func (m *MockOrderDriverUoWFactory) Create() commands.OrderDriverUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderDriverUoW)
}

type MockOrderFeedbackUoWFactory struct{ mock.Mock }

func (m *MockOrderFeedbackUoWFactory) Create() commands.OrderFeedbackUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderFeedbackUoW)
}

type MockCustomerUoWFactory struct{ mock.Mock }

func (m *MockCustomerUoWFactory) Create() commands.CustomerUoW {
	args := m.Called()
	return args.Get(0).(commands.CustomerUoW)
}

type MockCustomerPurgeUoWFactory struct{ mock.Mock }

func (m *MockCustomerPurgeUoWFactory) Create() commands.CustomerPurgeUoW {
	args := m.Called()
	return args.Get(0).(commands.CustomerPurgeUoW)
}

type MockDriverUoWFactory struct{ mock.Mock }

func (m *MockDriverUoWFactory) Create() commands.DriverUoW {
	args := m.Called()
	return args.Get(0).(commands.DriverUoW)
}

type MockStaffUoWFactory struct{ mock.Mock }

func (m *MockStaffUoWFactory) Create() commands.StaffUoW {
	args := m.Called()
	return args.Get(0).(commands.StaffUoW)
}

type MockRecyclingUoWFactory struct{ mock.Mock }

func (m *MockRecyclingUoWFactory) Create() commands.RecyclingUoW {
	args := m.Called()
	return args.Get(0).(commands.RecyclingUoW)
}

type MockDenylistUoWFactory struct{ mock.Mock }

func (m *MockDenylistUoWFactory) Create() commands.DenylistUoW {
	args := m.Called()
	return args.Get(0).(commands.DenylistUoW)
}
