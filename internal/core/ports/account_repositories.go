package ports

import (
	"context"

	"watertanker/internal/core/domain/model/account"
	"watertanker/internal/core/domain/model/kernel"
)

// CustomerRepository defines the persistence contract for customer aggregates.
type CustomerRepository interface {
	// Add persists a new customer. Returns an ErrObjectAlreadyExists error
	// when the email is already registered.
	Add(ctx context.Context, aggregate *account.Customer) error

	// Update persists changes to an existing customer.
	Update(ctx context.Context, aggregate *account.Customer) error

	// Delete removes a customer by its unique identifier.
	Delete(ctx context.Context, id kernel.UUID) error

	// Get retrieves a customer by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*account.Customer, error)

	// GetByEmail retrieves a customer by email. Used for login.
	GetByEmail(ctx context.Context, email string) (*account.Customer, error)
}

// DriverRepository defines the persistence contract for driver aggregates.
type DriverRepository interface {
	// Add persists a new driver. Returns an ErrObjectAlreadyExists error
	// when the contact number is already registered.
	Add(ctx context.Context, aggregate *account.Driver) error

	// Update persists changes to an existing driver.
	Update(ctx context.Context, aggregate *account.Driver) error

	// Delete removes a driver by its unique identifier.
	Delete(ctx context.Context, id kernel.UUID) error

	// Get retrieves a driver by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*account.Driver, error)

	// GetByContactNumber retrieves a driver by contact number. Drivers log
	// in with their contact number rather than an email address.
	GetByContactNumber(ctx context.Context, contactNumber string) (*account.Driver, error)
}

// StaffRepository defines the persistence contract for staff and
// superadmin aggregates. Both kinds share the admin credential store.
type StaffRepository interface {
	// AddStaff persists a new staff member.
	AddStaff(ctx context.Context, aggregate *account.Staff) error

	// AddSuperAdmin persists a new superadmin.
	AddSuperAdmin(ctx context.Context, aggregate *account.SuperAdmin) error

	// UpdateStaff persists changes to an existing staff member.
	UpdateStaff(ctx context.Context, aggregate *account.Staff) error

	// DeleteStaff removes a staff member by its unique identifier.
	DeleteStaff(ctx context.Context, id kernel.UUID) error

	// GetStaff retrieves a staff member by its unique identifier.
	GetStaff(ctx context.Context, id kernel.UUID) (*account.Staff, error)

	// GetSuperAdmin retrieves a superadmin by its unique identifier.
	GetSuperAdmin(ctx context.Context, id kernel.UUID) (*account.SuperAdmin, error)

	// GetStaffByEmail retrieves a staff member by email. Used for login.
	GetStaffByEmail(ctx context.Context, email string) (*account.Staff, error)

	// GetSuperAdminByEmail retrieves a superadmin by email. Used for login.
	GetSuperAdminByEmail(ctx context.Context, email string) (*account.SuperAdmin, error)
}
