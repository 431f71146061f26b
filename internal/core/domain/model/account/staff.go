package account

import (
	"errors"

	"watertanker/internal/core/domain/model/kernel"
	"watertanker/internal/pkg/errs"
)

var (
	// ErrStaffIsNotConstructed is returned when a Staff instance was not
	// created through NewStaff or RestoreStaff.
	ErrStaffIsNotConstructed = errors.New("Staff must be created via NewStaff or RestoreStaff")

	// ErrSuperAdminIsNotConstructed is returned when a SuperAdmin instance
	// was not created through NewSuperAdmin or RestoreSuperAdmin.
	ErrSuperAdminIsNotConstructed = errors.New("SuperAdmin must be created via NewSuperAdmin or RestoreSuperAdmin")
)

// Staff is the identity aggregate for an operations staff member. Staff
// accounts are created by other staff or a super admin; createdBy records
// who, nil for accounts seeded outside the API.
type Staff struct {
	id           kernel.UUID
	firstName    string
	lastName     string
	email        string
	passwordHash string
	createdBy    *kernel.UUID

	isConstructed bool
}

// NewStaff creates a Staff account with validated identity.
func NewStaff(id kernel.UUID, firstName, lastName, email, passwordHash string, createdBy *kernel.UUID) (*Staff, error) {
	s := &Staff{createdBy: createdBy, isConstructed: true}

	if err := errors.Join(
		s.setID(id),
		s.SetFirstName(firstName),
		s.SetLastName(lastName),
		s.SetEmail(email),
		s.SetPasswordHash(passwordHash),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreStaff reconstructs a Staff account from persistence.
func RestoreStaff(id kernel.UUID, firstName, lastName, email, passwordHash string, createdBy *kernel.UUID) (*Staff, error) {
	return NewStaff(id, firstName, lastName, email, passwordHash, createdBy)
}

// Validate ensures the Staff was created through a constructor.
func (s *Staff) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrStaffIsNotConstructed
	}
	return nil
}

// ID returns the staff member's unique identifier.
func (s *Staff) ID() kernel.UUID { return s.id }

// FirstName returns the staff member's first name.
func (s *Staff) FirstName() string { return s.firstName }

// LastName returns the staff member's last name.
func (s *Staff) LastName() string { return s.lastName }

// Email returns the staff member's unique email address.
func (s *Staff) Email() string { return s.email }

// PasswordHash returns the stored bcrypt hash.
func (s *Staff) PasswordHash() string { return s.passwordHash }

// CreatedBy returns the ID of the staff member or super admin who created
// this account, nil for seeded accounts.
func (s *Staff) CreatedBy() *kernel.UUID { return s.createdBy }

// SetFirstName updates the first name; it must not be empty.
func (s *Staff) SetFirstName(firstName string) error {
	if firstName == "" {
		return errs.NewValueIsRequiredError("first name")
	}
	s.firstName = firstName
	return nil
}

// SetLastName updates the last name; it must not be empty.
func (s *Staff) SetLastName(lastName string) error {
	if lastName == "" {
		return errs.NewValueIsRequiredError("last name")
	}
	s.lastName = lastName
	return nil
}

// SetEmail updates the email address; it must look like an address.
func (s *Staff) SetEmail(email string) error {
	if err := validateEmail(email); err != nil {
		return err
	}
	s.email = email
	return nil
}

// SetPasswordHash replaces the stored credential hash.
func (s *Staff) SetPasswordHash(hash string) error {
	if hash == "" {
		return errs.NewValueIsRequiredError("password hash")
	}
	s.passwordHash = hash
	return nil
}

func (s *Staff) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

// SuperAdmin is the identity aggregate for the platform administrator.
type SuperAdmin struct {
	id           kernel.UUID
	email        string
	passwordHash string

	isConstructed bool
}

// NewSuperAdmin creates a SuperAdmin account with validated identity.
func NewSuperAdmin(id kernel.UUID, email, passwordHash string) (*SuperAdmin, error) {
	a := &SuperAdmin{isConstructed: true}

	if err := errors.Join(
		a.setID(id),
		a.SetEmail(email),
		a.SetPasswordHash(passwordHash),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// RestoreSuperAdmin reconstructs a SuperAdmin account from persistence.
func RestoreSuperAdmin(id kernel.UUID, email, passwordHash string) (*SuperAdmin, error) {
	return NewSuperAdmin(id, email, passwordHash)
}

// Validate ensures the SuperAdmin was created through a constructor.
func (a *SuperAdmin) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrSuperAdminIsNotConstructed
	}
	return nil
}

// ID returns the super admin's unique identifier.
func (a *SuperAdmin) ID() kernel.UUID { return a.id }

// Email returns the super admin's unique email address.
func (a *SuperAdmin) Email() string { return a.email }

// PasswordHash returns the stored bcrypt hash.
func (a *SuperAdmin) PasswordHash() string { return a.passwordHash }

// SetEmail updates the email address; it must look like an address.
func (a *SuperAdmin) SetEmail(email string) error {
	if err := validateEmail(email); err != nil {
		return err
	}
	a.email = email
	return nil
}

// SetPasswordHash replaces the stored credential hash.
func (a *SuperAdmin) SetPasswordHash(hash string) error {
	if hash == "" {
		return errs.NewValueIsRequiredError("password hash")
	}
	a.passwordHash = hash
	return nil
}

func (a *SuperAdmin) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}
