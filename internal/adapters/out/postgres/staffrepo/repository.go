package staffrepo

import (
	"context"
	"errors"

	"watertanker/internal/core/domain/model/account"
	"watertanker/internal/core/domain/model/kernel"
	"watertanker/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormStaffRepository implements StaffRepository using GORM. Staff and
// superadmins live in separate tables but share this repository because
// admin login resolves against both.
type GormStaffRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormStaffRepository creates a new GORM staff repository.
func NewGormStaffRepository(db *gorm.DB, tracker aggregateTracker) *GormStaffRepository {
	return &GormStaffRepository{
		db:      db,
		tracker: tracker,
	}
}

// AddStaff saves a new staff member to the database.
func (r *GormStaffRepository) AddStaff(ctx context.Context, aggregate *account.Staff) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := staffFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsErrorWithCause("staff email", aggregate.Email(), err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// AddSuperAdmin saves a new superadmin to the database.
func (r *GormStaffRepository) AddSuperAdmin(ctx context.Context, aggregate *account.SuperAdmin) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := superAdminFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsErrorWithCause("superadmin email", aggregate.Email(), err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// UpdateStaff saves an existing staff member to the database.
func (r *GormStaffRepository) UpdateStaff(ctx context.Context, aggregate *account.Staff) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := staffFromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&StaffDTO{}).
		Where("id = ?", dto.ID).
		Select("*").Omit("created_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("staff", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// DeleteStaff removes a staff member from the database.
func (r *GormStaffRepository) DeleteStaff(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&StaffDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("staff", id.String())
	}

	return nil
}

// GetStaff retrieves a staff member by ID.
func (r *GormStaffRepository) GetStaff(ctx context.Context, id kernel.UUID) (*account.Staff, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto StaffDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("staff", id.String())
		}
		return nil, err
	}

	return staffToDomain(dto)
}

// GetSuperAdmin retrieves a superadmin by ID.
func (r *GormStaffRepository) GetSuperAdmin(ctx context.Context, id kernel.UUID) (*account.SuperAdmin, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto SuperAdminDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("superadmin", id.String())
		}
		return nil, err
	}

	return superAdminToDomain(dto)
}

// GetStaffByEmail retrieves a staff member by email.
func (r *GormStaffRepository) GetStaffByEmail(ctx context.Context, email string) (*account.Staff, error) {
	var dto StaffDTO
	if err := r.db.WithContext(ctx).First(&dto, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("staff", email)
		}
		return nil, err
	}

	return staffToDomain(dto)
}

// GetSuperAdminByEmail retrieves a superadmin by email.
func (r *GormStaffRepository) GetSuperAdminByEmail(
	ctx context.Context, email string,
) (*account.SuperAdmin, error) {
	var dto SuperAdminDTO
	if err := r.db.WithContext(ctx).First(&dto, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("superadmin", email)
		}
		return nil, err
	}

	return superAdminToDomain(dto)
}
