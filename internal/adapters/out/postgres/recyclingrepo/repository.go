package recyclingrepo

import (
	"context"
	"errors"

	"watertanker/internal/core/domain/model/kernel"
	"watertanker/internal/core/domain/model/recycling"
	"watertanker/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormRecyclingRepository implements RecyclingRepository using GORM.
type GormRecyclingRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormRecyclingRepository creates a new GORM recycling repository.
func NewGormRecyclingRepository(db *gorm.DB, tracker aggregateTracker) *GormRecyclingRepository {
	return &GormRecyclingRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new submission to the database.
func (r *GormRecyclingRepository) Add(ctx context.Context, aggregate *recycling.Submission) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing submission to the database. Select("*") keeps
// GORM from skipping nil value and amount columns.
func (r *GormRecyclingRepository) Update(ctx context.Context, aggregate *recycling.Submission) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&SubmissionDTO{}).
		Where("id = ?", dto.ID).
		Select("*").Omit("created_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("submission", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a submission by ID.
func (r *GormRecyclingRepository) Get(ctx context.Context, id kernel.UUID) (*recycling.Submission, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto SubmissionDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("submission", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// DeleteAllByCustomer removes every submission made by the given customer.
func (r *GormRecyclingRepository) DeleteAllByCustomer(ctx context.Context, customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Delete(&SubmissionDTO{}, "customer_id = ?", customerID.Bytes()).Error
}
