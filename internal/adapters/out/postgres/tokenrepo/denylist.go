// Package tokenrepo persists the revoked-token denylist.
package tokenrepo

import (
	"context"
	"errors"
	"time"

	"watertanker/internal/core/ports"

	"gorm.io/gorm"
)

// DeniedTokenDTO represents the database structure for persisting revoked
// token identifiers.
type DeniedTokenDTO struct {
	JTI       string    `gorm:"type:text;primaryKey"`
	ExpiresAt time.Time `gorm:"index"`
	CreatedAt time.Time
}

// TableName specifies the database table name for denylist entries.
func (DeniedTokenDTO) TableName() string {
	return "denied_tokens"
}

// GormTokenDenylist implements TokenDenylist using GORM.
type GormTokenDenylist struct {
	db *gorm.DB
}

// NewGormTokenDenylist creates a new GORM token denylist.
func NewGormTokenDenylist(db *gorm.DB) *GormTokenDenylist {
	return &GormTokenDenylist{db: db}
}

// Add records a revoked token identifier. Revoking the same token twice is
// not an error.
func (r *GormTokenDenylist) Add(ctx context.Context, token ports.DeniedToken) error {
	dto := DeniedTokenDTO{
		JTI:       token.JTI,
		ExpiresAt: token.ExpiresAt,
	}
	err := r.db.WithContext(ctx).Create(&dto).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil
	}
	return err
}

// Contains reports whether the given token identifier has been revoked.
func (r *GormTokenDenylist) Contains(ctx context.Context, jti string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&DeniedTokenDTO{}).
		Where("jti = ?", jti).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// DeleteExpired removes entries whose ExpiresAt is before now.
func (r *GormTokenDenylist) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("expires_at < ?", now).
		Delete(&DeniedTokenDTO{})
	return result.RowsAffected, result.Error
}
