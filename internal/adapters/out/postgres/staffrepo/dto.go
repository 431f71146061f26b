// Package staffrepo persists staff and superadmin accounts.
package staffrepo

import (
	"time"

	"watertanker/internal/core/domain/model/account"
	"watertanker/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// StaffDTO represents the database structure for persisting staff members.
type StaffDTO struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	FirstName    string     `gorm:"type:text"`
	LastName     string     `gorm:"type:text"`
	Email        string     `gorm:"type:text;uniqueIndex"`
	PasswordHash string     `gorm:"type:text"`
	CreatedBy    *uuid.UUID `gorm:"type:uuid"`
	CreatedAt    time.Time
}

// TableName specifies the database table name for staff entities.
func (StaffDTO) TableName() string {
	return "staff"
}

// SuperAdminDTO represents the database structure for persisting superadmins.
type SuperAdminDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"type:text;uniqueIndex"`
	PasswordHash string    `gorm:"type:text"`
	CreatedAt    time.Time
}

// TableName specifies the database table name for superadmin entities.
func (SuperAdminDTO) TableName() string {
	return "superadmins"
}

func staffFromDomain(staff *account.Staff) StaffDTO {
	var createdBy *uuid.UUID
	if id := staff.CreatedBy(); id != nil {
		raw := id.Bytes()
		createdBy = &raw
	}

	return StaffDTO{
		ID:           staff.ID().Bytes(),
		FirstName:    staff.FirstName(),
		LastName:     staff.LastName(),
		Email:        staff.Email(),
		PasswordHash: staff.PasswordHash(),
		CreatedBy:    createdBy,
	}
}

func staffToDomain(dto StaffDTO) (*account.Staff, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var createdBy *kernel.UUID
	if dto.CreatedBy != nil {
		converted, convErr := kernel.UUIDFromBytes((*dto.CreatedBy)[:])
		if convErr != nil {
			return nil, convErr
		}
		createdBy = &converted
	}

	return account.RestoreStaff(
		id,
		dto.FirstName,
		dto.LastName,
		dto.Email,
		dto.PasswordHash,
		createdBy,
	)
}

func superAdminFromDomain(admin *account.SuperAdmin) SuperAdminDTO {
	return SuperAdminDTO{
		ID:           admin.ID().Bytes(),
		Email:        admin.Email(),
		PasswordHash: admin.PasswordHash(),
	}
}

func superAdminToDomain(dto SuperAdminDTO) (*account.SuperAdmin, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return account.RestoreSuperAdmin(id, dto.Email, dto.PasswordHash)
}
