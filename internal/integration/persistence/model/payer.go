// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/partilio/backend/internal/domain/entity"
)

// PayerModel represents the payers table in the database.
type PayerModel struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index"`
	Name      string         `gorm:"type:varchar(50);not null"`
	Color     string         `gorm:"type:varchar(7);default:'#10B981'"`
	CreatedAt time.Time      `gorm:"not null"`
	UpdatedAt time.Time      `gorm:"not null"`
	DeletedAt gorm.DeletedAt `gorm:"index"` // Soft-delete support
}

// TableName returns the table name for the PayerModel.
func (PayerModel) TableName() string {
	return "payers"
}

// ToEntity converts a PayerModel to a domain Payer entity.
func (m *PayerModel) ToEntity() *entity.Payer {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	return &entity.Payer{
		ID:        m.ID,
		UserID:    m.UserID,
		Name:      m.Name,
		Color:     m.Color,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
		DeletedAt: deletedAt,
	}
}

// PayerFromEntity creates a PayerModel from a domain Payer entity.
func PayerFromEntity(payer *entity.Payer) *PayerModel {
	var deletedAt gorm.DeletedAt
	if payer.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *payer.DeletedAt, Valid: true}
	}

	return &PayerModel{
		ID:        payer.ID,
		UserID:    payer.UserID,
		Name:      payer.Name,
		Color:     payer.Color,
		CreatedAt: payer.CreatedAt,
		UpdatedAt: payer.UpdatedAt,
		DeletedAt: deletedAt,
	}
}
