package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Treatment is a billable procedure in the dentist's catalog.
// @Description Treatment information
type Treatment struct {
	ID        uuid.UUID `json:"id" gorm:"type:varchar(36);primaryKey" example:"0b6f4c3a-1d2e-4f5a-9b8c-7d6e5f4a3b2c"`
	Name      string    `json:"name" gorm:"type:varchar(191);not null;uniqueIndex" example:"Scaling"`
	Price     float64   `json:"price" gorm:"not null;default:0" example:"1500"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// BeforeCreate assigns a random id when none is set.
func (t *Treatment) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// Prescription is a medicine or instruction grouped by type.
// @Description Prescription information
type Prescription struct {
	ID        uuid.UUID `json:"id" gorm:"type:varchar(36);primaryKey" example:"5e2d1c0b-9a8f-4e7d-8c6b-5a4f3e2d1c0b"`
	Name      string    `json:"name" gorm:"type:varchar(191);not null;uniqueIndex" example:"Amoxicillin 500mg"`
	Type      string    `json:"type" gorm:"type:varchar(100);not null;index" example:"medication"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// BeforeCreate assigns a random id when none is set.
func (p *Prescription) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// PrescriptionItem is a prescription inside its type group.
type PrescriptionItem struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}
