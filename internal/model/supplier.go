package model

import "time"

// Supplier furnishes raw materials; referenced by ProductMaterial.
type Supplier struct {
	ID                  uint   `gorm:"primaryKey"`
	Name                string `gorm:"not null"`
	ContactInfoText     *string
	SupplierDescription *string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}
