package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product types. Custom products originate from an inquiry and carry its code.
const (
	ProductTypeNew    = "New Product"
	ProductTypeCustom = "Custom"
)

// Product is an item under development. SKU is the legacy unique identifier;
// newer records are linked to their originating inquiry via InquiryCode.
type Product struct {
	ID          uint    `gorm:"primaryKey"`
	Name        string  `gorm:"not null"`
	SKU         *string `gorm:"column:sku;uniqueIndex"`
	InquiryCode *string `gorm:"index"`
	Category    *string
	Description *string
	StartDate   *Date
	Deadline    *Date
	// Status is a free-text workflow label set by the user; the Late/Ongoing
	// schedule status is computed from Deadline on every read instead.
	Status    string `gorm:"not null;default:'ongoing'"`
	Type      string `gorm:"not null;default:'New Product'"`
	CreatedAt time.Time
	UpdatedAt time.Time

	// Child collections follow replace-all-on-update semantics.
	Images    []ProductImage         `gorm:"foreignKey:ProductID"`
	Checklist []ProductChecklistItem `gorm:"foreignKey:ProductID"`
	Materials []ProductMaterial      `gorm:"foreignKey:ProductID"`
}

// ProductImage stores one product photo, ordered by id.
type ProductImage struct {
	ID        uint   `gorm:"primaryKey"`
	ProductID uint   `gorm:"not null;index"`
	ImageURL  string `gorm:"not null"`
}

// ProductChecklistItem is a named production task with a completion
// percentage. Overall product progress is the rounded mean of all items.
type ProductChecklistItem struct {
	ID         uint   `gorm:"primaryKey"`
	ProductID  uint   `gorm:"not null;index"`
	Task       string `gorm:"not null"`
	Percentage int    `gorm:"not null;default:0"`
}

func (ProductChecklistItem) TableName() string { return "product_checklists" }

// ProductMaterial links a product to the supplier furnishing one of its
// inputs. MaterialID must reference an existing supplier at write time.
type ProductMaterial struct {
	ID             uint            `gorm:"primaryKey"`
	ProductID      uint            `gorm:"not null;index"`
	MaterialID     uint            `gorm:"not null;index"`
	QuantityNeeded decimal.Decimal `gorm:"type:decimal(10,2);not null;default:1"`

	Supplier *Supplier `gorm:"foreignKey:MaterialID"`
}
