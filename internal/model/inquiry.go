package model

import "time"

// Inquiry is a customer's custom-order request — the seed for a
// Custom-type product. Products link back to it via InquiryCode, a
// denormalized join key rather than a foreign key.
type Inquiry struct {
	ID                 uint   `gorm:"primaryKey"`
	InquiryCode        string `gorm:"uniqueIndex;not null"`
	CustomerName       string `gorm:"not null"`
	CustomerEmail      *string
	CustomerPhone      *string
	CustomerAddress    *string
	ProductName        string `gorm:"not null"`
	ProductDescription *string
	CustomerRequest    *string
	RequestDate        Date `gorm:"not null"`
	ImageDeadline      *Date
	OrderQuantity      int `gorm:"not null"`
	CreatedAt          time.Time
	UpdatedAt          time.Time

	// Images are replaced wholesale whenever an update carries the
	// images field; they are never patched row by row.
	Images []InquiryImage `gorm:"foreignKey:InquiryID"`
}

func (Inquiry) TableName() string { return "inquiries" }

// InquiryImage stores one uploaded reference photo, ordered by id.
type InquiryImage struct {
	ID        uint   `gorm:"primaryKey"`
	InquiryID uint   `gorm:"not null;index"`
	ImageURL  string `gorm:"not null"`
}
