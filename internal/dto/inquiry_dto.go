package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

// CreateInquiryRequest mirrors the inquiry form. InquiryCode is optional;
// when blank the server generates one (INQ-<8 hex>-<epoch ms>).
type CreateInquiryRequest struct {
	InquiryCode        string    `json:"inquiry_code"`
	CustomerName       string    `json:"customer_name"       validate:"required,min=1"`
	CustomerEmail      *string   `json:"customer_email"      validate:"omitempty,email"`
	CustomerPhone      *string   `json:"customer_phone"`
	CustomerAddress    *string   `json:"customer_address"`
	ProductName        string    `json:"product_name"        validate:"required,min=1"`
	ProductDescription *string   `json:"product_description"`
	CustomerRequest    *string   `json:"customer_request"`
	RequestDate        string    `json:"request_date"        validate:"required"`
	ImageDeadline      *string   `json:"image_deadline"`
	OrderQuantity      IntString `json:"order_quantity"      validate:"required,gt=0"`
	Images             []string  `json:"images"`
}

// UpdateInquiryRequest: nil scalar fields are left untouched; a nil Images
// pointer leaves the image set alone while a present (even empty) slice
// replaces it wholesale.
type UpdateInquiryRequest struct {
	InquiryCode        *string    `json:"inquiry_code"`
	CustomerName       *string    `json:"customer_name"`
	CustomerEmail      *string    `json:"customer_email"`
	CustomerPhone      *string    `json:"customer_phone"`
	CustomerAddress    *string    `json:"customer_address"`
	ProductName        *string    `json:"product_name"`
	ProductDescription *string    `json:"product_description"`
	CustomerRequest    *string    `json:"customer_request"`
	RequestDate        *string    `json:"request_date"`
	ImageDeadline      *string    `json:"image_deadline"`
	OrderQuantity      *IntString `json:"order_quantity"`
	Images             *[]string  `json:"images"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type InquiryResponse struct {
	ID                 uint     `json:"id"`
	InquiryCode        string   `json:"inquiry_code"`
	CustomerName       string   `json:"customer_name"`
	CustomerEmail      *string  `json:"customer_email"`
	CustomerPhone      *string  `json:"customer_phone"`
	CustomerAddress    *string  `json:"customer_address"`
	ProductName        string   `json:"product_name"`
	ProductDescription *string  `json:"product_description"`
	CustomerRequest    *string  `json:"customer_request"`
	RequestDate        string   `json:"request_date"`
	ImageDeadline      *string  `json:"image_deadline"`
	OrderQuantity      int      `json:"order_quantity"`
	CreatedAt          string   `json:"created_at"`
	UpdatedAt          string   `json:"updated_at"`
	Images             []string `json:"images"`
}
