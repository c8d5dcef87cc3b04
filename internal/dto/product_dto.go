package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type ChecklistItemInput struct {
	Task       string `json:"task"       validate:"required,min=1"`
	Percentage int    `json:"percentage" validate:"min=0,max=100"`
}

// MaterialInput references a supplier by id. QuantityNeeded defaults to 1
// when omitted (the form no longer asks for it).
type MaterialInput struct {
	SupplierID     uint             `json:"supplier_id"     validate:"required"`
	QuantityNeeded *decimal.Decimal `json:"quantity_needed"`
}

// CreateProductRequest keeps the original wire names: startDate/deadline in
// camelCase, the rest snake_case. Either SKU or an inquiry code must be set.
type CreateProductRequest struct {
	Name              string               `json:"name" validate:"required,min=1"`
	SKU               *string              `json:"sku"`
	InquiryCode       *string              `json:"inquiry_code"`
	Category          *string              `json:"category"`
	Description       *string              `json:"description"`
	StartDate         *string              `json:"startDate"`
	Deadline          *string              `json:"deadline"`
	Status            *string              `json:"status"`
	Type              *string              `json:"type" validate:"omitempty,oneof='New Product' 'Custom'"`
	RequiredMaterials []MaterialInput      `json:"requiredMaterials"`
	Checklist         []ChecklistItemInput `json:"checklist"`
	Images            []string             `json:"images"`
}

// UpdateProductRequest: nil means absent. Present child-collection pointers
// replace the whole stored set, even when the provided slice is empty.
type UpdateProductRequest struct {
	Name              *string               `json:"name"`
	SKU               *string               `json:"sku"`
	InquiryCode       *string               `json:"inquiry_code"`
	Category          *string               `json:"category"`
	Description       *string               `json:"description"`
	StartDate         *string               `json:"startDate"`
	Deadline          *string               `json:"deadline"`
	Status            *string               `json:"status"`
	Type              *string               `json:"type" validate:"omitempty,oneof='New Product' 'Custom'"`
	RequiredMaterials *[]MaterialInput      `json:"requiredMaterials"`
	Checklist         *[]ChecklistItemInput `json:"checklist"`
	Images            *[]string             `json:"images"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ChecklistItemResponse struct {
	ID         uint   `json:"id"`
	Task       string `json:"task"`
	Percentage int    `json:"percentage"`
}

type MaterialResponse struct {
	MaterialID          uint            `json:"material_id"`
	MaterialName        string          `json:"material_name"`
	QuantityNeeded      decimal.Decimal `json:"quantity_needed"`
	SupplierDescription *string         `json:"supplier_description"`
	ContactInfoText     *string         `json:"contact_info_text"`
}

type ProductResponse struct {
	ID          uint     `json:"id"`
	Name        string   `json:"name"`
	SKU         *string  `json:"sku"`
	InquiryCode *string  `json:"inquiry_code"`
	Category    *string  `json:"category"`
	Description *string  `json:"description"`
	StartDate   *string  `json:"startDate"`
	Deadline    *string  `json:"deadline"`
	Status      string   `json:"status"`
	Type        string   `json:"type"`
	Images      []string `json:"images"`
	// Progress is the rounded mean of checklist percentages, 0 when empty.
	Progress int `json:"overall_checklist_percentage"`
	// ScheduleStatus is "Late" or "Ongoing", derived from Deadline on every
	// read — the authoritative late/ongoing signal (Status above is a free
	// workflow label).
	ScheduleStatus string `json:"schedule_status"`

	// Detail-only fields, omitted from list responses.
	Checklist         []ChecklistItemResponse `json:"checklist,omitempty"`
	RequiredMaterials []MaterialResponse      `json:"requiredMaterials,omitempty"`
	// Enriched from the linked inquiry for Custom products; best-effort.
	CustomerRequest *string `json:"customer_request,omitempty"`
	OrderQuantity   *int    `json:"order_quantity,omitempty"`
}
