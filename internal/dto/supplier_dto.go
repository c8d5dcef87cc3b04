package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateSupplierRequest struct {
	Name                string  `json:"name" validate:"required,min=1"`
	ContactInfoText     *string `json:"contact_info_text"`
	SupplierDescription *string `json:"supplier_description"`
}

type UpdateSupplierRequest struct {
	Name                *string `json:"name"`
	ContactInfoText     *string `json:"contact_info_text"`
	SupplierDescription *string `json:"supplier_description"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type SupplierResponse struct {
	ID                  uint    `json:"id"`
	Name                string  `json:"name"`
	ContactInfoText     *string `json:"contact_info_text"`
	SupplierDescription *string `json:"supplier_description"`
}
