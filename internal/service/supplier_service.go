package service

import (
	"context"

	"github.com/alanalzi/jalin-alam-project/internal/dto"
	"github.com/alanalzi/jalin-alam-project/internal/model"
	"github.com/alanalzi/jalin-alam-project/internal/repository"
)

type SupplierService interface {
	List(ctx context.Context) ([]dto.SupplierResponse, error)
	Get(ctx context.Context, id uint) (*dto.SupplierResponse, error)
	Create(ctx context.Context, req dto.CreateSupplierRequest) (uint, error)
	Update(ctx context.Context, id uint, req dto.UpdateSupplierRequest) error
	Delete(ctx context.Context, id uint) error
}

type supplierService struct {
	repo repository.SupplierRepository
}

func NewSupplierService(repo repository.SupplierRepository) SupplierService {
	return &supplierService{repo: repo}
}

func mapSupplier(s model.Supplier) dto.SupplierResponse {
	return dto.SupplierResponse{
		ID:                  s.ID,
		Name:                s.Name,
		ContactInfoText:     s.ContactInfoText,
		SupplierDescription: s.SupplierDescription,
	}
}

func (s *supplierService) List(ctx context.Context) ([]dto.SupplierResponse, error) {
	suppliers, err := s.repo.List(ctx)
	if err != nil {
		return nil, internalErr("Failed to fetch suppliers", err)
	}
	result := make([]dto.SupplierResponse, 0, len(suppliers))
	for _, sup := range suppliers {
		result = append(result, mapSupplier(sup))
	}
	return result, nil
}

func (s *supplierService) Get(ctx context.Context, id uint) (*dto.SupplierResponse, error) {
	sup, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Supplier not found", "Failed to fetch supplier")
	}
	resp := mapSupplier(*sup)
	return &resp, nil
}

func (s *supplierService) Create(ctx context.Context, req dto.CreateSupplierRequest) (uint, error) {
	sup := &model.Supplier{
		Name:                req.Name,
		ContactInfoText:     nullIfEmpty(req.ContactInfoText),
		SupplierDescription: nullIfEmpty(req.SupplierDescription),
	}
	if err := s.repo.Create(ctx, sup); err != nil {
		return 0, internalErr("Failed to add supplier", err)
	}
	return sup.ID, nil
}

func (s *supplierService) Update(ctx context.Context, id uint, req dto.UpdateSupplierRequest) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return notFoundOr(err, "Supplier not found", "Failed to fetch supplier")
	}

	fields := map[string]interface{}{}
	setField(fields, "name", req.Name)
	setField(fields, "contact_info_text", req.ContactInfoText)
	setField(fields, "supplier_description", req.SupplierDescription)

	if err := s.repo.Update(ctx, id, fields); err != nil {
		return internalErr("Failed to update supplier", err)
	}
	return nil
}

func (s *supplierService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return notFoundOr(err, "Supplier not found", "Failed to delete supplier")
	}
	return nil
}
