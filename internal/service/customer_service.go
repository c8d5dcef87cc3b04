package service

import (
	"context"

	"github.com/alanalzi/jalin-alam-project/internal/dto"
	"github.com/alanalzi/jalin-alam-project/internal/model"
	"github.com/alanalzi/jalin-alam-project/internal/repository"
)

type CustomerService interface {
	List(ctx context.Context) ([]dto.CustomerResponse, error)
	Get(ctx context.Context, id uint) (*dto.CustomerResponse, error)
	Create(ctx context.Context, req dto.CreateCustomerRequest) (uint, error)
	Update(ctx context.Context, id uint, req dto.UpdateCustomerRequest) error
	Delete(ctx context.Context, id uint) error
}

type customerService struct {
	repo repository.CustomerRepository
}

func NewCustomerService(repo repository.CustomerRepository) CustomerService {
	return &customerService{repo: repo}
}

func mapCustomer(c model.Customer) dto.CustomerResponse {
	return dto.CustomerResponse{
		ID:      c.ID,
		Name:    c.Name,
		Email:   c.Email,
		Phone:   c.Phone,
		Address: c.Address,
	}
}

func (s *customerService) List(ctx context.Context) ([]dto.CustomerResponse, error) {
	customers, err := s.repo.List(ctx)
	if err != nil {
		return nil, internalErr("Failed to fetch customers", err)
	}
	result := make([]dto.CustomerResponse, 0, len(customers))
	for _, c := range customers {
		result = append(result, mapCustomer(c))
	}
	return result, nil
}

func (s *customerService) Get(ctx context.Context, id uint) (*dto.CustomerResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Customer not found", "Failed to fetch customer")
	}
	resp := mapCustomer(*c)
	return &resp, nil
}

func (s *customerService) Create(ctx context.Context, req dto.CreateCustomerRequest) (uint, error) {
	c := &model.Customer{
		Name:    req.Name,
		Email:   nullIfEmpty(req.Email),
		Phone:   nullIfEmpty(req.Phone),
		Address: nullIfEmpty(req.Address),
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return 0, internalErr("Failed to add customer", err)
	}
	return c.ID, nil
}

func (s *customerService) Update(ctx context.Context, id uint, req dto.UpdateCustomerRequest) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return notFoundOr(err, "Customer not found", "Failed to fetch customer")
	}

	fields := map[string]interface{}{}
	setField(fields, "name", req.Name)
	setField(fields, "email", req.Email)
	setField(fields, "phone", req.Phone)
	setField(fields, "address", req.Address)

	if err := s.repo.Update(ctx, id, fields); err != nil {
		return internalErr("Failed to update customer", err)
	}
	return nil
}

func (s *customerService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return notFoundOr(err, "Customer not found", "Failed to delete customer")
	}
	return nil
}
