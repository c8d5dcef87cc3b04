package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/alanalzi/jalin-alam-project/internal/apierror"
	"github.com/alanalzi/jalin-alam-project/internal/dto"
	"github.com/alanalzi/jalin-alam-project/internal/model"
	"github.com/alanalzi/jalin-alam-project/internal/repository"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	productListCacheKey = "cache:products:list"
	productListCacheTTL = 30 * time.Second
)

type ProductService interface {
	List(ctx context.Context) ([]dto.ProductResponse, error)
	Get(ctx context.Context, id uint) (*dto.ProductResponse, error)
	Create(ctx context.Context, req dto.CreateProductRequest) (uint, error)
	Update(ctx context.Context, id uint, req dto.UpdateProductRequest) error
	Delete(ctx context.Context, id uint) error
}

type productService struct {
	repo        repository.ProductRepository
	inquiryRepo repository.InquiryRepository
	rdb         *redis.Client // nil disables the list cache (tests)
}

func NewProductService(repo repository.ProductRepository, inquiryRepo repository.InquiryRepository, rdb *redis.Client) ProductService {
	return &productService{repo: repo, inquiryRepo: inquiryRepo, rdb: rdb}
}

func mapProduct(p model.Product, now time.Time) dto.ProductResponse {
	images := make([]string, 0, len(p.Images))
	for _, img := range p.Images {
		images = append(images, img.ImageURL)
	}
	return dto.ProductResponse{
		ID:             p.ID,
		Name:           p.Name,
		SKU:            p.SKU,
		InquiryCode:    p.InquiryCode,
		Category:       p.Category,
		Description:    p.Description,
		StartDate:      dateString(p.StartDate),
		Deadline:       dateString(p.Deadline),
		Status:         p.Status,
		Type:           p.Type,
		Images:         images,
		Progress:       OverallProgress(p.Checklist),
		ScheduleStatus: ScheduleStatus(p.Deadline, now),
	}
}

// mapProductDetail adds the checklist and hydrated materials on top of the
// list representation.
func mapProductDetail(p model.Product, now time.Time) dto.ProductResponse {
	resp := mapProduct(p, now)

	resp.Checklist = make([]dto.ChecklistItemResponse, 0, len(p.Checklist))
	for _, item := range p.Checklist {
		resp.Checklist = append(resp.Checklist, dto.ChecklistItemResponse{
			ID:         item.ID,
			Task:       item.Task,
			Percentage: item.Percentage,
		})
	}

	resp.RequiredMaterials = make([]dto.MaterialResponse, 0, len(p.Materials))
	for _, m := range p.Materials {
		mat := dto.MaterialResponse{
			MaterialID:     m.MaterialID,
			QuantityNeeded: m.QuantityNeeded,
		}
		if m.Supplier != nil {
			mat.MaterialName = m.Supplier.Name
			mat.SupplierDescription = m.Supplier.SupplierDescription
			mat.ContactInfoText = m.Supplier.ContactInfoText
		}
		resp.RequiredMaterials = append(resp.RequiredMaterials, mat)
	}
	return resp
}

func (s *productService) List(ctx context.Context) ([]dto.ProductResponse, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, productListCacheKey).Bytes(); err == nil {
			var result []dto.ProductResponse
			if json.Unmarshal(cached, &result) == nil {
				return result, nil
			}
		}
	}

	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, internalErr("Failed to fetch products", err)
	}
	now := time.Now()
	result := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		result = append(result, mapProduct(p, now))
	}

	if s.rdb != nil {
		if data, err := json.Marshal(result); err == nil {
			if err := s.rdb.Set(ctx, productListCacheKey, data, productListCacheTTL).Err(); err != nil {
				log.Warn().Err(err).Msg("product list cache write failed")
			}
		}
	}
	return result, nil
}

func (s *productService) Get(ctx context.Context, id uint) (*dto.ProductResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Product not found", "Failed to fetch product")
	}

	resp := mapProductDetail(*p, time.Now())

	// Custom products carry their inquiry's request details when the linked
	// inquiry still exists; a dangling code is silently ignored.
	if p.Type == model.ProductTypeCustom && p.InquiryCode != nil {
		if inq, err := s.inquiryRepo.FindByCode(ctx, *p.InquiryCode); err == nil {
			resp.CustomerRequest = inq.CustomerRequest
			qty := inq.OrderQuantity
			resp.OrderQuantity = &qty
		}
	}
	return &resp, nil
}

func materialRows(inputs []dto.MaterialInput) []model.ProductMaterial {
	rows := make([]model.ProductMaterial, 0, len(inputs))
	for _, in := range inputs {
		qty := decimal.NewFromInt(1)
		if in.QuantityNeeded != nil {
			qty = *in.QuantityNeeded
		}
		rows = append(rows, model.ProductMaterial{MaterialID: in.SupplierID, QuantityNeeded: qty})
	}
	return rows
}

func checklistRows(inputs []dto.ChecklistItemInput) []model.ProductChecklistItem {
	rows := make([]model.ProductChecklistItem, 0, len(inputs))
	for _, in := range inputs {
		rows = append(rows, model.ProductChecklistItem{Task: in.Task, Percentage: in.Percentage})
	}
	return rows
}

func imageRows(urls []string) []model.ProductImage {
	rows := make([]model.ProductImage, 0, len(urls))
	for _, url := range urls {
		rows = append(rows, model.ProductImage{ImageURL: url})
	}
	return rows
}

func (s *productService) Create(ctx context.Context, req dto.CreateProductRequest) (uint, error) {
	sku := nullIfEmpty(req.SKU)
	inquiryCode := nullIfEmpty(req.InquiryCode)
	if sku == nil && inquiryCode == nil {
		return 0, apierror.Validation("Name and either SKU or inquiry code are required")
	}

	startDate, err := parseDatePtr("startDate", req.StartDate)
	if err != nil {
		return 0, err
	}
	deadline, err := parseDatePtr("deadline", req.Deadline)
	if err != nil {
		return 0, err
	}

	status := "ongoing"
	if st := nullIfEmpty(req.Status); st != nil {
		status = *st
	}
	productType := model.ProductTypeNew
	if t := nullIfEmpty(req.Type); t != nil {
		productType = *t
	}

	p := &model.Product{
		Name:        req.Name,
		SKU:         sku,
		InquiryCode: inquiryCode,
		Category:    nullIfEmpty(req.Category),
		Description: nullIfEmpty(req.Description),
		StartDate:   startDate,
		Deadline:    deadline,
		Status:      status,
		Type:        productType,
		Images:      imageRows(req.Images),
		Checklist:   checklistRows(req.Checklist),
		Materials:   materialRows(req.RequiredMaterials),
	}

	if err := s.repo.Create(ctx, p); err != nil {
		var apiErr *apierror.Error
		if errors.As(err, &apiErr) {
			return 0, err
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			dup := ""
			if sku != nil {
				dup = *sku
			}
			return 0, apierror.Conflict(fmt.Sprintf("SKU '%s' already exists. Please use a different SKU.", dup))
		}
		return 0, internalErr("Failed to add product", err)
	}

	s.invalidateListCache(ctx)
	return p.ID, nil
}

func (s *productService) Update(ctx context.Context, id uint, req dto.UpdateProductRequest) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return notFoundOr(err, "Product not found", "Failed to fetch product")
	}

	fields := map[string]interface{}{}
	setField(fields, "name", req.Name)
	setField(fields, "sku", req.SKU)
	setField(fields, "inquiry_code", req.InquiryCode)
	setField(fields, "category", req.Category)
	setField(fields, "description", req.Description)
	setField(fields, "status", req.Status)
	setField(fields, "type", req.Type)
	if req.StartDate != nil {
		d, err := parseDatePtr("startDate", req.StartDate)
		if err != nil {
			return err
		}
		fields["start_date"] = d
	}
	if req.Deadline != nil {
		d, err := parseDatePtr("deadline", req.Deadline)
		if err != nil {
			return err
		}
		fields["deadline"] = d
	}

	children := repository.ProductChildSets{}
	if req.Images != nil {
		rows := imageRows(*req.Images)
		children.Images = &rows
	}
	if req.Checklist != nil {
		rows := checklistRows(*req.Checklist)
		children.Checklist = &rows
	}
	if req.RequiredMaterials != nil {
		rows := materialRows(*req.RequiredMaterials)
		children.Materials = &rows
	}

	if err := s.repo.Update(ctx, id, fields, children); err != nil {
		var apiErr *apierror.Error
		if errors.As(err, &apiErr) {
			return err
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apierror.Conflict("SKU already exists. Please use a different SKU.")
		}
		return internalErr("Failed to update product", err)
	}

	s.invalidateListCache(ctx)
	return nil
}

func (s *productService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return notFoundOr(err, "Product not found", "Failed to delete product")
	}
	s.invalidateListCache(ctx)
	return nil
}

func (s *productService) invalidateListCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, productListCacheKey).Err(); err != nil {
		log.Warn().Err(err).Msg("product list cache invalidation failed")
	}
}
