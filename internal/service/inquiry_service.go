package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alanalzi/jalin-alam-project/internal/apierror"
	"github.com/alanalzi/jalin-alam-project/internal/dto"
	"github.com/alanalzi/jalin-alam-project/internal/model"
	"github.com/alanalzi/jalin-alam-project/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InquiryService interface {
	List(ctx context.Context) ([]dto.InquiryResponse, error)
	Get(ctx context.Context, id uint) (*dto.InquiryResponse, error)
	Create(ctx context.Context, req dto.CreateInquiryRequest) (uint, error)
	Update(ctx context.Context, id uint, req dto.UpdateInquiryRequest) error
	Delete(ctx context.Context, id uint) error
}

type inquiryService struct {
	repo repository.InquiryRepository
}

func NewInquiryService(repo repository.InquiryRepository) InquiryService {
	return &inquiryService{repo: repo}
}

// GenerateInquiryCode produces INQ-<8 hex chars>-<epoch ms>, the format the
// dashboard pre-fills when the user leaves the code blank.
func GenerateInquiryCode(now time.Time) string {
	random := strings.SplitN(uuid.NewString(), "-", 2)[0]
	return fmt.Sprintf("INQ-%s-%d", random, now.UnixMilli())
}

func mapInquiry(inq model.Inquiry) dto.InquiryResponse {
	images := make([]string, 0, len(inq.Images))
	for _, img := range inq.Images {
		images = append(images, img.ImageURL)
	}
	return dto.InquiryResponse{
		ID:                 inq.ID,
		InquiryCode:        inq.InquiryCode,
		CustomerName:       inq.CustomerName,
		CustomerEmail:      inq.CustomerEmail,
		CustomerPhone:      inq.CustomerPhone,
		CustomerAddress:    inq.CustomerAddress,
		ProductName:        inq.ProductName,
		ProductDescription: inq.ProductDescription,
		CustomerRequest:    inq.CustomerRequest,
		RequestDate:        inq.RequestDate.String(),
		ImageDeadline:      dateString(inq.ImageDeadline),
		OrderQuantity:      inq.OrderQuantity,
		CreatedAt:          timeString(inq.CreatedAt),
		UpdatedAt:          timeString(inq.UpdatedAt),
		Images:             images,
	}
}

func (s *inquiryService) List(ctx context.Context) ([]dto.InquiryResponse, error) {
	inquiries, err := s.repo.List(ctx)
	if err != nil {
		return nil, internalErr("Failed to fetch inquiries", err)
	}
	result := make([]dto.InquiryResponse, 0, len(inquiries))
	for _, inq := range inquiries {
		result = append(result, mapInquiry(inq))
	}
	return result, nil
}

func (s *inquiryService) Get(ctx context.Context, id uint) (*dto.InquiryResponse, error) {
	inq, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Inquiry not found", "Failed to fetch inquiry")
	}
	resp := mapInquiry(*inq)
	return &resp, nil
}

func (s *inquiryService) Create(ctx context.Context, req dto.CreateInquiryRequest) (uint, error) {
	requestDate, err := parseDatePtr("request_date", &req.RequestDate)
	if err != nil {
		return 0, err
	}
	if requestDate == nil {
		return 0, apierror.Validation("Customer Name, Product Name, Request Date, and Order Quantity are required")
	}
	imageDeadline, err := parseDatePtr("image_deadline", req.ImageDeadline)
	if err != nil {
		return 0, err
	}

	code := req.InquiryCode
	if code == "" {
		code = GenerateInquiryCode(time.Now())
	}

	images := make([]model.InquiryImage, 0, len(req.Images))
	for _, url := range req.Images {
		images = append(images, model.InquiryImage{ImageURL: url})
	}

	inq := &model.Inquiry{
		InquiryCode:        code,
		CustomerName:       req.CustomerName,
		CustomerEmail:      nullIfEmpty(req.CustomerEmail),
		CustomerPhone:      nullIfEmpty(req.CustomerPhone),
		CustomerAddress:    nullIfEmpty(req.CustomerAddress),
		ProductName:        req.ProductName,
		ProductDescription: nullIfEmpty(req.ProductDescription),
		CustomerRequest:    nullIfEmpty(req.CustomerRequest),
		RequestDate:        *requestDate,
		ImageDeadline:      imageDeadline,
		OrderQuantity:      req.OrderQuantity.Int(),
		Images:             images,
	}

	if err := s.repo.Create(ctx, inq); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return 0, apierror.Conflict(fmt.Sprintf("Inquiry code '%s' already exists. Please use a different code.", code))
		}
		return 0, internalErr("Failed to add inquiry", err)
	}
	return inq.ID, nil
}

func (s *inquiryService) Update(ctx context.Context, id uint, req dto.UpdateInquiryRequest) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return notFoundOr(err, "Inquiry not found", "Failed to fetch inquiry")
	}

	fields := map[string]interface{}{}
	setField(fields, "inquiry_code", req.InquiryCode)
	setField(fields, "customer_name", req.CustomerName)
	setField(fields, "customer_email", req.CustomerEmail)
	setField(fields, "customer_phone", req.CustomerPhone)
	setField(fields, "customer_address", req.CustomerAddress)
	setField(fields, "product_name", req.ProductName)
	setField(fields, "product_description", req.ProductDescription)
	setField(fields, "customer_request", req.CustomerRequest)
	if req.RequestDate != nil {
		d, err := parseDatePtr("request_date", req.RequestDate)
		if err != nil {
			return err
		}
		fields["request_date"] = d
	}
	if req.ImageDeadline != nil {
		d, err := parseDatePtr("image_deadline", req.ImageDeadline)
		if err != nil {
			return err
		}
		fields["image_deadline"] = d
	}
	if req.OrderQuantity != nil {
		fields["order_quantity"] = req.OrderQuantity.Int()
	}

	var images *[]model.InquiryImage
	if req.Images != nil {
		rows := make([]model.InquiryImage, 0, len(*req.Images))
		for _, url := range *req.Images {
			rows = append(rows, model.InquiryImage{ImageURL: url})
		}
		images = &rows
	}

	if err := s.repo.Update(ctx, id, fields, images); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apierror.Conflict("Inquiry code already exists. Please use a different code.")
		}
		return internalErr("Failed to update inquiry", err)
	}
	return nil
}

func (s *inquiryService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return notFoundOr(err, "Inquiry not found", "Failed to delete inquiry")
	}
	return nil
}
