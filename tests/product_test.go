package tests

import (
	"context"
	"fmt"
	"testing"

	"github.com/alanalzi/jalin-alam-project/internal/apierror"
	"github.com/alanalzi/jalin-alam-project/internal/dto"
	"github.com/alanalzi/jalin-alam-project/internal/model"
	"github.com/alanalzi/jalin-alam-project/internal/repository"
	"github.com/alanalzi/jalin-alam-project/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// ── In-memory ProductRepository stub ─────────────────────────────────────────
// Mirrors the contract of the real repository: supplier references are
// validated atomically with the write, sku uniqueness surfaces as
// gorm.ErrDuplicatedKey, and child sets are replaced wholesale.

type stubProductRepo struct {
	products  map[uint]*model.Product
	suppliers map[uint]*model.Supplier
	nextID    uint
}

func newStubProductRepo(suppliers map[uint]*model.Supplier) *stubProductRepo {
	return &stubProductRepo{
		products:  make(map[uint]*model.Product),
		suppliers: suppliers,
		nextID:    1,
	}
}

func (r *stubProductRepo) checkMaterials(materials []model.ProductMaterial) error {
	for _, m := range materials {
		if _, ok := r.suppliers[m.MaterialID]; !ok {
			return apierror.Validation(fmt.Sprintf("Supplier with ID %d not found.", m.MaterialID))
		}
	}
	return nil
}

func (r *stubProductRepo) Create(_ context.Context, p *model.Product) error {
	if err := r.checkMaterials(p.Materials); err != nil {
		return err
	}
	if p.SKU != nil {
		for _, existing := range r.products {
			if existing.SKU != nil && *existing.SKU == *p.SKU {
				return gorm.ErrDuplicatedKey
			}
		}
	}
	p.ID = r.nextID
	r.nextID++
	r.products[p.ID] = p
	return nil
}

func (r *stubProductRepo) FindByID(_ context.Context, id uint) (*model.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	for i := range cp.Materials {
		cp.Materials[i].Supplier = r.suppliers[cp.Materials[i].MaterialID]
	}
	return &cp, nil
}

func (r *stubProductRepo) List(_ context.Context) ([]model.Product, error) {
	result := make([]model.Product, 0, len(r.products))
	for _, p := range r.products {
		result = append(result, *p)
	}
	return result, nil
}

func (r *stubProductRepo) Update(_ context.Context, id uint, fields map[string]interface{}, children repository.ProductChildSets) error {
	p, ok := r.products[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	for col, v := range fields {
		switch col {
		case "name":
			if v != nil {
				p.Name = v.(string)
			}
		case "sku":
			p.SKU = strField(v)
		case "inquiry_code":
			p.InquiryCode = strField(v)
		case "category":
			p.Category = strField(v)
		case "description":
			p.Description = strField(v)
		case "status":
			if v != nil {
				p.Status = v.(string)
			}
		case "type":
			if v != nil {
				p.Type = v.(string)
			}
		case "start_date":
			p.StartDate = v.(*model.Date)
		case "deadline":
			p.Deadline = v.(*model.Date)
		}
	}
	if children.Materials != nil {
		if err := r.checkMaterials(*children.Materials); err != nil {
			return err
		}
		p.Materials = *children.Materials
	}
	if children.Checklist != nil {
		p.Checklist = *children.Checklist
	}
	if children.Images != nil {
		p.Images = *children.Images
	}
	return nil
}

func (r *stubProductRepo) Delete(_ context.Context, id uint) error {
	if _, ok := r.products[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.products, id)
	return nil
}

func (r *stubProductRepo) ImageURLs(_ context.Context) ([]string, error) {
	var urls []string
	for _, p := range r.products {
		for _, img := range p.Images {
			urls = append(urls, img.ImageURL)
		}
	}
	return urls, nil
}

func strField(v interface{}) *string {
	if v == nil {
		return nil
	}
	s := v.(string)
	return &s
}

var _ repository.ProductRepository = (*stubProductRepo)(nil)

// ── Helpers ──────────────────────────────────────────────────────────────────

func strPtr(s string) *string { return &s }

func newProductService(suppliers map[uint]*model.Supplier) (service.ProductService, *stubProductRepo, *stubInquiryRepo) {
	productRepo := newStubProductRepo(suppliers)
	inquiryRepo := newStubInquiryRepo()
	return service.NewProductService(productRepo, inquiryRepo, nil), productRepo, inquiryRepo
}

// ── Tests ────────────────────────────────────────────────────────────────────

func TestProductCreateAndGetRoundTrip(t *testing.T) {
	svc, _, _ := newProductService(map[uint]*model.Supplier{})
	ctx := context.Background()

	id, err := svc.Create(ctx, dto.CreateProductRequest{
		Name:      "Rattan Basket",
		SKU:       strPtr("RB-001"),
		Category:  strPtr("Baskets"),
		StartDate: strPtr("2025-01-10"),
		Deadline:  strPtr("2025-03-01"),
		Images:    []string{"/uploads/a.jpg", "/uploads/b.jpg"},
		Checklist: []dto.ChecklistItemInput{
			{Task: "Weaving", Percentage: 10},
			{Task: "Finishing", Percentage: 50},
		},
	})
	require.NoError(t, err)

	got, err := svc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Rattan Basket", got.Name)
	assert.Equal(t, "RB-001", *got.SKU)
	assert.Equal(t, "Baskets", *got.Category)
	assert.Equal(t, "2025-01-10", *got.StartDate)
	assert.Equal(t, "2025-03-01", *got.Deadline)
	assert.Equal(t, "ongoing", got.Status)
	assert.Equal(t, model.ProductTypeNew, got.Type)
	assert.Equal(t, []string{"/uploads/a.jpg", "/uploads/b.jpg"}, got.Images)
	assert.Equal(t, 30, got.Progress) // mean of 10 and 50
}

func TestProductCreateRequiresSKUOrInquiryCode(t *testing.T) {
	svc, repo, _ := newProductService(map[uint]*model.Supplier{})

	_, err := svc.Create(context.Background(), dto.CreateProductRequest{Name: "No identifier"})
	require.Error(t, err)
	assert.Equal(t, apierror.KindValidation, apierror.KindOf(err))
	assert.Empty(t, repo.products)

	// Empty strings count as absent.
	_, err = svc.Create(context.Background(), dto.CreateProductRequest{
		Name: "Still nothing", SKU: strPtr(""), InquiryCode: strPtr(""),
	})
	require.Error(t, err)
	assert.Equal(t, apierror.KindValidation, apierror.KindOf(err))
}

func TestProductCreateUnknownSupplierRollsBack(t *testing.T) {
	suppliers := map[uint]*model.Supplier{1: {ID: 1, Name: "Rattan Co"}}
	svc, repo, _ := newProductService(suppliers)
	ctx := context.Background()

	_, err := svc.Create(ctx, dto.CreateProductRequest{
		Name: "Basket",
		SKU:  strPtr("B-1"),
		RequiredMaterials: []dto.MaterialInput{
			{SupplierID: 1},
			{SupplierID: 99},
		},
	})
	require.Error(t, err)
	assert.Equal(t, apierror.KindValidation, apierror.KindOf(err))
	assert.Contains(t, err.Error(), "99")

	// Nothing persisted: a later list must not include the product.
	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.Empty(t, repo.products)
}

func TestProductDuplicateSKUConflict(t *testing.T) {
	svc, _, _ := newProductService(map[uint]*model.Supplier{})
	ctx := context.Background()

	_, err := svc.Create(ctx, dto.CreateProductRequest{Name: "First", SKU: strPtr("DUP-1")})
	require.NoError(t, err)

	_, err = svc.Create(ctx, dto.CreateProductRequest{Name: "Second", SKU: strPtr("DUP-1")})
	require.Error(t, err)
	assert.Equal(t, apierror.KindConflict, apierror.KindOf(err))
	assert.Contains(t, err.Error(), "DUP-1")

	// The first product is intact.
	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "First", list[0].Name)
}

func TestProductChecklistReplaceAll(t *testing.T) {
	svc, _, _ := newProductService(map[uint]*model.Supplier{})
	ctx := context.Background()

	id, err := svc.Create(ctx, dto.CreateProductRequest{
		Name: "Lamp", SKU: strPtr("L-1"),
		Checklist: []dto.ChecklistItemInput{
			{Task: "A", Percentage: 10},
			{Task: "B", Percentage: 50},
		},
	})
	require.NoError(t, err)

	newChecklist := []dto.ChecklistItemInput{{Task: "C", Percentage: 30}}
	require.NoError(t, svc.Update(ctx, id, dto.UpdateProductRequest{Checklist: &newChecklist}))

	got, err := svc.Get(ctx, id)
	require.NoError(t, err)
	require.Len(t, got.Checklist, 1)
	assert.Equal(t, "C", got.Checklist[0].Task)
	assert.Equal(t, 30, got.Checklist[0].Percentage)
	assert.Equal(t, 30, got.Progress)
}

func TestProductUpdateOmittedChildrenUntouched(t *testing.T) {
	svc, _, _ := newProductService(map[uint]*model.Supplier{})
	ctx := context.Background()

	id, err := svc.Create(ctx, dto.CreateProductRequest{
		Name: "Vase", SKU: strPtr("V-1"),
		Images: []string{"/uploads/x.jpg"},
	})
	require.NoError(t, err)

	// Only the name changes; the image set must survive.
	require.NoError(t, svc.Update(ctx, id, dto.UpdateProductRequest{Name: strPtr("Tall Vase")}))

	got, err := svc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Tall Vase", got.Name)
	assert.Equal(t, []string{"/uploads/x.jpg"}, got.Images)
}

func TestProductUpdateEmptyChildSetClears(t *testing.T) {
	svc, _, _ := newProductService(map[uint]*model.Supplier{})
	ctx := context.Background()

	id, err := svc.Create(ctx, dto.CreateProductRequest{
		Name: "Tray", SKU: strPtr("T-1"),
		Images: []string{"/uploads/y.jpg"},
	})
	require.NoError(t, err)

	empty := []string{}
	require.NoError(t, svc.Update(ctx, id, dto.UpdateProductRequest{Images: &empty}))

	got, err := svc.Get(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, got.Images)
}

func TestProductUpdateUnknownSupplierRejected(t *testing.T) {
	suppliers := map[uint]*model.Supplier{1: {ID: 1, Name: "Rattan Co"}}
	svc, _, _ := newProductService(suppliers)
	ctx := context.Background()

	id, err := svc.Create(ctx, dto.CreateProductRequest{Name: "Chair", SKU: strPtr("C-1")})
	require.NoError(t, err)

	bad := []dto.MaterialInput{{SupplierID: 42}}
	err = svc.Update(ctx, id, dto.UpdateProductRequest{RequiredMaterials: &bad})
	require.Error(t, err)
	assert.Equal(t, apierror.KindValidation, apierror.KindOf(err))

	got, err := svc.Get(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, got.RequiredMaterials)
}

func TestProductDelete(t *testing.T) {
	svc, repo, _ := newProductService(map[uint]*model.Supplier{})
	ctx := context.Background()

	err := svc.Delete(ctx, 12345)
	require.Error(t, err)
	assert.Equal(t, apierror.KindNotFound, apierror.KindOf(err))

	id, err := svc.Create(ctx, dto.CreateProductRequest{
		Name: "Stool", SKU: strPtr("S-1"),
		Images: []string{"/uploads/z.jpg"},
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, id))

	_, err = svc.Get(ctx, id)
	assert.Equal(t, apierror.KindNotFound, apierror.KindOf(err))

	// Child rows went with the parent.
	urls, err := repo.ImageURLs(ctx)
	require.NoError(t, err)
	assert.Empty(t, urls)
}

func TestCustomProductEnrichedFromInquiry(t *testing.T) {
	suppliers := map[uint]*model.Supplier{}
	svc, _, inquiryRepo := newProductService(suppliers)
	ctx := context.Background()

	request := "Carved teak boxes with brass hinges"
	date, _ := model.ParseDate("2025-02-01")
	require.NoError(t, inquiryRepo.Create(ctx, &model.Inquiry{
		InquiryCode:     "INQ-cafe0001-1700000000000",
		CustomerName:    "Budi",
		ProductName:     "Teak Box",
		CustomerRequest: &request,
		RequestDate:     date,
		OrderQuantity:   250,
	}))

	id, err := svc.Create(ctx, dto.CreateProductRequest{
		Name:        "Teak Box",
		InquiryCode: strPtr("INQ-cafe0001-1700000000000"),
		Type:        strPtr(model.ProductTypeCustom),
	})
	require.NoError(t, err)

	got, err := svc.Get(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, got.CustomerRequest)
	assert.Equal(t, request, *got.CustomerRequest)
	require.NotNil(t, got.OrderQuantity)
	assert.Equal(t, 250, *got.OrderQuantity)

	// A dangling code is silently ignored.
	id2, err := svc.Create(ctx, dto.CreateProductRequest{
		Name:        "Orphan",
		InquiryCode: strPtr("INQ-ffffffff-1"),
		Type:        strPtr(model.ProductTypeCustom),
	})
	require.NoError(t, err)
	got2, err := svc.Get(ctx, id2)
	require.NoError(t, err)
	assert.Nil(t, got2.CustomerRequest)
	assert.Nil(t, got2.OrderQuantity)
}
