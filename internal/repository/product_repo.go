package repository

import (
	"context"
	"fmt"

	"github.com/alanalzi/jalin-alam-project/internal/apierror"
	"github.com/alanalzi/jalin-alam-project/internal/model"

	"gorm.io/gorm"
)

// ProductChildSets carries the replace-all child collections for an update.
// A nil pointer leaves that collection untouched; a pointer to an empty
// slice clears it.
type ProductChildSets struct {
	Images    *[]model.ProductImage
	Checklist *[]model.ProductChecklistItem
	Materials *[]model.ProductMaterial
}

type ProductRepository interface {
	List(ctx context.Context) ([]model.Product, error)
	FindByID(ctx context.Context, id uint) (*model.Product, error)
	// Create inserts the product and all provided children in one
	// transaction, after validating every material's supplier reference.
	Create(ctx context.Context, p *model.Product) error
	// Update applies the scalar columns and replaces any present child set,
	// all inside one transaction. An invalid material reference rolls the
	// whole update back.
	Update(ctx context.Context, id uint, fields map[string]interface{}, children ProductChildSets) error
	Delete(ctx context.Context, id uint) error
	// ImageURLs lists every stored product image URL (upload janitor).
	ImageURLs(ctx context.Context) ([]string, error)
}

type productRepo struct{ db *gorm.DB }

func NewProductRepository(db *gorm.DB) ProductRepository { return &productRepo{db: db} }

func preloadProduct(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Preload("Checklist", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Preload("Materials.Supplier")
}

func (r *productRepo) List(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	err := preloadProduct(r.db.WithContext(ctx)).
		Order("id DESC").
		Find(&products).Error
	return products, err
}

func (r *productRepo) FindByID(ctx context.Context, id uint) (*model.Product, error) {
	var p model.Product
	err := preloadProduct(r.db.WithContext(ctx)).First(&p, id).Error
	return &p, err
}

// validateMaterials checks every material's supplier reference inside the
// caller's transaction so a concurrent supplier delete cannot slip through.
func validateMaterials(tx *gorm.DB, materials []model.ProductMaterial) error {
	for _, m := range materials {
		var count int64
		if err := tx.Model(&model.Supplier{}).Where("id = ?", m.MaterialID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return apierror.Validation(fmt.Sprintf("Supplier with ID %d not found.", m.MaterialID))
		}
	}
	return nil
}

func (r *productRepo) Create(ctx context.Context, p *model.Product) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := validateMaterials(tx, p.Materials); err != nil {
			return err
		}
		return tx.Create(p).Error
	})
}

func (r *productRepo) Update(ctx context.Context, id uint, fields map[string]interface{}, children ProductChildSets) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(fields) > 0 {
			if err := tx.Model(&model.Product{}).Where("id = ?", id).Updates(fields).Error; err != nil {
				return err
			}
		}
		if children.Checklist != nil {
			if err := replaceChildren(tx, id, *children.Checklist, func(item *model.ProductChecklistItem) {
				item.ProductID = id
			}); err != nil {
				return err
			}
		}
		if children.Materials != nil {
			if err := validateMaterials(tx, *children.Materials); err != nil {
				return err
			}
			if err := replaceChildren(tx, id, *children.Materials, func(m *model.ProductMaterial) {
				m.ProductID = id
			}); err != nil {
				return err
			}
		}
		if children.Images != nil {
			if err := replaceChildren(tx, id, *children.Images, func(img *model.ProductImage) {
				img.ProductID = id
			}); err != nil {
				return err
			}
		}
		return nil
	})
}

// replaceChildren implements set-replacement on a one-to-many relation:
// delete every row for the parent, then bulk-insert the provided set.
func replaceChildren[T any](tx *gorm.DB, productID uint, rows []T, bind func(*T)) error {
	if err := tx.Where("product_id = ?", productID).Delete(new(T)).Error; err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}
	for i := range rows {
		bind(&rows[i])
	}
	return tx.Create(&rows).Error
}

func (r *productRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", id).Delete(&model.ProductImage{}).Error; err != nil {
			return err
		}
		if err := tx.Where("product_id = ?", id).Delete(&model.ProductChecklistItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("product_id = ?", id).Delete(&model.ProductMaterial{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&model.Product{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *productRepo) ImageURLs(ctx context.Context) ([]string, error) {
	var urls []string
	err := r.db.WithContext(ctx).Model(&model.ProductImage{}).Pluck("image_url", &urls).Error
	return urls, err
}
