package repository

import (
	"context"

	"github.com/alanalzi/jalin-alam-project/internal/model"

	"gorm.io/gorm"
)

type InquiryRepository interface {
	List(ctx context.Context) ([]model.Inquiry, error)
	FindByID(ctx context.Context, id uint) (*model.Inquiry, error)
	FindByCode(ctx context.Context, code string) (*model.Inquiry, error)
	// Create inserts the inquiry and any attached images in one transaction.
	Create(ctx context.Context, inq *model.Inquiry) error
	// Update applies the given scalar columns and, when images is non-nil,
	// replaces the whole image set — all inside one transaction.
	Update(ctx context.Context, id uint, fields map[string]interface{}, images *[]model.InquiryImage) error
	// Delete removes images then the inquiry row; gorm.ErrRecordNotFound
	// when the inquiry did not exist.
	Delete(ctx context.Context, id uint) error
	// ImageURLs lists every stored inquiry image URL (upload janitor).
	ImageURLs(ctx context.Context) ([]string, error)
}

type inquiryRepo struct{ db *gorm.DB }

func NewInquiryRepository(db *gorm.DB) InquiryRepository { return &inquiryRepo{db: db} }

func preloadInquiryImages(db *gorm.DB) *gorm.DB {
	return db.Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") })
}

func (r *inquiryRepo) List(ctx context.Context) ([]model.Inquiry, error) {
	var inquiries []model.Inquiry
	err := preloadInquiryImages(r.db.WithContext(ctx)).
		Order("created_at DESC").
		Find(&inquiries).Error
	return inquiries, err
}

func (r *inquiryRepo) FindByID(ctx context.Context, id uint) (*model.Inquiry, error) {
	var inq model.Inquiry
	err := preloadInquiryImages(r.db.WithContext(ctx)).First(&inq, id).Error
	return &inq, err
}

func (r *inquiryRepo) FindByCode(ctx context.Context, code string) (*model.Inquiry, error) {
	var inq model.Inquiry
	err := preloadInquiryImages(r.db.WithContext(ctx)).
		Where("inquiry_code = ?", code).
		First(&inq).Error
	return &inq, err
}

func (r *inquiryRepo) Create(ctx context.Context, inq *model.Inquiry) error {
	// gorm cascades the Images association inside a single transaction.
	return r.db.WithContext(ctx).Create(inq).Error
}

func (r *inquiryRepo) Update(ctx context.Context, id uint, fields map[string]interface{}, images *[]model.InquiryImage) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(fields) > 0 {
			if err := tx.Model(&model.Inquiry{}).Where("id = ?", id).Updates(fields).Error; err != nil {
				return err
			}
		}
		if images != nil {
			if err := tx.Where("inquiry_id = ?", id).Delete(&model.InquiryImage{}).Error; err != nil {
				return err
			}
			if len(*images) > 0 {
				rows := *images
				for i := range rows {
					rows[i].InquiryID = id
				}
				if err := tx.Create(&rows).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
}

func (r *inquiryRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("inquiry_id = ?", id).Delete(&model.InquiryImage{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&model.Inquiry{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *inquiryRepo) ImageURLs(ctx context.Context) ([]string, error) {
	var urls []string
	err := r.db.WithContext(ctx).Model(&model.InquiryImage{}).Pluck("image_url", &urls).Error
	return urls, err
}
