package image

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, img *Image) error
	GetByID(ctx context.Context, id string) (*Image, error)
	ListByOwner(ctx context.Context, owner Owner) ([]Image, error)
	SetFeatured(ctx context.Context, img *Image) error
	Delete(ctx context.Context, id string) error
	DeleteByOwner(ctx context.Context, owner Owner) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, img *Image) error {
	return r.db.WithContext(ctx).Create(img).Error
}

func (r *repository) GetByID(ctx context.Context, id string) (*Image, error) {
	var img Image
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&img).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrImageNotFound
	}
	if err != nil {
		return nil, err
	}
	return &img, nil
}

func (r *repository) ListByOwner(ctx context.Context, owner Owner) ([]Image, error) {
	var images []Image
	err := r.db.WithContext(ctx).
		Where("owner_type = ? AND owner_id = ?", owner.Type, owner.ID).
		Order("is_featured DESC").Order("created_at ASC").
		Find(&images).Error
	return images, err
}

// SetFeatured runs the unset-all-then-set-one swap in one transaction so a
// concurrent reader never observes zero or multiple featured images for
// the owner.
func (r *repository) SetFeatured(ctx context.Context, img *Image) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&Image{}).
			Where("owner_type = ? AND owner_id = ?", img.OwnerType, img.OwnerID).
			Update("is_featured", false).Error; err != nil {
			return err
		}
		res := tx.Model(&Image{}).Where("id = ?", img.ID).Update("is_featured", true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrImageNotFound
		}
		return nil
	})
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&Image{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrImageNotFound
	}
	return nil
}

func (r *repository) DeleteByOwner(ctx context.Context, owner Owner) error {
	return r.db.WithContext(ctx).
		Where("owner_type = ? AND owner_id = ?", owner.Type, owner.ID).
		Delete(&Image{}).Error
}
