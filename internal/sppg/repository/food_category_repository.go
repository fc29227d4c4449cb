package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/yasunstudio/bagizi-id-sub002/internal/sppg/entity"
)

type FoodCategoryRepository struct {
	db *gorm.DB
}

func NewFoodCategoryRepository(db *gorm.DB) *FoodCategoryRepository {
	return &FoodCategoryRepository{db: db}
}

func (r *FoodCategoryRepository) Create(ctx context.Context, category *entity.FoodCategory) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *FoodCategoryRepository) FindByID(ctx context.Context, sppgID, id string) (*entity.FoodCategory, error) {
	var category entity.FoodCategory
	err := r.db.WithContext(ctx).
		Preload("Children").
		Where("id = ? AND sppg_id = ? AND deleted_at IS NULL", id, sppgID).
		First(&category).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// ListRoots returns top-level categories with their children, ordered for
// display.
func (r *FoodCategoryRepository) ListRoots(ctx context.Context, sppgID string) ([]entity.FoodCategory, error) {
	var categories []entity.FoodCategory
	err := r.db.WithContext(ctx).
		Preload("Children", func(db *gorm.DB) *gorm.DB {
			return db.Where("deleted_at IS NULL").Order("sort_order ASC")
		}).
		Where("sppg_id = ? AND parent_id IS NULL AND deleted_at IS NULL", sppgID).
		Order("sort_order ASC").
		Find(&categories).Error
	return categories, err
}

func (r *FoodCategoryRepository) Update(ctx context.Context, category *entity.FoodCategory) error {
	return r.db.WithContext(ctx).Save(category).Error
}
