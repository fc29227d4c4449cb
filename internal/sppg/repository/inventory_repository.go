package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/yasunstudio/bagizi-id-sub002/internal/sppg/entity"
)

type InventoryRepository struct {
	db *gorm.DB
}

func NewInventoryRepository(db *gorm.DB) *InventoryRepository {
	return &InventoryRepository{db: db}
}

func (r *InventoryRepository) Create(ctx context.Context, item *entity.InventoryItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *InventoryRepository) FindByID(ctx context.Context, sppgID, id string) (*entity.InventoryItem, error) {
	var item entity.InventoryItem
	err := r.db.WithContext(ctx).
		Preload("FoodCategory").
		Where("id = ? AND sppg_id = ? AND deleted_at IS NULL", id, sppgID).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *InventoryRepository) List(ctx context.Context, sppgID, keyword string, page, size int) ([]entity.InventoryItem, int64, error) {
	query := r.db.WithContext(ctx).Model(&entity.InventoryItem{}).
		Where("sppg_id = ? AND deleted_at IS NULL", sppgID)
	if keyword != "" {
		kw := "%" + keyword + "%"
		query = query.Where("item_name ILIKE ? OR item_code ILIKE ?", kw, kw)
	}

	var total int64
	query.Count(&total)
	if page <= 0 {
		page = 1
	}
	if size <= 0 {
		size = 20
	}

	var items []entity.InventoryItem
	err := query.Preload("FoodCategory").Order("item_name ASC").
		Offset((page - 1) * size).Limit(size).
		Find(&items).Error
	return items, total, err
}

func (r *InventoryRepository) Update(ctx context.Context, item *entity.InventoryItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}
