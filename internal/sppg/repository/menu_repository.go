package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/yasunstudio/bagizi-id-sub002/internal/sppg/entity"
)

type MenuRepository struct {
	db *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{db: db}
}

func (r *MenuRepository) Create(ctx context.Context, menu *entity.NutritionMenu) error {
	return r.db.WithContext(ctx).Create(menu).Error
}

func (r *MenuRepository) FindByID(ctx context.Context, sppgID, id string) (*entity.NutritionMenu, error) {
	var menu entity.NutritionMenu
	err := r.db.WithContext(ctx).
		Preload("Ingredients.InventoryItem").
		Preload("RecipeSteps", func(db *gorm.DB) *gorm.DB {
			return db.Order("step_number ASC")
		}).
		Preload("FoodCategory").
		Where("id = ? AND sppg_id = ? AND deleted_at IS NULL", id, sppgID).
		First(&menu).Error
	if err != nil {
		return nil, err
	}
	return &menu, nil
}

type MenuListParams struct {
	MealType string
	Keyword  string
	Active   *bool
	Page     int
	Size     int
}

func (r *MenuRepository) List(ctx context.Context, sppgID string, params MenuListParams) ([]entity.NutritionMenu, int64, error) {
	query := r.db.WithContext(ctx).Model(&entity.NutritionMenu{}).
		Where("sppg_id = ? AND deleted_at IS NULL", sppgID)
	if params.MealType != "" {
		query = query.Where("meal_type = ?", params.MealType)
	}
	if params.Keyword != "" {
		kw := "%" + params.Keyword + "%"
		query = query.Where("menu_name ILIKE ? OR menu_code ILIKE ?", kw, kw)
	}
	if params.Active != nil {
		query = query.Where("is_active = ?", *params.Active)
	}

	var total int64
	query.Count(&total)
	if params.Page <= 0 {
		params.Page = 1
	}
	if params.Size <= 0 {
		params.Size = 20
	}

	var menus []entity.NutritionMenu
	err := query.Order("menu_name ASC").
		Offset((params.Page - 1) * params.Size).Limit(params.Size).
		Find(&menus).Error
	return menus, total, err
}

func (r *MenuRepository) Update(ctx context.Context, menu *entity.NutritionMenu) error {
	return r.db.WithContext(ctx).Save(menu).Error
}

func (r *MenuRepository) Delete(ctx context.Context, sppgID, id string) error {
	return r.db.WithContext(ctx).Model(&entity.NutritionMenu{}).
		Where("id = ? AND sppg_id = ?", id, sppgID).
		Update("deleted_at", gorm.Expr("NOW()")).Error
}

// ReplaceIngredients swaps a menu's ingredient lines in one transaction.
func (r *MenuRepository) ReplaceIngredients(ctx context.Context, menuID string, ingredients []entity.MenuIngredient) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("menu_id = ?", menuID).Delete(&entity.MenuIngredient{}).Error; err != nil {
			return err
		}
		if len(ingredients) == 0 {
			return nil
		}
		return tx.Create(&ingredients).Error
	})
}

// ReplaceRecipeSteps swaps a menu's ordered recipe steps in one transaction.
func (r *MenuRepository) ReplaceRecipeSteps(ctx context.Context, menuID string, steps []entity.RecipeStep) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("menu_id = ?", menuID).Delete(&entity.RecipeStep{}).Error; err != nil {
			return err
		}
		if len(steps) == 0 {
			return nil
		}
		return tx.Create(&steps).Error
	})
}
