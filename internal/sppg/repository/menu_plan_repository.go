package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/yasunstudio/bagizi-id-sub002/internal/sppg/entity"
)

type MenuPlanRepository struct {
	db *gorm.DB
}

func NewMenuPlanRepository(db *gorm.DB) *MenuPlanRepository {
	return &MenuPlanRepository{db: db}
}

func (r *MenuPlanRepository) Create(ctx context.Context, plan *entity.MenuPlan) error {
	return r.db.WithContext(ctx).Create(plan).Error
}

func (r *MenuPlanRepository) FindByID(ctx context.Context, sppgID, id string) (*entity.MenuPlan, error) {
	var plan entity.MenuPlan
	err := r.db.WithContext(ctx).
		Preload("Assignments").
		Where("id = ? AND sppg_id = ? AND deleted_at IS NULL", id, sppgID).
		First(&plan).Error
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

// FindApprovedWithIngredients loads an approved menu plan with the full chain
// needed for budget derivation: assignments, their menus, the menus'
// ingredient lines, each line's inventory item and its food category.
func (r *MenuPlanRepository) FindApprovedWithIngredients(ctx context.Context, sppgID, id string) (*entity.MenuPlan, error) {
	var plan entity.MenuPlan
	err := r.db.WithContext(ctx).
		Preload("Assignments.Menu.Ingredients.InventoryItem.FoodCategory").
		Where("id = ? AND sppg_id = ? AND status = ? AND deleted_at IS NULL",
			id, sppgID, entity.MenuPlanStatusApproved).
		First(&plan).Error
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *MenuPlanRepository) List(ctx context.Context, sppgID, status string, page, size int) ([]entity.MenuPlan, int64, error) {
	query := r.db.WithContext(ctx).Model(&entity.MenuPlan{}).
		Where("sppg_id = ? AND deleted_at IS NULL", sppgID)
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	query.Count(&total)
	if page <= 0 {
		page = 1
	}
	if size <= 0 {
		size = 20
	}

	var plans []entity.MenuPlan
	err := query.Order("start_date DESC").
		Offset((page - 1) * size).Limit(size).
		Find(&plans).Error
	return plans, total, err
}

func (r *MenuPlanRepository) Update(ctx context.Context, plan *entity.MenuPlan) error {
	return r.db.WithContext(ctx).Save(plan).Error
}

func (r *MenuPlanRepository) UpsertAssignment(ctx context.Context, a *entity.MenuAssignment) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *MenuPlanRepository) DeleteAssignment(ctx context.Context, menuPlanID, assignmentID string) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND menu_plan_id = ?", assignmentID, menuPlanID).
		Delete(&entity.MenuAssignment{}).Error
}

// AssignmentAggregates recomputes the cached totals of a menu plan from its
// assignments and the linked menus' per-portion cost.
func (r *MenuPlanRepository) AssignmentAggregates(ctx context.Context, menuPlanID string) (totalMenus int, totalCost float64, err error) {
	var row struct {
		TotalMenus int
		TotalCost  float64
	}
	err = r.db.WithContext(ctx).
		Table("menu_assignments a").
		Select("COUNT(*) as total_menus, COALESCE(SUM(a.planned_portions * m.cost_per_portion),0) as total_cost").
		Joins("JOIN nutrition_menus m ON m.id = a.menu_id").
		Where("a.menu_plan_id = ?", menuPlanID).
		Scan(&row).Error
	return row.TotalMenus, row.TotalCost, err
}
