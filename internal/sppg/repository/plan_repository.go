package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/yasunstudio/bagizi-id-sub002/internal/sppg/entity"
)

type PlanRepository struct {
	db *gorm.DB
}

func NewPlanRepository(db *gorm.DB) *PlanRepository {
	return &PlanRepository{db: db}
}

func (r *PlanRepository) Create(ctx context.Context, plan *entity.ProcurementPlan) error {
	return r.db.WithContext(ctx).Create(plan).Error
}

// FindByID loads a plan scoped to one tenant. A plan of another tenant is
// indistinguishable from a missing one.
func (r *PlanRepository) FindByID(ctx context.Context, sppgID, id string) (*entity.ProcurementPlan, error) {
	var plan entity.ProcurementPlan
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("id = ? AND sppg_id = ? AND deleted_at IS NULL", id, sppgID).
		First(&plan).Error
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

// FindByPeriod returns the existing plan for a tenant/program/month/year, or
// nil when there is none. Used for the duplicate-period check at create time.
// A cancelled plan frees its period, so it never counts as a duplicate.
func (r *PlanRepository) FindByPeriod(ctx context.Context, sppgID string, programID *string, month, year int) (*entity.ProcurementPlan, error) {
	query := r.db.WithContext(ctx).
		Where("sppg_id = ? AND plan_month = ? AND plan_year = ? AND approval_status <> ? AND deleted_at IS NULL",
			sppgID, month, year, entity.PlanStatusCancelled)
	if programID != nil {
		query = query.Where("program_id = ?", *programID)
	} else {
		query = query.Where("program_id IS NULL")
	}

	var plan entity.ProcurementPlan
	err := query.First(&plan).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

type PlanListParams struct {
	Status    string
	ProgramID string
	Year      int
	Month     int
	Page      int
	Size      int
}

func (r *PlanRepository) List(ctx context.Context, sppgID string, params PlanListParams) ([]entity.ProcurementPlan, int64, error) {
	query := r.db.WithContext(ctx).Model(&entity.ProcurementPlan{}).
		Where("sppg_id = ? AND deleted_at IS NULL", sppgID)
	if params.Status != "" {
		query = query.Where("approval_status = ?", params.Status)
	}
	if params.ProgramID != "" {
		query = query.Where("program_id = ?", params.ProgramID)
	}
	if params.Year != 0 {
		query = query.Where("plan_year = ?", params.Year)
	}
	if params.Month != 0 {
		query = query.Where("plan_month = ?", params.Month)
	}

	var total int64
	query.Count(&total)
	if params.Page <= 0 {
		params.Page = 1
	}
	if params.Size <= 0 {
		params.Size = 20
	}

	var plans []entity.ProcurementPlan
	err := query.Order("plan_year DESC, plan_month DESC").
		Offset((params.Page - 1) * params.Size).Limit(params.Size).
		Find(&plans).Error
	return plans, total, err
}

// UpdateStatusGuarded commits a plan mutation with a compare-and-swap on the
// current status. Returns the number of rows written: zero means a concurrent
// writer already moved the plan out of the expected state. There is no
// unguarded write path; every plan update goes through this predicate.
func (r *PlanRepository) UpdateStatusGuarded(ctx context.Context, id string, expected entity.PlanStatus, updates map[string]interface{}) (int64, error) {
	res := r.db.WithContext(ctx).Model(&entity.ProcurementPlan{}).
		Where("id = ? AND approval_status = ? AND deleted_at IS NULL", id, expected).
		Updates(updates)
	return res.RowsAffected, res.Error
}

// ReplaceItems swaps a plan's suggested-item snapshot in one transaction.
func (r *PlanRepository) ReplaceItems(ctx context.Context, planID string, items []entity.ProcurementPlanItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("plan_id = ?", planID).Delete(&entity.ProcurementPlanItem{}).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return nil
		}
		return tx.Create(&items).Error
	})
}

// Delete hard-deletes a plan and its items. Only legal while the plan is in
// draft; the service enforces that.
func (r *PlanRepository) Delete(ctx context.Context, sppgID, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("plan_id = ?", id).Delete(&entity.ProcurementPlanItem{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ? AND sppg_id = ?", id, sppgID).Delete(&entity.ProcurementPlan{}).Error
	})
}

// CountByStatus aggregates plan counts per status for one tenant.
func (r *PlanRepository) CountByStatus(ctx context.Context, sppgID string) (map[entity.PlanStatus]int64, error) {
	var rows []struct {
		ApprovalStatus entity.PlanStatus
		Count          int64
	}
	err := r.db.WithContext(ctx).Model(&entity.ProcurementPlan{}).
		Select("approval_status, COUNT(*) as count").
		Where("sppg_id = ? AND deleted_at IS NULL", sppgID).
		Group("approval_status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[entity.PlanStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.ApprovalStatus] = row.Count
	}
	return counts, nil
}

// BudgetTotals sums budget fields across a tenant's non-cancelled plans.
func (r *PlanRepository) BudgetTotals(ctx context.Context, sppgID string) (total, allocated, used float64, err error) {
	var row struct {
		Total     float64
		Allocated float64
		Used      float64
	}
	err = r.db.WithContext(ctx).Model(&entity.ProcurementPlan{}).
		Select("COALESCE(SUM(total_budget),0) as total, COALESCE(SUM(allocated_budget),0) as allocated, COALESCE(SUM(used_budget),0) as used").
		Where("sppg_id = ? AND approval_status <> ? AND deleted_at IS NULL", sppgID, entity.PlanStatusCancelled).
		Scan(&row).Error
	return row.Total, row.Allocated, row.Used, err
}
