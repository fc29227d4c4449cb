package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/yasunstudio/bagizi-id-sub002/internal/sppg/entity"
)

type DistributionRepository struct {
	db *gorm.DB
}

func NewDistributionRepository(db *gorm.DB) *DistributionRepository {
	return &DistributionRepository{db: db}
}

func (r *DistributionRepository) Create(ctx context.Context, cost *entity.DistributionCost) error {
	return r.db.WithContext(ctx).Create(cost).Error
}

func (r *DistributionRepository) FindByID(ctx context.Context, sppgID, id string) (*entity.DistributionCost, error) {
	var cost entity.DistributionCost
	err := r.db.WithContext(ctx).
		Where("id = ? AND sppg_id = ? AND deleted_at IS NULL", id, sppgID).
		First(&cost).Error
	if err != nil {
		return nil, err
	}
	return &cost, nil
}

type DistributionListParams struct {
	CostType string
	PlanID   string
	Year     int
	Month    int
	Page     int
	Size     int
}

func (r *DistributionRepository) List(ctx context.Context, sppgID string, params DistributionListParams) ([]entity.DistributionCost, int64, error) {
	query := r.db.WithContext(ctx).Model(&entity.DistributionCost{}).
		Where("sppg_id = ? AND deleted_at IS NULL", sppgID)
	if params.CostType != "" {
		query = query.Where("cost_type = ?", params.CostType)
	}
	if params.PlanID != "" {
		query = query.Where("plan_id = ?", params.PlanID)
	}
	if params.Year != 0 {
		query = query.Where("EXTRACT(YEAR FROM cost_date) = ?", params.Year)
	}
	if params.Month != 0 {
		query = query.Where("EXTRACT(MONTH FROM cost_date) = ?", params.Month)
	}

	var total int64
	query.Count(&total)
	if params.Page <= 0 {
		params.Page = 1
	}
	if params.Size <= 0 {
		params.Size = 20
	}

	var costs []entity.DistributionCost
	err := query.Order("cost_date DESC").
		Offset((params.Page - 1) * params.Size).Limit(params.Size).
		Find(&costs).Error
	return costs, total, err
}

func (r *DistributionRepository) Update(ctx context.Context, cost *entity.DistributionCost) error {
	return r.db.WithContext(ctx).Save(cost).Error
}

func (r *DistributionRepository) Delete(ctx context.Context, sppgID, id string) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND sppg_id = ?", id, sppgID).
		Delete(&entity.DistributionCost{}).Error
}

// MonthlySummary sums distribution spend per cost type for one month.
func (r *DistributionRepository) MonthlySummary(ctx context.Context, sppgID string, year, month int) (map[string]float64, error) {
	var rows []struct {
		CostType string
		Total    float64
	}
	err := r.db.WithContext(ctx).Model(&entity.DistributionCost{}).
		Select("cost_type, COALESCE(SUM(amount),0) as total").
		Where("sppg_id = ? AND EXTRACT(YEAR FROM cost_date) = ? AND EXTRACT(MONTH FROM cost_date) = ? AND deleted_at IS NULL",
			sppgID, year, month).
		Group("cost_type").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	summary := make(map[string]float64, len(rows))
	for _, row := range rows {
		summary[row.CostType] = row.Total
	}
	return summary, nil
}
