package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/yasunstudio/bagizi-id-sub002/internal/sppg/entity"
)

type ProgramRepository struct {
	db *gorm.DB
}

func NewProgramRepository(db *gorm.DB) *ProgramRepository {
	return &ProgramRepository{db: db}
}

func (r *ProgramRepository) Create(ctx context.Context, program *entity.NutritionProgram) error {
	return r.db.WithContext(ctx).Create(program).Error
}

func (r *ProgramRepository) FindByID(ctx context.Context, sppgID, id string) (*entity.NutritionProgram, error) {
	var program entity.NutritionProgram
	err := r.db.WithContext(ctx).
		Where("id = ? AND sppg_id = ? AND deleted_at IS NULL", id, sppgID).
		First(&program).Error
	if err != nil {
		return nil, err
	}
	return &program, nil
}

func (r *ProgramRepository) List(ctx context.Context, sppgID string, page, size int) ([]entity.NutritionProgram, int64, error) {
	query := r.db.WithContext(ctx).Model(&entity.NutritionProgram{}).
		Where("sppg_id = ? AND deleted_at IS NULL", sppgID)

	var total int64
	query.Count(&total)
	if page <= 0 {
		page = 1
	}
	if size <= 0 {
		size = 20
	}

	var programs []entity.NutritionProgram
	err := query.Order("program_name ASC").
		Offset((page - 1) * size).Limit(size).
		Find(&programs).Error
	return programs, total, err
}

func (r *ProgramRepository) Update(ctx context.Context, program *entity.NutritionProgram) error {
	return r.db.WithContext(ctx).Save(program).Error
}
