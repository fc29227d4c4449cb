package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yasunstudio/bagizi-id-sub002/internal/sppg/apperr"
	"github.com/yasunstudio/bagizi-id-sub002/internal/sppg/entity"
	"github.com/yasunstudio/bagizi-id-sub002/internal/sppg/repository"
)

type ProgramService struct {
	programRepo *repository.ProgramRepository
}

func NewProgramService(programRepo *repository.ProgramRepository) *ProgramService {
	return &ProgramService{programRepo: programRepo}
}

type CreateProgramRequest struct {
	ProgramCode      string  `json:"program_code" binding:"required"`
	ProgramName      string  `json:"program_name" binding:"required"`
	Description      string  `json:"description"`
	StartDate        string  `json:"start_date"` // YYYY-MM-DD
	EndDate          string  `json:"end_date"`
	TargetRecipients int     `json:"target_recipients"`
	AnnualBudget     float64 `json:"annual_budget"`
}

func (s *ProgramService) Create(ctx context.Context, actor Actor, req *CreateProgramRequest) (*entity.NutritionProgram, error) {
	if req.AnnualBudget < 0 {
		return nil, apperr.Validation("annual_budget", "must not be negative")
	}

	program := &entity.NutritionProgram{
		ID:               uuid.New().String(),
		SppgID:           actor.SppgID,
		ProgramCode:      req.ProgramCode,
		ProgramName:      req.ProgramName,
		Description:      req.Description,
		TargetRecipients: req.TargetRecipients,
		AnnualBudget:     req.AnnualBudget,
		IsActive:         true,
		CreatedBy:        actor.UserID,
	}

	if req.StartDate != "" {
		start, err := time.Parse("2006-01-02", req.StartDate)
		if err != nil {
			return nil, apperr.Validation("start_date", "must be YYYY-MM-DD")
		}
		program.StartDate = &start
	}
	if req.EndDate != "" {
		end, err := time.Parse("2006-01-02", req.EndDate)
		if err != nil {
			return nil, apperr.Validation("end_date", "must be YYYY-MM-DD")
		}
		if program.StartDate != nil && end.Before(*program.StartDate) {
			return nil, apperr.Validation("end_date", "must not be before start_date")
		}
		program.EndDate = &end
	}

	if err := s.programRepo.Create(ctx, program); err != nil {
		return nil, fmt.Errorf("create program: %w", err)
	}
	return program, nil
}

func (s *ProgramService) Get(ctx context.Context, actor Actor, id string) (*entity.NutritionProgram, error) {
	program, err := s.programRepo.FindByID(ctx, actor.SppgID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &apperr.NotFound{Resource: "program"}
		}
		return nil, fmt.Errorf("load program: %w", err)
	}
	return program, nil
}

func (s *ProgramService) List(ctx context.Context, actor Actor, page, size int) ([]entity.NutritionProgram, int64, error) {
	return s.programRepo.List(ctx, actor.SppgID, page, size)
}

type UpdateProgramRequest struct {
	ProgramName      *string  `json:"program_name"`
	Description      *string  `json:"description"`
	TargetRecipients *int     `json:"target_recipients"`
	AnnualBudget     *float64 `json:"annual_budget"`
	IsActive         *bool    `json:"is_active"`
}

func (s *ProgramService) Update(ctx context.Context, actor Actor, id string, req *UpdateProgramRequest) (*entity.NutritionProgram, error) {
	program, err := s.Get(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	if req.ProgramName != nil {
		program.ProgramName = *req.ProgramName
	}
	if req.Description != nil {
		program.Description = *req.Description
	}
	if req.TargetRecipients != nil {
		program.TargetRecipients = *req.TargetRecipients
	}
	if req.AnnualBudget != nil {
		if *req.AnnualBudget < 0 {
			return nil, apperr.Validation("annual_budget", "must not be negative")
		}
		program.AnnualBudget = *req.AnnualBudget
	}
	if req.IsActive != nil {
		program.IsActive = *req.IsActive
	}

	if err := s.programRepo.Update(ctx, program); err != nil {
		return nil, fmt.Errorf("update program: %w", err)
	}
	return program, nil
}
