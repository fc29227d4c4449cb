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

// MenuPlanService schedules menus over a period. Approved menu plans become
// eligible sources for procurement budget derivation.
type MenuPlanService struct {
	menuPlanRepo *repository.MenuPlanRepository
	menuRepo     *repository.MenuRepository
}

func NewMenuPlanService(menuPlanRepo *repository.MenuPlanRepository, menuRepo *repository.MenuRepository) *MenuPlanService {
	return &MenuPlanService{menuPlanRepo: menuPlanRepo, menuRepo: menuRepo}
}

type CreateMenuPlanRequest struct {
	PlanName  string  `json:"plan_name" binding:"required"`
	ProgramID *string `json:"program_id"`
	StartDate string  `json:"start_date" binding:"required"` // YYYY-MM-DD
	EndDate   string  `json:"end_date" binding:"required"`
	Notes     string  `json:"notes"`
}

func (s *MenuPlanService) Create(ctx context.Context, actor Actor, req *CreateMenuPlanRequest) (*entity.MenuPlan, error) {
	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return nil, apperr.Validation("start_date", "must be YYYY-MM-DD")
	}
	end, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return nil, apperr.Validation("end_date", "must be YYYY-MM-DD")
	}
	if end.Before(start) {
		return nil, apperr.Validation("end_date", "must not be before start_date")
	}

	plan := &entity.MenuPlan{
		ID:        uuid.New().String(),
		SppgID:    actor.SppgID,
		ProgramID: req.ProgramID,
		PlanName:  req.PlanName,
		StartDate: start,
		EndDate:   end,
		Status:    entity.MenuPlanStatusDraft,
		TotalDays: int(end.Sub(start).Hours()/24) + 1,
		Notes:     req.Notes,
		CreatedBy: actor.UserID,
	}
	if err := s.menuPlanRepo.Create(ctx, plan); err != nil {
		return nil, fmt.Errorf("create menu plan: %w", err)
	}
	return plan, nil
}

func (s *MenuPlanService) Get(ctx context.Context, actor Actor, id string) (*entity.MenuPlan, error) {
	plan, err := s.menuPlanRepo.FindByID(ctx, actor.SppgID, id)
	if err != nil {
		return nil, menuPlanNotFound(err)
	}
	return plan, nil
}

func (s *MenuPlanService) List(ctx context.Context, actor Actor, status string, page, size int) ([]entity.MenuPlan, int64, error) {
	return s.menuPlanRepo.List(ctx, actor.SppgID, status, page, size)
}

type AssignMenuRequest struct {
	MenuID          string `json:"menu_id" binding:"required"`
	AssignmentDate  string `json:"assignment_date" binding:"required"` // YYYY-MM-DD
	MealType        string `json:"meal_type"`
	PlannedPortions int    `json:"planned_portions" binding:"required,gt=0"`
}

// AssignMenu places a menu on a date of a draft menu plan and refreshes the
// plan's cached totals.
func (s *MenuPlanService) AssignMenu(ctx context.Context, actor Actor, menuPlanID string, req *AssignMenuRequest) (*entity.MenuPlan, error) {
	plan, err := s.menuPlanRepo.FindByID(ctx, actor.SppgID, menuPlanID)
	if err != nil {
		return nil, menuPlanNotFound(err)
	}
	if plan.Status != entity.MenuPlanStatusDraft {
		return nil, apperr.Validation("status", "assignments can only change while the menu plan is a draft")
	}

	menu, err := s.menuRepo.FindByID(ctx, actor.SppgID, req.MenuID)
	if err != nil {
		return nil, &apperr.NotFound{Resource: "menu"}
	}

	date, err := time.Parse("2006-01-02", req.AssignmentDate)
	if err != nil {
		return nil, apperr.Validation("assignment_date", "must be YYYY-MM-DD")
	}
	if date.Before(plan.StartDate) || date.After(plan.EndDate) {
		return nil, apperr.Validation("assignment_date", "outside the menu plan period")
	}

	mealType := req.MealType
	if mealType == "" {
		mealType = menu.MealType
	}

	assignment := &entity.MenuAssignment{
		ID:              uuid.New().String(),
		MenuPlanID:      plan.ID,
		MenuID:          menu.ID,
		AssignmentDate:  date,
		MealType:        mealType,
		PlannedPortions: req.PlannedPortions,
	}
	if err := s.menuPlanRepo.UpsertAssignment(ctx, assignment); err != nil {
		return nil, fmt.Errorf("assign menu: %w", err)
	}

	return s.refreshAggregates(ctx, actor, plan.ID)
}

func (s *MenuPlanService) RemoveAssignment(ctx context.Context, actor Actor, menuPlanID, assignmentID string) (*entity.MenuPlan, error) {
	plan, err := s.menuPlanRepo.FindByID(ctx, actor.SppgID, menuPlanID)
	if err != nil {
		return nil, menuPlanNotFound(err)
	}
	if plan.Status != entity.MenuPlanStatusDraft {
		return nil, apperr.Validation("status", "assignments can only change while the menu plan is a draft")
	}
	if err := s.menuPlanRepo.DeleteAssignment(ctx, plan.ID, assignmentID); err != nil {
		return nil, fmt.Errorf("remove assignment: %w", err)
	}
	return s.refreshAggregates(ctx, actor, plan.ID)
}

// Submit moves a draft menu plan to SUBMITTED.
func (s *MenuPlanService) Submit(ctx context.Context, actor Actor, id string) (*entity.MenuPlan, error) {
	plan, err := s.menuPlanRepo.FindByID(ctx, actor.SppgID, id)
	if err != nil {
		return nil, menuPlanNotFound(err)
	}
	if plan.Status != entity.MenuPlanStatusDraft {
		return nil, apperr.Validation("status", "only a draft menu plan can be submitted")
	}
	plan.Status = entity.MenuPlanStatusSubmitted
	if err := s.menuPlanRepo.Update(ctx, plan); err != nil {
		return nil, fmt.Errorf("submit menu plan: %w", err)
	}
	return plan, nil
}

// Approve makes a submitted menu plan usable for budget derivation.
func (s *MenuPlanService) Approve(ctx context.Context, actor Actor, id string) (*entity.MenuPlan, error) {
	if !actor.isApprover() {
		return nil, apperr.Validation("role", "approval role required")
	}
	plan, err := s.menuPlanRepo.FindByID(ctx, actor.SppgID, id)
	if err != nil {
		return nil, menuPlanNotFound(err)
	}
	if plan.Status != entity.MenuPlanStatusSubmitted {
		return nil, apperr.Validation("status", "only a submitted menu plan can be approved")
	}
	now := time.Now()
	plan.Status = entity.MenuPlanStatusApproved
	plan.ApprovedBy = &actor.UserID
	plan.ApprovedAt = &now
	if err := s.menuPlanRepo.Update(ctx, plan); err != nil {
		return nil, fmt.Errorf("approve menu plan: %w", err)
	}
	return plan, nil
}

func (s *MenuPlanService) refreshAggregates(ctx context.Context, actor Actor, planID string) (*entity.MenuPlan, error) {
	plan, err := s.menuPlanRepo.FindByID(ctx, actor.SppgID, planID)
	if err != nil {
		return nil, menuPlanNotFound(err)
	}
	totalMenus, totalCost, err := s.menuPlanRepo.AssignmentAggregates(ctx, plan.ID)
	if err != nil {
		return nil, fmt.Errorf("aggregate assignments: %w", err)
	}
	plan.TotalMenus = totalMenus
	plan.TotalEstimatedCost = totalCost
	if err := s.menuPlanRepo.Update(ctx, plan); err != nil {
		return nil, fmt.Errorf("update menu plan totals: %w", err)
	}
	return plan, nil
}

func menuPlanNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &apperr.NotFound{Resource: "menu plan"}
	}
	return fmt.Errorf("load menu plan: %w", err)
}
