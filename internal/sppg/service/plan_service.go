package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/yasunstudio/bagizi-id-sub002/internal/sppg/apperr"
	"github.com/yasunstudio/bagizi-id-sub002/internal/sppg/budget"
	"github.com/yasunstudio/bagizi-id-sub002/internal/sppg/entity"
	"github.com/yasunstudio/bagizi-id-sub002/internal/sppg/repository"
)

// Actor is the resolved caller identity. Authentication happened upstream;
// the service only enforces tenant ownership and role preconditions.
type Actor struct {
	SppgID string
	UserID string
	Role   string
}

func (a Actor) isApprover() bool {
	return a.Role == entity.RoleKepala || a.Role == entity.RoleAdmin
}

// planEvent names a lifecycle transition of a procurement plan.
type planEvent string

const (
	eventSubmit      planEvent = "submit"
	eventResubmit    planEvent = "resubmit"
	eventStartReview planEvent = "start_review"
	eventApprove     planEvent = "approve"
	eventReject      planEvent = "reject"
	eventCancel      planEvent = "cancel"
	eventUpdate      planEvent = "update"
	eventDelete      planEvent = "delete"
	eventPopulate    planEvent = "populate"
)

const minReasonLength = 10

// transitionAllowed is the whole transition table in one place. Every
// lifecycle method consults it before touching any field, so an illegal
// event never causes a partial mutation.
func transitionAllowed(from entity.PlanStatus, event planEvent) bool {
	switch event {
	case eventSubmit:
		return from == entity.PlanStatusDraft
	case eventResubmit:
		return from == entity.PlanStatusRejected
	case eventStartReview:
		return from == entity.PlanStatusSubmitted
	case eventApprove, eventReject:
		return from == entity.PlanStatusSubmitted || from == entity.PlanStatusUnderReview
	case eventCancel:
		// APPROVED is included here; the admin-only restriction for cancelling
		// an approved plan is enforced separately in Cancel.
		switch from {
		case entity.PlanStatusDraft, entity.PlanStatusSubmitted,
			entity.PlanStatusUnderReview, entity.PlanStatusApproved:
			return true
		}
		return false
	case eventUpdate:
		// A rejected plan stays editable so it can be revised before resubmission.
		return from == entity.PlanStatusDraft || from == entity.PlanStatusRejected
	case eventDelete, eventPopulate:
		return from == entity.PlanStatusDraft
	}
	return false
}

// PlanService owns the procurement plan lifecycle and delegates all budget
// math to the budget package.
type PlanService struct {
	planRepo     *repository.PlanRepository
	menuPlanRepo *repository.MenuPlanRepository
	programRepo  *repository.ProgramRepository
	rdb          *redis.Client
	logger       *zap.Logger
}

func NewPlanService(planRepo *repository.PlanRepository, menuPlanRepo *repository.MenuPlanRepository, programRepo *repository.ProgramRepository, rdb *redis.Client, logger *zap.Logger) *PlanService {
	return &PlanService{
		planRepo:     planRepo,
		menuPlanRepo: menuPlanRepo,
		programRepo:  programRepo,
		rdb:          rdb,
		logger:       logger,
	}
}

// CreatePlanRequest carries the fields a caller may set at create time.
// Allocated/used/remaining are always derived, never accepted from input.
type CreatePlanRequest struct {
	ProgramID   *string `json:"program_id"`
	PlanMonth   int     `json:"plan_month" binding:"required,min=1,max=12"`
	PlanYear    int     `json:"plan_year" binding:"required"`
	PlanQuarter *int    `json:"plan_quarter"`

	TargetRecipients int `json:"target_recipients"`
	TargetMeals      int `json:"target_meals"`

	TotalBudget     float64 `json:"total_budget"`
	ProteinBudget   float64 `json:"protein_budget"`
	CarbBudget      float64 `json:"carb_budget"`
	VegetableBudget float64 `json:"vegetable_budget"`
	FruitBudget     float64 `json:"fruit_budget"`
	OtherBudget     float64 `json:"other_budget"`

	Notes string `json:"notes"`
}

func validateBudgetFields(total, protein, carb, vegetable, fruit, other float64) error {
	fields := map[string]float64{
		"total_budget":     total,
		"protein_budget":   protein,
		"carb_budget":      carb,
		"vegetable_budget": vegetable,
		"fruit_budget":     fruit,
		"other_budget":     other,
	}
	for name, v := range fields {
		if v < 0 {
			return apperr.Validation(name, "must not be negative")
		}
	}
	return nil
}

func validateTargets(recipients, meals int) error {
	if recipients < 0 {
		return apperr.Validation("target_recipients", "must not be negative")
	}
	if meals < 0 {
		return apperr.Validation("target_meals", "must not be negative")
	}
	return nil
}

// Create opens a new plan in DRAFT for the actor's tenant. The same tenant,
// program and period may hold only one plan.
func (s *PlanService) Create(ctx context.Context, actor Actor, req *CreatePlanRequest) (*entity.ProcurementPlan, error) {
	period := entity.PlanPeriod{Month: req.PlanMonth, Year: req.PlanYear, Quarter: req.PlanQuarter}
	if !period.Valid() {
		return nil, apperr.Validation("plan_month", "period out of range")
	}
	if err := validateBudgetFields(req.TotalBudget, req.ProteinBudget, req.CarbBudget, req.VegetableBudget, req.FruitBudget, req.OtherBudget); err != nil {
		return nil, err
	}
	if err := validateTargets(req.TargetRecipients, req.TargetMeals); err != nil {
		return nil, err
	}

	if req.ProgramID != nil {
		if _, err := s.programRepo.FindByID(ctx, actor.SppgID, *req.ProgramID); err != nil {
			return nil, &apperr.NotFound{Resource: "program"}
		}
	}

	existing, err := s.planRepo.FindByPeriod(ctx, actor.SppgID, req.ProgramID, req.PlanMonth, req.PlanYear)
	if err != nil {
		return nil, fmt.Errorf("duplicate period check: %w", err)
	}
	if existing != nil {
		return nil, &apperr.DuplicatePeriod{ExistingID: existing.ID, Month: req.PlanMonth, Year: req.PlanYear}
	}

	alloc := budget.ComputeAllocation(budget.AllocationInput{
		TotalBudget: req.TotalBudget,
		Categories: budget.CategoryBudgets{
			Protein:   req.ProteinBudget,
			Carb:      req.CarbBudget,
			Vegetable: req.VegetableBudget,
			Fruit:     req.FruitBudget,
			Other:     req.OtherBudget,
		},
	})
	if alloc.IsOverBudget {
		// Advisory only while drafting; approval is where this blocks.
		s.logger.Warn("draft plan allocated over total budget",
			zap.String("sppg_id", actor.SppgID),
			zap.Float64("allocated", alloc.AllocatedBudget),
			zap.Float64("total", req.TotalBudget))
	}

	plan := &entity.ProcurementPlan{
		ID:               uuid.New().String(),
		SppgID:           actor.SppgID,
		ProgramID:        req.ProgramID,
		PlanMonth:        req.PlanMonth,
		PlanYear:         req.PlanYear,
		PlanQuarter:      req.PlanQuarter,
		TargetRecipients: req.TargetRecipients,
		TargetMeals:      req.TargetMeals,
		TotalBudget:      req.TotalBudget,
		AllocatedBudget:  alloc.AllocatedBudget,
		UsedBudget:       0,
		RemainingBudget:  alloc.RemainingBudget,
		ProteinBudget:    req.ProteinBudget,
		CarbBudget:       req.CarbBudget,
		VegetableBudget:  req.VegetableBudget,
		FruitBudget:      req.FruitBudget,
		OtherBudget:      req.OtherBudget,
		ApprovalStatus:   entity.PlanStatusDraft,
		Notes:            req.Notes,
		CreatedBy:        actor.UserID,
	}

	if err := s.planRepo.Create(ctx, plan); err != nil {
		return nil, fmt.Errorf("create plan: %w", err)
	}
	s.invalidateDashboard(ctx, actor.SppgID)
	return plan, nil
}

func (s *PlanService) Get(ctx context.Context, actor Actor, id string) (*entity.ProcurementPlan, error) {
	plan, err := s.planRepo.FindByID(ctx, actor.SppgID, id)
	if err != nil {
		return nil, planNotFound(err)
	}
	return plan, nil
}

func (s *PlanService) List(ctx context.Context, actor Actor, params repository.PlanListParams) ([]entity.ProcurementPlan, int64, error) {
	return s.planRepo.List(ctx, actor.SppgID, params)
}

// Allocation exposes the ledger's view of a stored plan, for display beside
// the raw fields.
func (s *PlanService) Allocation(ctx context.Context, actor Actor, id string) (*budget.Allocation, error) {
	plan, err := s.planRepo.FindByID(ctx, actor.SppgID, id)
	if err != nil {
		return nil, planNotFound(err)
	}
	alloc := budget.ComputeAllocation(allocationInput(plan))
	return &alloc, nil
}

// UpdatePlanRequest carries the editable fields of a draft plan. Nil means
// leave unchanged.
type UpdatePlanRequest struct {
	TargetRecipients *int `json:"target_recipients"`
	TargetMeals      *int `json:"target_meals"`

	TotalBudget     *float64 `json:"total_budget"`
	ProteinBudget   *float64 `json:"protein_budget"`
	CarbBudget      *float64 `json:"carb_budget"`
	VegetableBudget *float64 `json:"vegetable_budget"`
	FruitBudget     *float64 `json:"fruit_budget"`
	OtherBudget     *float64 `json:"other_budget"`

	Notes *string `json:"notes"`
}

// Update edits a draft or rejected plan and recomputes the ledger fields, so
// the stored allocated/remaining totals stay consistent after every single
// field change. The write is keyed on the status read at load time; a plan
// that moved in between surfaces as InvalidTransition.
func (s *PlanService) Update(ctx context.Context, actor Actor, id string, req *UpdatePlanRequest) (*entity.ProcurementPlan, error) {
	plan, err := s.planRepo.FindByID(ctx, actor.SppgID, id)
	if err != nil {
		return nil, planNotFound(err)
	}
	if !transitionAllowed(plan.ApprovalStatus, eventUpdate) {
		return nil, &apperr.InvalidTransition{From: string(plan.ApprovalStatus), Event: string(eventUpdate)}
	}
	if plan.CreatedBy != actor.UserID && !actor.isApprover() {
		return nil, &apperr.NotFound{Resource: "procurement plan"}
	}

	applyFloat := func(dst *float64, src *float64) {
		if src != nil {
			*dst = *src
		}
	}
	applyFloat(&plan.TotalBudget, req.TotalBudget)
	applyFloat(&plan.ProteinBudget, req.ProteinBudget)
	applyFloat(&plan.CarbBudget, req.CarbBudget)
	applyFloat(&plan.VegetableBudget, req.VegetableBudget)
	applyFloat(&plan.FruitBudget, req.FruitBudget)
	applyFloat(&plan.OtherBudget, req.OtherBudget)
	if req.TargetRecipients != nil {
		plan.TargetRecipients = *req.TargetRecipients
	}
	if req.TargetMeals != nil {
		plan.TargetMeals = *req.TargetMeals
	}
	if req.Notes != nil {
		plan.Notes = *req.Notes
	}

	if err := validateBudgetFields(plan.TotalBudget, plan.ProteinBudget, plan.CarbBudget, plan.VegetableBudget, plan.FruitBudget, plan.OtherBudget); err != nil {
		return nil, err
	}
	if err := validateTargets(plan.TargetRecipients, plan.TargetMeals); err != nil {
		return nil, err
	}

	alloc := budget.ComputeAllocation(allocationInput(plan))
	plan.AllocatedBudget = alloc.AllocatedBudget
	plan.RemainingBudget = alloc.RemainingBudget
	if alloc.IsOverBudget {
		s.logger.Warn("draft plan allocated over total budget",
			zap.String("plan_id", plan.ID),
			zap.Float64("allocated", alloc.AllocatedBudget),
			zap.Float64("total", plan.TotalBudget))
	}

	return s.commit(ctx, actor, plan, eventUpdate, map[string]interface{}{
		"target_recipients": plan.TargetRecipients,
		"target_meals":      plan.TargetMeals,
		"total_budget":      plan.TotalBudget,
		"protein_budget":    plan.ProteinBudget,
		"carb_budget":       plan.CarbBudget,
		"vegetable_budget":  plan.VegetableBudget,
		"fruit_budget":      plan.FruitBudget,
		"other_budget":      plan.OtherBudget,
		"allocated_budget":  plan.AllocatedBudget,
		"remaining_budget":  plan.RemainingBudget,
		"notes":             plan.Notes,
	})
}

// Submit hands a draft to review. Records who submitted and when.
func (s *PlanService) Submit(ctx context.Context, actor Actor, id, notes string) (*entity.ProcurementPlan, error) {
	plan, err := s.planRepo.FindByID(ctx, actor.SppgID, id)
	if err != nil {
		return nil, planNotFound(err)
	}
	event := eventSubmit
	if plan.ApprovalStatus == entity.PlanStatusRejected {
		event = eventResubmit
	}
	if !transitionAllowed(plan.ApprovalStatus, event) {
		return nil, &apperr.InvalidTransition{From: string(plan.ApprovalStatus), Event: string(event)}
	}
	if plan.CreatedBy != actor.UserID && !actor.isApprover() {
		return nil, &apperr.NotFound{Resource: "procurement plan"}
	}

	now := time.Now()
	return s.commit(ctx, actor, plan, event, map[string]interface{}{
		"approval_status": entity.PlanStatusSubmitted,
		"submitted_by":    actor.UserID,
		"submitted_at":    now,
		"submit_notes":    notes,
	})
}

// StartReview marks a submitted plan as being reviewed.
func (s *PlanService) StartReview(ctx context.Context, actor Actor, id string) (*entity.ProcurementPlan, error) {
	plan, err := s.planRepo.FindByID(ctx, actor.SppgID, id)
	if err != nil {
		return nil, planNotFound(err)
	}
	if !actor.isApprover() {
		return nil, apperr.Validation("role", "approval role required")
	}
	if !transitionAllowed(plan.ApprovalStatus, eventStartReview) {
		return nil, &apperr.InvalidTransition{From: string(plan.ApprovalStatus), Event: string(eventStartReview)}
	}
	return s.commit(ctx, actor, plan, eventStartReview, map[string]interface{}{
		"approval_status": entity.PlanStatusUnderReview,
	})
}

// Approve accepts a submitted or in-review plan. The ledger gate runs first:
// a plan whose category allocation exceeds its total budget never reaches
// APPROVED.
func (s *PlanService) Approve(ctx context.Context, actor Actor, id, notes string) (*entity.ProcurementPlan, error) {
	plan, err := s.planRepo.FindByID(ctx, actor.SppgID, id)
	if err != nil {
		return nil, planNotFound(err)
	}
	if !actor.isApprover() {
		return nil, apperr.Validation("role", "approval role required")
	}
	if !transitionAllowed(plan.ApprovalStatus, eventApprove) {
		return nil, &apperr.InvalidTransition{From: string(plan.ApprovalStatus), Event: string(eventApprove)}
	}

	alloc := budget.ComputeAllocation(allocationInput(plan))
	if alloc.IsOverBudget {
		return nil, &apperr.BudgetExceeded{Allocated: alloc.AllocatedBudget, Total: plan.TotalBudget}
	}

	now := time.Now()
	return s.commit(ctx, actor, plan, eventApprove, map[string]interface{}{
		"approval_status": entity.PlanStatusApproved,
		"approved_by":     actor.UserID,
		"approved_at":     now,
		"approval_notes":  notes,
	})
}

// Reject returns a plan to its submitter for revision. The reason is kept on
// the plan and must be a real sentence, not a placeholder.
func (s *PlanService) Reject(ctx context.Context, actor Actor, id, reason string) (*entity.ProcurementPlan, error) {
	if len(strings.TrimSpace(reason)) < minReasonLength {
		return nil, apperr.Validation("rejection_reason", fmt.Sprintf("must be at least %d characters", minReasonLength))
	}
	plan, err := s.planRepo.FindByID(ctx, actor.SppgID, id)
	if err != nil {
		return nil, planNotFound(err)
	}
	if !actor.isApprover() {
		return nil, apperr.Validation("role", "approval role required")
	}
	if !transitionAllowed(plan.ApprovalStatus, eventReject) {
		return nil, &apperr.InvalidTransition{From: string(plan.ApprovalStatus), Event: string(eventReject)}
	}

	now := time.Now()
	return s.commit(ctx, actor, plan, eventReject, map[string]interface{}{
		"approval_status":  entity.PlanStatusRejected,
		"rejected_by":      actor.UserID,
		"rejected_at":      now,
		"rejection_reason": reason,
	})
}

// Cancel terminates a plan. Cancelling an approved plan is reserved for
// admins; everything else needs the approval role.
func (s *PlanService) Cancel(ctx context.Context, actor Actor, id, reason string) (*entity.ProcurementPlan, error) {
	if len(strings.TrimSpace(reason)) < minReasonLength {
		return nil, apperr.Validation("cancellation_reason", fmt.Sprintf("must be at least %d characters", minReasonLength))
	}
	plan, err := s.planRepo.FindByID(ctx, actor.SppgID, id)
	if err != nil {
		return nil, planNotFound(err)
	}
	if !actor.isApprover() {
		return nil, apperr.Validation("role", "approval role required")
	}
	if !transitionAllowed(plan.ApprovalStatus, eventCancel) {
		return nil, &apperr.InvalidTransition{From: string(plan.ApprovalStatus), Event: string(eventCancel)}
	}
	if plan.ApprovalStatus == entity.PlanStatusApproved && actor.Role != entity.RoleAdmin {
		return nil, &apperr.InvalidTransition{From: string(plan.ApprovalStatus), Event: string(eventCancel)}
	}

	now := time.Now()
	return s.commit(ctx, actor, plan, eventCancel, map[string]interface{}{
		"approval_status":     entity.PlanStatusCancelled,
		"cancelled_by":        actor.UserID,
		"cancelled_at":        now,
		"cancellation_reason": reason,
	})
}

// Delete removes a draft plan entirely. Plans that left DRAFT are never
// physically deleted.
func (s *PlanService) Delete(ctx context.Context, actor Actor, id string) error {
	plan, err := s.planRepo.FindByID(ctx, actor.SppgID, id)
	if err != nil {
		return planNotFound(err)
	}
	if !transitionAllowed(plan.ApprovalStatus, eventDelete) {
		return &apperr.InvalidTransition{From: string(plan.ApprovalStatus), Event: string(eventDelete)}
	}
	if plan.CreatedBy != actor.UserID && actor.Role != entity.RoleAdmin {
		return &apperr.NotFound{Resource: "procurement plan"}
	}
	if err := s.planRepo.Delete(ctx, actor.SppgID, id); err != nil {
		return fmt.Errorf("delete plan: %w", err)
	}
	s.invalidateDashboard(ctx, actor.SppgID)
	return nil
}

// PopulateResult is a populated plan plus the empty-derivation warning.
type PopulateResult struct {
	Plan    *entity.ProcurementPlan `json:"plan"`
	Warning string                  `json:"warning,omitempty"`
}

// PopulateFromMenuPlan derives a draft plan's budgets, targets and suggested
// items from an approved menu plan of the same tenant.
func (s *PlanService) PopulateFromMenuPlan(ctx context.Context, actor Actor, id, menuPlanID string) (*PopulateResult, error) {
	plan, err := s.planRepo.FindByID(ctx, actor.SppgID, id)
	if err != nil {
		return nil, planNotFound(err)
	}
	if !transitionAllowed(plan.ApprovalStatus, eventPopulate) {
		return nil, &apperr.InvalidTransition{From: string(plan.ApprovalStatus), Event: string(eventPopulate)}
	}
	if plan.CreatedBy != actor.UserID && !actor.isApprover() {
		return nil, &apperr.NotFound{Resource: "procurement plan"}
	}

	menuPlan, err := s.menuPlanRepo.FindApprovedWithIngredients(ctx, actor.SppgID, menuPlanID)
	if err != nil {
		return nil, &apperr.NotFound{Resource: "approved menu plan"}
	}

	derivation := budget.DeriveFromMenuPlan(menuPlanSnapshot(menuPlan))

	plan.MenuPlanID = &menuPlan.ID
	plan.MenuBasedBudget = true
	plan.ProteinBudget = derivation.Categories.Protein
	plan.CarbBudget = derivation.Categories.Carb
	plan.VegetableBudget = derivation.Categories.Vegetable
	plan.FruitBudget = derivation.Categories.Fruit
	plan.OtherBudget = derivation.Categories.Other
	plan.TotalBudget = derivation.TotalBudget
	if derivation.TargetMeals > 0 {
		plan.TargetMeals = derivation.TargetMeals
	}
	if derivation.TargetRecipients > 0 {
		plan.TargetRecipients = derivation.TargetRecipients
	}

	alloc := budget.ComputeAllocation(allocationInput(plan))
	plan.AllocatedBudget = alloc.AllocatedBudget
	plan.RemainingBudget = alloc.RemainingBudget

	items := make([]entity.ProcurementPlanItem, 0, len(derivation.Items))
	for _, item := range derivation.Items {
		items = append(items, entity.ProcurementPlanItem{
			ID:              uuid.New().String(),
			PlanID:          plan.ID,
			InventoryItemID: item.InventoryItemID,
			ItemName:        item.ItemName,
			Unit:            item.Unit,
			TotalQuantity:   item.TotalQuantity,
			UnitCost:        item.UnitCost,
			EstimatedCost:   item.EstimatedCost,
			BudgetCategory:  string(item.Category),
			MenuCount:       item.MenuCount,
		})
	}

	updated, err := s.commit(ctx, actor, plan, eventPopulate, map[string]interface{}{
		"menu_plan_id":      plan.MenuPlanID,
		"menu_based_budget": true,
		"protein_budget":    plan.ProteinBudget,
		"carb_budget":       plan.CarbBudget,
		"vegetable_budget":  plan.VegetableBudget,
		"fruit_budget":      plan.FruitBudget,
		"other_budget":      plan.OtherBudget,
		"total_budget":      plan.TotalBudget,
		"target_meals":      plan.TargetMeals,
		"target_recipients": plan.TargetRecipients,
		"allocated_budget":  plan.AllocatedBudget,
		"remaining_budget":  plan.RemainingBudget,
	})
	if err != nil {
		return nil, err
	}
	if err := s.planRepo.ReplaceItems(ctx, plan.ID, items); err != nil {
		return nil, fmt.Errorf("replace plan items: %w", err)
	}
	updated.Items = items

	result := &PopulateResult{Plan: updated}
	if derivation.Empty {
		result.Warning = "menu plan has no costed assignments; budgets derived as zero, complete the plan manually"
	}
	return result, nil
}

// commit applies a lifecycle mutation with a status compare-and-swap and
// re-reads the plan. A lost race means the expected state is gone and surfaces
// as InvalidTransition, leaving the winner's write intact. Every committed
// plan write goes through here, draft edits included.
func (s *PlanService) commit(ctx context.Context, actor Actor, plan *entity.ProcurementPlan, event planEvent, updates map[string]interface{}) (*entity.ProcurementPlan, error) {
	rows, err := s.planRepo.UpdateStatusGuarded(ctx, plan.ID, plan.ApprovalStatus, updates)
	if err != nil {
		return nil, fmt.Errorf("%s plan: %w", event, err)
	}
	if rows == 0 {
		return nil, &apperr.InvalidTransition{From: string(plan.ApprovalStatus), Event: string(event)}
	}

	s.logger.Info("plan transition",
		zap.String("plan_id", plan.ID),
		zap.String("sppg_id", plan.SppgID),
		zap.String("event", string(event)),
		zap.String("from", string(plan.ApprovalStatus)),
		zap.String("user_id", actor.UserID))

	s.invalidateDashboard(ctx, actor.SppgID)
	return s.planRepo.FindByID(ctx, actor.SppgID, plan.ID)
}

func (s *PlanService) invalidateDashboard(ctx context.Context, sppgID string) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, dashboardCacheKey(sppgID)).Err(); err != nil {
		s.logger.Warn("dashboard cache invalidation failed", zap.Error(err))
	}
}

func allocationInput(plan *entity.ProcurementPlan) budget.AllocationInput {
	return budget.AllocationInput{
		TotalBudget: plan.TotalBudget,
		UsedBudget:  plan.UsedBudget,
		Categories: budget.CategoryBudgets{
			Protein:   plan.ProteinBudget,
			Carb:      plan.CarbBudget,
			Vegetable: plan.VegetableBudget,
			Fruit:     plan.FruitBudget,
			Other:     plan.OtherBudget,
		},
	}
}

// menuPlanSnapshot flattens the preloaded entity graph into the ledger's
// read-only input.
func menuPlanSnapshot(mp *entity.MenuPlan) budget.MenuPlanSnapshot {
	snapshot := budget.MenuPlanSnapshot{
		ID:                 mp.ID,
		TotalMenus:         mp.TotalMenus,
		TotalDays:          mp.TotalDays,
		TotalEstimatedCost: mp.TotalEstimatedCost,
	}
	for _, a := range mp.Assignments {
		if a.Menu == nil {
			continue
		}
		as := budget.AssignmentSnapshot{
			MenuID:          a.MenuID,
			PlannedPortions: a.PlannedPortions,
		}
		for _, ing := range a.Menu.Ingredients {
			line := budget.IngredientLine{
				InventoryItemID:    ing.InventoryItemID,
				QuantityPerPortion: ing.QuantityPerPortion,
				Unit:               ing.Unit,
			}
			if item := ing.InventoryItem; item != nil {
				line.ItemName = item.ItemName
				line.UnitCost = item.UnitCost
				if line.Unit == "" {
					line.Unit = item.Unit
				}
				if item.FoodCategory != nil {
					line.CategoryTag = item.FoodCategory.CategoryCode
				}
			}
			as.Ingredients = append(as.Ingredients, line)
		}
		snapshot.Assignments = append(snapshot.Assignments, as)
	}
	return snapshot
}

func planNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &apperr.NotFound{Resource: "procurement plan"}
	}
	return fmt.Errorf("load plan: %w", err)
}
