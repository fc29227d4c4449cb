package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/yasunstudio/bagizi-id-sub002/internal/sppg/apperr"
	"github.com/yasunstudio/bagizi-id-sub002/internal/sppg/entity"
	"github.com/yasunstudio/bagizi-id-sub002/internal/sppg/repository"
	"github.com/yasunstudio/bagizi-id-sub002/internal/sppg/testutil"
)

func TestTransitionTable(t *testing.T) {
	statuses := []entity.PlanStatus{
		entity.PlanStatusDraft,
		entity.PlanStatusSubmitted,
		entity.PlanStatusUnderReview,
		entity.PlanStatusApproved,
		entity.PlanStatusRejected,
		entity.PlanStatusCancelled,
	}

	allowed := map[planEvent]map[entity.PlanStatus]bool{
		eventSubmit:      {entity.PlanStatusDraft: true},
		eventResubmit:    {entity.PlanStatusRejected: true},
		eventStartReview: {entity.PlanStatusSubmitted: true},
		eventApprove:     {entity.PlanStatusSubmitted: true, entity.PlanStatusUnderReview: true},
		eventReject:      {entity.PlanStatusSubmitted: true, entity.PlanStatusUnderReview: true},
		eventCancel: {
			entity.PlanStatusDraft:       true,
			entity.PlanStatusSubmitted:   true,
			entity.PlanStatusUnderReview: true,
			entity.PlanStatusApproved:    true,
		},
		eventUpdate:   {entity.PlanStatusDraft: true, entity.PlanStatusRejected: true},
		eventDelete:   {entity.PlanStatusDraft: true},
		eventPopulate: {entity.PlanStatusDraft: true},
	}

	for event, want := range allowed {
		for _, from := range statuses {
			got := transitionAllowed(from, event)
			if got != want[from] {
				t.Errorf("transitionAllowed(%s, %s) = %v, want %v", from, event, got, want[from])
			}
		}
	}
}

func TestCancelledIsTerminal(t *testing.T) {
	events := []planEvent{
		eventSubmit, eventResubmit, eventStartReview, eventApprove,
		eventReject, eventCancel, eventUpdate, eventDelete, eventPopulate,
	}
	for _, event := range events {
		if transitionAllowed(entity.PlanStatusCancelled, event) {
			t.Errorf("cancelled plan must not accept %s", event)
		}
	}
}

func TestUnknownEventRejected(t *testing.T) {
	if transitionAllowed(entity.PlanStatusDraft, planEvent("promote")) {
		t.Error("unknown event must never be allowed")
	}
}

func TestRejectReasonFloor(t *testing.T) {
	s := &PlanService{}
	actor := Actor{SppgID: "sppg-1", UserID: "u-1", Role: entity.RoleKepala}

	cases := []struct {
		name   string
		reason string
	}{
		{"too short", "bad plan"},
		{"whitespace padded", "   short    "},
		{"empty", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.Reject(context.Background(), actor, "plan-1", tc.reason)
			var verr *apperr.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if verr.Field != "rejection_reason" {
				t.Errorf("expected field rejection_reason, got %s", verr.Field)
			}
		})
	}
}

func TestCancelReasonFloor(t *testing.T) {
	s := &PlanService{}
	actor := Actor{SppgID: "sppg-1", UserID: "u-1", Role: entity.RoleKepala}

	_, err := s.Cancel(context.Background(), actor, "plan-1", "why not")
	var verr *apperr.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if verr.Field != "cancellation_reason" {
		t.Errorf("expected field cancellation_reason, got %s", verr.Field)
	}
}

func TestBudgetFieldValidation(t *testing.T) {
	if err := validateBudgetFields(100, 10, 20, 30, 0, 0); err != nil {
		t.Fatalf("non-negative budgets must pass: %v", err)
	}
	err := validateBudgetFields(100, -1, 0, 0, 0, 0)
	var verr *apperr.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if verr.Field != "protein_budget" {
		t.Errorf("expected field protein_budget, got %s", verr.Field)
	}
}

// A write keyed on a status the row no longer holds must touch nothing and
// come back as InvalidTransition, leaving the other writer's state intact.
func TestStaleStatusWriteLosesCleanly(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repos := repository.NewRepositories(db)
	s := NewPlanService(repos.Plan, repos.MenuPlan, repos.Program, nil, zap.NewNop())
	ctx := context.Background()

	plan := &entity.ProcurementPlan{
		ID:             uuid.New().String(),
		SppgID:         testutil.TestSppgID,
		PlanMonth:      2,
		PlanYear:       2026,
		TotalBudget:    1000000,
		ApprovalStatus: entity.PlanStatusDraft,
		CreatedBy:      "test-user-001",
	}
	if err := repos.Plan.Create(ctx, plan); err != nil {
		t.Fatalf("create plan: %v", err)
	}

	// The loaded copy believes the plan is SUBMITTED while the row is still
	// DRAFT, as when a concurrent reject won between load and write.
	stale := *plan
	stale.ApprovalStatus = entity.PlanStatusSubmitted

	actor := Actor{SppgID: testutil.TestSppgID, UserID: "test-user-001", Role: entity.RoleKepala}
	_, err := s.commit(ctx, actor, &stale, eventStartReview, map[string]interface{}{
		"approval_status": entity.PlanStatusUnderReview,
	})
	var tr *apperr.InvalidTransition
	if !errors.As(err, &tr) {
		t.Fatalf("expected InvalidTransition, got %v", err)
	}

	rows, err := repos.Plan.UpdateStatusGuarded(ctx, plan.ID, entity.PlanStatusSubmitted, map[string]interface{}{
		"approval_status": entity.PlanStatusUnderReview,
	})
	if err != nil {
		t.Fatalf("guarded update: %v", err)
	}
	if rows != 0 {
		t.Errorf("stale guard must write zero rows, wrote %d", rows)
	}

	reloaded, err := repos.Plan.FindByID(ctx, testutil.TestSppgID, plan.ID)
	if err != nil {
		t.Fatalf("reload plan: %v", err)
	}
	if reloaded.ApprovalStatus != entity.PlanStatusDraft {
		t.Errorf("losing write must not move the plan, status = %s", reloaded.ApprovalStatus)
	}
}

func TestIsApprover(t *testing.T) {
	cases := []struct {
		role string
		want bool
	}{
		{entity.RoleStaff, false},
		{entity.RoleKepala, true},
		{entity.RoleAdmin, true},
		{"", false},
	}
	for _, tc := range cases {
		if got := (Actor{Role: tc.role}).isApprover(); got != tc.want {
			t.Errorf("isApprover(%q) = %v, want %v", tc.role, got, tc.want)
		}
	}
}
