package handler

import (
	"fmt"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/yasunstudio/bagizi-id-sub002/internal/config"
	"github.com/yasunstudio/bagizi-id-sub002/internal/sppg/entity"
	"github.com/yasunstudio/bagizi-id-sub002/internal/sppg/repository"
	"github.com/yasunstudio/bagizi-id-sub002/internal/sppg/service"
	"github.com/yasunstudio/bagizi-id-sub002/internal/sppg/testutil"
	"gorm.io/gorm"
)

func setupPlanEnv(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	db := testutil.SetupTestDB(t)

	repos := repository.NewRepositories(db)
	cfg := &config.Config{}
	svc := service.NewServices(repos, nil, cfg, zap.NewNop())
	h := NewHandlers(svc, cfg)

	r := testutil.SetupRouter()
	api := testutil.AuthGroup(r, "/api/v1")

	plans := api.Group("/procurement-plans")
	{
		plans.POST("", h.Plan.Create)
		plans.GET("", h.Plan.List)
		plans.GET("/:id", h.Plan.Get)
		plans.PUT("/:id", h.Plan.Update)
		plans.DELETE("/:id", h.Plan.Delete)
		plans.GET("/:id/allocation", h.Plan.Allocation)
		plans.POST("/:id/submit", h.Plan.Submit)
		plans.POST("/:id/start-review", h.Plan.StartReview)
		plans.POST("/:id/approve", h.Plan.Approve)
		plans.POST("/:id/reject", h.Plan.Reject)
		plans.POST("/:id/cancel", h.Plan.Cancel)
		plans.POST("/:id/populate", h.Plan.Populate)
	}

	return r, db
}

func createDraftPlan(t *testing.T, r *gin.Engine, token string, month int, totalBudget float64, categories map[string]float64) map[string]interface{} {
	t.Helper()
	body := map[string]interface{}{
		"plan_month":   month,
		"plan_year":    2026,
		"total_budget": totalBudget,
	}
	for k, v := range categories {
		body[k] = v
	}

	w := testutil.DoRequest(r, "POST", "/api/v1/procurement-plans", body, token)
	if w.Code != 201 {
		t.Fatalf("create plan: expected 201, got %d: %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	return resp["data"].(map[string]interface{})
}

func TestCreatePlanComputesLedger(t *testing.T) {
	r, _ := setupPlanEnv(t)
	token := testutil.DefaultTestToken()

	plan := createDraftPlan(t, r, token, 3, 10000000, map[string]float64{
		"protein_budget":   4000000,
		"carb_budget":      3000000,
		"vegetable_budget": 1500000,
		"fruit_budget":     1000000,
		"other_budget":     500000,
	})

	if plan["approval_status"] != "DRAFT" {
		t.Errorf("expected DRAFT, got %v", plan["approval_status"])
	}
	if plan["allocated_budget"].(float64) != 10000000 {
		t.Errorf("expected allocated 10000000, got %v", plan["allocated_budget"])
	}
	if plan["remaining_budget"].(float64) != 10000000 {
		t.Errorf("expected remaining 10000000, got %v", plan["remaining_budget"])
	}
	if plan["used_budget"].(float64) != 0 {
		t.Errorf("expected used 0, got %v", plan["used_budget"])
	}
}

func TestCreatePlanDuplicatePeriod(t *testing.T) {
	r, _ := setupPlanEnv(t)
	token := testutil.DefaultTestToken()

	createDraftPlan(t, r, token, 4, 1000000, nil)

	w := testutil.DoRequest(r, "POST", "/api/v1/procurement-plans", map[string]interface{}{
		"plan_month": 4,
		"plan_year":  2026,
	}, token)
	if w.Code != 409 {
		t.Fatalf("expected 409, got %d: %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	if resp["code"].(float64) != 40902 {
		t.Errorf("expected code 40902, got %v", resp["code"])
	}
}

func TestPlanApprovalFlow(t *testing.T) {
	r, _ := setupPlanEnv(t)
	token := testutil.DefaultTestToken()

	plan := createDraftPlan(t, r, token, 5, 5000000, map[string]float64{
		"protein_budget": 2000000,
		"carb_budget":    1500000,
	})
	planID := plan["id"].(string)

	w := testutil.DoRequest(r, "POST", "/api/v1/procurement-plans/"+planID+"/submit",
		map[string]interface{}{"notes": "ready for review"}, token)
	if w.Code != 200 {
		t.Fatalf("submit: expected 200, got %d: %s", w.Code, w.Body.String())
	}
	data := testutil.ParseResponse(w)["data"].(map[string]interface{})
	if data["approval_status"] != "SUBMITTED" {
		t.Fatalf("expected SUBMITTED, got %v", data["approval_status"])
	}

	w = testutil.DoRequest(r, "POST", "/api/v1/procurement-plans/"+planID+"/start-review", nil, token)
	if w.Code != 200 {
		t.Fatalf("start review: expected 200, got %d: %s", w.Code, w.Body.String())
	}

	w = testutil.DoRequest(r, "POST", "/api/v1/procurement-plans/"+planID+"/approve",
		map[string]interface{}{"notes": "looks good"}, token)
	if w.Code != 200 {
		t.Fatalf("approve: expected 200, got %d: %s", w.Code, w.Body.String())
	}
	data = testutil.ParseResponse(w)["data"].(map[string]interface{})
	if data["approval_status"] != "APPROVED" {
		t.Errorf("expected APPROVED, got %v", data["approval_status"])
	}
	if data["approved_by"] == nil {
		t.Error("expected approved_by to be recorded")
	}
}

func TestApproveBlockedWhenOverBudget(t *testing.T) {
	r, _ := setupPlanEnv(t)
	token := testutil.DefaultTestToken()

	plan := createDraftPlan(t, r, token, 6, 900000, map[string]float64{
		"protein_budget":   400000,
		"carb_budget":      300000,
		"vegetable_budget": 300000,
	})
	planID := plan["id"].(string)

	w := testutil.DoRequest(r, "POST", "/api/v1/procurement-plans/"+planID+"/submit", nil, token)
	if w.Code != 200 {
		t.Fatalf("submit: expected 200, got %d: %s", w.Code, w.Body.String())
	}

	w = testutil.DoRequest(r, "POST", "/api/v1/procurement-plans/"+planID+"/approve", nil, token)
	if w.Code != 409 {
		t.Fatalf("expected 409, got %d: %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	if resp["code"].(float64) != 40901 {
		t.Errorf("expected code 40901, got %v", resp["code"])
	}

	// Gate failure must not move the plan.
	w = testutil.DoRequest(r, "GET", "/api/v1/procurement-plans/"+planID, nil, token)
	data := testutil.ParseResponse(w)["data"].(map[string]interface{})
	if data["approval_status"] != "SUBMITTED" {
		t.Errorf("plan must stay SUBMITTED after failed gate, got %v", data["approval_status"])
	}
}

func TestRejectReasonLength(t *testing.T) {
	r, _ := setupPlanEnv(t)
	token := testutil.DefaultTestToken()

	plan := createDraftPlan(t, r, token, 7, 1000000, nil)
	planID := plan["id"].(string)

	w := testutil.DoRequest(r, "POST", "/api/v1/procurement-plans/"+planID+"/submit", nil, token)
	if w.Code != 200 {
		t.Fatalf("submit: expected 200, got %d", w.Code)
	}

	// 9 characters fails.
	w = testutil.DoRequest(r, "POST", "/api/v1/procurement-plans/"+planID+"/reject",
		map[string]interface{}{"reason": "too small"}, token)
	if w.Code != 400 {
		t.Fatalf("short reason: expected 400, got %d: %s", w.Code, w.Body.String())
	}

	// 10 characters passes.
	w = testutil.DoRequest(r, "POST", "/api/v1/procurement-plans/"+planID+"/reject",
		map[string]interface{}{"reason": "wrong year"}, token)
	if w.Code != 200 {
		t.Fatalf("reject: expected 200, got %d: %s", w.Code, w.Body.String())
	}
	data := testutil.ParseResponse(w)["data"].(map[string]interface{})
	if data["approval_status"] != "REJECTED" {
		t.Errorf("expected REJECTED, got %v", data["approval_status"])
	}

	// Rejected plans can be resubmitted.
	w = testutil.DoRequest(r, "POST", "/api/v1/procurement-plans/"+planID+"/submit", nil, token)
	if w.Code != 200 {
		t.Fatalf("resubmit: expected 200, got %d: %s", w.Code, w.Body.String())
	}
}

func TestStaffCannotApprove(t *testing.T) {
	r, _ := setupPlanEnv(t)
	approver := testutil.DefaultTestToken()
	staff := testutil.StaffTestToken()

	plan := createDraftPlan(t, r, staff, 8, 1000000, nil)
	planID := plan["id"].(string)

	w := testutil.DoRequest(r, "POST", "/api/v1/procurement-plans/"+planID+"/submit", nil, staff)
	if w.Code != 200 {
		t.Fatalf("submit: expected 200, got %d", w.Code)
	}

	w = testutil.DoRequest(r, "POST", "/api/v1/procurement-plans/"+planID+"/approve", nil, staff)
	if w.Code != 400 {
		t.Errorf("staff approve: expected 400, got %d: %s", w.Code, w.Body.String())
	}

	w = testutil.DoRequest(r, "POST", "/api/v1/procurement-plans/"+planID+"/approve", nil, approver)
	if w.Code != 200 {
		t.Errorf("approver approve: expected 200, got %d: %s", w.Code, w.Body.String())
	}
}

func TestCancelApprovedNeedsAdmin(t *testing.T) {
	r, _ := setupPlanEnv(t)
	kepala := testutil.DefaultTestToken()
	admin := testutil.GenerateTestToken("admin-001", testutil.TestSppgID, "Admin", "admin@test.id", entity.RoleAdmin)

	plan := createDraftPlan(t, r, kepala, 9, 1000000, nil)
	planID := plan["id"].(string)

	testutil.DoRequest(r, "POST", "/api/v1/procurement-plans/"+planID+"/submit", nil, kepala)
	w := testutil.DoRequest(r, "POST", "/api/v1/procurement-plans/"+planID+"/approve", nil, kepala)
	if w.Code != 200 {
		t.Fatalf("approve: expected 200, got %d", w.Code)
	}

	w = testutil.DoRequest(r, "POST", "/api/v1/procurement-plans/"+planID+"/cancel",
		map[string]interface{}{"reason": "program discontinued"}, kepala)
	if w.Code != 409 {
		t.Fatalf("kepala cancel approved: expected 409, got %d: %s", w.Code, w.Body.String())
	}

	w = testutil.DoRequest(r, "POST", "/api/v1/procurement-plans/"+planID+"/cancel",
		map[string]interface{}{"reason": "program discontinued"}, admin)
	if w.Code != 200 {
		t.Fatalf("admin cancel approved: expected 200, got %d: %s", w.Code, w.Body.String())
	}
	data := testutil.ParseResponse(w)["data"].(map[string]interface{})
	if data["approval_status"] != "CANCELLED" {
		t.Errorf("expected CANCELLED, got %v", data["approval_status"])
	}

	// Cancelled is terminal.
	w = testutil.DoRequest(r, "POST", "/api/v1/procurement-plans/"+planID+"/submit", nil, admin)
	if w.Code != 409 {
		t.Errorf("submit after cancel: expected 409, got %d", w.Code)
	}
}

func TestCancelFreesPeriodForNewPlan(t *testing.T) {
	r, _ := setupPlanEnv(t)
	token := testutil.DefaultTestToken()

	plan := createDraftPlan(t, r, token, 1, 1000000, nil)
	planID := plan["id"].(string)

	w := testutil.DoRequest(r, "POST", "/api/v1/procurement-plans/"+planID+"/cancel",
		map[string]interface{}{"reason": "budget reallocated"}, token)
	if w.Code != 200 {
		t.Fatalf("cancel: expected 200, got %d: %s", w.Code, w.Body.String())
	}

	// The cancelled plan no longer blocks its tenant/program/period.
	replacement := createDraftPlan(t, r, token, 1, 2000000, nil)
	if replacement["id"].(string) == planID {
		t.Error("replacement must be a new plan")
	}
}

func TestRejectedPlanEditableBeforeResubmit(t *testing.T) {
	r, _ := setupPlanEnv(t)
	token := testutil.DefaultTestToken()

	plan := createDraftPlan(t, r, token, 2, 1000000, map[string]float64{
		"protein_budget": 600000,
	})
	planID := plan["id"].(string)

	w := testutil.DoRequest(r, "POST", "/api/v1/procurement-plans/"+planID+"/submit", nil, token)
	if w.Code != 200 {
		t.Fatalf("submit: expected 200, got %d", w.Code)
	}
	w = testutil.DoRequest(r, "POST", "/api/v1/procurement-plans/"+planID+"/reject",
		map[string]interface{}{"reason": "protein share too low"}, token)
	if w.Code != 200 {
		t.Fatalf("reject: expected 200, got %d: %s", w.Code, w.Body.String())
	}

	// Revision is allowed while REJECTED and the ledger recomputes.
	w = testutil.DoRequest(r, "PUT", "/api/v1/procurement-plans/"+planID,
		map[string]interface{}{"total_budget": 1500000, "protein_budget": 900000}, token)
	if w.Code != 200 {
		t.Fatalf("update rejected: expected 200, got %d: %s", w.Code, w.Body.String())
	}
	data := testutil.ParseResponse(w)["data"].(map[string]interface{})
	if data["approval_status"] != "REJECTED" {
		t.Errorf("edit must not change status, got %v", data["approval_status"])
	}
	if data["allocated_budget"].(float64) != 900000 {
		t.Errorf("expected allocated 900000, got %v", data["allocated_budget"])
	}

	w = testutil.DoRequest(r, "POST", "/api/v1/procurement-plans/"+planID+"/submit", nil, token)
	if w.Code != 200 {
		t.Fatalf("resubmit: expected 200, got %d: %s", w.Code, w.Body.String())
	}
	data = testutil.ParseResponse(w)["data"].(map[string]interface{})
	if data["approval_status"] != "SUBMITTED" {
		t.Errorf("expected SUBMITTED, got %v", data["approval_status"])
	}
}

func TestCrossTenantLookupIsNotFound(t *testing.T) {
	r, _ := setupPlanEnv(t)
	token := testutil.DefaultTestToken()
	otherTenant := testutil.TenantToken("sppg-other-999")

	plan := createDraftPlan(t, r, token, 10, 1000000, nil)
	planID := plan["id"].(string)

	w := testutil.DoRequest(r, "GET", "/api/v1/procurement-plans/"+planID, nil, otherTenant)
	if w.Code != 404 {
		t.Errorf("cross-tenant get: expected 404, got %d: %s", w.Code, w.Body.String())
	}

	w = testutil.DoRequest(r, "POST", "/api/v1/procurement-plans/"+planID+"/submit", nil, otherTenant)
	if w.Code != 404 {
		t.Errorf("cross-tenant submit: expected 404, got %d: %s", w.Code, w.Body.String())
	}
}

func seedApprovedMenuPlan(t *testing.T, db *gorm.DB) string {
	t.Helper()

	category := &entity.FoodCategory{
		ID: uuid.New().String(), SppgID: testutil.TestSppgID,
		CategoryCode: "PROTEIN_HEWANI", CategoryName: "Protein Hewani", IsActive: true,
	}
	vegCategory := &entity.FoodCategory{
		ID: uuid.New().String(), SppgID: testutil.TestSppgID,
		CategoryCode: "SAYURAN", CategoryName: "Sayuran", IsActive: true,
	}
	chicken := &entity.InventoryItem{
		ID: uuid.New().String(), SppgID: testutil.TestSppgID, FoodCategoryID: &category.ID,
		ItemCode: "AYM-001", ItemName: "Ayam Potong", Unit: "kg", UnitCost: 20000, IsActive: true,
	}
	spinach := &entity.InventoryItem{
		ID: uuid.New().String(), SppgID: testutil.TestSppgID, FoodCategoryID: &vegCategory.ID,
		ItemCode: "SYR-001", ItemName: "Bayam", Unit: "kg", UnitCost: 8000, IsActive: true,
	}
	menu := &entity.NutritionMenu{
		ID: uuid.New().String(), SppgID: testutil.TestSppgID,
		MenuCode: fmt.Sprintf("MENU-TEST-%d", time.Now().UnixNano()%100000),
		MenuName: "Ayam Bayam", MealType: entity.MealTypeLunch, ServingSize: 1,
		IsActive: true, CreatedBy: "test-user-001",
	}
	ingredients := []entity.MenuIngredient{
		{ID: uuid.New().String(), MenuID: menu.ID, InventoryItemID: chicken.ID, QuantityPerPortion: 0.2, Unit: "kg"},
		{ID: uuid.New().String(), MenuID: menu.ID, InventoryItemID: spinach.ID, QuantityPerPortion: 0.1, Unit: "kg"},
	}
	start := time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC)
	menuPlan := &entity.MenuPlan{
		ID: uuid.New().String(), SppgID: testutil.TestSppgID,
		PlanName: "November Week 1", StartDate: start, EndDate: start.AddDate(0, 0, 4),
		Status: entity.MenuPlanStatusApproved, TotalDays: 5, TotalMenus: 1,
		CreatedBy: "test-user-001",
	}
	assignment := &entity.MenuAssignment{
		ID: uuid.New().String(), MenuPlanID: menuPlan.ID, MenuID: menu.ID,
		AssignmentDate: start, MealType: entity.MealTypeLunch, PlannedPortions: 100,
	}

	for _, rec := range []interface{}{category, vegCategory, chicken, spinach, menu, &ingredients, menuPlan, assignment} {
		if err := db.Create(rec).Error; err != nil {
			t.Fatalf("seed menu plan: %v", err)
		}
	}
	return menuPlan.ID
}

func TestPopulateFromMenuPlan(t *testing.T) {
	r, db := setupPlanEnv(t)
	token := testutil.DefaultTestToken()

	menuPlanID := seedApprovedMenuPlan(t, db)
	plan := createDraftPlan(t, r, token, 11, 0, nil)
	planID := plan["id"].(string)

	w := testutil.DoRequest(r, "POST", "/api/v1/procurement-plans/"+planID+"/populate",
		map[string]interface{}{"menu_plan_id": menuPlanID}, token)
	if w.Code != 200 {
		t.Fatalf("populate: expected 200, got %d: %s", w.Code, w.Body.String())
	}

	result := testutil.ParseResponse(w)["data"].(map[string]interface{})
	data := result["plan"].(map[string]interface{})

	// 100 portions x 0.2kg x 20000 = 400000 protein, 100 x 0.1 x 8000 = 80000 vegetable.
	if data["protein_budget"].(float64) != 400000 {
		t.Errorf("expected protein 400000, got %v", data["protein_budget"])
	}
	if data["vegetable_budget"].(float64) != 80000 {
		t.Errorf("expected vegetable 80000, got %v", data["vegetable_budget"])
	}
	if data["total_budget"].(float64) != 480000 {
		t.Errorf("expected total 480000, got %v", data["total_budget"])
	}
	if data["menu_based_budget"] != true {
		t.Error("expected menu_based_budget true")
	}
	if data["target_meals"].(float64) != 1 {
		t.Errorf("expected target_meals 1, got %v", data["target_meals"])
	}

	items := data["items"].([]interface{})
	if len(items) != 2 {
		t.Fatalf("expected 2 suggested items, got %d", len(items))
	}
	first := items[0].(map[string]interface{})
	if first["item_name"] != "Ayam Potong" {
		t.Errorf("items must be ordered by cost desc, got %v first", first["item_name"])
	}
}

func TestDraftOnlyMutations(t *testing.T) {
	r, _ := setupPlanEnv(t)
	token := testutil.DefaultTestToken()

	plan := createDraftPlan(t, r, token, 12, 1000000, nil)
	planID := plan["id"].(string)

	testutil.DoRequest(r, "POST", "/api/v1/procurement-plans/"+planID+"/submit", nil, token)

	w := testutil.DoRequest(r, "PUT", "/api/v1/procurement-plans/"+planID,
		map[string]interface{}{"total_budget": 2000000}, token)
	if w.Code != 409 {
		t.Errorf("update submitted: expected 409, got %d: %s", w.Code, w.Body.String())
	}

	w = testutil.DoRequest(r, "DELETE", "/api/v1/procurement-plans/"+planID, nil, token)
	if w.Code != 409 {
		t.Errorf("delete submitted: expected 409, got %d: %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	if resp["code"].(float64) != 40900 {
		t.Errorf("expected code 40900, got %v", resp["code"])
	}
}
