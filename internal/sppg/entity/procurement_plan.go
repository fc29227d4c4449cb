package entity

import (
	"time"
)

// PlanStatus is the approval state of a procurement plan. Status only moves
// through the lifecycle rules in the plan service, never by direct writes.
type PlanStatus string

const (
	PlanStatusDraft       PlanStatus = "DRAFT"
	PlanStatusSubmitted   PlanStatus = "SUBMITTED"
	PlanStatusUnderReview PlanStatus = "UNDER_REVIEW"
	PlanStatusApproved    PlanStatus = "APPROVED"
	PlanStatusRejected    PlanStatus = "REJECTED"
	PlanStatusCancelled   PlanStatus = "CANCELLED"
)

// ProcurementPlan is a tenant's procurement budget for one period.
type ProcurementPlan struct {
	ID         string  `json:"id" gorm:"primaryKey;size:36"`
	SppgID     string  `json:"sppg_id" gorm:"size:36;not null;index:idx_plan_period"`
	ProgramID  *string `json:"program_id" gorm:"size:36;index:idx_plan_period"`
	MenuPlanID *string `json:"menu_plan_id" gorm:"size:36;index"`

	PlanMonth   int  `json:"plan_month" gorm:"not null;index:idx_plan_period"` // 1-12
	PlanYear    int  `json:"plan_year" gorm:"not null;index:idx_plan_period"`
	PlanQuarter *int `json:"plan_quarter,omitempty"` // 1-4

	TargetRecipients int `json:"target_recipients" gorm:"default:0"`
	TargetMeals      int `json:"target_meals" gorm:"default:0"`

	TotalBudget     float64 `json:"total_budget" gorm:"type:decimal(15,2);default:0"`
	AllocatedBudget float64 `json:"allocated_budget" gorm:"type:decimal(15,2);default:0"`
	UsedBudget      float64 `json:"used_budget" gorm:"type:decimal(15,2);default:0"`
	RemainingBudget float64 `json:"remaining_budget" gorm:"type:decimal(15,2);default:0"`

	ProteinBudget   float64 `json:"protein_budget" gorm:"type:decimal(15,2);default:0"`
	CarbBudget      float64 `json:"carb_budget" gorm:"type:decimal(15,2);default:0"`
	VegetableBudget float64 `json:"vegetable_budget" gorm:"type:decimal(15,2);default:0"`
	FruitBudget     float64 `json:"fruit_budget" gorm:"type:decimal(15,2);default:0"`
	OtherBudget     float64 `json:"other_budget" gorm:"type:decimal(15,2);default:0"`

	MenuBasedBudget bool `json:"menu_based_budget" gorm:"default:false"`

	ApprovalStatus PlanStatus `json:"approval_status" gorm:"size:20;not null;default:DRAFT;index"`

	SubmittedBy *string    `json:"submitted_by" gorm:"size:36"`
	SubmittedAt *time.Time `json:"submitted_at"`
	SubmitNotes string     `json:"submit_notes" gorm:"type:text"`

	ApprovedBy    *string    `json:"approved_by" gorm:"size:36"`
	ApprovedAt    *time.Time `json:"approved_at"`
	ApprovalNotes string     `json:"approval_notes" gorm:"type:text"`

	RejectedBy      *string    `json:"rejected_by" gorm:"size:36"`
	RejectedAt      *time.Time `json:"rejected_at"`
	RejectionReason string     `json:"rejection_reason" gorm:"type:text"`

	CancelledBy        *string    `json:"cancelled_by" gorm:"size:36"`
	CancelledAt        *time.Time `json:"cancelled_at"`
	CancellationReason string     `json:"cancellation_reason" gorm:"type:text"`

	Notes     string     `json:"notes" gorm:"type:text"`
	CreatedBy string     `json:"created_by" gorm:"size:36;not null"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty" gorm:"index"`

	Program  *NutritionProgram     `json:"program,omitempty" gorm:"foreignKey:ProgramID"`
	MenuPlan *MenuPlan             `json:"menu_plan,omitempty" gorm:"foreignKey:MenuPlanID"`
	Items    []ProcurementPlanItem `json:"items,omitempty" gorm:"foreignKey:PlanID"`
}

func (ProcurementPlan) TableName() string {
	return "procurement_plans"
}

// ProcurementPlanItem is one suggested procurement line derived from a menu
// plan at populate time. Rows are a snapshot: re-deriving replaces them.
type ProcurementPlanItem struct {
	ID     string `json:"id" gorm:"primaryKey;size:36"`
	PlanID string `json:"plan_id" gorm:"size:36;not null;index"`

	InventoryItemID string `json:"inventory_item_id" gorm:"size:36;not null"`
	ItemName        string `json:"item_name" gorm:"size:200;not null"`
	Unit            string `json:"unit" gorm:"size:20;not null;default:kg"`

	TotalQuantity  float64 `json:"total_quantity" gorm:"type:decimal(12,4);not null"`
	UnitCost       float64 `json:"unit_cost" gorm:"type:decimal(15,2);not null"`
	EstimatedCost  float64 `json:"estimated_cost" gorm:"type:decimal(15,2);not null"`
	BudgetCategory string  `json:"budget_category" gorm:"size:20;not null"`
	MenuCount      int     `json:"menu_count" gorm:"default:0"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (ProcurementPlanItem) TableName() string {
	return "procurement_plan_items"
}
