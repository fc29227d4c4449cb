package entity

import "time"

// MenuPlanStatus values. Menu plans have a simpler flow than procurement
// plans: only APPROVED plans can feed budget derivation.
type MenuPlanStatus string

const (
	MenuPlanStatusDraft     MenuPlanStatus = "DRAFT"
	MenuPlanStatusSubmitted MenuPlanStatus = "SUBMITTED"
	MenuPlanStatusApproved  MenuPlanStatus = "APPROVED"
	MenuPlanStatusArchived  MenuPlanStatus = "ARCHIVED"
)

// MenuPlan schedules menus over a date range for one tenant.
type MenuPlan struct {
	ID        string  `json:"id" gorm:"primaryKey;size:36"`
	SppgID    string  `json:"sppg_id" gorm:"size:36;not null;index"`
	ProgramID *string `json:"program_id" gorm:"size:36;index"`

	PlanName  string    `json:"plan_name" gorm:"size:200;not null"`
	StartDate time.Time `json:"start_date" gorm:"type:date;not null"`
	EndDate   time.Time `json:"end_date" gorm:"type:date;not null"`

	Status MenuPlanStatus `json:"status" gorm:"size:20;not null;default:DRAFT;index"`

	// Aggregates maintained from assignments on every assignment write.
	TotalMenus         int     `json:"total_menus" gorm:"default:0"`
	TotalDays          int     `json:"total_days" gorm:"default:0"`
	TotalEstimatedCost float64 `json:"total_estimated_cost" gorm:"type:decimal(15,2);default:0"`

	ApprovedBy *string    `json:"approved_by" gorm:"size:36"`
	ApprovedAt *time.Time `json:"approved_at"`

	Notes     string     `json:"notes" gorm:"type:text"`
	CreatedBy string     `json:"created_by" gorm:"size:36;not null"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty" gorm:"index"`

	Assignments []MenuAssignment `json:"assignments,omitempty" gorm:"foreignKey:MenuPlanID"`
}

func (MenuPlan) TableName() string {
	return "menu_plans"
}

// MenuAssignment places one menu on one date with a planned portion count.
type MenuAssignment struct {
	ID         string `json:"id" gorm:"primaryKey;size:36"`
	MenuPlanID string `json:"menu_plan_id" gorm:"size:36;not null;index:idx_assignment_slot,unique"`
	MenuID     string `json:"menu_id" gorm:"size:36;not null;index:idx_assignment_slot,unique"`

	AssignmentDate  time.Time `json:"assignment_date" gorm:"type:date;not null;index:idx_assignment_slot,unique"`
	MealType        string    `json:"meal_type" gorm:"size:20;not null;default:LUNCH"`
	PlannedPortions int       `json:"planned_portions" gorm:"not null"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Menu *NutritionMenu `json:"menu,omitempty" gorm:"foreignKey:MenuID"`
}

func (MenuAssignment) TableName() string {
	return "menu_assignments"
}
