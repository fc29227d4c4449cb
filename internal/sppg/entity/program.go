package entity

import "time"

// NutritionProgram groups plans and menus under one funded program, e.g. a
// school lunch program for a district.
type NutritionProgram struct {
	ID     string `json:"id" gorm:"primaryKey;size:36"`
	SppgID string `json:"sppg_id" gorm:"size:36;not null;index"`

	ProgramCode string `json:"program_code" gorm:"size:50;not null;uniqueIndex"`
	ProgramName string `json:"program_name" gorm:"size:200;not null"`
	Description string `json:"description" gorm:"type:text"`

	StartDate *time.Time `json:"start_date" gorm:"type:date"`
	EndDate   *time.Time `json:"end_date" gorm:"type:date"`

	TargetRecipients int     `json:"target_recipients" gorm:"default:0"`
	AnnualBudget     float64 `json:"annual_budget" gorm:"type:decimal(15,2);default:0"`

	IsActive  bool       `json:"is_active" gorm:"default:true"`
	CreatedBy string     `json:"created_by" gorm:"size:36"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty" gorm:"index"`
}

func (NutritionProgram) TableName() string {
	return "nutrition_programs"
}
