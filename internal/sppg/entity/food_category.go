package entity

import "time"

// FoodCategory is one node of the food-category hierarchy. CategoryCode is the
// tag the budget ledger classifies against (e.g. "PROTEIN_HEWANI").
type FoodCategory struct {
	ID       string  `json:"id" gorm:"primaryKey;size:36"`
	SppgID   string  `json:"sppg_id" gorm:"size:36;not null;index"`
	ParentID *string `json:"parent_id" gorm:"size:36;index"`

	CategoryCode string `json:"category_code" gorm:"size:50;not null;uniqueIndex"`
	CategoryName string `json:"category_name" gorm:"size:100;not null"`
	Description  string `json:"description" gorm:"size:500"`
	SortOrder    int    `json:"sort_order" gorm:"default:0"`

	IsActive  bool       `json:"is_active" gorm:"default:true"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty" gorm:"index"`

	Parent   *FoodCategory  `json:"parent,omitempty" gorm:"foreignKey:ParentID"`
	Children []FoodCategory `json:"children,omitempty" gorm:"foreignKey:ParentID"`
}

func (FoodCategory) TableName() string {
	return "food_categories"
}
