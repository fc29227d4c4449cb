package entity

import "time"

// InventoryItem is a purchasable ingredient with its current unit cost.
type InventoryItem struct {
	ID             string  `json:"id" gorm:"primaryKey;size:36"`
	SppgID         string  `json:"sppg_id" gorm:"size:36;not null;index"`
	FoodCategoryID *string `json:"food_category_id" gorm:"size:36;index"`

	ItemCode string `json:"item_code" gorm:"size:50;not null;uniqueIndex"`
	ItemName string `json:"item_name" gorm:"size:200;not null"`
	Unit     string `json:"unit" gorm:"size:20;not null;default:kg"`

	UnitCost     float64 `json:"unit_cost" gorm:"type:decimal(15,2);default:0"`
	CurrentStock float64 `json:"current_stock" gorm:"type:decimal(12,4);default:0"`
	MinimumStock float64 `json:"minimum_stock" gorm:"type:decimal(12,4);default:0"`

	IsActive  bool       `json:"is_active" gorm:"default:true"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty" gorm:"index"`

	FoodCategory *FoodCategory `json:"food_category,omitempty" gorm:"foreignKey:FoodCategoryID"`
}

func (InventoryItem) TableName() string {
	return "inventory_items"
}
