package entity

import "time"

// Meal slots served by a program day.
const (
	MealTypeBreakfast = "BREAKFAST"
	MealTypeLunch     = "LUNCH"
	MealTypeSnack     = "SNACK"
)

// NutritionMenu is one servable menu with its recipe and ingredient lines.
type NutritionMenu struct {
	ID             string  `json:"id" gorm:"primaryKey;size:36"`
	SppgID         string  `json:"sppg_id" gorm:"size:36;not null;index"`
	ProgramID      *string `json:"program_id" gorm:"size:36;index"`
	FoodCategoryID *string `json:"food_category_id" gorm:"size:36;index"`

	MenuCode    string `json:"menu_code" gorm:"size:50;not null;uniqueIndex"`
	MenuName    string `json:"menu_name" gorm:"size:200;not null"`
	Description string `json:"description" gorm:"type:text"`
	MealType    string `json:"meal_type" gorm:"size:20;not null;default:LUNCH"`

	ServingSize float64 `json:"serving_size" gorm:"type:decimal(8,2);default:1"` // portions per batch

	// Per-portion nutrition, maintained by the menu service from ingredients.
	Calories float64 `json:"calories" gorm:"type:decimal(8,2);default:0"`
	Protein  float64 `json:"protein" gorm:"type:decimal(8,2);default:0"`
	Carbs    float64 `json:"carbs" gorm:"type:decimal(8,2);default:0"`
	Fat      float64 `json:"fat" gorm:"type:decimal(8,2);default:0"`

	// Per-portion ingredient cost, recomputed whenever ingredients change.
	CostPerPortion float64 `json:"cost_per_portion" gorm:"type:decimal(15,2);default:0"`

	IsActive  bool       `json:"is_active" gorm:"default:true"`
	CreatedBy string     `json:"created_by" gorm:"size:36"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty" gorm:"index"`

	FoodCategory *FoodCategory    `json:"food_category,omitempty" gorm:"foreignKey:FoodCategoryID"`
	Ingredients  []MenuIngredient `json:"ingredients,omitempty" gorm:"foreignKey:MenuID"`
	RecipeSteps  []RecipeStep     `json:"recipe_steps,omitempty" gorm:"foreignKey:MenuID"`
}

func (NutritionMenu) TableName() string {
	return "nutrition_menus"
}

// MenuIngredient links a menu to an inventory item with a per-portion quantity.
type MenuIngredient struct {
	ID              string `json:"id" gorm:"primaryKey;size:36"`
	MenuID          string `json:"menu_id" gorm:"size:36;not null;index"`
	InventoryItemID string `json:"inventory_item_id" gorm:"size:36;not null;index"`

	QuantityPerPortion float64 `json:"quantity_per_portion" gorm:"type:decimal(10,4);not null"`
	Unit               string  `json:"unit" gorm:"size:20;not null;default:kg"`
	Notes              string  `json:"notes" gorm:"size:500"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	InventoryItem *InventoryItem `json:"inventory_item,omitempty" gorm:"foreignKey:InventoryItemID"`
}

func (MenuIngredient) TableName() string {
	return "menu_ingredients"
}

// RecipeStep is one ordered preparation step of a menu's recipe.
type RecipeStep struct {
	ID     string `json:"id" gorm:"primaryKey;size:36"`
	MenuID string `json:"menu_id" gorm:"size:36;not null;index:idx_recipe_step,unique"`

	StepNumber  int    `json:"step_number" gorm:"not null;index:idx_recipe_step,unique"`
	Instruction string `json:"instruction" gorm:"type:text;not null"`
	DurationMin int    `json:"duration_min" gorm:"default:0"`
	Equipment   string `json:"equipment" gorm:"size:200"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (RecipeStep) TableName() string {
	return "recipe_steps"
}
