package entity

import "gorm.io/gorm"

// AutoMigrate creates or updates all back-office tables.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		// master data
		&User{},
		&NutritionProgram{},
		&FoodCategory{},
		&InventoryItem{},

		// menu authoring
		&NutritionMenu{},
		&MenuIngredient{},
		&RecipeStep{},

		// menu planning
		&MenuPlan{},
		&MenuAssignment{},

		// procurement
		&ProcurementPlan{},
		&ProcurementPlanItem{},

		// distribution
		&DistributionCost{},
	)
}
