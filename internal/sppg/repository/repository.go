package repository

import "gorm.io/gorm"

// Repositories bundles every repository for wiring.
type Repositories struct {
	User         *UserRepository
	Program      *ProgramRepository
	FoodCategory *FoodCategoryRepository
	Inventory    *InventoryRepository
	Menu         *MenuRepository
	MenuPlan     *MenuPlanRepository
	Plan         *PlanRepository
	Distribution *DistributionRepository
}

func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		User:         NewUserRepository(db),
		Program:      NewProgramRepository(db),
		FoodCategory: NewFoodCategoryRepository(db),
		Inventory:    NewInventoryRepository(db),
		Menu:         NewMenuRepository(db),
		MenuPlan:     NewMenuPlanRepository(db),
		Plan:         NewPlanRepository(db),
		Distribution: NewDistributionRepository(db),
	}
}
