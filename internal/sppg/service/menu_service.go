package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yasunstudio/bagizi-id-sub002/internal/sppg/apperr"
	"github.com/yasunstudio/bagizi-id-sub002/internal/sppg/entity"
	"github.com/yasunstudio/bagizi-id-sub002/internal/sppg/repository"
)

// MenuService owns menu authoring: menus, ingredient lines, recipe steps,
// and the cached per-portion cost the planner reads.
type MenuService struct {
	menuRepo      *repository.MenuRepository
	inventoryRepo *repository.InventoryRepository
}

func NewMenuService(menuRepo *repository.MenuRepository, inventoryRepo *repository.InventoryRepository) *MenuService {
	return &MenuService{menuRepo: menuRepo, inventoryRepo: inventoryRepo}
}

type CreateMenuRequest struct {
	MenuName       string  `json:"menu_name" binding:"required"`
	Description    string  `json:"description"`
	MealType       string  `json:"meal_type"`
	ProgramID      *string `json:"program_id"`
	FoodCategoryID *string `json:"food_category_id"`
	ServingSize    float64 `json:"serving_size"`
	Calories       float64 `json:"calories"`
	Protein        float64 `json:"protein"`
	Carbs          float64 `json:"carbs"`
	Fat            float64 `json:"fat"`
}

func (s *MenuService) Create(ctx context.Context, actor Actor, req *CreateMenuRequest) (*entity.NutritionMenu, error) {
	mealType := req.MealType
	if mealType == "" {
		mealType = entity.MealTypeLunch
	}
	servingSize := req.ServingSize
	if servingSize <= 0 {
		servingSize = 1
	}

	menu := &entity.NutritionMenu{
		ID:             uuid.New().String(),
		SppgID:         actor.SppgID,
		ProgramID:      req.ProgramID,
		FoodCategoryID: req.FoodCategoryID,
		MenuCode:       fmt.Sprintf("MENU-%s%04d", time.Now().Format("20060102"), time.Now().UnixNano()%10000),
		MenuName:       req.MenuName,
		Description:    req.Description,
		MealType:       mealType,
		ServingSize:    servingSize,
		Calories:       req.Calories,
		Protein:        req.Protein,
		Carbs:          req.Carbs,
		Fat:            req.Fat,
		IsActive:       true,
		CreatedBy:      actor.UserID,
	}
	if err := s.menuRepo.Create(ctx, menu); err != nil {
		return nil, fmt.Errorf("create menu: %w", err)
	}
	return menu, nil
}

func (s *MenuService) Get(ctx context.Context, actor Actor, id string) (*entity.NutritionMenu, error) {
	menu, err := s.menuRepo.FindByID(ctx, actor.SppgID, id)
	if err != nil {
		return nil, menuNotFound(err)
	}
	return menu, nil
}

func (s *MenuService) List(ctx context.Context, actor Actor, params repository.MenuListParams) ([]entity.NutritionMenu, int64, error) {
	return s.menuRepo.List(ctx, actor.SppgID, params)
}

type UpdateMenuRequest struct {
	MenuName       *string  `json:"menu_name"`
	Description    *string  `json:"description"`
	MealType       *string  `json:"meal_type"`
	FoodCategoryID *string  `json:"food_category_id"`
	Calories       *float64 `json:"calories"`
	Protein        *float64 `json:"protein"`
	Carbs          *float64 `json:"carbs"`
	Fat            *float64 `json:"fat"`
	IsActive       *bool    `json:"is_active"`
}

func (s *MenuService) Update(ctx context.Context, actor Actor, id string, req *UpdateMenuRequest) (*entity.NutritionMenu, error) {
	menu, err := s.menuRepo.FindByID(ctx, actor.SppgID, id)
	if err != nil {
		return nil, menuNotFound(err)
	}

	if req.MenuName != nil {
		menu.MenuName = *req.MenuName
	}
	if req.Description != nil {
		menu.Description = *req.Description
	}
	if req.MealType != nil {
		menu.MealType = *req.MealType
	}
	if req.FoodCategoryID != nil {
		menu.FoodCategoryID = req.FoodCategoryID
	}
	if req.Calories != nil {
		menu.Calories = *req.Calories
	}
	if req.Protein != nil {
		menu.Protein = *req.Protein
	}
	if req.Carbs != nil {
		menu.Carbs = *req.Carbs
	}
	if req.Fat != nil {
		menu.Fat = *req.Fat
	}
	if req.IsActive != nil {
		menu.IsActive = *req.IsActive
	}

	if err := s.menuRepo.Update(ctx, menu); err != nil {
		return nil, fmt.Errorf("update menu: %w", err)
	}
	return menu, nil
}

func (s *MenuService) Delete(ctx context.Context, actor Actor, id string) error {
	if _, err := s.menuRepo.FindByID(ctx, actor.SppgID, id); err != nil {
		return menuNotFound(err)
	}
	return s.menuRepo.Delete(ctx, actor.SppgID, id)
}

type IngredientInput struct {
	InventoryItemID    string  `json:"inventory_item_id" binding:"required"`
	QuantityPerPortion float64 `json:"quantity_per_portion" binding:"required,gt=0"`
	Unit               string  `json:"unit"`
	Notes              string  `json:"notes"`
}

// SetIngredients replaces a menu's ingredient lines and recomputes the cached
// per-portion cost from current inventory unit costs.
func (s *MenuService) SetIngredients(ctx context.Context, actor Actor, menuID string, inputs []IngredientInput) (*entity.NutritionMenu, error) {
	menu, err := s.menuRepo.FindByID(ctx, actor.SppgID, menuID)
	if err != nil {
		return nil, menuNotFound(err)
	}

	var costPerPortion float64
	ingredients := make([]entity.MenuIngredient, 0, len(inputs))
	for _, in := range inputs {
		item, err := s.inventoryRepo.FindByID(ctx, actor.SppgID, in.InventoryItemID)
		if err != nil {
			return nil, &apperr.NotFound{Resource: "inventory item"}
		}
		unit := in.Unit
		if unit == "" {
			unit = item.Unit
		}
		ingredients = append(ingredients, entity.MenuIngredient{
			ID:                 uuid.New().String(),
			MenuID:             menu.ID,
			InventoryItemID:    item.ID,
			QuantityPerPortion: in.QuantityPerPortion,
			Unit:               unit,
			Notes:              in.Notes,
		})
		costPerPortion += in.QuantityPerPortion * item.UnitCost
	}

	if err := s.menuRepo.ReplaceIngredients(ctx, menu.ID, ingredients); err != nil {
		return nil, fmt.Errorf("replace ingredients: %w", err)
	}

	menu.CostPerPortion = costPerPortion
	if err := s.menuRepo.Update(ctx, menu); err != nil {
		return nil, fmt.Errorf("update menu cost: %w", err)
	}
	return s.menuRepo.FindByID(ctx, actor.SppgID, menu.ID)
}

type RecipeStepInput struct {
	Instruction string `json:"instruction" binding:"required"`
	DurationMin int    `json:"duration_min"`
	Equipment   string `json:"equipment"`
}

// SetRecipeSteps replaces a menu's recipe with the given ordered steps.
func (s *MenuService) SetRecipeSteps(ctx context.Context, actor Actor, menuID string, inputs []RecipeStepInput) (*entity.NutritionMenu, error) {
	menu, err := s.menuRepo.FindByID(ctx, actor.SppgID, menuID)
	if err != nil {
		return nil, menuNotFound(err)
	}

	steps := make([]entity.RecipeStep, 0, len(inputs))
	for i, in := range inputs {
		steps = append(steps, entity.RecipeStep{
			ID:          uuid.New().String(),
			MenuID:      menu.ID,
			StepNumber:  i + 1,
			Instruction: in.Instruction,
			DurationMin: in.DurationMin,
			Equipment:   in.Equipment,
		})
	}

	if err := s.menuRepo.ReplaceRecipeSteps(ctx, menu.ID, steps); err != nil {
		return nil, fmt.Errorf("replace recipe steps: %w", err)
	}
	return s.menuRepo.FindByID(ctx, actor.SppgID, menu.ID)
}

func menuNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &apperr.NotFound{Resource: "menu"}
	}
	return fmt.Errorf("load menu: %w", err)
}
