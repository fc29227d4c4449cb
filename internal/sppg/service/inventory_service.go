package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yasunstudio/bagizi-id-sub002/internal/sppg/apperr"
	"github.com/yasunstudio/bagizi-id-sub002/internal/sppg/entity"
	"github.com/yasunstudio/bagizi-id-sub002/internal/sppg/repository"
)

type InventoryService struct {
	inventoryRepo *repository.InventoryRepository
	categoryRepo  *repository.FoodCategoryRepository
}

func NewInventoryService(inventoryRepo *repository.InventoryRepository, categoryRepo *repository.FoodCategoryRepository) *InventoryService {
	return &InventoryService{inventoryRepo: inventoryRepo, categoryRepo: categoryRepo}
}

type CreateInventoryItemRequest struct {
	FoodCategoryID *string `json:"food_category_id"`
	ItemCode       string  `json:"item_code" binding:"required"`
	ItemName       string  `json:"item_name" binding:"required"`
	Unit           string  `json:"unit"`
	UnitCost       float64 `json:"unit_cost"`
	CurrentStock   float64 `json:"current_stock"`
	MinimumStock   float64 `json:"minimum_stock"`
}

func (s *InventoryService) Create(ctx context.Context, actor Actor, req *CreateInventoryItemRequest) (*entity.InventoryItem, error) {
	if req.UnitCost < 0 {
		return nil, apperr.Validation("unit_cost", "must not be negative")
	}
	if req.FoodCategoryID != nil {
		if _, err := s.categoryRepo.FindByID(ctx, actor.SppgID, *req.FoodCategoryID); err != nil {
			return nil, &apperr.NotFound{Resource: "food category"}
		}
	}

	unit := strings.TrimSpace(req.Unit)
	if unit == "" {
		unit = "kg"
	}

	item := &entity.InventoryItem{
		ID:             uuid.New().String(),
		SppgID:         actor.SppgID,
		FoodCategoryID: req.FoodCategoryID,
		ItemCode:       strings.ToUpper(strings.TrimSpace(req.ItemCode)),
		ItemName:       req.ItemName,
		Unit:           unit,
		UnitCost:       req.UnitCost,
		CurrentStock:   req.CurrentStock,
		MinimumStock:   req.MinimumStock,
		IsActive:       true,
	}
	if err := s.inventoryRepo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("create inventory item: %w", err)
	}
	return item, nil
}

func (s *InventoryService) Get(ctx context.Context, actor Actor, id string) (*entity.InventoryItem, error) {
	item, err := s.inventoryRepo.FindByID(ctx, actor.SppgID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &apperr.NotFound{Resource: "inventory item"}
		}
		return nil, fmt.Errorf("load inventory item: %w", err)
	}
	return item, nil
}

func (s *InventoryService) List(ctx context.Context, actor Actor, keyword string, page, size int) ([]entity.InventoryItem, int64, error) {
	return s.inventoryRepo.List(ctx, actor.SppgID, keyword, page, size)
}

type UpdateInventoryItemRequest struct {
	FoodCategoryID *string  `json:"food_category_id"`
	ItemName       *string  `json:"item_name"`
	Unit           *string  `json:"unit"`
	UnitCost       *float64 `json:"unit_cost"`
	CurrentStock   *float64 `json:"current_stock"`
	MinimumStock   *float64 `json:"minimum_stock"`
	IsActive       *bool    `json:"is_active"`
}

func (s *InventoryService) Update(ctx context.Context, actor Actor, id string, req *UpdateInventoryItemRequest) (*entity.InventoryItem, error) {
	item, err := s.Get(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	if req.FoodCategoryID != nil {
		if _, err := s.categoryRepo.FindByID(ctx, actor.SppgID, *req.FoodCategoryID); err != nil {
			return nil, &apperr.NotFound{Resource: "food category"}
		}
		item.FoodCategoryID = req.FoodCategoryID
	}
	if req.ItemName != nil {
		item.ItemName = *req.ItemName
	}
	if req.Unit != nil {
		item.Unit = *req.Unit
	}
	if req.UnitCost != nil {
		if *req.UnitCost < 0 {
			return nil, apperr.Validation("unit_cost", "must not be negative")
		}
		item.UnitCost = *req.UnitCost
	}
	if req.CurrentStock != nil {
		item.CurrentStock = *req.CurrentStock
	}
	if req.MinimumStock != nil {
		item.MinimumStock = *req.MinimumStock
	}
	if req.IsActive != nil {
		item.IsActive = *req.IsActive
	}

	if err := s.inventoryRepo.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("update inventory item: %w", err)
	}
	return item, nil
}
