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

type FoodCategoryService struct {
	categoryRepo *repository.FoodCategoryRepository
}

func NewFoodCategoryService(categoryRepo *repository.FoodCategoryRepository) *FoodCategoryService {
	return &FoodCategoryService{categoryRepo: categoryRepo}
}

type CreateFoodCategoryRequest struct {
	ParentID     *string `json:"parent_id"`
	CategoryCode string  `json:"category_code" binding:"required"`
	CategoryName string  `json:"category_name" binding:"required"`
	Description  string  `json:"description"`
	SortOrder    int     `json:"sort_order"`
}

func (s *FoodCategoryService) Create(ctx context.Context, actor Actor, req *CreateFoodCategoryRequest) (*entity.FoodCategory, error) {
	code := strings.ToUpper(strings.TrimSpace(req.CategoryCode))
	if code == "" {
		return nil, apperr.Validation("category_code", "must not be blank")
	}

	if req.ParentID != nil {
		parent, err := s.Get(ctx, actor, *req.ParentID)
		if err != nil {
			return nil, err
		}
		// Single-level hierarchy: a child cannot become a parent.
		if parent.ParentID != nil {
			return nil, apperr.Validation("parent_id", "must reference a top-level category")
		}
	}

	category := &entity.FoodCategory{
		ID:           uuid.New().String(),
		SppgID:       actor.SppgID,
		ParentID:     req.ParentID,
		CategoryCode: code,
		CategoryName: req.CategoryName,
		Description:  req.Description,
		SortOrder:    req.SortOrder,
		IsActive:     true,
	}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("create food category: %w", err)
	}
	return category, nil
}

func (s *FoodCategoryService) Get(ctx context.Context, actor Actor, id string) (*entity.FoodCategory, error) {
	category, err := s.categoryRepo.FindByID(ctx, actor.SppgID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &apperr.NotFound{Resource: "food category"}
		}
		return nil, fmt.Errorf("load food category: %w", err)
	}
	return category, nil
}

// Tree returns root categories with their children.
func (s *FoodCategoryService) Tree(ctx context.Context, actor Actor) ([]entity.FoodCategory, error) {
	return s.categoryRepo.ListRoots(ctx, actor.SppgID)
}

type UpdateFoodCategoryRequest struct {
	CategoryName *string `json:"category_name"`
	Description  *string `json:"description"`
	SortOrder    *int    `json:"sort_order"`
	IsActive     *bool   `json:"is_active"`
}

func (s *FoodCategoryService) Update(ctx context.Context, actor Actor, id string, req *UpdateFoodCategoryRequest) (*entity.FoodCategory, error) {
	category, err := s.Get(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	if req.CategoryName != nil {
		category.CategoryName = *req.CategoryName
	}
	if req.Description != nil {
		category.Description = *req.Description
	}
	if req.SortOrder != nil {
		category.SortOrder = *req.SortOrder
	}
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, fmt.Errorf("update food category: %w", err)
	}
	return category, nil
}
