package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/yasunstudio/bagizi-id-sub002/internal/sppg/service"
)

type FoodCategoryHandler struct {
	svc *service.FoodCategoryService
}

func NewFoodCategoryHandler(svc *service.FoodCategoryService) *FoodCategoryHandler {
	return &FoodCategoryHandler{svc: svc}
}

// Create POST /food-categories
func (h *FoodCategoryHandler) Create(c *gin.Context) {
	var req service.CreateFoodCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}

	category, err := h.svc.Create(c.Request.Context(), ActorFrom(c), &req)
	if err != nil {
		WriteDomainError(c, err)
		return
	}
	Created(c, category)
}

// Get GET /food-categories/:id
func (h *FoodCategoryHandler) Get(c *gin.Context) {
	category, err := h.svc.Get(c.Request.Context(), ActorFrom(c), c.Param("id"))
	if err != nil {
		WriteDomainError(c, err)
		return
	}
	Success(c, category)
}

// Tree GET /food-categories
func (h *FoodCategoryHandler) Tree(c *gin.Context) {
	categories, err := h.svc.Tree(c.Request.Context(), ActorFrom(c))
	if err != nil {
		InternalError(c, "list food categories: "+err.Error())
		return
	}
	Success(c, gin.H{"items": categories})
}

// Update PUT /food-categories/:id
func (h *FoodCategoryHandler) Update(c *gin.Context) {
	var req service.UpdateFoodCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}

	category, err := h.svc.Update(c.Request.Context(), ActorFrom(c), c.Param("id"), &req)
	if err != nil {
		WriteDomainError(c, err)
		return
	}
	Success(c, category)
}
