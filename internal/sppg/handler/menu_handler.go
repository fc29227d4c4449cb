package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/yasunstudio/bagizi-id-sub002/internal/sppg/repository"
	"github.com/yasunstudio/bagizi-id-sub002/internal/sppg/service"
)

type MenuHandler struct {
	svc *service.MenuService
}

func NewMenuHandler(svc *service.MenuService) *MenuHandler {
	return &MenuHandler{svc: svc}
}

// Create POST /menus
func (h *MenuHandler) Create(c *gin.Context) {
	var req service.CreateMenuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}

	menu, err := h.svc.Create(c.Request.Context(), ActorFrom(c), &req)
	if err != nil {
		WriteDomainError(c, err)
		return
	}
	Created(c, menu)
}

// Get GET /menus/:id
func (h *MenuHandler) Get(c *gin.Context) {
	menu, err := h.svc.Get(c.Request.Context(), ActorFrom(c), c.Param("id"))
	if err != nil {
		WriteDomainError(c, err)
		return
	}
	Success(c, menu)
}

// List GET /menus
func (h *MenuHandler) List(c *gin.Context) {
	page, size := GetPagination(c)
	params := repository.MenuListParams{
		Keyword:  c.Query("keyword"),
		MealType: c.Query("meal_type"),
		Page:     page,
		Size:     size,
	}

	menus, total, err := h.svc.List(c.Request.Context(), ActorFrom(c), params)
	if err != nil {
		InternalError(c, "list menus: "+err.Error())
		return
	}
	Success(c, ListResponse{Items: menus, Pagination: NewPagination(page, size, total)})
}

// Update PUT /menus/:id
func (h *MenuHandler) Update(c *gin.Context) {
	var req service.UpdateMenuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}

	menu, err := h.svc.Update(c.Request.Context(), ActorFrom(c), c.Param("id"), &req)
	if err != nil {
		WriteDomainError(c, err)
		return
	}
	Success(c, menu)
}

// Delete DELETE /menus/:id
func (h *MenuHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), ActorFrom(c), c.Param("id")); err != nil {
		WriteDomainError(c, err)
		return
	}
	Success(c, nil)
}

type setIngredientsRequest struct {
	Ingredients []service.IngredientInput `json:"ingredients" binding:"required"`
}

// SetIngredients PUT /menus/:id/ingredients
func (h *MenuHandler) SetIngredients(c *gin.Context) {
	var req setIngredientsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}

	menu, err := h.svc.SetIngredients(c.Request.Context(), ActorFrom(c), c.Param("id"), req.Ingredients)
	if err != nil {
		WriteDomainError(c, err)
		return
	}
	Success(c, menu)
}

type setRecipeStepsRequest struct {
	Steps []service.RecipeStepInput `json:"steps" binding:"required"`
}

// SetRecipeSteps PUT /menus/:id/recipe-steps
func (h *MenuHandler) SetRecipeSteps(c *gin.Context) {
	var req setRecipeStepsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}

	menu, err := h.svc.SetRecipeSteps(c.Request.Context(), ActorFrom(c), c.Param("id"), req.Steps)
	if err != nil {
		WriteDomainError(c, err)
		return
	}
	Success(c, menu)
}
