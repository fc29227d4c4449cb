package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/yasunstudio/bagizi-id-sub002/internal/sppg/service"
)

type MenuPlanHandler struct {
	svc *service.MenuPlanService
}

func NewMenuPlanHandler(svc *service.MenuPlanService) *MenuPlanHandler {
	return &MenuPlanHandler{svc: svc}
}

// Create POST /menu-plans
func (h *MenuPlanHandler) Create(c *gin.Context) {
	var req service.CreateMenuPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}

	plan, err := h.svc.Create(c.Request.Context(), ActorFrom(c), &req)
	if err != nil {
		WriteDomainError(c, err)
		return
	}
	Created(c, plan)
}

// Get GET /menu-plans/:id
func (h *MenuPlanHandler) Get(c *gin.Context) {
	plan, err := h.svc.Get(c.Request.Context(), ActorFrom(c), c.Param("id"))
	if err != nil {
		WriteDomainError(c, err)
		return
	}
	Success(c, plan)
}

// List GET /menu-plans
func (h *MenuPlanHandler) List(c *gin.Context) {
	page, size := GetPagination(c)
	plans, total, err := h.svc.List(c.Request.Context(), ActorFrom(c), c.Query("status"), page, size)
	if err != nil {
		InternalError(c, "list menu plans: "+err.Error())
		return
	}
	Success(c, ListResponse{Items: plans, Pagination: NewPagination(page, size, total)})
}

// AssignMenu POST /menu-plans/:id/assignments
func (h *MenuPlanHandler) AssignMenu(c *gin.Context) {
	var req service.AssignMenuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}

	plan, err := h.svc.AssignMenu(c.Request.Context(), ActorFrom(c), c.Param("id"), &req)
	if err != nil {
		WriteDomainError(c, err)
		return
	}
	Success(c, plan)
}

// RemoveAssignment DELETE /menu-plans/:id/assignments/:assignmentId
func (h *MenuPlanHandler) RemoveAssignment(c *gin.Context) {
	plan, err := h.svc.RemoveAssignment(c.Request.Context(), ActorFrom(c), c.Param("id"), c.Param("assignmentId"))
	if err != nil {
		WriteDomainError(c, err)
		return
	}
	Success(c, plan)
}

// Submit POST /menu-plans/:id/submit
func (h *MenuPlanHandler) Submit(c *gin.Context) {
	plan, err := h.svc.Submit(c.Request.Context(), ActorFrom(c), c.Param("id"))
	if err != nil {
		WriteDomainError(c, err)
		return
	}
	Success(c, plan)
}

// Approve POST /menu-plans/:id/approve
func (h *MenuPlanHandler) Approve(c *gin.Context) {
	plan, err := h.svc.Approve(c.Request.Context(), ActorFrom(c), c.Param("id"))
	if err != nil {
		WriteDomainError(c, err)
		return
	}
	Success(c, plan)
}
