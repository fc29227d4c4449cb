package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/yasunstudio/bagizi-id-sub002/internal/sppg/service"
)

type InventoryHandler struct {
	svc *service.InventoryService
}

func NewInventoryHandler(svc *service.InventoryService) *InventoryHandler {
	return &InventoryHandler{svc: svc}
}

// Create POST /inventory-items
func (h *InventoryHandler) Create(c *gin.Context) {
	var req service.CreateInventoryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}

	item, err := h.svc.Create(c.Request.Context(), ActorFrom(c), &req)
	if err != nil {
		WriteDomainError(c, err)
		return
	}
	Created(c, item)
}

// Get GET /inventory-items/:id
func (h *InventoryHandler) Get(c *gin.Context) {
	item, err := h.svc.Get(c.Request.Context(), ActorFrom(c), c.Param("id"))
	if err != nil {
		WriteDomainError(c, err)
		return
	}
	Success(c, item)
}

// List GET /inventory-items
func (h *InventoryHandler) List(c *gin.Context) {
	page, size := GetPagination(c)
	items, total, err := h.svc.List(c.Request.Context(), ActorFrom(c), c.Query("keyword"), page, size)
	if err != nil {
		InternalError(c, "list inventory: "+err.Error())
		return
	}
	Success(c, ListResponse{Items: items, Pagination: NewPagination(page, size, total)})
}

// Update PUT /inventory-items/:id
func (h *InventoryHandler) Update(c *gin.Context) {
	var req service.UpdateInventoryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}

	item, err := h.svc.Update(c.Request.Context(), ActorFrom(c), c.Param("id"), &req)
	if err != nil {
		WriteDomainError(c, err)
		return
	}
	Success(c, item)
}
