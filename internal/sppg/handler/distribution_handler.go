package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yasunstudio/bagizi-id-sub002/internal/sppg/repository"
	"github.com/yasunstudio/bagizi-id-sub002/internal/sppg/service"
)

type DistributionHandler struct {
	svc *service.DistributionService
}

func NewDistributionHandler(svc *service.DistributionService) *DistributionHandler {
	return &DistributionHandler{svc: svc}
}

// Create POST /distribution-costs
func (h *DistributionHandler) Create(c *gin.Context) {
	var req service.CreateDistributionCostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}

	cost, err := h.svc.Create(c.Request.Context(), ActorFrom(c), &req)
	if err != nil {
		WriteDomainError(c, err)
		return
	}
	Created(c, cost)
}

// Get GET /distribution-costs/:id
func (h *DistributionHandler) Get(c *gin.Context) {
	cost, err := h.svc.Get(c.Request.Context(), ActorFrom(c), c.Param("id"))
	if err != nil {
		WriteDomainError(c, err)
		return
	}
	Success(c, cost)
}

// List GET /distribution-costs
func (h *DistributionHandler) List(c *gin.Context) {
	page, size := GetPagination(c)
	params := repository.DistributionListParams{
		CostType: c.Query("cost_type"),
		PlanID:   c.Query("plan_id"),
		Page:     page,
		Size:     size,
	}
	if y := c.Query("year"); y != "" {
		params.Year, _ = strconv.Atoi(y)
	}
	if m := c.Query("month"); m != "" {
		params.Month, _ = strconv.Atoi(m)
	}

	costs, total, err := h.svc.List(c.Request.Context(), ActorFrom(c), params)
	if err != nil {
		InternalError(c, "list distribution costs: "+err.Error())
		return
	}
	Success(c, ListResponse{Items: costs, Pagination: NewPagination(page, size, total)})
}

// Delete DELETE /distribution-costs/:id
func (h *DistributionHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), ActorFrom(c), c.Param("id")); err != nil {
		WriteDomainError(c, err)
		return
	}
	Success(c, nil)
}

// Summary GET /distribution-costs/summary
func (h *DistributionHandler) Summary(c *gin.Context) {
	now := time.Now()
	year := now.Year()
	month := int(now.Month())
	if y := c.Query("year"); y != "" {
		year, _ = strconv.Atoi(y)
	}
	if m := c.Query("month"); m != "" {
		month, _ = strconv.Atoi(m)
	}

	summary, err := h.svc.Summary(c.Request.Context(), ActorFrom(c), year, month)
	if err != nil {
		WriteDomainError(c, err)
		return
	}
	Success(c, summary)
}
