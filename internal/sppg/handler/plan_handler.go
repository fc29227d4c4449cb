package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yasunstudio/bagizi-id-sub002/internal/sppg/repository"
	"github.com/yasunstudio/bagizi-id-sub002/internal/sppg/service"
)

type PlanHandler struct {
	svc    *service.PlanService
	export *service.ExportService
}

func NewPlanHandler(svc *service.PlanService, export *service.ExportService) *PlanHandler {
	return &PlanHandler{svc: svc, export: export}
}

// Create POST /procurement-plans
func (h *PlanHandler) Create(c *gin.Context) {
	var req service.CreatePlanRequest
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

// Get GET /procurement-plans/:id
func (h *PlanHandler) Get(c *gin.Context) {
	plan, err := h.svc.Get(c.Request.Context(), ActorFrom(c), c.Param("id"))
	if err != nil {
		WriteDomainError(c, err)
		return
	}
	Success(c, plan)
}

// List GET /procurement-plans
func (h *PlanHandler) List(c *gin.Context) {
	page, size := GetPagination(c)
	params := repository.PlanListParams{
		Status:    c.Query("status"),
		ProgramID: c.Query("program_id"),
		Page:      page,
		Size:      size,
	}
	if y := c.Query("year"); y != "" {
		params.Year, _ = strconv.Atoi(y)
	}
	if m := c.Query("month"); m != "" {
		params.Month, _ = strconv.Atoi(m)
	}

	plans, total, err := h.svc.List(c.Request.Context(), ActorFrom(c), params)
	if err != nil {
		InternalError(c, "list plans: "+err.Error())
		return
	}
	Success(c, ListResponse{Items: plans, Pagination: NewPagination(page, size, total)})
}

// Allocation GET /procurement-plans/:id/allocation
func (h *PlanHandler) Allocation(c *gin.Context) {
	alloc, err := h.svc.Allocation(c.Request.Context(), ActorFrom(c), c.Param("id"))
	if err != nil {
		WriteDomainError(c, err)
		return
	}
	Success(c, alloc)
}

// Update PUT /procurement-plans/:id
func (h *PlanHandler) Update(c *gin.Context) {
	var req service.UpdatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}

	plan, err := h.svc.Update(c.Request.Context(), ActorFrom(c), c.Param("id"), &req)
	if err != nil {
		WriteDomainError(c, err)
		return
	}
	Success(c, plan)
}

// Delete DELETE /procurement-plans/:id
func (h *PlanHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), ActorFrom(c), c.Param("id")); err != nil {
		WriteDomainError(c, err)
		return
	}
	Success(c, nil)
}

type submitRequest struct {
	Notes string `json:"notes"`
}

// Submit POST /procurement-plans/:id/submit
func (h *PlanHandler) Submit(c *gin.Context) {
	var req submitRequest
	c.ShouldBindJSON(&req)

	plan, err := h.svc.Submit(c.Request.Context(), ActorFrom(c), c.Param("id"), req.Notes)
	if err != nil {
		WriteDomainError(c, err)
		return
	}
	Success(c, plan)
}

// StartReview POST /procurement-plans/:id/start-review
func (h *PlanHandler) StartReview(c *gin.Context) {
	plan, err := h.svc.StartReview(c.Request.Context(), ActorFrom(c), c.Param("id"))
	if err != nil {
		WriteDomainError(c, err)
		return
	}
	Success(c, plan)
}

type approveRequest struct {
	Notes string `json:"notes"`
}

// Approve POST /procurement-plans/:id/approve
func (h *PlanHandler) Approve(c *gin.Context) {
	var req approveRequest
	c.ShouldBindJSON(&req)

	plan, err := h.svc.Approve(c.Request.Context(), ActorFrom(c), c.Param("id"), req.Notes)
	if err != nil {
		WriteDomainError(c, err)
		return
	}
	Success(c, plan)
}

type reasonRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// Reject POST /procurement-plans/:id/reject
func (h *PlanHandler) Reject(c *gin.Context) {
	var req reasonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}

	plan, err := h.svc.Reject(c.Request.Context(), ActorFrom(c), c.Param("id"), req.Reason)
	if err != nil {
		WriteDomainError(c, err)
		return
	}
	Success(c, plan)
}

// Cancel POST /procurement-plans/:id/cancel
func (h *PlanHandler) Cancel(c *gin.Context) {
	var req reasonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}

	plan, err := h.svc.Cancel(c.Request.Context(), ActorFrom(c), c.Param("id"), req.Reason)
	if err != nil {
		WriteDomainError(c, err)
		return
	}
	Success(c, plan)
}

type populateRequest struct {
	MenuPlanID string `json:"menu_plan_id" binding:"required"`
}

// Populate POST /procurement-plans/:id/populate
func (h *PlanHandler) Populate(c *gin.Context) {
	var req populateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}

	result, err := h.svc.PopulateFromMenuPlan(c.Request.Context(), ActorFrom(c), c.Param("id"), req.MenuPlanID)
	if err != nil {
		WriteDomainError(c, err)
		return
	}
	Success(c, result)
}

// Export GET /procurement-plans/:id/export
// With ?link=true the file goes to object storage and the response carries a
// presigned URL instead of the bytes.
func (h *PlanHandler) Export(c *gin.Context) {
	if c.Query("link") == "true" {
		url, err := h.export.UploadPlanExport(c.Request.Context(), ActorFrom(c), c.Param("id"))
		if err != nil {
			WriteDomainError(c, err)
			return
		}
		Success(c, gin.H{"url": url})
		return
	}

	f, filename, err := h.export.PlanWorkbook(c.Request.Context(), ActorFrom(c), c.Param("id"))
	if err != nil {
		WriteDomainError(c, err)
		return
	}
	defer f.Close()

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment; filename=\""+filename+"\"")
	c.Header("Content-Transfer-Encoding", "binary")

	if err := f.Write(c.Writer); err != nil {
		InternalError(c, "write excel: "+err.Error())
	}
}
