package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/yasunstudio/bagizi-id-sub002/internal/sppg/service"
)

type ProgramHandler struct {
	svc *service.ProgramService
}

func NewProgramHandler(svc *service.ProgramService) *ProgramHandler {
	return &ProgramHandler{svc: svc}
}

// Create POST /programs
func (h *ProgramHandler) Create(c *gin.Context) {
	var req service.CreateProgramRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}

	program, err := h.svc.Create(c.Request.Context(), ActorFrom(c), &req)
	if err != nil {
		WriteDomainError(c, err)
		return
	}
	Created(c, program)
}

// Get GET /programs/:id
func (h *ProgramHandler) Get(c *gin.Context) {
	program, err := h.svc.Get(c.Request.Context(), ActorFrom(c), c.Param("id"))
	if err != nil {
		WriteDomainError(c, err)
		return
	}
	Success(c, program)
}

// List GET /programs
func (h *ProgramHandler) List(c *gin.Context) {
	page, size := GetPagination(c)
	programs, total, err := h.svc.List(c.Request.Context(), ActorFrom(c), page, size)
	if err != nil {
		InternalError(c, "list programs: "+err.Error())
		return
	}
	Success(c, ListResponse{Items: programs, Pagination: NewPagination(page, size, total)})
}

// Update PUT /programs/:id
func (h *ProgramHandler) Update(c *gin.Context) {
	var req service.UpdateProgramRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}

	program, err := h.svc.Update(c.Request.Context(), ActorFrom(c), c.Param("id"), &req)
	if err != nil {
		WriteDomainError(c, err)
		return
	}
	Success(c, program)
}
