package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/yasunstudio/bagizi-id-sub002/internal/sppg/service"
)

type DashboardHandler struct {
	svc *service.DashboardService
}

func NewDashboardHandler(svc *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// Overview GET /dashboard
func (h *DashboardHandler) Overview(c *gin.Context) {
	dashboard, err := h.svc.Overview(c.Request.Context(), ActorFrom(c))
	if err != nil {
		InternalError(c, "build dashboard: "+err.Error())
		return
	}
	Success(c, dashboard)
}
