package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yasunstudio/bagizi-id-sub002/internal/config"
	"github.com/yasunstudio/bagizi-id-sub002/internal/sppg/apperr"
	"github.com/yasunstudio/bagizi-id-sub002/internal/sppg/service"
)

// Handlers bundles every handler for route registration.
type Handlers struct {
	Auth         *AuthHandler
	Program      *ProgramHandler
	FoodCategory *FoodCategoryHandler
	Inventory    *InventoryHandler
	Menu         *MenuHandler
	MenuPlan     *MenuPlanHandler
	Plan         *PlanHandler
	Distribution *DistributionHandler
	Dashboard    *DashboardHandler
}

func NewHandlers(svc *service.Services, cfg *config.Config) *Handlers {
	return &Handlers{
		Auth:         NewAuthHandler(svc.Auth),
		Program:      NewProgramHandler(svc.Program),
		FoodCategory: NewFoodCategoryHandler(svc.FoodCategory),
		Inventory:    NewInventoryHandler(svc.Inventory),
		Menu:         NewMenuHandler(svc.Menu),
		MenuPlan:     NewMenuPlanHandler(svc.MenuPlan),
		Plan:         NewPlanHandler(svc.Plan, svc.Export),
		Distribution: NewDistributionHandler(svc.Distribution),
		Dashboard:    NewDashboardHandler(svc.Dashboard),
	}
}

// Response is the common envelope.
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// ListResponse wraps paged collections.
type ListResponse struct {
	Items      interface{} `json:"items"`
	Pagination *Pagination `json:"pagination"`
}

type Pagination struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"total_pages"`
}

func NewPagination(page, size int, total int64) *Pagination {
	pages := total / int64(size)
	if total%int64(size) != 0 {
		pages++
	}
	return &Pagination{Page: page, PageSize: size, Total: total, TotalPages: pages}
}

func Success(c *gin.Context, data interface{}) {
	c.JSON(200, Response{Code: 0, Message: "success", Data: data})
}

func Created(c *gin.Context, data interface{}) {
	c.JSON(201, Response{Code: 0, Message: "success", Data: data})
}

// Error writes an error envelope. The HTTP status is the leading three digits
// of the application code.
func Error(c *gin.Context, code int, message string) {
	statusCode := code / 100
	if statusCode < 100 || statusCode > 599 {
		statusCode = 500
	}
	c.JSON(statusCode, Response{Code: code, Message: message})
}

func BadRequest(c *gin.Context, message string) {
	Error(c, 40000, message)
}

func Unauthorized(c *gin.Context, message string) {
	Error(c, 40100, message)
}

func Forbidden(c *gin.Context, message string) {
	Error(c, 40300, message)
}

func NotFound(c *gin.Context, message string) {
	Error(c, 40400, message)
}

func Conflict(c *gin.Context, code int, message string) {
	Error(c, code, message)
}

func InternalError(c *gin.Context, message string) {
	Error(c, 50000, message)
}

// Domain error codes within the 409 family.
const (
	codeInvalidTransition = 40900
	codeBudgetExceeded    = 40901
	codeDuplicatePeriod   = 40902
)

// WriteDomainError maps a service error to the envelope. Unrecognized errors
// become 500s without leaking internals.
func WriteDomainError(c *gin.Context, err error) {
	var (
		verr *apperr.ValidationError
		terr *apperr.InvalidTransition
		berr *apperr.BudgetExceeded
		nerr *apperr.NotFound
		derr *apperr.DuplicatePeriod
	)
	switch {
	case errors.As(err, &verr):
		BadRequest(c, verr.Error())
	case errors.As(err, &terr):
		Conflict(c, codeInvalidTransition, terr.Error())
	case errors.As(err, &berr):
		Conflict(c, codeBudgetExceeded, berr.Error())
	case errors.As(err, &derr):
		Conflict(c, codeDuplicatePeriod, derr.Error())
	case errors.As(err, &nerr):
		NotFound(c, nerr.Error())
	default:
		InternalError(c, "internal error")
	}
}

// ActorFrom reads the identity the auth middleware resolved.
func ActorFrom(c *gin.Context) service.Actor {
	return service.Actor{
		SppgID: c.GetString("sppg_id"),
		UserID: c.GetString("user_id"),
		Role:   c.GetString("role"),
	}
}

// GetPagination reads page/page_size query params with sane bounds.
func GetPagination(c *gin.Context) (page, pageSize int) {
	page = 1
	pageSize = 20

	if p := c.Query("page"); p != "" {
		if v, err := strconv.Atoi(p); err == nil && v > 0 {
			page = v
		}
	}
	if ps := c.Query("page_size"); ps != "" {
		if v, err := strconv.Atoi(ps); err == nil && v > 0 && v <= 100 {
			pageSize = v
		}
	}
	return page, pageSize
}
