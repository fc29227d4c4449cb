package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yasunstudio/bagizi-id-sub002/internal/sppg/apperr"
	"github.com/yasunstudio/bagizi-id-sub002/internal/sppg/entity"
	"github.com/yasunstudio/bagizi-id-sub002/internal/sppg/repository"
)

// DistributionService tracks delivery-related spend and reports it per month.
type DistributionService struct {
	distRepo *repository.DistributionRepository
	planRepo *repository.PlanRepository
}

func NewDistributionService(distRepo *repository.DistributionRepository, planRepo *repository.PlanRepository) *DistributionService {
	return &DistributionService{distRepo: distRepo, planRepo: planRepo}
}

var validCostTypes = map[string]bool{
	entity.DistributionCostTransport:  true,
	entity.DistributionCostFuel:       true,
	entity.DistributionCostPackaging:  true,
	entity.DistributionCostLabor:      true,
	entity.DistributionCostMaintenace: true,
	entity.DistributionCostOther:      true,
}

type CreateDistributionCostRequest struct {
	PlanID      *string `json:"plan_id"`
	CostType    string  `json:"cost_type" binding:"required"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount" binding:"required"`
	CostDate    string  `json:"cost_date" binding:"required"` // YYYY-MM-DD
	VehicleID   *string `json:"vehicle_id"`
	RouteName   string  `json:"route_name"`
	DistanceKm  float64 `json:"distance_km"`
}

func (s *DistributionService) Create(ctx context.Context, actor Actor, req *CreateDistributionCostRequest) (*entity.DistributionCost, error) {
	if !validCostTypes[req.CostType] {
		return nil, apperr.Validation("cost_type", "unknown cost type")
	}
	if req.Amount < 0 {
		return nil, apperr.Validation("amount", "must not be negative")
	}
	date, err := time.Parse("2006-01-02", req.CostDate)
	if err != nil {
		return nil, apperr.Validation("cost_date", "must be YYYY-MM-DD")
	}

	if req.PlanID != nil {
		if _, err := s.planRepo.FindByID(ctx, actor.SppgID, *req.PlanID); err != nil {
			return nil, &apperr.NotFound{Resource: "procurement plan"}
		}
	}

	cost := &entity.DistributionCost{
		ID:          uuid.New().String(),
		SppgID:      actor.SppgID,
		PlanID:      req.PlanID,
		CostType:    req.CostType,
		Description: req.Description,
		Amount:      req.Amount,
		CostDate:    date,
		VehicleID:   req.VehicleID,
		RouteName:   req.RouteName,
		DistanceKm:  req.DistanceKm,
		CreatedBy:   actor.UserID,
	}
	if err := s.distRepo.Create(ctx, cost); err != nil {
		return nil, fmt.Errorf("create distribution cost: %w", err)
	}
	return cost, nil
}

func (s *DistributionService) Get(ctx context.Context, actor Actor, id string) (*entity.DistributionCost, error) {
	cost, err := s.distRepo.FindByID(ctx, actor.SppgID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &apperr.NotFound{Resource: "distribution cost"}
		}
		return nil, fmt.Errorf("load distribution cost: %w", err)
	}
	return cost, nil
}

func (s *DistributionService) List(ctx context.Context, actor Actor, params repository.DistributionListParams) ([]entity.DistributionCost, int64, error) {
	return s.distRepo.List(ctx, actor.SppgID, params)
}

func (s *DistributionService) Delete(ctx context.Context, actor Actor, id string) error {
	if _, err := s.Get(ctx, actor, id); err != nil {
		return err
	}
	return s.distRepo.Delete(ctx, actor.SppgID, id)
}

// MonthlySummary is the distribution spend of one month broken down by type.
type MonthlySummary struct {
	Year    int                `json:"year"`
	Month   int                `json:"month"`
	ByType  map[string]float64 `json:"by_type"`
	Total   float64            `json:"total"`
	Periode string             `json:"periode"`
}

func (s *DistributionService) Summary(ctx context.Context, actor Actor, year, month int) (*MonthlySummary, error) {
	period := entity.PlanPeriod{Month: month, Year: year}
	if !period.Valid() {
		return nil, apperr.Validation("month", "period out of range")
	}
	byType, err := s.distRepo.MonthlySummary(ctx, actor.SppgID, year, month)
	if err != nil {
		return nil, fmt.Errorf("distribution summary: %w", err)
	}
	summary := &MonthlySummary{Year: year, Month: month, ByType: byType, Periode: period.Label()}
	for _, v := range byType {
		summary.Total += v
	}
	return summary, nil
}
