package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/yasunstudio/bagizi-id-sub002/internal/sppg/entity"
	"github.com/yasunstudio/bagizi-id-sub002/internal/sppg/repository"
)

const dashboardCacheTTL = 5 * time.Minute

// DashboardService aggregates per-tenant plan and budget figures. Results are
// cached in redis and invalidated on every plan lifecycle commit.
type DashboardService struct {
	planRepo *repository.PlanRepository
	distRepo *repository.DistributionRepository
	rdb      *redis.Client
	logger   *zap.Logger
}

func NewDashboardService(planRepo *repository.PlanRepository, distRepo *repository.DistributionRepository, rdb *redis.Client, logger *zap.Logger) *DashboardService {
	return &DashboardService{planRepo: planRepo, distRepo: distRepo, rdb: rdb, logger: logger}
}

// Dashboard is the per-tenant overview payload.
type Dashboard struct {
	PlanCounts      map[entity.PlanStatus]int64 `json:"plan_counts"`
	TotalPlans      int64                       `json:"total_plans"`
	PendingApproval int64                       `json:"pending_approval"`

	TotalBudget     float64 `json:"total_budget"`
	AllocatedBudget float64 `json:"allocated_budget"`
	UsedBudget      float64 `json:"used_budget"`
	RemainingBudget float64 `json:"remaining_budget"`

	DistributionThisMonth float64 `json:"distribution_this_month"`

	GeneratedAt time.Time `json:"generated_at"`
}

// Overview returns the cached dashboard, computing and caching it on a miss.
func (s *DashboardService) Overview(ctx context.Context, actor Actor) (*Dashboard, error) {
	key := dashboardCacheKey(actor.SppgID)
	if s.rdb != nil {
		if raw, err := s.rdb.Get(ctx, key).Bytes(); err == nil {
			var cached Dashboard
			if err := json.Unmarshal(raw, &cached); err == nil {
				return &cached, nil
			}
		}
	}

	dashboard, err := s.build(ctx, actor)
	if err != nil {
		return nil, err
	}

	if s.rdb != nil {
		if raw, err := json.Marshal(dashboard); err == nil {
			if err := s.rdb.Set(ctx, key, raw, dashboardCacheTTL).Err(); err != nil {
				s.logger.Warn("dashboard cache write failed",
					zap.String("sppg_id", actor.SppgID), zap.Error(err))
			}
		}
	}
	return dashboard, nil
}

func (s *DashboardService) build(ctx context.Context, actor Actor) (*Dashboard, error) {
	counts, err := s.planRepo.CountByStatus(ctx, actor.SppgID)
	if err != nil {
		return nil, fmt.Errorf("count plans: %w", err)
	}

	total, allocated, used, err := s.planRepo.BudgetTotals(ctx, actor.SppgID)
	if err != nil {
		return nil, fmt.Errorf("sum budgets: %w", err)
	}

	now := time.Now()
	byType, err := s.distRepo.MonthlySummary(ctx, actor.SppgID, now.Year(), int(now.Month()))
	if err != nil {
		return nil, fmt.Errorf("distribution summary: %w", err)
	}
	var distMonth float64
	for _, v := range byType {
		distMonth += v
	}

	dashboard := &Dashboard{
		PlanCounts:            counts,
		TotalBudget:           total,
		AllocatedBudget:       allocated,
		UsedBudget:            used,
		RemainingBudget:       total - used,
		DistributionThisMonth: distMonth,
		GeneratedAt:           now,
	}
	if dashboard.RemainingBudget < 0 {
		dashboard.RemainingBudget = 0
	}
	for _, c := range counts {
		dashboard.TotalPlans += c
	}
	dashboard.PendingApproval = counts[entity.PlanStatusSubmitted] + counts[entity.PlanStatusUnderReview]
	return dashboard, nil
}

func dashboardCacheKey(sppgID string) string {
	return "dashboard:overview:" + sppgID
}
