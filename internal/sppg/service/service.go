package service

import (
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/yasunstudio/bagizi-id-sub002/internal/config"
	"github.com/yasunstudio/bagizi-id-sub002/internal/sppg/repository"
)

// Services bundles every service for wiring.
type Services struct {
	Auth         *AuthService
	Program      *ProgramService
	FoodCategory *FoodCategoryService
	Inventory    *InventoryService
	Menu         *MenuService
	MenuPlan     *MenuPlanService
	Plan         *PlanService
	Distribution *DistributionService
	Dashboard    *DashboardService
	Export       *ExportService
}

func NewServices(repos *repository.Repositories, rdb *redis.Client, cfg *config.Config, logger *zap.Logger) *Services {
	var minioClient *minio.Client
	if cfg.MinIO.Endpoint != "" {
		var err error
		minioClient, err = minio.New(cfg.MinIO.Endpoint, &minio.Options{
			Creds:  credentials.NewStaticV4(cfg.MinIO.AccessKey, cfg.MinIO.SecretKey, ""),
			Secure: cfg.MinIO.UseSSL,
		})
		if err != nil {
			logger.Warn("object storage unavailable, exports disabled", zap.Error(err))
			minioClient = nil
		}
	}

	return &Services{
		Auth:         NewAuthService(repos.User, rdb, cfg),
		Program:      NewProgramService(repos.Program),
		FoodCategory: NewFoodCategoryService(repos.FoodCategory),
		Inventory:    NewInventoryService(repos.Inventory, repos.FoodCategory),
		Menu:         NewMenuService(repos.Menu, repos.Inventory),
		MenuPlan:     NewMenuPlanService(repos.MenuPlan, repos.Menu),
		Plan:         NewPlanService(repos.Plan, repos.MenuPlan, repos.Program, rdb, logger),
		Distribution: NewDistributionService(repos.Distribution, repos.Plan),
		Dashboard:    NewDashboardService(repos.Plan, repos.Distribution, rdb, logger),
		Export:       NewExportService(repos.Plan, minioClient, cfg.MinIO.Bucket),
	}
}
