package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/footprint-app/footprint/internal/carbon"
	"github.com/footprint-app/footprint/internal/config"
	"github.com/footprint-app/footprint/internal/db"
	"github.com/footprint-app/footprint/internal/markdown"
	"github.com/footprint-app/footprint/internal/middleware"
	"github.com/footprint-app/footprint/internal/repository"
	"github.com/footprint-app/footprint/internal/service"
	"github.com/footprint-app/footprint/internal/storage"
	"github.com/jmoiron/sqlx"
)

type App struct {
	Cfg                   *config.Config
	DB                    *sqlx.DB
	AuthLimiter           *middleware.RateLimiter
	AuthService           *service.AuthService
	UserService           *service.UserService
	EmailService          *service.EmailService
	ActivityService       *service.ActivityService
	EmissionFactorService *service.EmissionFactorService
	EmissionService       *service.EmissionService
	TipService            *service.TipService
	GoalService           *service.GoalService
	AchievementService    *service.AchievementService
	ReportService         *service.ReportService
}

func New(cfg *config.Config) (*App, error) {
	// Initialize database
	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %v", err)
	}

	// Run database migrations
	err = db.RunMigrations(database.DB, cfg.DBDriver)
	if err != nil {
		_ = database.Close()
		return nil, fmt.Errorf("failed to run migrations: %v", err)
	}

	// Report archive (optional)
	var archive storage.Archive
	if cfg.ArchiveEnabled() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		s3Archive, err := storage.New(ctx, cfg)
		if err != nil {
			_ = database.Close()
			return nil, fmt.Errorf("failed to initialize storage: %v", err)
		}
		archive = s3Archive
	} else {
		slog.Info("report archive disabled (S3_BUCKET not set)")
	}

	return Wire(cfg, database, archive), nil
}

// Wire builds the service graph over an open, migrated database.
// archive may be nil.
func Wire(cfg *config.Config, database *sqlx.DB, archive storage.Archive) *App {
	// Repositories
	userRepository := repository.NewUserRepository(database)
	activityRepository := repository.NewActivityLogRepository(database)
	factorRepository := repository.NewEmissionFactorRepository(database)
	goalRepository := repository.NewGoalRepository(database)
	tipRepository := repository.NewTipRepository(database)
	reportRepository := repository.NewReportRepository(database)
	achievementRepository := repository.NewAchievementRepository(database)

	// Core
	aggregator := carbon.NewAggregator(activityRepository, factorSource(cfg, factorRepository))
	classifier := carbon.NewClassifier(activityRepository, carbon.DefaultTipRules())
	evaluator := carbon.NewGoalEvaluator(goalRepository, aggregator)

	// Services
	emailService := service.NewEmailService(
		cfg.ResendAPIKey,
		cfg.EmailFrom,
		cfg.AppURL,
		cfg.AppName,
		cfg.IsDevelopment(),
	)
	authService := service.NewAuthService(userRepository, emailService, cfg.JWTSecret, cfg.JWTExpiry)

	return &App{
		Cfg:                   cfg,
		DB:                    database,
		AuthLimiter:           middleware.NewRateLimiter(cfg.RateLimitAuthRPS, cfg.RateLimitAuthBurst),
		AuthService:           authService,
		UserService:           service.NewUserService(userRepository),
		EmailService:          emailService,
		ActivityService:       service.NewActivityService(activityRepository),
		EmissionFactorService: service.NewEmissionFactorService(factorRepository),
		EmissionService:       service.NewEmissionService(aggregator),
		TipService:            service.NewTipService(tipRepository, classifier),
		GoalService:           service.NewGoalService(goalRepository, achievementRepository, userRepository, evaluator, emailService),
		AchievementService:    service.NewAchievementService(achievementRepository),
		ReportService:         service.NewReportService(reportRepository, aggregator, archive, markdown.NewParser()),
	}
}

// factorSource picks the aggregation table. Persisted factors only take part
// when overrides are enabled; the classifier always uses its own table.
func factorSource(cfg *config.Config, store carbon.FactorStore) carbon.FactorSource {
	if cfg.EmissionFactorOverrides {
		return carbon.OverlayFactors{Base: carbon.DefaultEmissionFactors(), Store: store}
	}
	return carbon.StaticFactors{Base: carbon.DefaultEmissionFactors()}
}

func (a *App) Close() error {
	if a.AuthLimiter != nil {
		a.AuthLimiter.Stop()
	}
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}
