package bootstrap

import (
	"context"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	appControllers "github.com/yigit/schooladmin/internal/app/controllers"
	"github.com/yigit/schooladmin/internal/app/deletion"
	appMetrics "github.com/yigit/schooladmin/internal/app/metrics"
	appMigrations "github.com/yigit/schooladmin/internal/app/migrations"
	appRepos "github.com/yigit/schooladmin/internal/app/repositories"
	appRoutes "github.com/yigit/schooladmin/internal/app/routes"
	appServices "github.com/yigit/schooladmin/internal/app/services"
	"github.com/yigit/schooladmin/internal/config"
	"github.com/yigit/schooladmin/internal/db"
	appMiddleware "github.com/yigit/schooladmin/internal/middleware"
	pkgAuth "github.com/yigit/schooladmin/internal/pkg/auth"
	"github.com/yigit/schooladmin/internal/pkg/logger"
	"github.com/yigit/schooladmin/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	StudentService     appServices.StudentService
	StaffService       appServices.StaffService
	InstitutionService appServices.InstitutionService
	GroupService       appServices.GroupService
	CatalogService     appServices.CatalogService
	AuthService        *appServices.AuthService
	Dispatcher         *deletion.Dispatcher
	Controllers        appRoutes.Controllers
	AuthMiddleware     *appMiddleware.AuthMiddleware
	Repos              *appRepos.Repositories
	JWTService         *pkgAuth.JWTService
	Metrics            *appMetrics.Metrics
	Registry           *prometheus.Registry
	Logger             zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := config.GetEnv("CONFIG_PATH", "configs/config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.ParseLevel(cfg.Logging.Level)
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	lgr := logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection and runs migrations.
func SetupDatabase(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	dbPool, err := db.NewPool(ctx, cfg, lgr)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool, lgr)
	if err := migrator.MigrateEmbedded(ctx); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		dbPool.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.Registry = prometheus.NewRegistry()
	deps.Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	deps.Metrics = appMetrics.New(deps.Registry)

	deps.Dispatcher = deletion.NewDispatcher(
		db.NewPostgresStore(dbPool),
		deletion.DefaultStrategies(),
		deps.Metrics,
		lgr,
	)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: cfg.JWT.Expiration,
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(deps.Repos.UserRepository, deps.JWTService, lgr)
	deps.StudentService = appServices.NewStudentService(deps.Repos.StudentRepository, deps.Dispatcher)
	deps.StaffService = appServices.NewStaffService(deps.Repos.StaffRepository, deps.Dispatcher)
	deps.InstitutionService = appServices.NewInstitutionService(deps.Repos.InstitutionRepository, deps.Dispatcher)
	deps.GroupService = appServices.NewGroupService(deps.Repos.GroupRepository, deps.Repos.StudentRepository, deps.Dispatcher)
	deps.CatalogService = appServices.NewCatalogService(deps.Repos.CatalogRepository)

	// Create the default admin after the services exist, so the password goes
	// through the same hashing as every other account
	if err := seed.CreateDefaultData(context.Background(), deps.AuthService, cfg.Seed, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.Controllers = appRoutes.Controllers{
		Auth:        appControllers.NewAuthController(deps.AuthService, lgr),
		Student:     appControllers.NewStudentController(deps.StudentService),
		Staff:       appControllers.NewStaffController(deps.StaffService, deps.GroupService),
		Institution: appControllers.NewInstitutionController(deps.InstitutionService),
		Group:       appControllers.NewGroupController(deps.GroupService),
		Catalog:     appControllers.NewCatalogController(deps.CatalogService),
		Health:      appControllers.NewHealthController(dbPool),
	}

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(gin.Recovery(), appMiddleware.RequestLogger(lgr))

	metricsRoute := appRoutes.MetricsRoute{Path: cfg.Metrics.Path}
	if cfg.Metrics.Enabled {
		metricsRoute.Handler = promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{Registry: deps.Registry})
		lgr.Info().Str("path", cfg.Metrics.Path).Msg("Metrics endpoint enabled")
	}

	appRoutes.SetupRouter(router, deps.Controllers, deps.AuthMiddleware, metricsRoute)

	return router
}
