package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/certichain/certichain/docs" // Import generated swagger docs
	appControllers "github.com/certichain/certichain/internal/app/controllers"
	appMigrations "github.com/certichain/certichain/internal/app/migrations"
	appRepos "github.com/certichain/certichain/internal/app/repositories"
	appRoutes "github.com/certichain/certichain/internal/app/routes"
	appServices "github.com/certichain/certichain/internal/app/services"
	"github.com/certichain/certichain/internal/chain"
	"github.com/certichain/certichain/internal/config"
	"github.com/certichain/certichain/internal/db"
	"github.com/certichain/certichain/internal/pkg/filestorage"
	"github.com/certichain/certichain/internal/pkg/logger"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Store              appRepos.Store
	Registry           chain.Registry
	FileStorage        *filestorage.LocalStorage
	StudentService     *appServices.StudentService
	CertificateService *appServices.CertificateService
	VerifyService      *appServices.VerifyService
	AdminController    *appControllers.AdminController
	StudentController  *appControllers.StudentController
	VerifierController *appControllers.VerifierController
	Logger             zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
// A .env file in the working directory is applied before the yaml config so
// env overrides work in local development.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Warn().Err(err).Msg("Could not load .env file")
	}

	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection and runs migrations. An
// unreachable database is not fatal: the service keeps running against the
// JSON mirror alone, so a nil pool with a nil error is a valid outcome.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Warn().Err(err).Msg("Database unavailable, continuing with file mirror only")
		return nil, nil
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Warn().Err(err).Msg("Database ping failed, continuing with file mirror only")
		dbPool.Close()
		return nil, nil
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")
	return dbPool, nil
}

// BuildDependencies initializes stores, the chain registry, services and
// controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.PublicDir)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	fileStore, err := appRepos.NewFileStore(cfg.Backup.FilePath)
	if err != nil {
		lgr.Error().Err(err).Str("path", cfg.Backup.FilePath).Msg("Failed to open backup file store")
		return nil, fmt.Errorf("failed to open backup file store: %w", err)
	}

	var primary appRepos.Store
	if dbPool != nil {
		primary = appRepos.NewPostgresStore(dbPool)
	}
	deps.Store = appRepos.NewDualStore(primary, fileStore)

	deps.Registry, err = chain.NewEthereumRegistry(chain.EthereumConfig{
		RPCURL:          cfg.Chain.RPCURL,
		ContractAddress: cfg.Chain.ContractAddress,
		PrivateKey:      cfg.Chain.PrivateKey,
		ChainID:         cfg.Chain.ChainID,
		ConfirmTimeout:  cfg.ChainConfirmTimeout(),
	})
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize registry contract client")
		return nil, fmt.Errorf("failed to initialize registry contract client: %w", err)
	}

	// Initialize services
	deps.StudentService = appServices.NewStudentService(deps.Store)
	deps.CertificateService = appServices.NewCertificateService(deps.Store, deps.Registry, deps.FileStorage)
	deps.VerifyService = appServices.NewVerifyService(deps.Store, deps.Registry)

	// Initialize controllers
	deps.AdminController = appControllers.NewAdminController(deps.StudentService, deps.CertificateService, deps.FileStorage)
	deps.StudentController = appControllers.NewStudentController(deps.StudentService)
	deps.VerifierController = appControllers.NewVerifierController(deps.VerifyService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.Default()

	// Setup Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json"), ginSwagger.DefaultModelsExpandDepth(1)))

	// Setup API routes using the dependencies
	appRoutes.SetupRouter(router,
		deps.AdminController,
		deps.StudentController,
		deps.VerifierController,
	)

	return router
}
