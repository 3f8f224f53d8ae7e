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

	_ "github.com/nsounjou2-stack/inscription-concours/docs" // Import generated swagger docs
	appControllers "github.com/nsounjou2-stack/inscription-concours/internal/app/controllers"
	appMigrations "github.com/nsounjou2-stack/inscription-concours/internal/app/migrations"
	appRepos "github.com/nsounjou2-stack/inscription-concours/internal/app/repositories"
	appRoutes "github.com/nsounjou2-stack/inscription-concours/internal/app/routes"
	appServices "github.com/nsounjou2-stack/inscription-concours/internal/app/services"
	"github.com/nsounjou2-stack/inscription-concours/internal/config"
	"github.com/nsounjou2-stack/inscription-concours/internal/db"
	appMiddleware "github.com/nsounjou2-stack/inscription-concours/internal/middleware"
	pkgAuth "github.com/nsounjou2-stack/inscription-concours/internal/pkg/auth"
	"github.com/nsounjou2-stack/inscription-concours/internal/pkg/filestorage"
	"github.com/nsounjou2-stack/inscription-concours/internal/pkg/helpers"
	"github.com/nsounjou2-stack/inscription-concours/internal/pkg/logger"
	"github.com/nsounjou2-stack/inscription-concours/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	RegistrationService    *appServices.RegistrationService
	AuthService            *appServices.AuthService
	SettingsService        *appServices.SettingsService
	RegistrationController *appControllers.RegistrationController
	AuthController         *appControllers.AuthController
	SettingsController     *appControllers.SettingsController
	UploadController       *appControllers.UploadController
	AuthMiddleware         *appMiddleware.AuthMiddleware
	Repos                  *appRepos.Repositories
	JWTService             *pkgAuth.JWTService
	Logger                 zerolog.Logger
	FileStorage            *filestorage.LocalStorage
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	// A local .env overrides nothing that is already exported
	if err := godotenv.Load(); err == nil {
		logger.Debug().Msg("Loaded environment from .env file")
	}

	configPath := config.GetEnv("CONFIG_PATH", filepath.Join("configs", "config.yaml"))
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

	lgr := log.Logger // Get the configured global logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection and runs migrations.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
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

	// Create default data (after migrations)
	if err := seed.CreateDefaultData(context.Background(), dbPool, cfg, lgr); err != nil {
		// Log the error but don't fail the startup
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	// File storage serves uploads back through the static /uploads mount
	var err error
	baseURL := "http://localhost:" + cfg.Server.Port + cfg.Server.BaseURL
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.StoragePath, baseURL)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 1*time.Hour),
		RefreshTokenExp: helpers.ParseDuration(cfg.JWT.RefreshTokenExpiration, 720*time.Hour),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	deps.RegistrationService = appServices.NewRegistrationService(
		deps.Repos.RegistrationRepository,
		deps.Repos.SettingsRepository,
		cfg.Contest.RegistrationFee,
		lgr,
	)
	deps.AuthService = appServices.NewAuthService(
		deps.Repos.AdminRepository,
		deps.Repos.TokenRepository,
		deps.JWTService,
		lgr,
	)
	deps.SettingsService = appServices.NewSettingsService(
		deps.Repos.SettingsRepository,
		cfg.Contest.RegistrationFee,
		cfg.Contest.Currency,
		cfg.Contest.Name,
		lgr,
	)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.RegistrationController = appControllers.NewRegistrationController(deps.RegistrationService)
	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.SettingsController = appControllers.NewSettingsController(deps.SettingsService)
	deps.UploadController = appControllers.NewUploadController(deps.FileStorage)

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
	router.Use(appMiddleware.CORS())

	// Setup Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json"), ginSwagger.DefaultModelsExpandDepth(1)))

	// Setup API routes using the dependencies
	appRoutes.SetupRouter(router,
		deps.RegistrationController,
		deps.AuthController,
		deps.SettingsController,
		deps.UploadController,
		deps.AuthMiddleware,
	)

	return router
}
