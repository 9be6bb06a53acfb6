package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"perform_backend/internal/config"
	"perform_backend/internal/controller"
	"perform_backend/internal/repository"
	"perform_backend/internal/service"
	"perform_backend/pkg/database"
	"perform_backend/pkg/logger"
	"perform_backend/pkg/monitoring"
	"perform_backend/pkg/security"
	"perform_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	configCallbacks []func(*config.Config)
}

type repositories struct {
	user               *repository.UserRepository
	question           *repository.QuestionRepository
	answer             *repository.AnswerRepository
	employeeAssessment *repository.EmployeeAssessmentRepository
	matrix             *repository.AssessmentMatrixRepository
	team               *repository.TeamRepository
	analytics          *repository.AnalyticsRepository
}

type services struct {
	auth               *service.AuthService
	assessment         *service.AssessmentService
	navigation         *service.NavigationService
	employeeAssessment *service.EmployeeAssessmentService
	analytics          *service.AnalyticsService
	matrix             *service.MatrixService
	team               *service.TeamService
}

type controllers struct {
	auth               *controller.AuthController
	assessment         *controller.AssessmentController
	navigation         *controller.NavigationController
	employeeAssessment *controller.EmployeeAssessmentController
	analytics          *controller.AnalyticsController
	matrix             *controller.MatrixController
	team               *controller.TeamController
	health             *controller.HealthController
}

// RegisterConfigCallback registers a hook invoked after a hot config reload.
func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

// ApplyConfig swaps in a freshly reloaded config and notifies the callbacks.
func (a *App) ApplyConfig(cfg *config.Config) {
	a.Config = cfg
	for _, cb := range a.configCallbacks {
		cb(cfg)
	}
}

func (a *App) initRepositories(db *gorm.DB, rdb *redis.Client, cfg *config.Config) *repositories {
	return &repositories{
		user:               repository.NewUserRepository(db),
		question:           repository.NewQuestionRepository(db),
		answer:             repository.NewAnswerRepository(db),
		employeeAssessment: repository.NewEmployeeAssessmentRepository(db),
		matrix:             repository.NewAssessmentMatrixRepository(db),
		team:               repository.NewTeamRepository(db),
		analytics:          repository.NewAnalyticsRepository(db, rdb, cfg.Assessment.AnalyticsCacheTTL()),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config) *services {
	s := &services{}

	s.auth = service.NewAuthService(repos.user, cfg)
	s.assessment = service.NewAssessmentService(repos.matrix, repos.question, repos.answer, repos.employeeAssessment, cfg)
	s.navigation = service.NewNavigationService(repos.employeeAssessment, repos.matrix, repos.question, repos.answer, s.assessment)
	s.employeeAssessment = service.NewEmployeeAssessmentService(repos.employeeAssessment, repos.matrix)
	s.analytics = service.NewAnalyticsService(repos.employeeAssessment, repos.team, repos.answer, repos.matrix, repos.analytics)
	s.matrix = service.NewMatrixService(repos.matrix)
	s.team = service.NewTeamService(repos.team)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:               controller.NewAuthController(s.auth),
		assessment:         controller.NewAssessmentController(s.assessment),
		navigation:         controller.NewNavigationController(s.navigation),
		employeeAssessment: controller.NewEmployeeAssessmentController(s.employeeAssessment),
		analytics:          controller.NewAnalyticsController(s.analytics),
		matrix:             controller.NewMatrixController(s.matrix),
		team:               controller.NewTeamController(s.team),
		health:             controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 10000
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db, rdb, cfg)
	services := app.initServices(repos, cfg)
	controllers := app.initControllers(services, db)

	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("perform-backend", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, repos, cfg)

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
