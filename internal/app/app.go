package app

import (
	"context"
	"log"
	"net/http"
	"online_course_backend/internal/config"
	"online_course_backend/internal/controller"
	"online_course_backend/internal/repository"
	"online_course_backend/internal/service"
	"online_course_backend/pkg/database"
	"online_course_backend/pkg/logger"
	"online_course_backend/pkg/monitoring"
	"online_course_backend/pkg/security"
	"online_course_backend/pkg/tracing"
	"os"
	"os/signal"
	"syscall"
	"time"

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
	origins         *security.OriginSet
	configCallbacks []func(*config.Config)
}

type repositories struct {
	user        *repository.UserRepository
	course      *repository.CourseRepository
	enrollment  *repository.EnrollmentRepository
	rating      *repository.RatingRepository
	testResult  *repository.TestResultRepository
	certificate *repository.CertificateRepository
}

type services struct {
	auth        *service.AuthService
	user        *service.UserService
	course      *service.CourseService
	enrollment  *service.EnrollmentService
	rating      *service.RatingService
	testResult  *service.TestResultService
	certificate *service.CertificateService
}

type controllers struct {
	auth        *controller.AuthController
	user        *controller.UserController
	course      *controller.CourseController
	enrollment  *controller.EnrollmentController
	rating      *controller.RatingController
	testResult  *controller.TestResultController
	certificate *controller.CertificateController
	health      *controller.HealthController
}

// RegisterConfigCallback adds a hook run on every config reload.
func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

// ApplyConfig runs the registered reload hooks against a freshly loaded
// config.
func (a *App) ApplyConfig(cfg *config.Config) {
	for _, callback := range a.configCallbacks {
		callback(cfg)
	}
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:        repository.NewUserRepository(db),
		course:      repository.NewCourseRepository(db),
		enrollment:  repository.NewEnrollmentRepository(db),
		rating:      repository.NewRatingRepository(db),
		testResult:  repository.NewTestResultRepository(db),
		certificate: repository.NewCertificateRepository(db),
	}
}

func (a *App) initServices(repos *repositories, rdb *redis.Client) *services {
	s := &services{}

	cache := service.NewCourseCache(rdb)

	s.auth = service.NewAuthService(repos.user)
	s.user = service.NewUserService(repos.user)
	s.course = service.NewCourseService(repos.course, repos.enrollment, repos.user, cache)
	s.enrollment = service.NewEnrollmentService(repos.enrollment, repos.user, repos.course, s.course, cache)
	s.rating = service.NewRatingService(repos.rating, repos.course, repos.enrollment, repos.user, cache)
	s.testResult = service.NewTestResultService(repos.testResult)
	s.certificate = service.NewCertificateService(repos.certificate, repos.enrollment, repos.course)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:        controller.NewAuthController(s.auth),
		user:        controller.NewUserController(s.user),
		course:      controller.NewCourseController(s.course),
		enrollment:  controller.NewEnrollmentController(s.enrollment),
		rating:      controller.NewRatingController(s.rating),
		testResult:  controller.NewTestResultController(s.testResult),
		certificate: controller.NewCertificateController(s.certificate),
		health:      controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	a.origins = security.NewOriginSet(cfg.CORS.AllowedOrigins)

	router.Use(security.CORS(a.origins))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(
		cfg.RateLimit.MaxRequests,
		time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute,
	))

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
		log.Fatalf("Failed to initialize database: %v", err)
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
		log.Fatalf("Failed to initialize redis: %v", err)
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, rdb)
	controllers := app.initControllers(services, db)

	monitoring.Init()

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("online-course-backend", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers)

	// 配置热更新回调：日志级别与CORS白名单
	app.RegisterConfigCallback(func(newCfg *config.Config) {
		logger.SetLevelFromMode(newCfg.Server.Mode)
		app.origins.Replace(newCfg.CORS.AllowedOrigins)
	})

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

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
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
