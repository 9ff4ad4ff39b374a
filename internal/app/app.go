package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"learnify_backend/internal/config"
	"learnify_backend/internal/controller"
	"learnify_backend/internal/repository"
	"learnify_backend/internal/service"
	"learnify_backend/pkg/database"
	"learnify_backend/pkg/logger"
	"learnify_backend/pkg/monitoring"
	"learnify_backend/pkg/security"
	"learnify_backend/pkg/tracing"

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
	user        *repository.UserRepository
	course      *repository.CourseRepository
	exam        *repository.ExamRepository
	attempt     *repository.AttemptRepository
	learningLog *repository.LearningLogRepository
	faq         *repository.FAQRepository
}

type services struct {
	auth           *service.AuthService
	storage        *service.StorageService
	user           *service.UserService
	course         *service.CourseService
	exam           *service.ExamService
	recommendation *service.RecommendationService
	faq            *service.FAQService
}

type controllers struct {
	auth           *controller.AuthController
	user           *controller.UserController
	course         *controller.CourseController
	exam           *controller.ExamController
	recommendation *controller.RecommendationController
	faq            *controller.FAQController
	health         *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

// ApplyConfig 热加载回调入口，由配置监听器触发。
func (a *App) ApplyConfig(cfg *config.Config) {
	a.Config = cfg
	for _, callback := range a.configCallbacks {
		callback(cfg)
	}
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:        repository.NewUserRepository(db),
		course:      repository.NewCourseRepository(db),
		exam:        repository.NewExamRepository(db),
		attempt:     repository.NewAttemptRepository(db),
		learningLog: repository.NewLearningLogRepository(db),
		faq:         repository.NewFAQRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	s.storage = service.NewStorageService(cfg)
	s.auth = service.NewAuthService(repos.user, cfg)
	s.user = service.NewUserService(repos.user, repos.learningLog, s.storage)
	s.course = service.NewCourseService(repos.course, rdb)
	s.exam = service.NewExamService(repos.exam, repos.attempt, repos.learningLog, rdb, cfg)
	s.recommendation = service.NewRecommendationService(repos.attempt)
	s.faq = service.NewFAQService(repos.faq)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB, rdb *redis.Client) *controllers {
	return &controllers{
		auth:           controller.NewAuthController(s.auth),
		user:           controller.NewUserController(s.auth, s.user),
		course:         controller.NewCourseController(s.course),
		exam:           controller.NewExamController(s.exam),
		recommendation: controller.NewRecommendationController(s.recommendation),
		faq:            controller.NewFAQController(s.faq),
		health:         controller.NewHealthController(db, rdb),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(cfg.RateLimit.MaxRequests, time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute))

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg.Server.Mode)
	logger.Log.Info("Logger initialized successfully")

	gin.SetMode(func() string {
		if cfg.Server.Mode == "release" {
			return gin.ReleaseMode
		}
		return gin.DebugMode
	}())

	db, err := database.InitDB(&cfg.Database, cfg.Server.Mode)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		// Redis 只承担缓存，连不上时降级为直连数据库
		logger.Log.Warn("Redis unavailable, caching disabled", zap.Error(err))
		rdb = nil
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, rdb)
	controllers := app.initControllers(services, db, rdb)

	monitoring.Init()

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("learnify-backend", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, repos, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

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

	logger.Log.Sync()
	log.Println("Server exiting")
}
