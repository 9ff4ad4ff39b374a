package app

import (
	"learnify_backend/docs"
	"learnify_backend/internal/config"
	"learnify_backend/internal/middleware"
	"learnify_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 公共路由(无需登录)
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
		public.GET("/faqs", c.faq.ListFAQs)
	}

	// 需要授权的路由
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user))
	{
		// 个人资料
		authGroup.GET("/profile", c.user.GetProfile)
		authGroup.PUT("/profile", c.user.UpdateProfile)
		authGroup.PUT("/profile/password", c.user.ChangePassword)
		authGroup.POST("/profile/avatar", c.user.UploadAvatar)
		authGroup.GET("/profile/activity", c.user.RecentActivity)

		// 课程
		authGroup.GET("/courses", c.course.ListCourses)
		authGroup.GET("/courses/:id", c.course.GetCourse)

		// 测验
		authGroup.GET("/exams", c.exam.ListExams)
		authGroup.POST("/exams/:id/start", c.exam.StartExam)
		authGroup.GET("/attempts/:id", c.exam.GetAttempt)
		authGroup.POST("/attempts/:id/select", c.exam.SelectOption)
		authGroup.POST("/attempts/:id/navigate", c.exam.Navigate)
		authGroup.POST("/attempts/:id/review", c.exam.ToggleReview)
		authGroup.POST("/attempts/:id/submit", c.exam.SubmitAttempt)
		authGroup.POST("/attempts/:id/abandon", c.exam.AbandonAttempt)
		authGroup.GET("/results", c.exam.ListResults)

		// 岗位推荐
		authGroup.GET("/recommendation/roles", c.recommendation.GetRoleRecommendation)
	}
}
