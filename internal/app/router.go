package app

import (
	"quiz_hub_backend/docs"
	"quiz_hub_backend/internal/config"
	"quiz_hub_backend/internal/middleware"
	"quiz_hub_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 1. 公共路由(无需登录)
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)

		public.POST("/users", c.auth.Register)
		public.POST("/token", c.auth.Login)

		public.POST("/quizzes", c.quiz.Create)
		public.GET("/quizzes", c.quiz.List)
		public.GET("/quizzes/random-by-category", c.quiz.RandomByCategory)
		public.GET("/quizzes/:id", c.quiz.Get)
		public.DELETE("/quizzes/:id", c.quiz.Delete)
		public.GET("/quiz-categories", c.quiz.Categories)
	}

	// 2. 需要授权的路由
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		authGroup.GET("/users/me", c.auth.Me)
		authGroup.DELETE("/users/me", c.auth.DeleteMe)

		authGroup.POST("/quiz-results", c.result.Record)
		authGroup.GET("/quiz-results", c.result.List)
	}
}
