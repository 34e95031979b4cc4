package app

import (
	"quizz_backend/internal/middleware"
	"quizz_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, s *services) {
	router.GET("/metrics", monitoring.PrometheusHandler())

	// 公共路由(无需登录)
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/token", c.auth.Token)
	}

	// 需要授权的路由
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(s.auth))
	{
		authGroup.GET("/users/me", c.auth.Me)

		authGroup.GET("/quizzes", c.quizz.List)
		authGroup.GET("/quizzes/:id", c.quizz.Get)
		authGroup.POST("/quizzes", c.quizz.Create)
		authGroup.POST("/quizzes/:id/questions", c.quizz.AddQuestion)
		authGroup.POST("/questions/:id/answers", c.quizz.AddAnswers)

		authGroup.POST("/sessions", c.session.Start)
		authGroup.GET("/sessions/:id", c.session.Get)
		authGroup.POST("/sessions/:id/answers", c.session.RecordAnswer)
	}
}
