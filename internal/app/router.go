package app

import (
	"perform_backend/internal/config"
	"perform_backend/internal/middleware"
	"perform_backend/internal/model"
	"perform_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	router.GET("/metrics", monitoring.PrometheusHandler())

	a.registerPublicRoutes(router, c)

	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user))
	{
		a.registerEmployeeRoutes(authGroup, c)
		a.registerHRRoutes(authGroup, c)
	}
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
	}
}

// Employee-facing routes: answering, navigation, own assessment state.
func (a *App) registerEmployeeRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.GET("/profile", c.auth.GetProfile)

	rg.GET("/employee-assessments/:id", c.employeeAssessment.Get)
	rg.POST("/employee-assessments/:id/confirm", c.employeeAssessment.Confirm)
	rg.GET("/employee-assessments/:id/next", c.navigation.GetNext)
	rg.GET("/employee-assessments/:id/questions/:questionId", c.navigation.GetQuestionForReview)
	rg.POST("/employee-assessments/:id/answers", c.assessment.SubmitAnswer)
	rg.POST("/employee-assessments/:id/answers/next", c.navigation.SaveAnswerAndGetNext)
}

// HR-facing routes: matrix, question, enrollment and analytics management.
func (a *App) registerHRRoutes(rg *gin.RouterGroup, c *controllers) {
	hr := rg.Group("/")
	hr.Use(middleware.RoleMiddleware(model.HR))
	{
		hr.POST("/matrices", c.matrix.Create)
		hr.GET("/matrices", c.matrix.ListByCycle)
		hr.GET("/matrices/:id", c.matrix.Get)
		hr.PUT("/matrices/:id", c.matrix.Update)
		hr.DELETE("/matrices/:id", c.matrix.Delete)

		hr.POST("/questions", c.assessment.CreateQuestion)
		hr.PUT("/questions/:id", c.assessment.UpdateQuestion)
		hr.DELETE("/questions/:id", c.assessment.DeleteQuestion)
		hr.GET("/matrices/:id/questions", c.assessment.ListQuestions)
		hr.POST("/matrices/:id/potential-score", c.assessment.ComputePotentialScore)

		hr.POST("/employee-assessments", c.employeeAssessment.Enroll)
		hr.GET("/matrices/:id/employee-assessments", c.employeeAssessment.ListByMatrix)

		hr.POST("/teams", c.team.Create)
		hr.GET("/teams", c.team.ListByCompany)
		hr.GET("/teams/:id", c.team.Get)
		hr.PUT("/teams/:id", c.team.Update)
		hr.DELETE("/teams/:id", c.team.Delete)

		hr.POST("/matrices/:id/analytics/recompute", c.analytics.Recompute)
		hr.GET("/matrices/:id/analytics", c.analytics.GetOverview)
		hr.GET("/matrices/:id/analytics/teams/:teamId", c.analytics.GetTeam)
		hr.GET("/analytics", c.analytics.ListCycle)
	}
}
