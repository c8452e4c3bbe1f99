package handlers

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rishi-1234-cpu/ExamPortalApi/internal/config"
)

type HandlerManager struct {
	examHandler  *ExamHandler
	adminHandler *AdminHandler
}

func NewHandlerManager(examHandler *ExamHandler, adminHandler *AdminHandler) *HandlerManager {
	return &HandlerManager{
		examHandler:  examHandler,
		adminHandler: adminHandler,
	}
}

// SetupRoutes sets up all API routes
func (hm *HandlerManager) SetupRoutes(router *gin.Engine, cfg *config.Config) {
	router.Use(corsMiddleware(cfg))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "exam-portal-api",
		})
	})

	api := router.Group("/api")
	{
		exams := api.Group("/exams")
		{
			exams.GET("/:code", hm.examHandler.GetExam)
			exams.POST("/:code/submit", hm.examHandler.SubmitExam)
		}

		admin := api.Group("/admin")
		{
			admin.GET("/exams/:code/attempts", hm.adminHandler.ListAttempts)
			admin.GET("/exams/:code/attempts/export", hm.adminHandler.ExportAttempts)
		}
	}
}

func corsMiddleware(cfg *config.Config) gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	return cors.New(corsConfig)
}
