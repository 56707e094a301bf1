package app

import (
	"course_catalog_backend/docs"
	"course_catalog_backend/internal/config"
	"course_catalog_backend/internal/middleware"
	"course_catalog_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())
	router.GET("/health", c.health.HealthCheck)

	courses := router.Group("/courses")
	{
		// Browsing is open to everyone.
		courses.GET("", c.course.ListCourses)
		courses.GET("/:courseId", c.course.GetCourse)

		// Mutations and upload credentials require a verified identity.
		authorized := courses.Group("")
		authorized.Use(middleware.AuthMiddleware(cfg))
		{
			authorized.POST("", c.course.CreateCourse)
			authorized.PUT("/:courseId", c.course.UpdateCourse)
			authorized.DELETE("/:courseId", c.course.DeleteCourse)
			authorized.POST("/upload-url", c.course.GetUploadURL)
		}
	}
}
