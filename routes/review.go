package routes

import (
	"reviewhub/controllers"

	"github.com/gin-gonic/gin"
)

// SetupReviewRoutes registers the abstract-review endpoints on an
// authenticated route group.
func SetupReviewRoutes(router *gin.RouterGroup) {
	rev := router.Group("/review")
	{
		rev.POST("/analyze", controllers.AnalyzeAbstract)
		rev.POST("/upload", controllers.UploadDocument)
		rev.GET("/history", controllers.GetReviewHistory)
		rev.GET("/:id/report", controllers.DownloadReport)
		rev.GET("/ai-status", controllers.AIStatus)
	}
}
