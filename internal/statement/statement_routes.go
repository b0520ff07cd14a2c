package statement

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	statements := r.Group("/statements")
	{
		statements.GET("", handler.GetAll)
		statements.GET("/summary", handler.GetSummary)
		statements.GET("/:projectId", handler.GetByProject)
	}
}
