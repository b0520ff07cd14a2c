package activity

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	logs := r.Group("/activity")
	{
		logs.GET("", handler.GetRecent)
	}
}
