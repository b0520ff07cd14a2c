package project

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	projects := r.Group("/projects")
	{
		projects.GET("", handler.GetAll)
		projects.GET("/:id", handler.GetById)
		projects.POST("", handler.Create)
		projects.PUT("/:id", handler.Update)
		projects.DELETE("/:id", handler.Delete)
	}
}
