package employee

import (
	"github.com/Mosab-97/Dalal-Payroll-App/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rdb *redis.Client) {
	employees := r.Group("/employees")
	{
		employees.GET("", handler.GetAll)
		employees.GET("/:id", handler.GetById)
		if rdb != nil {
			employees.POST("", middleware.Idempotency(rdb), handler.Create)
		} else {
			employees.POST("", handler.Create)
		}
		employees.PUT("/:id", handler.Update)
		employees.DELETE("/:id", handler.Delete)
	}
}
