package expense

import (
	"github.com/Mosab-97/Dalal-Payroll-App/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rdb *redis.Client) {
	expenses := r.Group("/expenses")
	{
		expenses.GET("", handler.GetAll)
		expenses.GET("/:id", handler.GetById)
		if rdb != nil {
			expenses.POST("", middleware.Idempotency(rdb), handler.Create)
		} else {
			expenses.POST("", handler.Create)
		}
		expenses.PUT("/:id", handler.Update)
		expenses.DELETE("/:id", handler.Delete)
	}
}
