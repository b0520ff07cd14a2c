package payroll

import (
	"github.com/Mosab-97/Dalal-Payroll-App/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rdb *redis.Client) {
	payrolls := r.Group("/payrolls")
	{
		payrolls.GET("", handler.GetAll)
		payrolls.GET("/:id", handler.GetById)
		if rdb != nil {
			payrolls.POST("", middleware.Idempotency(rdb), handler.Create)
		} else {
			payrolls.POST("", handler.Create)
		}
		payrolls.PUT("/:id", handler.Update)
		payrolls.DELETE("/:id", handler.Delete)
	}
}
