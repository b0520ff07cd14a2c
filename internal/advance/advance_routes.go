package advance

import (
	"github.com/Mosab-97/Dalal-Payroll-App/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rdb *redis.Client) {
	advances := r.Group("/advances")
	{
		advances.GET("", handler.GetAll)
		advances.GET("/:id", handler.GetById)
		if rdb != nil {
			advances.POST("", middleware.Idempotency(rdb), handler.Create)
		} else {
			advances.POST("", handler.Create)
		}
		advances.PUT("/:id", handler.Update)
		advances.DELETE("/:id", handler.Delete)
	}
}
