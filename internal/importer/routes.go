package importer

import (
	"github.com/Mosab-97/Dalal-Payroll-App/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rdb *redis.Client) {
	imports := r.Group("/imports")
	{
		if rdb != nil {
			imports.POST("/:entity", middleware.Idempotency(rdb), handler.ImportFile)
			imports.POST("/:entity/text", middleware.Idempotency(rdb), handler.ImportText)
		} else {
			imports.POST("/:entity", handler.ImportFile)
			imports.POST("/:entity/text", handler.ImportText)
		}
	}
}
