package attendance

import (
	"github.com/SankalpGoel/HRMS-Lite/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	records := r.Group("/attendance")
	{
		records.GET("", h.GetAll)
		records.GET("/employee/:id", h.GetByEmployee)
		records.POST("",
			middleware.RateLimitByIP(5, 10),
			h.Mark,
		)
	}
}
