package attendance

import (
	"go-payroll/internal/middleware"
	"go-payroll/internal/rbac"

	"github.com/casbin/casbin/v2"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, enforcer *casbin.Enforcer) {
	attendances := r.Group("/attendance")
	attendances.Use(middleware.AuthMiddleware())
	{
		attendances.POST("/check-in", rbac.Authorize(enforcer, "attendance", "checkin"), handler.CheckIn)
		attendances.POST("/check-out", rbac.Authorize(enforcer, "attendance", "checkin"), handler.CheckOut)
		attendances.GET("/me", rbac.Authorize(enforcer, "attendance", "read-own"), handler.GetMine)
		attendances.GET("/pending", rbac.Authorize(enforcer, "attendance", "read"), handler.GetPending)
		attendances.POST("/:id/review", rbac.Authorize(enforcer, "attendance", "approve"), handler.Review)
	}
}
