package site

import (
	"go-payroll/internal/middleware"
	"go-payroll/internal/rbac"

	"github.com/casbin/casbin/v2"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, enforcer *casbin.Enforcer) {
	sites := r.Group("/sites")
	sites.Use(middleware.AuthMiddleware())
	{
		sites.GET("", rbac.Authorize(enforcer, "site", "read"), handler.GetAll)
		sites.GET("/:id", rbac.Authorize(enforcer, "site", "read"), handler.GetById)
		sites.POST("", rbac.Authorize(enforcer, "site", "write"), handler.Create)
		sites.PUT("/:id", rbac.Authorize(enforcer, "site", "write"), handler.Update)
		sites.DELETE("/:id", rbac.Authorize(enforcer, "site", "write"), handler.Delete)
	}
}
