package assignment

import (
	"go-payroll/internal/middleware"
	"go-payroll/internal/rbac"

	"github.com/casbin/casbin/v2"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, enforcer *casbin.Enforcer) {
	assignments := r.Group("/assignments")
	assignments.Use(middleware.AuthMiddleware())
	{
		assignments.GET("/employee/:employeeId", rbac.Authorize(enforcer, "assignment", "read"), handler.GetByEmployee)
		assignments.POST("", rbac.Authorize(enforcer, "assignment", "write"), handler.Create)
		assignments.POST("/:id/close", rbac.Authorize(enforcer, "assignment", "write"), handler.Close)
	}
}
