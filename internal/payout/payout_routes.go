package payout

import (
	"go-payroll/internal/middleware"
	"go-payroll/internal/rbac"

	"github.com/casbin/casbin/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, enforcer *casbin.Enforcer, rdb *redis.Client) {
	payouts := r.Group("/payouts")
	payouts.Use(middleware.AuthMiddleware())
	payouts.Use(middleware.RateLimitByUser(rate.Limit(5), 10))
	{
		payouts.POST("/generate",
			rbac.Authorize(enforcer, "payout", "generate"),
			middleware.Idempotency(rdb),
			handler.Generate,
		)
		payouts.GET("/history", rbac.Authorize(enforcer, "payout", "read-own"), handler.GetHistory)
		payouts.GET("/:id/slip", rbac.Authorize(enforcer, "payout", "read-own"), handler.GetSlip)
		payouts.POST("/:id/mark-paid", rbac.Authorize(enforcer, "payout", "pay"), handler.MarkAsPaid)
	}
}
