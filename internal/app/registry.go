package app

import (
	"database/sql"

	"go-payroll/internal/assignment"
	"go-payroll/internal/attendance"
	"go-payroll/internal/auth"
	"go-payroll/internal/employee"
	"go-payroll/internal/messaging/kafka"
	"go-payroll/internal/middleware"
	"go-payroll/internal/payout"
	"go-payroll/internal/rbac"
	"go-payroll/internal/site"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	router.Use(middleware.RequestID())

	// --- Repositories ---
	assignmentRepo := assignment.NewRepository(gormDB)
	attendanceRepo := attendance.NewRepository(gormDB)
	authRepo := auth.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)
	payoutRepo := payout.NewRepository(db)
	siteRepo := site.NewRepository(gormDB)

	// --- RBAC Core ---
	enforcer, err := rbac.NewEnforcer()
	if err != nil {
		return err
	}

	// --- Services ---
	assignmentService := assignment.NewService(assignmentRepo)
	attendanceService := attendance.NewService(attendanceRepo)
	authService := auth.NewService(authRepo)
	employeeService := employee.NewService(employeeRepo)
	payoutCalculator := payout.NewCalculator(attendanceRepo, assignmentRepo)
	payoutService := payout.NewService(db, payoutRepo, payoutCalculator, outboxRepo)
	siteService := site.NewService(siteRepo)

	// --- Handlers ---
	assignmentHandler := assignment.NewHandler(assignmentService)
	attendanceHandler := attendance.NewHandler(attendanceService)
	authHandler := auth.NewHandler(authService)
	employeeHandler := employee.NewHandler(employeeService)
	payoutHandler := payout.NewHandler(payoutService)
	siteHandler := site.NewHandler(siteService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	api.Use(middleware.RateLimitByIP(rate.Limit(20), 40))
	{
		auth.RegisterRoutes(api, authHandler)
		assignment.RegisterRoutes(api, assignmentHandler, enforcer)
		attendance.RegisterRoutes(api, attendanceHandler, enforcer)
		employee.RegisterRoutes(api, employeeHandler, enforcer)
		payout.RegisterRoutes(api, payoutHandler, enforcer, rdb)
		site.RegisterRoutes(api, siteHandler, enforcer)
	}

	return nil
}
