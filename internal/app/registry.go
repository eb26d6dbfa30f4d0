package app

import (
	"database/sql"
	"path/filepath"

	"go-hrms/internal/attendance"
	"go-hrms/internal/bootstrap"
	"go-hrms/internal/employee"
	"go-hrms/internal/holiday"
	"go-hrms/internal/messaging/kafka"
	"go-hrms/internal/payroll"
	"go-hrms/internal/rbac"
	"go-hrms/internal/salarystructure"
	"go-hrms/internal/shared/counter"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	attendanceRepo := attendance.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	holidayRepo := holiday.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)
	payrollRepo := payroll.NewRepository(gormDB)
	structureRepo := salarystructure.NewRepository(gormDB)

	// --- RBAC Core ---
	enforcer, err := rbac.NewEnforcer(
		filepath.Join("internal", "rbac", "model.conf"),
		filepath.Join("internal", "rbac", "policy.csv"),
	)
	if err != nil {
		return err
	}

	auditLogger := bootstrap.NewStdoutAuditLogger()

	// --- Services ---
	attendanceService := attendance.NewService(db, attendanceRepo)
	employeeService := employee.NewServiceWithOutbox(db, employeeRepo, counterRepo, outboxRepo, rdb)
	holidayService := holiday.NewService(holidayRepo)
	structureService := salarystructure.NewService(db, structureRepo)
	payrollService := payroll.NewServiceWithOutbox(
		db,
		payrollRepo,
		employeeRepo,
		attendanceRepo,
		holidayRepo,
		outboxRepo,
		auditLogger,
	)

	// --- Handlers ---
	attendanceHandler := attendance.NewHandler(attendanceService)
	employeeHandler := employee.NewHandler(employeeService)
	holidayHandler := holiday.NewHandler(holidayService)
	payrollHandler := payroll.NewHandler(payrollService, rdb)
	structureHandler := salarystructure.NewHandler(structureService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		attendance.RegisterRoutes(api, attendanceHandler, enforcer)
		employee.RegisterRoutes(api, employeeHandler, enforcer)
		holiday.RegisterRoutes(api, holidayHandler, enforcer)
		payroll.RegisterRoutes(api, payrollHandler, enforcer, rdb)
		salarystructure.RegisterRoutes(api, structureHandler, enforcer)
	}

	return nil
}
