package app

import (
	"log"
	"os"

	"go-hrms/internal/attendance"
	"go-hrms/internal/employee"
	"go-hrms/internal/holiday"
	"go-hrms/internal/middleware"
	"go-hrms/internal/payroll"
	"go-hrms/internal/salarystructure"
	"go-hrms/internal/shared/connection"

	"github.com/gin-gonic/gin"
)

func BuildApp(router *gin.Engine) error {
	// 1. Setup Infrastructure
	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		log.Fatal(err)
	}
	log.Println("✅ Database connection established")

	if err := gormDB.AutoMigrate(
		&employee.Employee{},
		&salarystructure.SalaryStructure{},
		&salarystructure.Component{},
		&attendance.Attendance{},
		&holiday.Holiday{},
		&payroll.Payroll{},
	); err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}

	redisClient, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		return err
	}
	log.Println("✅ Redis connection established")

	router.Use(middleware.RequestID())
	router.Use(middleware.RateLimitByIP(50, 100))

	// Register Modules & Routes
	return registerModules(router, sqlDB, gormDB, redisClient)
}
