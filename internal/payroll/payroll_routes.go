package payroll

import (
	"go-hrms/internal/middleware"
	"go-hrms/internal/rbac"

	"github.com/casbin/casbin/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, enforcer *casbin.Enforcer, rdb *redis.Client) {
	payrolls := r.Group("/payrolls")
	payrolls.Use(middleware.AuthMiddleware())
	payrolls.Use(middleware.ContextLogger(zap.L()))
	{
		payrolls.GET("", rbac.Authorize(enforcer, "payroll", "read"), handler.GetAll)
		payrolls.GET("/projection", rbac.Authorize(enforcer, "payroll", "read"), handler.Projection)
		payrolls.GET("/:id", rbac.Authorize(enforcer, "payroll", "read"), handler.GetById)
		payrolls.GET("/:id/payslip", rbac.Authorize(enforcer, "payroll", "read"), handler.DownloadPayslip)
		payrolls.POST("/generate",
			rbac.Authorize(enforcer, "payroll", "generate"),
			middleware.RateLimitByUser(0.2, 2),
			middleware.Idempotency(rdb),
			handler.Generate,
		)
		// pay rights imply approve rights in the policy, so one gate covers both actions
		payrolls.POST("/bulk-status", rbac.Authorize(enforcer, "payroll", "approve"), handler.BulkStatus)
	}
}
