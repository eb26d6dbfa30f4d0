package attendance

import (
	"go-hrms/internal/middleware"
	"go-hrms/internal/rbac"

	"github.com/casbin/casbin/v2"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, enforcer *casbin.Enforcer) {
	attendances := r.Group("/attendances")
	attendances.Use(middleware.AuthMiddleware())
	{
		attendances.GET("", rbac.Authorize(enforcer, "attendance", "read"), handler.GetAll)
		attendances.POST("/check-in", rbac.Authorize(enforcer, "attendance", "create"), handler.CheckIn)
		attendances.POST("/:id/approve", rbac.Authorize(enforcer, "attendance", "approve"), handler.Approve)
		attendances.POST("/:id/reject", rbac.Authorize(enforcer, "attendance", "approve"), handler.Reject)
	}
}
