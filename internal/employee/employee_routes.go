package employee

import (
	"go-hrms/internal/middleware"
	"go-hrms/internal/rbac"

	"github.com/casbin/casbin/v2"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, enforcer *casbin.Enforcer) {
	employees := r.Group("/employees")
	employees.Use(middleware.AuthMiddleware())
	employees.Use(middleware.ContextLogger(zap.L()))
	{
		employees.GET("", rbac.Authorize(enforcer, "employee", "read"), handler.GetAll)
		employees.GET("/options", rbac.Authorize(enforcer, "employee", "read"), handler.GetOptions)
		employees.GET("/:id", rbac.Authorize(enforcer, "employee", "read"), handler.GetById)
		employees.POST("", rbac.Authorize(enforcer, "employee", "create"), handler.Create)
		employees.PUT("/:id", rbac.Authorize(enforcer, "employee", "update"), handler.Update)
		employees.DELETE("/:id", rbac.Authorize(enforcer, "employee", "delete"), handler.Disable)
	}
}
