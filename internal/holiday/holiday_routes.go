package holiday

import (
	"go-hrms/internal/middleware"
	"go-hrms/internal/rbac"

	"github.com/casbin/casbin/v2"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, enforcer *casbin.Enforcer) {
	holidays := r.Group("/holidays")
	holidays.Use(middleware.AuthMiddleware())
	{
		holidays.GET("", rbac.Authorize(enforcer, "holiday", "read"), handler.GetAll)
		holidays.POST("", rbac.Authorize(enforcer, "holiday", "create"), handler.Create)
		holidays.DELETE("/:id", rbac.Authorize(enforcer, "holiday", "delete"), handler.Delete)
	}
}
