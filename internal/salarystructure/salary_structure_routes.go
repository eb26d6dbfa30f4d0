package salarystructure

import (
	"go-hrms/internal/middleware"
	"go-hrms/internal/rbac"

	"github.com/casbin/casbin/v2"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, enforcer *casbin.Enforcer) {
	structures := r.Group("/salary-structures")
	structures.Use(middleware.AuthMiddleware())
	{
		structures.GET("", rbac.Authorize(enforcer, "salary_structure", "read"), handler.GetAll)
		structures.GET("/:id", rbac.Authorize(enforcer, "salary_structure", "read"), handler.GetById)
		structures.POST("", rbac.Authorize(enforcer, "salary_structure", "create"), handler.Create)
		structures.PUT("/:id", rbac.Authorize(enforcer, "salary_structure", "update"), handler.Update)
		structures.DELETE("/:id", rbac.Authorize(enforcer, "salary_structure", "delete"), handler.Delete)
	}
}
