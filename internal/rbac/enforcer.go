package rbac

import (
	"github.com/casbin/casbin/v2"
)

// NewEnforcer loads the casbin RBAC model and its policy file.
func NewEnforcer(modelPath, policyPath string) (*casbin.Enforcer, error) {
	return casbin.NewEnforcer(modelPath, policyPath)
}
