package infra

import (
	"fmt"

	"github.com/casbin/casbin/v2"
)

// NewEnforcer builds an enforcer from the model definition only. The policy
// rows live in the database and are loaded by the rbac service, so the
// enforcer starts empty.
func NewEnforcer(modelPath string) (*casbin.Enforcer, error) {
	e, err := casbin.NewEnforcer(modelPath)
	if err != nil {
		return nil, fmt.Errorf("load rbac model %s: %w", modelPath, err)
	}
	return e, nil
}
