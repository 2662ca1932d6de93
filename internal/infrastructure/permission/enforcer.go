package permission

import (
	"fmt"
	"sync"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	gormadapter "github.com/casbin/gorm-adapter/v3"
	"gorm.io/gorm"

	"github.com/cragbase/cragbase/internal/shared/logger"
)

// defaultModel is used when no model file is configured. Subjects are roles;
// role inheritance is expressed with g policies.
const defaultModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && r.obj == p.obj && r.act == p.act
`

type Enforcer struct {
	enforcer *casbin.Enforcer
	mu       sync.RWMutex
	logger   logger.Interface
}

// NewEnforcer loads policies from the casbin_rule table through the gorm
// adapter. An empty modelPath selects the built-in role model.
func NewEnforcer(db *gorm.DB, modelPath string, log logger.Interface) (*Enforcer, error) {
	adapter, err := gormadapter.NewAdapterByDB(db)
	if err != nil {
		return nil, fmt.Errorf("failed to create casbin adapter: %w", err)
	}

	var m model.Model
	if modelPath == "" {
		m, err = model.NewModelFromString(defaultModel)
	} else {
		m, err = model.NewModelFromFile(modelPath)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load casbin model: %w", err)
	}

	enforcer, err := casbin.NewEnforcer(m, adapter)
	if err != nil {
		return nil, fmt.Errorf("failed to create casbin enforcer: %w", err)
	}

	if err := enforcer.LoadPolicy(); err != nil {
		return nil, fmt.Errorf("failed to load policy: %w", err)
	}

	return &Enforcer{
		enforcer: enforcer,
		logger:   log,
	}, nil
}

func (e *Enforcer) Enforce(role string, resource string, action string) (bool, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	allowed, err := e.enforcer.Enforce(role, resource, action)
	if err != nil {
		e.logger.Errorw("permission check failed", "error", err, "role", role, "resource", resource, "action", action)
		return false, fmt.Errorf("permission check failed: %w", err)
	}

	return allowed, nil
}

func (e *Enforcer) AddPolicy(role string, resource string, action string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, err := e.enforcer.AddPolicy(role, resource, action); err != nil {
		e.logger.Errorw("failed to add policy", "error", err)
		return fmt.Errorf("failed to add policy: %w", err)
	}
	return nil
}

func (e *Enforcer) RemovePolicy(role string, resource string, action string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, err := e.enforcer.RemovePolicy(role, resource, action); err != nil {
		e.logger.Errorw("failed to remove policy", "error", err)
		return fmt.Errorf("failed to remove policy: %w", err)
	}
	return nil
}

// GetPermissionsForRole returns the direct and inherited policies of role.
func (e *Enforcer) GetPermissionsForRole(role string) ([][]string, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	permissions, err := e.enforcer.GetImplicitPermissionsForUser(role)
	if err != nil {
		return nil, fmt.Errorf("failed to get permissions for role: %w", err)
	}
	return permissions, nil
}

func (e *Enforcer) LoadPolicy() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.enforcer.LoadPolicy(); err != nil {
		return fmt.Errorf("failed to reload policy: %w", err)
	}

	e.logger.Infow("policy reloaded successfully")
	return nil
}
