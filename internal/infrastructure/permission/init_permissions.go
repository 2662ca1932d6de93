package permission

import (
	"fmt"

	"github.com/cragbase/cragbase/internal/shared/constants"
)

// Resources and actions checked by the HTTP permission middleware.
const (
	ResourceArea         = "area"
	ResourceBoulder      = "boulder"
	ResourceAudit        = "audit"
	ResourceContribution = "contribution"
	ResourceMailer       = "mailer"
	ResourceTranslation  = "translation"

	ActionRead   = "read"
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
	ActionSend   = "send"
)

// DefaultPolicies grants each role only what it adds on top of the role it
// inherits from.
func DefaultPolicies() [][]string {
	return [][]string{
		{constants.RoleGuest, ResourceArea, ActionRead},
		{constants.RoleGuest, ResourceBoulder, ActionRead},
		{constants.RoleGuest, ResourceContribution, ActionCreate},
		{constants.RoleGuest, ResourceTranslation, ActionRead},

		{constants.RoleEditor, ResourceArea, ActionCreate},
		{constants.RoleEditor, ResourceBoulder, ActionCreate},
		{constants.RoleEditor, ResourceBoulder, ActionUpdate},
		{constants.RoleEditor, ResourceAudit, ActionRead},

		{constants.RoleAdmin, ResourceBoulder, ActionDelete},
		{constants.RoleAdmin, ResourceMailer, ActionSend},
	}
}

// DefaultRoleHierarchy lists (role, inherited role) pairs.
func DefaultRoleHierarchy() [][]string {
	return [][]string{
		{constants.RoleAdmin, constants.RoleEditor},
		{constants.RoleEditor, constants.RoleGuest},
	}
}

// InitDefaultPermissions stores the default policies and role hierarchy.
// Existing rules are left untouched, so it is safe to run on every boot.
func (e *Enforcer) InitDefaultPermissions() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, policy := range DefaultPolicies() {
		if _, err := e.enforcer.AddPolicy(policy[0], policy[1], policy[2]); err != nil {
			e.logger.Errorw("failed to add permission policy",
				"error", err,
				"role", policy[0],
				"resource", policy[1],
				"action", policy[2])
			return fmt.Errorf("failed to add policy [%s, %s, %s]: %w",
				policy[0], policy[1], policy[2], err)
		}
	}

	for _, pair := range DefaultRoleHierarchy() {
		if _, err := e.enforcer.AddGroupingPolicy(pair[0], pair[1]); err != nil {
			return fmt.Errorf("failed to add role inheritance %s -> %s: %w", pair[0], pair[1], err)
		}
	}

	e.logger.Infow("default permissions initialized")
	return nil
}
