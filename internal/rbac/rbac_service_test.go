package rbac

import (
	"testing"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	"github.com/stretchr/testify/assert"

	"github.com/grehub24-dot/campusflow/internal/domain"
)

type mockRepo struct {
	userRoles []UserRoleRow
	rolePerms []RolePermissionRow
}

func (m *mockRepo) GetUserRoles() ([]UserRoleRow, error) {
	return m.userRoles, nil
}

func (m *mockRepo) GetRolePermissions() ([]RolePermissionRow, error) {
	return m.rolePerms, nil
}

func newTestEnforcer(t *testing.T) *casbin.Enforcer {
	modelText := `[request_definition]
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

	m, err := model.NewModelFromString(modelText)
	assert.NoError(t, err)

	e, err := casbin.NewEnforcer(m)
	assert.NoError(t, err)

	return e
}

func TestRBACService_Enforce(t *testing.T) {
	repo := &mockRepo{
		userRoles: []UserRoleRow{
			{UserID: "user-1", RoleID: "role-bursar"},
		},
		rolePerms: []RolePermissionRow{
			{RoleID: "role-bursar", Resource: "payment", Action: "create"},
			{RoleID: "role-bursar", Resource: "billing", Action: "read"},
		},
	}
	enforcer := newTestEnforcer(t)

	service := NewService(repo, enforcer)

	err := service.LoadPolicy()
	assert.NoError(t, err)

	// Permission granted through the role.
	allowed, err := service.Enforce(domain.EnforceRequest{
		UserID:   "user-1",
		Resource: "payment",
		Action:   "create",
	})
	assert.NoError(t, err)
	assert.True(t, allowed)

	// Same role, action it never received.
	denied, err := service.Enforce(domain.EnforceRequest{
		UserID:   "user-1",
		Resource: "payroll",
		Action:   "run",
	})
	assert.NoError(t, err)
	assert.False(t, denied)

	// Unknown user.
	denied, err = service.Enforce(domain.EnforceRequest{
		UserID:   "user-2",
		Resource: "payment",
		Action:   "create",
	})
	assert.NoError(t, err)
	assert.False(t, denied)
}

func TestRBACService_EnforceSeesRoleChangesWithoutRestart(t *testing.T) {
	repo := &mockRepo{
		userRoles: []UserRoleRow{{UserID: "user-1", RoleID: "role-clerk"}},
		rolePerms: []RolePermissionRow{{RoleID: "role-clerk", Resource: "student", Action: "read"}},
	}
	enforcer := newTestEnforcer(t)

	service := NewService(repo, enforcer)

	allowed, err := service.Enforce(domain.EnforceRequest{UserID: "user-1", Resource: "payroll", Action: "run"})
	assert.NoError(t, err)
	assert.False(t, allowed)

	// Grant the permission in storage; the next check picks it up because
	// Enforce reloads the policy.
	repo.rolePerms = append(repo.rolePerms, RolePermissionRow{
		RoleID: "role-clerk", Resource: "payroll", Action: "run",
	})

	allowed, err = service.Enforce(domain.EnforceRequest{UserID: "user-1", Resource: "payroll", Action: "run"})
	assert.NoError(t, err)
	assert.True(t, allowed)
}
