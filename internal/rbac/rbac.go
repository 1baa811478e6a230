package rbac

import (
	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

// Roles assigned at sign-in. There is no role column in the spreadsheet;
// admins are designated through configuration (ADMIN_EMAILS).
const (
	RoleEmployee = "employee"
	RoleManager  = "manager"
	RoleAdmin    = "admin"
)

const modelText = `
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

// NewEnforcer builds the in-memory policy. The permission set is small and
// fixed, so it lives in code rather than a policy store.
func NewEnforcer() (*casbin.Enforcer, error) {
	m, err := model.NewModelFromString(modelText)
	if err != nil {
		return nil, err
	}

	e, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, err
	}

	policies := [][]string{
		{RoleEmployee, "employee", "read"},
		{RoleEmployee, "timeentry", "read"},
		{RoleEmployee, "timeentry", "create"},
		{RoleManager, "timeentry", "read_all"},
		{RoleManager, "report", "read"},
		{RoleManager, "presence", "read"},
	}
	if _, err := e.AddPolicies(policies); err != nil {
		return nil, err
	}

	// manager inherits employee, admin inherits manager
	if _, err := e.AddGroupingPolicy(RoleManager, RoleEmployee); err != nil {
		return nil, err
	}
	if _, err := e.AddGroupingPolicy(RoleAdmin, RoleManager); err != nil {
		return nil, err
	}

	return e, nil
}

//go:generate mockgen -source=rbac.go -destination=mock/rbac_service_mock.go -package=mock
type Service interface {
	Enforce(role, resource, action string) (bool, error)
}

type service struct {
	enforcer *casbin.Enforcer
}

func NewService(enforcer *casbin.Enforcer) Service {
	return &service{enforcer: enforcer}
}

func (s *service) Enforce(role, resource, action string) (bool, error) {
	return s.enforcer.Enforce(role, resource, action)
}
