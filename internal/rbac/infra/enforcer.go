package infra

import (
	"go-hrm/internal/approval"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

const modelText = `[request_definition]
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

// Resource/action pairs granted by tier.
var (
	reviewerPermissions = [][2]string{
		{"sensitive_request", "read"},
		{"sensitive_request", "decide"},
		{"employee_event", "read"},
	}
	managerPermissions = [][2]string{
		{"employee", "create"},
	}
)

// NewEnforcer builds an in-memory enforcer whose role permissions derive
// from the approval tier table.
func NewEnforcer(policy *approval.Policy) (*casbin.Enforcer, error) {
	m, err := model.NewModelFromString(modelText)
	if err != nil {
		return nil, err
	}
	e, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, err
	}

	grant := func(level int, perms [][2]string) error {
		for _, role := range policy.RolesAtLeast(level) {
			for _, p := range perms {
				if _, err := e.AddPolicy(role, p[0], p[1]); err != nil {
					return err
				}
			}
		}
		return nil
	}
	if err := grant(approval.MinReviewerLevel, reviewerPermissions); err != nil {
		return nil, err
	}
	if err := grant(approval.LevelHRManager, managerPermissions); err != nil {
		return nil, err
	}
	return e, nil
}
