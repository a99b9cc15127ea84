package rbac

import (
	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

const rbacModel = `
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

// Role hierarchy and grants mirror the legacy API: admins can do everything
// managers can, managers everything employees can. Policies are static —
// roles are few and fixed, so there is no DB-backed policy storage.
var policies = [][]string{
	{"employee", "attendance", "checkin"},
	{"employee", "attendance", "read-own"},
	{"employee", "payout", "read-own"},
	{"manager", "attendance", "read"},
	{"manager", "attendance", "approve"},
	{"manager", "employee", "read"},
	{"manager", "site", "read"},
	{"manager", "assignment", "read"},
	{"manager", "payout", "read"},
	{"manager", "payout", "generate"},
	{"admin", "employee", "write"},
	{"admin", "site", "write"},
	{"admin", "assignment", "write"},
	{"admin", "payout", "pay"},
}

var roleLinks = [][]string{
	{"manager", "employee"},
	{"admin", "manager"},
}

func NewEnforcer() (*casbin.Enforcer, error) {
	m, err := model.NewModelFromString(rbacModel)
	if err != nil {
		return nil, err
	}

	e, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, err
	}

	for _, p := range policies {
		if _, err := e.AddPolicy(p[0], p[1], p[2]); err != nil {
			return nil, err
		}
	}
	for _, g := range roleLinks {
		if _, err := e.AddGroupingPolicy(g[0], g[1]); err != nil {
			return nil, err
		}
	}

	return e, nil
}
