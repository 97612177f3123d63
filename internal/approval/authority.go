package approval

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// RoleRepository resolves role assignments. It is satisfied by the rbac
// repository.
//
//go:generate mockgen -source=authority.go -destination=mock/authority_mock.go -package=mock
type RoleRepository interface {
	RolesOf(ctx context.Context, employeeID string) ([]string, error)
	FirstHolderName(ctx context.Context, role string, excludeEmployeeID string) (string, error)
}

type Authority interface {
	Evaluate(ctx context.Context, approverID, subjectID string) (Decision, error)
	Viewer(ctx context.Context, viewerID string) (ViewerInfo, error)
	Policy() *Policy
}

// ViewerInfo summarises what the current reviewer may do.
type ViewerInfo struct {
	EmployeeID    string   `json:"employee_id"`
	Roles         []string `json:"roles"`
	Level         int      `json:"level"`
	LevelName     string   `json:"level_name"`
	CanApproveAny bool     `json:"can_approve_any"`
}

type authority struct {
	policy *Policy
	roles  RoleRepository
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewAuthority(policy *Policy, roles RoleRepository, logger ...*zap.Logger) Authority {
	l := zap.L().Named("approval.authority")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("approval.authority")
	}
	if policy == nil {
		policy = DefaultPolicy()
	}
	return &authority{
		policy: policy,
		roles:  roles,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

func (a *authority) Policy() *Policy { return a.policy }

func (a *authority) Evaluate(ctx context.Context, approverID, subjectID string) (Decision, error) {
	if approverID == subjectID {
		d := Decide(LevelNone, LevelNone, true)
		d.SuggestedApprover = a.suggestFor(ctx, approverID)
		return d, nil
	}

	approverRoles, err := a.rolesOf(ctx, approverID)
	if err != nil {
		return Decision{}, err
	}
	subjectRoles, err := a.rolesOf(ctx, subjectID)
	if err != nil {
		return Decision{}, err
	}

	d := a.policy.CanApprove(approverRoles, approverID, subjectID, subjectRoles)
	a.logger.Info("approval authority evaluated",
		zap.String("approver_id", approverID),
		zap.Int("approver_level", d.ApproverLevel),
		zap.String("subject_id", subjectID),
		zap.Int("subject_level", d.SubjectLevel),
		zap.Bool("allowed", d.Allowed),
	)
	return d, nil
}

func (a *authority) Viewer(ctx context.Context, viewerID string) (ViewerInfo, error) {
	roles, err := a.rolesOf(ctx, viewerID)
	if err != nil {
		return ViewerInfo{}, err
	}
	level := a.policy.LevelOf(roles)
	return ViewerInfo{
		EmployeeID:    viewerID,
		Roles:         roles,
		Level:         level,
		LevelName:     a.policy.LevelName(level),
		CanApproveAny: level >= MinReviewerLevel,
	}, nil
}

// rolesOf collapses concurrent lookups for the same employee, list pages
// evaluate the viewer once per row.
func (a *authority) rolesOf(ctx context.Context, employeeID string) ([]string, error) {
	v, err, _ := a.sf.Do("roles:"+employeeID, func() (interface{}, error) {
		return a.roles.RolesOf(ctx, employeeID)
	})
	if err != nil {
		a.logger.Error("load employee roles failed", zap.String("employee_id", employeeID), zap.Error(err))
		return nil, err
	}
	roles, _ := v.([]string)
	return roles, nil
}

// suggestFor names a concrete top-tier holder other than the requester.
// Lookups go by configured role names; level display names may differ.
func (a *authority) suggestFor(ctx context.Context, excludeID string) string {
	for _, level := range []int{LevelAdmin, LevelHRManager} {
		for _, role := range a.policy.RolesAt(level) {
			name, err := a.roles.FirstHolderName(ctx, role, excludeID)
			if err != nil {
				a.logger.Warn("suggest approver lookup failed", zap.String("role", role), zap.Error(err))
				continue
			}
			if name != "" {
				return fmt.Sprintf("%s (%s)", role, name)
			}
		}
	}
	return "Contact system administrator"
}
