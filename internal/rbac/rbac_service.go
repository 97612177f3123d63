package rbac

import (
	"context"
	"go-hrm/internal/domain"
	"sync"

	"github.com/casbin/casbin/v2"
	"go.uber.org/zap"
)

//go:generate mockgen -source=rbac_service.go -destination=mock/rbac_service_mock.go -package=mock
type Service interface {
	Enforce(ctx context.Context, req domain.EnforceRequest) (bool, error)
	Permissions(ctx context.Context, employeeID string) (domain.MyPermissionsResponse, error)
}

type service struct {
	repo     Repository
	enforcer *casbin.Enforcer
	mu       sync.Mutex
	logger   *zap.Logger
}

func NewService(repo Repository, enforcer *casbin.Enforcer, logger ...*zap.Logger) Service {
	l := zap.L().Named("rbac.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.service")
	}
	return &service{
		repo:     repo,
		enforcer: enforcer,
		logger:   l,
	}
}

// bindRolesUnlocked loads the employee's grouping policy. Callers hold mu
// and must call the returned func to drop it again.
func (s *service) bindRolesUnlocked(employeeID string, roles []string) (func(), error) {
	for _, role := range roles {
		if _, err := s.enforcer.AddRoleForUser(employeeID, role); err != nil {
			return nil, err
		}
	}
	return func() {
		if _, err := s.enforcer.DeleteRolesForUser(employeeID); err != nil {
			s.logger.Warn("rbac unbind roles failed", zap.String("employee_id", employeeID), zap.Error(err))
		}
	}, nil
}

func (s *service) Enforce(ctx context.Context, req domain.EnforceRequest) (bool, error) {
	roles, err := s.repo.RolesOf(ctx, req.EmployeeID)
	if err != nil {
		s.logger.Error("rbac load roles failed", zap.String("employee_id", req.EmployeeID), zap.Error(err))
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	unbind, err := s.bindRolesUnlocked(req.EmployeeID, roles)
	if err != nil {
		return false, err
	}
	defer unbind()

	allowed, err := s.enforcer.Enforce(req.EmployeeID, req.Resource, req.Action)
	if err != nil {
		s.logger.Error("rbac enforce failed",
			zap.String("employee_id", req.EmployeeID),
			zap.String("resource", req.Resource),
			zap.String("action", req.Action),
			zap.Error(err),
		)
		return false, err
	}

	s.logger.Debug("rbac enforce result",
		zap.String("employee_id", req.EmployeeID),
		zap.String("resource", req.Resource),
		zap.String("action", req.Action),
		zap.Bool("allowed", allowed),
		zap.Strings("roles", roles),
	)
	return allowed, nil
}

func (s *service) Permissions(ctx context.Context, employeeID string) (domain.MyPermissionsResponse, error) {
	roles, err := s.repo.RolesOf(ctx, employeeID)
	if err != nil {
		return domain.MyPermissionsResponse{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	unbind, err := s.bindRolesUnlocked(employeeID, roles)
	if err != nil {
		return domain.MyPermissionsResponse{}, err
	}
	defer unbind()

	perms, err := s.enforcer.GetImplicitPermissionsForUser(employeeID)
	if err != nil {
		return domain.MyPermissionsResponse{}, err
	}

	seen := map[string]bool{}
	out := domain.MyPermissionsResponse{
		EmployeeID:  employeeID,
		Roles:       roles,
		Permissions: []domain.PermissionResponse{},
	}
	for _, p := range perms {
		if len(p) < 3 {
			continue
		}
		key := p[1] + ":" + p[2]
		if seen[key] {
			continue
		}
		seen[key] = true
		out.Permissions = append(out.Permissions, domain.PermissionResponse{Resource: p[1], Action: p[2]})
	}
	return out, nil
}
