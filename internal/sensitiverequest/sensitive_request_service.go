package sensitiverequest

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"go-hrm/internal/approval"
	"go-hrm/internal/employee"
	"go-hrm/internal/eventstore"
	"go-hrm/internal/notification"
	"go-hrm/internal/otp"
	sensitiverequesterrors "go-hrm/internal/sensitiverequest/errors"
	"go-hrm/internal/sensitiverequest/metrics"
	"go-hrm/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

//go:generate mockgen -source=sensitive_request_service.go -destination=mock/sensitive_request_service_mock.go -package=mock
type Service interface {
	Submit(ctx context.Context, employeeID string, req SubmitRequest) (SubmitResult, error)
	Verify(ctx context.Context, employeeID string, req VerifyRequest) (VerifyResult, error)
	Decide(ctx context.Context, approverID, groupID, action, reason string) (DecisionResult, error)
	List(ctx context.Context, viewerID string, filter ListFilter) (ListResult, error)
	Get(ctx context.Context, viewerID, groupID string) (GroupResponse, error)
	PendingRequest(ctx context.Context, employeeID string) (*employee.PendingRequest, error)
}

type service struct {
	db         *sql.DB
	repo       Repository
	employees  employee.Repository
	store      eventstore.Store
	authority  approval.Authority
	challenges ChallengeStore
	otp        otp.Service
	mailer     notification.EmailSender
	rdb        *redis.Client
	metrics    *metrics.Metrics
	now        func() time.Time
	logger     *zap.Logger
}

type Option func(*service)

func WithLogger(logger *zap.Logger) Option {
	return func(s *service) {
		if logger != nil {
			s.logger = logger.Named("sensitiverequest.service")
		}
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *service) { s.metrics = m }
}

func WithClock(now func() time.Time) Option {
	return func(s *service) { s.now = now }
}

// WithProfileCache lets decisions drop the employee's cached profile.
func WithProfileCache(rdb *redis.Client) Option {
	return func(s *service) { s.rdb = rdb }
}

func NewService(
	db *sql.DB,
	repo Repository,
	employees employee.Repository,
	store eventstore.Store,
	authority approval.Authority,
	challenges ChallengeStore,
	otpService otp.Service,
	mailer notification.EmailSender,
	opts ...Option,
) Service {
	s := &service{
		db:         db,
		repo:       repo,
		employees:  employees,
		store:      store,
		authority:  authority,
		challenges: challenges,
		otp:        otpService,
		mailer:     mailer,
		now:        time.Now,
		logger:     zap.L().Named("sensitiverequest.service"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) Submit(ctx context.Context, employeeID string, req SubmitRequest) (SubmitResult, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("sensitive update submit requested",
		zap.String("request_id", rid),
		zap.String("employee_id", employeeID),
	)

	requested := map[string]string{
		eventstore.FieldTaxID:             strings.TrimSpace(req.IDNumber),
		eventstore.FieldBankAccountNumber: strings.TrimSpace(req.BankAccount),
	}
	if requested[eventstore.FieldTaxID] == "" && requested[eventstore.FieldBankAccountNumber] == "" {
		return SubmitResult{}, sensitiverequesterrors.ErrNoFieldsSupplied
	}

	empUUID, err := uuid.Parse(employeeID)
	if err != nil {
		return SubmitResult{}, sensitiverequesterrors.ErrRequestNotFound
	}
	empl, err := s.employees.FindByID(ctx, employeeID)
	if err != nil {
		return SubmitResult{}, mapEmployeeError(err)
	}

	now := s.now().UTC()
	group := &RequestGroup{
		ID:          uuid.New(),
		EmployeeID:  empUUID,
		Status:      StatusAwaitingOtp,
		RequestedAt: now,
	}
	current := map[string]string{
		eventstore.FieldTaxID:             empl.TaxID,
		eventstore.FieldBankAccountNumber: empl.BankAccountNumber,
	}
	for _, field := range []string{eventstore.FieldTaxID, eventstore.FieldBankAccountNumber} {
		next := requested[field]
		// kosong atau sama dengan nilai sekarang -> dilewati
		if next == "" || next == current[field] {
			continue
		}
		group.Proposals = append(group.Proposals, ChangeProposal{
			ID:          uuid.New(),
			GroupID:     group.ID,
			EmployeeID:  empUUID,
			FieldName:   field,
			OldValue:    current[field],
			NewValue:    next,
			Status:      StatusAwaitingOtp,
			RequestedAt: now,
		})
	}
	if len(group.Proposals) == 0 {
		return SubmitResult{}, sensitiverequesterrors.ErrNoChanges
	}

	if err := s.challenges.Discard(ctx, employeeID); err != nil {
		s.logger.Error("discard previous otp challenge failed", zap.String("employee_id", employeeID), zap.Error(err))
		return SubmitResult{}, err
	}

	code, err := s.otp.Generate()
	if err != nil {
		return SubmitResult{}, err
	}
	challenge := Challenge{
		GroupID:    group.ID.String(),
		EmployeeID: employeeID,
		Code:       code,
		IssuedAt:   now,
		ExpiresAt:  s.otp.ExpiryFrom(now),
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("submit begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return SubmitResult{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	discarded, err := qtx.DiscardAwaitingOtp(ctx, employeeID)
	if err != nil {
		s.logger.Error("discard stale groups failed", zap.String("employee_id", employeeID), zap.Error(err))
		return SubmitResult{}, err
	}
	if err := qtx.CreateGroup(ctx, group); err != nil {
		s.logger.Error("create request group failed", zap.String("employee_id", employeeID), zap.Error(err))
		return SubmitResult{}, err
	}
	// challenge ditulis sebelum commit: grup tanpa OTP tidak boleh tersimpan
	if err := s.challenges.Issue(ctx, challenge); err != nil {
		s.logger.Error("issue otp challenge failed", zap.String("employee_id", employeeID), zap.Error(err))
		return SubmitResult{}, err
	}
	if err := tx.Commit(); err != nil {
		s.logger.Error("commit failed", zap.String("request_id", rid), zap.Error(err))
		if derr := s.challenges.Discard(ctx, employeeID); derr != nil {
			s.logger.Warn("discard orphan otp challenge failed", zap.String("employee_id", employeeID), zap.Error(derr))
		}
		return SubmitResult{}, err
	}
	s.metrics.IncrementOtpIssued()

	// gagal kirim email tidak membatalkan OTP; user bisa submit ulang
	delivered, err := s.mailer.SendOtpEmail(ctx, empl.Email, code)
	if err != nil || !delivered {
		s.logger.Warn("otp email not delivered",
			zap.String("employee_id", employeeID),
			zap.String("group_id", group.ID.String()),
			zap.Error(err),
		)
	}

	s.logger.Info("sensitive update submitted",
		zap.String("request_id", rid),
		zap.String("employee_id", employeeID),
		zap.String("group_id", group.ID.String()),
		zap.Int("fields", len(group.Proposals)),
		zap.Int64("discarded_groups", discarded),
	)

	return SubmitResult{
		RequestGroupID:   group.ID.String(),
		Message:          "OTP sent to your email",
		ExpiresInSeconds: int(challenge.ExpiresAt.Sub(now).Seconds()),
	}, nil
}

func (s *service) Verify(ctx context.Context, employeeID string, req VerifyRequest) (VerifyResult, error) {
	rid := contextutil.GetRequestID(ctx)

	challenge, err := s.challenges.Get(ctx, employeeID)
	if err != nil {
		s.logger.Error("load otp challenge failed", zap.String("employee_id", employeeID), zap.Error(err))
		return VerifyResult{}, err
	}
	if challenge == nil || challenge.GroupID != strings.TrimSpace(req.RequestID) {
		s.metrics.IncrementVerification("not_found")
		s.logger.Warn("otp challenge not found",
			zap.String("employee_id", employeeID),
			zap.String("group_id", req.RequestID),
		)
		return VerifyResult{}, sensitiverequesterrors.ErrOtpNotFound
	}

	if !s.otp.Verify(challenge.Code, strings.TrimSpace(req.OtpCode), challenge.ExpiresAt) {
		s.metrics.IncrementVerification("invalid")
		s.logger.Warn("otp verification failed",
			zap.String("employee_id", employeeID),
			zap.String("group_id", challenge.GroupID),
		)
		return VerifyResult{}, sensitiverequesterrors.ErrInvalidOtp
	}

	consumed, err := s.challenges.Consume(ctx, *challenge)
	if err != nil {
		s.logger.Error("consume otp challenge failed", zap.String("employee_id", employeeID), zap.Error(err))
		return VerifyResult{}, err
	}
	if !consumed {
		// verify lain sudah memakai kode ini
		s.metrics.IncrementVerification("not_found")
		return VerifyResult{}, sensitiverequesterrors.ErrOtpNotFound
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("verify begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return VerifyResult{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	group, err := qtx.FindGroupByID(ctx, challenge.GroupID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return VerifyResult{}, sensitiverequesterrors.ErrOtpNotFound
		}
		return VerifyResult{}, err
	}

	moved, err := qtx.TransitionGroup(ctx, challenge.GroupID, StatusAwaitingOtp, StatusAwaitingApproval, nil)
	if err != nil {
		return VerifyResult{}, err
	}
	if !moved {
		return VerifyResult{}, sensitiverequesterrors.ErrOtpNotFound
	}
	if err := qtx.UpdateProposalsStatus(ctx, challenge.GroupID, StatusAwaitingOtp, StatusAwaitingApproval, nil); err != nil {
		return VerifyResult{}, err
	}

	if _, err := s.store.AppendTx(ctx, tx, employeeID, eventstore.EventSensitiveInfoRequested,
		eventstore.SensitiveRequestPayload{
			GroupID:     group.ID.String(),
			Changes:     proposalDiffs(group.Proposals),
			RequestedAt: group.RequestedAt,
		}, employeeID); err != nil {
		s.logger.Error("verify append event failed", zap.String("employee_id", employeeID), zap.Error(err))
		return VerifyResult{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("commit failed", zap.String("request_id", rid), zap.Error(err))
		return VerifyResult{}, err
	}

	s.metrics.IncrementVerification("success")
	s.invalidateProfile(ctx, employeeID)
	s.logger.Info("otp verified, sensitive changes submitted for approval",
		zap.String("request_id", rid),
		zap.String("employee_id", employeeID),
		zap.String("group_id", challenge.GroupID),
	)

	return VerifyResult{
		Success: true,
		Status:  StatusAwaitingApproval,
		Message: "Your profile update request has been submitted successfully and is pending HR approval",
	}, nil
}

func (s *service) Decide(ctx context.Context, approverID, groupID, action, reason string) (DecisionResult, error) {
	rid := contextutil.GetRequestID(ctx)
	action = strings.ToLower(strings.TrimSpace(action))
	reason = strings.TrimSpace(reason)

	var target string
	var eventType eventstore.EventType
	switch action {
	case ActionApprove:
		target, eventType = StatusApproved, eventstore.EventSensitiveInfoApproved
	case ActionReject:
		target, eventType = StatusRejected, eventstore.EventSensitiveInfoRejected
		if reason == "" {
			return DecisionResult{}, sensitiverequesterrors.ErrReasonRequired
		}
	default:
		return DecisionResult{}, sensitiverequesterrors.ErrInvalidAction
	}

	approverUUID, err := uuid.Parse(approverID)
	if err != nil {
		return DecisionResult{}, sensitiverequesterrors.ErrNotPermitted
	}
	if _, err := uuid.Parse(groupID); err != nil {
		return DecisionResult{}, sensitiverequesterrors.ErrRequestNotFound
	}

	group, err := s.repo.FindGroupByID(ctx, groupID)
	if err != nil {
		return DecisionResult{}, mapRepositoryError(err)
	}
	subjectID := group.EmployeeID.String()

	decision, err := s.authority.Evaluate(ctx, approverID, subjectID)
	if err != nil {
		s.logger.Error("authority evaluation failed", zap.String("group_id", groupID), zap.Error(err))
		return DecisionResult{}, err
	}
	if !decision.Allowed {
		s.metrics.IncrementDecision(action, "forbidden")
		s.logger.Warn("sensitive request decision forbidden",
			zap.String("group_id", groupID),
			zap.String("approver_id", approverID),
			zap.String("reason", decision.Reason),
		)
		return DecisionResult{}, sensitiverequesterrors.ErrNotPermitted.WithDetails(map[string]any{
			"reason":                    decision.Reason,
			"suggested_approver":        decision.SuggestedApprover,
			"requires_higher_authority": decision.RequiresHigherAuthority,
			"is_self_request":           decision.IsSelfRequest,
		})
	}
	if group.Status != StatusAwaitingApproval {
		s.metrics.IncrementDecision(action, "conflict")
		return DecisionResult{}, conflictFor(group.Status)
	}

	stamp := &DecisionStamp{
		ApproverID: approverUUID,
		DecidedAt:  s.now().UTC(),
		Reason:     reason,
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("decide begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return DecisionResult{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	won, err := qtx.TransitionGroup(ctx, groupID, StatusAwaitingApproval, target, stamp)
	if err != nil {
		return DecisionResult{}, err
	}
	if !won {
		s.metrics.IncrementDecision(action, "conflict")
		s.logger.Warn("sensitive request decided concurrently", zap.String("group_id", groupID))
		if latest, err := qtx.FindGroupByID(ctx, groupID); err == nil {
			return DecisionResult{}, conflictFor(latest.Status)
		}
		return DecisionResult{}, sensitiverequesterrors.ErrNotAwaitingApproval
	}

	if err := qtx.UpdateProposalsStatus(ctx, groupID, StatusAwaitingApproval, target, stamp); err != nil {
		return DecisionResult{}, err
	}

	if target == StatusApproved {
		values := make(map[string]string, len(group.Proposals))
		for _, p := range group.Proposals {
			values[p.FieldName] = p.NewValue
		}
		if err := s.employees.WithTx(tx).UpdateSensitiveFields(ctx, subjectID, values); err != nil {
			s.logger.Error("apply sensitive fields failed", zap.String("employee_id", subjectID), zap.Error(err))
			return DecisionResult{}, mapEmployeeError(err)
		}
	}

	if _, err := s.store.AppendTx(ctx, tx, subjectID, eventType,
		eventstore.SensitiveDecisionPayload{
			GroupID:   groupID,
			Changes:   proposalDiffs(group.Proposals),
			DecidedBy: approverID,
			Reason:    reason,
			DecidedAt: stamp.DecidedAt,
		}, approverID); err != nil {
		s.logger.Error("decide append event failed", zap.String("employee_id", subjectID), zap.Error(err))
		return DecisionResult{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("commit failed", zap.String("request_id", rid), zap.Error(err))
		return DecisionResult{}, err
	}

	s.metrics.IncrementDecision(action, "success")
	s.invalidateProfile(ctx, subjectID)

	verb := strings.ToLower(target)
	s.logger.Info("sensitive request decided",
		zap.String("request_id", rid),
		zap.String("group_id", groupID),
		zap.String("employee_id", subjectID),
		zap.String("approver_id", approverID),
		zap.String("status", target),
	)
	return DecisionResult{
		Success: true,
		Message: fmt.Sprintf("Request has been %s successfully", verb),
	}, nil
}

func (s *service) List(ctx context.Context, viewerID string, filter ListFilter) (ListResult, error) {
	q, page, pageSize, err := normalizeFilter(filter)
	if err != nil {
		return ListResult{}, err
	}

	groups, total, err := s.repo.ListGroups(ctx, q)
	if err != nil {
		s.logger.Error("list sensitive requests failed", zap.Error(err))
		return ListResult{}, err
	}
	counts, err := s.repo.CountByStatus(ctx)
	if err != nil {
		s.logger.Error("count sensitive requests failed", zap.Error(err))
		return ListResult{}, err
	}
	viewer, err := s.authority.Viewer(ctx, viewerID)
	if err != nil {
		return ListResult{}, err
	}

	decisions := make(map[string]approval.Decision)
	data := make([]GroupResponse, 0, len(groups))
	for _, g := range groups {
		subjectID := g.EmployeeID.String()
		d, ok := decisions[subjectID]
		if !ok {
			d, err = s.authority.Evaluate(ctx, viewerID, subjectID)
			if err != nil {
				return ListResult{}, err
			}
			decisions[subjectID] = d
		}

		resp := mapToGroupResponse(g, true)
		resp.Permission = mapToPermission(d, g.Status)
		data = append(data, resp)
	}

	stats := StatsResponse{
		Pending:  counts[StatusAwaitingApproval],
		Approved: counts[StatusApproved],
		Rejected: counts[StatusRejected],
	}
	stats.All = stats.Pending + stats.Approved + stats.Rejected

	// pembulatan ke atas
	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))

	return ListResult{
		Data:            data,
		TotalCount:      total,
		Page:            page,
		PageSize:        pageSize,
		TotalPages:      totalPages,
		Stats:           stats,
		CurrentUserAuth: viewer,
	}, nil
}

func (s *service) Get(ctx context.Context, viewerID, groupID string) (GroupResponse, error) {
	if _, err := uuid.Parse(groupID); err != nil {
		return GroupResponse{}, sensitiverequesterrors.ErrRequestNotFound
	}
	group, err := s.repo.FindGroupByID(ctx, groupID)
	if err != nil {
		return GroupResponse{}, mapRepositoryError(err)
	}
	if group.Status == StatusAwaitingOtp {
		return GroupResponse{}, sensitiverequesterrors.ErrRequestNotFound
	}

	d, err := s.authority.Evaluate(ctx, viewerID, group.EmployeeID.String())
	if err != nil {
		return GroupResponse{}, err
	}

	resp := mapToGroupResponse(*group, false)
	resp.Permission = mapToPermission(d, group.Status)
	return resp, nil
}

// PendingRequest returns the employee's newest group awaiting approval,
// or nil.
func (s *service) PendingRequest(ctx context.Context, employeeID string) (*employee.PendingRequest, error) {
	g, err := s.repo.LatestGroupWithStatus(ctx, employeeID, StatusAwaitingApproval)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &employee.PendingRequest{
		RequestID: g.ID.String(),
		Status:    g.Status,
		CreatedAt: g.RequestedAt,
	}, nil
}

func (s *service) invalidateProfile(ctx context.Context, employeeID string) {
	if s.rdb == nil {
		return
	}
	key := employee.ProfileCacheKey(employeeID)
	if err := s.rdb.Del(ctx, key).Err(); err != nil {
		s.logger.Error("failed to invalidate profile cache", zap.String("key", key), zap.Error(err))
	}
}

func normalizeFilter(f ListFilter) (ListQuery, int, int, error) {
	page := f.Page
	if page < 1 {
		page = 1
	}
	pageSize := f.PageSize
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	var status string
	switch strings.ToUpper(strings.TrimSpace(f.Status)) {
	case "", "ALL":
	case "PENDING", StatusAwaitingApproval:
		status = StatusAwaitingApproval
	case StatusApproved:
		status = StatusApproved
	case StatusRejected:
		status = StatusRejected
	default:
		return ListQuery{}, 0, 0, sensitiverequesterrors.ErrInvalidStatusFilter
	}

	return ListQuery{
		Status: status,
		Search: strings.TrimSpace(f.Search),
		Offset: (page - 1) * pageSize,
		Limit:  pageSize,
	}, page, pageSize, nil
}
