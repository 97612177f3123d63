package sensitiverequest_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"go-hrm/internal/approval"
	"go-hrm/internal/employee"
	employeeerrors "go-hrm/internal/employee/errors"
	"go-hrm/internal/eventstore"
	notificationmock "go-hrm/internal/notification/mock"
	"go-hrm/internal/otp"
	"go-hrm/internal/sensitiverequest"
	sensitiverequesterrors "go-hrm/internal/sensitiverequest/errors"
	"go-hrm/internal/shared/apperror"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

var (
	employee42 = uuid.MustParse("00000000-0000-0000-0000-000000000042")
	hrManager  = uuid.MustParse("00000000-0000-0000-0000-0000000000a3")
	hrStaff    = uuid.MustParse("00000000-0000-0000-0000-0000000000a2")
	hrStaff2   = uuid.MustParse("00000000-0000-0000-0000-0000000000b2")
	admin      = uuid.MustParse("00000000-0000-0000-0000-0000000000a4")

	// 0x0001E240 == 123456
	fixedCodeBytes = repeatReader{0x00, 0x01, 0xE2, 0x40}
)

type workflowDeps struct {
	sqlMock    sqlmock.Sqlmock
	service    sensitiverequest.Service
	repo       *memoryRepo
	employees  *memoryEmployees
	store      *recordingStore
	challenges *memoryChallenges
	mailer     *notificationmock.MockEmailSender
	clock      *fakeClock
}

func setupWorkflowTest(t *testing.T) *workflowDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	ctrl := gomock.NewController(t)
	clock := &fakeClock{t: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)}

	repo := newMemoryRepo()
	people := []employee.Employee{
		{ID: employee42, FullName: "Nguyen Van A", Email: "a@example.com", TaxID: "079201000111", BankAccountNumber: "OLD-BANK-9876"},
		{ID: hrManager, FullName: "Tran HR Manager", Email: "mgr@example.com"},
		{ID: hrStaff, FullName: "Le HR Staff", Email: "staff@example.com", BankAccountNumber: "STAFF-1111"},
		{ID: hrStaff2, FullName: "Pham HR Staff", Email: "staff2@example.com"},
		{ID: admin, FullName: "Do Admin", Email: "admin@example.com"},
	}
	for _, p := range people {
		repo.people[p.ID] = sensitiverequest.Person{ID: p.ID, FullName: p.FullName, Email: p.Email}
	}

	roles := fakeRoles{
		employee42.String(): {"IT Employee"},
		hrManager.String():  {"HR Manager"},
		hrStaff.String():    {"HR Employee"},
		hrStaff2.String():   {"HR Employee"},
		admin.String():      {"Admin"},
	}

	deps := &workflowDeps{
		sqlMock:    sqlMock,
		repo:       repo,
		employees:  newMemoryEmployees(people...),
		store:      newRecordingStore(),
		challenges: newMemoryChallenges(),
		mailer:     notificationmock.NewMockEmailSender(ctrl),
		clock:      clock,
	}
	deps.service = sensitiverequest.NewService(
		db,
		repo,
		deps.employees,
		deps.store,
		approval.NewAuthority(approval.DefaultPolicy(), roles, zap.NewNop()),
		deps.challenges,
		otp.NewService(otp.WithClock(clock.Now), otp.WithRandom(fixedCodeBytes)),
		deps.mailer,
		sensitiverequest.WithLogger(zap.NewNop()),
		sensitiverequest.WithClock(clock.Now),
	)
	return deps
}

func expectTx(m sqlmock.Sqlmock) {
	m.ExpectBegin()
	m.ExpectCommit()
}

func (d *workflowDeps) submit(t *testing.T, employeeID uuid.UUID, req sensitiverequest.SubmitRequest) sensitiverequest.SubmitResult {
	t.Helper()
	expectTx(d.sqlMock)
	d.mailer.EXPECT().SendOtpEmail(gomock.Any(), gomock.Any(), "123456").Return(true, nil)

	res, err := d.service.Submit(context.Background(), employeeID.String(), req)
	require.NoError(t, err)
	return res
}

func (d *workflowDeps) verify(t *testing.T, employeeID uuid.UUID, groupID string) {
	t.Helper()
	expectTx(d.sqlMock)

	res, err := d.service.Verify(context.Background(), employeeID.String(), sensitiverequest.VerifyRequest{
		RequestID: groupID,
		OtpCode:   "123456",
	})
	require.NoError(t, err)
	require.True(t, res.Success)
}

func TestSubmit_Validation(t *testing.T) {
	t.Run("no fields supplied", func(t *testing.T) {
		d := setupWorkflowTest(t)

		_, err := d.service.Submit(context.Background(), employee42.String(), sensitiverequest.SubmitRequest{IDNumber: "  "})

		assert.ErrorIs(t, err, sensitiverequesterrors.ErrNoFieldsSupplied)
		assert.Equal(t, apperror.CodeInvalidInput, apperror.ToHTTP(err).Code)
	})

	t.Run("unknown employee", func(t *testing.T) {
		d := setupWorkflowTest(t)

		_, err := d.service.Submit(context.Background(), uuid.NewString(), sensitiverequest.SubmitRequest{BankAccount: "X"})

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})

	t.Run("values equal to current are not changes", func(t *testing.T) {
		d := setupWorkflowTest(t)

		_, err := d.service.Submit(context.Background(), employee42.String(), sensitiverequest.SubmitRequest{
			IDNumber:    "079201000111",
			BankAccount: "OLD-BANK-9876",
		})

		assert.ErrorIs(t, err, sensitiverequesterrors.ErrNoChanges)
		assert.Equal(t, 0, d.repo.size())
	})
}

func TestSubmit_SkipsUnchangedField(t *testing.T) {
	d := setupWorkflowTest(t)

	res := d.submit(t, employee42, sensitiverequest.SubmitRequest{
		IDNumber:    "079201000111",
		BankAccount: "VN001",
	})

	g := d.repo.group(res.RequestGroupID)
	require.Len(t, g.Proposals, 1)
	assert.Equal(t, eventstore.FieldBankAccountNumber, g.Proposals[0].FieldName)
	assert.Equal(t, "OLD-BANK-9876", g.Proposals[0].OldValue)
	assert.Equal(t, sensitiverequest.StatusAwaitingOtp, g.Status)
	assert.NoError(t, d.sqlMock.ExpectationsWereMet())
}

func TestSubmit_EmailFailureKeepsChallenge(t *testing.T) {
	d := setupWorkflowTest(t)
	expectTx(d.sqlMock)
	d.mailer.EXPECT().SendOtpEmail(gomock.Any(), "a@example.com", "123456").Return(false, errors.New("smtp down"))

	res, err := d.service.Submit(context.Background(), employee42.String(), sensitiverequest.SubmitRequest{BankAccount: "VN001"})

	require.NoError(t, err)
	c, _ := d.challenges.Get(context.Background(), employee42.String())
	require.NotNil(t, c)
	assert.Equal(t, res.RequestGroupID, c.GroupID)
}

func TestSubmit_ChallengeFailureRollsBackGroup(t *testing.T) {
	d := setupWorkflowTest(t)
	d.challenges.issueErr = errors.New("redis down")
	d.sqlMock.ExpectBegin()
	d.sqlMock.ExpectRollback()

	_, err := d.service.Submit(context.Background(), employee42.String(), sensitiverequest.SubmitRequest{BankAccount: "VN001"})

	require.Error(t, err)
	assert.NoError(t, d.sqlMock.ExpectationsWereMet())
	c, _ := d.challenges.Get(context.Background(), employee42.String())
	assert.Nil(t, c)
}

func TestSubmit_CommitFailureDiscardsChallenge(t *testing.T) {
	d := setupWorkflowTest(t)
	d.sqlMock.ExpectBegin()
	d.sqlMock.ExpectCommit().WillReturnError(errors.New("connection reset"))

	_, err := d.service.Submit(context.Background(), employee42.String(), sensitiverequest.SubmitRequest{BankAccount: "VN001"})

	require.Error(t, err)
	c, _ := d.challenges.Get(context.Background(), employee42.String())
	assert.Nil(t, c)
}

func TestWorkflow_Employee42EndToEnd(t *testing.T) {
	d := setupWorkflowTest(t)
	d.store.seed(employee42.String(), 3)

	res := d.submit(t, employee42, sensitiverequest.SubmitRequest{BankAccount: "VN001"})

	assert.Equal(t, "OTP sent to your email", res.Message)
	assert.Equal(t, 300, res.ExpiresInSeconds)
	c, _ := d.challenges.Get(context.Background(), employee42.String())
	require.NotNil(t, c)
	assert.Equal(t, "123456", c.Code)
	assert.Equal(t, d.clock.Now().Add(300*time.Second), c.ExpiresAt)

	d.clock.Advance(2 * time.Minute)
	d.verify(t, employee42, res.RequestGroupID)

	g := d.repo.group(res.RequestGroupID)
	assert.Equal(t, sensitiverequest.StatusAwaitingApproval, g.Status)
	assert.Equal(t, sensitiverequest.StatusAwaitingApproval, g.Proposals[0].Status)
	requested := d.store.ofType(eventstore.EventSensitiveInfoRequested)
	require.Len(t, requested, 1)
	assert.Equal(t, int64(4), requested[0].Sequence)

	priorHighest := d.store.highest(employee42.String())
	expectTx(d.sqlMock)
	decision, err := d.service.Decide(context.Background(), hrManager.String(), res.RequestGroupID, sensitiverequest.ActionApprove, "")

	require.NoError(t, err)
	assert.True(t, decision.Success)
	assert.Equal(t, "Request has been approved successfully", decision.Message)
	assert.Equal(t, "VN001", d.employees.get(employee42.String()).BankAccountNumber)

	approved := d.store.ofType(eventstore.EventSensitiveInfoApproved)
	require.Len(t, approved, 1)
	assert.Equal(t, priorHighest+1, approved[0].Sequence)
	assert.Equal(t, hrManager.String(), approved[0].ActorID)
	payload := approved[0].Payload.(eventstore.SensitiveDecisionPayload)
	assert.Equal(t, eventstore.FieldDiff{Old: "OLD-BANK-9876", New: "VN001"}, payload.Changes[eventstore.FieldBankAccountNumber])
	assert.NoError(t, d.sqlMock.ExpectationsWereMet())
}

func TestVerify_SingleUse(t *testing.T) {
	d := setupWorkflowTest(t)
	res := d.submit(t, employee42, sensitiverequest.SubmitRequest{BankAccount: "VN001"})
	d.verify(t, employee42, res.RequestGroupID)

	_, err := d.service.Verify(context.Background(), employee42.String(), sensitiverequest.VerifyRequest{
		RequestID: res.RequestGroupID,
		OtpCode:   "123456",
	})

	assert.ErrorIs(t, err, sensitiverequesterrors.ErrOtpNotFound)
	assert.Equal(t, apperror.CodeInvalidOtp, apperror.ToHTTP(err).Code)
	assert.Len(t, d.store.ofType(eventstore.EventSensitiveInfoRequested), 1)
}

func TestVerify_Expired(t *testing.T) {
	d := setupWorkflowTest(t)
	res := d.submit(t, employee42, sensitiverequest.SubmitRequest{BankAccount: "VN001"})
	d.clock.Advance(301 * time.Second)

	_, err := d.service.Verify(context.Background(), employee42.String(), sensitiverequest.VerifyRequest{
		RequestID: res.RequestGroupID,
		OtpCode:   "123456",
	})

	assert.ErrorIs(t, err, sensitiverequesterrors.ErrInvalidOtp)
	assert.Equal(t, sensitiverequest.StatusAwaitingOtp, d.repo.group(res.RequestGroupID).Status)
}

func TestVerify_WrongCode(t *testing.T) {
	d := setupWorkflowTest(t)
	res := d.submit(t, employee42, sensitiverequest.SubmitRequest{BankAccount: "VN001"})

	_, err := d.service.Verify(context.Background(), employee42.String(), sensitiverequest.VerifyRequest{
		RequestID: res.RequestGroupID,
		OtpCode:   "654321",
	})

	assert.ErrorIs(t, err, sensitiverequesterrors.ErrInvalidOtp)

	// kode yang benar masih bisa dipakai
	d.verify(t, employee42, res.RequestGroupID)
}

func TestSubmit_ResubmitInvalidatesPreviousChallenge(t *testing.T) {
	d := setupWorkflowTest(t)
	first := d.submit(t, employee42, sensitiverequest.SubmitRequest{BankAccount: "VN001"})
	second := d.submit(t, employee42, sensitiverequest.SubmitRequest{BankAccount: "VN002"})

	assert.Equal(t, 1, d.repo.size())

	_, err := d.service.Verify(context.Background(), employee42.String(), sensitiverequest.VerifyRequest{
		RequestID: first.RequestGroupID,
		OtpCode:   "123456",
	})
	assert.ErrorIs(t, err, sensitiverequesterrors.ErrOtpNotFound)

	d.verify(t, employee42, second.RequestGroupID)
}

func TestDecide_GroupAtomicity(t *testing.T) {
	d := setupWorkflowTest(t)
	res := d.submit(t, employee42, sensitiverequest.SubmitRequest{IDNumber: "X", BankAccount: "Y"})
	d.verify(t, employee42, res.RequestGroupID)

	expectTx(d.sqlMock)
	_, err := d.service.Decide(context.Background(), admin.String(), res.RequestGroupID, sensitiverequest.ActionApprove, "ok")
	require.NoError(t, err)

	g := d.repo.group(res.RequestGroupID)
	require.Len(t, g.Proposals, 2)
	for _, p := range g.Proposals {
		assert.Equal(t, sensitiverequest.StatusApproved, p.Status, p.FieldName)
		require.NotNil(t, p.ApproverID)
		assert.Equal(t, admin, *p.ApproverID)
	}
	empl := d.employees.get(employee42.String())
	assert.Equal(t, "X", empl.TaxID)
	assert.Equal(t, "Y", empl.BankAccountNumber)
	assert.Len(t, d.store.ofType(eventstore.EventSensitiveInfoApproved), 1)
}

func TestDecide_Reject(t *testing.T) {
	d := setupWorkflowTest(t)
	res := d.submit(t, employee42, sensitiverequest.SubmitRequest{BankAccount: "VN001"})
	d.verify(t, employee42, res.RequestGroupID)

	_, err := d.service.Decide(context.Background(), hrManager.String(), res.RequestGroupID, sensitiverequest.ActionReject, "  ")
	assert.ErrorIs(t, err, sensitiverequesterrors.ErrReasonRequired)

	expectTx(d.sqlMock)
	out, err := d.service.Decide(context.Background(), hrManager.String(), res.RequestGroupID, sensitiverequest.ActionReject, "document unreadable")

	require.NoError(t, err)
	assert.Equal(t, "Request has been rejected successfully", out.Message)
	assert.Equal(t, "OLD-BANK-9876", d.employees.get(employee42.String()).BankAccountNumber)
	g := d.repo.group(res.RequestGroupID)
	assert.Equal(t, sensitiverequest.StatusRejected, g.Status)
	assert.Equal(t, "document unreadable", g.DecisionReason)
	rejected := d.store.ofType(eventstore.EventSensitiveInfoRejected)
	require.Len(t, rejected, 1)
	assert.Equal(t, "document unreadable", rejected[0].Payload.(eventstore.SensitiveDecisionPayload).Reason)
}

func TestDecide_Authority(t *testing.T) {
	t.Run("self approval is forbidden with a suggestion", func(t *testing.T) {
		d := setupWorkflowTest(t)
		res := d.submit(t, hrManager, sensitiverequest.SubmitRequest{BankAccount: "MGR-1"})
		d.verify(t, hrManager, res.RequestGroupID)

		_, err := d.service.Decide(context.Background(), hrManager.String(), res.RequestGroupID, sensitiverequest.ActionApprove, "")

		require.ErrorIs(t, err, sensitiverequesterrors.ErrNotPermitted)
		details := apperror.ToHTTP(err).Details.(map[string]any)
		assert.Equal(t, "You cannot approve your own request (conflict of interest)", details["reason"])
		assert.Equal(t, "Contact system administrator", details["suggested_approver"])
		assert.Equal(t, true, details["is_self_request"])
		assert.Equal(t, sensitiverequest.StatusAwaitingApproval, d.repo.group(res.RequestGroupID).Status)
	})

	t.Run("hr employee cannot approve hr employee", func(t *testing.T) {
		d := setupWorkflowTest(t)
		res := d.submit(t, hrStaff, sensitiverequest.SubmitRequest{BankAccount: "STAFF-2222"})
		d.verify(t, hrStaff, res.RequestGroupID)

		_, err := d.service.Decide(context.Background(), hrStaff2.String(), res.RequestGroupID, sensitiverequest.ActionApprove, "")

		require.ErrorIs(t, err, sensitiverequesterrors.ErrNotPermitted)
		details := apperror.ToHTTP(err).Details.(map[string]any)
		assert.Equal(t, "HR Manager or Admin", details["suggested_approver"])
		assert.Equal(t, "STAFF-1111", d.employees.get(hrStaff.String()).BankAccountNumber)
	})

	t.Run("hr employee approves standard employee", func(t *testing.T) {
		d := setupWorkflowTest(t)
		res := d.submit(t, employee42, sensitiverequest.SubmitRequest{BankAccount: "VN001"})
		d.verify(t, employee42, res.RequestGroupID)
		expectTx(d.sqlMock)

		_, err := d.service.Decide(context.Background(), hrStaff.String(), res.RequestGroupID, sensitiverequest.ActionApprove, "")

		require.NoError(t, err)
	})
}

func TestDecide_StateChecks(t *testing.T) {
	t.Run("already decided", func(t *testing.T) {
		d := setupWorkflowTest(t)
		res := d.submit(t, employee42, sensitiverequest.SubmitRequest{BankAccount: "VN001"})
		d.verify(t, employee42, res.RequestGroupID)
		expectTx(d.sqlMock)
		_, err := d.service.Decide(context.Background(), admin.String(), res.RequestGroupID, sensitiverequest.ActionApprove, "")
		require.NoError(t, err)

		_, err = d.service.Decide(context.Background(), admin.String(), res.RequestGroupID, sensitiverequest.ActionReject, "late")

		assert.ErrorIs(t, err, sensitiverequesterrors.ErrAlreadyApproved)
		assert.Equal(t, apperror.CodeConflict, apperror.ToHTTP(err).Code)
	})

	t.Run("otp not verified yet", func(t *testing.T) {
		d := setupWorkflowTest(t)
		res := d.submit(t, employee42, sensitiverequest.SubmitRequest{BankAccount: "VN001"})

		_, err := d.service.Decide(context.Background(), admin.String(), res.RequestGroupID, sensitiverequest.ActionApprove, "")

		assert.ErrorIs(t, err, sensitiverequesterrors.ErrNotAwaitingApproval)
		assert.Equal(t, apperror.CodeConflict, apperror.ToHTTP(err).Code)

		group, err := d.repo.FindGroupByID(context.Background(), res.RequestGroupID)
		require.NoError(t, err)
		assert.Equal(t, sensitiverequest.StatusAwaitingOtp, group.Status)
	})

	t.Run("unknown group", func(t *testing.T) {
		d := setupWorkflowTest(t)

		_, err := d.service.Decide(context.Background(), admin.String(), uuid.NewString(), sensitiverequest.ActionApprove, "")

		assert.ErrorIs(t, err, sensitiverequesterrors.ErrRequestNotFound)
	})

	t.Run("unknown action", func(t *testing.T) {
		d := setupWorkflowTest(t)

		_, err := d.service.Decide(context.Background(), admin.String(), uuid.NewString(), "escalate", "")

		assert.ErrorIs(t, err, sensitiverequesterrors.ErrInvalidAction)
	})
}

func TestDecide_ConcurrentFirstWriterWins(t *testing.T) {
	d := setupWorkflowTest(t)
	res := d.submit(t, employee42, sensitiverequest.SubmitRequest{BankAccount: "VN001"})
	d.verify(t, employee42, res.RequestGroupID)

	d.sqlMock.MatchExpectationsInOrder(false)
	d.sqlMock.ExpectBegin()
	d.sqlMock.ExpectBegin()
	d.sqlMock.ExpectCommit()
	d.sqlMock.ExpectRollback()

	approvers := []uuid.UUID{hrManager, admin}
	errs := make([]error, len(approvers))
	var wg sync.WaitGroup
	start := make(chan struct{})
	for i, approver := range approvers {
		wg.Add(1)
		go func(i int, approver uuid.UUID) {
			defer wg.Done()
			<-start
			_, errs[i] = d.service.Decide(context.Background(), approver.String(), res.RequestGroupID, sensitiverequest.ActionApprove, "")
		}(i, approver)
	}
	close(start)
	wg.Wait()

	var wins, conflicts int
	for _, err := range errs {
		switch {
		case err == nil:
			wins++
		case errors.Is(err, sensitiverequesterrors.ErrAlreadyApproved):
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, wins)
	assert.Equal(t, 1, conflicts)
	assert.Equal(t, 1, d.employees.writes)
	assert.Len(t, d.store.ofType(eventstore.EventSensitiveInfoApproved), 1)
}

func TestList(t *testing.T) {
	d := setupWorkflowTest(t)

	pending := d.submit(t, employee42, sensitiverequest.SubmitRequest{BankAccount: "VN001"})
	d.verify(t, employee42, pending.RequestGroupID)

	d.clock.Advance(time.Minute)
	own := d.submit(t, hrManager, sensitiverequest.SubmitRequest{IDNumber: "MGR-TAX-1"})
	d.verify(t, hrManager, own.RequestGroupID)

	d.clock.Advance(time.Minute)
	// belum diverifikasi, tidak boleh muncul
	d.submit(t, hrStaff, sensitiverequest.SubmitRequest{BankAccount: "STAFF-2"})

	out, err := d.service.List(context.Background(), hrManager.String(), sensitiverequest.ListFilter{})

	require.NoError(t, err)
	assert.Equal(t, int64(2), out.TotalCount)
	assert.Equal(t, 1, out.Page)
	assert.Equal(t, 10, out.PageSize)
	assert.Equal(t, 1, out.TotalPages)
	assert.Equal(t, sensitiverequest.StatsResponse{All: 2, Pending: 2}, out.Stats)
	assert.Equal(t, approval.ViewerInfo{
		EmployeeID:    hrManager.String(),
		Roles:         []string{"HR Manager"},
		Level:         approval.LevelHRManager,
		LevelName:     "HR Manager",
		CanApproveAny: true,
	}, out.CurrentUserAuth)

	require.Len(t, out.Data, 2)
	// terbaru lebih dulu
	assert.Equal(t, own.RequestGroupID, out.Data[0].RequestGroupID)
	assert.False(t, out.Data[0].Permission.CanApprove)
	assert.True(t, out.Data[0].Permission.IsSelfRequest)

	assert.Equal(t, pending.RequestGroupID, out.Data[1].RequestGroupID)
	assert.Equal(t, "Nguyen Van A", out.Data[1].EmployeeName)
	assert.True(t, out.Data[1].Permission.CanApprove)
	assert.True(t, out.Data[1].Permission.CanReject)
	require.Len(t, out.Data[1].Changes, 1)
	assert.Equal(t, "Bank Account", out.Data[1].Changes[0].DisplayName)
	assert.Equal(t, "*********9876", out.Data[1].Changes[0].OldValue)
	assert.Equal(t, "VN001", out.Data[1].Changes[0].NewValue)
}

func TestList_FilterAndPaging(t *testing.T) {
	d := setupWorkflowTest(t)
	res := d.submit(t, employee42, sensitiverequest.SubmitRequest{BankAccount: "VN001"})
	d.verify(t, employee42, res.RequestGroupID)
	expectTx(d.sqlMock)
	_, err := d.service.Decide(context.Background(), admin.String(), res.RequestGroupID, sensitiverequest.ActionApprove, "")
	require.NoError(t, err)

	out, err := d.service.List(context.Background(), admin.String(), sensitiverequest.ListFilter{Status: "pending"})
	require.NoError(t, err)
	assert.Empty(t, out.Data)
	assert.Equal(t, sensitiverequest.StatsResponse{All: 1, Approved: 1}, out.Stats)

	out, err = d.service.List(context.Background(), admin.String(), sensitiverequest.ListFilter{Status: "APPROVED", Search: "nguyen"})
	require.NoError(t, err)
	require.Len(t, out.Data, 1)
	assert.False(t, out.Data[0].Permission.CanApprove, "decided groups are not actionable")
	require.NotNil(t, out.Data[0].ApproverName)
	assert.Equal(t, "Do Admin", *out.Data[0].ApproverName)

	_, err = d.service.List(context.Background(), admin.String(), sensitiverequest.ListFilter{Status: "weird"})
	assert.ErrorIs(t, err, sensitiverequesterrors.ErrInvalidStatusFilter)
}

func TestGet_ShowsUnmaskedValues(t *testing.T) {
	d := setupWorkflowTest(t)
	res := d.submit(t, employee42, sensitiverequest.SubmitRequest{BankAccount: "VN001"})

	_, err := d.service.Get(context.Background(), admin.String(), res.RequestGroupID)
	assert.ErrorIs(t, err, sensitiverequesterrors.ErrRequestNotFound)

	d.verify(t, employee42, res.RequestGroupID)

	out, err := d.service.Get(context.Background(), admin.String(), res.RequestGroupID)
	require.NoError(t, err)
	assert.Equal(t, "OLD-BANK-9876", out.Changes[0].OldValue)
	assert.True(t, out.Permission.CanApprove)

	_, err = d.service.Get(context.Background(), admin.String(), "not-a-uuid")
	assert.ErrorIs(t, err, sensitiverequesterrors.ErrRequestNotFound)
}

func TestPendingRequest(t *testing.T) {
	d := setupWorkflowTest(t)

	got, err := d.service.PendingRequest(context.Background(), employee42.String())
	require.NoError(t, err)
	assert.Nil(t, got)

	res := d.submit(t, employee42, sensitiverequest.SubmitRequest{BankAccount: "VN001"})
	got, err = d.service.PendingRequest(context.Background(), employee42.String())
	require.NoError(t, err)
	assert.Nil(t, got, "unverified groups are not pending approval")

	d.verify(t, employee42, res.RequestGroupID)
	got, err = d.service.PendingRequest(context.Background(), employee42.String())
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, res.RequestGroupID, got.RequestID)
	assert.Equal(t, sensitiverequest.StatusAwaitingApproval, got.Status)
}
