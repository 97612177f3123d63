package sensitiverequest

import (
	"go-hrm/internal/approval"
	"time"
)

type SubmitRequest struct {
	IDNumber    string `json:"idNumber"`
	BankAccount string `json:"bankAccount"`
}

type SubmitResult struct {
	RequestGroupID   string `json:"requestGroupId"`
	Message          string `json:"message"`
	ExpiresInSeconds int    `json:"expiresInSeconds"`
}

type VerifyRequest struct {
	RequestID string `json:"requestId" binding:"required"`
	OtpCode   string `json:"otpCode" binding:"required"`
}

type VerifyResult struct {
	Success bool   `json:"success"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

type DecisionRequest struct {
	Reason string `json:"reason"`
}

type DecisionResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type ListFilter struct {
	Status   string `form:"status"`
	Page     int    `form:"page"`
	PageSize int    `form:"pageSize"`
	Search   string `form:"search"`
}

// ListQuery is the normalized form handed to the repository.
type ListQuery struct {
	Status string
	Search string
	Offset int
	Limit  int
}

type FieldChangeResponse struct {
	ChangeID    string `json:"changeId"`
	FieldName   string `json:"fieldName"`
	DisplayName string `json:"displayName"`
	OldValue    string `json:"oldValue"`
	NewValue    string `json:"newValue"`
}

type PermissionResponse struct {
	CanApprove              bool   `json:"canApprove"`
	CanReject               bool   `json:"canReject"`
	Reason                  string `json:"reason,omitempty"`
	IsSelfRequest           bool   `json:"isSelfRequest"`
	RequiresHigherAuthority bool   `json:"requiresHigherAuthority"`
	SuggestedApprover       string `json:"suggestedApprover,omitempty"`
}

type GroupResponse struct {
	RequestGroupID string                `json:"requestGroupId"`
	EmployeeID     string                `json:"employeeId"`
	EmployeeName   string                `json:"employeeName"`
	EmployeeEmail  string                `json:"employeeEmail"`
	Status         string                `json:"status"`
	RequestedAt    time.Time             `json:"requestedDate"`
	ApproverName   *string               `json:"approverName"`
	DecidedAt      *time.Time            `json:"approvalDate"`
	Reason         string                `json:"reason,omitempty"`
	Changes        []FieldChangeResponse `json:"changes"`
	Permission     *PermissionResponse   `json:"permission,omitempty"`
}

type StatsResponse struct {
	All      int64 `json:"all"`
	Pending  int64 `json:"pending"`
	Approved int64 `json:"approved"`
	Rejected int64 `json:"rejected"`
}

type ListResult struct {
	Data            []GroupResponse     `json:"data"`
	TotalCount      int64               `json:"totalCount"`
	Page            int                 `json:"page"`
	PageSize        int                 `json:"pageSize"`
	TotalPages      int                 `json:"totalPages"`
	Stats           StatsResponse       `json:"stats"`
	CurrentUserAuth approval.ViewerInfo `json:"currentUserAuth"`
}
