package sensitiverequest

import (
	"go-hrm/internal/approval"
	"go-hrm/internal/eventstore"
	"go-hrm/internal/shared/mask"
)

var displayNames = map[string]string{
	eventstore.FieldTaxID:             "Tax ID / CCCD",
	eventstore.FieldBankAccountNumber: "Bank Account",
}

func displayName(field string) string {
	if name, ok := displayNames[field]; ok {
		return name
	}
	return field
}

func mapToGroupResponse(g RequestGroup, maskOld bool) GroupResponse {
	resp := GroupResponse{
		RequestGroupID: g.ID.String(),
		EmployeeID:     g.EmployeeID.String(),
		EmployeeName:   "Unknown",
		Status:         g.Status,
		RequestedAt:    g.RequestedAt,
		DecidedAt:      g.DecidedAt,
		Reason:         g.DecisionReason,
		Changes:        make([]FieldChangeResponse, 0, len(g.Proposals)),
	}
	if g.Employee != nil {
		resp.EmployeeName = g.Employee.FullName
		resp.EmployeeEmail = g.Employee.Email
	}
	if g.Approver != nil {
		name := g.Approver.FullName
		resp.ApproverName = &name
	}

	for _, p := range g.Proposals {
		old := p.OldValue
		if maskOld {
			old = mask.Sensitive(old)
		}
		resp.Changes = append(resp.Changes, FieldChangeResponse{
			ChangeID:    p.ID.String(),
			FieldName:   p.FieldName,
			DisplayName: displayName(p.FieldName),
			OldValue:    old,
			NewValue:    p.NewValue,
		})
	}
	return resp
}

// mapToPermission is a preview only; Decide re-checks authority.
func mapToPermission(d approval.Decision, status string) *PermissionResponse {
	actionable := d.Allowed && status == StatusAwaitingApproval
	return &PermissionResponse{
		CanApprove:              actionable,
		CanReject:               actionable,
		Reason:                  d.Reason,
		IsSelfRequest:           d.IsSelfRequest,
		RequiresHigherAuthority: d.RequiresHigherAuthority,
		SuggestedApprover:       d.SuggestedApprover,
	}
}

func proposalDiffs(proposals []ChangeProposal) map[string]eventstore.FieldDiff {
	changes := make(map[string]eventstore.FieldDiff, len(proposals))
	for _, p := range proposals {
		changes[p.FieldName] = eventstore.FieldDiff{Old: p.OldValue, New: p.NewValue}
	}
	return changes
}
