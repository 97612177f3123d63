package approval

// Authority tiers. Roles without a configured level sit at LevelNone.
const (
	LevelNone       = 0
	LevelStandard   = 1
	LevelHREmployee = 2
	LevelHRManager  = 3
	LevelAdmin      = 4
)

// MinReviewerLevel is the lowest tier allowed to see and act on requests.
const MinReviewerLevel = LevelHREmployee

type Decision struct {
	Allowed                 bool   `json:"can_approve"`
	Reason                  string `json:"reason,omitempty"`
	SuggestedApprover       string `json:"suggested_approver,omitempty"`
	RequiresHigherAuthority bool   `json:"requires_higher_authority"`
	IsSelfRequest           bool   `json:"is_self_request"`
	ApproverLevel           int    `json:"approver_level"`
	SubjectLevel            int    `json:"subject_level"`
}

// Decide is the approval truth table over (approver tier, subject tier,
// self request). It is total: every input yields exactly one outcome.
func Decide(approverLevel, subjectLevel int, isSelf bool) Decision {
	d := Decision{
		IsSelfRequest: isSelf,
		ApproverLevel: approverLevel,
		SubjectLevel:  subjectLevel,
	}

	if isSelf {
		d.Reason = "You cannot approve your own request (conflict of interest)"
		d.RequiresHigherAuthority = true
		d.SuggestedApprover = "Admin"
		return d
	}

	switch {
	case approverLevel >= LevelAdmin:
		d.Allowed = true
		d.Reason = "Admin has full approval authority"

	case approverLevel == LevelHRManager:
		switch {
		case subjectLevel <= LevelHREmployee:
			d.Allowed = true
			d.Reason = "HR Manager can approve this request"
		case subjectLevel == LevelHRManager:
			d.Reason = "HR Manager requests must be approved by Admin"
			d.RequiresHigherAuthority = true
			d.SuggestedApprover = "Admin"
		default:
			d.Reason = "HR Manager cannot approve Admin requests"
			d.RequiresHigherAuthority = true
			d.SuggestedApprover = "Another Admin"
		}

	case approverLevel == LevelHREmployee:
		if subjectLevel == LevelStandard {
			d.Allowed = true
			d.Reason = "HR Employee can approve standard employee requests"
			break
		}
		if subjectLevel >= LevelHRManager {
			d.Reason = "Manager and above requests must be approved by HR Manager or Admin"
		} else {
			d.Reason = "HR Employee requests must be approved by HR Manager or Admin"
		}
		d.RequiresHigherAuthority = true
		d.SuggestedApprover = "HR Manager or Admin"

	default:
		d.Reason = "Insufficient permissions to approve requests"
	}

	return d
}
