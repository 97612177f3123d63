package domain

// EnforceRequest asks whether an employee holds resource:action. The
// employee always comes from the auth context, never from the body.
type EnforceRequest struct {
	EmployeeID string `json:"employee_id"`
	Resource   string `json:"resource"`
	Action     string `json:"action"`
}

type EnforceResponse struct {
	Resource string `json:"resource"`
	Action   string `json:"action"`
	Allowed  bool   `json:"allowed"`
}

type PermissionResponse struct {
	Resource string `json:"resource"`
	Action   string `json:"action"`
}

// MyPermissionsResponse lists the caller's roles and the resource:action
// pairs those roles grant.
type MyPermissionsResponse struct {
	EmployeeID  string               `json:"employee_id"`
	Roles       []string             `json:"roles"`
	Permissions []PermissionResponse `json:"permissions"`
}
