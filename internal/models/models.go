package models

type APIResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   interface{} `json:"error,omitempty"`
}

type Role string

const (
	RoleStudent    Role = "Student"
	RoleCollege    Role = "College"
	RoleMentor     Role = "Mentor"
	RoleMSME       Role = "MSME"
	RoleGovernment Role = "Government"
)

// Roles lists every role in the order the login form offers them.
var Roles = []Role{RoleStudent, RoleCollege, RoleMentor, RoleMSME, RoleGovernment}

// Valid reports whether r is one of the fixed roles.
func (r Role) Valid() bool {
	for _, known := range Roles {
		if r == known {
			return true
		}
	}
	return false
}
