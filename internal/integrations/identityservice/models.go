package identityservice

// Role of a staff account in the wider suite
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleTechnician Role = "technician"
	RoleClient     Role = "client"
)

// Staff account record from the identity service
type Staff struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Role     Role   `json:"role"`
	ClientID *int64 `json:"client_id,omitempty"` // set for client-role accounts
	IsActive bool   `json:"is_active"`
}

// IsAdmin reports whether the account has admin rights
func (s *Staff) IsAdmin() bool {
	return s.Role == RoleAdmin
}

// ErrorResponse error payload from the identity service
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
