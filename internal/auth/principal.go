package auth

type Role string

const (
	RoleEmployee Role = "employee"
	RoleAdmin    Role = "admin"
)

// Principal é quem fez a requisição, extraído do token.
type Principal struct {
	Subject string `json:"sub"`
	Role    Role   `json:"role"`
	Team    string `json:"team,omitempty"`
	Name    string `json:"name,omitempty"`
}

func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}
