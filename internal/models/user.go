package models

// RoleAdmin is the privileged role tag; registration decisions are
// restricted to it.
const RoleAdmin = "admin"

type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Avatar string `json:"avatar,omitempty"`
}

// IsAdmin reports whether the user may decide pending registrations.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
