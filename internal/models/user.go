package models

// Role distinguishes the mentor (TEACHER) from subscribers (STUDENT).
type Role string

const (
	RoleStudent Role = "STUDENT"
	RoleTeacher Role = "TEACHER"
)

// User is the current session identity, supplied by the login gate and
// read-only everywhere else.
type User struct {
	ID          string `json:"id"`
	Role        Role   `json:"role"`
	DisplayName string `json:"display_name"`
}

// IsTeacher reports whether the user may publish or resolve signals and
// post trade ideas.
func (u *User) IsTeacher() bool {
	return u != nil && u.Role == RoleTeacher
}
