package domain

const (
	RoleAdm    = "Adm"
	RoleEditor = "Editor"
)

// Administrator is a user allowed to log in and manage the vehicle registry.
type Administrator struct {
	ID           int64
	Email        string
	PasswordHash string
	Role         string
}

// ValidRole reports whether role is one of the known authorization roles.
func ValidRole(role string) bool {
	return role == RoleAdm || role == RoleEditor
}
