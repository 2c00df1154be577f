package domain

type Role string

const (
	RoleReader Role = "Reader"
	RoleWriter Role = "Writer"
)

// HasRole reports whether roles contains want. Roles are not hierarchical.
func HasRole(roles []string, want Role) bool {
	for _, r := range roles {
		if r == string(want) {
			return true
		}
	}
	return false
}
