package auth

// Role is the access level attached to an account.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleEditor Role = "editor"
	RoleViewer Role = "viewer"
)

// ValidRole reports whether r is a recognized role.
func ValidRole(r Role) bool {
	switch r {
	case RoleAdmin, RoleEditor, RoleViewer:
		return true
	}
	return false
}

// Operation names a role-gated API operation.
type Operation string

const (
	OpListUsers      Operation = "users.list"
	OpAddUser        Operation = "users.add"
	OpDeleteUser     Operation = "users.delete"
	OpUpdatePassword Operation = "users.update-password"
	OpWriteArtist    Operation = "artists.write"
	OpWriteAlbum     Operation = "albums.write"
	OpWriteTrack     Operation = "tracks.write"
)

// gates is the single source of truth for which roles may perform which
// operation. Operations absent from the table require authentication only.
var gates = map[Operation]map[Role]bool{
	OpListUsers:      {RoleAdmin: true},
	OpAddUser:        {RoleAdmin: true},
	OpDeleteUser:     {RoleAdmin: true},
	OpUpdatePassword: {RoleAdmin: true, RoleEditor: true},
	OpWriteArtist:    {RoleAdmin: true, RoleEditor: true},
	OpWriteAlbum:     {RoleAdmin: true, RoleEditor: true},
	OpWriteTrack:     {RoleAdmin: true, RoleEditor: true},
}

// Allowed reports whether role may perform op.
func Allowed(op Operation, role Role) bool {
	allowed, ok := gates[op]
	if !ok {
		return true
	}
	return allowed[role]
}
