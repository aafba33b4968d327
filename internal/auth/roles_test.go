package auth

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAllowed(t *testing.T) {
	cases := []struct {
		name string
		op   Operation
		role Role
		want bool
	}{
		{"admin lists users", OpListUsers, RoleAdmin, true},
		{"editor cannot list users", OpListUsers, RoleEditor, false},
		{"viewer cannot list users", OpListUsers, RoleViewer, false},
		{"editor cannot add users", OpAddUser, RoleEditor, false},
		{"editor cannot delete users", OpDeleteUser, RoleEditor, false},
		{"editor updates passwords", OpUpdatePassword, RoleEditor, true},
		{"viewer cannot update passwords", OpUpdatePassword, RoleViewer, false},
		{"editor writes artists", OpWriteArtist, RoleEditor, true},
		{"viewer cannot write artists", OpWriteArtist, RoleViewer, false},
		{"admin writes albums", OpWriteAlbum, RoleAdmin, true},
		{"viewer cannot write tracks", OpWriteTrack, RoleViewer, false},
		{"ungated operation open to all", Operation("catalog.read"), RoleViewer, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, Allowed(tc.op, tc.role))
		})
	}
}

func TestValidRole(t *testing.T) {
	require.True(t, ValidRole(RoleAdmin))
	require.True(t, ValidRole(RoleEditor))
	require.True(t, ValidRole(RoleViewer))
	require.False(t, ValidRole(Role("superuser")))
	require.False(t, ValidRole(Role("")))
}
