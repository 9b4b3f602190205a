package session

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	require.Equal(t, RoleStudent, ParseRole("student"))
	require.Equal(t, RoleAdmin, ParseRole(" Admin "))
	require.Equal(t, RoleNone, ParseRole("staff"))
	require.Equal(t, RoleNone, ParseRole(""))
}

func TestLogInFabricatesPlaceholderIdentity(t *testing.T) {
	s := New()
	s.LogIn(RoleAdmin)
	require.Equal(t, RoleAdmin, s.Role())
	require.NotNil(t, s.Identity())
	require.Equal(t, PlaceholderFirstName, s.Identity().FirstName)
}

func TestLogInKeepsSignedUpIdentity(t *testing.T) {
	s := New()
	s.SignUp(Identity{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com"}, RoleStudent)
	s.LogIn(RoleStudent)
	require.Equal(t, "Ada", s.Identity().FirstName)
	require.Equal(t, "ada@example.com", s.Identity().Email)
}

func TestLogoutResetsEverything(t *testing.T) {
	for _, prep := range []func(*State){
		func(*State) {},
		func(s *State) { s.LogIn(RoleStudent) },
		func(s *State) { s.SignUp(Identity{FirstName: "Grace"}, RoleAdmin) },
	} {
		s := New()
		prep(s)
		s.Logout()
		require.Nil(t, s.Identity())
		require.Equal(t, RoleNone, s.Role())
		require.True(t, s.Anonymous())
	}
}

func TestIdentityIsCopied(t *testing.T) {
	s := New()
	s.SignUp(Identity{FirstName: "Alan"}, RoleStudent)
	id := s.Identity()
	id.FirstName = "Mutated"
	require.Equal(t, "Alan", s.Identity().FirstName)
}

func TestInitial(t *testing.T) {
	var none *Identity
	require.Equal(t, "U", none.Initial())
	require.Equal(t, "U", (&Identity{}).Initial())
	require.Equal(t, "J", (&Identity{FirstName: "john"}).Initial())
}
