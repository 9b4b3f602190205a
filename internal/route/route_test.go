package route

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveTable(t *testing.T) {
	cases := []struct {
		addr   string
		screen Screen
		param  string
	}{
		{"", Landing, ""},
		{"/", Landing, ""},
		{"#/", Landing, ""},
		{"/signup/student", Signup, "student"},
		{"#/signup/admin", Signup, "admin"},
		{"/login/student", Login, "student"},
		{"/login/admin", Login, "admin"},
		{"/student", StudentDashboard, ""},
		{"/student/anything", StudentDashboard, ""},
		{"/admin/create", AdminCreateEvent, ""},
		{"/admin/past", AdminPast, ""},
		{"/admin/feedback", AdminFeedback, ""},
		{"/admin", AdminDashboard, ""},
		{"/admin/settings", AdminDashboard, ""},
		{"/feedback", FeedbackForm, ""},
		{"/feedback/42", FeedbackForm, ""},
	}
	for _, tc := range cases {
		t.Run(tc.addr, func(t *testing.T) {
			m := Resolve(tc.addr)
			require.Equal(t, tc.screen, m.Screen)
			require.Equal(t, tc.param, m.Param)
		})
	}
}

func TestResolveUnknownFallsBackToLanding(t *testing.T) {
	for _, addr := range []string{"/nope", "signup", "/signup", "/signup/staff", "/login", "//", "garbage", "/Admin", " /x "} {
		m := Resolve(addr)
		require.Equal(t, Landing, m.Screen, addr)
		require.Equal(t, fallbackRule, m.Rule, addr)
		require.Equal(t, m, Resolve(addr), "resolution must be stable")
	}
}

func TestResolveOrderPrefersSpecificAdminRules(t *testing.T) {
	require.Equal(t, "admin-create", Resolve("/admin/create").Rule)
	require.Equal(t, "admin-create", Resolve("/admin/created").Rule)
	require.Equal(t, "admin", Resolve("/admin/x").Rule)
	require.Equal(t, "student", Resolve("/students").Rule)
}

func TestKnownRoutesResolveToDistinctScreens(t *testing.T) {
	seen := map[string]bool{}
	for _, p := range Known() {
		m := Resolve(p)
		key := m.Screen.String() + ":" + m.Param
		require.False(t, seen[key], p)
		seen[key] = true
	}
}

func TestAddressSetIsIdempotent(t *testing.T) {
	a := NewAddress("/")
	var events []string
	a.OnChange(func(v string) { events = append(events, v) })

	require.True(t, a.Set("/student"))
	require.False(t, a.Set("/student"))
	require.Equal(t, []string{"/student"}, events)
	require.Equal(t, "/student", a.Current())
}

func TestAddressSetTreatsHashFormAsSame(t *testing.T) {
	a := NewAddress("#/admin")
	changes := 0
	a.OnChange(func(string) { changes++ })

	require.False(t, a.Set("/admin"))
	require.False(t, a.Set(" #/admin "))
	require.Equal(t, 0, changes)
	require.Equal(t, 0, a.Depth())
	require.Equal(t, "#/admin", a.Current())

	require.True(t, a.Set("/admin/past"))
	require.Equal(t, 1, changes)
}

func TestAddressBack(t *testing.T) {
	a := NewAddress("/")
	a.Set("/signup/student")
	a.Set("/login/student")
	var events []string
	a.OnChange(func(v string) { events = append(events, v) })

	require.Equal(t, 2, a.Depth())
	require.True(t, a.Back())
	require.Equal(t, "/signup/student", a.Current())
	require.True(t, a.Back())
	require.False(t, a.Back())
	require.Equal(t, "/", a.Current())
	require.Equal(t, []string{"/signup/student", "/"}, events)
}

func TestSuggest(t *testing.T) {
	require.Equal(t, "/admin/past", Suggest("/admin/pst", 1)[0])
	require.Equal(t, "/feedback", Suggest("#/feedbak", 1)[0])
	require.Len(t, Suggest("/", 3), 3)
	require.Nil(t, Suggest("/", 0))
	require.Equal(t, "/signup/student", Suggest("/signup/s", 1)[0])
}
