// Package route maps navigation addresses to screens with an ordered rule
// table. Resolution is total: anything unrecognized lands on Landing.
package route

import "strings"

// Screen identifies which view an address selects.
type Screen int

const (
	Landing Screen = iota
	Signup
	Login
	StudentDashboard
	AdminCreateEvent
	AdminPast
	AdminFeedback
	AdminDashboard
	FeedbackForm
)

var screenNames = map[Screen]string{
	Landing:          "landing",
	Signup:           "signup",
	Login:            "login",
	StudentDashboard: "student-dashboard",
	AdminCreateEvent: "admin-create",
	AdminPast:        "admin-past",
	AdminFeedback:    "admin-feedback",
	AdminDashboard:   "admin-dashboard",
	FeedbackForm:     "feedback",
}

func (s Screen) String() string {
	if n, ok := screenNames[s]; ok {
		return n
	}
	return "unknown"
}

// Match is the outcome of resolving an address.
type Match struct {
	Screen Screen
	// Param carries the role segment for signup and login routes.
	Param string
	// Rule is the name of the table rule that matched.
	Rule string
}

// Rule is one row of the resolution table.
type Rule struct {
	Name   string
	Screen Screen
	Param  string
	match  func(path string) bool
}

func exact(values ...string) func(string) bool {
	return func(p string) bool {
		for _, v := range values {
			if p == v {
				return true
			}
		}
		return false
	}
}

func prefix(pfx string) func(string) bool {
	return func(p string) bool { return strings.HasPrefix(p, pfx) }
}

// Table is checked top to bottom; the first matching rule wins.
var Table = []Rule{
	{Name: "root", Screen: Landing, match: exact("", "/")},
	{Name: "signup-student", Screen: Signup, Param: "student", match: prefix("/signup/student")},
	{Name: "signup-admin", Screen: Signup, Param: "admin", match: prefix("/signup/admin")},
	{Name: "login-student", Screen: Login, Param: "student", match: prefix("/login/student")},
	{Name: "login-admin", Screen: Login, Param: "admin", match: prefix("/login/admin")},
	{Name: "student", Screen: StudentDashboard, match: prefix("/student")},
	{Name: "admin-create", Screen: AdminCreateEvent, match: prefix("/admin/create")},
	{Name: "admin-past", Screen: AdminPast, match: prefix("/admin/past")},
	{Name: "admin-feedback", Screen: AdminFeedback, match: prefix("/admin/feedback")},
	{Name: "admin", Screen: AdminDashboard, match: prefix("/admin")},
	{Name: "feedback", Screen: FeedbackForm, match: prefix("/feedback")},
}

const fallbackRule = "fallback"

// Normalize strips surrounding whitespace and a leading '#', so hash-style
// addresses resolve like plain paths.
func Normalize(addr string) string {
	return strings.TrimPrefix(strings.TrimSpace(addr), "#")
}

// Resolve maps an address to a screen. It never fails.
func Resolve(addr string) Match {
	p := Normalize(addr)
	for _, r := range Table {
		if r.match(p) {
			return Match{Screen: r.Screen, Param: r.Param, Rule: r.Name}
		}
	}
	return Match{Screen: Landing, Rule: fallbackRule}
}

// Canonical addresses, one per reachable view.
const (
	PathRoot          = "/"
	PathSignupStudent = "/signup/student"
	PathSignupAdmin   = "/signup/admin"
	PathLoginStudent  = "/login/student"
	PathLoginAdmin    = "/login/admin"
	PathStudent       = "/student"
	PathAdmin         = "/admin"
	PathAdminCreate   = "/admin/create"
	PathAdminPast     = "/admin/past"
	PathAdminFeedback = "/admin/feedback"
	PathFeedback      = "/feedback"
)

// Known lists the canonical addresses in table order.
func Known() []string {
	return []string{
		PathRoot,
		PathSignupStudent, PathSignupAdmin,
		PathLoginStudent, PathLoginAdmin,
		PathStudent,
		PathAdminCreate, PathAdminPast, PathAdminFeedback, PathAdmin,
		PathFeedback,
	}
}

// SignupPath returns the signup address for a role parameter.
func SignupPath(role string) string { return "/signup/" + role }

// LoginPath returns the login address for a role parameter.
func LoginPath(role string) string { return "/login/" + role }
