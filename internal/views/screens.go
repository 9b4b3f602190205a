package views

import (
	"strconv"
	"strings"

	"github.com/jask/smartattend/internal/route"
	"github.com/jask/smartattend/internal/session"
)

func landing(route.Match, *session.State, Data) View {
	return View{
		Screen: route.Landing,
		Title:  "Smart Attendance & Feedback",
		Blocks: []Block{
			Heading{Text: "Smart Attendance & Feedback", Sub: "Fast QR attendance, seamless event management, and feedback collection."},
			Button{ID: RegionGoStudent, Label: "Continue as Student", Primary: true},
			Button{ID: RegionGoAdmin, Label: "Continue as Admin"},
		},
	}
}

func signup(m route.Match, _ *session.State, _ Data) View {
	role := session.ParseRole(m.Param)
	fields := []Field{
		{Name: "firstName", Label: "First Name", Required: true, Placeholder: "John"},
		{Name: "lastName", Label: "Last Name", Required: true, Placeholder: "Doe"},
		{Name: "mobile", Label: "Mobile", Required: true, Placeholder: "9876543210"},
		{Name: "email", Label: "Email", Required: true, Placeholder: "you@example.com"},
		{Name: "password", Label: "Password", Kind: FieldPassword, Required: true},
	}
	if role == session.RoleStudent {
		fields = append(fields, Field{Name: "confirm", Label: "Confirm Password", Kind: FieldPassword, Required: true})
	}
	return View{
		Screen: route.Signup,
		Role:   role,
		Title:  role.Title() + " Signup",
		Blocks: []Block{
			Heading{Text: role.Title() + " Signup"},
			Form{
				ID:     FormSignup,
				Fields: fields,
				Submit: "Create account",
				Footer: &Link{ID: RegionLoginLink, Label: "Already have an account? Login", Href: route.LoginPath(m.Param)},
			},
		},
	}
}

func login(m route.Match, _ *session.State, _ Data) View {
	role := session.ParseRole(m.Param)
	return View{
		Screen: route.Login,
		Role:   role,
		Title:  role.Title() + " Login",
		Blocks: []Block{
			Heading{Text: role.Title() + " Login"},
			Form{
				ID: FormLogin,
				Fields: []Field{
					{Name: "email", Label: "Email", Required: true, Placeholder: "you@example.com"},
					{Name: "password", Label: "Password", Kind: FieldPassword, Required: true},
				},
				Submit: "Login",
				Footer: &Link{ID: RegionSignupLink, Label: "No account? Sign up", Href: route.SignupPath(m.Param)},
			},
		},
	}
}

// dashboard wraps page content in the shared layout.
func dashboard(screen route.Screen, s *session.State, title string, content ...Block) View {
	return View{
		Screen: screen,
		Role:   s.Role(),
		Title:  title,
		Chrome: &Chrome{
			Avatar:  s.Identity().Initial(),
			Menu:    profileMenu(),
			Sidebar: true,
			Notices: []string{
				`Event "Tech Talk" starts in 30 mins.`,
				`New feedback received for "AI Workshop".`,
			},
		},
		Blocks: content,
	}
}

func profileMenu() []Button {
	return []Button{
		{ID: RegionEditProfile, Label: "Edit Profile"},
		{ID: RegionLogout, Label: "Logout"},
	}
}

func studentDashboard(_ route.Match, s *session.State, _ Data) View {
	name := "Student"
	if id := s.Identity(); id != nil && id.FirstName != "" {
		name = id.FirstName
	}
	return dashboard(route.StudentDashboard, s, "Student Dashboard",
		Heading{Text: "Welcome, " + name, Sub: "Mark your attendance via QR"},
		Button{ID: RegionMark, Label: "Mark Attendance", Primary: true},
	)
}

func adminDashboard(_ route.Match, s *session.State, _ Data) View {
	return dashboard(route.AdminDashboard, s, "Admin Panel",
		Heading{Text: "Admin Panel"},
		Link{ID: RegionCreateChip, Label: "Create Event", Href: route.PathAdminCreate},
		Link{ID: RegionPastChip, Label: "See Past Events", Href: route.PathAdminPast},
		Link{ID: RegionFeedChip, Label: "See Feedback", Href: route.PathAdminFeedback},
		Text{Text: "Choose an option above or create a new event.", Muted: true},
	)
}

func adminCreateEvent(_ route.Match, s *session.State, _ Data) View {
	return dashboard(route.AdminCreateEvent, s, "Create Event",
		Heading{Text: "Create Event"},
		Form{
			ID: FormEvent,
			Fields: []Field{
				{Name: "name", Label: "Event Name", Required: true, Placeholder: "Orientation Day"},
				{Name: "date", Label: "Event Date", Kind: FieldDate, Required: true, Placeholder: "YYYY-MM-DD"},
				{Name: "location", Label: "Location", Required: true, Placeholder: "Auditorium"},
				{Name: "radius", Label: "Attendance Radius (m)", Kind: FieldNumber, Required: true, Placeholder: "50"},
				{Name: "withFeedback", Label: "Create Feedback Form", Kind: FieldCheckbox},
			},
			Submit: "Generate QR",
		},
		Panel{
			ID:     RegionQRWrap,
			Lines:  []string{"Show this QR at entrance", "QR Placeholder"},
			TextID: RegionQRMeta,
		},
	)
}

func adminPast(_ route.Match, s *session.State, d Data) View {
	list := d.Events
	if len(list) == 0 {
		list = SampleEvents()
	}
	items := make([]Note, 0, len(list))
	for _, e := range list {
		items = append(items, Note{Title: e.Name, Meta: e.Date + " • " + e.Location})
	}
	return dashboard(route.AdminPast, s, "Past Events",
		Heading{Text: "Past Events"},
		Notes{Items: items},
	)
}

func adminFeedback(_ route.Match, s *session.State, d Data) View {
	list := d.Feedback
	if len(list) == 0 {
		list = SampleFeedback()
	}
	items := make([]Note, 0, len(list))
	for _, f := range list {
		meta := "Rating: " + Stars(f.Score)
		if f.Rating != "" {
			meta += " (" + f.Rating + ")"
		}
		items = append(items, Note{Title: f.Name, Meta: meta, Body: f.Liked})
	}
	return dashboard(route.AdminFeedback, s, "Feedback",
		Heading{Text: "Feedback"},
		Notes{Items: items},
	)
}

// Ratings offered by the feedback form.
var Ratings = []string{"Excellent", "Good", "Average", "Poor"}

func feedbackForm(_ route.Match, s *session.State, _ Data) View {
	return View{
		Screen: route.FeedbackForm,
		Role:   s.Role(),
		Title:  "Event Feedback",
		Chrome: &Chrome{Avatar: s.Identity().Initial(), Menu: profileMenu()},
		Blocks: []Block{
			Heading{Text: "Event Feedback"},
			Form{
				ID: FormFeedback,
				Fields: []Field{
					{Name: "name", Label: "Your Name", Required: true, Placeholder: "John Doe"},
					{Name: "q1", Label: "How was the event?", Kind: FieldChoice, Options: Ratings},
					{Name: "q2", Label: "What did you like the most?", Placeholder: "Your answer"},
					{Name: "q3", Label: "Rate the overall experience", Kind: FieldRange, Min: 1, Max: 5, Value: "4"},
				},
				Submit: "Submit Feedback",
			},
		},
	}
}

// AttendanceForm is the body of the attendance modal, prefilled from the
// identity.
func AttendanceForm(id *session.Identity) Form {
	var name, email string
	if id != nil {
		name, email = id.FirstName, id.Email
	}
	return Form{
		ID: FormAttendance,
		Fields: []Field{
			{Name: "name", Label: "Name", Required: true, Value: name},
			{Name: "mobile", Label: "Mobile", Required: true, Placeholder: "9876543210"},
			{Name: "email", Label: "Email", Required: true, Value: email},
		},
		Blocks: []Block{
			Indicator{ID: RegionFace, Label: "Take Selfie", OnLabel: "face detected", OffLabel: "no face"},
			Button{ID: RegionToggleFace, Label: "Toggle Face Detect"},
		},
		Submit: "Submit Attendance",
	}
}

// ScannerChoices are the two equivalent entry points of the QR scanner modal.
func ScannerChoices() []Block {
	return []Block{
		Button{ID: RegionUploadQR, Label: "Upload from Gallery"},
		Button{ID: RegionOpenCam, Label: "Open Camera"},
	}
}

// Stars draws a 0..5 score as filled and empty stars.
func Stars(score int) string {
	score = min(max(score, 0), 5)
	return strings.Repeat("★", score) + strings.Repeat("☆", 5-score)
}

// QRSummary is the text shown under the generated QR.
func QRSummary(name, location, date string) string {
	return strings.Join([]string{name, location, date}, " • ")
}

// ParseScore reads a range field value, clamped to 1..5; unparsable values
// give 0.
func ParseScore(v string) int {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0
	}
	return min(max(n, 1), 5)
}
