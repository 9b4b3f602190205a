package views

import (
	"github.com/jask/smartattend/internal/database/repository"
	"github.com/jask/smartattend/internal/route"
	"github.com/jask/smartattend/internal/session"
)

// Data is the application data a view may read.
type Data struct {
	Events   []repository.EventRecord
	Feedback []repository.FeedbackRecord
}

// Builder renders one screen. Builders must not mutate their inputs.
type Builder func(m route.Match, s *session.State, d Data) View

var registry = map[route.Screen]Builder{
	route.Landing:          landing,
	route.Signup:           signup,
	route.Login:            login,
	route.StudentDashboard: studentDashboard,
	route.AdminDashboard:   adminDashboard,
	route.AdminCreateEvent: adminCreateEvent,
	route.AdminPast:        adminPast,
	route.AdminFeedback:    adminFeedback,
	route.FeedbackForm:     feedbackForm,
}

// Build returns the view for a resolved route. Screens without a builder
// render Landing.
func Build(m route.Match, s *session.State, d Data) View {
	if s == nil {
		s = session.New()
	}
	b, ok := registry[m.Screen]
	if !ok {
		b = landing
	}
	return b(m, s, d)
}

// SampleEvents are shown by the past-events view while no events exist.
func SampleEvents() []repository.EventRecord {
	return []repository.EventRecord{
		{Name: "AI Workshop", Date: "2025-01-10", Location: "Lab 2"},
		{Name: "Tech Talk", Date: "2025-01-20", Location: "Auditorium"},
	}
}

// SampleFeedback is shown by the feedback view while nothing was submitted.
func SampleFeedback() []repository.FeedbackRecord {
	return []repository.FeedbackRecord{
		{ID: "sample-1", Name: "AI Workshop", Score: 4, Liked: "Great session, loved the demos."},
		{ID: "sample-2", Name: "Tech Talk", Score: 5, Liked: "Insightful and well-paced."},
	}
}
