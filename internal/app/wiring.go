package app

import (
	"strings"

	"github.com/google/uuid"

	"github.com/jask/smartattend/internal/database/repository"
	"github.com/jask/smartattend/internal/notify"
	"github.com/jask/smartattend/internal/route"
	"github.com/jask/smartattend/internal/session"
	"github.com/jask/smartattend/internal/surface"
	"github.com/jask/smartattend/internal/views"
)

// User-facing messages.
const (
	MsgFillField        = "Please fill this field"
	MsgPasswordMismatch = "Passwords do not match"
	MsgSignedUp         = "Signup successful"
	MsgLoggedIn         = "Logged in"
	MsgLoggedOut        = "Logged out"
	MsgEditProfile      = "Edit Profile (demo)"
	MsgQRGenerated      = "QR generated"
	MsgAttendanceOK     = "Attendance Submitted Successfully"
	MsgAttendanceFail   = "You are not in range"
	MsgFeedbackSent     = "Feedback submitted"
)

// wire attaches behavior to the regions of a freshly mounted view. The
// previous mount took its handlers with it, so this runs after every render.
func (a *App) wire(v views.View) {
	page := a.page
	a.wireLinks(page, v.Blocks)
	if v.Chrome != nil {
		a.wireProfileMenu(page)
		a.TickClock()
	}
	switch v.Screen {
	case route.Landing:
		page.AttachRegion(views.RegionGoStudent, a.goTo(route.SignupPath(string(session.RoleStudent))))
		page.AttachRegion(views.RegionGoAdmin, a.goTo(route.SignupPath(string(session.RoleAdmin))))
	case route.Signup:
		page.AttachRegion(views.FormSignup, func(e surface.Event) { a.submitSignup(page, v.Role, e.Form) })
	case route.Login:
		page.AttachRegion(views.FormLogin, func(e surface.Event) { a.submitLogin(page, v.Role, e.Form) })
	case route.StudentDashboard:
		page.AttachRegion(views.RegionMark, func(surface.Event) { a.openScanner() })
	case route.AdminCreateEvent:
		page.AttachRegion(views.FormEvent, func(e surface.Event) { a.submitEvent(page, e.Form) })
	case route.FeedbackForm:
		page.AttachRegion(views.FormFeedback, func(e surface.Event) { a.submitFeedback(page, e.Form) })
	}
}

func (a *App) goTo(addr string) surface.Handler {
	return func(surface.Event) { a.Navigate(addr) }
}

func (a *App) wireLinks(l *surface.Layer, blocks []views.Block) {
	for _, b := range blocks {
		switch b := b.(type) {
		case views.Link:
			l.AttachRegion(b.ID, a.goTo(b.Href))
		case views.Form:
			if b.Footer != nil {
				l.AttachRegion(b.Footer.ID, a.goTo(b.Footer.Href))
			}
			a.wireLinks(l, b.Blocks)
		}
	}
}

func (a *App) wireProfileMenu(page *surface.Layer) {
	page.AttachRegion(views.RegionProfile, func(surface.Event) { page.Toggle(views.RegionProfileMenu) })
	page.AttachRegion(views.RegionEditProfile, func(surface.Event) {
		a.Notify.Toast(MsgEditProfile)
		page.SetFlag(views.RegionProfileMenu, false)
	})
	page.AttachRegion(views.RegionLogout, func(surface.Event) { a.Logout() })
	page.Listen(func(target string) {
		switch target {
		case views.RegionProfile, views.RegionEditProfile, views.RegionLogout:
			return
		}
		if page.Flag(views.RegionProfileMenu) {
			page.SetFlag(views.RegionProfileMenu, false)
		}
	})
}

// requiredFields blocks a submission with an empty required field: the
// first such field gets focus and a blocking notice is shown.
func (a *App) requiredFields(l *surface.Layer, formID string, sub surface.Submission) bool {
	f, ok := l.Form(formID)
	if !ok {
		return false
	}
	for _, fld := range f.Fields {
		if fld.Required && strings.TrimSpace(sub[fld.Name]) == "" {
			a.Notify.Alert(MsgFillField)
			l.Focus(surface.FieldID(formID, fld.Name))
			return false
		}
	}
	return true
}

func (a *App) submitSignup(page *surface.Layer, role session.Role, sub surface.Submission) {
	if !a.requiredFields(page, views.FormSignup, sub) {
		return
	}
	if confirm, ok := sub["confirm"]; ok && confirm != sub["password"] {
		a.Notify.Alert(MsgPasswordMismatch)
		page.Focus(surface.FieldID(views.FormSignup, "confirm"))
		return
	}
	a.Session.SignUp(session.Identity{
		FirstName: sub["firstName"],
		LastName:  sub["lastName"],
		Email:     sub["email"],
	}, role)
	a.log.Info("signed up", "role", string(role))
	a.Notify.Toast(MsgSignedUp)
	a.Navigate(route.LoginPath(string(role)))
}

func (a *App) submitLogin(page *surface.Layer, role session.Role, sub surface.Submission) {
	if !a.requiredFields(page, views.FormLogin, sub) {
		return
	}
	a.Session.LogIn(role)
	a.log.Info("logged in", "role", string(role))
	a.Notify.Toast(MsgLoggedIn)
	a.Navigate(dashboardPath(role))
}

// Logout clears the session and returns to Landing.
func (a *App) Logout() {
	a.Session.Logout()
	a.log.Info("logged out")
	a.Navigate(route.PathRoot)
	a.Notify.Toast(MsgLoggedOut)
}

func dashboardPath(role session.Role) string {
	switch role {
	case session.RoleStudent:
		return route.PathStudent
	case session.RoleAdmin:
		return route.PathAdmin
	default:
		return route.PathRoot
	}
}

func (a *App) openScanner() {
	l := a.Notify.OpenModal(notify.Modal{Title: "QR Scanner", Body: views.ScannerChoices()})
	proceed := func(surface.Event) { a.openAttendanceForm() }
	l.AttachRegion(views.RegionUploadQR, proceed)
	l.AttachRegion(views.RegionOpenCam, proceed)
}

func (a *App) openAttendanceForm() {
	l := a.Notify.OpenModal(notify.Modal{
		Title: "Attendance Form",
		Body:  []views.Block{views.AttendanceForm(a.Session.Identity())},
	})
	l.AttachRegion(views.RegionToggleFace, func(surface.Event) { l.Toggle(views.RegionFace) })
	l.AttachRegion(views.FormAttendance, func(e surface.Event) {
		if !a.requiredFields(l, views.FormAttendance, e.Form) {
			return
		}
		a.Notify.CloseModal()
		ok := a.decide(a.opts.SuccessProbability)
		a.log.Info("attendance submitted", "accepted", ok)
		if !ok {
			a.Notify.Alert(MsgAttendanceFail)
			return
		}
		a.Notify.Alert(MsgAttendanceOK)
		if a.Session.Role() == session.RoleStudent {
			a.Navigate(route.PathFeedback)
		}
	})
}

func (a *App) submitEvent(page *surface.Layer, sub surface.Submission) {
	if !a.requiredFields(page, views.FormEvent, sub) {
		return
	}
	e := repository.EventRecord{
		Name:         sub["name"],
		Date:         sub["date"],
		Location:     sub["location"],
		Radius:       sub["radius"],
		WithFeedback: sub["withFeedback"] == surface.CheckboxOn,
	}
	if err := a.Data.AddEvent(a.ctx, e); err != nil {
		a.log.Error("persist events", "error", err)
		a.Notify.Error("Event not saved: " + err.Error())
	} else {
		a.log.Info("event created", "name", e.Name, "date", e.Date)
	}
	page.SetFlag(views.RegionQRWrap, true)
	page.SetText(views.RegionQRMeta, views.QRSummary(e.Name, e.Location, e.Date))
	a.Notify.Toast(MsgQRGenerated)
}

func (a *App) submitFeedback(page *surface.Layer, sub surface.Submission) {
	if !a.requiredFields(page, views.FormFeedback, sub) {
		return
	}
	f := repository.FeedbackRecord{
		ID:        uuid.NewString(),
		Name:      sub["name"],
		Rating:    sub["q1"],
		Liked:     strings.TrimSpace(sub["q2"]),
		Score:     views.ParseScore(sub["q3"]),
		CreatedAt: a.now().UTC(),
	}
	if err := a.Data.AddFeedback(a.ctx, f); err != nil {
		a.log.Error("persist feedback", "error", err)
		a.Notify.Error("Feedback not saved: " + err.Error())
		return
	}
	a.log.Info("feedback submitted", "id", f.ID)
	a.Notify.Toast(MsgFeedbackSent)
	a.Navigate(dashboardPath(a.Session.Role()))
}
