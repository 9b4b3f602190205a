package app

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jask/smartattend/internal/database/repository"
	"github.com/jask/smartattend/internal/notify"
	"github.com/jask/smartattend/internal/route"
	"github.com/jask/smartattend/internal/session"
	"github.com/jask/smartattend/internal/store"
	"github.com/jask/smartattend/internal/surface"
	"github.com/jask/smartattend/internal/views"
)

var fixedNow = time.Date(2025, 3, 1, 9, 30, 15, 0, time.UTC)

func newTestApp(t *testing.T, decide Decider) (*App, *store.Store) {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	st := store.New(store.NewMemory(), log)
	a := New(context.Background(), Deps{
		Store:  st,
		Notify: notify.New(),
		Decide: decide,
		Log:    log,
		Now:    func() time.Time { return fixedNow },
	}, DefaultOptions())
	a.Start()
	return a, st
}

func fill(t *testing.T, l *surface.Layer, form string, values map[string]string) {
	t.Helper()
	for k, v := range values {
		require.True(t, l.SetValue(form, k, v), k)
	}
}

func TestStartLandsOnRoot(t *testing.T) {
	a, _ := newTestApp(t, Always(true))
	require.Equal(t, "/", a.Address.Current())
	require.Equal(t, route.Landing, a.View().Screen)
	require.Equal(t, 1, a.Renders())
}

func TestStartRendersDeepLink(t *testing.T) {
	a := New(context.Background(), Deps{Address: "#/admin/past"}, DefaultOptions())
	a.Start()
	require.Equal(t, route.AdminPast, a.View().Screen)
	require.Equal(t, 1, a.Renders())
}

func TestNavigateToHashEquivalentRendersOnce(t *testing.T) {
	a := New(context.Background(), Deps{Address: "#/admin"}, DefaultOptions())
	a.Start()
	changes := 0
	a.Address.OnChange(func(string) { changes++ })
	before := a.Renders()

	a.Navigate("/admin")
	require.Equal(t, 0, changes)
	require.Equal(t, 0, a.Address.Depth())
	require.Equal(t, before+1, a.Renders())
	require.Equal(t, route.AdminDashboard, a.View().Screen)
}

func TestUnknownRoutesRenderLanding(t *testing.T) {
	a, _ := newTestApp(t, Always(true))
	for _, addr := range []string{"/nowhere", "/signup/staff", "#garbage"} {
		a.Navigate(addr)
		require.Equal(t, route.Landing, a.View().Screen, addr)
		require.Equal(t, addr, a.Address.Current())
	}
}

func TestNavigateSameAddressRendersOnce(t *testing.T) {
	a, _ := newTestApp(t, Always(true))
	changes := 0
	a.Address.OnChange(func(string) { changes++ })

	a.Navigate("/admin")
	require.Equal(t, 2, a.Renders())
	require.Equal(t, 1, changes)

	a.Navigate("/admin")
	require.Equal(t, 3, a.Renders(), "second navigate renders exactly once")
	require.Equal(t, 1, changes, "no address change event for the same value")
}

func TestExternalAddressChangeRenders(t *testing.T) {
	a, _ := newTestApp(t, Always(true))
	a.Address.Set("/feedback")
	require.Equal(t, route.FeedbackForm, a.View().Screen)
	require.True(t, a.Back())
	require.Equal(t, route.Landing, a.View().Screen)
}

func TestLandingButtons(t *testing.T) {
	a, _ := newTestApp(t, Always(true))
	require.True(t, a.Page().Activate(views.RegionGoAdmin))
	require.Equal(t, "/signup/admin", a.Address.Current())
	a.Navigate("/")
	require.True(t, a.Page().Activate(views.RegionGoStudent))
	require.Equal(t, "/signup/student", a.Address.Current())
}

func TestSignupPasswordMismatchIsBlocked(t *testing.T) {
	a, _ := newTestApp(t, Always(true))
	a.Navigate("/signup/student")
	page := a.Page()
	fill(t, page, views.FormSignup, map[string]string{
		"firstName": "Ada", "lastName": "Lovelace", "mobile": "1", "email": "ada@example.com",
		"password": "a", "confirm": "b",
	})
	renders := a.Renders()
	require.True(t, page.Submit(views.FormSignup))

	require.True(t, a.Session.Anonymous())
	require.Equal(t, "/signup/student", a.Address.Current())
	require.Equal(t, route.Signup, a.View().Screen)
	require.Equal(t, renders, a.Renders())
	msg, on := a.Notify.Alerting()
	require.True(t, on)
	require.Equal(t, MsgPasswordMismatch, msg)
	require.Equal(t, surface.FieldID(views.FormSignup, "confirm"), page.Focused())
}

func TestSignupRequiredFieldFocusesFirstInvalid(t *testing.T) {
	a, _ := newTestApp(t, Always(true))
	a.Navigate("/signup/admin")
	page := a.Page()
	fill(t, page, views.FormSignup, map[string]string{"firstName": "Ada", "lastName": "   "})
	page.Submit(views.FormSignup)

	require.True(t, a.Session.Anonymous())
	require.Equal(t, surface.FieldID(views.FormSignup, "lastName"), page.Focused())
	msg, _ := a.Notify.Alerting()
	require.Equal(t, MsgFillField, msg)
	require.Empty(t, a.Notify.Toasts())
}

func TestSignupThenLogin(t *testing.T) {
	a, _ := newTestApp(t, Always(true))
	a.Navigate("/signup/student")
	fill(t, a.Page(), views.FormSignup, map[string]string{
		"firstName": "Ada", "lastName": "Lovelace", "mobile": "1", "email": "ada@example.com",
		"password": "pw", "confirm": "pw",
	})
	a.Page().Submit(views.FormSignup)

	require.Equal(t, "/login/student", a.Address.Current())
	require.Equal(t, session.RoleStudent, a.Session.Role())
	require.Equal(t, "Ada", a.Session.Identity().FirstName)
	require.Equal(t, MsgSignedUp, a.Notify.Toasts()[0].Message)

	fill(t, a.Page(), views.FormLogin, map[string]string{"email": "other@example.com", "password": "wrong"})
	a.Page().Submit(views.FormLogin)
	require.Equal(t, "/student", a.Address.Current())
	require.Equal(t, "Ada", a.Session.Identity().FirstName, "credentials are not checked")
	require.Equal(t, "A", a.View().Chrome.Avatar)
}

func TestLoginWithoutSignupFabricatesIdentity(t *testing.T) {
	a, _ := newTestApp(t, Always(true))
	a.Navigate("/login/admin")
	fill(t, a.Page(), views.FormLogin, map[string]string{"email": "x@example.com", "password": "pw"})
	a.Page().Submit(views.FormLogin)

	require.Equal(t, "/admin", a.Address.Current())
	require.Equal(t, session.RoleAdmin, a.Session.Role())
	require.Equal(t, session.PlaceholderFirstName, a.Session.Identity().FirstName)
}

func TestLoginFooterLinkNavigates(t *testing.T) {
	a, _ := newTestApp(t, Always(true))
	a.Navigate("/login/student")
	require.True(t, a.Page().Activate(views.RegionSignupLink))
	require.Equal(t, "/signup/student", a.Address.Current())
}

func TestCreateEventPrependsAndPersists(t *testing.T) {
	a, st := newTestApp(t, Always(true))
	ctx := context.Background()
	require.NoError(t, a.Data.AddEvent(ctx, repository.EventRecord{Name: "Older"}))

	a.Navigate("/admin/create")
	page := a.Page()
	fill(t, page, views.FormEvent, map[string]string{
		"name": "Orientation", "date": "2025-03-01", "location": "Hall A", "radius": "50",
	})
	require.True(t, page.Submit(views.FormEvent))

	want := repository.EventRecord{Name: "Orientation", Date: "2025-03-01", Location: "Hall A", Radius: "50"}
	require.Equal(t, want, a.Data.Events()[0])
	require.Equal(t, a.Data.Events(), st.Load(ctx, store.EventsKey))
	require.Len(t, a.Data.Events(), 2)

	require.True(t, page.Flag(views.RegionQRWrap))
	meta, _ := page.Text(views.RegionQRMeta)
	require.Equal(t, "Orientation • Hall A • 2025-03-01", meta)
	require.Equal(t, MsgQRGenerated, a.Notify.Toasts()[0].Message)
	require.Equal(t, "/admin/create", a.Address.Current())
}

func TestCreateEventCheckbox(t *testing.T) {
	a, _ := newTestApp(t, Always(true))
	a.Navigate("/admin/create")
	fill(t, a.Page(), views.FormEvent, map[string]string{
		"name": "Fair", "date": "2025-04-01", "location": "Quad", "radius": "10", "withFeedback": surface.CheckboxOn,
	})
	a.Page().Submit(views.FormEvent)
	require.True(t, a.Data.Events()[0].WithFeedback)
}

func TestCreateEventMissingFieldDoesNothing(t *testing.T) {
	a, st := newTestApp(t, Always(true))
	a.Navigate("/admin/create")
	fill(t, a.Page(), views.FormEvent, map[string]string{"name": "Orientation", "date": "2025-03-01", "location": "Hall A"})
	a.Page().Submit(views.FormEvent)

	require.Empty(t, a.Data.Events())
	require.Empty(t, st.Load(context.Background(), store.EventsKey))
	require.False(t, a.Page().Flag(views.RegionQRWrap))
	require.Equal(t, surface.FieldID(views.FormEvent, "radius"), a.Page().Focused())
}

func TestPastEventsShowCreatedEvents(t *testing.T) {
	a, _ := newTestApp(t, Always(true))
	require.NoError(t, a.Data.AddEvent(context.Background(), repository.EventRecord{Name: "Orientation", Date: "2025-03-01", Location: "Hall A"}))
	a.Navigate("/admin/past")
	notes := a.View().Blocks[1].(views.Notes)
	require.Len(t, notes.Items, 1)
	require.Equal(t, "Orientation", notes.Items[0].Title)
}

func TestLogoutAlwaysResets(t *testing.T) {
	for _, addr := range []string{"/student", "/admin", "/admin/create", "/feedback"} {
		a, _ := newTestApp(t, Always(true))
		a.Session.SignUp(session.Identity{FirstName: "Ada"}, session.RoleAdmin)
		a.Navigate(addr)
		page := a.Page()
		require.True(t, page.Activate(views.RegionProfile))
		require.True(t, page.Flag(views.RegionProfileMenu))
		require.True(t, page.Activate(views.RegionLogout))

		require.Nil(t, a.Session.Identity(), addr)
		require.Equal(t, session.RoleNone, a.Session.Role(), addr)
		require.Equal(t, "/", a.Address.Current(), addr)
		require.Equal(t, route.Landing, a.View().Screen, addr)
		toasts := a.Notify.Toasts()
		require.Equal(t, MsgLoggedOut, toasts[len(toasts)-1].Message)
	}
}

func TestLogoutFromAnonymousSession(t *testing.T) {
	a, _ := newTestApp(t, Always(true))
	a.Navigate("/student")
	a.Logout()
	require.True(t, a.Session.Anonymous())
	require.Equal(t, "/", a.Address.Current())
}

func TestProfileMenuClosesOnOutsideActivation(t *testing.T) {
	a, _ := newTestApp(t, Always(true))
	a.Navigate("/admin")
	page := a.Page()
	page.Activate(views.RegionProfile)
	require.True(t, page.Flag(views.RegionProfileMenu))
	page.Activate(views.RegionProfile)
	require.False(t, page.Flag(views.RegionProfileMenu))

	page.Activate(views.RegionProfile)
	page.Activate("somewhere-else")
	require.False(t, page.Flag(views.RegionProfileMenu))

	page.Activate(views.RegionProfile)
	page.Activate(views.RegionEditProfile)
	require.False(t, page.Flag(views.RegionProfileMenu))
	require.Equal(t, MsgEditProfile, a.Notify.Toasts()[0].Message)
}

func TestAdminChipsNavigate(t *testing.T) {
	a, _ := newTestApp(t, Always(true))
	a.Navigate("/admin")
	a.Page().Activate(views.RegionPastChip)
	require.Equal(t, route.AdminPast, a.View().Screen)
}

func openAttendance(t *testing.T, a *App, entry string) *surface.Layer {
	t.Helper()
	require.True(t, a.Page().Activate(views.RegionMark))
	m, l := a.Notify.Modal()
	require.NotNil(t, m)
	require.Equal(t, "QR Scanner", m.Title)
	require.True(t, l.Activate(entry))
	m, l = a.Notify.Modal()
	require.Equal(t, "Attendance Form", m.Title)
	return l
}

func loggedInStudent(t *testing.T, decide Decider) *App {
	t.Helper()
	a, _ := newTestApp(t, decide)
	a.Session.SignUp(session.Identity{FirstName: "Lin", Email: "lin@example.com"}, session.RoleStudent)
	a.Navigate("/student")
	return a
}

func TestAttendanceSuccessNavigatesToFeedback(t *testing.T) {
	for _, entry := range []string{views.RegionUploadQR, views.RegionOpenCam} {
		a := loggedInStudent(t, Always(true))
		l := openAttendance(t, a, entry)
		require.Equal(t, "Lin", l.Value(views.FormAttendance, "name"))
		require.Equal(t, "lin@example.com", l.Value(views.FormAttendance, "email"))
		fill(t, l, views.FormAttendance, map[string]string{"mobile": "9876543210"})
		require.True(t, l.Submit(views.FormAttendance))

		m, _ := a.Notify.Modal()
		require.Nil(t, m)
		msg, _ := a.Notify.Alerting()
		require.Equal(t, MsgAttendanceOK, msg)
		require.Equal(t, "/feedback", a.Address.Current())
	}
}

func TestAttendanceFailureStaysOnDashboard(t *testing.T) {
	a := loggedInStudent(t, Always(false))
	l := openAttendance(t, a, views.RegionOpenCam)
	fill(t, l, views.FormAttendance, map[string]string{"mobile": "1"})
	renders := a.Renders()
	l.Submit(views.FormAttendance)

	msg, _ := a.Notify.Alerting()
	require.Equal(t, MsgAttendanceFail, msg)
	require.Equal(t, "/student", a.Address.Current())
	require.Equal(t, renders, a.Renders())
}

func TestAttendanceValidationKeepsModalOpen(t *testing.T) {
	decided := false
	a := loggedInStudent(t, func(float64) bool { decided = true; return true })
	l := openAttendance(t, a, views.RegionUploadQR)
	l.Submit(views.FormAttendance)

	require.False(t, decided)
	m, _ := a.Notify.Modal()
	require.NotNil(t, m)
	require.Equal(t, surface.FieldID(views.FormAttendance, "mobile"), l.Focused())
}

func TestAttendanceSuccessForNonStudentStays(t *testing.T) {
	a, _ := newTestApp(t, Always(true))
	a.Navigate("/student")
	l := openAttendance(t, a, views.RegionUploadQR)
	fill(t, l, views.FormAttendance, map[string]string{"name": "x", "email": "y", "mobile": "z"})
	l.Submit(views.FormAttendance)
	require.Equal(t, "/student", a.Address.Current())
}

func TestFaceIndicatorToggleIsAnInvolution(t *testing.T) {
	a := loggedInStudent(t, Always(true))
	l := openAttendance(t, a, views.RegionUploadQR)
	start := l.Flag(views.RegionFace)
	l.Activate(views.RegionToggleFace)
	require.NotEqual(t, start, l.Flag(views.RegionFace))
	l.Activate(views.RegionToggleFace)
	require.Equal(t, start, l.Flag(views.RegionFace))
}

func TestDecideUsesConfiguredProbability(t *testing.T) {
	var got float64
	a := loggedInStudent(t, func(p float64) bool { got = p; return false })
	l := openAttendance(t, a, views.RegionUploadQR)
	fill(t, l, views.FormAttendance, map[string]string{"mobile": "1"})
	l.Submit(views.FormAttendance)
	require.InDelta(t, DefaultSuccessProbability, got, 1e-9)
}

func TestConfiguredProbabilityBoundsAreKept(t *testing.T) {
	for _, p := range []float64{0, 1} {
		a := New(context.Background(), Deps{}, Options{SuccessProbability: p})
		require.Equal(t, p, a.Options().SuccessProbability)
	}
	a := New(context.Background(), Deps{}, Options{SuccessProbability: 1.5})
	require.Equal(t, DefaultSuccessProbability, a.Options().SuccessProbability)
}

func TestZeroProbabilityAlwaysRejects(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	a := New(context.Background(), Deps{
		Store:  store.New(store.NewMemory(), log),
		Decide: SeededDecider(7),
		Log:    log,
	}, Options{SuccessProbability: 0})
	a.Start()
	a.Session.LogIn(session.RoleStudent)
	a.Navigate(route.PathStudent)
	for range 20 {
		l := openAttendance(t, a, views.RegionOpenCam)
		fill(t, l, views.FormAttendance, map[string]string{"mobile": "1", "email": "u@example.com"})
		l.Submit(views.FormAttendance)
		msg, ok := a.Notify.Alerting()
		require.True(t, ok)
		require.Equal(t, MsgAttendanceFail, msg)
		a.Notify.DismissAlert()
	}
}

func TestSeededDeciderSuccessRate(t *testing.T) {
	decide := SeededDecider(42)
	const trials = 20000
	ok := 0
	for range trials {
		if decide(DefaultSuccessProbability) {
			ok++
		}
	}
	require.InDelta(t, 0.8, float64(ok)/trials, 0.02)
}

func TestFeedbackSubmission(t *testing.T) {
	a := loggedInStudent(t, Always(true))
	a.Navigate("/feedback")
	fill(t, a.Page(), views.FormFeedback, map[string]string{"name": "Lin", "q1": "Good", "q2": " demos ", "q3": "5"})
	a.Page().Submit(views.FormFeedback)

	fb := a.Data.Feedback()
	require.Len(t, fb, 1)
	require.Equal(t, "Lin", fb[0].Name)
	require.Equal(t, "demos", fb[0].Liked)
	require.Equal(t, 5, fb[0].Score)
	require.Equal(t, fixedNow, fb[0].CreatedAt)
	require.NotEmpty(t, fb[0].ID)
	require.Equal(t, "/student", a.Address.Current())

	a.Navigate("/admin/feedback")
	notes := a.View().Blocks[1].(views.Notes)
	require.Equal(t, "Lin", notes.Items[0].Title)
}

func TestClockOnlyWritesWhenMounted(t *testing.T) {
	a, _ := newTestApp(t, Always(true))
	require.False(t, a.TickClock())

	a.Navigate("/student")
	txt, ok := a.Page().Text(views.RegionClock)
	require.True(t, ok, "first tick happens at render")
	require.Equal(t, "09:30:15", txt)

	a.Navigate("/")
	require.False(t, a.TickClock())
}

func TestNavigateFromHandlerRendersOnce(t *testing.T) {
	a, _ := newTestApp(t, Always(true))
	before := a.Renders()
	a.Page().Activate(views.RegionGoStudent)
	require.Equal(t, before+1, a.Renders())
}

func TestLoadsPersistedEventsAtStartup(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	st := store.New(store.NewMemory(), log)
	ctx := context.Background()
	require.NoError(t, st.Save(ctx, store.EventsKey, []repository.EventRecord{{Name: "Persisted"}}))

	a := New(ctx, Deps{Store: st, Log: log, Address: "/admin/past"}, DefaultOptions())
	a.Start()
	require.Equal(t, "Persisted", a.View().Blocks[1].(views.Notes).Items[0].Title)
}
