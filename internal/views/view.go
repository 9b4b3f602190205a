package views

import (
	"github.com/jask/smartattend/internal/route"
	"github.com/jask/smartattend/internal/session"
)

// Region ids produced by the views and used by interaction wiring.
const (
	RegionGoStudent   = "goStudent"
	RegionGoAdmin     = "goAdmin"
	RegionLoginLink   = "loginLink"
	RegionSignupLink  = "signupLink"
	RegionMark        = "markBtn"
	RegionCreateChip  = "createChip"
	RegionPastChip    = "pastChip"
	RegionFeedChip    = "feedbackChip"
	RegionQRWrap      = "qrWrap"
	RegionQRMeta      = "qrMeta"
	RegionProfile     = "profileBtn"
	RegionProfileMenu = "profileMenu"
	RegionEditProfile = "editProfile"
	RegionLogout      = "logoutBtn"
	RegionClock       = "clock"

	RegionUploadQR   = "uploadQR"
	RegionOpenCam    = "openCam"
	RegionFace       = "faceCircle"
	RegionToggleFace = "toggleFace"
	RegionModalClose = "modalClose"

	FormSignup     = "signupForm"
	FormLogin      = "loginForm"
	FormEvent      = "eventForm"
	FormFeedback   = "fbForm"
	FormAttendance = "attForm"
)

// AppName is shown in the top bar.
const AppName = "Smart Attendance"

// Chrome is the shared dashboard layout around page content. Sidebar adds the
// notification, calendar and clock panels.
type Chrome struct {
	Avatar  string
	Menu    []Button
	Sidebar bool
	Notices []string
}

// View is the typed descriptor of one screen.
type View struct {
	Screen route.Screen
	Role   session.Role
	Title  string
	Chrome *Chrome
	Blocks []Block
}

// Regions lists every region id the view produces, in document order,
// including chrome and nested form blocks.
func (v View) Regions() []string {
	var ids []string
	if v.Chrome != nil {
		ids = append(ids, RegionProfile, RegionProfileMenu)
		for _, b := range v.Chrome.Menu {
			ids = append(ids, b.ID)
		}
	}
	ids = append(ids, BlockRegions(v.Blocks)...)
	return append(ids, BlockRegions(Sidebar(v.Chrome))...)
}

// Sidebar is the block column drawn beside dashboard content: notices, the
// calendar card and the clock. It is empty when c has no sidebar.
func Sidebar(c *Chrome) []Block {
	if c == nil || !c.Sidebar {
		return nil
	}
	notes := make([]Note, 0, len(c.Notices))
	for _, n := range c.Notices {
		notes = append(notes, Note{Body: n})
	}
	return []Block{
		Notes{Title: "Notifications & Alerts", Items: notes},
		Placeholder{Label: "Google Calendar (placeholder)"},
		Placeholder{Label: "Clock", TextID: RegionClock},
	}
}

// BlockRegions lists region ids in blocks, in order.
func BlockRegions(blocks []Block) []string {
	var ids []string
	for _, b := range blocks {
		switch b := b.(type) {
		case Button:
			ids = append(ids, b.ID)
		case Link:
			ids = append(ids, b.ID)
		case Panel:
			ids = append(ids, b.ID)
			if b.TextID != "" {
				ids = append(ids, b.TextID)
			}
		case Indicator:
			ids = append(ids, b.ID)
		case Placeholder:
			if b.TextID != "" {
				ids = append(ids, b.TextID)
			}
		case Form:
			ids = append(ids, b.ID)
			ids = append(ids, BlockRegions(b.Blocks)...)
			if b.Footer != nil {
				ids = append(ids, b.Footer.ID)
			}
		}
	}
	return ids
}

// Forms returns the forms in blocks, in order.
func Forms(blocks []Block) []Form {
	var out []Form
	for _, b := range blocks {
		if f, ok := b.(Form); ok {
			out = append(out, f)
		}
	}
	return out
}
