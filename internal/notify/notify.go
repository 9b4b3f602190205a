// Package notify is the notification surface: auto-expiring toasts, at most
// one modal and at most one blocking alert. It is independent of the page.
package notify

import (
	"time"

	"github.com/google/uuid"

	"github.com/jask/smartattend/internal/surface"
	"github.com/jask/smartattend/internal/views"
)

const DefaultToastTTL = 2 * time.Second

type Toast struct {
	ID      string
	Message string
	IsErr   bool
	Expires time.Time
}

// Modal describes a dialog. Its body and actions are mounted into the modal
// layer, plus a close button.
type Modal struct {
	Title   string
	Body    []views.Block
	Actions []views.Button
}

type Surface struct {
	ttl    time.Duration
	now    func() time.Time
	toasts []Toast
	fresh  []Toast
	modal  *Modal
	layer  *surface.Layer
	alert  string
}

type Option func(*Surface)

func WithTTL(d time.Duration) Option {
	return func(s *Surface) {
		if d > 0 {
			s.ttl = d
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Surface) {
		if now != nil {
			s.now = now
		}
	}
}

func New(opts ...Option) *Surface {
	s := &Surface{ttl: DefaultToastTTL, now: time.Now, layer: surface.New()}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *Surface) TTL() time.Duration { return s.ttl }

// Toast queues a transient message. Several toasts may be visible at once.
func (s *Surface) Toast(msg string) Toast {
	return s.push(msg, false)
}

// Error queues a transient error message.
func (s *Surface) Error(msg string) Toast {
	return s.push(msg, true)
}

func (s *Surface) push(msg string, isErr bool) Toast {
	t := Toast{ID: uuid.NewString(), Message: msg, IsErr: isErr, Expires: s.now().Add(s.ttl)}
	s.toasts = append(s.toasts, t)
	s.fresh = append(s.fresh, t)
	return t
}

// Toasts returns the visible toasts, oldest first.
func (s *Surface) Toasts() []Toast {
	return append([]Toast(nil), s.toasts...)
}

// TakeNew returns the toasts queued since the previous call, so the caller
// can schedule their expiry.
func (s *Surface) TakeNew() []Toast {
	out := s.fresh
	s.fresh = nil
	return out
}

// Expire removes a toast. Expiring an unknown or already expired toast is a
// no-op.
func (s *Surface) Expire(id string) bool {
	for i, t := range s.toasts {
		if t.ID == id {
			s.toasts = append(s.toasts[:i], s.toasts[i+1:]...)
			return true
		}
	}
	return false
}

// Sweep drops every toast whose expiry is not after now.
func (s *Surface) Sweep() int {
	now := s.now()
	kept := s.toasts[:0]
	for _, t := range s.toasts {
		if t.Expires.After(now) {
			kept = append(kept, t)
		}
	}
	n := len(s.toasts) - len(kept)
	s.toasts = kept
	return n
}

// OpenModal shows m, replacing any open modal, and returns the layer its
// regions live in so behavior can be attached. The close button is wired
// here.
func (s *Surface) OpenModal(m Modal) *surface.Layer {
	s.modal = &m
	blocks := make([]views.Block, 0, len(m.Body)+len(m.Actions)+1)
	blocks = append(blocks, m.Body...)
	for _, a := range m.Actions {
		blocks = append(blocks, a)
	}
	blocks = append(blocks, views.Button{ID: views.RegionModalClose, Label: "✕"})
	s.layer.MountBlocks(blocks)
	s.layer.AttachRegion(views.RegionModalClose, func(surface.Event) { s.CloseModal() })
	return s.layer
}

// CloseModal hides the modal. Closing when nothing is open is a no-op.
func (s *Surface) CloseModal() {
	s.modal = nil
	s.layer.Clear()
}

// Modal returns the open modal and its layer, or nil.
func (s *Surface) Modal() (*Modal, *surface.Layer) {
	if s.modal == nil {
		return nil, nil
	}
	return s.modal, s.layer
}

// Alert shows a blocking notice. It must be dismissed before anything else
// reacts to input.
func (s *Surface) Alert(msg string) { s.alert = msg }

func (s *Surface) Alerting() (string, bool) { return s.alert, s.alert != "" }

func (s *Surface) DismissAlert() { s.alert = "" }
