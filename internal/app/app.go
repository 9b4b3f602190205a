package app

import (
	"context"
	"log/slog"
	"math"
	"time"

	"github.com/jask/smartattend/internal/notify"
	"github.com/jask/smartattend/internal/route"
	"github.com/jask/smartattend/internal/session"
	"github.com/jask/smartattend/internal/store"
	"github.com/jask/smartattend/internal/surface"
	"github.com/jask/smartattend/internal/views"
)

// DefaultSuccessProbability is the chance that an attendance submission is
// accepted.
const DefaultSuccessProbability = 0.8

// Deps are the collaborators of an App. Zero fields get defaults.
type Deps struct {
	Store   *store.Store
	Notify  *notify.Surface
	Decide  Decider
	Log     *slog.Logger
	Now     func() time.Time
	Address string
}

// Options tune behavior. SuccessProbability is taken as given, zero
// included; start from DefaultOptions for the stock 0.8.
type Options struct {
	SuccessProbability float64
	TimeFormat         string
}

func DefaultOptions() Options {
	return Options{SuccessProbability: DefaultSuccessProbability, TimeFormat: time.TimeOnly}
}

// App is the application context plus the router operating on it. It is
// created once at startup and is only mutated through its methods, all of
// which run on the single event loop.
type App struct {
	ctx     context.Context
	Session *session.State
	Data    *Data
	Address *route.Address
	Notify  *notify.Surface
	page    *surface.Layer
	decide  Decider
	log     *slog.Logger
	now     func() time.Time
	opts    Options

	current   views.View
	renders   int
	rendering bool
	pending   bool
}

func New(ctx context.Context, deps Deps, opts Options) *App {
	if deps.Notify == nil {
		deps.Notify = notify.New()
	}
	if deps.Decide == nil {
		deps.Decide = RandomDecider(nil)
	}
	if deps.Log == nil {
		deps.Log = slog.Default()
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if p := opts.SuccessProbability; math.IsNaN(p) || p < 0 || p > 1 {
		opts.SuccessProbability = DefaultSuccessProbability
	}
	if opts.TimeFormat == "" {
		opts.TimeFormat = time.TimeOnly
	}
	a := &App{
		ctx:     ctx,
		Session: session.New(),
		Data:    LoadData(ctx, deps.Store),
		Address: route.NewAddress(deps.Address),
		Notify:  deps.Notify,
		page:    surface.New(),
		decide:  deps.Decide,
		log:     deps.Log.With("component", "router"),
		now:     deps.Now,
		opts:    opts,
	}
	a.Address.OnChange(func(string) { a.Render() })
	return a
}

// Start performs the first render, moving an empty address to the root.
func (a *App) Start() {
	if a.Address.Current() == "" {
		a.Navigate(route.PathRoot)
		return
	}
	a.Render()
}

// Navigate moves the address to to and renders. When the address changes the
// change event does the render; otherwise the render is explicit. Either way
// one call renders once.
func (a *App) Navigate(to string) {
	if a.Address.Set(to) {
		return
	}
	a.Render()
}

// Back returns to the previous address, if any.
func (a *App) Back() bool { return a.Address.Back() }

// Render resolves the current address, mounts the view and wires it. A render
// requested while one is in progress runs after it completes.
func (a *App) Render() {
	if a.rendering {
		a.pending = true
		return
	}
	a.rendering = true
	defer func() { a.rendering = false }()
	for {
		a.pending = false
		a.renderOnce()
		if !a.pending {
			return
		}
	}
}

func (a *App) renderOnce() {
	addr := a.Address.Current()
	m := route.Resolve(addr)
	v := views.Build(m, a.Session, a.Data.Snapshot())
	a.page.Mount(v)
	a.current = v
	a.renders++
	a.log.Debug("render", "address", addr, "screen", m.Screen.String(), "rule", m.Rule, "generation", a.page.Generation())
	a.wire(v)
}

// Resolve maps an address without rendering it.
func (a *App) Resolve(addr string) route.Match { return route.Resolve(addr) }

// View is the currently mounted view.
func (a *App) View() views.View { return a.current }

// Page is the mount point of the current view.
func (a *App) Page() *surface.Layer { return a.page }

// Renders counts completed renders.
func (a *App) Renders() int { return a.renders }

// ActiveLayer is where input goes: the modal when one is open, else the page.
func (a *App) ActiveLayer() *surface.Layer {
	if m, l := a.Notify.Modal(); m != nil {
		return l
	}
	return a.page
}

// TickClock writes the wall-clock time into the clock region. It reports
// false, and does nothing, when the current view has no clock.
func (a *App) TickClock() bool {
	return a.page.SetText(views.RegionClock, a.now().Format(a.opts.TimeFormat))
}

func (a *App) Options() Options { return a.opts }
