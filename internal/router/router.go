package router

import (
	"reflect"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/weakspot/internal/screen"
	"github.com/abhisek/weakspot/internal/session"
)

// Factory builds the screen for a rendered view model.
type Factory func(model session.Screen) screen.Screen

// TransitionFunc observes every applied event. It may return a command
// for side effects such as persistence.
type TransitionFunc func(prev, next session.State, e session.Event) tea.Cmd

// Router owns the session state and the screen showing it. Screens send
// screen.EventMsg; the router applies the event and swaps the active
// screen when the rendered model changes kind.
type Router struct {
	state        session.State
	factory      Factory
	onTransition TransitionFunc

	active screen.Screen
	kind   reflect.Type
}

// New creates a Router showing the screen for initial.
func New(initial session.State, factory Factory, onTransition TransitionFunc) *Router {
	r := &Router{
		state:        initial,
		factory:      factory,
		onTransition: onTransition,
	}
	r.rebuild(session.Render(initial))
	return r
}

func (r *Router) rebuild(model session.Screen) {
	r.active = r.factory(model)
	r.kind = reflect.TypeOf(model)
}

// Init runs the first screen's Init.
func (r *Router) Init() tea.Cmd {
	if r.active == nil {
		return nil
	}
	return r.active.Init()
}

// State returns the current session state.
func (r *Router) State() session.State {
	return r.state
}

// Active returns the screen currently shown.
func (r *Router) Active() screen.Screen {
	return r.active
}

// Apply runs e through the session controller and updates the screen.
func (r *Router) Apply(e session.Event) tea.Cmd {
	prev := r.state
	r.state = session.Apply(prev, e)

	var cmds []tea.Cmd
	if r.onTransition != nil {
		cmds = append(cmds, r.onTransition(prev, r.state, e))
	}

	model := session.Render(r.state)
	if reflect.TypeOf(model) != r.kind || prev.View != r.state.View {
		r.rebuild(model)
		cmds = append(cmds, r.active.Init())
	} else if s, ok := r.active.(screen.Syncer); ok {
		s.Sync(model)
	} else {
		r.rebuild(model)
		cmds = append(cmds, r.active.Init())
	}
	return tea.Batch(cmds...)
}

// Update applies session events and forwards everything else to the
// active screen.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	if ev, ok := msg.(screen.EventMsg); ok {
		cmds := make([]tea.Cmd, 0, len(ev.Events))
		for _, e := range ev.Events {
			cmds = append(cmds, r.Apply(e))
		}
		return tea.Batch(cmds...)
	}
	if r.active == nil {
		return nil
	}
	updated, cmd := r.active.Update(msg)
	r.active = updated
	return cmd
}

// View renders the active screen.
func (r *Router) View(width, height int) string {
	if r.active == nil {
		return ""
	}
	return r.active.View(width, height)
}
