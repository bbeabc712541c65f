package service

import "github.com/emmaderbe/SocialApp/internal/model"

type loadTrigger int

const (
	triggerViewReady loadTrigger = iota
	triggerRefresh
	triggerScrollEnd
)

func (t loadTrigger) String() string {
	switch t {
	case triggerViewReady:
		return "view_ready"
	case triggerRefresh:
		return "refresh"
	case triggerScrollEnd:
		return "scroll_end"
	default:
		return "unknown"
	}
}

func (t loadTrigger) mode() model.LoadingState {
	switch t {
	case triggerViewReady:
		return model.LoadingInitial
	case triggerRefresh:
		return model.LoadingRefreshing
	case triggerScrollEnd:
		return model.LoadingPaginating
	default:
		return model.LoadingIdle
	}
}

// resets reports whether the trigger restarts pagination from the first page.
func (t loadTrigger) resets() bool {
	return t == triggerViewReady || t == triggerRefresh
}

// loadingStateMachine tracks the current loading mode and reports transitions.
type loadingStateMachine struct {
	state  model.LoadingState
	notify func(model.LoadingState)
}

func newLoadingStateMachine(notify func(model.LoadingState)) *loadingStateMachine {
	return &loadingStateMachine{state: model.LoadingIdle, notify: notify}
}

func (m *loadingStateMachine) begin(t loadTrigger) {
	m.set(t.mode())
}

func (m *loadingStateMachine) finish() {
	m.set(model.LoadingIdle)
}

func (m *loadingStateMachine) current() model.LoadingState {
	return m.state
}

func (m *loadingStateMachine) set(state model.LoadingState) {
	if state == m.state {
		return
	}
	m.state = state
	if m.notify != nil {
		m.notify(state)
	}
}
