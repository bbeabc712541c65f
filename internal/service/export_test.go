package service

import "github.com/emmaderbe/SocialApp/internal/model"

// Export for testing
var IsImage = isImage
var MapFeedResponses = mapFeedResponses

type LoadTrigger = loadTrigger

const (
	TriggerViewReady = triggerViewReady
	TriggerRefresh   = triggerRefresh
	TriggerScrollEnd = triggerScrollEnd
)

type LoadingStateMachine = loadingStateMachine

func NewLoadingStateMachine(notify func(model.LoadingState)) *LoadingStateMachine {
	return newLoadingStateMachine(notify)
}

func (m *loadingStateMachine) Begin(t LoadTrigger) { m.begin(t) }
func (m *loadingStateMachine) Finish() { m.finish() }
func (m *loadingStateMachine) Current() model.LoadingState {
	return m.current()
}

func (t loadTrigger) Mode() model.LoadingState { return t.mode() }
func (t loadTrigger) Resets() bool { return t.resets() }
