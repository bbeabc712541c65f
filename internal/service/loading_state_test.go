package service_test

import (
	"testing"

	"github.com/emmaderbe/SocialApp/internal/model"
	"github.com/emmaderbe/SocialApp/internal/service"

	"github.com/stretchr/testify/require"
)

func TestLoadTrigger_Mode(t *testing.T) {
	require.Equal(t, model.LoadingInitial, service.TriggerViewReady.Mode())
	require.Equal(t, model.LoadingRefreshing, service.TriggerRefresh.Mode())
	require.Equal(t, model.LoadingPaginating, service.TriggerScrollEnd.Mode())

	require.True(t, service.TriggerViewReady.Resets())
	require.True(t, service.TriggerRefresh.Resets())
	require.False(t, service.TriggerScrollEnd.Resets())
}

func TestLoadingStateMachine_NotifiesTransitions(t *testing.T) {
	var seen []model.LoadingState
	m := service.NewLoadingStateMachine(func(s model.LoadingState) { seen = append(seen, s) })

	require.Equal(t, model.LoadingIdle, m.Current())

	m.Begin(service.TriggerViewReady)
	m.Finish()
	m.Begin(service.TriggerRefresh)
	m.Begin(service.TriggerRefresh)
	m.Finish()
	m.Finish()

	require.Equal(t, []model.LoadingState{
		model.LoadingInitial,
		model.LoadingIdle,
		model.LoadingRefreshing,
		model.LoadingIdle,
	}, seen)
	require.Equal(t, model.LoadingIdle, m.Current())
}

func TestLoadingStateMachine_NilNotify(t *testing.T) {
	m := service.NewLoadingStateMachine(nil)
	m.Begin(service.TriggerScrollEnd)
	require.Equal(t, model.LoadingPaginating, m.Current())
}
