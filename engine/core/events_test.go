package core

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEvents(t *testing.T) {
	require.True(t, EventInitialize())
	defer EventShutdown()
	require.False(t, EventInitialize())

	var received []string
	listenerA, listenerB := "a", "b"

	onEvent := func(code SystemEventCode, sender interface{}, listener interface{}, data EventContext) bool {
		received = append(received, listener.(string)+":"+data.Data.C[0])
		return listener == listenerA
	}

	require.True(t, EventRegister(EVENT_CODE_SCENE_LOADED, listenerB, onEvent))
	require.True(t, EventRegister(EVENT_CODE_SCENE_LOADED, listenerA, onEvent))
	require.False(t, EventRegister(EVENT_CODE_SCENE_LOADED, listenerA, onEvent))
	require.False(t, EventRegister(MAX_MESSAGE_CODES, listenerA, onEvent))

	var ctx EventContext
	ctx.Data.C[0] = "scene.toml"

	// b does not handle the event so it reaches a, which does.
	require.True(t, EventFire(EVENT_CODE_SCENE_LOADED, nil, ctx))
	require.Equal(t, []string{"b:scene.toml", "a:scene.toml"}, received)

	require.False(t, EventFire(EVENT_CODE_SCENE_RELOADED, nil, ctx))

	require.True(t, EventUnregister(EVENT_CODE_SCENE_LOADED, listenerA))
	require.False(t, EventUnregister(EVENT_CODE_SCENE_LOADED, listenerA))

	received = nil
	require.False(t, EventFire(EVENT_CODE_SCENE_LOADED, nil, ctx))
	require.Equal(t, []string{"b:scene.toml"}, received)
}

func TestEventsRequireInitialize(t *testing.T) {
	require.NoError(t, EventShutdown())
	onEvent := func(SystemEventCode, interface{}, interface{}, EventContext) bool { return true }
	require.False(t, EventRegister(EVENT_CODE_APPLICATION_QUIT, nil, onEvent))
	require.False(t, EventFire(EVENT_CODE_APPLICATION_QUIT, nil, EventContext{}))
	require.False(t, EventUnregister(EVENT_CODE_APPLICATION_QUIT, nil))
}
