package core

import "sync"

type EventContext struct {
	Data struct {
		U32 [4]uint32
		F32 [4]float32
		C   [4]string
	}
	// Payload carries a value that does not fit the fixed arrays, e.g. a loaded scene.
	Payload interface{}
}

// System internal event codes. Application should use codes beyond 255.
type SystemEventCode int

const (
	// Shuts the application down on the next tick.
	EVENT_CODE_APPLICATION_QUIT SystemEventCode = 0x01

	// A scene file was loaded for the first time.
	/* Context usage:
	 * string path = data.Data.C[0];
	 * *scene.Scene = data.Payload;
	 */
	EVENT_CODE_SCENE_LOADED SystemEventCode = 0x02

	// A scene file changed on disk and was parsed again.
	/* Context usage:
	 * string path = data.Data.C[0];
	 * *scene.Scene = data.Payload;
	 */
	EVENT_CODE_SCENE_RELOADED SystemEventCode = 0x03

	// A culling pass finished.
	/* Context usage:
	 * u32 contained = data.Data.U32[0];
	 * u32 intersecting = data.Data.U32[1];
	 * u32 disjoint = data.Data.U32[2];
	 */
	EVENT_CODE_CULL_COMPLETED SystemEventCode = 0x04

	MAX_MESSAGE_CODES = 0xFF
)

// Should return true if handled.
type FnOnEvent func(code SystemEventCode, sender interface{}, listener_inst interface{}, data EventContext) bool

type registeredEvent struct {
	listener interface{}
	callback FnOnEvent
}

type eventSystemState struct {
	mu         sync.RWMutex
	registered [MAX_MESSAGE_CODES][]*registeredEvent
}

var eventState *eventSystemState = nil
var eventMu sync.Mutex

func EventInitialize() bool {
	eventMu.Lock()
	defer eventMu.Unlock()
	if eventState != nil {
		return false
	}
	eventState = &eventSystemState{}
	return true
}

func EventShutdown() error {
	eventMu.Lock()
	defer eventMu.Unlock()
	eventState = nil
	return nil
}

func currentEventState() *eventSystemState {
	eventMu.Lock()
	defer eventMu.Unlock()
	return eventState
}

func validEventCode(code SystemEventCode) bool {
	return code >= 0 && code < MAX_MESSAGE_CODES
}

/**
 * Register to listen for when events are sent with the provided code. Events with duplicate
 * listener combos will not be registered again and will cause this to return false.
 * @param code The event code to listen for.
 * @param listener A listener instance. Can be nil.
 * @param onEvent The callback to be invoked when the event code is fired.
 * @returns true if the event is successfully registered; otherwise false.
 */
func EventRegister(code SystemEventCode, listener interface{}, onEvent FnOnEvent) bool {
	state := currentEventState()
	if state == nil || onEvent == nil || !validEventCode(code) {
		return false
	}
	state.mu.Lock()
	defer state.mu.Unlock()
	for _, e := range state.registered[code] {
		if e.listener == listener {
			LogWarn("listener already registered for event code %d", code)
			return false
		}
	}
	state.registered[code] = append(state.registered[code], &registeredEvent{
		listener: listener,
		callback: onEvent,
	})
	return true
}

/**
 * Unregister from listening for when events are sent with the provided code. If no matching
 * registration is found, this function returns false.
 * @param code The event code to stop listening for.
 * @param listener The listener instance that was registered. Can be nil.
 * @returns true if the event is successfully unregistered; otherwise false.
 */
func EventUnregister(code SystemEventCode, listener interface{}) bool {
	state := currentEventState()
	if state == nil || !validEventCode(code) {
		return false
	}
	state.mu.Lock()
	defer state.mu.Unlock()
	events := state.registered[code]
	for i, e := range events {
		if e.listener == listener {
			state.registered[code] = append(events[:i], events[i+1:]...)
			return true
		}
	}
	return false
}

/**
 * Fires an event to listeners of the given code. If an event handler returns
 * true, the event is considered handled and is not passed on to any more listeners.
 * @param code The event code to fire.
 * @param sender The sender. Can be nil.
 * @param context The event data.
 * @returns true if handled, otherwise false.
 */
func EventFire(code SystemEventCode, sender interface{}, context EventContext) bool {
	state := currentEventState()
	if state == nil || !validEventCode(code) {
		return false
	}
	state.mu.RLock()
	events := make([]*registeredEvent, len(state.registered[code]))
	copy(events, state.registered[code])
	state.mu.RUnlock()

	for _, e := range events {
		if e.callback(code, sender, e.listener, context) {
			return true
		}
	}
	return false
}
