package eyekit

import "sort"

// EventSink is the interface for optional event forwarding, such as an ECS
// bridge. When set on an editor, selection and edit events are sent to it.
type EventSink interface {
	EmitEvent(event EditEvent)
}

// EditEventType identifies a kind of edit event.
type EditEventType uint8

const (
	EventSelect EditEventType = iota // fires when the selection changes
	EventBegin                       // fires when a transform mode is entered
	EventCommit                      // fires when a transform is confirmed
	EventCancel                      // fires when a transform is rolled back
	EventEdit                        // fires after a direct anchor or handle drag
)

var editEventNames = [...]string{"select", "begin", "commit", "cancel", "edit"}

func (t EditEventType) String() string {
	if int(t) < len(editEventNames) {
		return editEventNames[t]
	}
	return "unknown"
}

// EditEvent carries an editor transition to an EventSink.
type EditEvent struct {
	Type      EditEventType
	Key       EditorKey
	Mode      Mode // mode after the transition
	Selection Selection
}

// EditorKey identifies one editable outline: which eye and which part.
type EditorKey struct {
	Side Side
	Part Part
}

func (k EditorKey) String() string { return k.Side.String() + "/" + k.Part.String() }

// Editors holds one EditorState per editable outline, created on first use.
// Editors are independent: each has its own selection and mode.
type Editors struct {
	states map[EditorKey]*EditorState
	sink   EventSink
	debug  bool
}

// NewEditors returns an empty registry.
func NewEditors() *Editors {
	return &Editors{states: make(map[EditorKey]*EditorState)}
}

// State returns the editor for key, creating it if needed.
func (r *Editors) State(key EditorKey) *EditorState {
	if st, ok := r.states[key]; ok {
		return st
	}
	st := NewEditorState(key)
	st.Sink = r.sink
	st.debug = r.debug
	r.states[key] = st
	return st
}

// Lookup returns the editor for key without creating it.
func (r *Editors) Lookup(key EditorKey) (*EditorState, bool) {
	st, ok := r.states[key]
	return st, ok
}

// Drop discards the editor for key, for when its widget goes away. An
// active transform is cancelled first so the outline is left unmodified.
func (r *Editors) Drop(key EditorKey) {
	if st, ok := r.states[key]; ok {
		st.Cancel()
		delete(r.states, key)
	}
}

// Keys returns the registered editor keys in a stable order.
func (r *Editors) Keys() []EditorKey {
	keys := make([]EditorKey, 0, len(r.states))
	for k := range r.states {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Side != keys[j].Side {
			return keys[i].Side < keys[j].Side
		}
		return keys[i].Part < keys[j].Part
	})
	return keys
}

// SetEventSink sets the sink for current and future editors.
func (r *Editors) SetEventSink(sink EventSink) {
	r.sink = sink
	for _, st := range r.states {
		st.Sink = sink
	}
}

// SetDebugMode enables collinearity checks after edits on current and future
// editors. Violations are logged at Warn level.
func (r *Editors) SetDebugMode(enabled bool) {
	r.debug = enabled
	for _, st := range r.states {
		st.debug = enabled
	}
}
