package eyekit

import (
	"slices"
	"testing"
)

func TestEditorsStateCreatesOnce(t *testing.T) {
	r := NewEditors()
	key := EditorKey{Side: SideRight, Part: PartPupil}
	if _, ok := r.Lookup(key); ok {
		t.Fatal("Lookup found an editor before State")
	}
	a := r.State(key)
	b := r.State(key)
	if a != b {
		t.Error("State returned a different editor for the same key")
	}
	if a.Key != key {
		t.Errorf("Key = %v", a.Key)
	}
	if got, ok := r.Lookup(key); !ok || got != a {
		t.Error("Lookup did not find the editor")
	}
}

func TestEditorsIndependent(t *testing.T) {
	r := NewEditors()
	o := Circle(1)
	a := r.State(EditorKey{Side: SideLeft, Part: PartIris})
	b := r.State(EditorKey{Side: SideLeft, Part: PartPupil})
	a.SelectAll(&o)
	if !b.Selection().Empty() {
		t.Error("selection leaked between editors")
	}
}

func TestEditorsKeysSorted(t *testing.T) {
	r := NewEditors()
	keys := []EditorKey{
		{SideRight, PartIris},
		{SideLeft, PartEyebrowGuide},
		{SideLeft, PartEyeOpen},
		{SideRight, PartEyeOpen},
	}
	for _, k := range keys {
		r.State(k)
	}
	want := []EditorKey{
		{SideLeft, PartEyeOpen},
		{SideLeft, PartEyebrowGuide},
		{SideRight, PartEyeOpen},
		{SideRight, PartIris},
	}
	if got := r.Keys(); !slices.Equal(got, want) {
		t.Errorf("Keys = %v, want %v", got, want)
	}
}

func TestEditorsDropCancels(t *testing.T) {
	r := NewEditors()
	o := Circle(1)
	v := NewViewport(800, 600, 100)
	key := EditorKey{Side: SideLeft, Part: PartIris}
	st := r.State(key)
	st.SelectAll(&o)
	st.BeginGrab(&o, v, Vec2{400, 300})
	st.Apply(v, Vec2{450, 300})

	r.Drop(key)
	if o != Circle(1) {
		t.Error("Drop did not cancel the active grab")
	}
	if _, ok := r.Lookup(key); ok {
		t.Error("editor still registered after Drop")
	}
	r.Drop(key) // no-op
}

func TestEditorsSinkAndDebugPropagate(t *testing.T) {
	r := NewEditors()
	early := r.State(EditorKey{Part: PartIris})
	sink := &recordSink{}
	r.SetEventSink(sink)
	r.SetDebugMode(true)
	late := r.State(EditorKey{Part: PartPupil})

	for _, st := range []*EditorState{early, late} {
		if st.Sink != sink {
			t.Errorf("%v: sink not set", st.Key)
		}
		if !st.debug {
			t.Errorf("%v: debug not set", st.Key)
		}
	}

	o := Circle(1)
	late.SelectAll(&o)
	if len(sink.events) != 1 || sink.events[0].Key != late.Key {
		t.Errorf("events = %+v", sink.events)
	}
}

func TestEditorKeyString(t *testing.T) {
	k := EditorKey{Side: SideRight, Part: PartEyebrowGuide}
	if got := k.String(); got != "right/eyebrow-guide" {
		t.Errorf("String = %q", got)
	}
}

func TestEditEventTypeString(t *testing.T) {
	tests := []struct {
		e    EditEventType
		want string
	}{
		{EventSelect, "select"},
		{EventBegin, "begin"},
		{EventCommit, "commit"},
		{EventCancel, "cancel"},
		{EventEdit, "edit"},
		{EditEventType(42), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.e.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
