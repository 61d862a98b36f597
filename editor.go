package eyekit

import (
	"log/slog"
	"math"

	"honnef.co/go/curve"
)

// Mode is the interaction mode of an editor.
type Mode uint8

const (
	ModeIdle   Mode = iota // selecting and direct dragging
	ModeGrab               // translating the selection with the pointer
	ModeScale              // scaling the selection about its centroid
	ModeRotate             // rotating the selection about its centroid
)

var modeNames = [...]string{"idle", "grab", "scale", "rotate"}

func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return "unknown"
}

// Axis constrains Scale to one dimension.
type Axis uint8

const (
	AxisNone Axis = iota // scale both dimensions
	AxisX                // scale X only
	AxisY                // scale Y only
)

// minPivotDist keeps the scale factor finite when the pointer sits on the
// pivot.
const minPivotDist = 1.0 // pixels

// --- Mode variants ---

// mode is the sum type of editor modes. A transition replaces the whole
// variant; variants are never mutated into one another.
type mode interface {
	Mode() Mode
}

type idleMode struct{}

func (idleMode) Mode() Mode { return ModeIdle }

// transformBase is what every transform mode captures on entry.
type transformBase struct {
	layer    Layer
	selected Selection
	// snapshot is the visible anchors at entry; transforms are computed from
	// it every frame.
	snapshot []BezierAnchor
	// saved is the authoritative layer state at entry, restored before each
	// frame's transform and on cancel.
	saved []BezierAnchor
}

type grabMode struct {
	transformBase
	origin Vec2 // pointer at entry, outline space
}

func (*grabMode) Mode() Mode { return ModeGrab }

type scaleMode struct {
	transformBase
	pivot       Vec2 // selection centroid, screen space
	center      Vec2 // the same centroid, outline space
	initialDist float64
	axis        Axis
}

func (*scaleMode) Mode() Mode { return ModeScale }

type rotateMode struct {
	transformBase
	pivot        Vec2
	center       Vec2
	initialAngle float64
}

func (*rotateMode) Mode() Mode { return ModeRotate }

// --- Idle drag variants ---

type dragOp interface{}

type anchorDrag struct {
	index   int
	start   BezierAnchor
	origin  Vec2 // pointer at press, outline space
	saved   []BezierAnchor
	smooths bool
}

type handleDrag struct {
	index int
	in    bool
	saved []BezierAnchor
}

type boxDrag struct {
	start Vec2 // screen space
	add   bool
}

// --- EditorState ---

// EditorState is the per-editor interaction state: selection, mode and the
// in-flight drag. One instance belongs to each editable outline and lives as
// long as its widget. It is not safe for concurrent use.
type EditorState struct {
	// Key identifies the editor in emitted events.
	Key EditorKey
	// HitRadius is the pick distance for anchors and handles, in pixels.
	HitRadius float64
	// DragDeadZone is how far a press must travel before it becomes a drag.
	DragDeadZone float64
	// Sink receives edit events. May be nil.
	Sink EventSink

	selection     Selection
	mode          mode
	pointer       pointerState
	pressHit      hit
	drag          dragOp
	suppressClick bool
	box           Rect
	boxActive     bool
	debug         bool
}

// NewEditorState returns an idle editor with default thresholds.
func NewEditorState(key EditorKey) *EditorState {
	return &EditorState{
		Key:          key,
		HitRadius:    defaultHitRadius,
		DragDeadZone: defaultDragDeadZone,
		mode:         idleMode{},
	}
}

// Mode returns the current mode.
func (e *EditorState) Mode() Mode {
	if e.mode == nil {
		return ModeIdle
	}
	return e.mode.Mode()
}

// Selection returns the selected anchors.
func (e *EditorState) Selection() Selection { return e.selection }

// SetSelection replaces the selection. Ignored outside Idle.
func (e *EditorState) SetSelection(s Selection) {
	if e.Mode() != ModeIdle {
		return
	}
	e.setSelection(s)
}

// Axis returns the Scale axis constraint, or AxisNone outside Scale.
func (e *EditorState) Axis() Axis {
	if m, ok := e.mode.(*scaleMode); ok {
		return m.axis
	}
	return AxisNone
}

// BoxSelect returns the box-select rectangle in screen space while one is
// being dragged.
func (e *EditorState) BoxSelect() (Rect, bool) { return e.box, e.boxActive }

// Pivot returns the Scale/Rotate pivot in screen space.
func (e *EditorState) Pivot() (Vec2, bool) {
	switch m := e.mode.(type) {
	case *scaleMode:
		return m.pivot, true
	case *rotateMode:
		return m.pivot, true
	}
	return Vec2{}, false
}

// Update runs one frame of input against layer. While a transform mode is
// active the layer it began on is used and the layer argument is ignored.
func (e *EditorState) Update(in FrameInput, layer Layer, proj Projector) {
	if e.mode == nil {
		e.mode = idleMode{}
	}
	switch e.mode.(type) {
	case idleMode:
		e.updateIdle(in, layer, proj)
	default:
		e.updateTransform(in, proj)
	}
}

// --- Transform modes ---

// BeginGrab enters Grab with the current selection. It reports false, and
// does nothing, when the selection is empty or a mode is already active.
func (e *EditorState) BeginGrab(layer Layer, proj Projector, pointer Vec2) bool {
	base, ok := e.beginTransform(layer)
	if !ok {
		return false
	}
	e.enter(&grabMode{transformBase: base, origin: proj.ToOutline(pointer)})
	return true
}

// BeginScale enters Scale about the selection centroid.
func (e *EditorState) BeginScale(layer Layer, proj Projector, pointer Vec2) bool {
	base, ok := e.beginTransform(layer)
	if !ok {
		return false
	}
	pivot := screenCentroid(base.snapshot, base.selected, proj)
	e.enter(&scaleMode{
		transformBase: base,
		pivot:         pivot,
		center:        selectedCentroid(base.snapshot, base.selected),
		initialDist:   math.Max(pointer.Sub(pivot).Hypot(), minPivotDist),
	})
	return true
}

// BeginRotate enters Rotate about the selection centroid.
func (e *EditorState) BeginRotate(layer Layer, proj Projector, pointer Vec2) bool {
	base, ok := e.beginTransform(layer)
	if !ok {
		return false
	}
	pivot := screenCentroid(base.snapshot, base.selected, proj)
	e.enter(&rotateMode{
		transformBase: base,
		pivot:         pivot,
		center:        selectedCentroid(base.snapshot, base.selected),
		initialAngle:  pointerAngle(pointer, pivot),
	})
	return true
}

// beginTransform snapshots every anchor of layer, selected or not.
func (e *EditorState) beginTransform(layer Layer) (transformBase, bool) {
	if e.Mode() != ModeIdle || e.selection.Empty() {
		return transformBase{}, false
	}
	e.abortDrag(nil)
	return transformBase{
		layer:    layer,
		selected: e.selection,
		snapshot: snapshotLayer(layer),
		saved:    layer.Save(),
	}, true
}

func (e *EditorState) enter(m mode) {
	e.mode = m
	Logger().Debug("editor mode", slog.String("editor", e.Key.String()),
		slog.String("mode", m.Mode().String()), slog.Int("selected", e.selection.Len()))
	e.emit(EventBegin)
}

// Apply recomputes the live transform for the pointer position. Update calls
// it every frame; hosts driving the editor by commands call it directly.
func (e *EditorState) Apply(proj Projector, pointer Vec2) {
	var base *transformBase
	var m curve.Affine
	switch md := e.mode.(type) {
	case *grabMode:
		base = &md.transformBase
		m = curve.Translate(proj.ToOutline(pointer).Sub(md.origin))
	case *scaleMode:
		base = &md.transformBase
		factor := math.Max(pointer.Sub(md.pivot).Hypot(), minPivotDist) / md.initialDist
		sx, sy := factor, factor
		switch md.axis {
		case AxisX:
			sy = 1
		case AxisY:
			sx = 1
		}
		m = aboutPivot(curve.Scale(sx, sy), md.center)
	case *rotateMode:
		base = &md.transformBase
		// Screen Y points down, outline Y up, so the screen angle is negated.
		angle := -(pointerAngle(pointer, md.pivot) - md.initialAngle)
		m = curve.RotateAbout(angle, pt(md.center))
	default:
		return
	}
	base.apply(m)
}

// apply restores the saved state and sets every selected anchor to its
// snapshot mapped through m. The result depends only on the snapshot and m.
func (b *transformBase) apply(m curve.Affine) {
	b.layer.Load(b.saved)
	for i, a := range b.snapshot {
		if b.selected.Has(i) {
			b.layer.SetAnchor(i, transformAnchor(m, a))
		}
	}
}

// Confirm commits the active transform and returns to Idle. The next click
// is swallowed so the confirming press is not read as a selection.
func (e *EditorState) Confirm() {
	if e.Mode() == ModeIdle {
		return
	}
	e.mode = idleMode{}
	e.suppressClick = true
	e.pointer.reset()
	Logger().Debug("editor commit", slog.String("editor", e.Key.String()))
	e.emit(EventCommit)
}

// Cancel restores every anchor captured on entry and returns to Idle.
func (e *EditorState) Cancel() {
	var base *transformBase
	switch md := e.mode.(type) {
	case *grabMode:
		base = &md.transformBase
	case *scaleMode:
		base = &md.transformBase
	case *rotateMode:
		base = &md.transformBase
	default:
		return
	}
	base.layer.Load(base.saved)
	e.suppressClick = true
	e.mode = idleMode{}
	e.pointer.reset()
	Logger().Debug("editor cancel", slog.String("editor", e.Key.String()))
	e.emit(EventCancel)
}

// ToggleAxis constrains Scale to a, or lifts the constraint when a is
// already active. Other modes ignore it.
func (e *EditorState) ToggleAxis(a Axis) {
	md, ok := e.mode.(*scaleMode)
	if !ok {
		return
	}
	next := *md
	if next.axis == a {
		next.axis = AxisNone
	} else {
		next.axis = a
	}
	e.mode = &next
}

func (e *EditorState) updateTransform(in FrameInput, proj Projector) {
	if in.KeyPressed(KeyEscape) || in.SecondaryPressed {
		e.Cancel()
		return
	}
	if in.KeyPressed(KeyX) {
		e.ToggleAxis(AxisX)
	}
	if in.KeyPressed(KeyY) {
		e.ToggleAxis(AxisY)
	}
	e.Apply(proj, in.Pointer)
	if in.PrimaryPressed {
		layer := e.transformLayer()
		e.Confirm()
		e.debugCheck(layer)
	}
}

func (e *EditorState) transformLayer() Layer {
	switch md := e.mode.(type) {
	case *grabMode:
		return md.layer
	case *scaleMode:
		return md.layer
	case *rotateMode:
		return md.layer
	}
	return nil
}

// --- Idle ---

// SelectAll selects every anchor of layer.
func (e *EditorState) SelectAll(layer Layer) {
	e.SetSelection(SelectionAll(layer.Len()))
}

// ToggleSelectAll selects every anchor of layer, or clears the selection
// when everything is already selected.
func (e *EditorState) ToggleSelectAll(layer Layer) {
	all := SelectionAll(layer.Len())
	if e.selection == all {
		e.setSelection(0)
	} else {
		e.setSelection(all)
	}
}

func (e *EditorState) setSelection(s Selection) {
	if s == e.selection {
		return
	}
	e.selection = s
	Logger().Debug("editor selection", slog.String("editor", e.Key.String()),
		slog.Int("selected", s.Len()))
	e.emit(EventSelect)
}

func (e *EditorState) updateIdle(in FrameInput, layer Layer, proj Projector) {
	if in.KeyPressed(KeyEscape) && e.drag != nil {
		e.abortDrag(layer)
		return
	}
	if e.drag == nil {
		switch {
		case in.KeyPressed(KeyG):
			if e.BeginGrab(layer, proj, in.Pointer) {
				return
			}
		case in.KeyPressed(KeyS):
			if e.BeginScale(layer, proj, in.Pointer) {
				return
			}
		case in.KeyPressed(KeyR):
			if e.BeginRotate(layer, proj, in.Pointer) {
				return
			}
		case in.KeyPressed(KeyA):
			e.ToggleSelectAll(layer)
		}
	}

	switch {
	case in.PrimaryPressed:
		// A fresh press outranks a suppression left over from a confirm
		// whose release never arrived.
		e.suppressClick = false
		e.pointer.press(in.Pointer)
		e.pressHit = hitTest(snapshotLayer(layer), e.selection, proj, in.Pointer, e.HitRadius)
	case in.PrimaryReleased:
		e.release(in, layer, proj)
	case e.pointer.down:
		if e.pointer.move(in.Pointer, e.DragDeadZone) {
			e.startDrag(in, layer, proj)
		}
		if e.pointer.dragging {
			e.continueDrag(in, layer, proj)
		}
	}
}

func (e *EditorState) release(in FrameInput, layer Layer, proj Projector) {
	if e.suppressClick {
		e.suppressClick = false
		e.pointer.reset()
		return
	}
	if !e.pointer.down {
		return
	}
	if e.pointer.dragging {
		e.pointer.last = in.Pointer
		e.continueDrag(in, layer, proj)
		e.finishDrag(layer, proj)
	} else {
		e.click(in)
	}
	e.pointer.reset()
}

// click applies click selection: replace, toggle with shift, or clear on
// empty space.
func (e *EditorState) click(in FrameInput) {
	h := e.pressHit
	switch {
	case h.kind == hitNone:
		if !in.Shift() {
			e.setSelection(0)
		}
	case in.Shift():
		e.setSelection(e.selection.Toggle(h.index))
	default:
		e.setSelection(Selection(0).With(h.index))
	}
}

func (e *EditorState) startDrag(in FrameInput, layer Layer, proj Projector) {
	h := e.pressHit
	switch h.kind {
	case hitAnchor:
		if !e.selection.Has(h.index) {
			e.setSelection(Selection(0).With(h.index))
		}
		_, smooths := layer.(Smoother)
		e.drag = &anchorDrag{
			index:   h.index,
			start:   layer.Anchor(h.index),
			origin:  proj.ToOutline(e.pointer.start),
			saved:   layer.Save(),
			smooths: smooths,
		}
	case hitHandleIn, hitHandleOut:
		e.drag = &handleDrag{index: h.index, in: h.kind == hitHandleIn, saved: layer.Save()}
	default:
		e.drag = &boxDrag{start: e.pointer.start, add: in.Shift()}
		e.boxActive = true
	}
}

func (e *EditorState) continueDrag(in FrameInput, layer Layer, proj Projector) {
	switch d := e.drag.(type) {
	case *anchorDrag:
		a := d.start.Translate(proj.ToOutline(in.Pointer).Sub(d.origin))
		layer.SetAnchor(d.index, a)
		if d.smooths {
			layer.(Smoother).AutoAdjustHandleAt(d.index)
		}
	case *handleDrag:
		a := layer.Anchor(d.index)
		off := proj.ToOutline(in.Pointer).Sub(a.Position)
		if d.in {
			a.SetHandleIn(off)
		} else {
			a.SetHandleOut(off)
		}
		layer.SetAnchor(d.index, a)
	case *boxDrag:
		e.box = RectFromCorners(d.start, in.Pointer)
	}
}

func (e *EditorState) finishDrag(layer Layer, proj Projector) {
	switch d := e.drag.(type) {
	case *boxDrag:
		picked := boxSelect(snapshotLayer(layer), proj, e.box)
		if d.add {
			picked |= e.selection
		}
		e.setSelection(picked)
	case *anchorDrag, *handleDrag:
		e.emit(EventEdit)
		e.debugCheck(layer)
	}
	e.drag = nil
	e.boxActive = false
	e.box = Rect{}
}

// abortDrag drops an in-flight drag. When layer is non-nil, direct edits are
// rolled back to the state at drag start.
func (e *EditorState) abortDrag(layer Layer) {
	if layer != nil {
		switch d := e.drag.(type) {
		case *anchorDrag:
			layer.Load(d.saved)
		case *handleDrag:
			layer.Load(d.saved)
		}
	}
	e.drag = nil
	e.boxActive = false
	e.box = Rect{}
	e.pointer.reset()
}

func (e *EditorState) debugCheck(l Layer) {
	if !e.debug || l == nil {
		return
	}
	debugCheckCollinear(e.Key, l)
	debugCheckFinite(e.Key, l)
}

func pointerAngle(p, pivot Vec2) float64 {
	return p.Sub(pivot).Angle()
}

func (e *EditorState) emit(t EditEventType) {
	if e.Sink == nil {
		return
	}
	e.Sink.EmitEvent(EditEvent{
		Type:      t,
		Key:       e.Key,
		Mode:      e.Mode(),
		Selection: e.selection,
	})
}
