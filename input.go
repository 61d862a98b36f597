package eyekit

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// --- Constants ---

const (
	defaultDragDeadZone = 4.0 // pixels
	defaultHitRadius    = 8.0 // pixels
)

// FrameInput is the input state polled once per frame. Edges (Pressed,
// Released, Keys) are true only on the frame the transition happened.
type FrameInput struct {
	// Pointer is the cursor position in screen space.
	Pointer Vec2

	PrimaryDown      bool
	PrimaryPressed   bool
	PrimaryReleased  bool
	SecondaryPressed bool

	// Keys lists the keys pressed this frame.
	Keys      []Key
	Modifiers KeyModifiers

	// Time is monotonic wall time in seconds.
	Time float64
}

// KeyPressed reports whether k was pressed this frame.
func (in *FrameInput) KeyPressed(k Key) bool {
	for _, pk := range in.Keys {
		if pk == k {
			return true
		}
	}
	return false
}

// Shift reports whether a shift key is held.
func (in *FrameInput) Shift() bool { return in.Modifiers&ModShift != 0 }

// --- Per-pointer state ---

// pointerState tracks a primary-button press in Idle mode to tell clicks
// from drags.
type pointerState struct {
	down     bool
	start    Vec2
	last     Vec2
	dragging bool
}

// press records a new press at p.
func (ps *pointerState) press(p Vec2) {
	*ps = pointerState{down: true, start: p, last: p}
}

// move updates the pointer and reports whether the press just turned into a
// drag by leaving the dead zone.
func (ps *pointerState) move(p Vec2, deadZone float64) (dragStarted bool) {
	ps.last = p
	if !ps.dragging && pt(p).Distance(pt(ps.start)) > deadZone {
		ps.dragging = true
		return true
	}
	return false
}

func (ps *pointerState) reset() {
	*ps = pointerState{}
}

// --- Ebitengine polling ---

// ebitenKeys maps the keys the editor reacts to.
var ebitenKeys = [...]struct {
	key    Key
	ebiten ebiten.Key
}{
	{KeyG, ebiten.KeyG},
	{KeyS, ebiten.KeyS},
	{KeyR, ebiten.KeyR},
	{KeyX, ebiten.KeyX},
	{KeyY, ebiten.KeyY},
	{KeyA, ebiten.KeyA},
	{KeyEscape, ebiten.KeyEscape},
}

// readModifiers reads the current keyboard modifier state.
func readModifiers() KeyModifiers {
	var mods KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) || ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight) {
		mods |= ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyControlLeft) || ebiten.IsKeyPressed(ebiten.KeyControlRight) {
		mods |= ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) || ebiten.IsKeyPressed(ebiten.KeyAltLeft) || ebiten.IsKeyPressed(ebiten.KeyAltRight) {
		mods |= ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) || ebiten.IsKeyPressed(ebiten.KeyMetaLeft) || ebiten.IsKeyPressed(ebiten.KeyMetaRight) {
		mods |= ModMeta
	}
	return mods
}

// PollInput reads the mouse and keyboard from Ebitengine. Call it once per
// ebiten.Game Update; t is the elapsed time in seconds.
func PollInput(t float64) FrameInput {
	mx, my := ebiten.CursorPosition()
	in := FrameInput{
		Pointer:          Vec2{float64(mx), float64(my)},
		PrimaryDown:      ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		PrimaryPressed:   inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		PrimaryReleased:  inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
		SecondaryPressed: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight),
		Modifiers:        readModifiers(),
		Time:             t,
	}
	for _, k := range ebitenKeys {
		if inpututil.IsKeyJustPressed(k.ebiten) {
			in.Keys = append(in.Keys, k.key)
		}
	}
	return in
}
