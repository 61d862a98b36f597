// Package eyekit models, animates and edits a stylized cartoon eye for
// [Ebitengine] programs.
//
// An eye is built from closed cubic-Bezier outlines: a four-anchor outline
// for the open eye, the closed lid, the iris and the pupil, and a six-anchor
// outline for the eyebrow. Outlines pack into fixed float32 arrays ready for
// a shader; eyekit itself draws nothing.
//
// # Quick start
//
// A [Studio] owns both eyes, the blink, the gaze and the editors. Feed it
// one [FrameInput] per frame and hand [Studio.Uniforms] to your renderer:
//
//	studio := eyekit.NewStudio()
//	studio.View = eyekit.NewViewport(960, 540, 400)
//
//	func (g *Game) Update() error {
//		g.studio.Update(eyekit.PollInput(g.t), 1.0/60)
//		return nil
//	}
//
// # Editing
//
// Each editable outline gets an [EditorState] with Blender-style modal
// transforms. In Idle, click selects, shift-click toggles, dragging an
// anchor moves it, dragging a handle bends it and dragging empty space
// box-selects. G, S and R enter Grab, Scale and Rotate for the selection;
// X and Y constrain Scale to one axis; a click confirms; Escape or a right
// click restores every anchor exactly as it was. A toggles select-all.
//
//	studio.SetActiveEditor(eyekit.EditorKey{Side: eyekit.SideLeft, Part: eyekit.PartEyeOpen}, viewport)
//
// The eyebrow guide ([PartEyebrowGuide]) edits the eyebrow's centerline:
// moving a guide point moves the top and bottom outline anchors it pairs.
// The outline stays authoritative and the guide is always re-derived from
// it.
//
// # Animation
//
// [BlinkAnimation] is a looping keyframe track of eyelid closure with
// per-segment easing from [gween]. [Gaze] eases the look direction toward
// the pointer.
//
// # Persistence
//
// [Studio.Config] and [Studio.ApplyConfig] round-trip the whole studio
// through [EyeConfig], a JSON document validated on load.
//
// # Logging
//
// eyekit logs through [log/slog] and is silent by default. Call [SetLogger]
// to see editor transitions and rejected configs.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package eyekit
