package eyekit

import "log/slog"

// EyeParams are the per-eye scalar and colour parameters.
type EyeParams struct {
	ScleraColor Color
	IrisColor   Color
	PupilColor  Color

	// EyelidClose is the eyelid closure, 0 open to 1 closed. Overwritten by
	// the blink each frame while auto-blink is on.
	EyelidClose float64
	IrisRadius  float64
	// IrisFollow is how far the iris travels at full gaze deflection.
	IrisFollow  float64
	PupilRadius float64

	HighlightOffset    Vec2
	HighlightRadius    float64
	HighlightIntensity float64

	// Look is the gaze direction in the unit disc. Overwritten by the gaze
	// each frame while follow-mouse is on.
	Look Vec2
}

// DefaultEyeParams returns the stock parameters.
func DefaultEyeParams() EyeParams {
	return EyeParams{
		ScleraColor:        Color{0.95, 0.95, 0.95},
		IrisColor:          Color{0.20, 0.45, 0.75},
		PupilColor:         defaultDarkColor,
		IrisRadius:         0.18,
		IrisFollow:         0.12,
		PupilRadius:        0.07,
		HighlightOffset:    Vec2{0.04, 0.05},
		HighlightRadius:    0.03,
		HighlightIntensity: 0.9,
	}
}

// EyeSide is everything that defines one eye.
type EyeSide struct {
	Params  EyeParams
	Eye     EyeShape
	Eyebrow EyebrowShape
	Eyelash EyelashShape
	Iris    IrisShape
	Pupil   PupilShape
}

// DefaultEyeSide returns an eye built from the stock shapes.
func DefaultEyeSide() EyeSide {
	return EyeSide{
		Params:  DefaultEyeParams(),
		Eye:     DefaultEyeShape(),
		Eyebrow: DefaultEyebrowShape(),
		Eyelash: DefaultEyelashShape(),
		Iris:    DefaultIrisShape(),
		Pupil:   DefaultPupilShape(),
	}
}

// Layer returns the editable layer for part. Layers point into s and stay
// valid as long as s does.
func (s *EyeSide) Layer(p Part) Layer {
	switch p {
	case PartEyeOpen:
		return &s.Eye.Open
	case PartEyeClosed:
		return &s.Eye.Closed
	case PartIris:
		return &s.Iris.Outline
	case PartPupil:
		return &s.Pupil.Outline
	case PartEyebrow:
		return s.Eyebrow.OutlineLayer()
	case PartEyebrowGuide:
		return s.Eyebrow.GuideLayer()
	}
	panic("eyekit: unknown part")
}

// GlobalSettings are shared by both eyes.
type GlobalSettings struct {
	BgColor Color
	// EyeSeparation is the distance between the eye centers.
	EyeSeparation float64
	// MaxAngle bounds the gaze rotation, in radians.
	MaxAngle float64
	// EyeAngle tilts both eyes, in radians; the right eye is tilted the
	// opposite way.
	EyeAngle float64
	// FocusDistance is the depth of the plane the eyes look at.
	FocusDistance float64
	// SquashStretch scales the blink-driven squash and stretch. Zero
	// disables it.
	SquashStretch float64

	AutoBlink     bool
	FollowMouse   bool
	ShowHighlight bool
	ShowEyebrow   bool
	ShowEyelash   bool
}

// DefaultGlobalSettings returns the stock settings.
func DefaultGlobalSettings() GlobalSettings {
	return GlobalSettings{
		BgColor:       Color{0.05, 0.05, 0.08},
		EyeSeparation: 0.7,
		MaxAngle:      0.5,
		FocusDistance: 2.0,
		SquashStretch: 1.0,
		AutoBlink:     true,
		FollowMouse:   true,
		ShowHighlight: true,
		ShowEyebrow:   true,
		ShowEyelash:   true,
	}
}

// Section is a group of parts that can be linked between the two eyes.
type Section uint8

const (
	SectionShape   Section = iota // open and closed eye outlines
	SectionIris                   // iris and pupil
	SectionEyebrow                // eyebrow outline and parameters
	SectionEyelash                // eyelash parameters
	numSections
)

var sectionNames = [...]string{"shape", "iris", "eyebrow", "eyelash"}

func (s Section) String() string {
	if int(s) < len(sectionNames) {
		return sectionNames[s]
	}
	return "unknown"
}

// PartSection returns the section a part belongs to.
func PartSection(p Part) Section {
	switch p {
	case PartIris, PartPupil:
		return SectionIris
	case PartEyebrow, PartEyebrowGuide:
		return SectionEyebrow
	default:
		return SectionShape
	}
}

// SectionLink makes one eye's section follow the other, mirrored across the
// vertical axis. Active is the side being edited.
type SectionLink struct {
	Linked bool
	Active Side
}

// Studio owns a pair of eyes and everything that animates and edits them.
// Call Update once per frame, then read Uniforms for each side.
type Studio struct {
	Sides  [2]EyeSide
	Global GlobalSettings
	Links  [numSections]SectionLink
	Blink  *BlinkAnimation
	Gaze   *Gaze

	// View maps the pair view, with the midpoint between the eyes at the
	// origin, for follow-mouse. Nil disables follow-mouse.
	View Projector

	editors   *Editors
	active    EditorKey
	activeSet bool
	proj      Projector
	time      float64
	debug     bool
}

// NewStudio returns a studio with stock shapes, linked sections and the
// sample blink.
func NewStudio() *Studio {
	s := &Studio{
		Global:  DefaultGlobalSettings(),
		Blink:   SampleBlink(),
		Gaze:    NewGaze(),
		editors: NewEditors(),
	}
	s.Sides[SideLeft] = DefaultEyeSide()
	s.Sides[SideRight] = DefaultEyeSide()
	for i := range s.Links {
		s.Links[i] = SectionLink{Linked: true, Active: SideLeft}
	}
	return s
}

// Side returns the eye for side.
func (s *Studio) Side(side Side) *EyeSide { return &s.Sides[side] }

// Editors returns the editor registry.
func (s *Studio) Editors() *Editors { return s.editors }

// Time returns the animation clock in seconds.
func (s *Studio) Time() float64 { return s.time }

// SetDebugMode enables invariant checks after edits. Violations are logged
// at Warn level.
func (s *Studio) SetDebugMode(enabled bool) {
	s.debug = enabled
	s.editors.SetDebugMode(enabled)
}

// SetActiveEditor routes pointer and key input to the editor for key, drawn
// through proj. A transform in progress on the previous editor is cancelled.
func (s *Studio) SetActiveEditor(key EditorKey, proj Projector) {
	if s.activeSet && s.active != key {
		if st, ok := s.editors.Lookup(s.active); ok {
			st.Cancel()
		}
	}
	s.active, s.activeSet, s.proj = key, true, proj
}

// ClearActiveEditor stops routing input to any editor.
func (s *Studio) ClearActiveEditor() {
	if s.activeSet {
		if st, ok := s.editors.Lookup(s.active); ok {
			st.Cancel()
		}
	}
	s.activeSet, s.proj = false, nil
}

// ActiveEditor returns the editor receiving input, if any.
func (s *Studio) ActiveEditor() (*EditorState, bool) {
	if !s.activeSet {
		return nil, false
	}
	return s.editors.State(s.active), true
}

// Update advances the studio by dt seconds: blink, gaze, then the active
// editor.
func (s *Studio) Update(in FrameInput, dt float64) {
	s.time += dt

	if s.Global.AutoBlink && s.Blink != nil {
		closure := s.Blink.Evaluate(s.time)
		s.Sides[SideLeft].Params.EyelidClose = closure
		s.Sides[SideRight].Params.EyelidClose = closure
	}

	if s.Global.FollowMouse && s.View != nil {
		s.Gaze.SetTarget(LookAt(s.View.ToOutline(in.Pointer), Vec2{}, s.Global.FocusDistance))
	}
	s.Gaze.Update(float32(dt))
	if s.Global.FollowMouse {
		look := s.Gaze.Look()
		s.Sides[SideLeft].Params.Look = look
		s.Sides[SideRight].Params.Look = look
	}

	if s.activeSet && s.proj != nil {
		s.updateEditor(in)
	}
}

func (s *Studio) updateEditor(in FrameInput) {
	key := s.active
	side := &s.Sides[key.Side]
	st := s.editors.State(key)
	before := st.Mode()
	st.Update(in, side.Layer(key.Part), s.proj)

	// Linked sections follow live, including mid-transform, so both eyes
	// preview the same edit.
	if st.Mode() != ModeIdle || before != ModeIdle || in.PrimaryDown || in.PrimaryReleased {
		s.propagateLink(PartSection(key.Part), key.Side)
	}
}

// propagateLink copies section from side onto the other eye when linked.
func (s *Studio) propagateLink(sec Section, from Side) {
	link := &s.Links[sec]
	if !link.Linked {
		return
	}
	link.Active = from
	s.SyncSection(sec)
}

// SyncSection copies the active side of a linked section onto the other side,
// mirrored. Unlinked sections are left alone.
func (s *Studio) SyncSection(sec Section) {
	link := s.Links[sec]
	if !link.Linked {
		return
	}
	src := &s.Sides[link.Active]
	dst := &s.Sides[link.Active.Other()]
	switch sec {
	case SectionShape:
		dst.Eye = EyeShape{
			Open:      src.Eye.Open.Mirrored(),
			Closed:    src.Eye.Closed.Mirrored(),
			CloseArch: src.Eye.CloseArch,
		}
	case SectionIris:
		dst.Iris.Outline = src.Iris.Outline.Mirrored()
		dst.Pupil.Outline = src.Pupil.Outline.Mirrored()
		dst.Params.IrisColor = src.Params.IrisColor
		dst.Params.IrisRadius = src.Params.IrisRadius
		dst.Params.IrisFollow = src.Params.IrisFollow
		dst.Params.PupilColor = src.Params.PupilColor
		dst.Params.PupilRadius = src.Params.PupilRadius
	case SectionEyebrow:
		dst.Eyebrow = src.Eyebrow.Mirrored()
	case SectionEyelash:
		dst.Eyelash = src.Eyelash
	}
	Logger().Debug("section synced", slog.String("section", sec.String()),
		slog.String("from", link.Active.String()))
}

// SetLinked links or unlinks a section. Linking copies the active side onto
// the other immediately.
func (s *Studio) SetLinked(sec Section, linked bool, active Side) {
	s.Links[sec] = SectionLink{Linked: linked, Active: active}
	s.SyncSection(sec)
}

// SetCloseArch sets the closed-lid arch of side and regenerates its closed
// outline.
func (s *Studio) SetCloseArch(side Side, arch float64) {
	eye := &s.Sides[side].Eye
	eye.CloseArch = arch
	eye.UpdateClosed()
	s.propagateLink(SectionShape, side)
}

// eyeCenter is the position of an eye in the pair view.
func (s *Studio) eyeCenter(side Side) Vec2 {
	half := s.Global.EyeSeparation / 2
	if side == SideLeft {
		return Vec2{-half, 0}
	}
	return Vec2{half, 0}
}
