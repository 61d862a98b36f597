package eyekit

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
)

// ConfigVersion is the config format written by MarshalConfig.
const ConfigVersion = 1

// Config errors wrapped by ConfigError.
var (
	ErrConfigVersion = errors.New("unsupported version")
	ErrAnchorCount   = errors.New("wrong anchor count")
	ErrVectorLen     = errors.New("wrong vector length")
	ErrLinkSide      = errors.New(`side must be "left" or "right"`)
)

// ConfigError reports where a config document was rejected.
type ConfigError struct {
	// Path locates the offending value, e.g. "left.eye_shape.open.anchors".
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	if e.Path == "" {
		return "eyekit: config: " + e.Err.Error()
	}
	return "eyekit: config: " + e.Path + ": " + e.Err.Error()
}

func (e *ConfigError) Unwrap() error { return e.Err }

func configErr(path string, err error) error {
	return &ConfigError{Path: path, Err: err}
}

// --- Wire types ---

// EyeConfig is the persisted form of a studio: both eyes, the shared
// settings and the section links.
type EyeConfig struct {
	Version int           `json:"version"`
	Left    EyeSideConfig `json:"left"`
	Right   EyeSideConfig `json:"right"`
	Global  GlobalConfig  `json:"global"`
	Links   LinkConfig    `json:"links"`
}

// EyeSideConfig is the persisted form of one eye.
type EyeSideConfig struct {
	ScleraColor []float64 `json:"sclera_color"`
	IrisColor   []float64 `json:"iris_color"`
	PupilColor  []float64 `json:"pupil_color"`

	EyelidClose        float64   `json:"eyelid_close"`
	IrisRadius         float64   `json:"iris_radius"`
	IrisFollow         float64   `json:"iris_follow"`
	PupilRadius        float64   `json:"pupil_radius"`
	HighlightOffset    []float64 `json:"highlight_offset"`
	HighlightRadius    float64   `json:"highlight_radius"`
	HighlightIntensity float64   `json:"highlight_intensity"`
	LookX              float64   `json:"look_x"`
	LookY              float64   `json:"look_y"`

	EyeShape     EyeShapeConfig     `json:"eye_shape"`
	EyebrowShape EyebrowShapeConfig `json:"eyebrow_shape"`
	EyelashShape EyelashShapeConfig `json:"eyelash_shape"`
	IrisShape    OutlineConfig      `json:"iris_shape"`
	PupilShape   OutlineConfig      `json:"pupil_shape"`
}

// EyeShapeConfig is the persisted form of EyeShape.
type EyeShapeConfig struct {
	Open      OutlineConfig `json:"open"`
	Closed    OutlineConfig `json:"closed"`
	CloseArch float64       `json:"close_arch"`
}

// OutlineConfig holds the anchors of a closed outline: four for eye, iris
// and pupil outlines, six for the eyebrow.
type OutlineConfig struct {
	Anchors []AnchorConfig `json:"anchors"`
}

// AnchorConfig is the persisted form of a BezierAnchor. Each field is a
// two-element [x, y].
type AnchorConfig struct {
	Position  []float64 `json:"position"`
	HandleIn  []float64 `json:"handle_in"`
	HandleOut []float64 `json:"handle_out"`
}

// EyebrowShapeConfig is the persisted form of EyebrowShape. Thickness and
// TipRound fall back to the stock values when absent.
type EyebrowShapeConfig struct {
	Outline   OutlineConfig `json:"outline"`
	Thickness []float64     `json:"thickness,omitempty"`
	TipRound  []bool        `json:"tip_round,omitempty"`
	BaseY     float64       `json:"base_y"`
	Follow    float64       `json:"follow"`
	Color     []float64     `json:"color"`
}

// EyelashShapeConfig is the persisted form of EyelashShape.
type EyelashShapeConfig struct {
	Color     []float64 `json:"color"`
	Thickness float64   `json:"thickness"`
}

// GlobalConfig is the persisted form of GlobalSettings.
type GlobalConfig struct {
	BgColor       []float64 `json:"bg_color"`
	EyeSeparation float64   `json:"eye_separation"`
	MaxAngle      float64   `json:"max_angle"`
	EyeAngle      float64   `json:"eye_angle"`
	FocusDistance float64   `json:"focus_distance"`
	SquashStretch *float64  `json:"squash_stretch,omitempty"`
	AutoBlink     bool      `json:"auto_blink"`
	FollowMouse   bool      `json:"follow_mouse"`
	ShowHighlight bool      `json:"show_highlight"`
	ShowEyebrow   bool      `json:"show_eyebrow"`
	ShowEyelash   bool      `json:"show_eyelash"`
}

// LinkConfig is the persisted form of the four section links.
type LinkConfig struct {
	Shape   SectionLinkConfig `json:"shape"`
	Iris    SectionLinkConfig `json:"iris"`
	Eyebrow SectionLinkConfig `json:"eyebrow"`
	Eyelash SectionLinkConfig `json:"eyelash"`
}

// SectionLinkConfig is the persisted form of a SectionLink.
type SectionLinkConfig struct {
	Linked bool   `json:"linked"`
	Active string `json:"active"`
}

// --- Encoding ---

// MarshalConfig encodes c as indented JSON.
func MarshalConfig(c *EyeConfig) ([]byte, error) {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("eyekit: marshal config: %w", err)
	}
	return data, nil
}

// ParseConfig decodes and validates a config document. Unknown fields,
// trailing data, an unsupported version and malformed shapes are all
// rejected with a *ConfigError; nothing is partially applied.
func ParseConfig(data []byte) (*EyeConfig, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	var c EyeConfig
	if err := dec.Decode(&c); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, configErr(typeErr.Field, err)
		}
		return nil, configErr("", err)
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return nil, configErr("", errors.New("trailing data after document"))
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks c without applying it.
func (c *EyeConfig) Validate() error {
	_, err := c.build()
	return err
}

// builtConfig is a fully converted config, ready to assign.
type builtConfig struct {
	sides  [2]EyeSide
	global GlobalSettings
	links  [numSections]SectionLink
}

func (c *EyeConfig) build() (*builtConfig, error) {
	if c.Version != ConfigVersion {
		return nil, configErr("version", fmt.Errorf("%w: %d", ErrConfigVersion, c.Version))
	}
	var b builtConfig
	var err error
	if b.sides[SideLeft], err = c.Left.build("left"); err != nil {
		return nil, err
	}
	if b.sides[SideRight], err = c.Right.build("right"); err != nil {
		return nil, err
	}
	if b.global, err = c.Global.build("global"); err != nil {
		return nil, err
	}
	links := [numSections]*SectionLinkConfig{
		SectionShape:   &c.Links.Shape,
		SectionIris:    &c.Links.Iris,
		SectionEyebrow: &c.Links.Eyebrow,
		SectionEyelash: &c.Links.Eyelash,
	}
	for sec, l := range links {
		path := "links." + Section(sec).String() + ".active"
		if b.links[sec], err = l.build(path); err != nil {
			return nil, err
		}
	}
	return &b, nil
}

func vecFromConfig(path string, v []float64) (Vec2, error) {
	if len(v) != 2 {
		return Vec2{}, configErr(path, fmt.Errorf("%w: got %d, want 2", ErrVectorLen, len(v)))
	}
	return Vec2{v[0], v[1]}, nil
}

func colorFromConfig(path string, v []float64) (Color, error) {
	if len(v) != 3 {
		return Color{}, configErr(path, fmt.Errorf("%w: got %d, want 3", ErrVectorLen, len(v)))
	}
	return Color{v[0], v[1], v[2]}, nil
}

func (a *AnchorConfig) build(path string) (BezierAnchor, error) {
	var out BezierAnchor
	var err error
	if out.Position, err = vecFromConfig(path+".position", a.Position); err != nil {
		return out, err
	}
	if out.HandleIn, err = vecFromConfig(path+".handle_in", a.HandleIn); err != nil {
		return out, err
	}
	if out.HandleOut, err = vecFromConfig(path+".handle_out", a.HandleOut); err != nil {
		return out, err
	}
	return out, nil
}

// buildAnchors converts exactly len(dst) anchors into dst.
func (o *OutlineConfig) buildAnchors(path string, dst []BezierAnchor) error {
	if len(o.Anchors) != len(dst) {
		return configErr(path+".anchors",
			fmt.Errorf("%w: got %d, want %d", ErrAnchorCount, len(o.Anchors), len(dst)))
	}
	for i := range o.Anchors {
		a, err := o.Anchors[i].build(path + ".anchors[" + strconv.Itoa(i) + "]")
		if err != nil {
			return err
		}
		dst[i] = a
	}
	return nil
}

func (o *OutlineConfig) buildOutline(path string) (BezierOutline, error) {
	var out BezierOutline
	err := o.buildAnchors(path, out.Anchors[:])
	return out, err
}

func (c *EyeSideConfig) build(path string) (EyeSide, error) {
	var s EyeSide
	var err error
	p := &s.Params

	colors := []struct {
		name string
		src  []float64
		dst  *Color
	}{
		{"sclera_color", c.ScleraColor, &p.ScleraColor},
		{"iris_color", c.IrisColor, &p.IrisColor},
		{"pupil_color", c.PupilColor, &p.PupilColor},
		{"eyebrow_shape.color", c.EyebrowShape.Color, &s.Eyebrow.Color},
		{"eyelash_shape.color", c.EyelashShape.Color, &s.Eyelash.Color},
	}
	for _, col := range colors {
		if *col.dst, err = colorFromConfig(path+"."+col.name, col.src); err != nil {
			return s, err
		}
	}
	if p.HighlightOffset, err = vecFromConfig(path+".highlight_offset", c.HighlightOffset); err != nil {
		return s, err
	}
	p.EyelidClose = c.EyelidClose
	p.IrisRadius = c.IrisRadius
	p.IrisFollow = c.IrisFollow
	p.PupilRadius = c.PupilRadius
	p.HighlightRadius = c.HighlightRadius
	p.HighlightIntensity = c.HighlightIntensity
	p.Look = Vec2{c.LookX, c.LookY}

	if s.Eye.Open, err = c.EyeShape.Open.buildOutline(path + ".eye_shape.open"); err != nil {
		return s, err
	}
	if s.Eye.Closed, err = c.EyeShape.Closed.buildOutline(path + ".eye_shape.closed"); err != nil {
		return s, err
	}
	s.Eye.CloseArch = c.EyeShape.CloseArch
	if s.Iris.Outline, err = c.IrisShape.buildOutline(path + ".iris_shape"); err != nil {
		return s, err
	}
	if s.Pupil.Outline, err = c.PupilShape.buildOutline(path + ".pupil_shape"); err != nil {
		return s, err
	}

	eb := c.EyebrowShape
	if err = eb.Outline.buildAnchors(path+".eyebrow_shape.outline", s.Eyebrow.Outline.Anchors[:]); err != nil {
		return s, err
	}
	stock := DefaultEyebrowShape()
	s.Eyebrow.Thickness = stock.Thickness
	if eb.Thickness != nil {
		if len(eb.Thickness) != 3 {
			return s, configErr(path+".eyebrow_shape.thickness",
				fmt.Errorf("%w: got %d, want 3", ErrVectorLen, len(eb.Thickness)))
		}
		copy(s.Eyebrow.Thickness[:], eb.Thickness)
	}
	s.Eyebrow.TipRound = stock.TipRound
	if eb.TipRound != nil {
		if len(eb.TipRound) != 2 {
			return s, configErr(path+".eyebrow_shape.tip_round",
				fmt.Errorf("%w: got %d, want 2", ErrVectorLen, len(eb.TipRound)))
		}
		copy(s.Eyebrow.TipRound[:], eb.TipRound)
	}
	s.Eyebrow.BaseY = eb.BaseY
	s.Eyebrow.Follow = eb.Follow
	s.Eyebrow.SyncGuide()

	s.Eyelash.Thickness = c.EyelashShape.Thickness
	return s, nil
}

func (c *GlobalConfig) build(path string) (GlobalSettings, error) {
	bg, err := colorFromConfig(path+".bg_color", c.BgColor)
	if err != nil {
		return GlobalSettings{}, err
	}
	g := GlobalSettings{
		BgColor:       bg,
		EyeSeparation: c.EyeSeparation,
		MaxAngle:      c.MaxAngle,
		EyeAngle:      c.EyeAngle,
		FocusDistance: c.FocusDistance,
		SquashStretch: DefaultGlobalSettings().SquashStretch,
		AutoBlink:     c.AutoBlink,
		FollowMouse:   c.FollowMouse,
		ShowHighlight: c.ShowHighlight,
		ShowEyebrow:   c.ShowEyebrow,
		ShowEyelash:   c.ShowEyelash,
	}
	if c.SquashStretch != nil {
		g.SquashStretch = *c.SquashStretch
	}
	return g, nil
}

func (c *SectionLinkConfig) build(path string) (SectionLink, error) {
	l := SectionLink{Linked: c.Linked}
	switch c.Active {
	case "left":
		l.Active = SideLeft
	case "right":
		l.Active = SideRight
	default:
		return l, configErr(path, fmt.Errorf("%w: %q", ErrLinkSide, c.Active))
	}
	return l, nil
}

// --- Studio conversion ---

func anchorConfig(a BezierAnchor) AnchorConfig {
	return AnchorConfig{
		Position:  []float64{a.Position.X, a.Position.Y},
		HandleIn:  []float64{a.HandleIn.X, a.HandleIn.Y},
		HandleOut: []float64{a.HandleOut.X, a.HandleOut.Y},
	}
}

func outlineConfig(anchors []BezierAnchor) OutlineConfig {
	out := OutlineConfig{Anchors: make([]AnchorConfig, len(anchors))}
	for i, a := range anchors {
		out.Anchors[i] = anchorConfig(a)
	}
	return out
}

func colorConfig(c Color) []float64 { return []float64{c.R, c.G, c.B} }

func sideConfig(s *EyeSide) EyeSideConfig {
	p := &s.Params
	return EyeSideConfig{
		ScleraColor:        colorConfig(p.ScleraColor),
		IrisColor:          colorConfig(p.IrisColor),
		PupilColor:         colorConfig(p.PupilColor),
		EyelidClose:        p.EyelidClose,
		IrisRadius:         p.IrisRadius,
		IrisFollow:         p.IrisFollow,
		PupilRadius:        p.PupilRadius,
		HighlightOffset:    []float64{p.HighlightOffset.X, p.HighlightOffset.Y},
		HighlightRadius:    p.HighlightRadius,
		HighlightIntensity: p.HighlightIntensity,
		LookX:              p.Look.X,
		LookY:              p.Look.Y,
		EyeShape: EyeShapeConfig{
			Open:      outlineConfig(s.Eye.Open.Anchors[:]),
			Closed:    outlineConfig(s.Eye.Closed.Anchors[:]),
			CloseArch: s.Eye.CloseArch,
		},
		EyebrowShape: EyebrowShapeConfig{
			Outline:   outlineConfig(s.Eyebrow.Outline.Anchors[:]),
			Thickness: append([]float64(nil), s.Eyebrow.Thickness[:]...),
			TipRound:  append([]bool(nil), s.Eyebrow.TipRound[:]...),
			BaseY:     s.Eyebrow.BaseY,
			Follow:    s.Eyebrow.Follow,
			Color:     colorConfig(s.Eyebrow.Color),
		},
		EyelashShape: EyelashShapeConfig{
			Color:     colorConfig(s.Eyelash.Color),
			Thickness: s.Eyelash.Thickness,
		},
		IrisShape:  outlineConfig(s.Iris.Outline.Anchors[:]),
		PupilShape: outlineConfig(s.Pupil.Outline.Anchors[:]),
	}
}

func linkConfig(l SectionLink) SectionLinkConfig {
	return SectionLinkConfig{Linked: l.Linked, Active: l.Active.String()}
}

// Config captures the studio's persistent state.
func (s *Studio) Config() *EyeConfig {
	g := &s.Global
	squash := g.SquashStretch
	return &EyeConfig{
		Version: ConfigVersion,
		Left:    sideConfig(&s.Sides[SideLeft]),
		Right:   sideConfig(&s.Sides[SideRight]),
		Global: GlobalConfig{
			BgColor:       colorConfig(g.BgColor),
			EyeSeparation: g.EyeSeparation,
			MaxAngle:      g.MaxAngle,
			EyeAngle:      g.EyeAngle,
			FocusDistance: g.FocusDistance,
			SquashStretch: &squash,
			AutoBlink:     g.AutoBlink,
			FollowMouse:   g.FollowMouse,
			ShowHighlight: g.ShowHighlight,
			ShowEyebrow:   g.ShowEyebrow,
			ShowEyelash:   g.ShowEyelash,
		},
		Links: LinkConfig{
			Shape:   linkConfig(s.Links[SectionShape]),
			Iris:    linkConfig(s.Links[SectionIris]),
			Eyebrow: linkConfig(s.Links[SectionEyebrow]),
			Eyelash: linkConfig(s.Links[SectionEyelash]),
		},
	}
}

// ApplyConfig replaces the studio's persistent state with c. On error the
// studio is unchanged. Active transforms are cancelled first since their
// snapshots would refer to replaced shapes.
func (s *Studio) ApplyConfig(c *EyeConfig) error {
	b, err := c.build()
	if err != nil {
		Logger().Warn("config rejected", slog.Any("error", err))
		return err
	}
	for _, key := range s.editors.Keys() {
		s.editors.State(key).Cancel()
	}
	s.Sides = b.sides
	s.Global = b.global
	s.Links = b.links
	return nil
}

// LoadConfig parses data and applies it.
func (s *Studio) LoadConfig(data []byte) error {
	c, err := ParseConfig(data)
	if err != nil {
		Logger().Warn("config rejected", slog.Any("error", err))
		return err
	}
	return s.ApplyConfig(c)
}
