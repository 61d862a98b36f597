package eyekit

// syntheticKind is what an injected frame does.
type syntheticKind uint8

const (
	synthPress syntheticKind = iota
	synthMove
	synthRelease
	synthKey
	synthSecondary
	synthIdle
)

// syntheticEvent represents a single injected frame of input. Screen
// coordinates are used, identical to real mouse input.
type syntheticEvent struct {
	kind syntheticKind
	pos  Vec2
	key  Key
	mods KeyModifiers
}

// InputQueue produces synthetic FrameInputs, one queued event per frame, for
// tests and scripted sessions. It tracks the pointer position and button
// state so the edges it reports are consistent.
type InputQueue struct {
	// Modifiers is attached to events as they are queued.
	Modifiers KeyModifiers

	events  []syntheticEvent
	pointer Vec2
	down    bool
	time    float64
}

// NewInputQueue returns an empty queue with the pointer at the origin.
func NewInputQueue() *InputQueue { return &InputQueue{} }

func (q *InputQueue) push(kind syntheticKind, p Vec2) {
	q.events = append(q.events, syntheticEvent{kind: kind, pos: p, mods: q.Modifiers})
}

// InjectPress queues a primary-button press at the given screen coordinates.
func (q *InputQueue) InjectPress(x, y float64) { q.push(synthPress, Vec2{x, y}) }

// InjectMove queues a pointer move. The button keeps whatever state the
// previous event left it in.
func (q *InputQueue) InjectMove(x, y float64) { q.push(synthMove, Vec2{x, y}) }

// InjectRelease queues a primary-button release at the given coordinates.
func (q *InputQueue) InjectRelease(x, y float64) { q.push(synthRelease, Vec2{x, y}) }

// InjectSecondary queues a secondary-button press at the last pointer
// position.
func (q *InputQueue) InjectSecondary() {
	q.events = append(q.events, syntheticEvent{kind: synthSecondary, mods: q.Modifiers})
}

// InjectKey queues a key press at the last pointer position.
func (q *InputQueue) InjectKey(k Key) {
	q.events = append(q.events, syntheticEvent{kind: synthKey, key: k, mods: q.Modifiers})
}

// InjectWait queues frames with no input.
func (q *InputQueue) InjectWait(frames int) {
	for i := 0; i < frames; i++ {
		q.events = append(q.events, syntheticEvent{kind: synthIdle, mods: q.Modifiers})
	}
}

// InjectClick is a convenience that queues a press followed by a release
// at the same screen coordinates. Consumes two frames.
func (q *InputQueue) InjectClick(x, y float64) {
	q.InjectPress(x, y)
	q.InjectRelease(x, y)
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY),
// linearly interpolated moves over frames-2 intermediate frames, and
// release at (toX, toY). The total sequence consumes `frames` frames.
// Minimum frames is 2 (press + release).
func (q *InputQueue) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	q.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		q.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	q.InjectRelease(toX, toY)
}

// Len returns the number of queued frames.
func (q *InputQueue) Len() int { return len(q.events) }

// Next pops one event and returns it as the frame's input, advancing time
// by dt seconds. With an empty queue it returns an idle frame at the last
// pointer position and false.
func (q *InputQueue) Next(dt float64) (FrameInput, bool) {
	q.time += dt
	in := FrameInput{Pointer: q.pointer, PrimaryDown: q.down, Modifiers: q.Modifiers, Time: q.time}
	if len(q.events) == 0 {
		return in, false
	}
	evt := q.events[0]
	copy(q.events, q.events[1:])
	q.events = q.events[:len(q.events)-1]

	in.Modifiers = evt.mods
	switch evt.kind {
	case synthPress:
		q.pointer = evt.pos
		in.PrimaryPressed = !q.down
		q.down = true
	case synthMove:
		q.pointer = evt.pos
	case synthRelease:
		q.pointer = evt.pos
		in.PrimaryReleased = q.down
		q.down = false
	case synthKey:
		in.Keys = []Key{evt.key}
	case synthSecondary:
		in.SecondaryPressed = true
	}
	in.Pointer = q.pointer
	in.PrimaryDown = q.down
	return in, true
}
