package eyekit

import (
	"log/slog"
	"math"
)

// debugCollinearTol is the angle, in radians, a smooth anchor's handles may
// deviate from antiparallel before a debug warning fires.
const debugCollinearTol = 1e-6

// debugCheckCollinear logs a warning for every anchor of l whose handles are
// no longer collinear. Only called when the editor is in debug mode. It
// returns the number of violations found.
func debugCheckCollinear(key EditorKey, l Layer) int {
	if l == nil {
		return 0
	}
	bad := 0
	for i := 0; i < l.Len(); i++ {
		a := l.Anchor(i)
		if a.IsCollinear(debugCollinearTol) {
			continue
		}
		bad++
		Logger().Warn("eyekit debug: handles not collinear",
			slog.String("editor", key.String()),
			slog.Int("anchor", i),
			slog.Float64("angle", handleAngle(a)))
	}
	return bad
}

// debugCheckFinite warns when any anchor of l holds a NaN or infinite
// coordinate, which would poison the uniform upload.
func debugCheckFinite(key EditorKey, l Layer) int {
	bad := 0
	for i := 0; i < l.Len(); i++ {
		a := l.Anchor(i)
		for _, v := range [...]float64{
			a.Position.X, a.Position.Y,
			a.HandleIn.X, a.HandleIn.Y,
			a.HandleOut.X, a.HandleOut.Y,
		} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				bad++
				Logger().Warn("eyekit debug: non-finite anchor",
					slog.String("editor", key.String()), slog.Int("anchor", i))
				break
			}
		}
	}
	return bad
}
