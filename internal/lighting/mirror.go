package lighting

import "github.com/alexisbeaulieu97/lumen/internal/stylevars"

// MirrorTo returns a hook that copies the angle into store.
func MirrorTo(store *stylevars.Store) AngleHook {
	return func(angle float64) {
		store.Set(stylevars.LightAngle, FormatAngle(angle))
	}
}

// MirroredAngle reads the mirrored angle back from store.
func MirroredAngle(store *stylevars.Store) (string, bool) {
	return store.Get(stylevars.LightAngle)
}

// MirrorVariablesTo returns a hook that copies every shadow variable for the
// angle, tinted with hue and sat, into store.
func MirrorVariablesTo(store *stylevars.Store, hue, sat float64) AngleHook {
	return func(angle float64) {
		store.SetAll(ShadowsAt(angle).Variables(hue, sat))
	}
}
