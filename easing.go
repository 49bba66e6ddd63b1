package pageflip

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tanema/gween/ease"
	"go.uber.org/zap"
)

// ErrUnknownEasing is returned by EasingByName for names it does not know.
var ErrUnknownEasing = errors.New("pageflip: unknown easing")

// EaseFunc maps normalized time in [0, 1] to normalized progress in [0, 1].
// It must be monotonic and satisfy f(0) = 0 and f(1) = 1 for the flip to
// stay continuous at the end of the rolling phase.
type EaseFunc func(t float64) float64

// Linear is the identity easing and the default for ProgressDriver.
func Linear(t float64) float64 { return t }

// EaseFromTween adapts a gween easing function to an EaseFunc. The curve is
// evaluated over a unit duration and its output clamped to [0, 1].
func EaseFromTween(fn ease.TweenFunc) EaseFunc {
	if fn == nil {
		return Linear
	}
	return func(t float64) float64 {
		return Clamp01(float64(fn(float32(Clamp01(t)), 0, 1, 1)))
	}
}

// easings lists the gween curves that stay inside [0, 1] and never reverse.
// Back, elastic and bounce curves overshoot and are left out.
var easings = map[string]ease.TweenFunc{
	"linear":     ease.Linear,
	"inquad":     ease.InQuad,
	"outquad":    ease.OutQuad,
	"inoutquad":  ease.InOutQuad,
	"incubic":    ease.InCubic,
	"outcubic":   ease.OutCubic,
	"inoutcubic": ease.InOutCubic,
	"inquart":    ease.InQuart,
	"outquart":   ease.OutQuart,
	"inoutquart": ease.InOutQuart,
	"inquint":    ease.InQuint,
	"outquint":   ease.OutQuint,
	"inoutquint": ease.InOutQuint,
	"insine":     ease.InSine,
	"outsine":    ease.OutSine,
	"inoutsine":  ease.InOutSine,
	"incirc":     ease.InCirc,
	"outcirc":    ease.OutCirc,
	"inoutcirc":  ease.InOutCirc,
}

// TweenByName returns the gween easing function registered under name.
// Names are case-insensitive and ignore '-' and '_' ("in-out-sine",
// "InOutSine" and "inoutsine" are equivalent). An empty name is linear.
func TweenByName(name string) (ease.TweenFunc, error) {
	key := easingKey(name)
	if key == "" {
		return ease.Linear, nil
	}
	fn, ok := easings[key]
	if !ok {
		Logger().Warn("unknown easing", zap.String("name", name))
		return nil, fmt.Errorf("%w %q", ErrUnknownEasing, name)
	}
	return fn, nil
}

// EasingByName returns the EaseFunc for a named gween curve.
func EasingByName(name string) (EaseFunc, error) {
	fn, err := TweenByName(name)
	if err != nil {
		return nil, err
	}
	if key := easingKey(name); key == "" || key == "linear" {
		return Linear, nil
	}
	return EaseFromTween(fn), nil
}

func easingKey(name string) string {
	return strings.ToLower(strings.NewReplacer("-", "", "_", "").Replace(strings.TrimSpace(name)))
}
