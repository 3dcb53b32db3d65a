package face

import (
	"math"

	"github.com/tartampluch/go-analogclock/internal/config"
	"github.com/tartampluch/go-analogclock/internal/engine"
)

// HandKind identifies one of the three clock hands.
type HandKind int

const (
	HourHand HandKind = iota
	MinuteHand
	SecondHand
)

// Hands returns the hands in drawing order. Later hands overwrite earlier
// ones. Each call returns a new slice.
func Hands() []HandKind {
	return []HandKind{HourHand, MinuteHand, SecondHand}
}

// direction is a coarse bucket of the hand angle.
type direction int

const (
	dirUp direction = iota
	dirDownRight
	dirHorizontal
	dirDownLeft
)

// glyphSet is indexed by direction.
type glyphSet [4]rune

var handGlyphs = map[HandKind]glyphSet{
	HourHand: {
		dirUp:         config.GlyphHourUp,
		dirDownRight:  config.GlyphHourDownRight,
		dirHorizontal: config.GlyphHourHorizontal,
		dirDownLeft:   config.GlyphHourDownLeft,
	},
	MinuteHand: {
		dirUp:         config.GlyphMinuteUp,
		dirDownRight:  config.GlyphMinuteDownRight,
		dirHorizontal: config.GlyphMinuteHorizontal,
		dirDownLeft:   config.GlyphMinuteDownLeft,
	},
	SecondHand: {
		dirUp:         config.GlyphSecondUp,
		dirDownRight:  config.GlyphSecondDownRight,
		dirHorizontal: config.GlyphSecondHorizontal,
		dirDownLeft:   config.GlyphSecondDownLeft,
	},
}

// String returns the hand name, used in logs and test names.
func (k HandKind) String() string {
	switch k {
	case HourHand:
		return "hour"
	case MinuteHand:
		return "minute"
	case SecondHand:
		return "second"
	default:
		return "unknown"
	}
}

// RadiusFraction is the hand length relative to the face radius.
func (k HandKind) RadiusFraction() float64 {
	switch k {
	case HourHand:
		return config.HourHandFraction
	case MinuteHand:
		return config.MinuteHandFraction
	default:
		return config.SecondHandFraction
	}
}

// Angle returns the hand angle for t, in radians.
func (k HandKind) Angle(t engine.ClockTime) float64 {
	switch k {
	case HourHand:
		return t.HourAngle()
	case MinuteHand:
		return t.MinuteAngle()
	default:
		return t.SecondAngle()
	}
}

// Glyph picks the hand glyph for angle. The circle is split into four
// buckets centred on 12, 3, 6 and 9 o'clock; the glyph only approximates the
// hand direction and is the same along the whole hand.
func (k HandKind) Glyph(angle float64) rune {
	set, ok := handGlyphs[k]
	if !ok {
		set = handGlyphs[SecondHand]
	}
	return set[bucket(angle)]
}

func bucket(angle float64) direction {
	a := normalizeAngle(angle)
	switch {
	case a < math.Pi/4 || a >= 7*math.Pi/4:
		return dirUp
	case a < 3*math.Pi/4:
		return dirDownRight
	case a < 5*math.Pi/4:
		return dirHorizontal
	default:
		return dirDownLeft
	}
}
