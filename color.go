package sparks

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// HSL is a text color. H is in degrees, S and L are percentages in [0, 100].
type HSL struct {
	H, S, L float64
}

// DefaultHSL is used for any text that does not set its own color.
var DefaultHSL = HSL{H: 340, S: 90, L: 60}

// Color converts h to an RGBA Color with the given alpha.
func (h HSL) Color(alpha float64) Color {
	hue := math.Mod(h.H, 360)
	if hue < 0 {
		hue += 360
	}
	c := colorful.Hsl(hue, clamp01(h.S/100), clamp01(h.L/100)).Clamped()
	return Color{R: c.R, G: c.G, B: c.B, A: alpha}
}

// Format renders h as a CSS-style hsla() string. The hue is truncated to an
// integer; saturation and lightness keep their fractional part.
func (h HSL) Format(alpha float64) string {
	return fmt.Sprintf("hsla(%d, %s%%, %s%%, %s)",
		int(h.H),
		strconv.FormatFloat(h.S, 'g', -1, 64),
		strconv.FormatFloat(h.L, 'g', -1, 64),
		strconv.FormatFloat(alpha, 'g', -1, 64),
	)
}

func (h HSL) String() string {
	return h.Format(1)
}

// ParseHSLA parses a string produced by HSL.Format.
func ParseHSLA(s string) (HSL, float64, error) {
	body := strings.TrimSpace(s)
	if !strings.HasPrefix(body, "hsla(") || !strings.HasSuffix(body, ")") {
		return HSL{}, 0, fmt.Errorf("sparks: parse color %q: want hsla(h, s%%, l%%, a)", s)
	}
	body = strings.TrimSuffix(strings.TrimPrefix(body, "hsla("), ")")

	fields := strings.Split(body, ",")
	if len(fields) != 4 {
		return HSL{}, 0, fmt.Errorf("sparks: parse color %q: got %d components, want 4", s, len(fields))
	}

	var vals [4]float64
	for i, f := range fields {
		f = strings.TrimSpace(f)
		if i == 1 || i == 2 {
			if !strings.HasSuffix(f, "%") {
				return HSL{}, 0, fmt.Errorf("sparks: parse color %q: component %d missing %%", s, i)
			}
			f = strings.TrimSuffix(f, "%")
		}
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return HSL{}, 0, fmt.Errorf("sparks: parse color %q: %w", s, err)
		}
		vals[i] = v
	}
	return HSL{H: vals[0], S: vals[1], L: vals[2]}, vals[3], nil
}
