package shadow

import (
	"math"
	"strconv"
	"strings"
)

// px renders a pixel length with exactly one decimal digit. Halves round away
// from zero so that px(-v) is always the negation of px(v).
func px(v float64) string {
	r := math.Round(v*10) / 10
	if r == 0 {
		r = 0 // drop the sign of -0
	}
	return strconv.FormatFloat(r, 'f', 1, 64) + "px"
}

// number renders a colour component or alpha in its shortest form after
// rounding to two decimals.
func number(v float64) string {
	r := math.Round(v*100) / 100
	if r == 0 {
		r = 0
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}

func rgba(r, g, b int, alpha float64) string {
	var sb strings.Builder
	sb.WriteString("rgba(")
	sb.WriteString(strconv.Itoa(r))
	sb.WriteString(", ")
	sb.WriteString(strconv.Itoa(g))
	sb.WriteString(", ")
	sb.WriteString(strconv.Itoa(b))
	sb.WriteString(", ")
	sb.WriteString(number(alpha))
	sb.WriteString(")")
	return sb.String()
}

func hsla(hue, sat, light, alpha float64) string {
	return "hsla(" + number(hue) + ", " + number(sat) + "%, " + number(light) + "%, " + number(alpha) + ")"
}

// declaration joins the parts of a single box-shadow entry.
func declaration(parts ...string) string {
	return strings.Join(parts, " ")
}
