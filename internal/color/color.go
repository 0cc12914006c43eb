// Package color converts between HEX, RGB and CMYK representations.
// All functions are pure; RGB is the canonical form and CMYK is derived
// from it in one direction only.
package color

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	// ErrFormat is returned when a hex color string is malformed.
	ErrFormat = errors.New("malformed hex color")

	// ErrRange is returned when a channel value is outside 0-255.
	ErrRange = errors.New("channel out of range")
)

// RGB is a 24-bit color.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// CMYK holds ink fractions in [0,1], each rounded to two decimals.
type CMYK struct {
	C float64 `json:"c"`
	M float64 `json:"m"`
	Y float64 `json:"y"`
	K float64 `json:"k"`
}

// FromInts builds an RGB from int channels, rejecting anything outside 0-255.
func FromInts(r, g, b int) (RGB, error) {
	for _, ch := range []struct {
		name string
		v    int
	}{{"r", r}, {"g", g}, {"b", b}} {
		if ch.v < 0 || ch.v > 255 {
			return RGB{}, fmt.Errorf("%s=%d: %w", ch.name, ch.v, ErrRange)
		}
	}
	return RGB{R: uint8(r), G: uint8(g), B: uint8(b)}, nil
}

// RGBToHex formats channels as "#rrggbb" in lowercase.
func RGBToHex(r, g, b int) (string, error) {
	c, err := FromInts(r, g, b)
	if err != nil {
		return "", fmt.Errorf("rgb to hex: %w", err)
	}
	return c.Hex(), nil
}

// HexToRGB parses "#rrggbb" or "rrggbb". Exactly six hex digits are
// required after the optional prefix; case is ignored.
func HexToRGB(s string) (RGB, error) {
	h := strings.TrimPrefix(s, "#")
	if len(h) != 6 {
		return RGB{}, fmt.Errorf("hex to rgb %q: %w", s, ErrFormat)
	}

	var ch [3]uint8
	for i := range ch {
		v, err := strconv.ParseUint(h[i*2:i*2+2], 16, 8)
		if err != nil {
			return RGB{}, fmt.Errorf("hex to rgb %q: %w", s, ErrFormat)
		}
		ch[i] = uint8(v)
	}

	return RGB{R: ch[0], G: ch[1], B: ch[2]}, nil
}

// RGBToCMYK converts channels and returns the formatted percentages,
// e.g. "0%, 100%, 100%, 0%".
func RGBToCMYK(r, g, b int) (string, error) {
	c, err := FromInts(r, g, b)
	if err != nil {
		return "", fmt.Errorf("rgb to cmyk: %w", err)
	}
	return c.CMYK().String(), nil
}

// Hex returns the "#rrggbb" form.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// String returns the "rgb(r, g, b)" form.
func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// CMYK converts to ink fractions. Pure black is (0,0,0,1) by convention.
// Near-black colors still divide by (1-k); there is no epsilon guard.
func (c RGB) CMYK() CMYK {
	if c.R == 0 && c.G == 0 && c.B == 0 {
		return CMYK{K: 1}
	}

	r := float64(c.R) / 255
	g := float64(c.G) / 255
	b := float64(c.B) / 255

	k := 1 - max(r, g, b)
	return CMYK{
		C: round2((1 - r - k) / (1 - k)),
		M: round2((1 - g - k) / (1 - k)),
		Y: round2((1 - b - k) / (1 - k)),
		K: round2(k),
	}
}

// Percentages returns each ink as a whole percentage.
func (c CMYK) Percentages() [4]int {
	return [4]int{percent(c.C), percent(c.M), percent(c.Y), percent(c.K)}
}

// String returns "c%, m%, y%, k%".
func (c CMYK) String() string {
	p := c.Percentages()
	return fmt.Sprintf("%d%%, %d%%, %d%%, %d%%", p[0], p[1], p[2], p[3])
}

// round2 rounds to two decimals using the exact binary value of v, so
// 0.99499... stays 0.99 rather than tripping over v*100 == 99.5.
func round2(v float64) float64 {
	f, _ := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 2, 64), 64)
	return f
}

// percent is the second rounding stage, applied to an already rounded ratio.
func percent(v float64) int {
	return int(math.RoundToEven(v * 100))
}
