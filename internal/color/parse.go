package color

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse reads a color typed by a user: "#rrggbb", "rrggbb", "r,g,b" or
// "rgb(r, g, b)". Whitespace around components is ignored.
func Parse(s string) (RGB, error) {
	t := strings.TrimSpace(s)
	lower := strings.ToLower(t)

	if strings.HasPrefix(lower, "rgb(") && strings.HasSuffix(lower, ")") {
		return parseTriple(s, t[4:len(t)-1])
	}
	if strings.Contains(t, ",") {
		return parseTriple(s, t)
	}
	return HexToRGB(t)
}

func parseTriple(orig, body string) (RGB, error) {
	parts := strings.Split(body, ",")
	if len(parts) != 3 {
		return RGB{}, fmt.Errorf("parse %q: want 3 channels: %w", orig, ErrFormat)
	}

	var ch [3]int
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return RGB{}, fmt.Errorf("parse %q: %w", orig, ErrFormat)
		}
		ch[i] = v
	}

	c, err := FromInts(ch[0], ch[1], ch[2])
	if err != nil {
		return RGB{}, fmt.Errorf("parse %q: %w", orig, err)
	}
	return c, nil
}
