package document

import (
	"fmt"
	"strings"
)

// Mask renders an unmasked digit string with the separators of its kind.
func Mask(k Kind, digits string) (string, error) {
	layout, ok := layoutFor(k)
	if !ok {
		return "", fmt.Errorf("mask %s: %w", k, ErrInvalidArgument)
	}

	d, err := parseDigits(digits)
	if err != nil {
		return "", fmt.Errorf("mask %s: %w", k, err)
	}
	if len(d) != k.Len() {
		return "", fmt.Errorf("mask %s: got %d digits, want %d: %w", k, len(d), k.Len(), ErrLength)
	}

	return render(layout, d, true), nil
}

// Unmask strips everything that is not an ASCII digit.
func Unmask(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}

// IsMasked reports whether s already matches the masked layout of k.
func IsMasked(k Kind, s string) bool {
	layout, ok := layoutFor(k)
	if !ok || len(s) != len(layout) {
		return false
	}
	for i := 0; i < len(layout); i++ {
		if layout[i] == '#' {
			if s[i] < '0' || s[i] > '9' {
				return false
			}
			continue
		}
		if s[i] != layout[i] {
			return false
		}
	}
	return true
}

func layoutFor(k Kind) (string, bool) {
	switch k {
	case CPF:
		return cpfLayout, true
	case CNPJ:
		return cnpjLayout, true
	case RG:
		return rgLayout, true
	}
	return "", false
}

// parseDigits converts a string made only of ASCII digits.
func parseDigits(s string) ([]int, error) {
	d := make([]int, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return nil, fmt.Errorf("non-digit %q at %d: %w", s[i], i, ErrInvalidArgument)
		}
		d[i] = int(s[i] - '0')
	}
	return d, nil
}
