package document

import "fmt"

// Validate checks the check digits of a CPF, CNPJ or RG. Separators and
// any other non-digit characters are ignored. A wrong digit count is an
// error; a well-formed number with bad check digits is simply invalid.
// Sequences of a single repeated digit are always invalid.
func Validate(k Kind, input string) (bool, error) {
	if !k.HasCheckDigits() {
		return false, fmt.Errorf("validate %s: %w", k, ErrInvalidArgument)
	}

	d, err := parseDigits(Unmask(input))
	if err != nil {
		return false, fmt.Errorf("validate %s: %w", k, err)
	}
	if len(d) != k.Len() {
		return false, fmt.Errorf("validate %s: got %d digits, want %d: %w", k, len(d), k.Len(), ErrLength)
	}

	if repeated(d) {
		return false, nil
	}

	switch k {
	case CPF:
		var base [9]int
		copy(base[:], d)
		dv := CPFCheckDigits(base)
		return dv[0] == d[9] && dv[1] == d[10], nil

	case CNPJ:
		var base [12]int
		copy(base[:], d)
		dv := CNPJCheckDigits(base)
		return dv[0] == d[12] && dv[1] == d[13], nil

	case RG:
		var base [8]int
		copy(base[:], d)
		return RGCheckDigit(base) == d[8], nil
	}

	return false, nil
}

func repeated(d []int) bool {
	for _, v := range d[1:] {
		if v != d[0] {
			return false
		}
	}
	return true
}
