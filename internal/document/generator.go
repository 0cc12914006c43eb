package document

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"

	"github.com/google/uuid"
)

// Options controls how Generate renders a value.
type Options struct {
	Masked bool
	// HeadOffice fixes the CNPJ branch to 0001.
	HeadOffice bool
	UUID       UUIDFormat
}

// Generator produces random document numbers using crypto/rand.
type Generator struct{}

// New creates a generator.
func New() *Generator {
	return &Generator{}
}

// CPF generates a CPF: 9 random digits plus 2 check digits.
// Masked form is XXX.XXX.XXX-XX.
func (g *Generator) CPF(masked bool) string {
	var base [9]int
	fillMixed(base[:])

	dv := CPFCheckDigits(base)
	return render(cpfLayout, append(base[:], dv[:]...), masked)
}

// CNPJ generates a CNPJ: 12 random digits plus 2 check digits.
// Masked form is XX.XXX.XXX/XXXX-XX.
func (g *Generator) CNPJ(masked bool) string {
	var base [12]int
	fillMixed(base[:])
	return cnpj(base, masked)
}

// CNPJHeadOffice generates a CNPJ whose branch segment is 0001.
func (g *Generator) CNPJHeadOffice(masked bool) string {
	var base [12]int
	fill(base[:8])
	copy(base[8:], headOfficeBranch[:])
	return cnpj(base, masked)
}

// RG generates an RG: 8 random digits plus 1 check digit.
// Masked form is XX.XXX.XXX-X.
func (g *Generator) RG(masked bool) string {
	var base [8]int
	fillMixed(base[:])

	dv := RGCheckDigit(base)
	return render(rgLayout, append(base[:], dv), masked)
}

// UUID returns a random version 4 UUID in canonical lowercase form.
func (g *Generator) UUID() string {
	return uuid.NewString()
}

// Generate produces one value of the given kind.
func (g *Generator) Generate(k Kind, opts Options) (string, error) {
	switch k {
	case CPF:
		return g.CPF(opts.Masked), nil
	case CNPJ:
		if opts.HeadOffice {
			return g.CNPJHeadOffice(opts.Masked), nil
		}
		return g.CNPJ(opts.Masked), nil
	case RG:
		return g.RG(opts.Masked), nil
	case UUID:
		return FormatUUID(g.UUID(), opts.UUID), nil
	}
	return "", fmt.Errorf("generate %s: %w", k, ErrUnknownKind)
}

// Batch produces n values of the given kind. n == 0 yields an empty slice.
func (g *Generator) Batch(k Kind, n int, opts Options) ([]string, error) {
	if n < 0 {
		return nil, fmt.Errorf("batch of %d: %w", n, ErrInvalidArgument)
	}

	out := make([]string, 0, n)
	for range n {
		v, err := g.Generate(k, opts)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// Digits returns n random decimal digits.
func (g *Generator) Digits(n int) ([]int, error) {
	if n < 0 {
		return nil, fmt.Errorf("digits of length %d: %w", n, ErrInvalidArgument)
	}
	d := make([]int, n)
	fill(d)
	return d, nil
}

func cnpj(base [12]int, masked bool) string {
	dv := CNPJCheckDigits(base)
	return render(cnpjLayout, append(base[:], dv[:]...), masked)
}

// render joins digits, applying the layout when masked.
func render(layout string, digits []int, masked bool) string {
	var b strings.Builder
	b.Grow(len(layout))

	if !masked {
		for _, d := range digits {
			b.WriteByte(byte('0' + d))
		}
		return b.String()
	}

	i := 0
	for j := 0; j < len(layout); j++ {
		if layout[j] == '#' {
			b.WriteByte(byte('0' + digits[i]))
			i++
			continue
		}
		b.WriteByte(layout[j])
	}
	return b.String()
}

// fill sets every element to a random digit in [0, 9].
func fill(d []int) {
	for i := range d {
		d[i] = randIntn(10)
	}
}

// fillMixed fills d with random digits, redrawing sequences of a single
// repeated digit, which Validate always rejects.
func fillMixed(d []int) {
	fill(d)
	for len(d) > 1 && repeated(d) {
		fill(d)
	}
}

// randIntn returns a cryptographically random int in [0, n).
func randIntn(n int) int {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		// crypto/rand failure is unrecoverable
		panic("crypto/rand: " + err.Error())
	}
	return int(v.Int64())
}
