// Package document generates and validates fake Brazilian document numbers
// (CPF, CNPJ, RG) and UUIDs. Values are statistically valid test data only;
// nothing here is checked against a real registry.
// Randomness comes from crypto/rand.
package document

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidArgument is returned for requests that violate a call
	// contract, such as a negative count.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrLength is returned when a number has the wrong digit count.
	ErrLength = errors.New("wrong number of digits")

	// ErrUnknownKind is returned when a kind name is not recognized.
	ErrUnknownKind = errors.New("unknown document kind")
)

// Kind identifies a document type.
type Kind int

const (
	CPF Kind = iota
	CNPJ
	RG
	UUID
)

// Kinds lists every kind in display order.
var Kinds = []Kind{RG, CPF, CNPJ, UUID}

// String returns the lowercase kind name.
func (k Kind) String() string {
	switch k {
	case CPF:
		return "cpf"
	case CNPJ:
		return "cnpj"
	case RG:
		return "rg"
	case UUID:
		return "uuid"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Label returns the display name, e.g. "CPF".
func (k Kind) Label() string {
	return strings.ToUpper(k.String())
}

// Len returns the digit count of the unmasked number, or 0 for UUID.
func (k Kind) Len() int {
	switch k {
	case CPF:
		return cpfLen
	case CNPJ:
		return cnpjLen
	case RG:
		return rgLen
	}
	return 0
}

// HasCheckDigits reports whether the kind carries mod-11 check digits.
func (k Kind) HasCheckDigits() bool {
	return k.Len() > 0
}

// ParseKind resolves a kind name, ignoring case.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds {
		if strings.EqualFold(s, k.String()) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%q: %w", s, ErrUnknownKind)
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(b []byte) error {
	v, err := ParseKind(string(b))
	if err != nil {
		return err
	}
	*k = v
	return nil
}
