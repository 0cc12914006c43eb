package document

import (
	"errors"
	"testing"
)

func TestCheckDigitsKnownValues(t *testing.T) {
	if got := CPFCheckDigits([9]int{5, 2, 9, 9, 8, 2, 2, 4, 7}); got != [2]int{2, 5} {
		t.Errorf("CPF 529.982.247: got %v, want [2 5]", got)
	}
	if got := CNPJCheckDigits([12]int{1, 1, 2, 2, 2, 3, 3, 3, 0, 0, 0, 1}); got != [2]int{8, 1} {
		t.Errorf("CNPJ 11.222.333/0001: got %v, want [8 1]", got)
	}
	if got := RGCheckDigit([8]int{1, 2, 3, 4, 5, 6, 7, 8}); got != 2 {
		t.Errorf("RG 12.345.678: got %d, want 2", got)
	}
	// sum 11 -> 11 - 0 = 11 maps to 0
	if got := RGCheckDigit([8]int{1, 0, 0, 0, 0, 0, 0, 1}); got != 0 {
		t.Errorf("RG 10.000.001: got %d, want 0", got)
	}
	// sum 12 -> 11 - 1 = 10 maps to 0
	if got := RGCheckDigit([8]int{6, 0, 0, 0, 0, 0, 0, 0}); got != 0 {
		t.Errorf("RG 60.000.000: got %d, want 0", got)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		kind  Kind
		input string
		want  bool
	}{
		{"cpf masked valid", CPF, "529.982.247-25", true},
		{"cpf plain valid", CPF, "52998224725", true},
		{"cpf wrong first digit", CPF, "529.982.247-35", false},
		{"cpf wrong second digit", CPF, "529.982.247-26", false},
		{"cpf repeated digits", CPF, "111.111.111-11", false},
		{"cnpj masked valid", CNPJ, "11.222.333/0001-81", true},
		{"cnpj plain valid", CNPJ, "11222333000181", true},
		{"cnpj wrong digit", CNPJ, "11.222.333/0001-82", false},
		{"cnpj repeated digits", CNPJ, "00000000000000", false},
		{"rg valid", RG, "12.345.678-2", true},
		{"rg zero check digit", RG, "10.000.001-0", true},
		{"rg wrong digit", RG, "12.345.678-3", false},
		{"rg repeated digits", RG, "999999999", false},
		{"stray characters ignored", CPF, " 529 982 247 25 ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Validate(tt.kind, tt.input)
			if err != nil {
				t.Fatalf("Validate(%s, %q): %v", tt.kind, tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Validate(%s, %q) = %v, want %v", tt.kind, tt.input, got, tt.want)
			}
		})
	}
}

func TestValidateWrongLength(t *testing.T) {
	tests := []struct {
		kind  Kind
		input string
	}{
		{CPF, "5299822472"},
		{CPF, "529982247250"},
		{CNPJ, "1122233300018"},
		{RG, "1234567"},
		{RG, ""},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String()+"/"+tt.input, func(t *testing.T) {
			_, err := Validate(tt.kind, tt.input)
			if !errors.Is(err, ErrLength) {
				t.Errorf("expected ErrLength, got %v", err)
			}
		})
	}
}

func TestValidateUUIDRejected(t *testing.T) {
	_, err := Validate(UUID, "3f2b1c0e-0000-4000-8000-000000000000")
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestGeneratedValuesValidate(t *testing.T) {
	g := New()
	for range 300 {
		for _, k := range []Kind{CPF, CNPJ, RG} {
			v, err := g.Generate(k, Options{Masked: true})
			if err != nil {
				t.Fatal(err)
			}
			ok, err := Validate(k, v)
			if err != nil {
				t.Fatalf("Validate(%s, %q): %v", k, v, err)
			}
			// an all-same-digit draw is astronomically unlikely but still
			// correctly reported as invalid
			if !ok && !repeated(digitsOf(t, Unmask(v))) {
				t.Errorf("generated %s %q failed validation", k, v)
			}
		}
	}
}

func TestMask(t *testing.T) {
	tests := []struct {
		kind Kind
		in   string
		want string
	}{
		{CPF, "52998224725", "529.982.247-25"},
		{CNPJ, "11222333000181", "11.222.333/0001-81"},
		{RG, "123456782", "12.345.678-2"},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			got, err := Mask(tt.kind, tt.in)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("Mask(%s, %q) = %q, want %q", tt.kind, tt.in, got, tt.want)
			}
			if !IsMasked(tt.kind, got) {
				t.Errorf("IsMasked(%s, %q) = false", tt.kind, got)
			}
			if IsMasked(tt.kind, tt.in) {
				t.Errorf("IsMasked(%s, %q) = true for unmasked input", tt.kind, tt.in)
			}
		})
	}
}

func TestMaskErrors(t *testing.T) {
	if _, err := Mask(CPF, "123"); !errors.Is(err, ErrLength) {
		t.Errorf("short input: expected ErrLength, got %v", err)
	}
	if _, err := Mask(CPF, "529.982.247-25"); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("masked input: expected ErrInvalidArgument, got %v", err)
	}
	if _, err := Mask(UUID, "abc"); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("uuid: expected ErrInvalidArgument, got %v", err)
	}
}

func TestKindParse(t *testing.T) {
	for _, k := range Kinds {
		got, err := ParseKind(k.Label())
		if err != nil {
			t.Fatalf("ParseKind(%q): %v", k.Label(), err)
		}
		if got != k {
			t.Errorf("ParseKind(%q) = %v, want %v", k.Label(), got, k)
		}
	}

	if _, err := ParseKind("passport"); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("expected ErrUnknownKind, got %v", err)
	}
}

func TestKindText(t *testing.T) {
	var k Kind
	if err := k.UnmarshalText([]byte("cnpj")); err != nil {
		t.Fatal(err)
	}
	if k != CNPJ {
		t.Errorf("UnmarshalText = %v, want cnpj", k)
	}
	b, _ := RG.MarshalText()
	if string(b) != "rg" {
		t.Errorf("MarshalText = %q, want rg", b)
	}
}

func TestKindLen(t *testing.T) {
	want := map[Kind]int{CPF: 11, CNPJ: 14, RG: 9, UUID: 0}
	for k, n := range want {
		if k.Len() != n {
			t.Errorf("%s.Len() = %d, want %d", k, k.Len(), n)
		}
	}
}
