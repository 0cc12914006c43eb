package clipboard

import (
	"errors"
	"testing"
)

func TestCopyUsesWriter(t *testing.T) {
	var got string
	restore := Stub(func(s string) error {
		got = s
		return nil
	})
	defer restore()

	if err := Copy("529.982.247-25"); err != nil {
		t.Fatalf("copy: %v", err)
	}
	if got != "529.982.247-25" {
		t.Errorf("writer got %q", got)
	}
}

func TestCopyWrapsError(t *testing.T) {
	boom := errors.New("boom")
	restore := Stub(func(string) error { return boom })
	defer restore()

	err := Copy("x")
	if !errors.Is(err, boom) {
		t.Errorf("got %v, want wrapped boom", err)
	}
}

func TestStubRestores(t *testing.T) {
	called := false
	restore := Stub(func(string) error { called = true; return nil })
	restore()

	inner := Stub(func(string) error { return nil })
	defer inner()
	_ = Copy("y")
	if called {
		t.Error("restored writer should not call the first stub")
	}
}
