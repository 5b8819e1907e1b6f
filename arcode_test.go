package arcode

import "testing"

func TestComputeHistogram(t *testing.T) {
	freqs := make([]int, 256)
	ComputeHistogram([]byte{0, 0, 1, 255, 255, 255}, freqs)

	if freqs[0] != 2 {
		t.Errorf("freqs[0] = %d, want 2", freqs[0])
	}

	if freqs[1] != 1 {
		t.Errorf("freqs[1] = %d, want 1", freqs[1])
	}

	if freqs[255] != 3 {
		t.Errorf("freqs[255] = %d, want 3", freqs[255])
	}

	ComputeHistogram(nil, freqs)

	for i, f := range freqs {
		if f != 0 {
			t.Errorf("freqs[%d] = %d after reset, want 0", i, f)
		}
	}
}

func TestErrorKindString(t *testing.T) {
	if InvalidArgument.String() != "invalid argument" {
		t.Errorf("unexpected String() for InvalidArgument: %q", InvalidArgument.String())
	}
}

func TestCodecErrorUnwrap(t *testing.T) {
	cause := NewError(Io, "underlying failure")
	wrapped := WrapError(Io, "outer", cause)

	if wrapped.Unwrap() == nil {
		t.Fatal("expected wrapped cause to be non-nil")
	}
}

func TestPanicRaisesCodecError(t *testing.T) {
	defer func() {
		r := recover()

		if r == nil {
			t.Fatal("expected panic")
		}

		err, ok := r.(*CodecError)

		if !ok {
			t.Fatalf("expected *CodecError, got %T", r)
		}

		if err.Kind != ContractViolation {
			t.Errorf("Kind = %v, want ContractViolation", err.Kind)
		}
	}()

	Panic(ContractViolation, "boom %d", 42)
}
