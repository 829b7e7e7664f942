package random

import "testing"

func TestCryptoSourceUniformBetween(t *testing.T) {
	src := CryptoSource{}

	// Every draw must land inside the inclusive bounds.
	for i := 0; i < 1000; i++ {
		got := src.UniformBetween(3, 12)
		if got < 3 || got > 12 {
			t.Fatalf("UniformBetween(3, 12) = %d, out of range", got)
		}
	}
}

func TestCryptoSourceDegenerateRange(t *testing.T) {
	src := CryptoSource{}

	for i := 0; i < 10; i++ {
		if got := src.UniformBetween(7, 7); got != 7 {
			t.Fatalf("UniformBetween(7, 7) = %d, want 7", got)
		}
	}
}

func TestCryptoSourceCoversRange(t *testing.T) {
	src := CryptoSource{}

	// With 2000 draws over 10 values, missing a value is astronomically
	// unlikely unless the source is broken.
	seen := make(map[int]bool)
	for i := 0; i < 2000; i++ {
		seen[src.UniformBetween(0, 9)] = true
	}
	for v := 0; v <= 9; v++ {
		if !seen[v] {
			t.Errorf("value %d never drawn in 2000 samples", v)
		}
	}
}

func TestCryptoSourceInvalidRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("UniformBetween(5, 3) should panic")
		}
	}()
	CryptoSource{}.UniformBetween(5, 3)
}
