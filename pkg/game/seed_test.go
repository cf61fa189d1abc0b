package game

import "testing"

func TestSeedFromString(t *testing.T) {
	a := SeedFromString("storm")
	b := SeedFromString("storm")
	c := SeedFromString("calm")

	if a != b {
		t.Errorf("same input produced different seeds: %d vs %d", a, b)
	}
	if a == c {
		t.Errorf("different inputs produced the same seed: %d", a)
	}
}

func TestResolveSeed(t *testing.T) {
	if got, want := ResolveSeed("storm"), SeedFromString("storm"); got != want {
		t.Errorf("ResolveSeed(storm) = %d, want %d", got, want)
	}
	if ResolveSeed("") == 0 {
		t.Error("ResolveSeed(\"\") returned 0")
	}
}
