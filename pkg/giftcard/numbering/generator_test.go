package numbering

import (
	"strconv"
	"testing"
)

func TestGenerateShape(t *testing.T) {
	g := New()
	for i := 0; i < 1000; i++ {
		n := g.Generate(nil)
		if len(n) != 8 {
			t.Fatalf("generated number %q is not 8 digits", n)
		}
		v, err := strconv.Atoi(n)
		if err != nil {
			t.Fatalf("generated number %q is not numeric", n)
		}
		if v < numberMin || v > numberMax {
			t.Fatalf("generated number %d out of range", v)
		}
	}
}

func TestGenerateEmptySetReturnsFirstDraw(t *testing.T) {
	calls := 0
	g := NewWithSource(func(n int) int {
		calls++
		return 0
	})
	got := g.Generate(map[string]struct{}{})
	if got != "10000000" {
		t.Errorf("Generate() = %q, want 10000000", got)
	}
	if calls != 1 {
		t.Errorf("draw calls = %d, want 1 (empty set must not retry)", calls)
	}
}

func TestGenerateRetriesOnCollision(t *testing.T) {
	// First two draws collide, third is free.
	draws := []int{0, 1, 2}
	i := 0
	g := NewWithSource(func(n int) int {
		v := draws[i%len(draws)]
		i++
		return v
	})

	existing := map[string]struct{}{
		"10000000": {},
		"10000001": {},
	}
	got := g.Generate(existing)
	if got != "10000002" {
		t.Errorf("Generate() = %q, want 10000002", got)
	}
}

func TestGenerateAttemptCeiling(t *testing.T) {
	// Every draw collides; the generator must give up after MaxAttempts
	// and hand back the final colliding candidate.
	calls := 0
	g := NewWithSource(func(n int) int {
		calls++
		return 0
	})

	existing := map[string]struct{}{"10000000": {}}
	got := g.Generate(existing)
	if got != "10000000" {
		t.Errorf("Generate() = %q, want the colliding fallback 10000000", got)
	}
	if calls != MaxAttempts {
		t.Errorf("draw calls = %d, want %d", calls, MaxAttempts)
	}
}

func TestIsValid(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"12345678", true},
		{"00000001", true},
		{"1234567", false},
		{"123456789", false},
		{"12345a78", false},
		{"", false},
		{"1234 678", false},
	}
	for _, tt := range tests {
		if got := IsValid(tt.in); got != tt.want {
			t.Errorf("IsValid(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
