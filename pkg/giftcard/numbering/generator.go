package numbering

import (
	"math/rand"
	"strconv"
	"time"
)

const (
	numberMin = 10000000
	numberMax = 99999999

	// MaxAttempts bounds the collision-retry loop. When the ceiling is
	// reached the last draw is returned even if it collides, so callers
	// must re-validate against the store before committing.
	MaxAttempts = 50
)

// Generator produces human-presentable 8-digit card numbers. The
// entropy source is injectable so tests can force collisions.
type Generator struct {
	intn func(n int) int
}

func New() *Generator {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return &Generator{intn: rng.Intn}
}

// NewWithSource builds a generator over a custom draw function, used
// by tests. intn must return a value in [0, n).
func NewWithSource(intn func(n int) int) *Generator {
	return &Generator{intn: intn}
}

func (g *Generator) draw() string {
	n := numberMin + g.intn(numberMax-numberMin+1)
	return strconv.Itoa(n)
}

// Generate returns an 8-digit number, retrying while the draw collides
// with existing, up to MaxAttempts. Uniqueness is best-effort only: on
// attempt exhaustion the final (possibly colliding) draw is returned.
func (g *Generator) Generate(existing map[string]struct{}) string {
	candidate := g.draw()
	if len(existing) == 0 {
		return candidate
	}
	for attempt := 1; attempt < MaxAttempts; attempt++ {
		if _, taken := existing[candidate]; !taken {
			return candidate
		}
		candidate = g.draw()
	}
	return candidate
}

// IsValid reports whether s has the exact 8-digit shape required for
// manually entered numbers.
func IsValid(s string) bool {
	if len(s) != 8 {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
