package generation

import (
	"fmt"
	"hash/fnv"
	"strings"

	"github.com/coreybb/storyboard/models"
)

// variety makes template choices that look varied across briefs but are fully
// reproducible: every choice is a pure function of the brief seed and a salt.
type variety struct {
	seed uint64
}

func newVariety(b models.Brief) variety {
	h := fnv.New64a()
	// Hash.Write never returns an error.
	_, _ = h.Write([]byte(canonicalBrief(b)))
	return variety{seed: h.Sum64()}
}

// canonicalBrief is the stable string form of a brief used for seeding and
// for package identifiers.
func canonicalBrief(b models.Brief) string {
	return fmt.Sprintf("%s|%d|%s|%s|%s|%s",
		strings.ToLower(strings.TrimSpace(b.Topic)),
		b.DurationMinutes, b.Style, b.Audience, b.Tone, b.Language)
}

// CanonicalBrief exposes the canonical form for callers deriving ids from a brief.
func CanonicalBrief(b models.Brief) string {
	return canonicalBrief(b)
}

// index returns a value in [0, n) for the given salt.
func (v variety) index(salt uint64, n int) int {
	if n <= 0 {
		return 0
	}
	x := v.seed + salt*0x9E3779B97F4A7C15
	x ^= x >> 30
	x *= 0xBF58476D1CE4E5B9
	x ^= x >> 27
	x *= 0x94D049BB133111EB
	x ^= x >> 31
	return int(x % uint64(n))
}

func (v variety) pick(options []string, salt uint64) string {
	if len(options) == 0 {
		return ""
	}
	return options[v.index(salt, len(options))]
}

// pickN returns n distinct options in rotation order starting at a seeded offset.
func (v variety) pickN(options []string, n int, salt uint64) []string {
	if n > len(options) {
		n = len(options)
	}
	start := v.index(salt, len(options))
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, options[(start+i)%len(options)])
	}
	return out
}
