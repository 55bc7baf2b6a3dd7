package pep440_test

import (
	"math/rand"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/pyver-dev/pyver/pkg/pep440"
)

func TestParseFallback(t *testing.T) {
	t.Parallel()
	testcases := map[string]struct {
		Input    string
		IsLegacy bool
	}{
		"plain":           {"1.0", false},
		"messy-but-valid": {" V1.0.0-RC1+local ", false},
		"date":            {"2004-03-01", true},
		"words":           {"french toast", true},
		"empty":           {"", true},
		"dashed-beta":     {"1.0-beta-2", false}, // normalizes to 1.0b2
		"named-final":     {"1.0.final", true},
	}
	for tcName, tc := range testcases {
		tc := tc
		t.Run(tcName, func(t *testing.T) {
			t.Parallel()
			ver := pep440.Parse(tc.Input)
			_, isLegacy := ver.(pep440.LegacyVersion)
			assert.Equal(t, tc.IsLegacy, isLegacy)
			assert.False(t, isLegacy && ver.IsPreRelease())
		})
	}
}

func TestLegacyDominance(t *testing.T) {
	t.Parallel()
	legacies := []string{
		"", "french toast", "2004-03-01", "1.0.final", "zzzzz99999",
	}
	moderns := []string{
		"0.dev0", "0", "1.0a1", "1.0", "1!0.1",
	}
	for _, l := range legacies {
		for _, m := range moderns {
			lv := pep440.Parse(l)
			mv := pep440.Parse(m)
			assert.Lessf(t, lv.Compare(mv), 0, "%q < %q", l, m)
			assert.Greaterf(t, mv.Compare(lv), 0, "%q > %q", m, l)
		}
	}
}

func TestLegacyOrder(t *testing.T) {
	t.Parallel()
	testcases := map[string][]string{
		"numeric-runs": {
			"1.2.3-beta-2",
			"1.2.3-beta-10",
			"1.2.10-beta-2",
		},
		"case-folding": {
			"APPLE-1",
			"apple-2",
			"Banana-1",
		},
		// A digit run outranks a letter run in the same position.
		"mixed-runs": {
			"rc",
			"10",
		},
		// Shorter is a prefix of longer, so shorter sorts first.
		"prefix": {
			"french",
			"french toast",
		},
	}
	for tcName, strs := range testcases {
		strs := strs
		t.Run(tcName, func(t *testing.T) {
			t.Parallel()
			for i := 0; i < len(strs)-1; i++ {
				a := pep440.LegacyVersion{Raw: strs[i]}
				b := pep440.LegacyVersion{Raw: strs[i+1]}
				assert.Lessf(t, a.Cmp(b), 0, "%q < %q", strs[i], strs[i+1])
				assert.Greaterf(t, b.Cmp(a), 0, "%q > %q", strs[i+1], strs[i])
				assert.Zerof(t, a.Cmp(a), "%q == %q", strs[i], strs[i])
			}
		})
	}
}

func TestMixedSort(t *testing.T) {
	t.Parallel()
	exp := []string{
		"",
		"french toast",
		"2004-03-01",
		"0.9",
		"1.0a1",
		"1.0",
		"1.0.post1",
		"1!0.1",
	}

	vers := parseAll(t, exp...)
	rand := rand.New(rand.NewSource(time.Now().UnixNano()))
	rand.Shuffle(len(vers), func(i, j int) {
		vers[i], vers[j] = vers[j], vers[i]
	})

	sort.SliceStable(vers, func(i, j int) bool {
		return vers[i].Compare(vers[j]) < 0
	})

	acts := make([]string, 0, len(vers))
	for _, ver := range vers {
		acts = append(acts, ver.String())
	}
	assert.Equal(t, exp, acts)
}
