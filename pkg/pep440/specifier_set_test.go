package pep440_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pyver-dev/pyver/pkg/pep440"
)

func TestPrereleasePolicy(t *testing.T) {
	t.Parallel()
	testcases := []struct {
		InVer    string
		InSpec   string
		OutMatch bool
	}{
		// by default a pre-release or dev release doesn't satisfy a
		// specifier, even when the operator semantics say yes
		{"1.1a1", ">= 1.0", false},
		{"1.1.dev1", ">= 1.0", false},
		{"1.1a1", "== 1.1a1", true}, // naming one opts in
		{"1.1a1", "== 1.1.*", false},
		{"1.1.post1", ">= 1.0", true}, // post releases get no special treatment
		{"1.1+local", ">= 1.0", true}, // neither do local versions

		// one pre-release operand anywhere in the set opts the whole
		// set in
		{"1.1a1", ">= 1.0a1, < 2.0", true},
		{"1.5.dev3", ">= 1.0, != 1.1.dev1", true},
		{"2.5a1", ">= 1.0a1, < 2.0", false}, // still has to actually match

		// the empty specifier matches finals only
		{"1.0", "", true},
		{"1.0a1", "", false},
	}
	for i, tc := range testcases {
		tc := tc
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			t.Parallel()
			ver := mustParseVersion(t, tc.InVer)
			spec, err := pep440.ParseSpecifier(tc.InSpec)
			require.NoError(t, err)
			assert.Equal(t, tc.OutMatch, spec.Match(ver))

			// opting in by hand always un-hides the candidate
			if !tc.OutMatch && spec.MatchWith(ver, true) {
				assert.True(t, ver.IsPreRelease())
			}
		})
	}
}

func TestFilter(t *testing.T) {
	t.Parallel()
	choices := parseAll(t,
		"0.9", "1.0a1", "1.0", "1.1.dev1", "1.1", "1.2+local", "2.0", "french toast")

	testcases := map[string]struct {
		InSpec string
		Out    []string
	}{
		"range":      {">= 1.0, < 2.0", []string{"1.0", "1.1", "1.2+local"}},
		"range-pre":  {">= 1.0a1, < 2.0", []string{"1.0a1", "1.0", "1.1.dev1", "1.1", "1.2+local"}},
		"empty":      {"", []string{"0.9", "1.0", "1.1", "1.2+local", "2.0", "french toast"}},
		"arbitrary":  {"=== french toast", []string{"french toast"}},
		"no-matches": {"> 9000", nil},
	}
	for tcName, tc := range testcases {
		tc := tc
		t.Run(tcName, func(t *testing.T) {
			t.Parallel()
			spec, err := pep440.ParseSpecifier(tc.InSpec)
			require.NoError(t, err)
			var acts []string
			for _, ver := range spec.Filter(choices) {
				acts = append(acts, ver.String())
			}
			assert.Equal(t, tc.Out, acts)
		})
	}
}

func TestSelect(t *testing.T) {
	t.Parallel()
	choices := parseAll(t,
		"0.9", "1.0", "1.1a1", "1.1.dev2", "1.1", "1.2a1", "2.0.dev1", "french toast")

	testcases := map[string]struct {
		InSpec     string
		InBehavior pep440.ExclusionBehavior
		Out        string // empty for nil
	}{
		"basic":       {">= 1.0", nil, "1.1"},
		"upper":       {"< 1.1", nil, "1.0"},
		"none":        {"> 9000", nil, ""},
		"allow-all":   {">= 1.0", pep440.AllowAll{}, "2.0.dev1"},
		"exclude-pre": {">= 1.0", pep440.ExcludePreReleases{}, "1.1"},
		"exclude-pre-allowlist": {
			"> 1.1",
			pep440.ExcludePreReleases{AllowList: parseAll(t, "1.2a1")},
			"1.2a1",
		},
		// every match is excluded, so the best excluded match is
		// better than nothing
		"pre-only": {"> 1.1", pep440.ExcludePreReleases{}, "2.0.dev1"},
		"multi": {
			">= 1.0",
			pep440.MultiExcluder{pep440.AllowAll{}, pep440.ExcludePreReleases{}},
			"1.1",
		},
	}
	for tcName, tc := range testcases {
		tc := tc
		t.Run(tcName, func(t *testing.T) {
			t.Parallel()
			spec, err := pep440.ParseSpecifier(tc.InSpec)
			require.NoError(t, err)
			got := spec.Select(choices, tc.InBehavior)
			if tc.Out == "" {
				assert.Nil(t, got)
			} else {
				require.NotNil(t, got)
				assert.Equal(t, tc.Out, got.String())
			}
		})
	}
}
