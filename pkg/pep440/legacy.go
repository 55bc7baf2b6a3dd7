// Copyright (C) 2026  Pyver Authors
//
// SPDX-License-Identifier: Apache-2.0

package pep440

import (
	"math/big"
	"strings"
)

// AnyVersion is either a Version or a LegacyVersion.  The two kinds share a
// total order: every LegacyVersion sorts below every Version, so a mixed
// list sorts with the junk at the bottom and the newest conforming version
// at the top.
type AnyVersion interface {
	String() string
	// Compare returns <0, 0, or >0, like Cmp.
	Compare(AnyVersion) int
	// IsPreRelease reports whether the version is a pre-release or
	// developmental release; always false for LegacyVersion.
	IsPreRelease() bool
}

var (
	_ AnyVersion = Version{}
	_ AnyVersion = LegacyVersion{}
)

// Parse parses any version string.  Unlike ParseVersion it never fails:
// strings that do not conform to the version grammar come back as a
// LegacyVersion.  Installation tools SHOULD ignore such versions, but
// historically-published distributions carry them, so they must at least
// order deterministically.
func Parse(str string) AnyVersion {
	ver, err := parseVersion(str)
	if err != nil {
		return LegacyVersion{Raw: strings.TrimSpace(str)}
	}
	return *ver
}

// Compare implements AnyVersion.
func (a Version) Compare(other AnyVersion) int {
	switch b := other.(type) {
	case Version:
		return a.Cmp(b)
	default:
		// Conforming versions sort above everything legacy.
		return 1
	}
}

// LegacyVersion wraps a string that failed version parsing.  It has no
// semantic content beyond the raw string; ordering is a tokenization
// fallback, defined so that sorting mixed collections is reproducible
// everywhere.
type LegacyVersion struct {
	Raw string
}

// String implements AnyVersion.  There is no normalized form of a legacy
// version; the raw string comes back unchanged.
func (ver LegacyVersion) String() string {
	return ver.Raw
}

// IsPreRelease implements AnyVersion.  A legacy version is never
// considered a pre-release; the pre-release exclusion machinery leaves it
// alone.
func (ver LegacyVersion) IsPreRelease() bool {
	return false
}

// Compare implements AnyVersion.
func (a LegacyVersion) Compare(other AnyVersion) int {
	switch b := other.(type) {
	case LegacyVersion:
		return a.Cmp(b)
	default:
		return -1
	}
}

// legacyRun is one token of the fallback tokenization: a maximal run of
// digits (num set) or of non-digits (num nil, str set, case-folded).
type legacyRun struct {
	num *big.Int
	str string
}

func legacyRuns(s string) []legacyRun {
	var runs []legacyRun
	for s != "" {
		isDigit := s[0] >= '0' && s[0] <= '9'
		i := 1
		for i < len(s) && (s[i] >= '0' && s[i] <= '9') == isDigit {
			i++
		}
		run, rest := s[:i], s[i:]
		if isDigit {
			n, _ := new(big.Int).SetString(run, 10)
			runs = append(runs, legacyRun{num: n})
		} else {
			runs = append(runs, legacyRun{str: strings.ToLower(run)})
		}
		s = rest
	}
	return runs
}

// cmpLegacyRun compares two runs; nil means "ran out of runs", which sorts
// lowest.  Like local version segments, a digit run compares greater than
// a letter run.
func cmpLegacyRun(a, b *legacyRun) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	switch {
	case a.num != nil && b.num != nil:
		return a.num.Cmp(b.num)
	case a.num == nil && b.num == nil:
		return strings.Compare(a.str, b.str)
	case a.num != nil:
		return 1
	default:
		return -1
	}
}

// Cmp compares two legacy versions by splitting each raw string into
// alternating digit and non-digit runs and comparing run-by-run: digit
// runs numerically, non-digit runs lexicographically after case folding.
func (a LegacyVersion) Cmp(b LegacyVersion) int {
	aRuns := legacyRuns(a.Raw)
	bRuns := legacyRuns(b.Raw)
	for i := 0; i < len(aRuns) || i < len(bRuns); i++ {
		var aRun, bRun *legacyRun
		if i < len(aRuns) {
			aRun = &aRuns[i]
		}
		if i < len(bRuns) {
			bRun = &bRuns[i]
		}
		if d := cmpLegacyRun(aRun, bRun); d != 0 {
			return d
		}
	}
	return 0
}

// original returns the string that arbitrary-equality (===) clauses
// compare against.
func original(ver AnyVersion) string {
	switch v := ver.(type) {
	case Version:
		return v.Original()
	case LegacyVersion:
		return v.Raw
	default:
		return ver.String()
	}
}
