package pep440

import (
	"fmt"
	"math/big"
)

//nolint:gochecknoglobals // would be 'const'; never mutated
var bigZero = new(big.Int)

func bigOrZero(n *big.Int) *big.Int {
	if n == nil {
		return bigZero
	}
	return n
}

// cmpNum compares two numeric components, treating nil as 0.
func cmpNum(a, b *big.Int) int {
	return bigOrZero(a).Cmp(bigOrZero(b))
}

// The epoch segment MUST be sorted according to the numeric value of the
// given epoch; if no epoch segment is present, the implicit numeric value
// is 0.
func cmpEpoch(a, b PublicVersion) int {
	return cmpNum(a.Epoch, b.Epoch)
}

// Release segments compare component-wise by numeric value; when the
// segments have different numbers of components, the shorter one is padded
// out with zeros.
func cmpRelease(a, b PublicVersion) int {
	for i := 0; i < len(a.Release) || i < len(b.Release); i++ {
		if d := a.releaseSegment(i).Cmp(b.releaseSegment(i)); d != 0 {
			return d
		}
	}
	return 0
}

// Within a numeric release, the permitted suffixes order as
//
//	.devN, aN, bN, rcN, <no suffix>, .postN
//
// preReleaseOrder ranks the pre-release phase; "no pre-release segment"
// ranks 0, above every phase, and a dev release with neither a pre nor a
// post segment ranks below them all (that is the ".devN before aN" rule).
//
//nolint:gochecknoglobals // would be 'const'
var preReleaseOrder = map[string]int{
	"a":  -3,
	"b":  -2,
	"rc": -1,
	// absent: 0
}

func preReleaseRank(v PublicVersion) (rank int, n *big.Int) {
	if v.Pre != nil {
		rank, ok := preReleaseOrder[v.Pre.L]
		if !ok {
			panic(fmt.Errorf("invalid pre-release string: %q", v.Pre.L))
		}
		return rank, v.Pre.N
	}
	if v.Dev != nil && v.Post == nil {
		return -4, nil
	}
	return 0, nil
}

func cmpPreRelease(a, b PublicVersion) int {
	aRank, aN := preReleaseRank(a)
	bRank, bN := preReleaseRank(b)
	if aRank != bRank {
		return aRank - bRank
	}
	return cmpNum(aN, bN)
}

// A missing post-release segment sorts below any present one.
func cmpPostRelease(a, b PublicVersion) int {
	switch {
	case a.Post == nil && b.Post == nil:
		return 0
	case a.Post == nil:
		return -1
	case b.Post == nil:
		return 1
	default:
		return a.Post.Cmp(b.Post)
	}
}

// A missing dev segment sorts above any present one: a developmental
// release immediately precedes its corresponding (pre/post) release.
func cmpDevRelease(a, b PublicVersion) int {
	switch {
	case a.Dev == nil && b.Dev == nil:
		return 0
	case a.Dev == nil:
		return 1
	case b.Dev == nil:
		return -1
	default:
		return a.Dev.Cmp(b.Dev)
	}
}

// Local version ordering considers each ``.``-separated segment
// separately: entirely-numeric segments compare as integers, segments with
// letters compare lexicographically (case already folded by the parser),
// and a numeric segment always compares greater than a lexicographic one.
// A local version that extends a shorter one compares greater ("prefix
// loses"), and any local label at all compares greater than none.
func cmpLocalSegment(a, b *LocalSegment) int {
	switch {
	case a == nil && b == nil:
		panic("should not happen: cmpLocal shouldn't have bothered calling this")
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	switch {
	case a.Num != nil && b.Num != nil:
		return a.Num.Cmp(b.Num)
	case a.Num == nil && b.Num == nil:
		switch {
		case a.Str < b.Str:
			return -1
		case a.Str > b.Str:
			return 1
		}
		return 0
	case a.Num != nil:
		return 1
	default:
		return -1
	}
}

func cmpLocal(a, b Version) int {
	for i := 0; i < len(a.Local) || i < len(b.Local); i++ {
		var aSeg, bSeg *LocalSegment
		if i < len(a.Local) {
			aSeg = &(a.Local[i])
		}
		if i < len(b.Local) {
			bSeg = &(b.Local[i])
		}
		if d := cmpLocalSegment(aSeg, bSeg); d != 0 {
			return d
		}
	}
	return 0
}

// Cmp returns a number < 0 if version 'a' is less than version 'b', > 0 if
// 'a' is greater than 'b', or 0 if they are equal.  This is similar to the
// C-language strcmp; only the sign is defined, the magnitude may be
// anything.
func (a PublicVersion) Cmp(b PublicVersion) int {
	if d := cmpEpoch(a, b); d != 0 {
		return d
	}
	if d := cmpRelease(a, b); d != 0 {
		return d
	}
	if d := cmpPreRelease(a, b); d != 0 {
		return d
	}
	if d := cmpPostRelease(a, b); d != 0 {
		return d
	}
	return cmpDevRelease(a, b)
}

// Cmp is like PublicVersion.Cmp, with the local version label as the final
// tie-breaker.
func (a Version) Cmp(b Version) int {
	if d := a.PublicVersion.Cmp(b.PublicVersion); d != 0 {
		return d
	}
	return cmpLocal(a, b)
}
