// Copyright (C) 2026  Pyver Authors
//
// SPDX-License-Identifier: Apache-2.0

package pep440

import (
	"fmt"
	"strings"
)

// Version specifiers
// ==================
//
// A version specifier consists of a series of version clauses, separated
// by commas; the comma is a logical AND.  The comparison operator
// determines the kind of version clause:
//
//   - ``~=``: compatible release
//   - ``==``: version matching (``.*`` suffix requests prefix matching)
//   - ``!=``: version exclusion (inverted ``==``)
//   - ``<=``, ``>=``: inclusive ordered comparison
//   - ``<``, ``>``: exclusive ordered comparison
//   - ``===``: arbitrary (string) equality
//
// Except for ``==``/``!=`` against an operand that itself carries one,
// local version labels are not permitted in version specifiers, and the
// candidate's local version label is ignored when matching.

// CmpOp identifies the comparison operator of a single specifier clause.
// The two wildcard-able operators are split into strict and prefix
// variants, resolved at parse time.
type CmpOp int

const (
	CmpOpCompatible CmpOp = iota
	CmpOpStrictMatch
	CmpOpPrefixMatch
	CmpOpStrictExclude
	CmpOpPrefixExclude
	CmpOpLE
	CmpOpGE
	CmpOpLT
	CmpOpGT
	CmpOpArbitraryEq
	_CmpOpEnd
)

func (op CmpOp) String() string {
	str, ok := map[CmpOp]string{
		CmpOpCompatible:    "~=",
		CmpOpStrictMatch:   "strict ==",
		CmpOpPrefixMatch:   "prefix ==",
		CmpOpStrictExclude: "strict !=",
		CmpOpPrefixExclude: "prefix !=",
		CmpOpLE:            "<=",
		CmpOpGE:            ">=",
		CmpOpLT:            "<",
		CmpOpGT:            ">",
		CmpOpArbitraryEq:   "===",
	}[op]
	if !ok {
		panic(fmt.Errorf("invalid CmpOp: %d", op))
	}
	return str
}

// match dispatches to the operator's matching function.  CmpOpArbitraryEq
// is not in the table: it compares raw strings, not parsed Versions, and
// SpecifierClause.Match handles it before dispatching here.
func (op CmpOp) match(spec, ver Version) bool {
	fn, ok := map[CmpOp]func(spec, ver Version) bool{
		CmpOpCompatible:    matchCompatible,
		CmpOpStrictMatch:   matchStrictMatch,
		CmpOpPrefixMatch:   matchPrefixMatch,
		CmpOpStrictExclude: matchStrictExclude,
		CmpOpPrefixExclude: matchPrefixExclude,
		CmpOpLE:            matchLE,
		CmpOpGE:            matchGE,
		CmpOpLT:            matchLT,
		CmpOpGT:            matchGT,
	}[op]
	if !ok {
		panic(fmt.Errorf("invalid CmpOp: %d", op))
	}
	return fn(spec, ver)
}

// SpecifierClause is a single operator+operand clause.  For every operator
// except ``===`` the operand is the parsed Version; for ``===`` the operand
// is the uninterpreted Operand string and Version stays zero.
type SpecifierClause struct {
	CmpOp   CmpOp
	Version Version
	Operand string
}

func parseSpecifierClause(str string) (SpecifierClause, error) {
	var ret SpecifierClause
	str = strings.TrimSpace(str)
	minSegments := 1
	devOK := true
	localOK := false
	switch {
	case strings.HasPrefix(str, "==="):
		// Arbitrary equality is an escape hatch for depending on versions
		// that cannot otherwise be represented; the operand is not parsed.
		ret.CmpOp = CmpOpArbitraryEq
		ret.Operand = strings.TrimSpace(str[3:])
		if ret.Operand == "" {
			return ret, fmt.Errorf("%w: empty operand in === clause", ErrInvalidSpecifier)
		}
		return ret, nil
	case strings.HasPrefix(str, "~="):
		ret.CmpOp = CmpOpCompatible
		str = str[2:]
		minSegments = 2
	case strings.HasPrefix(str, "=="):
		ret.CmpOp = CmpOpStrictMatch
		str = str[2:]
		localOK = true
		if strings.HasSuffix(str, ".*") {
			ret.CmpOp = CmpOpPrefixMatch
			str = strings.TrimSuffix(str, ".*")
			devOK = false
			localOK = false
		}
	case strings.HasPrefix(str, "!="):
		ret.CmpOp = CmpOpStrictExclude
		str = str[2:]
		localOK = true
		if strings.HasSuffix(str, ".*") {
			ret.CmpOp = CmpOpPrefixExclude
			str = strings.TrimSuffix(str, ".*")
			devOK = false
			localOK = false
		}
	case strings.HasPrefix(str, "<="):
		ret.CmpOp = CmpOpLE
		str = str[2:]
	case strings.HasPrefix(str, ">="):
		ret.CmpOp = CmpOpGE
		str = str[2:]
	case strings.HasPrefix(str, "<"):
		ret.CmpOp = CmpOpLT
		str = str[1:]
	case strings.HasPrefix(str, ">"):
		ret.CmpOp = CmpOpGT
		str = str[1:]
	default:
		return ret, fmt.Errorf("%w: invalid comparison operator: %q", ErrInvalidSpecifier, str)
	}
	ver, err := parseVersion(str)
	if err != nil {
		return ret, fmt.Errorf("%w: %v", ErrInvalidSpecifier, err)
	}
	if len(ver.Release) < minSegments {
		return ret, fmt.Errorf("%w: at least %d release segments required in %s specifier clauses",
			ErrInvalidSpecifier, minSegments, ret.CmpOp)
	}
	if ver.Dev != nil && !devOK {
		return ret, fmt.Errorf("%w: dev-part not permitted in %s specifier clauses",
			ErrInvalidSpecifier, ret.CmpOp)
	}
	if len(ver.Local) > 0 && !localOK {
		return ret, fmt.Errorf("%w: local-part not permitted in %s specifier clauses",
			ErrInvalidSpecifier, ret.CmpOp)
	}
	ret.Version = *ver
	ret.Operand = ver.raw
	return ret, nil
}

func (spec SpecifierClause) String() string {
	opStr, ok := map[CmpOp]string{
		CmpOpCompatible:    "~=",
		CmpOpStrictMatch:   "==",
		CmpOpPrefixMatch:   "==",
		CmpOpStrictExclude: "!=",
		CmpOpPrefixExclude: "!=",
		CmpOpLE:            "<=",
		CmpOpGE:            ">=",
		CmpOpLT:            "<",
		CmpOpGT:            ">",
		CmpOpArbitraryEq:   "===",
	}[spec.CmpOp]
	if !ok {
		panic(fmt.Errorf("invalid CmpOp: %d", spec.CmpOp))
	}
	switch spec.CmpOp {
	case CmpOpArbitraryEq:
		return opStr + spec.Operand
	case CmpOpPrefixMatch, CmpOpPrefixExclude:
		return opStr + spec.Version.String() + ".*"
	default:
		return opStr + spec.Version.String()
	}
}

// Match reports whether the candidate satisfies the clause's operator
// semantics, with no pre-release policy applied; see MatchWith.
//
// A LegacyVersion candidate can only ever satisfy an ``===`` clause; the
// other operators require semantics the candidate doesn't have.
func (spec SpecifierClause) Match(ver AnyVersion) bool {
	if spec.CmpOp == CmpOpArbitraryEq {
		return strings.EqualFold(spec.Operand, original(ver))
	}
	mod, ok := ver.(Version)
	if !ok {
		return false
	}
	return spec.CmpOp.match(spec.Version, mod)
}

// MatchWith is Match with the pre-release exclusion policy applied: unless
// prereleases is true, a pre-release or developmental-release candidate
// only matches if the clause's own operand is itself one.
func (spec SpecifierClause) MatchWith(ver AnyVersion, prereleases bool) bool {
	if !prereleases && ver.IsPreRelease() && !spec.Prereleases() {
		return false
	}
	return spec.Match(ver)
}

// Prereleases reports whether the clause's operand is itself a pre-release
// or developmental release, which implicitly opts that clause in to
// matching pre-release candidates.
func (spec SpecifierClause) Prereleases() bool {
	if spec.CmpOp == CmpOpArbitraryEq {
		if ver, err := parseVersion(spec.Operand); err == nil {
			return ver.IsPreRelease()
		}
		return false
	}
	return spec.Version.IsPreRelease()
}

// Compatible release
// ------------------
//
// For a given release identifier ``V.N``, the compatible release clause is
// approximately equivalent to the pair of comparison clauses::
//
//	>= V.N, == V.*
//
// If a pre-release, post-release or developmental release is named in a
// compatible release clause as ``V.N.suffix``, the suffix is ignored when
// determining the required prefix match.  The operand must have at least
// two release segments; that is enforced at parse time.
func matchCompatible(spec, ver Version) bool {
	prefix := spec
	prefix.Release = prefix.Release[:len(prefix.Release)-1]
	prefix.Pre = nil
	prefix.Post = nil
	prefix.Dev = nil
	return matchGE(spec, ver) && matchPrefixMatch(prefix, ver)
}

// Version matching
// ----------------
//
// ``==`` is strict equality up to zero padding of the release segment.  If
// the operand has no local version label, the candidate's label is
// ignored; if it has one, the labels must match too.
func matchStrictMatch(spec, ver Version) bool {
	if len(spec.Local) == 0 {
		return spec.PublicVersion.Cmp(ver.PublicVersion) == 0
	}
	return spec.Cmp(ver) == 0
}

// A trailing ``.*`` requests prefix matching instead: trailing segments of
// the candidate beyond what the operand spells out are ignored, as is the
// candidate's local version label.  The operand's terminal part sets how
// deep the comparison goes: a bare release operand compares releases only
// (truncated), an operand ending in a pre-release compares through the
// pre-release, and so on.  Operands ending in a dev or local part are
// rejected at parse time.
func matchPrefixMatch(_spec, _ver Version) bool {
	spec, ver := _spec.PublicVersion, _ver.PublicVersion
	const (
		partRel = iota
		partPre
		partPost
	)
	var terminalPart int
	switch {
	case spec.Post != nil:
		terminalPart = partPost
	case spec.Pre != nil:
		terminalPart = partPre
	default:
		terminalPart = partRel
	}

	if cmpEpoch(spec, ver) != 0 {
		return false
	}

	if terminalPart == partRel {
		if len(ver.Release) > len(spec.Release) {
			ver.Release = ver.Release[:len(spec.Release)]
		}
	}
	if cmpRelease(spec, ver) != 0 {
		return false
	}
	if terminalPart == partRel {
		return true
	}

	// Compare the pre-release parts directly instead of via cmpPreRelease,
	// because cmpPreRelease also takes .Post and .Dev into account.
	if (ver.Pre == nil) != (spec.Pre == nil) {
		return false
	} else if spec.Pre != nil &&
		(ver.Pre.L != spec.Pre.L || cmpNum(ver.Pre.N, spec.Pre.N) != 0) {
		return false
	}
	if terminalPart == partPre {
		return true
	}

	if cmpPostRelease(spec, ver) != 0 {
		return false
	}
	if terminalPart == partPost {
		return true
	}

	panic("not reached")
}

// Version exclusion
// -----------------
//
// ``!=`` inverts the sense of the corresponding ``==`` clause.
func matchStrictExclude(spec, ver Version) bool {
	return !matchStrictMatch(spec, ver)
}

func matchPrefixExclude(spec, ver Version) bool {
	return !matchPrefixMatch(spec, ver)
}

// Ordered comparisons
// -------------------
//
// ``<=``/``>=``/``<``/``>`` rely on the relative position of candidate and
// operand in the standard ordering.  The candidate's local version label
// is ignored, so ``1.0+local`` satisfies ``<=1.0`` (operands, for their
// part, cannot carry a label; parse time rejects that).
func matchLE(spec, ver Version) bool {
	return spec.PublicVersion.Cmp(ver.PublicVersion) >= 0
}

func matchGE(spec, ver Version) bool {
	return spec.PublicVersion.Cmp(ver.PublicVersion) <= 0
}

func matchLT(spec, ver Version) bool {
	return spec.PublicVersion.Cmp(ver.PublicVersion) > 0
}

func matchGT(spec, ver Version) bool {
	return spec.PublicVersion.Cmp(ver.PublicVersion) < 0
}
