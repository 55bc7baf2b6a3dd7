// Copyright (C) 2026  Pyver Authors
//
// SPDX-License-Identifier: Apache-2.0

package pep440

import (
	"fmt"
	"strings"
)

// Specifier is a comma-separated conjunction of clauses; a candidate
// version must match every clause to match the specifier as a whole.  The
// empty specifier matches everything except pre-releases and
// developmental releases.
type Specifier []SpecifierClause

// ParseSpecifier parses a complete version specifier, such as
//
//	~= 0.9, >= 1.0, != 1.3.4.*, < 2.0
//
// Whitespace around the commas and between an operator and its operand is
// optional; empty clauses are skipped, so a trailing comma is harmless.
func ParseSpecifier(str string) (Specifier, error) {
	clauseStrs := strings.FieldsFunc(str, func(r rune) bool { return r == ',' })
	ret := make(Specifier, 0, len(clauseStrs))
	for _, clauseStr := range clauseStrs {
		clauseStr = strings.TrimSpace(clauseStr)
		if clauseStr == "" {
			continue
		}
		clause, err := parseSpecifierClause(clauseStr)
		if err != nil {
			return nil, fmt.Errorf("pep440.ParseSpecifier: %w", err)
		}
		ret = append(ret, clause)
	}
	return ret, nil
}

func (spec Specifier) String() string {
	clauses := make([]string, 0, len(spec))
	for _, clause := range spec {
		clauses = append(clauses, clause.String())
	}
	return strings.Join(clauses, ",")
}

// Prereleases reports whether any clause's operand is a pre-release or
// developmental release.  Naming one in the specifier is taken as
// consent: such a specifier matches pre-release candidates without the
// caller opting in.
func (spec Specifier) Prereleases() bool {
	for _, clause := range spec {
		if clause.Prereleases() {
			return true
		}
	}
	return false
}

// Match reports whether the candidate satisfies every clause, applying
// the default pre-release handling: pre-release and developmental-release
// candidates are excluded unless the specifier itself names one.  Use
// MatchWith to override that.
func (spec Specifier) Match(ver AnyVersion) bool {
	return spec.MatchWith(ver, spec.Prereleases())
}

// MatchWith is Match with the pre-release policy set by the caller
// instead of inferred from the specifier's own operands.
func (spec Specifier) MatchWith(ver AnyVersion, prereleases bool) bool {
	if !prereleases && ver.IsPreRelease() {
		return false
	}
	for _, clause := range spec {
		if !clause.Match(ver) {
			return false
		}
	}
	return true
}

// Filter returns the candidates that Match, preserving input order.
func (spec Specifier) Filter(choices []AnyVersion) []AnyVersion {
	prereleases := spec.Prereleases()
	var ret []AnyVersion
	for _, choice := range choices {
		if spec.MatchWith(choice, prereleases) {
			ret = append(ret, choice)
		}
	}
	return ret
}

// ExclusionBehavior decides which matching candidates Select may hand
// back without falling in to the second-choice bucket.
type ExclusionBehavior interface {
	Allow(AnyVersion) bool
}

// AllowAll is an implementation of ExclusionBehavior.
type AllowAll struct{}

func (AllowAll) Allow(_ AnyVersion) bool {
	return true
}

// ExcludePreReleases is an implementation of ExclusionBehavior that
// disallows pre-releases and developmental releases, except for specific
// already-accepted versions (such as ones already installed on the
// system).
type ExcludePreReleases struct {
	AllowList []AnyVersion
}

func (prereleases ExcludePreReleases) Allow(ver AnyVersion) bool {
	if !ver.IsPreRelease() {
		return true
	}
	for _, item := range prereleases.AllowList {
		if item.Compare(ver) == 0 {
			return true
		}
	}
	return false
}

// MultiExcluder is an implementation of ExclusionBehavior that ANDs multiple
// other ExclusionBehaviors together; only allowing a version if all of the
// behaviors allow it.
type MultiExcluder []ExclusionBehavior

func (m MultiExcluder) Allow(ver AnyVersion) bool {
	for _, e := range m {
		if !e.Allow(ver) {
			return false
		}
	}
	return true
}

// Select returns the highest-ordered candidate that matches the
// specifier and that the exclusionBehavior allows.  If matches exist but
// the behavior excludes them all, the highest excluded match is returned
// instead; a version that satisfies the specifier beats no version at
// all.  A nil exclusionBehavior allows everything.  Returns nil when
// nothing matches.
//
// With a nil exclusionBehavior the default pre-release handling applies,
// as in Match; with a non-nil one, the behavior governs pre-releases
// instead.
func (spec Specifier) Select(choices []AnyVersion, exclusionBehavior ExclusionBehavior) AnyVersion {
	prereleases := spec.Prereleases()
	var best AnyVersion
	var bestExcluded AnyVersion
	for _, choice := range choices {
		if !spec.MatchWith(choice, prereleases || exclusionBehavior != nil) {
			continue
		}
		if exclusionBehavior == nil || exclusionBehavior.Allow(choice) {
			if best == nil || best.Compare(choice) < 0 {
				best = choice
			}
		} else {
			if bestExcluded == nil || bestExcluded.Compare(choice) < 0 {
				bestExcluded = choice
			}
		}
	}
	if best != nil {
		return best
	}
	return bestExcluded
}
