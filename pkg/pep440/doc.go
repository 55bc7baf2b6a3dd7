// Package pep440 implements PEP 440 -- Version Identification and Dependency
// Specification: parsing and normalizing version identifiers, the total
// ordering over them, and version specifiers ("requirements") such as
// "~=0.9,>=1.0,!=1.3.4.*".
//
// https://www.python.org/dev/peps/pep-0440/
//
// Strings that do not conform to PEP 440 at all (of which PyPI has plenty)
// are not rejected by Parse; they degrade to LegacyVersion, which sorts
// below every conforming version but still gives a deterministic total
// order.  Use ParseVersion when non-conforming input should be an error.
package pep440
