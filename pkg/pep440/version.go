package pep440

import (
	"fmt"
	"math/big"
	"regexp"
	"strings"
)

// Version scheme
// ==============
//
// The canonical public version identifiers MUST comply with the following
// scheme::
//
//     [N!]N(.N)*[{a|b|rc}N][.postN][.devN][+<local version label>]
//
// Public version identifiers are separated into up to five segments (epoch,
// release, pre-release, post-release, developmental release), optionally
// followed by a local version label.  All numeric components MUST be
// non-negative integers interpreted and ordered according to their numeric
// value, not as text strings; they are not bounded by any machine word
// width, hence math/big.

// PublicVersion is the public (everything but the local label) part of a
// version identifier.
type PublicVersion struct {
	// Epoch segment: ``N!``.  nil is the implicit epoch 0.
	Epoch *big.Int
	// Release segment: ``N(.N)*``
	Release []*big.Int
	// Pre-release segment: ``{a|b|rc}N``
	Pre *PreRelease
	// Post-release segment: ``.postN``
	Post *big.Int
	// Development release segment: ``.devN``
	Dev *big.Int
}

// PreRelease is a pre-release phase letter and its numeric component.  The
// phase letter is always one of the normalized spellings "a", "b", or "rc".
type PreRelease struct {
	L string
	N *big.Int
}

// LocalSegment is one ``.``-separated part of a local version label:
// either an integer or an alphanumeric run, never both.  Num is non-nil
// exactly when the segment consists entirely of digits; like the other
// numeric components it is unbounded.
type LocalSegment struct {
	Num *big.Int
	Str string
}

func (seg LocalSegment) String() string {
	if seg.Num != nil {
		return seg.Num.String()
	}
	return seg.Str
}

// parseLocalSegment classifies an already-case-folded ``[a-z0-9]+`` run.
func parseLocalSegment(str string) LocalSegment {
	if n, ok := new(big.Int).SetString(str, 10); ok {
		return LocalSegment{Num: n}
	}
	return LocalSegment{Str: str}
}

// Version is a complete version identifier: a public version plus an
// optional local version label.  Local version labels denote downstream
// rebuilds.
type Version struct {
	PublicVersion
	Local []LocalSegment

	// raw is the as-written (whitespace-trimmed) input, when the Version
	// came from the parser.  Only arbitrary-equality (===) matching looks
	// at it.
	raw string
}

func (ver PublicVersion) writeTo(ret *strings.Builder) {
	if ver.Epoch != nil && ver.Epoch.Sign() > 0 {
		fmt.Fprintf(ret, "%s!", ver.Epoch)
	}
	if len(ver.Release) == 0 {
		// Zero-value PublicVersions don't occur from the parser; render
		// the implicit "0" rather than panicking on them.
		ret.WriteString("0")
	} else {
		fmt.Fprintf(ret, "%s", ver.Release[0])
		for _, segment := range ver.Release[1:] {
			fmt.Fprintf(ret, ".%s", segment)
		}
	}
	if ver.Pre != nil {
		fmt.Fprintf(ret, "%s%s", ver.Pre.L, bigOrZero(ver.Pre.N))
	}
	if ver.Post != nil {
		fmt.Fprintf(ret, ".post%s", ver.Post)
	}
	if ver.Dev != nil {
		fmt.Fprintf(ret, ".dev%s", ver.Dev)
	}
}

// String renders the normalized form of the version.
func (ver PublicVersion) String() string {
	var ret strings.Builder
	ver.writeTo(&ret)
	return ret.String()
}

// String renders the normalized form of the version, including the local
// version label if there is one.
func (ver Version) String() string {
	var ret strings.Builder
	ver.PublicVersion.writeTo(&ret)
	sep := "+"
	for _, local := range ver.Local {
		ret.WriteString(sep)
		ret.WriteString(local.String())
		sep = "."
	}
	return ret.String()
}

// Original returns the version as it was written before normalization
// (minus surrounding whitespace).  For a Version that was built
// programmatically rather than parsed, it is the same as String().
func (ver Version) Original() string {
	if ver.raw != "" {
		return ver.raw
	}
	return ver.String()
}

// Public returns the version with the local version label stripped.
// Several specifier operators are defined over the public part only.
func (ver Version) Public() Version {
	return Version{PublicVersion: ver.PublicVersion}
}

// IsFinal reports whether the version consists solely of a release segment
// and optionally an epoch ("final release" in PEP 440 terms).
func (ver PublicVersion) IsFinal() bool {
	return ver.Pre == nil && ver.Post == nil && ver.Dev == nil
}

func (ver Version) IsFinal() bool {
	return ver.PublicVersion.IsFinal() && len(ver.Local) == 0
}

// IsPreRelease reports whether the version is a pre-release in the
// inclusive sense used by specifier matching: it has a pre-release or a
// developmental release segment.
func (ver PublicVersion) IsPreRelease() bool {
	return ver.Pre != nil || ver.Dev != nil
}

// releaseSegment returns the n'th release segment; release segments are
// implicitly zero-padded, so segments past the end are 0.
func (ver PublicVersion) releaseSegment(n int) *big.Int {
	if n < len(ver.Release) {
		return ver.Release[n]
	}
	return bigZero
}

func (ver PublicVersion) Major() *big.Int { return ver.releaseSegment(0) }
func (ver PublicVersion) Minor() *big.Int { return ver.releaseSegment(1) }
func (ver PublicVersion) Micro() *big.Int { return ver.releaseSegment(2) }

// Normalize re-renders and re-parses the version, returning its canonical
// form.
func (ver Version) Normalize() (*Version, error) {
	return ParseVersion(ver.String())
}

// ParseVersion parses a string to a Version, performing the normalizations
// that PEP 440 requires (case folding, alternate pre/post/dev spellings and
// separators, implicit numeric components, a leading "v", surrounding
// whitespace).  Strings that do not match the grammar produce an error
// wrapping ErrInvalidVersion; see Parse for the never-failing variant.
func ParseVersion(str string) (*Version, error) {
	ver, err := parseVersion(str)
	if err != nil {
		return nil, fmt.Errorf("pep440.ParseVersion: %w", err)
	}
	return ver, nil
}

// reVersion is the "Appendix B" regular expression: the permissive pattern
// accepting every input that the normalization rules give a meaning to.
// Anchored with surrounding \s* so that any other leftover characters
// reject the whole string.
var reVersion = regexp.MustCompile(`(?i)^\s*` + regexp.MustCompile(`(?:\s+|#.*)`).ReplaceAllString(`
		v?
		(?:
		    (?:(?P<epoch>[0-9]+)!)?                           # epoch
		    (?P<release>[0-9]+(?:\.[0-9]+)*)                  # release segment
		    (?P<pre>                                          # pre-release
		        [-_\.]?
		        (?P<pre_l>(a|b|c|rc|alpha|beta|pre|preview))
		        [-_\.]?
		        (?P<pre_n>[0-9]+)?
		    )?
		    (?P<post>                                         # post release
		        (?:-(?P<post_n1>[0-9]+))
		        |
		        (?:
		            [-_\.]?
		            (?P<post_l>post|rev|r)
		            [-_\.]?
		            (?P<post_n2>[0-9]+)?
		        )
		    )?
		    (?P<dev>                                          # dev release
		        [-_\.]?
		        (?P<dev_l>dev)
		        [-_\.]?
		        (?P<dev_n>[0-9]+)?
		    )?
		)
		(?:\+(?P<local>[a-z0-9]+(?:[-_\.][a-z0-9]+)*))?       # local version
	`, ``) + `\s*$`)

func parseVersion(str string) (*Version, error) {
	match := reVersion.FindStringSubmatch(str)
	if match == nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidVersion, str)
	}

	ver := Version{raw: strings.TrimSpace(str)}

	if epoch := match[reVersion.SubexpIndex("epoch")]; epoch != "" {
		n, err := parseNum(epoch)
		if err != nil {
			return nil, err
		}
		ver.Epoch = n
	}

	for _, segStr := range strings.Split(match[reVersion.SubexpIndex("release")], ".") {
		seg, err := parseNum(segStr)
		if err != nil {
			return nil, err
		}
		ver.Release = append(ver.Release, seg)
	}

	pre, err := parseLetterNumber(
		match[reVersion.SubexpIndex("pre_l")],
		match[reVersion.SubexpIndex("pre_n")],
		map[string][]string{
			"a":  {"alpha"},
			"b":  {"beta"},
			"rc": {"c", "pre", "preview"},
		})
	if err != nil {
		return nil, fmt.Errorf("pre-release: %w", err)
	}
	if pre != nil {
		ver.Pre = &PreRelease{L: pre.L, N: pre.N}
	}

	post, err := parseLetterNumber(
		match[reVersion.SubexpIndex("post_l")],
		match[reVersion.SubexpIndex("post_n1")]+match[reVersion.SubexpIndex("post_n2")],
		map[string][]string{
			"post": {"", "rev", "r"},
		})
	if err != nil {
		return nil, fmt.Errorf("post-release: %w", err)
	}
	if post != nil {
		ver.Post = post.N
	}

	dev, err := parseLetterNumber(
		match[reVersion.SubexpIndex("dev_l")],
		match[reVersion.SubexpIndex("dev_n")],
		map[string][]string{
			"dev": nil,
		})
	if err != nil {
		return nil, fmt.Errorf("dev: %w", err)
	}
	if dev != nil {
		ver.Dev = dev.N
	}

	localParts := strings.FieldsFunc(match[reVersion.SubexpIndex("local")], func(r rune) bool {
		return strings.ContainsRune("-_.", r)
	})
	for _, part := range localParts {
		ver.Local = append(ver.Local, parseLocalSegment(strings.ToLower(part)))
	}

	return &ver, nil
}

type letterNumber struct {
	L string
	N *big.Int
}

// parseLetterNumber normalizes a (letter, number) suffix pair: alternate
// spellings map to the canonical letter, and a missing numeral is
// implicitly 0.
func parseLetterNumber(letter, number string, acceptableLetters map[string][]string) (*letterNumber, error) {
	if letter == "" && number == "" {
		return nil, nil //nolint:nilnil // absent segment
	}
	letter = strings.ToLower(letter)
	if letter != "" && number == "" {
		number = "0"
	}
	var ret letterNumber

	if _, ok := acceptableLetters[letter]; ok {
		ret.L = letter
	} else {
		found := false
	outer:
		for canonical, others := range acceptableLetters {
			for _, other := range others {
				if letter == other {
					ret.L = canonical
					found = true
					break outer
				}
			}
		}
		if !found {
			return nil, fmt.Errorf("invalid string-part: %q", letter)
		}
	}

	n, err := parseNum(number)
	if err != nil {
		return nil, err
	}
	ret.N = n
	return &ret, nil
}

// parseNum parses a run of ASCII digits.  The regexp guarantees the digits,
// but the guard stays so that parseNum is total on its own.
func parseNum(str string) (*big.Int, error) {
	n, ok := new(big.Int).SetString(str, 10)
	if !ok {
		return nil, fmt.Errorf("invalid numeric component: %q", str)
	}
	return n, nil
}
