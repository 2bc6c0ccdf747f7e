package agenturi

import (
	"github.com/bits-and-blooms/bitset"
)

// Character classes & ABNF primitives.
//
// Every structural field in an agent:// URI (scheme, host, capability
// path, agent id) is restricted to US-ASCII; there is no IRI/Unicode
// fallback for these fields. Each class is backed by a bitset over the
// 128 ASCII code points.

// asciiSet is a membership test over the 128 ASCII code points.
type asciiSet struct {
	*bitset.BitSet
}

func newASCIISet(members string) asciiSet {
	bs := bitset.New(128)
	for i := 0; i < len(members); i++ {
		bs.Set(uint(members[i]))
	}

	return asciiSet{BitSet: bs}
}

func (s asciiSet) contains(c byte) bool {
	if c >= utf8RuneSelf {
		return false
	}

	return s.Test(uint(c))
}

// utf8RuneSelf is the first non-ASCII byte value; duplicated here
// (rather than importing unicode/utf8 for one constant) because every
// user is a tight byte-indexed loop over structural fields.
const utf8RuneSelf = 0x80

const (
	lowerAlpha = "abcdefghijklmnopqrstuvwxyz"
	upperAlpha = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digits     = "0123456789"

	// crockfordBase32Alphabet excludes i, l, o, u (spec §4.D / GLOSSARY).
	crockfordBase32Alphabet = "0123456789abcdefghjkmnpqrstvwxyz"
	// crockfordBase32AlphabetUpper is the same alphabet, upper-cased, so
	// that the same i/l/o/u exclusions apply to upper-case input.
	crockfordBase32AlphabetUpper = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"
)

var (
	asciiLetterSet  = newASCIISet(lowerAlpha + upperAlpha)
	asciiDigitSet   = newASCIISet(digits)
	domainLabelSet  = newASCIISet(lowerAlpha + upperAlpha + digits + "-")
	segmentCharSet  = newASCIISet(lowerAlpha + upperAlpha + digits + "-")
	prefixCharSet   = newASCIISet(lowerAlpha + "_")
	base32CharSet   = newASCIISet(crockfordBase32Alphabet + crockfordBase32AlphabetUpper)
	pcharExtraSet   = newASCIISet(unreservedMarks + subDelimsMarks + ":@")
	queryFragmentSet = newASCIISet(unreservedMarks + subDelimsMarks + ":@/?")
)

const (
	unreservedMarks = "-._~"
	subDelimsMarks  = "!$&'()*+,;="
)

func isASCIILetter(c byte) bool { return asciiLetterSet.contains(c) }
func isASCIIDigit(c byte) bool  { return asciiDigitSet.contains(c) }
func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8RuneSelf {
			return false
		}
	}

	return true
}

// isDomainLabelChar reports whether c is valid inside a domain label:
// ALPHA / DIGIT / "-".
func isDomainLabelChar(c byte) bool { return domainLabelSet.contains(c) }

// isSegmentChar reports whether c is valid inside a capability segment
// before normalization: [A-Za-z0-9-].
func isSegmentChar(c byte) bool { return segmentCharSet.contains(c) }

// isPrefixChar reports whether c is valid inside an agent-id prefix
// (lowercased already by the time this is called): [a-z_].
func isPrefixChar(c byte) bool { return prefixCharSet.contains(c) }

// isBase32Char reports whether c belongs to the Crockford Base32
// alphabet, case-insensitively. i, l, o, u (and their upper case
// forms) are rejected, not remapped.
func isBase32Char(c byte) bool { return base32CharSet.contains(c) }

// decodeBase32Char maps a (possibly upper-case) Crockford Base32
// digit to its 5-bit value. The caller must have already validated c
// with isBase32Char.
func decodeBase32Char(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		c += 'a' - 'A'
	}

	for i := 0; i < len(crockfordBase32Alphabet); i++ {
		if crockfordBase32Alphabet[i] == c {
			return byte(i)
		}
	}

	return 0 // unreachable given isBase32Char precondition
}

// isPcharByte reports whether b is a pchar per RFC 3986 (unreserved /
// sub-delims / ":" / "@"), used for query and fragment validation
// once percent-decoded (component E).
func isPcharByte(b byte) bool {
	if isASCIILetter(b) || isASCIIDigit(b) {
		return true
	}

	return pcharExtraSet.contains(b)
}

// isQueryOrFragmentByte additionally allows "/" and "?", per the
// fragment/query ABNF (pchar / "/" / "?").
func isQueryOrFragmentByte(b byte) bool {
	if isASCIILetter(b) || isASCIIDigit(b) {
		return true
	}

	return queryFragmentSet.contains(b)
}

func isHexDigit(c byte) bool {
	switch {
	case isASCIIDigit(c):
		return true
	case 'a' <= c && c <= 'f':
		return true
	case 'A' <= c && c <= 'F':
		return true
	}

	return false
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10
	}

	return 0
}

func toLowerASCII(s string) string {
	buf := []byte(s)
	changed := false
	for i, c := range buf {
		if c >= 'A' && c <= 'Z' {
			buf[i] = c + ('a' - 'A')
			changed = true
		}
	}
	if !changed {
		return s
	}

	return string(buf)
}

func isNumerical(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isASCIIDigit(s[i]) {
			return false
		}
	}

	return true
}
