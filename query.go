package agenturi

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// queryPair is one decoded key/value entry, in the order it appeared
// on the wire. Duplicates are kept: typed accessors resolve them
// last-wins, but String() reproduces every one of them (spec §3 Query).
type queryPair struct {
	key   string
	value string
}

// Query is an insertion-order-preserving, duplicate-preserving
// mapping of query parameters. It is opaque-preserving: its raw wire
// form is what String() reproduces, regardless of what the typed
// accessors resolve to (spec §3, §4.E).
type Query struct {
	raw   string
	pairs []queryPair
}

const (
	recognizedVersion     = "version"
	recognizedTTL         = "ttl"
	recognizedAttestation = "attestation"
)

// ParseQuery parses the query component (the text after "?", excluding
// the "?" itself and any "#fragment").
func ParseQuery(raw string) (Query, error) {
	if raw == "" {
		return Query{}, nil
	}

	q := Query{raw: raw}

	offset := 0
	for _, piece := range strings.Split(raw, "&") {
		if piece == "" {
			offset++
			continue
		}

		key, value, _ := strings.Cut(piece, "=")

		decodedKey, err := percentDecodeAndValidate(key, isQueryOrFragmentByte)
		if err != nil {
			return Query{}, newParseError(ErrMalformedParam, offset, len(piece), "malformed parameter name %q: %v", key, err)
		}

		decodedValue, err := percentDecodeAndValidate(value, isQueryOrFragmentByte)
		if err != nil {
			return Query{}, newParseError(ErrMalformedParam, offset, len(piece), "malformed parameter value %q: %v", value, err)
		}

		q.pairs = append(q.pairs, queryPair{key: norm.NFC.String(decodedKey), value: norm.NFC.String(decodedValue)})
		offset += len(piece) + 1
	}

	return q, nil
}

// String reproduces the exact raw wire form passed to ParseQuery.
func (q Query) String() string { return q.raw }

// Get resolves name to its last occurrence's decoded, NFC-normalized
// value (last-wins).
func (q Query) Get(name string) (string, bool) {
	var (
		value string
		found bool
	)

	for _, p := range q.pairs {
		if p.key == name {
			value = p.value
			found = true
		}
	}

	return value, found
}

// Version returns the free-form "version" parameter, if present.
func (q Query) Version() (string, bool) {
	return q.Get(recognizedVersion)
}

// TTL returns the "ttl" parameter parsed as a non-negative integer of
// seconds. Absence is (0, false, nil); a present-but-invalid value is
// an ErrInvalidTtl error.
func (q Query) TTL() (uint32, bool, error) {
	raw, ok := q.Get(recognizedTTL)
	if !ok {
		return 0, false, nil
	}

	if !isNumerical(raw) {
		return 0, true, newParseError(ErrInvalidTtl, 0, len(raw), "ttl %q is not a non-negative integer", raw)
	}

	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, true, newParseError(ErrInvalidTtl, 0, len(raw), "ttl %q does not fit in 32 bits", raw)
	}

	return uint32(v), true, nil
}

// Attestation returns the opaque "attestation" parameter (a PASETO
// token, accepted but discouraged per spec §3), if present.
func (q Query) Attestation() (string, bool) {
	return q.Get(recognizedAttestation)
}

// WithParam returns a new Query with name=value appended to the wire
// form. Typed accessors resolve the new occurrence last-wins.
func (q Query) WithParam(name, value string) Query {
	encodedName := percentEncodeQueryComponent(name)
	encodedValue := percentEncodeQueryComponent(value)

	next := q
	next.pairs = append(append([]queryPair{}, q.pairs...), queryPair{key: norm.NFC.String(name), value: norm.NFC.String(value)})

	piece := encodedName + "=" + encodedValue

	if next.raw == "" {
		next.raw = piece
	} else {
		next.raw = next.raw + "&" + piece
	}

	return next
}

func percentEncodeQueryComponent(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); i++ {
		c := s[i]
		if isQueryOrFragmentByte(c) {
			b.WriteByte(c)

			continue
		}

		b.WriteByte('%')
		b.WriteByte(upperHex[c>>4])
		b.WriteByte(upperHex[c&0x0F])
	}

	return b.String()
}

const upperHex = "0123456789ABCDEF"

// percentDecodeAndValidate decodes %XX escapes in s and validates
// that every remaining literal byte satisfies allowed, and that the
// decoded bytes form valid UTF-8 (spec §4.A: pchar rules apply inside
// query and fragment; no percent-decoding happens for structural
// fields, only here and in Fragment).
func percentDecodeAndValidate(s string, allowed func(byte) bool) (string, error) {
	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); {
		c := s[i]
		if c == '%' {
			if i+2 >= len(s) || !isHexDigit(s[i+1]) || !isHexDigit(s[i+2]) {
				return "", newParseError(ErrInvalidEscaping, i, 1, "incomplete or invalid percent-encoding near %q", s[i:])
			}

			b.WriteByte(unhex(s[i+1])<<4 | unhex(s[i+2]))
			i += 3

			continue
		}

		if c >= utf8RuneSelf {
			return "", newParseError(ErrNonASCII, i, 1, "literal non-ASCII byte outside of percent-encoding in %q", s)
		}

		if !allowed(c) {
			return "", newParseError(ErrInvalidEscaping, i, 1, "invalid character %q in %q", c, s)
		}

		b.WriteByte(c)
		i++
	}

	out := b.String()
	if !utf8.ValidString(out) {
		return "", newParseError(ErrInvalidEscaping, 0, len(s), "percent-decoded bytes in %q are not valid UTF-8", s)
	}

	return out, nil
}
