package agenturi

import "strings"

const (
	maxPathSegments   = 32
	maxSegmentLength  = 64
	maxPathTotalLength = 256
)

// CapabilityPath is an ordered, bounded hierarchy of lowercase
// segments describing what an agent does (spec §3 CapabilityPath).
// It is immutable once constructed.
type CapabilityPath struct {
	segments []string
}

// ParseCapabilityPath splits input on "/" and validates every segment
// per spec §4.C. Uppercase ASCII letters are folded to lowercase.
func ParseCapabilityPath(input string) (CapabilityPath, error) {
	if input == "" {
		return CapabilityPath{}, newParseError(ErrPathEmpty, 0, 0, "capability path must not be empty")
	}

	if !isASCII(input) {
		return CapabilityPath{}, newParseError(ErrNonASCII, 0, len(input), "capability path must be ASCII")
	}

	raw := strings.Split(input, "/")
	if len(raw) > maxPathSegments {
		return CapabilityPath{}, newParseError(ErrTooManySegments, 0, len(input),
			"capability path has %d segments, exceeds the %d segment limit", len(raw), maxPathSegments)
	}

	segments := make([]string, 0, len(raw))
	offset := 0
	for _, seg := range raw {
		if seg == "" {
			return CapabilityPath{}, newParseError(ErrEmptySegment, offset, 0, "empty segment in path %q", input)
		}
		if len(seg) > maxSegmentLength {
			return CapabilityPath{}, newParseError(ErrSegmentTooLong, offset, len(seg),
				"segment %q exceeds %d bytes", seg, maxSegmentLength)
		}
		for i := 0; i < len(seg); i++ {
			if !isSegmentChar(seg[i]) {
				return CapabilityPath{}, newParseError(ErrInvalidSegmentChar, offset+i, 1,
					"segment %q contains invalid character %q", seg, seg[i])
			}
		}

		segments = append(segments, toLowerASCII(seg))
		offset += len(seg) + 1
	}

	joined := strings.Join(segments, "/")
	if len(joined) > maxPathTotalLength {
		return CapabilityPath{}, newParseError(ErrPathTooLong, 0, len(joined),
			"capability path %q is %d bytes, exceeds the %d byte limit", joined, len(joined), maxPathTotalLength)
	}

	return CapabilityPath{segments: segments}, nil
}

// NewCapabilityPath builds a CapabilityPath directly from already
// normalized segments, applying the same validation as ParseCapabilityPath.
func NewCapabilityPath(segments ...string) (CapabilityPath, error) {
	return ParseCapabilityPath(strings.Join(segments, "/"))
}

// AsStr returns the canonical "/"-joined form.
func (p CapabilityPath) AsStr() string {
	return strings.Join(p.segments, "/")
}

// Depth returns the number of segments.
func (p CapabilityPath) Depth() int {
	return len(p.segments)
}

// Segments returns a defensive copy of the ordered segment list.
func (p CapabilityPath) Segments() []string {
	out := make([]string, len(p.segments))
	copy(out, p.segments)

	return out
}

// SegmentIter is a finite, restartable iterator over a CapabilityPath's
// segments, obtained fresh from Iter() each time it is needed.
type SegmentIter struct {
	segments []string
	pos      int
}

// Iter returns a new iterator positioned before the first segment.
func (p CapabilityPath) Iter() *SegmentIter {
	return &SegmentIter{segments: p.segments}
}

// Next returns the next segment and true, or ("", false) when exhausted.
func (it *SegmentIter) Next() (string, bool) {
	if it.pos >= len(it.segments) {
		return "", false
	}

	s := it.segments[it.pos]
	it.pos++

	return s, true
}

// StartsWith reports whether other is a segment-wise prefix of p.
func (p CapabilityPath) StartsWith(other CapabilityPath) bool {
	if len(other.segments) > len(p.segments) {
		return false
	}

	for i, seg := range other.segments {
		if p.segments[i] != seg {
			return false
		}
	}

	return true
}

// Parent returns p with its last segment removed. It fails when
// p.Depth() == 1, since a root path has no parent.
func (p CapabilityPath) Parent() (CapabilityPath, error) {
	if len(p.segments) <= 1 {
		return CapabilityPath{}, newParseError(ErrNoParent, 0, 0, "path %q has no parent", p.AsStr())
	}

	return CapabilityPath{segments: p.segments[:len(p.segments)-1]}, nil
}

// Child returns p with an additional validated segment appended.
func (p CapabilityPath) Child(segment string) (CapabilityPath, error) {
	return ParseCapabilityPath(p.AsStr() + "/" + segment)
}
