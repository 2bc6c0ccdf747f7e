package agenturi

import (
	"errors"
	"fmt"
)

// Sentinel errors. Use errors.Is against these; ParseError wraps one of
// them together with a byte span into the original input.
var (
	// structural (component F)
	ErrMissingScheme  = errors.New("agenturi: missing scheme")
	ErrWrongScheme    = errors.New("agenturi: wrong scheme")
	ErrMissingPath    = errors.New("agenturi: missing path")
	ErrMissingAgentId = errors.New("agenturi: missing agent id")
	ErrEmptySegment   = errors.New("agenturi: empty path segment")
	ErrTotalTooLong   = errors.New("agenturi: total URI length exceeds 512 bytes")

	// trust root (component B)
	ErrTrustRootEmpty       = errors.New("agenturi: trust root is empty")
	ErrTrustRootTooLong     = errors.New("agenturi: trust root exceeds 128 bytes")
	ErrInvalidLabel         = errors.New("agenturi: invalid domain label")
	ErrInvalidIpv4          = errors.New("agenturi: invalid IPv4 address")
	ErrInvalidIpv6          = errors.New("agenturi: invalid IPv6 address")
	ErrInvalidPort          = errors.New("agenturi: invalid port")
	ErrUnexpectedTrailer    = errors.New("agenturi: unexpected trailing characters after host")
	ErrNonASCII             = errors.New("agenturi: non-ASCII character in structural field")

	// capability path (component C)
	ErrPathEmpty           = errors.New("agenturi: capability path is empty")
	ErrPathTooLong         = errors.New("agenturi: capability path exceeds 256 bytes")
	ErrTooManySegments     = errors.New("agenturi: capability path has more than 32 segments")
	ErrSegmentTooLong      = errors.New("agenturi: capability segment exceeds 64 bytes")
	ErrInvalidSegmentChar  = errors.New("agenturi: invalid character in capability segment")
	ErrNoParent            = errors.New("agenturi: root capability path has no parent")

	// agent id (component D)
	ErrEmptyPrefix             = errors.New("agenturi: agent id prefix is empty")
	ErrPrefixTooLong           = errors.New("agenturi: agent id prefix exceeds 63 bytes")
	ErrPrefixBadChar           = errors.New("agenturi: invalid character in agent id prefix")
	ErrPrefixBadBoundary       = errors.New("agenturi: agent id prefix must start and end with a letter")
	ErrMissingUnderscore       = errors.New("agenturi: missing '_' separator before agent id suffix")
	ErrSuffixWrongLength       = errors.New("agenturi: agent id suffix is not 26 characters")
	ErrSuffixBadChar           = errors.New("agenturi: invalid character in agent id suffix")
	ErrSuffixFirstCharOutOfRange = errors.New("agenturi: agent id suffix must start with a digit in 0-7")

	// query / fragment (component E)
	ErrMalformedParam = errors.New("agenturi: malformed query parameter")
	ErrInvalidTtl     = errors.New("agenturi: ttl is not a valid non-negative integer")
	ErrInvalidEscaping = errors.New("agenturi: invalid percent-encoding")

	// builder (component G)
	ErrBuilderState = errors.New("agenturi: builder used out of order")
)

// ParseError is returned by every parse/validate entry point in this
// module. It carries the byte offset and length of the offending span
// within the original input, along with a human-readable reason.
type ParseError struct {
	Kind   error // one of the Err* sentinels above
	Offset int
	Length int
	Reason string
}

func (e *ParseError) Error() string {
	if e.Reason == "" {
		return e.Kind.Error()
	}

	return fmt.Sprintf("%s: %s (at byte %d, length %d)", e.Kind.Error(), e.Reason, e.Offset, e.Length)
}

func (e *ParseError) Unwrap() error {
	return e.Kind
}

func newParseError(kind error, offset, length int, reason string, args ...interface{}) *ParseError {
	return &ParseError{
		Kind:   kind,
		Offset: offset,
		Length: length,
		Reason: fmt.Sprintf(reason, args...),
	}
}

// errorsJoin attaches a sentinel kind to a more specific underlying
// error so callers can errors.Is against either.
func errorsJoin(kind error, err error) error {
	if err == nil {
		return kind
	}

	return errors.Join(kind, err)
}
