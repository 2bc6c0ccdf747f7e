package agenturi

import (
	"crypto/rand"
	"math/big"
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	suffixLength    = 26
	minPrefixLength = 1
	maxPrefixLength = 63
)

// AgentId is a TypeID: a prefix, an underscore, and a fixed-length
// Crockford Base32 encoding of a UUIDv7 (spec §3 AgentId, §4.D).
// Immutable once constructed.
type AgentId struct {
	prefix string
	suffix string
	uid    uuid.UUID
}

// New generates a fresh AgentId for the given prefix, with a UUIDv7
// built from a monotonic millisecond clock and 74 bits of
// cryptographically secure randomness (spec §3, §5).
func New(prefix string) (AgentId, error) {
	if err := validatePrefix(prefix); err != nil {
		return AgentId{}, err
	}

	u, err := generateUUIDv7()
	if err != nil {
		return AgentId{}, err
	}

	return AgentId{prefix: prefix, suffix: encodeSuffix(u), uid: u}, nil
}

// Parse locates the last "_" whose following 26 characters form a
// valid Crockford Base32 suffix, per the TypeID disambiguation rule
// in spec §4.D / §9 (prefixes such as "llm_chat" may themselves
// contain "_").
func Parse(input string) (AgentId, error) {
	if len(input) < minPrefixLength+1+suffixLength {
		return AgentId{}, newParseError(ErrSuffixWrongLength, 0, len(input),
			"agent id %q is too short to contain a prefix, separator and 26-character suffix", input)
	}

	if !isASCII(input) {
		return AgentId{}, newParseError(ErrNonASCII, 0, len(input), "agent id must be ASCII")
	}

	suffixStart := len(input) - suffixLength
	rawSuffix := input[suffixStart:]

	for i := 0; i < len(rawSuffix); i++ {
		if !isBase32Char(rawSuffix[i]) {
			return AgentId{}, newParseError(ErrSuffixBadChar, suffixStart+i, 1,
				"suffix %q contains invalid character %q", rawSuffix, rawSuffix[i])
		}
	}

	if first := decodeBase32Char(rawSuffix[0]); first > 7 {
		return AgentId{}, newParseError(ErrSuffixFirstCharOutOfRange, suffixStart, 1,
			"suffix %q must start with a digit in 0-7, got %q", rawSuffix, rawSuffix[0])
	}

	sepIdx := suffixStart - 1
	if sepIdx < 0 || input[sepIdx] != '_' {
		return AgentId{}, newParseError(ErrMissingUnderscore, sepIdx, 1,
			"expected '_' immediately before the 26-character suffix in %q", input)
	}

	prefix := toLowerASCII(input[:sepIdx])
	if err := validatePrefix(prefix); err != nil {
		return AgentId{}, err
	}

	suffix := toLowerASCII(rawSuffix)
	buf := make([]byte, 16)
	decodeBase32Into(suffix, buf)

	var u uuid.UUID
	copy(u[:], buf)

	return AgentId{prefix: prefix, suffix: suffix, uid: u}, nil
}

func validatePrefix(prefix string) error {
	if prefix == "" {
		return newParseError(ErrEmptyPrefix, 0, 0, "agent id prefix must not be empty")
	}
	if len(prefix) > maxPrefixLength {
		return newParseError(ErrPrefixTooLong, 0, len(prefix),
			"prefix %q exceeds %d bytes", prefix, maxPrefixLength)
	}
	if !isLowerLetter(prefix[0]) || !isLowerLetter(prefix[len(prefix)-1]) {
		return newParseError(ErrPrefixBadBoundary, 0, len(prefix),
			"prefix %q must start and end with a lowercase letter", prefix)
	}
	for i := 0; i < len(prefix); i++ {
		if !isPrefixChar(prefix[i]) {
			return newParseError(ErrPrefixBadChar, i, 1,
				"prefix %q contains invalid character %q", prefix, prefix[i])
		}
	}

	return nil
}

func isLowerLetter(c byte) bool { return c >= 'a' && c <= 'z' }

// Prefix returns the agent id's prefix.
func (a AgentId) Prefix() string { return a.prefix }

// Suffix returns the canonical 26-character Crockford Base32 suffix.
func (a AgentId) Suffix() string { return a.suffix }

// UUID decodes the suffix into its 128-bit value.
func (a AgentId) UUID() uuid.UUID { return a.uid }

// String renders the canonical "prefix_suffix" form.
func (a AgentId) String() string {
	return a.prefix + "_" + a.suffix
}

var (
	genMu      sync.Mutex
	lastMilli  int64
)

// monotonicMilli returns a millisecond timestamp that never moves
// backward within this process, clamping to the last emitted value
// plus one millisecond if the wall clock regresses (spec §5).
func monotonicMilli() int64 {
	genMu.Lock()
	defer genMu.Unlock()

	now := time.Now().UnixMilli()
	if now <= lastMilli {
		lastMilli++
	} else {
		lastMilli = now
	}

	return lastMilli
}

// generateUUIDv7 builds a UUIDv7 per RFC 9562: 48-bit big-endian
// millisecond timestamp, 4-bit version, 12 bits random A, 2-bit
// variant, 62 bits random B (74 bits of randomness total).
func generateUUIDv7() (uuid.UUID, error) {
	var u uuid.UUID

	ms := monotonicMilli()
	u[0] = byte(ms >> 40)
	u[1] = byte(ms >> 32)
	u[2] = byte(ms >> 24)
	u[3] = byte(ms >> 16)
	u[4] = byte(ms >> 8)
	u[5] = byte(ms)

	if _, err := rand.Read(u[6:16]); err != nil {
		return uuid.UUID{}, err
	}

	u[6] = (u[6] & 0x0F) | 0x70 // version 0111
	u[8] = (u[8] & 0x3F) | 0x80 // variant 10

	return u, nil
}

// encodeSuffix encodes the 128-bit UUID MSB-first into 26 Crockford
// Base32 characters. The leading character only ever needs 3 bits,
// so it is always in 0-7: 3 + 25*5 == 128.
func encodeSuffix(u uuid.UUID) string {
	v := new(big.Int).SetBytes(u[:])
	base := big.NewInt(32)
	mod := new(big.Int)

	digits := make([]byte, suffixLength)
	for i := suffixLength - 1; i >= 0; i-- {
		v.DivMod(v, base, mod)
		digits[i] = crockfordBase32Alphabet[mod.Int64()]
	}

	return string(digits)
}

// decodeBase32Into decodes a 26-character (lowercase, already
// validated) Crockford Base32 suffix into a 16-byte big-endian buffer.
func decodeBase32Into(suffix string, buf []byte) {
	v := new(big.Int)
	base := big.NewInt(32)

	for i := 0; i < len(suffix); i++ {
		v.Mul(v, base)
		v.Add(v, big.NewInt(int64(decodeBase32Char(suffix[i]))))
	}

	v.FillBytes(buf)
}
