// Package agenturi implements the agent:// URI scheme: a topology
// independent agent identity combining a trust root, a hierarchical
// capability path and a time-sortable unique id.
//
// Query and fragment percent-encoding follows the pchar rules of
// RFC 3986 (https://www.rfc-editor.org/rfc/rfc3986); the host and
// path grammar is specific to agent:// and narrower than RFC 3986.
package agenturi

import (
	"crypto/sha256"
	"strings"
)

const (
	schemeLiteral = "agent://"
	maxURILength  = 512
)

// AgentUri is the top-level structural model of an agent:// URI: a
// TrustRoot, a CapabilityPath, an AgentId, and an optional Query and
// Fragment. It owns its sub-values exclusively; there is no sharing
// between instances.
type AgentUri struct {
	trustRoot TrustRoot
	path      CapabilityPath
	id        AgentId

	query    Query
	hasQuery bool

	fragment    Fragment
	hasFragment bool
}

// ParseAgentUri parses a complete agent:// URI:
//  1. enforce the total length bound,
//  2. consume the (case-insensitive) "agent://" scheme,
//  3. split off the fragment, then the query,
//  4. split the remaining path into trust root / capability path / agent id,
//  5. delegate each piece to its own parser.
func ParseAgentUri(input string) (AgentUri, error) {
	if len(input) > maxURILength {
		return AgentUri{}, newParseError(ErrTotalTooLong, 0, len(input),
			"agent URI is %d bytes, exceeds the %d byte limit", len(input), maxURILength)
	}

	schemeSepIdx := strings.Index(input, "://")
	switch {
	case schemeSepIdx < 0:
		return AgentUri{}, newParseError(ErrMissingScheme, 0, len(input),
			"agent URI must start with %q (case-insensitive)", schemeLiteral)
	case len(input) < len(schemeLiteral) || toLowerASCII(input[:len(schemeLiteral)]) != schemeLiteral:
		return AgentUri{}, newParseError(ErrWrongScheme, 0, schemeSepIdx,
			"agent URI has scheme %q, expected %q (case-insensitive)", input[:schemeSepIdx], "agent")
	}

	rest := input[len(schemeLiteral):]

	fragIdx := strings.IndexByte(rest, '#')
	beforeFragment := rest
	var rawFragment string
	hasFragment := fragIdx >= 0
	if hasFragment {
		beforeFragment = rest[:fragIdx]
		rawFragment = rest[fragIdx+1:]
	}

	queryIdx := strings.IndexByte(beforeFragment, '?')
	pathPart := beforeFragment
	var rawQuery string
	hasQuery := queryIdx >= 0
	if hasQuery {
		pathPart = beforeFragment[:queryIdx]
		rawQuery = beforeFragment[queryIdx+1:]
	}

	trustRootStr, capabilityStr, agentIDStr, err := splitPath(pathPart)
	if err != nil {
		return AgentUri{}, err
	}

	trustRoot, err := ParseTrustRoot(trustRootStr)
	if err != nil {
		return AgentUri{}, err
	}

	path, err := ParseCapabilityPath(capabilityStr)
	if err != nil {
		return AgentUri{}, err
	}

	id, err := Parse(agentIDStr)
	if err != nil {
		return AgentUri{}, err
	}

	u := AgentUri{trustRoot: trustRoot, path: path, id: id}

	if hasQuery {
		q, err := ParseQuery(rawQuery)
		if err != nil {
			return AgentUri{}, err
		}
		u.query = q
		u.hasQuery = true
	}

	if hasFragment {
		f, err := ParseFragment(rawFragment)
		if err != nil {
			return AgentUri{}, err
		}
		u.fragment = f
		u.hasFragment = true
	}

	return u, nil
}

// splitPath locates the trust root (first segment), the agent id
// (last segment) and the capability path (everything in between) by
// scanning for the first and last "/", rather than splitting on "/"
// and rejoining, so that a stray "//" is reported as an empty
// capability segment instead of being silently absorbed.
func splitPath(pathPart string) (trustRoot, capability, agentID string, err error) {
	if pathPart == "" {
		return "", "", "", newParseError(ErrMissingPath, 0, 0, "agent URI has no path component")
	}

	firstSlash := strings.IndexByte(pathPart, '/')
	if firstSlash < 0 {
		return "", "", "", newParseError(ErrMissingPath, 0, len(pathPart),
			"expected trust-root/capability-path/agent-id, got %q", pathPart)
	}

	trustRoot = pathPart[:firstSlash]
	remainder := pathPart[firstSlash+1:]

	lastSlash := strings.LastIndexByte(remainder, '/')
	if lastSlash < 0 {
		return "", "", "", newParseError(ErrPathEmpty, firstSlash+1, len(remainder),
			"capability path must have at least one segment, got %q", pathPart)
	}

	capability = remainder[:lastSlash]
	agentID = remainder[lastSlash+1:]

	if agentID == "" {
		return "", "", "", newParseError(ErrMissingAgentId, len(pathPart), 0, "agent URI is missing an agent id")
	}

	return trustRoot, capability, agentID, nil
}

// TrustRoot returns the parsed trust root.
func (u AgentUri) TrustRoot() TrustRoot { return u.trustRoot }

// CapabilityPath returns the parsed capability path.
func (u AgentUri) CapabilityPath() CapabilityPath { return u.path }

// AgentId returns the parsed agent id.
func (u AgentUri) AgentId() AgentId { return u.id }

// Query returns the parsed query and whether one was present.
func (u AgentUri) Query() (Query, bool) { return u.query, u.hasQuery }

// Fragment returns the parsed fragment and whether one was present.
func (u AgentUri) Fragment() (Fragment, bool) { return u.fragment, u.hasFragment }

// String renders the full textual form, including query and fragment
// when present.
func (u AgentUri) String() string {
	var b strings.Builder
	b.Grow(maxURILength)

	b.WriteString(u.Canonical())

	if u.hasQuery {
		b.WriteByte('?')
		b.WriteString(u.query.String())
	}

	if u.hasFragment {
		b.WriteByte('#')
		b.WriteString(u.fragment.String())
	}

	return b.String()
}

// Canonical renders the identity-relevant form: scheme, trust root,
// capability path and agent id, with query and fragment stripped.
func (u AgentUri) Canonical() string {
	var b strings.Builder
	b.Grow(len(schemeLiteral) + len(u.trustRoot.String()) + 1 + len(u.path.AsStr()) + 1 + len(u.id.String()))

	b.WriteString(schemeLiteral)
	b.WriteString(u.trustRoot.String())
	b.WriteByte('/')
	b.WriteString(u.path.AsStr())
	b.WriteByte('/')
	b.WriteString(u.id.String())

	return b.String()
}

// IdentityEq reports whether two AgentUri values share the same
// canonical form: the same trust root, capability path and agent id,
// ignoring query and fragment.
func (u AgentUri) IdentityEq(other AgentUri) bool {
	return u.Canonical() == other.Canonical()
}

// IdentityHash returns the SHA-256 digest of the canonical form, for
// use as a map key or DHT-adjacent identifier.
func (u AgentUri) IdentityHash() [32]byte {
	return sha256.Sum256([]byte(u.Canonical()))
}
