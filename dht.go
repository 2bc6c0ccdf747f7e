package agenturi

import "crypto/sha256"

// DHTKey derives the deterministic lookup key for a trust root and
// capability path: SHA-256 of the canonical trust root, a "/"
// separator, and the canonical capability path. Two AgentUri values
// with the same trust root and capability path always produce the
// same key, regardless of agent id, query or fragment.
func DHTKey(trustRoot TrustRoot, path CapabilityPath) [32]byte {
	material := trustRoot.String() + "/" + path.AsStr()

	return sha256.Sum256([]byte(material))
}

// Covers reports whether any of capabilities is a segment-wise prefix
// of target, i.e. whether an agent advertising capabilities is
// authorized to handle a request addressed to target.
func Covers(capabilities []CapabilityPath, target CapabilityPath) bool {
	for _, c := range capabilities {
		if target.StartsWith(c) {
			return true
		}
	}

	return false
}

// PrefixKeys returns one DHTKey per non-empty prefix of path, ordered
// from shallowest to deepest, so that a lookup can walk from the
// broadest advertisement down to the most specific one.
func PrefixKeys(trustRoot TrustRoot, path CapabilityPath) [][32]byte {
	segments := path.Segments()
	keys := make([][32]byte, 0, len(segments))

	for depth := 1; depth <= len(segments); depth++ {
		prefix, err := NewCapabilityPath(segments[:depth]...)
		if err != nil {
			// a prefix of an already-validated path cannot fail validation
			continue
		}

		keys = append(keys, DHTKey(trustRoot, prefix))
	}

	return keys
}
