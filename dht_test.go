package agenturi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_DHTKey_deterministic(t *testing.T) {
	t.Parallel()

	tr, err := ParseTrustRoot("example.com")
	require.NoError(t, err)

	p, err := ParseCapabilityPath("llm/chat")
	require.NoError(t, err)

	a := DHTKey(tr, p)
	b := DHTKey(tr, p)
	assert.Equal(t, a, b)
}

func Test_DHTKey_differsOnInput(t *testing.T) {
	t.Parallel()

	tr, err := ParseTrustRoot("example.com")
	require.NoError(t, err)

	p1, err := ParseCapabilityPath("llm/chat")
	require.NoError(t, err)

	p2, err := ParseCapabilityPath("tools/search")
	require.NoError(t, err)

	assert.NotEqual(t, DHTKey(tr, p1), DHTKey(tr, p2))
}

func Test_DHTKey_caseInsensitiveOnTrustRoot(t *testing.T) {
	t.Parallel()

	lower, err := ParseTrustRoot("example.com")
	require.NoError(t, err)

	upper, err := ParseTrustRoot("EXAMPLE.COM")
	require.NoError(t, err)

	p, err := ParseCapabilityPath("llm/chat")
	require.NoError(t, err)

	assert.Equal(t, DHTKey(lower, p), DHTKey(upper, p))
}

func Test_Covers(t *testing.T) {
	t.Parallel()

	chat, err := ParseCapabilityPath("llm/chat")
	require.NoError(t, err)

	search, err := ParseCapabilityPath("tools/search")
	require.NoError(t, err)

	stream, err := ParseCapabilityPath("llm/chat/stream")
	require.NoError(t, err)

	assert.True(t, Covers([]CapabilityPath{chat, search}, stream))
	assert.False(t, Covers([]CapabilityPath{search}, stream))
	assert.True(t, Covers([]CapabilityPath{chat}, chat))
}

func Test_PrefixKeys_orderedByDepth(t *testing.T) {
	t.Parallel()

	tr, err := ParseTrustRoot("example.com")
	require.NoError(t, err)

	p, err := ParseCapabilityPath("llm/chat/stream")
	require.NoError(t, err)

	keys := PrefixKeys(tr, p)
	require.Len(t, keys, 3)

	llm, err := ParseCapabilityPath("llm")
	require.NoError(t, err)
	assert.Equal(t, DHTKey(tr, llm), keys[0])

	llmChat, err := ParseCapabilityPath("llm/chat")
	require.NoError(t, err)
	assert.Equal(t, DHTKey(tr, llmChat), keys[1])

	assert.Equal(t, DHTKey(tr, p), keys[2])
}
