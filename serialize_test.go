package agenturi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_AgentUri_TextMarshaling_roundTrip(t *testing.T) {
	t.Parallel()

	raw := "agent://example.com/llm/chat/" + sampleAgentID + "?version=1#note"
	u, err := ParseAgentUri(raw)
	require.NoError(t, err)

	b, err := u.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, raw, string(b))

	var back AgentUri
	require.NoError(t, back.UnmarshalText(b))
	assert.True(t, u.IdentityEq(back))
}

func Test_TrustRoot_TextMarshaling_roundTrip(t *testing.T) {
	t.Parallel()

	tr, err := ParseTrustRoot("example.com:8443")
	require.NoError(t, err)

	b, err := tr.MarshalText()
	require.NoError(t, err)

	var back TrustRoot
	require.NoError(t, back.UnmarshalText(b))
	assert.Equal(t, tr.String(), back.String())
}

func Test_CapabilityPath_TextMarshaling_roundTrip(t *testing.T) {
	t.Parallel()

	p, err := ParseCapabilityPath("llm/chat/stream")
	require.NoError(t, err)

	b, err := p.MarshalText()
	require.NoError(t, err)

	var back CapabilityPath
	require.NoError(t, back.UnmarshalText(b))
	assert.Equal(t, p.AsStr(), back.AsStr())
}

func Test_AgentId_TextMarshaling_roundTrip(t *testing.T) {
	t.Parallel()

	id, err := New("agent")
	require.NoError(t, err)

	b, err := id.MarshalText()
	require.NoError(t, err)

	var back AgentId
	require.NoError(t, back.UnmarshalText(b))
	assert.Equal(t, id.String(), back.String())
}
