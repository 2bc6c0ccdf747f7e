package agenturi

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleAgentID = "agent_01hxje1g8rz3q1b8h3z9n4f8vc"

func Test_ParseAgentUri_scenarios(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "E1 domain trust root", input: "agent://example.com/llm/chat/" + sampleAgentID},
		{name: "E2 ipv4 trust root with port", input: "agent://192.0.2.10:8080/tools/search/" + sampleAgentID},
		{name: "E3 bracketed ipv6", input: "agent://[2001:db8::1]/tools/search/" + sampleAgentID},
		{name: "E4 deep capability path", input: "agent://example.com/a/b/c/d/e/" + sampleAgentID},
		{name: "E5 query and fragment", input: "agent://example.com/a/b/" + sampleAgentID + "?version=1&ttl=60#note"},
		{name: "E6 uppercase scheme and host", input: "AGENT://EXAMPLE.COM/a/b/" + sampleAgentID},
		{name: "E7 missing agent id", input: "agent://example.com/a/b/", wantErr: true},
		{name: "missing capability path", input: "agent://example.com/" + sampleAgentID, wantErr: true},
		{name: "wrong scheme", input: "http://example.com/a/b/" + sampleAgentID, wantErr: true},
		{name: "too long", input: "agent://example.com/" + strings.Repeat("a/", 300) + sampleAgentID, wantErr: true},
	}

	for _, toPin := range tests {
		test := toPin

		t.Run(fmt.Sprintf("%s: %q", test.name, test.input), func(t *testing.T) {
			t.Parallel()

			u, err := ParseAgentUri(test.input)
			if test.wantErr {
				require.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, u.Canonical())
		})
	}
}

func Test_ParseAgentUri_schemeErrorKinds(t *testing.T) {
	t.Parallel()

	_, err := ParseAgentUri("http://example.com/a/b/" + sampleAgentID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrWrongScheme))

	_, err = ParseAgentUri("not-a-uri-at-all")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingScheme))
}

func Test_ParseAgentUri_caseInsensitiveScheme(t *testing.T) {
	t.Parallel()

	lower, err := ParseAgentUri("agent://EXAMPLE.COM/a/b/" + sampleAgentID)
	require.NoError(t, err)

	upper, err := ParseAgentUri("AGENT://example.com/a/b/" + sampleAgentID)
	require.NoError(t, err)

	assert.Equal(t, lower.Canonical(), upper.Canonical())
}

func Test_AgentUri_String_roundTrip(t *testing.T) {
	t.Parallel()

	raw := "agent://example.com/llm/chat/" + sampleAgentID + "?version=1#note"
	u, err := ParseAgentUri(raw)
	require.NoError(t, err)
	assert.Equal(t, raw, u.String())
}

func Test_AgentUri_IdentityEq_ignoresQueryAndFragment(t *testing.T) {
	t.Parallel()

	a, err := ParseAgentUri("agent://example.com/llm/chat/" + sampleAgentID + "?version=1")
	require.NoError(t, err)

	b, err := ParseAgentUri("agent://example.com/llm/chat/" + sampleAgentID + "#note")
	require.NoError(t, err)

	assert.True(t, a.IdentityEq(b))
	assert.Equal(t, a.IdentityHash(), b.IdentityHash())
}

func Test_AgentUri_IdentityEq_differsOnAgentId(t *testing.T) {
	t.Parallel()

	a, err := ParseAgentUri("agent://example.com/llm/chat/" + sampleAgentID)
	require.NoError(t, err)

	other, err := New("agent")
	require.NoError(t, err)

	b, err := ParseAgentUri("agent://example.com/llm/chat/" + other.String())
	require.NoError(t, err)

	assert.False(t, a.IdentityEq(b))
}

func Test_AgentUri_Accessors(t *testing.T) {
	t.Parallel()

	u, err := ParseAgentUri("agent://example.com/llm/chat/" + sampleAgentID + "?ttl=60#note")
	require.NoError(t, err)

	assert.Equal(t, "example.com", u.TrustRoot().HostStr())
	assert.Equal(t, "llm/chat", u.CapabilityPath().AsStr())
	assert.Equal(t, sampleAgentID, u.AgentId().String())

	q, ok := u.Query()
	require.True(t, ok)
	ttl, present, err := q.TTL()
	require.NoError(t, err)
	assert.True(t, present)
	assert.EqualValues(t, 60, ttl)

	f, ok := u.Fragment()
	require.True(t, ok)
	assert.Equal(t, "note", f.String())
}
