package agenturi

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ParseTrustRoot(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		wantKind TrustRootHostKind
		wantStr  string
		wantErr  bool
	}{
		{input: "example.com", wantKind: HostDomain, wantStr: "example.com"},
		{input: "EXAMPLE.COM", wantKind: HostDomain, wantStr: "example.com"},
		{input: "example.com.", wantKind: HostDomain, wantStr: "example.com"},
		{input: "sub.example.com:8443", wantKind: HostDomain, wantStr: "sub.example.com:8443"},
		{input: "192.0.2.10", wantKind: HostIPv4, wantStr: "192.0.2.10"},
		{input: "192.0.2.10:443", wantKind: HostIPv4, wantStr: "192.0.2.10:443"},
		{input: "[2001:db8::1]", wantKind: HostIPv6, wantStr: "[2001:db8::1]"},
		{input: "[2001:db8::1]:9000", wantKind: HostIPv6, wantStr: "[2001:db8::1]:9000"},
		{input: "", wantErr: true},
		{input: "-bad.example.com", wantErr: true},
		{input: "example..com", wantErr: true},
		{input: "192.0.2.1:2:3", wantErr: true},
		{input: "[2001:db8::1", wantErr: true},
		{input: "example.com:notaport", wantErr: true},
		{input: "example.com:99999", wantErr: true},
		{input: "192.168.1.999", wantErr: true},
	}

	for _, toPin := range tests {
		test := toPin

		t.Run(fmt.Sprintf("parsing %q", test.input), func(t *testing.T) {
			t.Parallel()

			tr, err := ParseTrustRoot(test.input)
			if test.wantErr {
				require.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, test.wantKind, tr.Kind())
			assert.Equal(t, test.wantStr, tr.String())
		})
	}
}

func Test_TrustRoot_lengthBound(t *testing.T) {
	t.Parallel()

	long := ""
	for i := 0; i < 30; i++ {
		long += "sub012345678901234567890123456789." //nolint:goconst
	}
	long += "example.com"

	_, err := ParseTrustRoot(long)
	require.Error(t, err)
}

func Test_TrustRoot_WithoutPort(t *testing.T) {
	t.Parallel()

	tr, err := ParseTrustRoot("example.com:8080")
	require.NoError(t, err)

	port, hasPort := tr.Port()
	assert.True(t, hasPort)
	assert.Equal(t, uint16(8080), port)

	stripped := tr.WithoutPort()
	_, hasPort = stripped.Port()
	assert.False(t, hasPort)
	assert.Equal(t, "example.com", stripped.String())
}
