package agenturi

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ParseCapabilityPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input      string
		wantStr    string
		wantDepth  int
		wantErr    bool
	}{
		{input: "llm/chat", wantStr: "llm/chat", wantDepth: 2},
		{input: "LLM/Chat", wantStr: "llm/chat", wantDepth: 2},
		{input: "tools", wantStr: "tools", wantDepth: 1},
		{input: "a-b/c-d/e-f", wantStr: "a-b/c-d/e-f", wantDepth: 3},
		{input: "", wantErr: true},
		{input: "a//b", wantErr: true},
		{input: "a_b", wantErr: true},
		{input: "a.b", wantErr: true},
	}

	for _, toPin := range tests {
		test := toPin

		t.Run(fmt.Sprintf("parsing %q", test.input), func(t *testing.T) {
			t.Parallel()

			p, err := ParseCapabilityPath(test.input)
			if test.wantErr {
				require.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, test.wantStr, p.AsStr())
			assert.Equal(t, test.wantDepth, p.Depth())
		})
	}
}

func Test_CapabilityPath_tooManySegments(t *testing.T) {
	t.Parallel()

	segs := make([]string, 33)
	for i := range segs {
		segs[i] = "s"
	}

	_, err := ParseCapabilityPath(strings.Join(segs, "/"))
	require.Error(t, err)
}

func Test_CapabilityPath_StartsWith(t *testing.T) {
	t.Parallel()

	full, err := ParseCapabilityPath("llm/chat/stream")
	require.NoError(t, err)

	prefix, err := ParseCapabilityPath("llm/chat")
	require.NoError(t, err)

	other, err := ParseCapabilityPath("tools/search")
	require.NoError(t, err)

	assert.True(t, full.StartsWith(prefix))
	assert.True(t, full.StartsWith(full))
	assert.False(t, prefix.StartsWith(full))
	assert.False(t, full.StartsWith(other))
}

func Test_CapabilityPath_ParentAndChild(t *testing.T) {
	t.Parallel()

	p, err := ParseCapabilityPath("llm/chat/stream")
	require.NoError(t, err)

	parent, err := p.Parent()
	require.NoError(t, err)
	assert.Equal(t, "llm/chat", parent.AsStr())

	root, err := ParseCapabilityPath("llm")
	require.NoError(t, err)

	_, err = root.Parent()
	require.Error(t, err)

	child, err := parent.Child("stream")
	require.NoError(t, err)
	assert.Equal(t, p.AsStr(), child.AsStr())
}

func Test_CapabilityPath_Iter(t *testing.T) {
	t.Parallel()

	p, err := ParseCapabilityPath("a/b/c")
	require.NoError(t, err)

	var got []string
	it := p.Iter()
	for {
		seg, ok := it.Next()
		if !ok {
			break
		}
		got = append(got, seg)
	}

	assert.Equal(t, []string{"a", "b", "c"}, got)
}
