// Package fixtures generates a pool of representative agent:// URIs
// (both well formed and deliberately malformed) used to drive the
// benchmark harness over a realistic mix of inputs.
package fixtures

import "fmt"

type (
	// Case is one agent:// URI fixture.
	Case struct {
		URIRaw    string
		WantError bool
		Comment   string
	}

	generator func() []Case
)

// AllGenerators is every fixture generator, grouped by the component
// it stresses.
var AllGenerators = []generator{
	domainTrustRootCases,
	ipTrustRootCases,
	capabilityPathCases,
	agentIDCases,
	queryFragmentCases,
	malformedCases,
}

func domainTrustRootCases() []Case {
	cases := make([]Case, 0, 8)
	for i := 0; i < 8; i++ {
		cases = append(cases, Case{
			Comment: "domain trust root",
			URIRaw:  fmt.Sprintf("agent://org-%d.example.com/llm/chat/agent_01hxje1g8rz3q1b8h3z9n4f8vc", i),
		})
	}

	return cases
}

func ipTrustRootCases() []Case {
	return []Case{
		{Comment: "ipv4 trust root", URIRaw: "agent://192.0.2.10:8443/tools/search/svc_01hxje1g8rz3q1b8h3z9n4f8vc"},
		{Comment: "ipv6 trust root", URIRaw: "agent://[2001:db8::1]/tools/search/svc_01hxje1g8rz3q1b8h3z9n4f8vc"},
		{Comment: "ipv6 trust root with port", URIRaw: "agent://[2001:db8::1]:9000/tools/search/svc_01hxje1g8rz3q1b8h3z9n4f8vc"},
	}
}

func capabilityPathCases() []Case {
	cases := make([]Case, 0, 6)
	for depth := 1; depth <= 6; depth++ {
		path := ""
		for d := 0; d < depth; d++ {
			if d > 0 {
				path += "/"
			}
			path += fmt.Sprintf("level-%d", d)
		}

		cases = append(cases, Case{
			Comment: fmt.Sprintf("capability path depth %d", depth),
			URIRaw:  fmt.Sprintf("agent://mesh.example.net/%s/agent_01hxje1g8rz3q1b8h3z9n4f8vc", path),
		})
	}

	return cases
}

func agentIDCases() []Case {
	return []Case{
		{Comment: "short prefix", URIRaw: "agent://mesh.example.net/a/b/x_01hxje1g8rz3q1b8h3z9n4f8vc"},
		{Comment: "prefix with underscore", URIRaw: "agent://mesh.example.net/a/b/llm_chat_01hxje1g8rz3q1b8h3z9n4f8vc"},
		{Comment: "max length prefix", URIRaw: "agent://mesh.example.net/a/b/" + repeat("a", 63) + "_01hxje1g8rz3q1b8h3z9n4f8vc"},
	}
}

func queryFragmentCases() []Case {
	return []Case{
		{Comment: "query only", URIRaw: "agent://mesh.example.net/a/b/agent_01hxje1g8rz3q1b8h3z9n4f8vc?version=1&ttl=3600"},
		{Comment: "fragment only", URIRaw: "agent://mesh.example.net/a/b/agent_01hxje1g8rz3q1b8h3z9n4f8vc#note"},
		{Comment: "query and fragment", URIRaw: "agent://mesh.example.net/a/b/agent_01hxje1g8rz3q1b8h3z9n4f8vc?version=2#note"},
	}
}

func malformedCases() []Case {
	return []Case{
		{Comment: "missing scheme", URIRaw: "mesh.example.net/a/b/agent_01hxje1g8rz3q1b8h3z9n4f8vc", WantError: true},
		{Comment: "missing agent id", URIRaw: "agent://mesh.example.net/a/b/", WantError: true},
		{Comment: "missing capability path", URIRaw: "agent://mesh.example.net/agent_01hxje1g8rz3q1b8h3z9n4f8vc", WantError: true},
		{Comment: "short suffix", URIRaw: "agent://mesh.example.net/a/b/agent_short", WantError: true},
		{Comment: "invalid capability segment character", URIRaw: "agent://mesh.example.net/a_b/c/agent_01hxje1g8rz3q1b8h3z9n4f8vc", WantError: true},
	}
}

func repeat(s string, n int) string {
	out := make([]byte, 0, n*len(s))
	for i := 0; i < n; i++ {
		out = append(out, s...)
	}

	return string(out)
}
