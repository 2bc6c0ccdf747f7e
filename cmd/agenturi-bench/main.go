// Command agenturi-bench profiles ParseAgentUri and DHTKey over a pool of
// representative fixtures, writing pprof output under prof/.
package main

import (
	"log"

	"github.com/pkg/profile"

	"github.com/agentmesh/agenturi"
	"github.com/agentmesh/agenturi/cmd/agenturi-bench/fixtures"
)

const profDir = "prof"

func main() {
	const n = 20000

	profileCPU(n)
	profileMemory(n)
}

func profileCPU(n int) {
	defer profile.Start(
		profile.CPUProfile,
		profile.ProfilePath(profDir),
		profile.NoShutdownHook,
	).Stop()

	runProfile(n)
}

func profileMemory(n int) {
	defer profile.Start(
		profile.MemProfile,
		profile.ProfilePath(profDir),
		profile.NoShutdownHook,
	).Stop()

	runProfile(n)
}

func runProfile(n int) {
	for i := 0; i < n; i++ {
		for _, generate := range fixtures.AllGenerators {
			for _, c := range generate() {
				u, err := agenturi.ParseAgentUri(c.URIRaw)
				if c.WantError {
					if err == nil {
						log.Fatalf("expected an error for %q (%s)", c.URIRaw, c.Comment)
					}

					continue
				}

				if err != nil {
					log.Fatalf("unexpected error for %q (%s): %v", c.URIRaw, c.Comment, err)
				}

				_ = agenturi.DHTKey(u.TrustRoot(), u.CapabilityPath())
			}
		}
	}
}
