package cmd

import (
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/agentmesh/agenturi"
)

var (
	buildTrustRoot string
	buildPath      string
	buildPrefix    string
	buildQuery     []string
	buildFragment  string
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build a fresh agent:// URI from its components",
	Run: func(_ *cobra.Command, _ []string) {
		ConfigureVerbosity()

		b := agenturi.NewBuilder().
			TryTrustRoot(buildTrustRoot).
			TryCapabilityPath(buildPath).
			NewAgentId(buildPrefix)

		if len(buildQuery) > 0 {
			var query agenturi.Query
			for _, kv := range buildQuery {
				name, value, found := strings.Cut(kv, "=")
				if !found {
					log.Fatalf("--query expects name=value, got %q", kv)
				}

				query = query.WithParam(name, value)
			}

			b = b.WithQuery(query)
		}

		if buildFragment != "" {
			b = b.TryFragment(buildFragment)
		}

		u, err := b.Build()
		if err != nil {
			log.Fatalf("build failed: %v", err)
		}

		fmt.Println(u.String())
	},
}

func init() {
	buildCmd.Flags().StringVar(&buildTrustRoot, "trust", "", "trust root, e.g. example.com")
	buildCmd.Flags().StringVar(&buildPath, "path", "", "capability path, e.g. llm/chat")
	buildCmd.Flags().StringVar(&buildPrefix, "prefix", "agent", "agent id prefix")
	buildCmd.Flags().StringArrayVar(&buildQuery, "query", nil, "query parameter name=value, repeatable")
	buildCmd.Flags().StringVar(&buildFragment, "fragment", "", "fragment")

	RootCmd.AddCommand(buildCmd)
}
