package cmd

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/agentmesh/agenturi"
)

var parseCmd = &cobra.Command{
	Use:   "parse <agent-uri>",
	Short: "Parse an agent:// URI and print its components",
	Args:  cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		ConfigureVerbosity()

		u, err := agenturi.ParseAgentUri(args[0])
		if err != nil {
			log.Fatalf("parse failed: %v", err)
		}

		fmt.Printf("trust root:      %s\n", u.TrustRoot().String())
		fmt.Printf("capability path: %s\n", u.CapabilityPath().AsStr())
		fmt.Printf("agent id:        %s\n", u.AgentId().String())

		if q, ok := u.Query(); ok {
			fmt.Printf("query:           %s\n", q.String())
		}

		if f, ok := u.Fragment(); ok {
			fmt.Printf("fragment:        %s\n", f.String())
		}

		fmt.Printf("canonical:       %s\n", u.Canonical())
	},
}

func init() {
	RootCmd.AddCommand(parseCmd)
}
