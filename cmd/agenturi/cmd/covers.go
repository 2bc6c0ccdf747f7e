package cmd

import (
	"fmt"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/agentmesh/agenturi"
)

var coversCmd = &cobra.Command{
	Use:   "covers <capability-path,...> <target-path>",
	Short: "Check whether any of a comma-separated list of capability paths covers a target path",
	Args:  cobra.ExactArgs(2),
	Run: func(_ *cobra.Command, args []string) {
		ConfigureVerbosity()

		var capabilities []agenturi.CapabilityPath
		for _, raw := range strings.Split(args[0], ",") {
			p, err := agenturi.ParseCapabilityPath(raw)
			if err != nil {
				log.Fatalf("invalid capability path %q: %v", raw, err)
			}

			capabilities = append(capabilities, p)
		}

		target, err := agenturi.ParseCapabilityPath(args[1])
		if err != nil {
			log.Fatalf("invalid target path: %v", err)
		}

		if agenturi.Covers(capabilities, target) {
			fmt.Println("true")

			return
		}

		fmt.Println("false")
		os.Exit(1)
	},
}

func init() {
	RootCmd.AddCommand(coversCmd)
}
