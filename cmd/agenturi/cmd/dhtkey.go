package cmd

import (
	"encoding/hex"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/agentmesh/agenturi"
)

var dhtKeyAllPrefixes bool

var dhtKeyCmd = &cobra.Command{
	Use:   "dht-key <trust-root> <capability-path>",
	Short: "Derive the DHT lookup key for a trust root and capability path",
	Args:  cobra.ExactArgs(2),
	Run: func(_ *cobra.Command, args []string) {
		ConfigureVerbosity()

		trustRoot, err := agenturi.ParseTrustRoot(args[0])
		if err != nil {
			log.Fatalf("invalid trust root: %v", err)
		}

		path, err := agenturi.ParseCapabilityPath(args[1])
		if err != nil {
			log.Fatalf("invalid capability path: %v", err)
		}

		if !dhtKeyAllPrefixes {
			key := agenturi.DHTKey(trustRoot, path)
			fmt.Println(hex.EncodeToString(key[:]))

			return
		}

		for _, key := range agenturi.PrefixKeys(trustRoot, path) {
			fmt.Println(hex.EncodeToString(key[:]))
		}
	},
}

func init() {
	dhtKeyCmd.Flags().BoolVar(&dhtKeyAllPrefixes, "all-prefixes", false, "print one key per path prefix, shallowest first")

	RootCmd.AddCommand(dhtKeyCmd)
}
