package cmd

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/agentmesh/agenturi"
)

var newIDCmd = &cobra.Command{
	Use:   "new-id <prefix>",
	Short: "Generate a fresh agent id (TypeID) for a prefix",
	Args:  cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		ConfigureVerbosity()

		id, err := agenturi.New(args[0])
		if err != nil {
			log.Fatalf("id generation failed: %v", err)
		}

		fmt.Println(id.String())
	},
}

func init() {
	RootCmd.AddCommand(newIDCmd)
}
