package main

import "github.com/agentmesh/agenturi/cmd/agenturi/cmd"

func main() {
	cmd.Execute()
}
