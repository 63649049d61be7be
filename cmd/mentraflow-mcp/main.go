// Command mentraflow-mcp is the MentraFlow MCP export relay.
//
// Configure it as a stdio MCP server in an AI chat client; the client can then
// call export_to_mentraflow to send conversations to MentraFlow.
package main

import (
	"log"
	"os"

	"github.com/mentraflow/mcp/relay"
)

func main() {
	if err := relay.Run(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}
