// Package main is the entry point for the topics CLI.
//
// Usage:
//
//	topics [flags] <command> [args]
//
// Commands:
//
//	describe   - Describe every topic (or one) by its top words
//	counts     - Show the number of documents per topic
//	providers  - List registered corpus and cluster providers
//	version    - Show version information
package main

import (
	"fmt"
	"os"

	"github.com/crimson-sun/topics/cmd/topics/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
