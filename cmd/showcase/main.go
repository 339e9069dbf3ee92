// Command showcase runs guided tours in the terminal.
package main

import (
	"fmt"
	"os"

	"github.com/opencode-ai/showcase/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
