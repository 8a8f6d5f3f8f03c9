// Command infinitelist browses, inspects and snapshots paginated lists.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/infinitelist/cmd/infinitelist/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
