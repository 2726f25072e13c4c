// main is the entry point for the pulseboard CLI.
package main

import (
	"fmt"
	"os"

	"github.com/pulseboard/pulseboard/cmd"
	"github.com/pulseboard/pulseboard/internal/iocache"
)

func main() {
	// Wire the global persistence manager into the command layer. Stores
	// are initialized lazily by each command's setup.
	cmd.SetCacheManager(iocache.Manager)

	err := cmd.Execute()

	// Close before exiting so SQLite handles are flushed even on error.
	iocache.CloseStores()

	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
