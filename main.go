package main

import (
	"errors"
	"os"

	"github.com/charmbracelet/log"

	"github.com/alexmk92/combobox/cmd"
)

// Keep main lean: logging defaults and exit codes only, everything else lives
// in cmd.
func main() {
	log.SetReportTimestamp(false)
	log.SetPrefix("combobox")

	if err := cmd.Execute(); err != nil {
		if errors.Is(err, cmd.ErrCancelled) {
			// Same code a shell uses for an interrupted command
			os.Exit(130)
		}
		log.Fatal("Error running combobox", "error", err)
	}
}
