// Where: cmd/dbox/main.go
// What: CLI entrypoint.
// Why: Execute dbox commands with configured dependencies.
package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/diamonds-dev/diamondbox/internal/app"
)

func main() {
	deps, err := buildDependencies()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	interrupts := make(chan os.Signal, 1)
	signal.Notify(interrupts, os.Interrupt)
	go func() {
		<-interrupts
		fmt.Fprintln(os.Stderr, "\noperation cancelled")
		os.Exit(1)
	}()

	os.Exit(app.Run(os.Args[1:], deps))
}
