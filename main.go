// filetransfer loads file transfer client and server invocations onto
// a simulated network node.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"filetransfer/cmd"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := cmd.Execute(ctx, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "filetransfer: %v\n", err)
		os.Exit(1)
	}
}
