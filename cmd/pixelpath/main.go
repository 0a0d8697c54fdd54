// Command pixelpath finds a route through a maze image and writes a copy of
// the image with the route painted on it.
//
// Usage:
//
//	pixelpath INPUT OUTPUT [flags]
//
// Black pixels (#000000ff by default) are walls; every other pixel is open.
// The entrance is the first open pixel on the left edge, the exit the first
// open pixel on the right edge, both ignoring the top and bottom rows.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
