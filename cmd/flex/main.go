// Package main provides the flex CLI, which lays out scene documents.
//
// Usage:
//
//	flex layout [--format text|json] FILE...   Lay out scenes and print the boxes
//	flex render -o out.png [--scale N] FILE     Lay out a scene and draw it
//	flex version                                Print version information
//
// Settings are read from ./flex.yaml (or --config) and FLEX_* environment
// variables, e.g. FLEX_LOG_LEVEL=debug.
package main

import (
	"fmt"
	"os"

	"github.com/grindlemire/go-flex/internal/debug"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "0.1.0"

func main() {
	err := newRootCmd().Execute()
	_ = debug.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
