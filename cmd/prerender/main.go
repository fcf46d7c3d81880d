// Package main is the build-time tool that prints the location pages to
// prerender. The site build calls it and feeds the JSON output to its
// static generation step. Any configuration error exits non-zero so the
// build stops instead of shipping a shorter page list.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
