// Package main provides the CLI entrypoint for easyinit.
//
// easyinit generates initializers for structs marked with
//
//	//easyinit:generate
//
// It is meant to be run from a go:generate directive:
//
//	//go:generate go run easyinit/cmd/easyinit gen
package main

import (
	"fmt"
	"os"
)

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "easyinit:", err)
		os.Exit(1)
	}
}
