// Package main provides the entry point for the greplite CLI.
package main

import (
	"os"

	"github.com/Aman-CERP/greplite/cmd/greplite/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
