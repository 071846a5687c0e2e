// File: lixenwraith/confee/cmd/confee/main.go
// Command confee loads a configuration file over built-in defaults and prints the result
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
