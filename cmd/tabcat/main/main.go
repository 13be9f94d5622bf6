package main

import (
	"fmt"
	"os"

	"github.com/wolfe-services/tabcat/cmd/tabcat"
)

func main() {
	if err := tabcat.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
