package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/wolfe-services/tabcat/cmd/tabcat"
	"github.com/wolfe-services/tabcat/internal/version"
)

func main() {
	rootCmd := tabcat.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "TABCAT",
		Section: "1",
		Source:  "tabcat " + version.Version,
		Manual:  "tabcat manual",
	}

	if err := doc.GenMan(rootCmd, header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
