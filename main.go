package main

import (
	"fmt"
	"os"

	"github.com/marcuscabrera/terracognita-fork/cmd"
)

func main() {
	err := cmd.Root.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
