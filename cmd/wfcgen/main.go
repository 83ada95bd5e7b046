package main

import (
	"fmt"
	"os"

	"github.com/crossplay/wfc/cmd/wfcgen/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
