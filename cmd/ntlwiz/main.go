package main

import (
	"os"

	"github.com/ontl/ntlwiz/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
