package main

import (
	"os"

	"github.com/danielgindi/go-vboxmanage/cmd/vboxctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
