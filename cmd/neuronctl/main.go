package main

import (
	"os"

	"github.com/fraudneuron/neuronctl/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
