package main

import (
	"os"

	"github.com/phanxgames/marquee/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
