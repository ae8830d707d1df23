package main

import (
	"os"

	"github.com/levanduy093-work/electronics-admin/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
