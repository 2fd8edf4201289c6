package main

import (
	"os"

	"github.com/coxioxi/icel/cmd/icel/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
