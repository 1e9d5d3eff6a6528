package main

import (
	"os"

	"github.com/CjMullins87/solar-battery-sim/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
