package main

import (
	"os"

	"github.com/skillbridge-ai/skillbridge/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
