package main

import (
	"os"

	"github.com/wortschatz/wortschatz/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
