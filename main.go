package main

import (
	"os"

	"github.com/givenmalebe/phonics-sub000/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
