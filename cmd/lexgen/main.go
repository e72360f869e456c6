package main

import (
	"log"
	"os"

	"github.com/shadowCow/lexgen/internal/runner"
)

func main() {
	opts := runner.ParseFlags()
	if err := runner.Run(opts, os.Stdout); err != nil {
		log.Fatal(err)
	}
}
