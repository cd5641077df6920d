package main

import (
	"github.com/eriklarko/boolean-solver/src/cli"
)

func main() {
	cli.Execute()
}
