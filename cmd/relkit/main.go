package main

import (
	"github.com/releasetools/relkit/pkg/cli"
)

func main() {
	cli.Execute()
}
