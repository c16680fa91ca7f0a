package main

import (
	"github.com/harjula/fitadvisor/internal/cli"
)

func main() {
	cli.Execute()
}
