package main

import (
	"github.com/y1zhou/bacillus-operon/cmd"
)

func main() {
	cmd.Execute() // initialize cobra commands
}
