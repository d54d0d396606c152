package main

import (
	"github.com/reuselint/reuselint/cmd/reuselint/commands"
)

func main() {
	commands.Execute()
}
