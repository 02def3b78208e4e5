package main

import (
	"os"

	"veric/cmd"
)

func main() {
	os.Exit(cmd.RunCompiler())
}
