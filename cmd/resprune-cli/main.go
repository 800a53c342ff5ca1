package main

import "resprune/cmd/resprune-cli/cmd"

func main() {
	cmd.Execute()
}
