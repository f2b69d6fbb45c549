package main

import "github.com/xvierd/tempus-cli/cmd"

func main() {
	cmd.Execute()
}
